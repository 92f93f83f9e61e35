package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"rules_dir":         "./rules",
		"rule_extension":    ".mdc",
		"required_keys":     []string{"Description", "Globs"},
		"pattern_key":       "Globs",
		"known_identifiers": []string{},
		"show_progress":     true,
		"no_color":          false,
	}
}
