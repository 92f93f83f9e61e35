package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the loader's global-config lookup at an empty directory.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./rules", cfg.RulesDir)
	assert.Equal(t, ".mdc", cfg.RuleExtension)
	assert.Equal(t, []string{"Description", "Globs"}, cfg.RequiredKeys)
	assert.Equal(t, "Globs", cfg.PatternKey)
	assert.Empty(t, cfg.KnownIdentifiers)
	assert.True(t, cfg.ShowProgress)
	assert.False(t, cfg.NoColor)
}

func TestLoad_LocalConfigOverridesDefaults(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "config.json")
	content := `{
		"rules_dir": "./doc-rules",
		"rule_extension": ".rule",
		"required_keys": ["Summary"],
		"pattern_key": "Summary",
		"show_progress": false
	}`
	require.NoError(t, os.WriteFile(localPath, []byte(content), 0o644))

	cfg, err := Load(localPath)
	require.NoError(t, err)

	assert.Equal(t, "./doc-rules", cfg.RulesDir)
	assert.Equal(t, ".rule", cfg.RuleExtension)
	assert.Equal(t, []string{"Summary"}, cfg.RequiredKeys)
	assert.Equal(t, "Summary", cfg.PatternKey)
	assert.False(t, cfg.ShowProgress)
}

func TestLoad_GlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, ".rulelint")
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	content := `{"rules_dir": "./global-rules"}`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./global-rules", cfg.RulesDir)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"rules_dir": "./from-file"}`), 0o644))

	t.Setenv("RULELINT_RULES_DIR", "./from-env")
	t.Setenv("RULELINT_PATTERN_KEY", "AppliesTo")

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "./from-env", cfg.RulesDir)
	assert.Equal(t, "AppliesTo", cfg.PatternKey)
}

func TestLoad_MissingLocalConfigIsFine(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, "./rules", cfg.RulesDir)
}

func TestLoad_InvalidExtensionRejected(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"rule_extension": "mdc"}`), 0o644))

	_, err := Load(localPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoad_EmptyRequiredKeysRejected(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"required_keys": []}`), 0o644))

	_, err := Load(localPath)
	require.Error(t, err)
}

func TestLoad_ExpandsHomeInRulesDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RULELINT_RULES_DIR", "~/team-rules")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "team-rules"), cfg.RulesDir)
}

func TestLoad_NoColorEnvConvention(t *testing.T) {
	isolateHome(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
}
