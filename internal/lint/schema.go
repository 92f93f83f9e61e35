package lint

import (
	"fmt"
	"strings"

	"github.com/schoolboyqueue/rulelint/internal/rule"
)

// HeaderSchema is the set of header keys every rule document must carry.
// Key names are configuration, not a hard-coded contract.
type HeaderSchema struct {
	// RequiredKeys must all be present with non-blank values.
	RequiredKeys []string
	// PatternKey names the key holding the glob patterns that scope the rule.
	// It is validated for non-blankness even when not listed in RequiredKeys.
	PatternKey string
}

// DefaultSchema returns the schema used when configuration does not override
// the key names.
func DefaultSchema() HeaderSchema {
	return HeaderSchema{
		RequiredKeys: []string{"Description", "Globs"},
		PatternKey:   "Globs",
	}
}

// Check verifies the document header against the schema. Pure: it returns
// zero or more diagnostics and touches nothing.
func (s HeaderSchema) Check(doc *rule.Document) []Diagnostic {
	var diags []Diagnostic
	checked := make(map[string]bool, len(s.RequiredKeys)+1)

	keys := s.RequiredKeys
	if s.PatternKey != "" && !contains(keys, s.PatternKey) {
		keys = append(append([]string{}, keys...), s.PatternKey)
	}

	for _, key := range keys {
		if checked[key] {
			continue
		}
		checked[key] = true

		value, ok := doc.Header[key]
		if !ok {
			// The pattern key is only checked for blankness once present,
			// unless it is also a required key.
			if key == s.PatternKey && !contains(s.RequiredKeys, key) {
				continue
			}
			diags = append(diags, Diagnostic{
				Document: doc.Identifier,
				Kind:     KindMissingRequiredKey,
				Message:  fmt.Sprintf("missing required header key: %s", key),
				Hint:     fmt.Sprintf("Add '%s: <value>' to the header block", key),
			})
			continue
		}
		if strings.TrimSpace(value) == "" {
			diags = append(diags, Diagnostic{
				Document: doc.Identifier,
				Kind:     KindEmptyRequiredValue,
				Message:  fmt.Sprintf("header key %q has an empty value", key),
				Hint:     fmt.Sprintf("Give '%s' a non-empty value or remove the rule", key),
			})
		}
	}

	return diags
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
