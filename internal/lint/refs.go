package lint

import (
	"fmt"

	"github.com/schoolboyqueue/rulelint/internal/rule"
)

// CheckReferences extracts every reference token from the document body and
// verifies each target against the known-identifier set.
//
// The known set must be complete before this runs: it is built from every
// document named in the run plus any caller-supplied extra identifiers.
// Running it against a partial set falsely flags forward references.
func CheckReferences(doc *rule.Document, ext string, known map[string]struct{}) []Diagnostic {
	var diags []Diagnostic
	for _, ref := range rule.ExtractReferences(doc, ext) {
		if _, ok := known[ref.Target]; ok {
			continue
		}
		diags = append(diags, Diagnostic{
			Document: doc.Identifier,
			Kind:     KindDanglingReference,
			Line:     ref.Line,
			Message:  fmt.Sprintf("reference to unknown rule %q", ref.Target),
			Hint:     fmt.Sprintf("Create %s or remove the @%s reference", ref.Target, ref.Target),
		})
	}
	return diags
}
