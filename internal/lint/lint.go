package lint

import (
	"errors"

	"github.com/schoolboyqueue/rulelint/internal/rule"
)

// Options configures one lint run.
type Options struct {
	// Schema is the header schema to enforce. Zero value means DefaultSchema.
	Schema HeaderSchema
	// Extension is the rule-file extension reference tokens must end in,
	// e.g. ".mdc".
	Extension string
	// KnownIdentifiers extends the known-identifier set beyond the documents
	// in this run. A caller validating a subset of the full rule tree names
	// the excluded documents here so references to them do not register as
	// dangling.
	KnownIdentifiers []string
}

// Run validates the full document set and returns the aggregated report.
//
// Two phases, one barrier: every document's identifier is registered before
// any reference check runs, so forward references between documents in the
// same run always resolve regardless of discovery order. Parse failures mark
// the document invalid with a single diagnostic and skip its downstream
// checks; they never abort the rest of the run.
//
// Run is pure and deterministic: the same document set yields an identical
// report on every invocation.
func Run(docs []rule.Discovered, opts Options) *RunReport {
	schema := opts.Schema
	if len(schema.RequiredKeys) == 0 && schema.PatternKey == "" {
		schema = DefaultSchema()
	}

	// Phase 1: register every identifier. A document that fails to parse
	// still exists on disk, so references to it resolve.
	known := make(map[string]struct{}, len(docs)+len(opts.KnownIdentifiers))
	for _, doc := range docs {
		known[doc.Identifier] = struct{}{}
	}
	for _, id := range opts.KnownIdentifiers {
		known[id] = struct{}{}
	}

	// Phase 2: per-document checks, in discovery order.
	report := &RunReport{}
	for _, doc := range docs {
		result := DocumentResult{Identifier: doc.Identifier}

		parsed, err := rule.Parse(doc.Identifier, doc.Raw)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, parseDiagnostic(doc.Identifier, err))
			report.add(result)
			continue
		}

		result.Diagnostics = append(result.Diagnostics, schema.Check(parsed)...)
		result.Diagnostics = append(result.Diagnostics, CheckReferences(parsed, opts.Extension, known)...)
		result.Diagnostics = append(result.Diagnostics, CheckBody(parsed)...)
		report.add(result)
	}

	return report
}

// parseDiagnostic maps a parse error to its diagnostic kind.
func parseDiagnostic(identifier string, err error) Diagnostic {
	kind := KindMissingHeaderBlock
	message := "document does not start with a '" + rule.HeaderDelimiter + "' header delimiter"
	hint := "Start the file with a '" + rule.HeaderDelimiter + "' delimiter line"
	if errors.Is(err, rule.ErrUnterminatedHeaderBlock) {
		kind = KindUnterminatedHeaderBlock
		message = "header block is never closed"
		hint = "Close the header block with a second '" + rule.HeaderDelimiter + "' line"
	}
	return Diagnostic{
		Document: identifier,
		Kind:     kind,
		Line:     1,
		Message:  message,
		Hint:     hint,
	}
}
