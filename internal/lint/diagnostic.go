// Package lint implements the rule-file checks: header schema conformance,
// cross-document reference resolution, and body content sanity. Checks never
// abort the run; every failure becomes a Diagnostic and the caller decides
// what the aggregate means.
package lint

import (
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindMissingHeaderBlock indicates the document does not open with the
	// header delimiter.
	KindMissingHeaderBlock Kind = "missing-header-block"
	// KindUnterminatedHeaderBlock indicates the header block never closes.
	KindUnterminatedHeaderBlock Kind = "unterminated-header-block"
	// KindMissingRequiredKey indicates a required header key is absent.
	KindMissingRequiredKey Kind = "missing-required-key"
	// KindEmptyRequiredValue indicates a required header key is present but blank.
	KindEmptyRequiredValue Kind = "empty-required-value"
	// KindDanglingReference indicates a reference token whose target is not a
	// known document.
	KindDanglingReference Kind = "dangling-reference"
	// KindEmptyBodyContent indicates a body with no section headings.
	KindEmptyBodyContent Kind = "empty-body-content"
)

// Diagnostic is a single validation failure tied to one document.
type Diagnostic struct {
	Document string // Identifier of the document the failure belongs to
	Kind     Kind
	Line     int    // 1-based line number, 0 when no location applies
	Message  string // Human-readable description
	Hint     string // Suggestion for fixing the failure, may be empty
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Document)
	if d.Line > 0 {
		sb.WriteString(fmt.Sprintf(":%d", d.Line))
	}
	sb.WriteString(": ")
	sb.WriteString(string(d.Kind))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	return sb.String()
}
