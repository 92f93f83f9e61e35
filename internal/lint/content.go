package lint

import (
	"strings"

	"github.com/schoolboyqueue/rulelint/internal/rule"
)

// headingMarker opens a section heading when it leads a body line.
const headingMarker = "#"

// CheckBody flags documents whose body carries no section headings. A rule
// file that is all header and no guidance is a structural smell, surfaced as
// a diagnostic like any other failure.
func CheckBody(doc *rule.Document) []Diagnostic {
	for _, line := range strings.Split(doc.Body, "\n") {
		if strings.HasPrefix(line, headingMarker) {
			return nil
		}
	}
	return []Diagnostic{{
		Document: doc.Identifier,
		Kind:     KindEmptyBodyContent,
		Message:  "body contains no section headings",
		Hint:     "Add at least one '# Heading' section with actual guidance",
	}}
}
