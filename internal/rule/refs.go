package rule

import (
	"regexp"
	"strings"
)

// referencePattern matches a sigil-prefixed identifier ending in the rule
// extension, e.g. "@go-style.mdc" or "@backend/api.mdc".
func referencePattern(ext string) *regexp.Regexp {
	return regexp.MustCompile(`@([A-Za-z0-9_./-]+` + regexp.QuoteMeta(ext) + `)\b`)
}

// ExtractReferences scans the document body left to right and returns every
// reference token with the line it appears on. Candidates that do not match
// the token shape are skipped, not errored.
func ExtractReferences(doc *Document, ext string) []Reference {
	pattern := referencePattern(ext)

	var refs []Reference
	for _, loc := range pattern.FindAllStringSubmatchIndex(doc.Body, -1) {
		refs = append(refs, Reference{
			Source: doc.Identifier,
			Target: doc.Body[loc[2]:loc[3]],
			Line:   doc.BodyLine + strings.Count(doc.Body[:loc[0]], "\n"),
		})
	}
	return refs
}
