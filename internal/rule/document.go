// Package rule provides the rule document model: parsing the two-part
// header/body format, extracting cross-document reference tokens, and
// discovering rule files under a rules root.
package rule

// Document is one parsed rule file.
type Document struct {
	Identifier string            // Root-relative path, the join key for references
	Raw        string            // Unparsed source text
	Header     map[string]string // Key/value pairs from the header block
	Body       string            // Text after the closing header delimiter
	BodyLine   int               // 1-based line number where the body starts
}

// Reference is one occurrence of a reference token in a document body.
type Reference struct {
	Source string // Identifier of the document containing the token
	Target string // Identifier the token points at
	Line   int    // 1-based line number within the body's source file
}
