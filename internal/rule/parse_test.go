package rule

import (
	"errors"
	"testing"
)

func TestParse_WellFormed(t *testing.T) {
	raw := "---\n" +
		"Description: Go style rules\n" +
		"Globs: **/*.go\n" +
		"---\n" +
		"\n" +
		"# Style\n" +
		"Use tabs.\n"

	doc, err := Parse("go-style.mdc", raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if doc.Identifier != "go-style.mdc" {
		t.Errorf("Identifier = %q, want %q", doc.Identifier, "go-style.mdc")
	}
	if got := doc.Header["Description"]; got != "Go style rules" {
		t.Errorf("Header[Description] = %q, want %q", got, "Go style rules")
	}
	if got := doc.Header["Globs"]; got != "**/*.go" {
		t.Errorf("Header[Globs] = %q, want %q", got, "**/*.go")
	}
	if doc.Body != "\n# Style\nUse tabs.\n" {
		t.Errorf("Body = %q", doc.Body)
	}
	if doc.BodyLine != 5 {
		t.Errorf("BodyLine = %d, want 5", doc.BodyLine)
	}
}

func TestParse_MissingHeaderBlock(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty file", ""},
		{"no delimiter at all", "# Just a heading\nSome text\n"},
		{"delimiter not on first line", "\n---\nDescription: x\n---\nbody\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("bad.mdc", tc.raw)
			if !errors.Is(err, ErrMissingHeaderBlock) {
				t.Errorf("Parse error = %v, want ErrMissingHeaderBlock", err)
			}
		})
	}
}

func TestParse_UnterminatedHeaderBlock(t *testing.T) {
	raw := "---\nDescription: never closed\n# Heading\n"

	_, err := Parse("open.mdc", raw)
	if !errors.Is(err, ErrUnterminatedHeaderBlock) {
		t.Errorf("Parse error = %v, want ErrUnterminatedHeaderBlock", err)
	}
}

func TestParse_TolerantHeaderLines(t *testing.T) {
	// Lines that are not Key: value are skipped, not errored
	raw := "---\n" +
		"Description: rule\n" +
		"this line has no colon\n" +
		": no key before colon\n" +
		"Globs: *.go\n" +
		"---\n" +
		"# Body\n"

	doc, err := Parse("tolerant.mdc", raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Header) != 2 {
		t.Errorf("Header has %d keys, want 2: %v", len(doc.Header), doc.Header)
	}
}

func TestParse_CRLFLineEndings(t *testing.T) {
	raw := "---\r\nDescription: windows\r\nGlobs: *.cs\r\n---\r\n# Body\r\n"

	doc, err := Parse("crlf.mdc", raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := doc.Header["Description"]; got != "windows" {
		t.Errorf("Header[Description] = %q, want %q", got, "windows")
	}
}

func TestParse_EmptyHeaderBlock(t *testing.T) {
	doc, err := Parse("empty-header.mdc", "---\n---\n# Body\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Header) != 0 {
		t.Errorf("Header has %d keys, want 0", len(doc.Header))
	}
	if doc.Body != "# Body\n" {
		t.Errorf("Body = %q", doc.Body)
	}
}
