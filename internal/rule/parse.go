package rule

import (
	"errors"
	"fmt"
	"strings"
)

// HeaderDelimiter is the marker line that opens and closes the header block.
const HeaderDelimiter = "---"

var (
	// ErrMissingHeaderBlock indicates the document does not start with the
	// header delimiter.
	ErrMissingHeaderBlock = errors.New("missing header block")
	// ErrUnterminatedHeaderBlock indicates an opening delimiter with no
	// closing delimiter.
	ErrUnterminatedHeaderBlock = errors.New("unterminated header block")
)

// Parse splits raw rule-file text into a header map and a body.
//
// The text must begin with a line consisting solely of the delimiter marker;
// lines up to the next delimiter line form the header block. Header lines of
// the form "Key: value" populate the header map; anything else inside the
// block is skipped (tolerant parsing). Everything after the closing delimiter
// is the body.
func Parse(identifier, raw string) (*Document, error) {
	lines := strings.Split(raw, "\n")
	if strings.TrimRight(lines[0], "\r") != HeaderDelimiter {
		return nil, fmt.Errorf("%s: %w", identifier, ErrMissingHeaderBlock)
	}

	header := make(map[string]string)
	closing := -1
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if line == HeaderDelimiter {
			closing = i
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		header[key] = strings.TrimSpace(value)
	}
	if closing < 0 {
		return nil, fmt.Errorf("%s: %w", identifier, ErrUnterminatedHeaderBlock)
	}

	return &Document{
		Identifier: identifier,
		Raw:        raw,
		Header:     header,
		Body:       strings.Join(lines[closing+1:], "\n"),
		BodyLine:   closing + 2,
	}, nil
}
