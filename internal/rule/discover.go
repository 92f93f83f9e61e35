package rule

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Discovered pairs a document identifier with its raw source text.
type Discovered struct {
	Identifier string
	Raw        string
}

// Discover walks the rules root and returns an (identifier, raw) pair for
// every file carrying the rule extension, in lexical walk order so repeated
// runs over the same tree enumerate documents identically. The identifier is
// the slash-separated path relative to the root.
//
// The root is an explicit input; nothing here consults the process working
// directory.
func Discover(root, ext string) ([]Discovered, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("rules root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rules root %s is not a directory", root)
	}

	var docs []Discovered
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		docs = append(docs, Discovered{
			Identifier: filepath.ToSlash(rel),
			Raw:        string(data),
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return docs, nil
}
