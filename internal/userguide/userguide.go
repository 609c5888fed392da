// Package userguide finds user guide documents by name.
package userguide

import (
	"os"
	"path/filepath"

	"github.com/dgallion1/helpdoc/internal/doctree"
	"github.com/dgallion1/helpdoc/internal/parser"
)

// DefaultExt is appended to names given without a supported extension.
const DefaultExt = ".md"

// Locator resolves document names below Dir.
type Locator struct {
	Dir string
}

// Path returns the file a document name refers to. A bare name such as
// "starting" maps to Dir/starting.md.
func (l Locator) Path(name string) string {
	if !parser.IsSupportedExtension(name) {
		name += DefaultExt
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.Dir, name)
}

// Open reads and parses the named document. Errors do not repeat the name;
// callers such as extract.Run attach it.
func (l Locator) Open(name string) (*doctree.Document, error) {
	path := l.Path(name)
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	doc.Name = name
	return doc, nil
}
