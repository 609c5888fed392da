// Package extract writes the translatable text of documents and help pages
// as gettext call lines, one per text unit:
//
//	_("Getting Started")
//	_("Press \"Engrave\" to see the music.")
//
// The output is meant for a catalog extraction tool and is not deduplicated.
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dgallion1/helpdoc/internal/doctree"
	"github.com/dgallion1/helpdoc/internal/helptree"
)

// Quote wraps s in a gettext call. Only double quotes are escaped.
func Quote(s string) string {
	return `_("` + strings.ReplaceAll(s, `"`, `\"`) + `")`
}

// DocumentError reports the document a batch run stopped at.
type DocumentError struct {
	Name string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Name, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Opener loads a document by name.
type Opener func(name string) (*doctree.Document, error)

// Extractor writes extraction lines to w.
type Extractor struct {
	w     io.Writer
	log   *slog.Logger
	units int
}

func New(w io.Writer, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Extractor{w: w, log: log}
}

// Units returns the number of lines written so far.
func (e *Extractor) Units() int { return e.units }

// Document writes one line per text unit of doc in document order.
func (e *Extractor) Document(doc *doctree.Document) error {
	return doctree.Walk(doc, func(n *doctree.Node, _ int) error {
		if n.Container() {
			return nil
		}
		return e.line(n.Text)
	})
}

// Run extracts the named documents one after another. The first document
// that fails to open or write stops the run; later names are not opened.
func (e *Extractor) Run(names []string, open Opener) error {
	for _, name := range names {
		doc, err := open(name)
		if err != nil {
			return &DocumentError{Name: name, Err: err}
		}
		before := e.units
		if err := e.Document(doc); err != nil {
			return &DocumentError{Name: name, Err: err}
		}
		e.log.Debug("document extracted", "document", name, "units", e.units-before)
	}
	return nil
}

// Tree writes the msgids of every page below each root, parents first.
// Pages that do not implement helptree.Messenger are skipped.
func (e *Extractor) Tree(roots ...helptree.Page) error {
	for _, root := range roots {
		err := helptree.Walk(root, func(p helptree.Page, _ int) error {
			m, ok := p.(helptree.Messenger)
			if !ok {
				e.log.Debug("page has no messages", "page", p.ID())
				return nil
			}
			for _, msg := range m.Messages() {
				if msg == "" {
					continue
				}
				if err := e.line(msg); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) line(s string) error {
	if _, err := io.WriteString(e.w, Quote(s)+"\n"); err != nil {
		return err
	}
	e.units++
	return nil
}
