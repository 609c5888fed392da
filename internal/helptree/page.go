// Package helptree models the navigable tree of help pages. Page content is
// never stored: titles and bodies are produced on each call from an Env, so
// they can reflect the current locale and live keyboard shortcuts.
package helptree

import (
	"fmt"
	"slices"
)

// Page is a node of the help tree.
type Page interface {
	ID() string
	Title(env Env) string
	Body(env Env) (string, error)
	// Children returns the child pages in navigation order.
	Children() []Page
}

// Messenger is implemented by pages that can list the msgids they pass
// through the translator.
type Messenger interface {
	Messages() []string
}

// Decl declares a page. Title and Body are msgids; the translated body is a
// Format template filled from Args.
type Decl struct {
	ID    string
	Title string
	Body  string
	Args  func(env Env) (Args, error)

	// Render, when set, builds the body instead of Body and Args.
	Render func(env Env) (string, error)
	// Extra lists msgids Render translates.
	Extra []string

	// Children are child page IDs; they may name pages declared later.
	Children []string
}

type page struct {
	decl     Decl
	children []Page
}

func (p *page) ID() string { return p.decl.ID }

func (p *page) Title(env Env) string {
	return env.Tr(p.decl.Title)
}

func (p *page) Body(env Env) (string, error) {
	if p.decl.Render != nil {
		body, err := p.decl.Render(env)
		if err != nil {
			return "", fmt.Errorf("page %s: %w", p.decl.ID, err)
		}
		return body, nil
	}

	tmpl := env.Tr(p.decl.Body)
	if p.decl.Args == nil {
		return tmpl, nil
	}
	args, err := p.decl.Args(env)
	if err != nil {
		return "", fmt.Errorf("page %s: %w", p.decl.ID, err)
	}
	body, err := Format(tmpl, args)
	if err != nil {
		return "", fmt.Errorf("page %s: %w", p.decl.ID, err)
	}
	return body, nil
}

func (p *page) Children() []Page {
	return slices.Clone(p.children)
}

func (p *page) Messages() []string {
	msgs := []string{p.decl.Title}
	if p.decl.Body != "" {
		msgs = append(msgs, p.decl.Body)
	}
	return append(msgs, p.decl.Extra...)
}

func (p *page) String() string {
	return fmt.Sprintf("(Page %s #ch=%d)", p.decl.ID, len(p.children))
}

// Walk visits root and its descendants depth-first, parents before
// children. It stops at the first error fn returns.
func Walk(root Page, fn func(p Page, depth int) error) error {
	var walk func(p Page, depth int) error
	walk = func(p Page, depth int) error {
		if err := fn(p, depth); err != nil {
			return err
		}
		for _, c := range p.Children() {
			if err := walk(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, 0)
}
