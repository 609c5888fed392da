package helptree

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePage   = errors.New("duplicate page")
	ErrUnknownPage     = errors.New("unknown page")
	ErrMultipleParents = errors.New("page has more than one parent")
	ErrNotLinked       = errors.New("page tree not linked")
)

// Registry holds page declarations. Pages are declared first and linked
// afterwards, so children may refer to pages declared later.
type Registry struct {
	pages map[string]*page
	order []string
	root  string
}

func NewRegistry() *Registry {
	return &Registry{pages: make(map[string]*page)}
}

// Declare adds a page.
func (r *Registry) Declare(d Decl) (Page, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("declare page: empty id")
	}
	if _, ok := r.pages[d.ID]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePage, d.ID)
	}
	d.Children = append([]string(nil), d.Children...)
	p := &page{decl: d}
	r.pages[d.ID] = p
	r.order = append(r.order, d.ID)
	return p, nil
}

// Link resolves child references of every declared page and checks that the
// tree below root is acyclic with a single parent per page. Nothing changes
// when Link fails.
func (r *Registry) Link(root string) error {
	if _, ok := r.pages[root]; !ok {
		return fmt.Errorf("%w: root %q", ErrUnknownPage, root)
	}

	resolved := make(map[string][]Page, len(r.pages))
	for _, id := range r.order {
		p := r.pages[id]
		for _, cid := range p.decl.Children {
			c, ok := r.pages[cid]
			if !ok {
				return fmt.Errorf("%w: %q (child of %q)", ErrUnknownPage, cid, id)
			}
			resolved[id] = append(resolved[id], c)
		}
	}

	seen := make(map[string]bool)
	var visit func(id, parent string) error
	visit = func(id, parent string) error {
		if seen[id] {
			return fmt.Errorf("%w: %q (again under %q)", ErrMultipleParents, id, parent)
		}
		seen[id] = true
		for _, c := range resolved[id] {
			if err := visit(c.ID(), id); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root, ""); err != nil {
		return err
	}

	for id, p := range r.pages {
		p.children = resolved[id]
	}
	r.root = root
	return nil
}

// Root returns the page Link was called with.
func (r *Registry) Root() (Page, error) {
	if r.root == "" {
		return nil, ErrNotLinked
	}
	return r.pages[r.root], nil
}

// Lookup finds a page by identifier.
func (r *Registry) Lookup(id string) (Page, bool) {
	p, ok := r.pages[id]
	if !ok {
		return nil, false
	}
	return p, true
}

// IDs returns all page identifiers in declaration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}
