package doctree

// Kind classifies a node of a parsed document.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindCell      Kind = "cell"
	KindMeta      Kind = "meta" // front matter title

	KindList  Kind = "list"
	KindItem  Kind = "item"
	KindQuote Kind = "quote"
	KindTable Kind = "table"
	KindRow   Kind = "row"
)

// Document is the root of a parsed input document.
type Document struct {
	Name     string         // Name the document was requested by
	Title    string         // From front matter or filename
	Meta     map[string]any // Front matter, nil if absent
	Children []*Node        // Top-level blocks in source order
}

// Node is a block in the document tree. Container nodes have empty Text.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node
}

// Container reports whether the node only groups other nodes.
func (n *Node) Container() bool {
	return n.Text == ""
}

// Walk visits every node of doc depth-first, parents before children,
// siblings in source order. It stops at the first error fn returns.
func Walk(doc *Document, fn func(n *Node, depth int) error) error {
	var walk func(nodes []*Node, depth int) error
	walk = func(nodes []*Node, depth int) error {
		for _, n := range nodes {
			if err := fn(n, depth); err != nil {
				return err
			}
			if err := walk(n.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(doc.Children, 0)
}

// Texts returns the text of every text-bearing node in walk order.
func Texts(doc *Document) []string {
	var out []string
	_ = Walk(doc, func(n *Node, _ int) error {
		if !n.Container() {
			out = append(out, n.Text)
		}
		return nil
	})
	return out
}
