package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/helpdoc/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files and HTML fragments such as help page bodies.
type HTMLParser struct{}

// Elements whose whole text content forms one unit.
var htmlTextBlocks = map[string]doctree.Kind{
	"p":          doctree.KindParagraph,
	"h1":         doctree.KindHeading,
	"h2":         doctree.KindHeading,
	"h3":         doctree.KindHeading,
	"h4":         doctree.KindHeading,
	"h5":         doctree.KindHeading,
	"h6":         doctree.KindHeading,
	"td":         doctree.KindCell,
	"th":         doctree.KindCell,
	"dt":         doctree.KindParagraph,
	"dd":         doctree.KindParagraph,
	"caption":    doctree.KindParagraph,
	"figcaption": doctree.KindParagraph,
}

// Elements that group blocks. An empty kind is flattened into its parent.
var htmlContainers = map[string]doctree.Kind{
	"ul":         doctree.KindList,
	"ol":         doctree.KindList,
	"dl":         doctree.KindList,
	"li":         doctree.KindItem,
	"blockquote": doctree.KindQuote,
	"table":      doctree.KindTable,
	"tr":         doctree.KindRow,
	"thead":      "",
	"tbody":      "",
	"tfoot":      "",
	"div":        "",
	"section":    "",
	"article":    "",
	"main":       "",
	"figure":     "",
	"center":     "",
}

var htmlSkipped = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"pre":      true,
	"img":      true,
	"noscript": true,
	"template": true,
}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %w", ErrMalformed, err)
	}

	doc := &doctree.Document{
		Name:  filename,
		Title: baseTitle(filename),
	}

	// Extract title from <title> tag if present.
	if title := findTitle(root); title != "" {
		doc.Title = title
		doc.Children = append(doc.Children, &doctree.Node{Kind: doctree.KindMeta, Text: title})
	}

	body := findBody(root)
	if body == nil {
		body = root
	}
	doc.Children = append(doc.Children, htmlBlocks(body)...)

	return doc, nil
}

// htmlBlocks converts the children of n. Loose text and inline elements
// between blocks are gathered into paragraphs.
func htmlBlocks(n *html.Node) []*doctree.Node {
	var out []*doctree.Node
	var run strings.Builder

	flush := func() {
		if t := collapseSpace(run.String()); t != "" {
			out = append(out, &doctree.Node{Kind: doctree.KindParagraph, Text: t})
		}
		run.Reset()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			run.WriteString(c.Data)
			continue
		}
		if c.Type != html.ElementNode || htmlSkipped[c.Data] {
			continue
		}
		if kind, ok := htmlTextBlocks[c.Data]; ok {
			flush()
			if t := textContent(c); t != "" {
				out = append(out, &doctree.Node{Kind: kind, Text: t})
			}
			continue
		}
		if kind, ok := htmlContainers[c.Data]; ok {
			flush()
			kids := htmlBlocks(c)
			if kind == "" {
				out = append(out, kids...)
			} else {
				out = append(out, &doctree.Node{Kind: kind, Children: kids})
			}
			continue
		}
		writeRawText(&run, c)
	}
	flush()

	return out
}

func writeRawText(buf *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		buf.WriteString(n.Data)
		return
	case n.Type == html.ElementNode && htmlSkipped[n.Data]:
		return
	case n.Type == html.ElementNode && n.Data == "br":
		buf.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeRawText(buf, c)
	}
}

// textContent returns the visible text below n with HTML whitespace collapsed.
func textContent(n *html.Node) string {
	var buf strings.Builder
	writeRawText(&buf, n)
	return collapseSpace(buf.String())
}

// collapseSpace applies HTML whitespace rules: runs become one space and
// leading or trailing space is dropped.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
