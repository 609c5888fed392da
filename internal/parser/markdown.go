package parser

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dgallion1/helpdoc/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"gopkg.in/yaml.v3"
)

// MarkdownParser handles Markdown files using goldmark.
//
// Headings, paragraphs, tight list items and table cells become text nodes
// holding their inline content with the markup removed. Code blocks, HTML
// blocks, raw inline HTML and images carry no translatable text.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}

	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}

	doc := &doctree.Document{
		Name:  filename,
		Title: baseTitle(filename),
		Meta:  meta,
	}
	if title, ok := meta["title"].(string); ok && title != "" {
		doc.Title = title
		doc.Children = append(doc.Children, &doctree.Node{Kind: doctree.KindMeta, Text: title})
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(body))
	doc.Children = append(doc.Children, markdownBlocks(root, body)...)

	return doc, nil
}

// splitFrontMatter separates a leading "---" fenced YAML block from the
// markdown body. Documents without one are returned unchanged.
func splitFrontMatter(src []byte) (map[string]any, []byte, error) {
	first := bytes.IndexByte(src, '\n')
	if first < 0 || string(bytes.TrimRight(src[:first], "\r")) != "---" {
		return nil, src, nil
	}
	rest := src[first+1:]

	for pos := 0; pos < len(rest); {
		next := len(rest)
		line := rest[pos:]
		if end := bytes.IndexByte(line, '\n'); end >= 0 {
			line = line[:end]
			next = pos + end + 1
		}
		if string(bytes.TrimRight(line, "\r")) == "---" {
			var meta map[string]any
			if err := yaml.Unmarshal(rest[:pos], &meta); err != nil {
				return nil, nil, fmt.Errorf("%w: front matter: %w", ErrMalformed, err)
			}
			return meta, rest[next:], nil
		}
		pos = next
	}
	return nil, nil, fmt.Errorf("%w: unterminated front matter", ErrMalformed)
}

func markdownBlocks(parent ast.Node, src []byte) []*doctree.Node {
	var out []*doctree.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if node := markdownBlock(n, src); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func markdownBlock(n ast.Node, src []byte) *doctree.Node {
	switch n.(type) {
	case *ast.Heading:
		return &doctree.Node{Kind: doctree.KindHeading, Text: inlineText(n, src)}
	case *ast.Paragraph, *ast.TextBlock:
		return &doctree.Node{Kind: doctree.KindParagraph, Text: inlineText(n, src)}
	case *ast.List:
		return &doctree.Node{Kind: doctree.KindList, Children: markdownBlocks(n, src)}
	case *ast.ListItem:
		return &doctree.Node{Kind: doctree.KindItem, Children: markdownBlocks(n, src)}
	case *ast.Blockquote:
		return &doctree.Node{Kind: doctree.KindQuote, Children: markdownBlocks(n, src)}
	case *extast.Table:
		return &doctree.Node{Kind: doctree.KindTable, Children: markdownBlocks(n, src)}
	case *extast.TableHeader, *extast.TableRow:
		return &doctree.Node{Kind: doctree.KindRow, Children: markdownBlocks(n, src)}
	case *extast.TableCell:
		return &doctree.Node{Kind: doctree.KindCell, Text: inlineText(n, src)}
	}
	return nil
}

// inlineWriter joins inline runs. Line breaks are held back until more text
// follows so a block never ends in a break.
type inlineWriter struct {
	buf     bytes.Buffer
	pending byte
}

func (w *inlineWriter) write(b []byte) {
	if len(b) == 0 {
		return
	}
	if w.pending != 0 {
		w.buf.WriteByte(w.pending)
		w.pending = 0
	}
	w.buf.Write(b)
}

func (w *inlineWriter) lineBreak(hard bool) {
	if w.buf.Len() == 0 {
		return
	}
	if hard {
		w.pending = '\n'
	} else if w.pending == 0 {
		w.pending = ' '
	}
}

// inlineText gets the literal text of a block's inline children.
func inlineText(n ast.Node, src []byte) string {
	var w inlineWriter
	writeInline(&w, n, src)
	return w.buf.String()
}

func writeInline(w *inlineWriter, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			v := util.UnescapePunctuations(c.Value(src))
			v = util.ResolveNumericReferences(util.ResolveEntityNames(v))
			w.write(v)
			if c.HardLineBreak() || c.SoftLineBreak() {
				w.lineBreak(c.HardLineBreak())
			}
		case *ast.String:
			w.write(c.Value)
		case *ast.CodeSpan:
			for t := c.FirstChild(); t != nil; t = t.NextSibling() {
				if seg, ok := t.(*ast.Text); ok {
					// Line endings inside a code span read as spaces.
					w.write(bytes.ReplaceAll(seg.Value(src), []byte("\n"), []byte(" ")))
				}
			}
		case *ast.AutoLink:
			w.write(c.Label(src))
		case *ast.Image, *ast.RawHTML:
			// No visible text.
		default:
			// Emphasis, links and other inline containers.
			writeInline(w, c, src)
		}
	}
}
