package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/helpdoc/internal/doctree"
)

// TextParser handles plain text files. Blank lines separate paragraphs and
// the lines of one paragraph are joined with a single space.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
		}
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &doctree.Document{
		Name:  filename,
		Title: baseTitle(filename),
	}

	// Each paragraph becomes a child node.
	for _, para := range paragraphs {
		doc.Children = append(doc.Children, &doctree.Node{
			Kind: doctree.KindParagraph,
			Text: para,
		})
	}

	return doc, nil
}
