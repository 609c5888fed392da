package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/helpdoc/internal/doctree"
)

func TestHTMLParser_HelpBody(t *testing.T) {
	input := `<p>
Frescobaldi is named after
<a href="http://en.wikipedia.org/wiki/Girolamo_Frescobaldi">Girolamo
Frescobaldi (1583 &#8211; 1643)</a>, an Italian organist.
</p>

<ul>
<li>Hovering notes</li>
<li>Ctrl-wheel to <em>zoom</em></li>
</ul>

<p><img src="getting_started1.png"></p>
<pre>\relative c'' { c d e }</pre>
<script>var x = "skip";</script>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "about.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := doctree.Texts(doc)
	want := []string{
		"Frescobaldi is named after Girolamo Frescobaldi (1583 – 1643), an Italian organist.",
		"Hovering notes",
		"Ctrl-wheel to zoom",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHTMLParser_TitleAndHeadings(t *testing.T) {
	input := `<html><head><title>Manual</title></head>
<body><h1>Intro</h1><p>First.</p><h2>More</h2><p>Second.</p></body></html>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "manual.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Manual" {
		t.Errorf("expected title %q, got %q", "Manual", doc.Title)
	}
	got := doctree.Texts(doc)
	want := []string{"Manual", "Intro", "First.", "More", "Second."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	if doc.Children[1].Kind != doctree.KindHeading {
		t.Errorf("expected heading kind, got %q", doc.Children[1].Kind)
	}
}

func TestHTMLParser_LooseText(t *testing.T) {
	input := `<div>loose <b>bold</b> text<p>para</p>tail</div>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "loose.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := doctree.Texts(doc)
	want := []string{"loose bold text", "para", "tail"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHTMLParser_InvalidUTF8(t *testing.T) {
	p := &HTMLParser{}
	_, err := p.Parse(strings.NewReader("<p>\xff</p>"), "bad.html")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}
