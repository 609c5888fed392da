package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestDOCXParser_NotAZip(t *testing.T) {
	p := &DOCXParser{}
	_, err := p.Parse(strings.NewReader("plain text, not a docx archive"), "guide.docx")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDOCXParser_Empty(t *testing.T) {
	p := &DOCXParser{}
	_, err := p.Parse(strings.NewReader(""), "empty.docx")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
