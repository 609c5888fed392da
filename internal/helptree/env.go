package helptree

import (
	"fmt"
	"log/slog"

	"github.com/dgallion1/helpdoc/internal/live"
	"golang.org/x/net/html"
)

// NoKey replaces a shortcut that cannot be resolved.
const NoKey = "(no key defined)"

// DefaultLinkPrefix is the href scheme of links between pages.
const DefaultLinkPrefix = "help:"

// Meta describes the product the manual documents.
type Meta struct {
	AppName    string
	Version    string
	Maintainer string
	Website    string
	Credits    []string
}

// Translator maps a msgid to text in the current locale.
type Translator interface {
	Translate(msgid string) string
}

// Identity leaves every msgid untranslated.
type Identity struct{}

func (Identity) Translate(msgid string) string { return msgid }

// Env is the read-only context page producers are evaluated against.
type Env interface {
	// Tr translates a msgid.
	Tr(msgid string) string
	// Shortcut returns display markup for the key bound to action in the
	// first live instance of subsystem, or a neutral placeholder.
	Shortcut(subsystem, action string) string
	// Link returns markup referring to another page.
	Link(id string) (string, error)
	Meta() Meta
}

// Session is the Env a help host builds for page producers.
type Session struct {
	Translator Translator
	Live       *live.Registry
	Pages      *Registry
	Info       Meta
	LinkPrefix string
	Log        *slog.Logger
}

var _ Env = (*Session)(nil)

func (s *Session) Tr(msgid string) string {
	if s.Translator == nil {
		return msgid
	}
	return s.Translator.Translate(msgid)
}

func (s *Session) Shortcut(subsystem, action string) string {
	if s.Live == nil {
		s.logger().Debug("no live registry", "subsystem", subsystem, "action", action)
		return s.Tr(NoKey)
	}
	inst, ok := s.Live.First(subsystem)
	if !ok {
		s.logger().Debug("no live instance", "subsystem", subsystem, "action", action)
		return s.Tr(NoKey)
	}
	key, ok := inst.Shortcut(action)
	if !ok || key == "" {
		return s.Tr(NoKey)
	}
	return "<em>" + html.EscapeString(key) + "</em>"
}

func (s *Session) Link(id string) (string, error) {
	if s.Pages == nil {
		return "", fmt.Errorf("link %q: %w", id, ErrNotLinked)
	}
	p, ok := s.Pages.Lookup(id)
	if !ok {
		return "", fmt.Errorf("link: %w: %q", ErrUnknownPage, id)
	}
	prefix := s.LinkPrefix
	if prefix == "" {
		prefix = DefaultLinkPrefix
	}
	return fmt.Sprintf(`<a href="%s%s">%s</a>`, prefix, id, p.Title(s)), nil
}

func (s *Session) Meta() Meta { return s.Info }

func (s *Session) logger() *slog.Logger {
	if s.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Log
}
