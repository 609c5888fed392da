// Package manual declares the pages of the application manual.
package manual

import (
	"fmt"

	"github.com/dgallion1/helpdoc/internal/helptree"
)

// Page identifiers.
const (
	NoHelp       = "nohelp"
	Contents     = "contents"
	Introduction = "introduction"
	Starting     = "starting"
	ScoreWizard  = "scorewiz"
	About        = "about"
	Credits      = "credits"
	Contributing = "contributing"
	History      = "history"
)

// Root is the page the manual opens on.
const Root = Contents

// New declares the manual and links it below Root. NoHelp is declared but
// stays outside the tree.
func New() (*helptree.Registry, error) {
	r := helptree.NewRegistry()
	for _, d := range decls() {
		if _, err := r.Declare(d); err != nil {
			return nil, fmt.Errorf("manual: %w", err)
		}
	}
	if err := r.Link(Root); err != nil {
		return nil, fmt.Errorf("manual: %w", err)
	}
	return r, nil
}

// Fallback returns the page shown when no help exists for a topic.
func Fallback(r *helptree.Registry) helptree.Page {
	p, ok := r.Lookup(NoHelp)
	if !ok {
		panic("manual: registry has no " + NoHelp + " page")
	}
	return p
}

func decls() []helptree.Decl {
	return []helptree.Decl{
		{
			ID:    NoHelp,
			Title: "No Help",
			Body:  "No help has been found on this topic.",
		},
		{
			ID:       Contents,
			Title:    "Frescobaldi Manual",
			Body:     contentsBody,
			Render:   renderContents,
			Extra:    []string{translatorCredit},
			Children: []string{Introduction, Starting, ScoreWizard, About},
		},
		{
			ID:    Introduction,
			Title: "Introduction",
			Body:  introductionBody,
			Args: func(env helptree.Env) (helptree.Args, error) {
				link, err := env.Link(Starting)
				if err != nil {
					return nil, err
				}
				return helptree.Args{"getting_started": link}, nil
			},
		},
		{
			ID:    Starting,
			Title: "Getting Started",
			Body:  startingBody,
			Args: func(env helptree.Env) (helptree.Args, error) {
				return helptree.Args{
					"example":     lilypondExample(),
					"key_engrave": env.Shortcut("engraver", "engrave_preview"),
					"key_jump":    env.Shortcut("musicview", "music_jump_to_cursor"),
				}, nil
			},
		},
		{
			ID:    ScoreWizard,
			Title: "Score Setup Wizard",
			Body:  scoreWizardBody,
		},
		{
			ID:       About,
			Title:    "About Frescobaldi",
			Body:     aboutBody,
			Children: []string{Credits, Contributing, History},
		},
		{
			ID:     Credits,
			Title:  "Credits",
			Render: renderCredits,
			Extra:  []string{mainAuthor},
		},
		{
			ID:    Contributing,
			Title: "Contributing",
			Body:  contributingBody,
			Args: func(helptree.Env) (helptree.Args, error) {
				return helptree.Args{"url": repositoryLink}, nil
			},
		},
		{
			ID:    History,
			Title: "History of Frescobaldi",
			Body:  historyBody,
		},
	}
}
