package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/helpdoc/internal/config"
	"github.com/dgallion1/helpdoc/internal/extract"
	"github.com/dgallion1/helpdoc/internal/helptree"
	"github.com/dgallion1/helpdoc/internal/keymap"
	"github.com/dgallion1/helpdoc/internal/live"
	"github.com/dgallion1/helpdoc/internal/manual"
	"github.com/dgallion1/helpdoc/internal/userguide"
	tp "github.com/xlab/treeprint"
)

// app bundles what every command needs.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	pages *helptree.Registry
	live  *live.Registry
}

// newApp loads configuration and builds the manual. Logs go to stderr so
// stdout stays free for command output.
func newApp() (*app, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	pages, err := manual.New()
	if err != nil {
		return nil, err
	}

	keys := keymap.Defaults()
	if cfg.KeymapPath != "" {
		custom, err := keymap.Load(cfg.KeymapPath)
		if err != nil {
			return nil, fmt.Errorf("loading keymap: %w", err)
		}
		keys = keymap.Merge(keys, custom)
	}
	reg := live.NewRegistry()
	keymap.RegisterAll(reg, keys)

	return &app{cfg: cfg, log: log, pages: pages, live: reg}, nil
}

func (a *app) session() *helptree.Session {
	return &helptree.Session{
		Translator: helptree.Identity{},
		Live:       a.live,
		Pages:      a.pages,
		Info:       a.cfg.Meta(),
		LinkPrefix: a.cfg.LinkPrefix,
		Log:        a.log,
	}
}

// printTree writes the page hierarchy below root, one title per node.
func printTree(w io.Writer, root helptree.Page, env helptree.Env) error {
	printer := tp.New()
	var add func(t tp.Tree, p helptree.Page)
	add = func(t tp.Tree, p helptree.Page) {
		label := fmt.Sprintf("%s (%s)", p.Title(env), p.ID())
		children := p.Children()
		if len(children) == 0 {
			t.AddNode(label)
			return
		}
		branch := t.AddBranch(label)
		for _, c := range children {
			add(branch, c)
		}
	}
	add(printer, root)
	_, err := io.WriteString(w, printer.String())
	return err
}

// printPage writes the title and body of the page with the given id, or of
// the fallback page when id is unknown.
func printPage(w io.Writer, pages *helptree.Registry, id string, env helptree.Env) error {
	p, ok := pages.Lookup(id)
	if !ok {
		p = manual.Fallback(pages)
	}
	body, err := p.Body(env)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n\n%s\n", p.Title(env), body)
	return err
}

// extractDocs writes the strings of the named documents below dir to w and
// returns the number of lines written. Lines of documents before a failing
// one are still flushed.
func extractDocs(w io.Writer, dir string, names []string, log *slog.Logger) (int, error) {
	out := bufio.NewWriter(w)
	e := extract.New(out, log)
	err := e.Run(names, userguide.Locator{Dir: dir}.Open)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return e.Units(), err
}
