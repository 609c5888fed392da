package manual

import (
	"strings"
	"testing"

	"github.com/dgallion1/helpdoc/internal/helptree"
	"github.com/dgallion1/helpdoc/internal/keymap"
	"github.com/dgallion1/helpdoc/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalog map[string]string

func (c catalog) Translate(msgid string) string {
	if s, ok := c[msgid]; ok {
		return s
	}
	return msgid
}

func session(t *testing.T, reg *live.Registry) (*helptree.Registry, *helptree.Session) {
	t.Helper()
	pages, err := New()
	require.NoError(t, err)
	return pages, &helptree.Session{
		Live:  reg,
		Pages: pages,
		Info: helptree.Meta{
			AppName:    "Frescobaldi",
			Version:    "2.0.0",
			Maintainer: "Wilbert Berendsen",
			Credits:    []string{"Thanks to all translators."},
		},
	}
}

func childIDs(p helptree.Page) []string {
	var out []string
	for _, c := range p.Children() {
		out = append(out, c.ID())
	}
	return out
}

func TestNew_Tree(t *testing.T) {
	pages, err := New()
	require.NoError(t, err)

	root, err := pages.Root()
	require.NoError(t, err)
	assert.Equal(t, Contents, root.ID())
	assert.Equal(t, []string{Introduction, Starting, ScoreWizard, About}, childIDs(root))

	about, ok := pages.Lookup(About)
	require.True(t, ok)
	assert.Equal(t, []string{Credits, Contributing, History}, childIDs(about))
}

func TestNoHelp(t *testing.T) {
	pages, env := session(t, nil)
	p := Fallback(pages)

	assert.Empty(t, p.Children())
	assert.Equal(t, "No Help", p.Title(env))
	body, err := p.Body(env)
	require.NoError(t, err)
	assert.Equal(t, "No help has been found on this topic.", body)
}

func TestAllBodiesRender(t *testing.T) {
	reg := live.NewRegistry()
	keymap.RegisterAll(reg, keymap.Defaults())
	pages, env := session(t, reg)

	for _, id := range pages.IDs() {
		p, ok := pages.Lookup(id)
		require.True(t, ok)
		body, err := p.Body(env)
		require.NoError(t, err, id)
		assert.NotEmpty(t, body, id)
		assert.NotEmpty(t, p.Title(env), id)
	}
}

func TestContents(t *testing.T) {
	pages, env := session(t, nil)
	p, _ := pages.Lookup(Contents)

	body, err := p.Body(env)
	require.NoError(t, err)
	assert.Contains(t, body, "written by Wilbert Berendsen and documents Frescobaldi version 2.0.0.")
	assert.NotContains(t, body, translatorCredit)

	env.Translator = catalog{translatorCredit: "Vertaald door Jan."}
	body, err = p.Body(env)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(body, "<p>Vertaald door Jan.</p>"))
}

func TestIntroductionLinksToStarting(t *testing.T) {
	pages, env := session(t, nil)
	p, _ := pages.Lookup(Introduction)

	body, err := p.Body(env)
	require.NoError(t, err)
	assert.Contains(t, body, `<a href="help:starting">Getting Started</a>`)
}

func TestStarting_Shortcuts(t *testing.T) {
	reg := live.NewRegistry()
	keymap.RegisterAll(reg, keymap.Defaults())
	pages, env := session(t, reg)
	p, _ := pages.Lookup(Starting)

	body, err := p.Body(env)
	require.NoError(t, err)
	assert.Contains(t, body, "press <em>Ctrl+M</em>.")
	assert.Contains(t, body, "press <em>Ctrl+J</em>")
	assert.Contains(t, body, `\relative c&#39;&#39; {`)
}

func TestStarting_NoInstances(t *testing.T) {
	pages, env := session(t, live.NewRegistry())
	p, _ := pages.Lookup(Starting)

	body, err := p.Body(env)
	require.NoError(t, err)
	assert.Contains(t, body, "press "+helptree.NoKey+".")
}

func TestCredits(t *testing.T) {
	pages, env := session(t, nil)
	p, _ := pages.Lookup(Credits)

	body, err := p.Body(env)
	require.NoError(t, err)
	assert.Equal(t,
		"<p>Frescobaldi's main author is Wilbert Berendsen.</p>\n<p>Thanks to all translators.</p>",
		body)
}

func TestMessages(t *testing.T) {
	pages, _ := session(t, nil)

	p, _ := pages.Lookup(Contents)
	msgs := p.(helptree.Messenger).Messages()
	assert.Equal(t, []string{"Frescobaldi Manual", contentsBody, translatorCredit}, msgs)

	p, _ = pages.Lookup(Credits)
	msgs = p.(helptree.Messenger).Messages()
	assert.Equal(t, []string{"Credits", mainAuthor}, msgs)
}
