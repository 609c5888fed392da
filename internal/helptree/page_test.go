package helptree

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/helpdoc/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upper struct{}

func (upper) Translate(msgid string) string { return strings.ToUpper(msgid) }

type keys map[string]string

func (k keys) Shortcut(action string) (string, bool) {
	v, ok := k[action]
	return v, ok
}

func TestPage_BodyFormatsArgs(t *testing.T) {
	r := NewRegistry()
	p, err := r.Declare(Decl{
		ID:    "contents",
		Title: "Manual",
		Body:  "<p>{appname} version {version}</p>",
		Args: func(env Env) (Args, error) {
			m := env.Meta()
			return Args{"appname": m.AppName, "version": m.Version}, nil
		},
	})
	require.NoError(t, err)

	env := &Session{Info: Meta{AppName: "Frescobaldi", Version: "2.0.0"}}
	body, err := p.Body(env)
	require.NoError(t, err)
	assert.Equal(t, "<p>Frescobaldi version 2.0.0</p>", body)
	assert.Equal(t, "Manual", p.Title(env))
}

func TestPage_BodyTranslatesBeforeFormatting(t *testing.T) {
	r := NewRegistry()
	p, err := r.Declare(Decl{
		ID:    "p",
		Title: "title",
		Body:  "hello {who}",
		Args:  func(Env) (Args, error) { return Args{"WHO": "x"}, nil },
	})
	require.NoError(t, err)

	body, err := p.Body(&Session{Translator: upper{}})
	require.NoError(t, err)
	assert.Equal(t, "HELLO x", body)
	assert.Equal(t, "TITLE", p.Title(&Session{Translator: upper{}}))
}

func TestPage_MissingArgIsFatal(t *testing.T) {
	r := NewRegistry()
	p, err := r.Declare(Decl{
		ID:   "broken",
		Body: "see {getting_started}",
		Args: func(Env) (Args, error) { return Args{}, nil },
	})
	require.NoError(t, err)

	_, err = p.Body(&Session{})
	assert.ErrorIs(t, err, ErrMissingArg)
	assert.Contains(t, err.Error(), "broken")
}

func TestPage_ArgsErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	p, err := r.Declare(Decl{
		ID:   "p",
		Body: "{x}",
		Args: func(Env) (Args, error) { return nil, boom },
	})
	require.NoError(t, err)

	_, err = p.Body(&Session{})
	assert.ErrorIs(t, err, boom)
}

func TestPage_BodyWithoutArgsKeepsBraces(t *testing.T) {
	r := NewRegistry()
	p, err := r.Declare(Decl{ID: "p", Body: "\\relative c'' { c }"})
	require.NoError(t, err)

	body, err := p.Body(&Session{})
	require.NoError(t, err)
	assert.Equal(t, "\\relative c'' { c }", body)
}

func TestPage_Render(t *testing.T) {
	r := NewRegistry()
	p, err := r.Declare(Decl{
		ID:    "credits",
		Title: "Credits",
		Render: func(env Env) (string, error) {
			return "<p>" + env.Tr("Thanks.") + "</p>", nil
		},
		Extra: []string{"Thanks."},
	})
	require.NoError(t, err)

	body, err := p.Body(&Session{})
	require.NoError(t, err)
	assert.Equal(t, "<p>Thanks.</p>", body)

	m, ok := p.(Messenger)
	require.True(t, ok)
	assert.Equal(t, []string{"Credits", "Thanks."}, m.Messages())
}

func TestPage_Messages(t *testing.T) {
	r := NewRegistry()
	p, err := r.Declare(Decl{ID: "p", Title: "No Help", Body: "No help has been found on this topic."})
	require.NoError(t, err)

	m, ok := p.(Messenger)
	require.True(t, ok)
	assert.Equal(t, []string{"No Help", "No help has been found on this topic."}, m.Messages())
}

func TestSession_ShortcutWithoutInstance(t *testing.T) {
	env := &Session{Live: live.NewRegistry()}
	assert.Equal(t, NoKey, env.Shortcut("engraver", "engrave_preview"))

	env = &Session{}
	assert.Equal(t, NoKey, env.Shortcut("engraver", "engrave_preview"))
}

func TestSession_ShortcutBodyDoesNotFail(t *testing.T) {
	r := NewRegistry()
	p, err := r.Declare(Decl{
		ID:   "starting",
		Body: "press {key}",
		Args: func(env Env) (Args, error) {
			return Args{"key": env.Shortcut("engraver", "engrave_preview")}, nil
		},
	})
	require.NoError(t, err)

	body, err := p.Body(&Session{Live: live.NewRegistry()})
	require.NoError(t, err)
	assert.Equal(t, "press "+NoKey, body)
}

func TestSession_ShortcutFromFirstInstance(t *testing.T) {
	reg := live.NewRegistry()
	reg.Register("engraver", keys{"engrave_preview": "Ctrl+M"})
	reg.Register("engraver", keys{"engrave_preview": "F9"})
	env := &Session{Live: reg, Translator: upper{}}

	assert.Equal(t, "<em>Ctrl+M</em>", env.Shortcut("engraver", "engrave_preview"))
	assert.Equal(t, strings.ToUpper(NoKey), env.Shortcut("engraver", "engrave_custom"))
}

func TestSession_ShortcutEscapesKeys(t *testing.T) {
	reg := live.NewRegistry()
	reg.Register("editor", keys{"indent": "Ctrl+<"})
	env := &Session{Live: reg}
	assert.Equal(t, "<em>Ctrl+&lt;</em>", env.Shortcut("editor", "indent"))
}

func TestSession_Link(t *testing.T) {
	r := NewRegistry()
	_, err := r.Declare(Decl{ID: "starting", Title: "Getting Started"})
	require.NoError(t, err)

	env := &Session{Pages: r}
	link, err := env.Link("starting")
	require.NoError(t, err)
	assert.Equal(t, `<a href="help:starting">Getting Started</a>`, link)

	env.LinkPrefix = "/help/"
	link, err = env.Link("starting")
	require.NoError(t, err)
	assert.Equal(t, `<a href="/help/starting">Getting Started</a>`, link)

	_, err = env.Link("nowhere")
	assert.ErrorIs(t, err, ErrUnknownPage)
}
