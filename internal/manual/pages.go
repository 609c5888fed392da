package manual

import (
	"strings"

	"github.com/dgallion1/helpdoc/internal/helptree"
	"golang.org/x/net/html"
)

const (
	// translatorCredit is replaced by translators with their own name.
	translatorCredit = "Translated by Your Name."
	mainAuthor       = "Frescobaldi's main author is {author}."
)

const repositoryLink = `<a href="http://github.com/wbsoft/frescobaldi">github.com/wbsoft/frescobaldi</a>`

const contentsBody = `<p>Frescobaldi is a light-weight and powerful editor for LilyPond
sheet music documents.
This manual is written by {author} and documents {appname} version {version}.</p>`

func renderContents(env helptree.Env) (string, error) {
	m := env.Meta()
	text, err := helptree.Format(env.Tr(contentsBody), helptree.Args{
		"author":  m.Maintainer,
		"appname": m.AppName,
		"version": m.Version,
	})
	if err != nil {
		return "", err
	}
	if translator := env.Tr(translatorCredit); translator != translatorCredit {
		text += "<p>" + translator + "</p>"
	}
	return text, nil
}

const introductionBody = `<p>
<a href="http://lilypond.org/">LilyPond</a>
is an open-source music engraving program, producing very high-quality sheet
music printouts from fairly simple text input files.
Those text files can be created with any text editor, and LilyPond then loads
the text file and outputs a beautiful engraving, by default in PDF format.
</p>

<p>
Frescobaldi is an application designed to make editing LilyPond music scores
faster and easier. You still will need to learn the LilyPond input language.
If you read the {getting_started} section of this User Guide, you'll also pickup
some LilyPond basics.
</p>

<p>
Then you can continue to learn using the Learning Manual from
<a href="http://lilypond.org/doc/">LilyPond's excellent online documentation</a>.
</p>`

const example = `\relative c'' {
  \time 7/4
  c2 bes4 a2 g a bes4 a( g) f2
}
\addlyrics {
  Join us now and share the soft -- ware!
}`

func lilypondExample() string {
	return `<pre class="lilypond">` + html.EscapeString(example) + "</pre>"
}

const startingBody = `<p>
The default screen of Frescobaldi shows a text document on the left and an
empty music preview on the right.
</p>

<p>
Now, in the text view, enter some LilyPond code, like this:
</p>

{example}

<p>
Then click the Lily toolbar button or press {key_engrave}.
If all is well, LilyPond starts now and processes your file.
At the bottom of the screen you can follow LilyPond's progress.
If LilyPond does not encounter any mistakes on your part, it will produce a PDF
file that will be displayed in the music preview:
</p>

<p><img src="getting_started1.png"></p>

<p>
The musicview has many possibilities:
</p>

<ul>
<li>
Hovering notes and other objects will highlight them in the text;
click objects to move the text cursor to them
</li>

<li>
Ctrl-wheel to change the zoom. Zooming will center at the mouse pointer
</li>

<li>
Ctrl-click on an empty place to show a magnifier glass
</li>

<li>
Moving the text cursor highlights the notes in the preview; press {key_jump}
to explicitly center and highlight a note or other object in the preview.
</li>
</ul>

<p>
If your music score is finished, it is recommended to run LilyPond with clickable
notes turned off: menu LilyPond->Engrave (publish). This will result in much
smaller PDF documents.
</p>

<p>
If LilyPond does not start at all, check if you have installed LilyPond
correctly and that the lilypond command is in your system's PATH environment
variable. If needed, provide the exact path to your LilyPond executable under
Edit->Preferences->LilyPond preferences.
</p>
`

const scoreWizardBody = `<p>
The Score Setup Wizard (Ctrl+Shift+N) creates a new LilyPond document from
a few choices: titles and headers, the parts and instruments to write for,
and general score properties such as key signature, time signature and tempo.
</p>

<p>
Parts are added on the Parts tab and can be grouped into staff groups or
choirs. Every part has its own settings, for example the clef or whether to
create a lyrics context below the staff.
</p>

<p>
Click Preview to see an engraved example of the generated score, and OK to
insert the LilyPond code into the current document.
</p>`

const aboutBody = `<p>
Frescobaldi is named after
<a href="http://en.wikipedia.org/wiki/Girolamo_Frescobaldi">Girolamo
Frescobaldi (1583 &#8211; 1643)</a>, an Italian organist and composer.
</p>

<p>
Frescobaldi's homepage is at
<a href="http://www.frescobaldi.org/">www.frescobaldi.org</a>
and there is a mailinglist at
<a href="mailto:frescobaldi@googlegroups.com">frescobaldi@googlegroups.com</a>
(<a href="http://groups.google.com/group/frescobaldi">more info</a>).
</p>
`

func renderCredits(env helptree.Env) (string, error) {
	m := env.Meta()
	author, err := helptree.Format(env.Tr(mainAuthor), helptree.Args{"author": m.Maintainer})
	if err != nil {
		return "", err
	}
	paras := make([]string, 0, len(m.Credits)+1)
	paras = append(paras, "<p>"+author+"</p>")
	for _, c := range m.Credits {
		paras = append(paras, "<p>"+env.Tr(c)+"</p>")
	}
	return strings.Join(paras, "\n"), nil
}

const contributingBody = `<p>
Frescobaldi is a <a href="http://www.gnu.org/philosophy/free-sw.html">Free
Software</a> project to create a user friendly LilyPond music score editor.
The goal is to make Frescobaldi available on all major platforms.
</p>

<p>
Frescobaldi is developed in a public GitHub repository at {url}.
There you can browse or checkout the source code and report bugs and wishes.
</p>

<p>
You can contribute by simply using Frescobaldi and reporting bugs and suggestions.
Translations are also very welcome. How to create new translations is described
in the file README-translations in the source distribution of Frescobaldi.
If you want to add functionality you can find information about the source code
structure in the file README-development.
</p>
`

const historyBody = `<p>
Frescobaldi has its roots in LilyKDE, which was a plugin for KDE3's editor Kate.
LilyKDE was written in Python and released in 2007 on Christmas.
</p>

<p>
When KDE developed version 4, it was not immediately possible to make Kate
plugins in Python. So LilyKDE became a standalone application, wrapping the
Kate texteditor part, and was renamed to Frescobaldi. It still used the Okular
KDE part to display PDF documents.
Frescobaldi 0.7 was the first public release, on Christmas 2008.
On Christmas 2009 version 1.0.0 was released and on Christmas 2010 version 1.2.0.
</p>

<p>
At that time it was decided to move away from the KDE4 libraries and just use
Python and Qt4 which are easily available on all major computing platforms.
Frescobaldi 2.0 is a complete rewrite from scratch.
</p>
`
