// Package view renders the HTML pages and the datastar fragments that patch
// them. Every page and fragment is a templ.Component so handlers and SSE
// patches share one rendering path.
package view

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"strconv"

	"github.com/a-h/templ"
)

//go:embed static
var staticFS embed.FS

// Static returns the stylesheet and browser script served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Language is an option in the chat language picker.
type Language struct {
	Code string
	Name string
}

// Languages lists the languages offered in the chat UI.
var Languages = []Language{
	{"en", "English"},
	{"hi", "हिन्दी"},
	{"bn", "বাংলা"},
	{"ta", "தமிழ்"},
	{"te", "తెలుగు"},
	{"mr", "मराठी"},
	{"gu", "ગુજરાતી"},
	{"kn", "ಕನ್ನಡ"},
	{"ml", "മലയാളം"},
	{"pa", "ਪੰਜਾਬੀ"},
	{"ur", "اردو"},
}

// markup writes HTML and keeps the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err == nil {
		_, m.err = io.WriteString(m.w, s)
	}
}

// text writes s escaped for element content and quoted attribute values.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) num(n int64) {
	m.raw(strconv.FormatInt(n, 10))
}

func (m *markup) render(c templ.Component) {
	if m.err == nil {
		m.err = c.Render(m.ctx, m.w)
	}
}

func component(fn func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		m := &markup{ctx: ctx, w: w}
		fn(m)
		return m.err
	})
}

// withChildren renders parent with content as its children.
func withChildren(parent, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, content), w)
	})
}
