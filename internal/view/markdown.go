package view

import (
	"bytes"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// RenderMarkdown converts a bot response to HTML. Raw HTML in src is
// omitted from the output.
func RenderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		slog.Warn("render markdown", "error", err)
		return templ.EscapeString(src)
	}
	return buf.String()
}
