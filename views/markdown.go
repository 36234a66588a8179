package views

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
)

// Markdown converts guideline and caption text to HTML. Backend content is
// markdown by convention; anything goldmark chokes on is shown escaped.
func Markdown(md string) template.HTML {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}
