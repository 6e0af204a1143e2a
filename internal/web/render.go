package web

import (
	"bytes"
	"encoding/json"
	"html/template"

	"fitsync/fitsync-ai/internal/domain"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in model output is omitted; goldmark only passes it through with html.WithUnsafe.
var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// renderMarkdown turns one plan section into HTML.
func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(text), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>")
	}
	return template.HTML(buf.String())
}

// profileJSON shows a stored profile as submitted, extra fields included.
func profileJSON(p domain.Profile) string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

var templateFuncs = template.FuncMap{
	"markdown":    renderMarkdown,
	"profileJSON": profileJSON,
}
