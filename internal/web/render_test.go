package web

import (
	"testing"

	"fitsync/fitsync-ai/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	html := string(renderMarkdown("I. Workout Routine\n* **Squat** 3x10\n* Plank"))

	assert.Contains(t, html, "<strong>Squat</strong>")
	assert.Contains(t, html, "<li>Plank</li>")
	assert.NotContains(t, html, "**")
}

func TestRenderMarkdownOmitsRawHTML(t *testing.T) {
	html := string(renderMarkdown("<script>alert(1)</script>\n\ntext"))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "<p>text</p>")
}

func TestProfileJSONIncludesExtraFields(t *testing.T) {
	p := domain.DefaultProfile()
	p.Extra = map[string]interface{}{"sleep_hours": 7}

	out := profileJSON(p)
	assert.Contains(t, out, `"sleep_hours": 7`)
	assert.Contains(t, out, `"goal": "Six Pack (Abs)"`)
}
