package rendering

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown renders GitHub-flavoured markdown. Raw HTML in the source is
// omitted, so the output is safe to embed in the page unescaped.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown converts generated advert markdown to HTML for the preview pane.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", &RenderError{
			Message: "failed to convert markdown",
			Cause:   err,
		}
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark drops raw HTML without html.WithUnsafe
}
