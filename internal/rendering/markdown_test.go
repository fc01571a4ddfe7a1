package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		selector string
		want     string
	}{
		{name: "heading", input: "# Title", selector: "h1", want: "Title"},
		{name: "section", input: "## What you’ll do", selector: "h2", want: "What you’ll do"},
		{name: "bold bullet", input: "* **Impact:** details", selector: "li strong", want: "Impact:"},
		{name: "paragraph", input: "Plain text.", selector: "p", want: "Plain text."},
		{name: "rule", input: "a\n\n---\n\nb", selector: "hr", want: ""},
		{name: "strikethrough", input: "~~old~~", selector: "del", want: "old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Markdown(tt.input)
			require.NoError(t, err)

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
			require.NoError(t, err)
			sel := doc.Find(tt.selector)
			require.Equal(t, 1, sel.Length(), "expected one %s in %s", tt.selector, out)
			assert.Equal(t, tt.want, sel.Text())
		})
	}
}

func TestMarkdown_DropsRawHTML(t *testing.T) {
	out, err := Markdown("hello <script>alert(1)</script>\n\n<iframe src=\"x\"></iframe>")
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<script>")
	assert.NotContains(t, string(out), "<iframe")
}

func TestMarkdown_Empty(t *testing.T) {
	out, err := Markdown("")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(out)))
}
