package jinja

import (
	"bytes"
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	blockBreaks = regexp.MustCompile(`<br\s*/?>|</?p>|</?div>|</?pre>|</?h[1-6]>|</?li>|</?blockquote>`)
	blankLines  = regexp.MustCompile(`\n\s*\n+`)

	plainOnce     sync.Once
	plainPolicy   *bluemonday.Policy
	plainMarkdown goldmark.Markdown
)

// PlainText strips markdown and HTML from text, keeping paragraph breaks.
// The result is unescaped text; print it through autoescaping.
func PlainText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	plainOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
		plainMarkdown = goldmark.New()
	})

	var buf bytes.Buffer
	if err := plainMarkdown.Convert([]byte(text), &buf); err != nil {
		return text
	}

	stripped := plainPolicy.Sanitize(blockBreaks.ReplaceAllString(buf.String(), "\n"))
	stripped = blankLines.ReplaceAllString(stripped, "\n\n")
	return strings.TrimSpace(html.UnescapeString(stripped))
}
