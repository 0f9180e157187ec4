// Package htmlsanitize cleans admin-authored rich text before it reaches
// the public feed.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the UGC policy extended with table layout attributes used by
// the rich-text editor. Policies are safe for concurrent use once built.
var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}()

var strict = bluemonday.StrictPolicy()

// Sanitize strips scripts, event handlers, and unsafe URLs while keeping
// ordinary formatting.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// StripTags removes all markup, leaving text only.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// IsPlainText reports whether s contains no HTML tags.
func IsPlainText(s string) bool {
	i := strings.Index(s, "<")
	return i < 0 || !strings.Contains(s[i:], ">")
}

// PlainTextToHTML escapes s and puts a <br> before each newline.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>\n")
}

// PrepareForDisplay returns markup that is safe to render: plain text is
// escaped with line breaks kept, HTML is sanitized.
func PrepareForDisplay(s string) string {
	if IsPlainText(s) {
		return PlainTextToHTML(s)
	}
	return Sanitize(s)
}
