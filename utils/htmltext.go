// utils/htmltext.go
package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strip = bluemonday.StrictPolicy()

	// Collapse the blank-line runs left behind by stripped block elements.
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// StripHTML derives the plain-text alternative of an HTML email body.
// All markup is removed and HTML entities are decoded back to text.
func StripHTML(htmlBody string) string {
	text := strip.Sanitize(htmlBody)
	// StrictPolicy escapes the remaining text content; undo that so the
	// plain-text part reads naturally ("&" instead of "&amp;").
	text = html.UnescapeString(text)
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// DecodeEntities decodes HTML entities in a text fragment pulled out of
// remote page markup ("&amp;" → "&", "&#8217;" → "’").
func DecodeEntities(text string) string {
	return html.UnescapeString(text)
}
