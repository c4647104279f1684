// Package htmlsanitize reduces caller-supplied text to plain text.
// Announcement messages are rendered into student-facing banners, so
// any markup a teacher pastes in is stripped rather than stored.
package htmlsanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements from s and returns the remaining
// text. Entities introduced by the sanitizer are unescaped so that
// plain text containing characters like & or < round-trips unchanged
// in meaning.
func Strip(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}
