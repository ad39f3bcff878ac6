package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// linksOnly strips every element except <a href>. Relative links and the
// usual mail-safe schemes are kept; javascript: and friends are dropped.
var linksOnly = newLinksOnlyPolicy()

func newLinksOnlyPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.AllowRelativeURLs(true)
	return p
}

// EscapeHTML escapes HTML special characters so s is safe in text content
// and in quoted attribute values.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML unescapes HTML entities.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// LinksOnly removes all markup from s except anchor tags carrying an href.
// Text content is escaped, and the content of script and style elements is
// dropped entirely. Disallowed markup is removed, never rejected.
func LinksOnly(s string) string {
	return linksOnly.Sanitize(s)
}
