// Package sanitizer provides the cleaning and escaping helpers used while
// building email content.
//
// The functions are grouped conceptually into several areas:
//
//   - HTML – escaping for text and attribute positions, and an allow-list
//     sanitizer (bluemonday) that keeps only links with an href.
//
//   - Numeric – coercion of loosely typed values (ints, floats, numeric
//     strings) into integers with an explicit error for anything else.
//
//   - Headers & files – removal of header-splitting characters and
//     filesystem-safe names for archived messages.
//
// All helpers are safe for concurrent use. The allow-list policy is built
// once at package initialization and only read afterwards.
//
// # Usage
//
//	import "github.com/dmitrymomot/goodmail/pkg/sanitizer"
//
//	safe := sanitizer.LinksOnly(`Hi <b>there</b>, <a href="https://x" onclick="evil()">click</a>`)
//	// Hi there, <a href="https://x">click</a>
//
//	attr := sanitizer.EscapeHTML(`"quoted" & <tagged>`)
//	// &#34;quoted&#34; &amp; &lt;tagged&gt;
//
//	px, err := sanitizer.ToInt("24") // 24, nil
//	_, err = sanitizer.ToInt("abc")  // errors.Is(err, sanitizer.ErrNotInteger)
package sanitizer
