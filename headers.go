package goodmail

import (
	"strings"

	"github.com/dmitrymomot/goodmail/pkg/config"
)

// Headers carries the standard delivery fields of a message plus the
// directives that steer rendering. Directives never become message headers;
// the only header derived from them is List-Unsubscribe.
type Headers struct {
	To      []string
	Cc      []string
	Bcc     []string
	From    string
	ReplyTo string
	Subject string
	// Tag is passed to transports that support message tagging.
	Tag string

	// UnsubscribeURL overrides the configured unsubscribe URL for this message.
	UnsubscribeURL string
	// Preheader overrides the configured default preheader.
	Preheader string
	// Unsubscribe requests an unsubscribe link. &Unsubscribe{} asks for the
	// configured URL; a non-blank URL field supplies one.
	Unsubscribe *Unsubscribe
}

// Unsubscribe is the unsubscribe directive.
type Unsubscribe struct {
	URL string
}

// unsubscribeURL resolves the effective unsubscribe URL: the explicit
// field, then the directive's URL, then the configured URL. The result is
// trimmed and may be empty.
func (h Headers) unsubscribeURL(cfg config.Config) string {
	if u := strings.TrimSpace(h.UnsubscribeURL); u != "" {
		return u
	}
	if h.Unsubscribe != nil {
		if u := strings.TrimSpace(h.Unsubscribe.URL); u != "" {
			return u
		}
	}
	return strings.TrimSpace(cfg.UnsubscribeURL)
}

// preheader resolves the preview text: the explicit field, then the
// configured default, then the subject.
func (h Headers) preheader(cfg config.Config) string {
	if p := strings.TrimSpace(h.Preheader); p != "" {
		return p
	}
	if p := strings.TrimSpace(cfg.DefaultPreheader); p != "" {
		return p
	}
	return h.Subject
}

func (h Headers) recipients() int {
	return len(h.To) + len(h.Cc) + len(h.Bcc)
}
