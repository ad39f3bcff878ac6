package email

import (
	"slices"
	"strings"

	"gopkg.in/gomail.v2"
)

// MIMEMessage builds a gomail message from the params. With a non-blank
// BodyText the result is multipart/alternative (text first, HTML preferred);
// otherwise it carries the HTML part only. Extra headers are set in
// name order.
func (p SendEmailParams) MIMEMessage() *gomail.Message {
	m := gomail.NewMessage()

	if p.From != "" {
		m.SetHeader("From", p.From)
	}
	m.SetHeader("To", p.SendTo...)
	if len(p.Cc) > 0 {
		m.SetHeader("Cc", p.Cc...)
	}
	if len(p.Bcc) > 0 {
		m.SetHeader("Bcc", p.Bcc...)
	}
	if p.ReplyTo != "" {
		m.SetHeader("Reply-To", p.ReplyTo)
	}
	m.SetHeader("Subject", p.Subject)

	names := make([]string, 0, len(p.Headers))
	for name := range p.Headers {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		m.SetHeader(name, p.Headers[name])
	}

	if strings.TrimSpace(p.BodyText) != "" {
		m.SetBody("text/plain", p.BodyText)
		m.AddAlternative("text/html", p.BodyHTML)
	} else {
		m.SetBody("text/html", p.BodyHTML)
	}

	return m
}
