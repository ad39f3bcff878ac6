package goodmail

import (
	"context"
	"maps"

	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/goodmail/pkg/email"
	"github.com/dmitrymomot/goodmail/pkg/sanitizer"
)

// HeaderListUnsubscribe is the only header derived from rendering directives.
const HeaderListUnsubscribe = "List-Unsubscribe"

// Message is a composed email: standard headers, extra headers and the two
// content parts. It is handed to a transport through Params, MIME or
// Deliver.
type Message struct {
	To      []string
	Cc      []string
	Bcc     []string
	From    string
	ReplyTo string
	Subject string
	Tag     string

	// Headers holds extra message headers, currently List-Unsubscribe when an
	// unsubscribe URL was resolved.
	Headers map[string]string

	Parts EmailParts
}

// newMessage copies only the standard fields of h. Header values are
// stripped of CR, LF and NUL so user input cannot add headers.
func newMessage(h Headers, parts EmailParts, unsubscribeURL string) *Message {
	msg := &Message{
		To:      cleanAll(h.To),
		Cc:      cleanAll(h.Cc),
		Bcc:     cleanAll(h.Bcc),
		From:    sanitizer.PreventHeaderInjection(h.From),
		ReplyTo: sanitizer.PreventHeaderInjection(h.ReplyTo),
		Subject: sanitizer.PreventHeaderInjection(h.Subject),
		Tag:     sanitizer.PreventHeaderInjection(h.Tag),
		Headers: map[string]string{},
		Parts:   parts,
	}
	if u := sanitizer.PreventHeaderInjection(unsubscribeURL); u != "" {
		msg.Headers[HeaderListUnsubscribe] = "<" + u + ">"
	}
	return msg
}

// Params converts the message for an email.EmailSender.
func (m *Message) Params() email.SendEmailParams {
	var headers map[string]string
	if len(m.Headers) > 0 {
		headers = maps.Clone(m.Headers)
	}
	return email.SendEmailParams{
		SendTo:   m.To,
		Cc:       m.Cc,
		Bcc:      m.Bcc,
		From:     m.From,
		ReplyTo:  m.ReplyTo,
		Subject:  m.Subject,
		BodyHTML: m.Parts.HTML,
		BodyText: m.Parts.Text,
		Tag:      m.Tag,
		Headers:  headers,
	}
}

// MIME returns the message as a multipart/alternative gomail message.
func (m *Message) MIME() *gomail.Message {
	return m.Params().MIMEMessage()
}

// Deliver hands the message to sender.
func (m *Message) Deliver(ctx context.Context, sender email.EmailSender) error {
	return sender.SendEmail(ctx, m.Params())
}

func cleanAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = sanitizer.PreventHeaderInjection(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
