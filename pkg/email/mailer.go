package email

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   []string          `json:"send_to"`            // Recipients, at least one
	Cc       []string          `json:"cc,omitempty"`       // Optional
	Bcc      []string          `json:"bcc,omitempty"`      // Optional
	From     string            `json:"from,omitempty"`     // Falls back to the sender's configured address
	ReplyTo  string            `json:"reply_to,omitempty"` // Falls back to the sender's support address
	Subject  string            `json:"subject"`            // Subject of the email
	BodyHTML string            `json:"body_html"`          // HTML body of the email
	BodyText string            `json:"body_text"`          // Plain-text alternative, optional
	Tag      string            `json:"tag,omitempty"`      // Optional
	Headers  map[string]string `json:"headers,omitempty"`  // Extra headers such as List-Unsubscribe
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the params can be handed to a provider.
func (p SendEmailParams) Validate() error {
	if len(p.SendTo) == 0 {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	for _, group := range []struct {
		field string
		addrs []string
	}{
		{"SendTo", p.SendTo},
		{"Cc", p.Cc},
		{"Bcc", p.Bcc},
	} {
		for _, addr := range group.addrs {
			if strings.TrimSpace(addr) == "" {
				return fmt.Errorf("%w: %s is required", ErrInvalidParams, group.field)
			}
			if !isValidAddress(addr) {
				return fmt.Errorf("%w: %s must be a valid email address", ErrInvalidParams, group.field)
			}
		}
	}
	if p.From != "" && !isValidAddress(p.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && !isValidAddress(p.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// isValidAddress accepts a bare address or one with a display name,
// e.g. "Support <support@example.com>".
func isValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	if emailRegex.MatchString(s) {
		return true
	}
	a, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return emailRegex.MatchString(a.Address)
}

// withDefaults fills From and ReplyTo from the sender configuration when
// the params leave them empty.
func (p SendEmailParams) withDefaults(from, replyTo string) SendEmailParams {
	if p.From == "" {
		p.From = from
	}
	if p.ReplyTo == "" {
		p.ReplyTo = replyTo
	}
	return p
}
