package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Dialer sends fully built messages. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPOption configures the SMTP client.
type SMTPOption func(*smtpClient)

// WithDialer replaces the gomail dialer. Useful for testing.
func WithDialer(d Dialer) SMTPOption {
	return func(c *smtpClient) {
		c.dialer = d
	}
}

type smtpClient struct {
	dialer Dialer
	config SMTPConfig
}

// NewSMTPClient creates an SMTP-backed email sender. Messages are built with
// SendEmailParams.MIMEMessage and delivered over one connection per send.
func NewSMTPClient(cfg SMTPConfig, opts ...SMTPOption) (EmailSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", ErrInvalidConfig)
	}
	if err := validateSenderIdentity(cfg.SenderEmail, cfg.SupportEmail); err != nil {
		return nil, err
	}

	c := &smtpClient{config: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.dialer == nil {
		d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		if cfg.SSL {
			d.SSL = true
		}
		c.dialer = d
	}

	return c, nil
}

// MustNewSMTPClient creates an SMTP client that panics on invalid config.
func MustNewSMTPClient(cfg SMTPConfig, opts ...SMTPOption) EmailSender {
	client, err := NewSMTPClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender over SMTP.
func (c *smtpClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	m := params.withDefaults(c.config.SenderEmail, c.config.SupportEmail).MIMEMessage()
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), c.config.Host))

	if err := c.dialer.DialAndSend(m); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
