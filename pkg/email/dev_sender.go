package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/goodmail/pkg/sanitizer"
)

// DevSender implements EmailSender for local development.
// It saves emails as HTML, text and JSON files to a specified directory
// instead of sending them through an email service.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) EmailSender {
	return &DevSender{dir: dir}
}

// emailMetadata contains the email data saved to JSON (excluding bodies).
type emailMetadata struct {
	Timestamp string            `json:"timestamp"`
	SendTo    []string          `json:"send_to"`
	Cc        []string          `json:"cc,omitempty"`
	Bcc       []string          `json:"bcc,omitempty"`
	From      string            `json:"from,omitempty"`
	ReplyTo   string            `json:"reply_to,omitempty"`
	Subject   string            `json:"subject"`
	Tag       string            `json:"tag,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

func newEmailMetadata(now time.Time, params SendEmailParams) emailMetadata {
	return emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Cc:        params.Cc,
		Bcc:       params.Bcc,
		From:      params.From,
		ReplyTo:   params.ReplyTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
		Headers:   params.Headers,
	}
}

// SendEmail saves the email as HTML, the text part (when present) as TXT and
// metadata as JSON to the configured directory.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := time.Now()
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), artifactName(params))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(params.BodyHTML), 0644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	if params.BodyText != "" {
		textPath := filepath.Join(d.dir, baseFilename+".txt")
		if err := os.WriteFile(textPath, []byte(params.BodyText), 0644); err != nil {
			return fmt.Errorf("%w: failed to write text file: %v", ErrFailedToSendEmail, err)
		}
	}

	jsonData, err := json.MarshalIndent(newEmailMetadata(now, params), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

// artifactName prefers the tag, falling back to the subject.
func artifactName(params SendEmailParams) string {
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	return sanitizer.Filename(identifier)
}
