// Package email provides a provider-agnostic interface for delivering
// rendered transactional emails.
//
// # Architecture
//
// The package is built around the EmailSender interface, allowing different
// transports to be swapped without changing application code:
//   - NewPostmarkClient for delivery through Postmark with open and link tracking
//   - NewSMTPClient for any SMTP server (gomail)
//   - NewDevSender for local development (saves emails to disk)
//   - NewS3Archive for keeping a copy of every email in an S3 bucket
//
// All implementations validate SendEmailParams before doing any work and
// report failures with the same sentinel errors.
//
// # Usage
//
// Delivery with Postmark:
//
//	client, err := email.NewPostmarkClient(email.Config{
//	    PostmarkServerToken:  "your-server-token",
//	    PostmarkAccountToken: "your-account-token",
//	    SenderEmail:          "noreply@example.com",
//	    SupportEmail:         "support@example.com",
//	})
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	err = client.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   []string{"user@example.com"},
//	    Subject:  "Welcome!",
//	    BodyHTML: htmlContent,
//	    BodyText: textContent,
//	    Tag:      "welcome", // optional, for analytics
//	})
//
// From and ReplyTo default to SenderEmail and SupportEmail when the params
// leave them empty.
//
// Development mode saves emails locally:
//
//	devSender := email.NewDevSender("./email-output")
//	err := devSender.SendEmail(ctx, params)
//	// Creates timestamped HTML, TXT and JSON files in ./email-output/
//
// SendEmailParams.MIMEMessage exposes the multipart/alternative message
// used by the SMTP client, for callers with their own transport.
//
// # Error Handling
//
// The package provides sentinel errors for common failure scenarios:
//   - ErrInvalidConfig: Configuration validation failed
//   - ErrInvalidParams: Email parameters validation failed
//   - ErrFailedToSendEmail: Email delivery failed
//
// All errors can be checked using errors.Is() for programmatic handling:
//
//	if errors.Is(err, email.ErrInvalidParams) {
//	    // Handle validation error
//	}
package email
