// Package goodmail renders transactional emails: a short Go function
// describes the body, and goodmail produces a branded, mobile-friendly HTML
// document that survives Outlook together with a readable plain-text part.
//
// goodmail is designed for applications that send a handful of templates
// (welcome, receipt, password reset) and want them to look consistent
// without maintaining HTML by hand.
//
// Key Features:
//
//   - Builder DSL for paragraphs, buttons, images, headings, price rows and code boxes
//   - Responsive layout with Outlook conditional markup and a hidden preheader
//   - CSS inlining through premailer
//   - Plain-text part derived from the same content
//   - List-Unsubscribe header and footer link from one resolved URL
//   - Transports from pkg/email (Postmark, SMTP, S3 archive, local files)
//
// Configuration:
//
// Branding is global and is set once at startup:
//
//	err := goodmail.Configure(func(c *config.Config) {
//		c.CompanyName = "Acme Inc."
//		c.CompanyURL = "https://acme.example"
//		c.LogoURL = "https://acme.example/logo.png"
//		c.BrandColor = "#ff5a1f"
//		c.UnsubscribeURL = "https://acme.example/unsubscribe"
//		c.ShowFooterUnsubscribeLink = true
//	})
//
// Configure validates the result and keeps the previous settings when
// validation fails. The same settings can be loaded with config.FromEnv or
// config.FromFile.
//
// Basic Usage:
//
//	parts, err := goodmail.Render(ctx, goodmail.Headers{Subject: "Welcome"},
//		func(b *builder.Builder) error {
//			b.Heading(builder.H1, "Welcome aboard")
//			b.Text("Thanks for signing up.")
//			b.Button("Get started", "https://acme.example/start")
//			b.Signature()
//			return nil
//		})
//
// parts.HTML and parts.Text are ready to hand to any transport.
//
// Delivery:
//
// Compose returns a Message carrying the standard headers as well:
//
//	msg, err := goodmail.Compose(ctx, goodmail.Headers{
//		To:          []string{"user@example.com"},
//		From:        "Acme <noreply@acme.example>",
//		Subject:     "Your receipt",
//		Unsubscribe: &goodmail.Unsubscribe{},
//	}, receipt)
//	if err != nil {
//		return err
//	}
//	sender, err := email.NewPostmarkClient(postmarkCfg)
//	if err != nil {
//		return err
//	}
//	return msg.Deliver(ctx, sender)
//
// Preheader, UnsubscribeURL and Unsubscribe steer rendering only and never
// become message headers. List-Unsubscribe is added whenever an unsubscribe
// URL resolves.
//
// Custom Mailers:
//
// A Mailer pins its own configuration, logger, inliner or layout template:
//
//	m := goodmail.NewMailer(
//		goodmail.WithConfig(cfg),
//		goodmail.WithLogger(logger.New()),
//		goodmail.WithLayoutOptions(layout.WithTemplateFile("emails/layout.html.tmpl")),
//	)
//
// PreviewHandler serves a Mailer's output over HTTP for inspection while
// templates are being designed.
package goodmail
