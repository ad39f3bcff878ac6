package goodmail

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/goodmail/pkg/builder"
	"github.com/dmitrymomot/goodmail/pkg/config"
	"github.com/dmitrymomot/goodmail/pkg/inliner"
	"github.com/dmitrymomot/goodmail/pkg/layout"
	"github.com/dmitrymomot/goodmail/pkg/logger"
	"github.com/dmitrymomot/goodmail/pkg/plaintext"
)

// Block describes an email body with builder calls.
type Block = builder.Block

// EmailParts is a rendered email: the final HTML document and its
// plain-text rendition.
type EmailParts struct {
	HTML string
	Text string
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithInliner replaces the CSS inliner. inliner.Noop disables inlining.
func WithInliner(in inliner.Inliner) Option {
	return func(m *Mailer) {
		if in != nil {
			m.inliner = in
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithLayoutOptions passes options to every layout render, e.g. a custom
// template.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(m *Mailer) {
		m.layoutOpts = append(m.layoutOpts, opts...)
	}
}

// WithInlinerText makes the inliner's own text extraction the text part
// whenever it returns one. By default the text part is generated from the
// body fragments.
func WithInlinerText() Option {
	return func(m *Mailer) {
		m.inlinerText = true
	}
}

// WithConfig pins the mailer to a configuration snapshot instead of reading
// the global configuration on every call.
func WithConfig(cfg config.Config) Option {
	return func(m *Mailer) {
		m.cfg = &cfg
	}
}

// Mailer turns a Block and Headers into rendered emails. A Mailer holds no
// per-render state and is safe for concurrent use once configured; every
// call gets its own builder.
type Mailer struct {
	cfg         *config.Config
	inliner     inliner.Inliner
	logger      *slog.Logger
	layoutOpts  []layout.Option
	inlinerText bool
}

// NewMailer returns a Mailer that inlines CSS with premailer and reads the
// global configuration at call time.
func NewMailer(opts ...Option) *Mailer {
	m := &Mailer{
		inliner: inliner.NewPremailer(),
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mailer) config() config.Config {
	if m.cfg != nil {
		return *m.cfg
	}
	return config.Current()
}

// Render builds the body, wraps it in the layout, inlines CSS once and
// derives the text part. Delivery fields in h are ignored.
func (m *Mailer) Render(ctx context.Context, h Headers, block Block) (EmailParts, error) {
	parts, _, err := m.render(ctx, h, block)
	return parts, err
}

// Compose renders the email and assembles a Message ready for delivery.
func (m *Mailer) Compose(ctx context.Context, h Headers, block Block) (*Message, error) {
	parts, unsubscribe, err := m.render(ctx, h, block)
	if err != nil {
		return nil, err
	}
	return newMessage(h, parts, unsubscribe), nil
}

func (m *Mailer) render(ctx context.Context, h Headers, block Block) (EmailParts, string, error) {
	start := time.Now()
	cfg := m.config()

	b := builder.New(cfg)
	if err := b.Run(block); err != nil {
		m.logFailure(ctx, h, "build", err)
		return EmailParts{}, "", err
	}
	body := b.Output()

	unsubscribe := h.unsubscribeURL(cfg)
	if h.Unsubscribe != nil && unsubscribe == "" {
		m.logger.WarnContext(ctx, "unsubscribe requested but no unsubscribe URL is available",
			logger.Component("goodmail"),
			logger.Subject(h.Subject),
		)
	}

	params := layout.Params{
		Body:           body,
		Subject:        h.Subject,
		Preheader:      h.preheader(cfg),
		UnsubscribeURL: unsubscribe,
	}
	doc, err := layout.Render(ctx, params, cfg, m.layoutOpts...)
	if err != nil {
		m.logFailure(ctx, h, "layout", err)
		return EmailParts{}, "", err
	}

	res, err := m.inliner.Inline(ctx, doc)
	if err != nil {
		m.logFailure(ctx, h, "inline", err)
		return EmailParts{}, "", err
	}

	text := plaintext.Generate(body)
	if footer := textFooter(layout.NewData(params, cfg)); footer != "" {
		text = strings.TrimSpace(text + "\n\n" + footer)
	}
	if m.inlinerText && strings.TrimSpace(res.Text) != "" {
		text = res.Text
	}
	text = plaintext.Cleanup(text, cfg)

	m.logger.DebugContext(ctx, "email rendered",
		logger.Component("goodmail"),
		logger.Subject(h.Subject),
		logger.Recipients(h.recipients()),
		logger.Fragments(b.Len()),
		logger.Size("html_bytes", len(res.HTML)),
		logger.Size("text_bytes", len(text)),
		logger.Duration(time.Since(start)),
	)

	return EmailParts{HTML: res.HTML, Text: text}, unsubscribe, nil
}

// logFailure records a failed render at debug level. The error is returned
// to the caller as well, who decides whether it deserves more.
func (m *Mailer) logFailure(ctx context.Context, h Headers, stage string, err error) {
	m.logger.DebugContext(ctx, "email render failed",
		logger.Component("goodmail"),
		logger.Subject(h.Subject),
		slog.String("stage", stage),
		logger.Error(err),
	)
}

// textFooter mirrors the layout footer in the text part: the footer text
// and, under the same conditions as the HTML link, "LABEL ( URL )".
func textFooter(d layout.Data) string {
	var lines []string
	if d.FooterText != "" {
		lines = append(lines, d.FooterText)
	}
	if d.ShowUnsubscribeLink {
		lines = append(lines, d.UnsubscribeLinkText+" ( "+d.UnsubscribeURL+" )")
	}
	return strings.Join(lines, "\n\n")
}
