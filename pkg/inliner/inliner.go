package inliner

import (
	"context"
	"fmt"

	"github.com/jaytaylor/html2text"
	"github.com/vanng822/go-premailer/premailer"
)

// Result is the output of a single inlining pass.
type Result struct {
	// HTML is the document with stylesheet rules moved into style attributes.
	HTML string
	// Text is the inliner's own plain-text extraction. It may be empty.
	Text string
}

// Inliner moves CSS into inline style attributes. It is called exactly once
// per render on the complete document.
type Inliner interface {
	Inline(ctx context.Context, doc string) (Result, error)
}

// Option configures the premailer-backed inliner.
type Option func(*Premailer)

// WithRemoveClasses strips class attributes once their rules are inlined.
func WithRemoveClasses(v bool) Option {
	return func(p *Premailer) { p.opts.RemoveClasses = v }
}

// WithCSSToAttributes also mirrors supported properties into legacy HTML
// attributes (width, bgcolor and friends).
func WithCSSToAttributes(v bool) Option {
	return func(p *Premailer) { p.opts.CssToAttributes = v }
}

// WithPrettyTables renders tables as ASCII grids in the extracted text.
func WithPrettyTables(v bool) Option {
	return func(p *Premailer) { p.text.PrettyTables = v }
}

// Premailer inlines CSS with go-premailer and extracts text with html2text.
// HTML comments, including Outlook conditional blocks, pass through unchanged.
type Premailer struct {
	opts *premailer.Options
	text html2text.Options
}

// NewPremailer returns an Inliner backed by go-premailer.
func NewPremailer(opts ...Option) *Premailer {
	p := &Premailer{opts: premailer.NewOptions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Inline implements Inliner.
func (p *Premailer) Inline(ctx context.Context, doc string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInlineFailed, err)
	}

	prem, err := premailer.NewPremailerFromString(doc, p.opts)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInlineFailed, err)
	}
	html, err := prem.Transform()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInlineFailed, err)
	}

	text, err := html2text.FromString(html, p.text)
	if err != nil {
		return Result{}, fmt.Errorf("%w: text extraction: %w", ErrInlineFailed, err)
	}

	return Result{HTML: html, Text: text}, nil
}

type noop struct{}

// Noop returns the document unchanged and no text. Pass it to a Mailer to
// disable inlining; the default Mailer inlines with NewPremailer.
var Noop Inliner = noop{}

func (noop) Inline(_ context.Context, doc string) (Result, error) {
	return Result{HTML: doc}, nil
}
