package layout

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
	"text/template"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/goodmail/pkg/config"
	"github.com/dmitrymomot/goodmail/pkg/sanitizer"
)

const defaultTemplateName = "templates/layout.html.tmpl"

//go:embed templates/layout.html.tmpl
var defaultFS embed.FS

// The layout uses text/template: html/template drops HTML comments, and the
// Outlook conditional blocks are HTML comments. Every interpolation in the
// template goes through esc instead.
var funcs = template.FuncMap{
	"esc": sanitizer.EscapeHTML,
}

var defaultTemplate = sync.OnceValues(func() (*template.Template, error) {
	return parse(defaultTemplateName, func() ([]byte, error) {
		return fs.ReadFile(defaultFS, defaultTemplateName)
	})
})

// Params is the per-render input of the layout.
type Params struct {
	// Body is trusted HTML inserted as is.
	Body           string
	Subject        string
	Preheader      string
	UnsubscribeURL string
}

// Data is what a layout template is executed with. Custom templates passed
// through WithTemplateFile or WithTemplateFS can use any of these fields.
type Data struct {
	Subject     string
	Preheader   string
	Body        string
	BrandColor  string
	CompanyName string
	LogoURL     string
	LogoAlt     string
	CompanyURL  string
	FooterText  string

	// UnsubscribeURL is the effective URL: the per-render value, else the
	// configured one.
	UnsubscribeURL string
	// ShowUnsubscribeLink is true only when the footer link is enabled and
	// UnsubscribeURL is not blank.
	ShowUnsubscribeLink bool
	UnsubscribeLinkText string
}

// NewData merges per-render params with a configuration snapshot.
func NewData(p Params, cfg config.Config) Data {
	unsubscribe := strings.TrimSpace(p.UnsubscribeURL)
	if unsubscribe == "" {
		unsubscribe = strings.TrimSpace(cfg.UnsubscribeURL)
	}

	brand := strings.TrimSpace(cfg.BrandColor)
	if brand == "" {
		brand = config.DefaultBrandColor
	}

	return Data{
		Subject:             p.Subject,
		Preheader:           strings.TrimSpace(p.Preheader),
		Body:                p.Body,
		BrandColor:          brand,
		CompanyName:         cfg.CompanyName,
		LogoURL:             strings.TrimSpace(cfg.LogoURL),
		LogoAlt:             strings.TrimSpace(cfg.CompanyName) + " Logo",
		CompanyURL:          strings.TrimSpace(cfg.CompanyURL),
		FooterText:          strings.TrimSpace(cfg.FooterText),
		UnsubscribeURL:      unsubscribe,
		ShowUnsubscribeLink: cfg.ShowFooterUnsubscribeLink && unsubscribe != "",
		UnsubscribeLinkText: cfg.UnsubscribeLinkText(),
	}
}

// Component returns the full email document as a templ component.
// Template lookup happens when the component is rendered, so a missing
// template surfaces from Render as ErrTemplateNotFound.
func Component(p Params, cfg config.Config, opts ...Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tpl, err := load(opts...)
		if err != nil {
			return err
		}
		if err := tpl.Execute(w, NewData(p, cfg)); err != nil {
			return fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}
		return nil
	})
}

// Render wraps the body in the layout and returns the complete HTML document.
func Render(ctx context.Context, p Params, cfg config.Config, opts ...Option) (string, error) {
	return RenderComponent(ctx, Component(p, cfg, opts...))
}

// RenderComponent renders a templ component to a string.
func RenderComponent(ctx context.Context, tpl templ.Component) (string, error) {
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func load(opts ...Option) (*template.Template, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.read == nil {
		return defaultTemplate()
	}
	return parse(o.name, o.read)
}

func parse(name string, read func() ([]byte, error)) (*template.Template, error) {
	src, err := read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrRenderFailed, name, err)
	}

	tpl, err := template.New(name).Funcs(funcs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return tpl, nil
}
