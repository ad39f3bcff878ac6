package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/goodmail/pkg/config"
	"github.com/dmitrymomot/goodmail/pkg/sanitizer"
)

// Separator joins fragments in Output.
const Separator = "\n"

// DefaultSpacing is the spacer height used when Spacer is called without a value.
const DefaultSpacing = 16

// Block is a unit of DSL calls run against a Builder.
type Block func(b *Builder) error

// Builder accumulates HTML fragments from DSL calls. Every call appends
// exactly one fragment; escaping happens once, at append time.
//
// A Builder belongs to a single render and is not safe for concurrent use.
type Builder struct {
	cfg   config.Config
	parts []string
}

// New returns an empty builder bound to a configuration snapshot. The
// snapshot provides the company name and brand color; the builder never
// reads global configuration.
func New(cfg config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Run executes block against b. A nil block is a no-op.
func (b *Builder) Run(block Block) error {
	if block == nil {
		return nil
	}
	return block(b)
}

// Text appends a paragraph. Only <a href> markup survives; everything else
// is stripped and newlines become <br>.
func (b *Builder) Text(v any) {
	var raw string
	if v != nil {
		raw = fmt.Sprint(v)
	}
	clean := sanitizer.LinksOnly(raw)
	clean = strings.ReplaceAll(clean, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, "\n", "<br>")
	b.append(tag("p", clean, paragraphStyle))
}

// Button appends a call-to-action link in the brand color. Outlook's Word
// renderer ignores padding and border-radius on anchors, so it gets a VML
// round rectangle inside an mso conditional instead.
func (b *Builder) Button(label, url string) {
	l := sanitizer.EscapeHTML(label)
	u := sanitizer.EscapeHTML(url)
	color := sanitizer.EscapeHTML(b.brandColor())

	var sb strings.Builder
	sb.WriteString(`<div class="goodmail-button" style="text-align: center; margin: 24px 0;">`)
	sb.WriteString(`<!--[if mso]>`)
	sb.WriteString(`<v:roundrect xmlns:v="urn:schemas-microsoft-com:vml" xmlns:w="urn:schemas-microsoft-com:office:word" href="` + u + `" style="height:44px;v-text-anchor:middle;width:220px;" arcsize="10%" stroke="f" fillcolor="` + color + `">`)
	sb.WriteString(`<w:anchorlock/><center style="color:#ffffff;font-family:sans-serif;font-size:16px;font-weight:bold;">` + l + `</center>`)
	sb.WriteString(`</v:roundrect>`)
	sb.WriteString(`<![endif]-->`)
	sb.WriteString(`<!--[if !mso]><!-- -->`)
	sb.WriteString(`<a href="` + u + `" style="` + buttonStyle(color) + `"><span style="color:#ffffff;">` + l + `</span></a>`)
	sb.WriteString(`<!--<![endif]-->`)
	sb.WriteString(`</div>`)
	b.append(sb.String())
}

// ImageOption sets optional image attributes.
type ImageOption func(*imageOptions)

type imageOptions struct {
	width  int
	height int
}

// Width sets an explicit pixel width.
func Width(px int) ImageOption {
	return func(o *imageOptions) { o.width = px }
}

// Height sets an explicit pixel height.
func Height(px int) ImageOption {
	return func(o *imageOptions) { o.height = px }
}

// Image appends a centered image. A blank alt falls back to the company name.
func (b *Builder) Image(src, alt string, opts ...ImageOption) {
	var o imageOptions
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(alt) == "" {
		alt = b.cfg.CompanyName
	}

	style := "max-width:100%; height:auto;"
	if o.width > 0 {
		style += " width:" + strconv.Itoa(o.width) + "px;"
	}
	if o.height > 0 {
		style += " height:" + strconv.Itoa(o.height) + "px;"
	}

	img := `<img class="goodmail-image" src="` + sanitizer.EscapeHTML(src) + `" alt="` + sanitizer.EscapeHTML(alt) + `" style="` + style + `">`
	b.append(`<div style="text-align: center;">` +
		`<!--[if mso]><table role="presentation" align="center" cellpadding="0" cellspacing="0" border="0"><tr><td align="center"><![endif]-->` +
		img +
		`<!--[if mso]></td></tr></table><![endif]-->` +
		`</div>`)
}

// Spacer appends a fixed-height spacing block. Without an argument the
// height is DefaultSpacing. The value must be interpretable as an integer;
// anything else fails with ErrInvalidArgument and appends nothing.
func (b *Builder) Spacer(px ...any) error {
	height := DefaultSpacing
	if len(px) > 0 {
		n, err := sanitizer.ToInt(px[0])
		if err != nil {
			return fmt.Errorf("%w: spacer height: %w", ErrInvalidArgument, err)
		}
		height = n
	}

	h := strconv.Itoa(height)
	b.append(`<div style="height:` + h + `px; line-height: ` + h + `px; font-size: 1px;">&nbsp;</div>`)
	return nil
}

// Signature appends a signed closing line. The name defaults to the
// configured company name.
func (b *Builder) Signature(name ...string) {
	n := b.cfg.CompanyName
	if len(name) > 0 {
		n = name[0]
	}
	b.append(`<p style="` + paragraphStyle + `"><span style="color: #888;">– ` + sanitizer.EscapeHTML(n) + `</span></p>`)
}

// Heading appends an escaped heading of the given level.
func (b *Builder) Heading(level Level, s string) {
	level = level.normalize()
	b.append(tag(level.tag(), sanitizer.EscapeHTML(s), level.style()))
}

// Divider appends a horizontal rule.
func (b *Builder) Divider() {
	b.append(`<hr class="goodmail-hr">`)
}

// Center runs fn against an isolated fragment sequence and appends the
// captured fragments as a single centered block.
//
// If fn returns an error or panics, the partial fragments are discarded and
// the builder is left exactly as it was before the call.
func (b *Builder) Center(fn Block) error {
	return b.wrap("div", "text-align:center;", fn)
}

// PriceRow appends a two-column row with a label on the left and an amount
// on the right, as used in receipts and plan summaries.
func (b *Builder) PriceRow(label, amount string) {
	b.append(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="margin: 8px 0; border-bottom: 1px solid #eaeaea;"><tr>` +
		`<td style="padding: 8px 0;">` + sanitizer.EscapeHTML(label) + `</td> ` +
		`<td align="right" style="padding: 8px 0; text-align: right;">` + sanitizer.EscapeHTML(amount) + `</td>` +
		`</tr></table>`)
}

// CodeBox appends a highlighted box for one-time codes and similar tokens.
func (b *Builder) CodeBox(code string) {
	b.append(`<div style="background:#F8F8F8; border-radius:4px; padding:16px; margin:24px 0; text-align:center; font-family:monospace; font-size:24px; letter-spacing:4px;">` +
		`<strong>` + sanitizer.EscapeHTML(code) + `</strong></div>`)
}

// Raw appends html as is. The caller asserts the markup is trusted.
func (b *Builder) Raw(html string) {
	b.append(html)
}

// Output returns all fragments joined by Separator, in call order.
func (b *Builder) Output() string {
	return strings.Join(b.parts, Separator)
}

// Parts returns a copy of the fragment sequence.
func (b *Builder) Parts() []string {
	out := make([]string, len(b.parts))
	copy(out, b.parts)
	return out
}

// Len returns the number of fragments collected so far.
func (b *Builder) Len() int {
	return len(b.parts)
}

func (b *Builder) append(fragment string) {
	b.parts = append(b.parts, fragment)
}

func (b *Builder) brandColor() string {
	if c := strings.TrimSpace(b.cfg.BrandColor); c != "" {
		return c
	}
	return config.DefaultBrandColor
}

// wrap swaps in a fresh fragment sequence, runs fn, and restores the
// caller's sequence on every exit path. Only a successful fn contributes the
// wrapped block.
func (b *Builder) wrap(name, style string, fn Block) error {
	outer := b.parts
	b.parts = nil
	defer func() { b.parts = outer }()

	if fn != nil {
		if err := fn(b); err != nil {
			return err
		}
	}

	inner := strings.Join(b.parts, Separator)
	outer = append(outer, tag(name, inner, style))
	return nil
}

// tag renders a simple element with an escaped style attribute.
func tag(name, content, style string) string {
	styleAttr := ""
	if style != "" {
		styleAttr = ` style="` + sanitizer.EscapeHTML(style) + `"`
	}
	return "<" + name + styleAttr + ">" + content + "</" + name + ">"
}
