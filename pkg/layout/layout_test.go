package layout_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodmail/pkg/config"
	"github.com/dmitrymomot/goodmail/pkg/layout"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.CompanyName = "Acme Inc."
	cfg.BrandColor = "#123456"
	return cfg
}

func render(t *testing.T, p layout.Params, cfg config.Config, opts ...layout.Option) string {
	t.Helper()
	html, err := layout.Render(context.Background(), p, cfg, opts...)
	require.NoError(t, err)
	return html
}

func TestRender_SubjectInTitleAndSchema(t *testing.T) {
	t.Parallel()

	html := render(t, layout.Params{Body: "<p>Body</p>", Subject: "Subject X"}, testConfig())
	assert.Contains(t, html, "<title>Subject X</title>")
	assert.Contains(t, html, `itemprop="name" content="Subject X"`)
	assert.Contains(t, html, "<p>Body</p>")
}

func TestRender_EscapesSubject(t *testing.T) {
	t.Parallel()

	html := render(t, layout.Params{Subject: `Tom & "Jerry" <3`}, testConfig())
	assert.Contains(t, html, "<title>Tom &amp; &#34;Jerry&#34; &lt;3</title>")
	assert.NotContains(t, html, "<3")
}

func TestRender_Preheader(t *testing.T) {
	t.Parallel()

	t.Run("included when provided", func(t *testing.T) {
		t.Parallel()
		html := render(t, layout.Params{Subject: "S", Preheader: "Preview here"}, testConfig())
		assert.Contains(t, html, ">\n  Preview here\n</span>")
	})

	t.Run("omitted when blank", func(t *testing.T) {
		t.Parallel()
		html := render(t, layout.Params{Subject: "S", Preheader: "   "}, testConfig())
		assert.NotContains(t, html, `class="preheader"`)
	})
}

func TestRender_Logo(t *testing.T) {
	t.Parallel()

	t.Run("no logo section without logo url", func(t *testing.T) {
		t.Parallel()
		html := render(t, layout.Params{Subject: "S"}, testConfig())
		assert.NotContains(t, html, `alt="Acme Inc. Logo"`)
		assert.NotContains(t, html, "goodmail-header\">")
	})

	t.Run("linked when company url present", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.LogoURL = "https://cdn/logo.png"
		cfg.CompanyURL = "https://company.example"

		html := render(t, layout.Params{Subject: "S"}, cfg)
		assert.Contains(t, html, `<a href="https://company.example"><img src="https://cdn/logo.png"`)
		assert.Contains(t, html, `alt="Acme Inc. Logo"`)
	})

	t.Run("unlinked without company url", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.LogoURL = "https://cdn/logo.png"

		html := render(t, layout.Params{Subject: "S"}, cfg)
		assert.Contains(t, html, `src="https://cdn/logo.png"`)
		assert.NotContains(t, html, `<a href="https://company.example">`)
		assert.NotContains(t, html, `"><img`)
	})
}

func TestRender_Footer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		footerText   string
		show         bool
		configURL    string
		explicitURL  string
		linkText     string
		wantLink     string
		wantNoLink   bool
		wantText     string
		wantNoFooter bool
	}{
		{
			name:        "footer text and unsubscribe link",
			footerText:  "Why you got this",
			show:        true,
			explicitURL: "https://unsubscribe",
			wantLink:    `<a href="https://unsubscribe">Unsubscribe</a>`,
			wantText:    "<p>Why you got this</p>",
		},
		{
			name:         "show enabled without resolvable url omits link",
			show:         true,
			wantNoLink:   true,
			wantNoFooter: true,
		},
		{
			name:      "configured url is the fallback",
			show:      true,
			configURL: "https://config/unsub",
			wantLink:  `href="https://config/unsub"`,
		},
		{
			name:        "explicit url wins over configured url",
			show:        true,
			configURL:   "https://config/unsub",
			explicitURL: "https://explicit/unsub",
			wantLink:    `href="https://explicit/unsub"`,
		},
		{
			name:        "link hidden when disabled",
			footerText:  "Footer",
			explicitURL: "https://unsubscribe",
			wantNoLink:  true,
			wantText:    "<p>Footer</p>",
		},
		{
			name:        "custom link text",
			show:        true,
			explicitURL: "https://unsubscribe",
			linkText:    "Opt out",
			wantLink:    `<a href="https://unsubscribe">Opt out</a>`,
		},
		{
			name:         "no footer at all",
			wantNoLink:   true,
			wantNoFooter: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.FooterText = tt.footerText
			cfg.ShowFooterUnsubscribeLink = tt.show
			cfg.UnsubscribeURL = tt.configURL
			if tt.linkText != "" {
				cfg.FooterUnsubscribeLinkText = tt.linkText
			}

			html := render(t, layout.Params{Subject: "S", UnsubscribeURL: tt.explicitURL}, cfg)
			if tt.wantLink != "" {
				assert.Contains(t, html, tt.wantLink)
			}
			if tt.wantNoLink {
				assert.NotContains(t, html, "unsub")
			}
			if tt.wantText != "" {
				assert.Contains(t, html, tt.wantText)
			}
			if tt.wantNoFooter {
				assert.NotContains(t, html, `<div class="goodmail-footer">`)
			}
		})
	}
}

func TestRender_OutlookConditionals(t *testing.T) {
	t.Parallel()

	html := render(t, layout.Params{Subject: "S"}, testConfig())
	assert.Contains(t, html, "<o:OfficeDocumentSettings>")
	assert.Contains(t, html, `<!--[if mso]>`+"\n"+`<table role="presentation" align="center" width="600"`)
	assert.Equal(t, strings.Count(html, "<!--[if mso]>"), strings.Count(html, "<![endif]-->"))
	assert.Contains(t, html, "a { color: #123456; }")
}

func TestRender_MissingTemplate(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "missing.html.tmpl")

		_, err := layout.Render(context.Background(), layout.Params{Subject: "S"}, testConfig(), layout.WithTemplateFile(path))
		require.ErrorIs(t, err, layout.ErrTemplateNotFound)
		assert.Contains(t, err.Error(), "layout template not found")
		assert.NotErrorIs(t, err, layout.ErrRenderFailed)
	})

	t.Run("fs", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{}

		_, err := layout.Render(context.Background(), layout.Params{}, testConfig(), layout.WithTemplateFS(fsys, "layout.tmpl"))
		require.ErrorIs(t, err, layout.ErrTemplateNotFound)
	})
}

func TestRender_CustomTemplate(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		html := render(t, layout.Params{Body: "<p>B</p>", Subject: "A&B"}, testConfig(),
			layout.WithTemplateFile(filepath.Join("testdata", "custom.html.tmpl")))
		assert.Equal(t, `<html><head><title>A&amp;B</title></head><body data-brand="#123456"><p>B</p></body></html>`+"\n", html)
	})

	t.Run("fs", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"mail.tmpl": {Data: []byte(`{{.CompanyName}}|{{.ShowUnsubscribeLink}}`)},
		}
		html := render(t, layout.Params{}, testConfig(), layout.WithTemplateFS(fsys, "mail.tmpl"))
		assert.Equal(t, "Acme Inc.|false", html)
	})
}

func TestRender_BrokenTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "parse error", src: `{{if .Subject}}`},
		{name: "execution error", src: `{{.NoSuchField}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fsys := fstest.MapFS{"bad.tmpl": {Data: []byte(tt.src)}}

			_, err := layout.Render(context.Background(), layout.Params{}, testConfig(), layout.WithTemplateFS(fsys, "bad.tmpl"))
			require.ErrorIs(t, err, layout.ErrRenderFailed)
			assert.NotErrorIs(t, err, layout.ErrTemplateNotFound)
		})
	}
}

func TestComponent(t *testing.T) {
	t.Parallel()

	c := layout.Component(layout.Params{Body: "<p>x</p>", Subject: "S"}, testConfig())
	viaComponent, err := layout.RenderComponent(context.Background(), c)
	require.NoError(t, err)

	direct := render(t, layout.Params{Body: "<p>x</p>", Subject: "S"}, testConfig())
	assert.Equal(t, direct, viaComponent)
}

func TestNewData(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.BrandColor = " "
	cfg.UnsubscribeURL = "https://config/unsub"
	cfg.ShowFooterUnsubscribeLink = true
	cfg.FooterUnsubscribeLinkText = ""

	d := layout.NewData(layout.Params{UnsubscribeURL: "  ", Preheader: " hi "}, cfg)
	assert.Equal(t, config.DefaultBrandColor, d.BrandColor)
	assert.Equal(t, "https://config/unsub", d.UnsubscribeURL)
	assert.True(t, d.ShowUnsubscribeLink)
	assert.Equal(t, config.DefaultFooterUnsubscribeLinkText, d.UnsubscribeLinkText)
	assert.Equal(t, "hi", d.Preheader)
	assert.Equal(t, "Acme Inc. Logo", d.LogoAlt)
}
