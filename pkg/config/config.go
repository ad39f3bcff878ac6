package config

import (
	"fmt"
	"strings"
)

// Config holds the settings shared by every rendered email: brand identity,
// links and footer policy. Empty strings mean "not configured".
type Config struct {
	BrandColor                string `env:"BRAND_COLOR" yaml:"brand_color"`
	CompanyName               string `env:"COMPANY_NAME" yaml:"company_name"`
	LogoURL                   string `env:"LOGO_URL" yaml:"logo_url"`
	CompanyURL                string `env:"COMPANY_URL" yaml:"company_url"`
	BaseURL                   string `env:"BASE_URL" yaml:"base_url"`
	UnsubscribeURL            string `env:"UNSUBSCRIBE_URL" yaml:"unsubscribe_url"`
	DefaultPreheader          string `env:"DEFAULT_PREHEADER" yaml:"default_preheader"`
	FooterText                string `env:"FOOTER_TEXT" yaml:"footer_text"`
	ShowFooterUnsubscribeLink bool   `env:"SHOW_FOOTER_UNSUBSCRIBE_LINK" yaml:"show_footer_unsubscribe_link"`
	FooterUnsubscribeLinkText string `env:"FOOTER_UNSUBSCRIBE_LINK_TEXT" yaml:"footer_unsubscribe_link_text"`
}

// Default values applied before any user configuration.
const (
	DefaultBrandColor                = "#348eda"
	DefaultCompanyName               = "Example Inc."
	DefaultFooterUnsubscribeLinkText = "Unsubscribe"
)

// Default returns the default configuration. Each call returns a fresh copy,
// so callers can never mutate the template itself.
func Default() Config {
	return Config{
		BrandColor:                DefaultBrandColor,
		CompanyName:               DefaultCompanyName,
		FooterUnsubscribeLinkText: DefaultFooterUnsubscribeLinkText,
	}
}

// Validate reports every required setting that is missing or blank.
// The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.CompanyName) == "" {
		missing = append(missing, "companyName")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required settings: %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

// UnsubscribeLinkText returns the footer unsubscribe label, falling back to
// the default when it is blank.
func (c Config) UnsubscribeLinkText() string {
	if t := strings.TrimSpace(c.FooterUnsubscribeLinkText); t != "" {
		return t
	}
	return DefaultFooterUnsubscribeLinkText
}

// HasLinkedLogo reports whether the layout renders a logo wrapped in a link
// to the company site.
func (c Config) HasLinkedLogo() bool {
	return strings.TrimSpace(c.LogoURL) != "" &&
		strings.TrimSpace(c.CompanyURL) != "" &&
		strings.TrimSpace(c.CompanyName) != ""
}
