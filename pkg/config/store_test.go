package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodmail/pkg/config"
)

// Store tests share process-wide state and therefore never run in parallel.

func TestCurrent_LazilyDuplicatesDefaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	assert.Equal(t, config.Default(), config.Current())

	c1 := config.Current()
	c1.BrandColor = "#abcdef"
	assert.Equal(t, config.DefaultBrandColor, config.Current().BrandColor, "snapshots are copies")
	assert.Equal(t, config.DefaultBrandColor, config.Default().BrandColor)
}

func TestConfigure_Persists(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	err := config.Configure(func(c *config.Config) {
		c.CompanyName = "Zeta LLC"
		c.BrandColor = "#abcdef"
		c.FooterText = "Why you got this"
		c.ShowFooterUnsubscribeLink = true
		c.FooterUnsubscribeLinkText = "Manage"
	})
	require.NoError(t, err)

	c := config.Current()
	assert.Equal(t, "Zeta LLC", c.CompanyName)
	assert.Equal(t, "#abcdef", c.BrandColor)
	assert.Equal(t, "Why you got this", c.FooterText)
	assert.True(t, c.ShowFooterUnsubscribeLink)
	assert.Equal(t, "Manage", c.FooterUnsubscribeLinkText)
}

func TestConfigure_RequiresCompanyName(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	require.NoError(t, config.Configure(func(c *config.Config) { c.CompanyName = "Acme Inc." }))

	err := config.Configure(func(c *config.Config) {
		c.CompanyName = "  "
		c.BrandColor = "#000000"
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "companyName")

	c := config.Current()
	assert.Equal(t, "Acme Inc.", c.CompanyName, "failed configure must not commit")
	assert.Equal(t, config.DefaultBrandColor, c.BrandColor)
}

func TestConfigure_NilFunc(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	assert.ErrorIs(t, config.Configure(nil), config.ErrNilConfigurator)
}

func TestReset(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	require.NoError(t, config.Configure(func(c *config.Config) { c.CompanyName = "A" }))
	config.Reset()
	assert.Equal(t, config.DefaultCompanyName, config.Current().CompanyName)

	require.NoError(t, config.Configure(func(c *config.Config) { c.CompanyName = "Acme Inc." }))
	assert.Equal(t, "Acme Inc.", config.Current().CompanyName)
}
