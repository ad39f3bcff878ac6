// Package config holds the process-wide goodmail configuration: brand color,
// company identity, URLs and footer policy.
//
// The package keeps a frozen default template and a live copy that is
// duplicated from the defaults on first access. The live copy changes only
// through Configure, which validates the result before committing it, and is
// dropped by Reset.
//
// # Usage
//
//	import "github.com/dmitrymomot/goodmail/pkg/config"
//
//	err := config.Configure(func(c *config.Config) {
//	    c.CompanyName = "Acme Inc."
//	    c.LogoURL = "https://cdn.acme.example/logo.png"
//	    c.CompanyURL = "https://acme.example"
//	})
//	if err != nil {
//	    // errors.Is(err, config.ErrInvalidConfig)
//	}
//
//	cfg := config.Current() // immutable snapshot to pass into renderers
//
// # Loading
//
// Settings can be loaded from the environment (GOODMAIL_* variables, optional
// .env files via godotenv and caarlos0/env) or from a YAML file:
//
//	cfg, err := config.FromEnv()          // or config.FromEnv("./config/.env")
//	cfg, err := config.FromFile("goodmail.yaml")
//
//	err = config.Configure(func(c *config.Config) { *c = cfg })
//
// # Concurrency
//
// Reads are safe from multiple goroutines. Finish configuration before
// rendering concurrently; renderers take a snapshot and never observe later
// changes.
package config
