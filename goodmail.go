package goodmail

import (
	"context"
	"sync"

	"github.com/dmitrymomot/goodmail/pkg/config"
)

var defaultMailer = sync.OnceValue(func() *Mailer { return NewMailer() })

// Render renders an email with the default Mailer and the global
// configuration.
func Render(ctx context.Context, h Headers, block Block) (EmailParts, error) {
	return defaultMailer().Render(ctx, h, block)
}

// Compose renders and assembles a message with the default Mailer and the
// global configuration.
func Compose(ctx context.Context, h Headers, block Block) (*Message, error) {
	return defaultMailer().Compose(ctx, h, block)
}

// Configure updates the global configuration. fn works on a copy; the copy
// is committed only if it validates. A failure wraps ErrInvalidConfig and
// names every missing required setting.
//
// Configuration must be complete before concurrent rendering starts.
func Configure(fn func(*config.Config)) error {
	return config.Configure(fn)
}

// Config returns a copy of the global configuration, starting from the
// defaults on first use.
func Config() config.Config {
	return config.Current()
}

// ResetConfig discards the global configuration; the next read starts from
// the defaults again.
func ResetConfig() {
	config.Reset()
}
