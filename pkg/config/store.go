package config

import "sync"

// store is the process-wide live configuration. It starts empty and is
// duplicated from Default on first read.
var store = struct {
	mu      sync.RWMutex
	current *Config
}{}

// Current returns a snapshot of the live configuration, initializing it from
// the defaults on first access.
func Current() Config {
	store.mu.RLock()
	if store.current != nil {
		c := *store.current
		store.mu.RUnlock()
		return c
	}
	store.mu.RUnlock()

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.current == nil {
		c := Default()
		store.current = &c
	}
	return *store.current
}

// Configure applies fn to a copy of the live configuration and validates the
// result. The copy replaces the live configuration only when it is valid, so
// a failed call leaves the previous settings in place.
//
// Configure is meant to run during startup. Rendering concurrently with a
// Configure call observes either the old or the new settings, never a mix.
//
// Example:
//
//	err := config.Configure(func(c *config.Config) {
//	    c.CompanyName = "Acme Inc."
//	    c.BrandColor = "#ff0000"
//	})
func Configure(fn func(c *Config)) error {
	if fn == nil {
		return ErrNilConfigurator
	}

	next := Current()
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}

	store.mu.Lock()
	store.current = &next
	store.mu.Unlock()
	return nil
}

// Reset drops the live configuration. The next Current call starts again
// from the defaults. Primarily useful in tests.
func Reset() {
	store.mu.Lock()
	store.current = nil
	store.mu.Unlock()
}
