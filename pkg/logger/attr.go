package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Subject records an email subject under the key "subject".
func Subject(s string) slog.Attr {
	return slog.String("subject", s)
}

// Recipients records the number of addressed recipients. Addresses
// themselves are personal data and are not logged.
func Recipients(n int) slog.Attr {
	return slog.Int("recipients", n)
}

// Fragments records how many builder fragments a body produced.
func Fragments(n int) slog.Attr {
	return slog.Int("fragments", n)
}

// Size records a byte size under the given key, e.g. "html_bytes".
func Size(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
