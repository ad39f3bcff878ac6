package layout

import (
	"io/fs"
	"os"
)

// Option overrides how the layout template is located.
type Option func(*options)

type options struct {
	name string
	read func() ([]byte, error)
}

// WithTemplateFile renders with the template at path instead of the
// embedded default.
func WithTemplateFile(path string) Option {
	return func(o *options) {
		o.name = path
		o.read = func() ([]byte, error) { return os.ReadFile(path) }
	}
}

// WithTemplateFS renders with the template called name in fsys.
func WithTemplateFS(fsys fs.FS, name string) Option {
	return func(o *options) {
		o.name = name
		o.read = func() ([]byte, error) { return fs.ReadFile(fsys, name) }
	}
}
