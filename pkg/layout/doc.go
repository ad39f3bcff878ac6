// Package layout wraps builder output in a complete HTML email document.
//
// The document carries the subject as title and schema.org name, an
// optional hidden preheader, an optional logo header (linked to the company
// site when configured) and a footer with optional text and unsubscribe
// link. The 600px structural table and Office document settings sit inside
// Outlook conditional comments, which survive CSS inlining untouched.
//
// Basic usage:
//
//	html, err := layout.Render(ctx, layout.Params{
//		Body:    b.Output(),
//		Subject: "Welcome",
//	}, config.Current())
//	if errors.Is(err, layout.ErrTemplateNotFound) {
//		// packaging problem
//	}
//
// The same document is available as a templ.Component through Component,
// so it can be embedded in other templ views.
//
// A custom template replaces the embedded one with WithTemplateFile or
// WithTemplateFS. Templates are parsed with text/template, receive a Data
// value and have an "esc" function for HTML escaping; Body is inserted
// without escaping.
package layout
