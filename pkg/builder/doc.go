// Package builder turns a small declarative vocabulary into sanitized HTML
// email fragments.
//
// A Builder collects one fragment per call, in call order. Untrusted text is
// sanitized or escaped exactly once when it is appended; Raw is the only way
// to insert markup unchanged.
//
//	b := builder.New(config.Current())
//	err := b.Run(func(b *builder.Builder) error {
//	    b.Heading(builder.H1, "Welcome!")
//	    b.Text("Thanks for signing up.\nYour account is ready.")
//	    b.Button("Open dashboard", "https://app.example.com")
//	    if err := b.Spacer(24); err != nil {
//	        return err
//	    }
//	    return b.Center(func(b *builder.Builder) error {
//	        b.Image("https://cdn.example.com/hero.png", "", builder.Width(320))
//	        return nil
//	    })
//	})
//	html := b.Output()
//
// # Nested regions
//
// Center captures the fragments produced by its block in isolation and
// appends them as one wrapped fragment. When the block fails (error or
// panic) the captured fragments are discarded and the outer sequence is
// restored untouched before the failure propagates.
//
// # Errors
//
// The only call that can fail on user input is Spacer, which returns an
// error wrapping ErrInvalidArgument for values that are not integers.
// Everything else degrades by escaping or stripping markup.
package builder
