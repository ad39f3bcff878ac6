// Package plaintext derives the text/plain part of an email from its HTML.
//
// The reduction is pattern based, not a real HTML parser. Step order
// matters: entities are decoded before tags are matched and links are
// rewritten to "LABEL ( URL )" before the generic tag strip, so link targets
// survive in the text.
//
//	text := plaintext.Generate(`<h1>Hi</h1><p>Read <a href="https://x">the docs</a></p>`)
//	// "Hi\n\nRead the docs ( https://x )"
//
// Cleanup removes artifacts of image-as-link extraction (the linked logo's
// alt text and lines holding a bare URL). Convert runs both.
package plaintext
