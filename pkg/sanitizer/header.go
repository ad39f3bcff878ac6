package sanitizer

import "strings"

// PreventHeaderInjection removes characters that could be used for header injection.
func PreventHeaderInjection(s string) string {
	// Remove line breaks that could split headers
	result := strings.ReplaceAll(s, "\r", "")
	result = strings.ReplaceAll(result, "\n", "")

	// Remove null bytes
	return strings.ReplaceAll(result, "\x00", "")
}
