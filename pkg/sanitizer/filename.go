package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unsafeFilenameRegex removes filesystem-unsafe characters from filenames
var unsafeFilenameRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// maxFilenameLength keeps generated names well under filesystem limits once
// a timestamp prefix and an extension are added.
const maxFilenameLength = 100

// Filename converts an arbitrary label (usually a subject line or tag) into
// a lowercase, filesystem-safe name. Accented letters are folded to their
// base letter, spaces become underscores and everything else outside
// [a-z0-9-_.] is removed. Empty results fall back to "email".
func Filename(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	// Convert spaces to underscores for readability
	folded = strings.ReplaceAll(folded, " ", "_")
	folded = unsafeFilenameRegex.ReplaceAllString(folded, "")

	if len(folded) > maxFilenameLength {
		folded = folded[:maxFilenameLength]
	}
	if folded == "" {
		folded = "email"
	}
	return strings.ToLower(folded)
}
