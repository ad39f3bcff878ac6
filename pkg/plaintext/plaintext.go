package plaintext

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/goodmail/pkg/config"
	"github.com/dmitrymomot/goodmail/pkg/sanitizer"
)

const paragraphBoundary = "\n\n"

// Pre-compiled regular expressions, in the order Generate applies them.
var (
	commentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)
	invisible    = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<head\b[^>]*>.*?</head\s*>`),
		regexp.MustCompile(`(?is)<title\b[^>]*>.*?</title\s*>`),
		regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`),
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`),
	}
	anchorRegex      = regexp.MustCompile(`(?is)<a\s[^>]*?\bhref\s*=\s*["']([^"']*)["'][^>]*>(.*?)</a\s*>`)
	blockRegex       = regexp.MustCompile(`(?i)</?(?:p|h[1-6]|ul|ol|li|div|tr|table|hr)\b[^>]*>`)
	lineBreakRegex   = regexp.MustCompile(`(?i)<br\b[^>]*>`)
	tagRegex         = regexp.MustCompile(`<[^>]*>`)
	horizontalSpace  = regexp.MustCompile(`[ \t]+`)
	excessNewlines   = regexp.MustCompile(`\n{3,}`)
	bareURLLineRegex = regexp.MustCompile(`(?im)^[ \t]*https?://\S+[ \t]*$\n?`)
)

// Generate reduces an HTML fragment to readable plain text.
//
// Comments and invisible elements (style, script, head, title) are removed
// first; MSO conditional blocks live in comments and would otherwise
// duplicate button labels. Then, in order: entities are decoded, anchors
// become "LABEL ( URL )", block boundaries and line breaks become blank
// lines, remaining tags are stripped, horizontal whitespace is collapsed and
// every line trimmed, runs of blank lines are compacted to one and the
// result is trimmed.
//
// Stripping tags can join the halves of an entity ("&am<b></b>p;"), so the
// pipeline repeats until its output stops changing. Every step either leaves
// the text alone or shortens it, which bounds the repetitions.
//
// Generate is idempotent: Generate(Generate(x)) == Generate(x).
func Generate(html string) string {
	s := html
	for {
		next := generate(s)
		if next == s {
			return next
		}
		s = next
	}
}

func generate(html string) string {
	s := commentRegex.ReplaceAllString(html, "")
	for _, re := range invisible {
		s = re.ReplaceAllString(s, "")
	}

	s = decodeEntities(s)

	s = anchorRegex.ReplaceAllStringFunc(s, func(m string) string {
		sub := anchorRegex.FindStringSubmatch(m)
		return strings.TrimSpace(sub[2]) + " ( " + strings.TrimSpace(sub[1]) + " )"
	})

	s = blockRegex.ReplaceAllString(s, paragraphBoundary)
	s = lineBreakRegex.ReplaceAllString(s, paragraphBoundary)
	s = tagRegex.ReplaceAllString(s, "")

	s = horizontalSpace.ReplaceAllString(s, " ")
	s = trimLines(s)
	s = excessNewlines.ReplaceAllString(s, paragraphBoundary)

	return strings.TrimSpace(s)
}

// Cleanup removes extraction artifacts from generated text: the alt text of
// a linked logo ("<company> Logo ( <company url> )") when cfg describes such
// a logo, and any line made of a bare URL. Blank-line runs are compacted
// again afterwards since removals can reintroduce them.
func Cleanup(text string, cfg config.Config) string {
	if cfg.HasLinkedLogo() {
		text = logoLineRegex(cfg).ReplaceAllString(text, "")
	}
	text = bareURLLineRegex.ReplaceAllString(text, "")
	text = excessNewlines.ReplaceAllString(text, paragraphBoundary)
	return strings.TrimSpace(text)
}

// Convert is Generate followed by Cleanup.
func Convert(html string, cfg config.Config) string {
	return Cleanup(Generate(html), cfg)
}

// logoLineRegex matches the line produced by a logo image whose alt text is
// "<company> Logo" wrapped in a link to the company site. Whitespace between
// the company name and "Logo" is optional.
func logoLineRegex(cfg config.Config) *regexp.Regexp {
	name := regexp.QuoteMeta(strings.TrimSpace(cfg.CompanyName))
	url := regexp.QuoteMeta(strings.TrimSpace(cfg.CompanyURL))
	return regexp.MustCompile(`(?im)^[ \t]*` + name + `\s*Logo\s*\(.*?` + url + `.*?\).*$\n?`)
}

// decodeEntities unescapes until the text stops changing, so nested encodings
// ("&amp;amp;lt;") cannot leave entities behind for a second pass. Each
// successful pass shortens the text.
func decodeEntities(s string) string {
	for {
		decoded := sanitizer.UnescapeHTML(s)
		if decoded == s {
			return s
		}
		s = decoded
	}
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
