package sanitizer_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/goodmail/pkg/sanitizer"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes basic HTML characters",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "escapes quotes and ampersands",
			input:    `"test" & 'value'`,
			expected: "&#34;test&#34; &amp; &#39;value&#39;",
		},
		{
			name:     "handles normal text",
			input:    "normal text",
			expected: "normal text",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.EscapeHTML(tt.input))
		})
	}
}

func TestUnescapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<script>alert('xss')</script>", sanitizer.UnescapeHTML("&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"))
	assert.Equal(t, `"a" & b`, sanitizer.UnescapeHTML("&quot;a&quot; &amp; b"))
}

var tagRegex = regexp.MustCompile(`<\s*/?\s*([a-zA-Z0-9]+)([^>]*)>`)

func TestLinksOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "keeps relative link",
			input:    `Hello <b>World</b> with <a href="/path">link</a>`,
			contains: []string{`<a href="/path">link</a>`, "Hello World with"},
			excludes: []string{"<b>"},
		},
		{
			name:     "keeps absolute link and drops event handler",
			input:    `<a href="https://example.com" onclick="steal()">go</a>`,
			contains: []string{`<a href="https://example.com">go</a>`},
			excludes: []string{"onclick", "steal"},
		},
		{
			name:     "drops javascript urls",
			input:    `<a href="javascript:alert(1)">x</a>`,
			excludes: []string{"javascript", "href"},
		},
		{
			name:     "drops script content entirely",
			input:    `before<script>alert("xss")</script>after`,
			contains: []string{"beforeafter"},
			excludes: []string{"alert", "<script"},
		},
		{
			name:     "escapes bare ampersands",
			input:    "Line2 & copy",
			contains: []string{"Line2 &amp; copy"},
		},
		{
			name:     "strips images and attributes on allowed tags",
			input:    `<img src="x" onerror="evil()"><a href="https://x" class="c" style="color:red">y</a>`,
			contains: []string{`<a href="https://x">y</a>`},
			excludes: []string{"<img", "class=", "style="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := sanitizer.LinksOnly(tt.input)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
			for _, m := range tagRegex.FindAllStringSubmatch(out, -1) {
				assert.Equal(t, "a", m[1], "only anchors may survive: %s", m[0])
			}
		})
	}
}
