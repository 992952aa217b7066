package markdown

import (
	"github.com/microcosm-cc/bluemonday"
)

// allowedTags is the exact tag allow-list of the widget's sanitizer
// contract. Anything outside it is stripped from rendered output.
var allowedTags = []string{
	"p", "br",
	"b", "strong", "i", "em", "u", "s", "del", "strike",
	"code", "pre",
	"ul", "ol", "li",
	"blockquote",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"table", "thead", "tbody", "tr", "th", "td",
	"hr", "span", "div",
}

// sanitizer wraps the bluemonday policy so the renderer does not depend on
// its type directly.
type sanitizer struct {
	policy *bluemonday.Policy
}

// newSanitizer builds the allow-list policy. Tags: allowedTags plus a and
// img. Attributes: href, target, rel, class, src, alt, title. Everything
// else, data-attributes included, is dropped.
func newSanitizer() *sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(allowedTags...)
	p.AllowAttrs("class", "title").Globally()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	return &sanitizer{policy: p}
}

func (s *sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
