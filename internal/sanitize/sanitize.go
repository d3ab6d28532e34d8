// Package sanitize cleans model-produced HTML before it is handed to a client.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var allowedElements = []string{
	"a", "b", "strong", "i", "em", "br", "p", "ul", "ol", "li",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"code", "pre", "blockquote", "hr", "span", "div",
	"table", "thead", "tbody", "tr", "th", "td",
}

// DefaultSchemes are the link schemes kept when none are configured.
var DefaultSchemes = []string{"http", "https", "mailto"}

// Sanitizer applies an allow-list policy. Elements outside the list are
// unwrapped with their text kept; script and style bodies are dropped.
// It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New builds a Sanitizer whose links may only use the given schemes.
func New(schemes ...string) *Sanitizer {
	if len(schemes) == 0 {
		schemes = DefaultSchemes
	}

	p := bluemonday.NewPolicy()
	p.AllowElements(allowedElements...)
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("href", "rel", "target").OnElements("a")
	p.AllowURLSchemes(schemes...)
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return &Sanitizer{policy: p}
}

// Sanitize returns html with everything outside the allow-list removed.
func (s *Sanitizer) Sanitize(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	return s.policy.Sanitize(html)
}
