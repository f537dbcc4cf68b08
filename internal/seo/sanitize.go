package seo

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
	stripOnce  sync.Once
	strict     *bluemonday.Policy
)

// SanitizeHTML removes scripts, event handlers and other unsafe markup from generated HTML
func SanitizeHTML(markup string) string {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AllowAttrs("class").OnElements("section", "div", "p", "ul", "ol", "li", "h2", "h3")
	})
	return strings.TrimSpace(policy.Sanitize(markup))
}

// StripTags reduces generated text to plain text for titles and meta descriptions
func StripTags(s string) string {
	stripOnce.Do(func() {
		strict = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
