package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy   *bluemonday.Policy
	markdownPolicy *bluemonday.Policy
	initOnce       sync.Once

	buttonClass = regexp.MustCompile(`^btn( btn-(primary|secondary))?$`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// Markdown output: goldmark's block and inline elements plus button links
		markdownPolicy = bluemonday.UGCPolicy()
		markdownPolicy.AllowAttrs("class").Matching(buttonClass).OnElements("a")
		markdownPolicy.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
		markdownPolicy.AddTargetBlankToFullyQualifiedLinks(true)
		markdownPolicy.RequireNoReferrerOnFullyQualifiedLinks(true)
	})
}

// StripHTML removes all markup and collapses whitespace.
// Entities are decoded so the result is plain text suitable for meta tags.
func StripHTML(s string) string {
	initPolicies()
	text := html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
}

// Markdown sanitizes HTML produced by the markdown renderer.
// Scripts, event handlers and javascript: URLs are removed; button classes survive.
func Markdown(s string) string {
	initPolicies()
	return markdownPolicy.Sanitize(s)
}
