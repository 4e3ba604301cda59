package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/charlieallen/portfolio/pkg/sanitizer"
)

// Renderer converts markdown to sanitized HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with GFM and button links enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				NewButtonExtension(),
			),
		),
	}
}

// Render converts markdown source to HTML safe for direct inclusion in a page.
func (r *Renderer) Render(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return template.HTML(sanitizer.Markdown(buf.String())), nil //nolint:gosec // sanitized above
}

// Excerpt returns the first paragraph of rendered HTML as plain text.
func Excerpt(h template.HTML) string {
	s := string(h)
	if start := strings.Index(s, "<p>"); start >= 0 {
		s = s[start:]
		if end := strings.Index(s, "</p>"); end >= 0 {
			s = s[:end]
		}
	}
	return sanitizer.StripHTML(s)
}
