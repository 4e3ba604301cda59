package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charlieallen/portfolio/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "hello world", want: "hello world"},
		{name: "paragraphs", input: "<p>First</p>\n<p>Second</p>", want: "First Second"},
		{name: "script removed", input: `<script>alert("x")</script>Safe`, want: "Safe"},
		{name: "entities decoded", input: "<p>Tom &amp; Jerry</p>", want: "Tom & Jerry"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("keeps formatting", func(t *testing.T) {
		t.Parallel()

		in := "<h2>Title</h2><p>Some <strong>bold</strong> and <em>italic</em></p><ul><li>one</li></ul>"
		assert.Equal(t, in, sanitizer.Markdown(in))
	})

	t.Run("keeps button class", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Markdown(`<a href="/contact" class="btn btn-primary">Get in Touch</a>`)
		assert.Contains(t, out, `class="btn btn-primary"`)
		assert.Contains(t, out, `href="/contact"`)
	})

	t.Run("drops unknown class", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Markdown(`<a href="/x" class="evil">x</a>`)
		assert.NotContains(t, out, "evil")
	})

	t.Run("removes scripts and handlers", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Markdown(`<p onclick="steal()">hi</p><script>alert(1)</script>`)
		assert.NotContains(t, out, "onclick")
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "hi")
	})

	t.Run("removes javascript urls", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Markdown(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, out, "javascript:")
	})

	t.Run("external links open in new tab", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Markdown(`<a href="https://github.com/TemperateGrassland">GitHub</a>`)
		assert.Contains(t, out, `target="_blank"`)
		assert.Contains(t, out, "noopener")
	})
}
