// Package content loads the site's copy from a filesystem.
//
// A site directory holds site.yaml with the structured data (identity, meta tags,
// navigation, highlights, skills, contact details), about.md for the bio, and one
// markdown file per project under projects/. Markdown files start with an optional
// YAML frontmatter block delimited by "---" lines.
//
// Markdown is rendered with goldmark plus a button syntax:
//
//	[!button|Get in Touch](/contact)
//	[!button:secondary|View My Work](/projects)
//
// and the output is sanitized before it is exposed as template.HTML.
package content
