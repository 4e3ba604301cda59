// Package site embeds the portfolio copy loaded by pkg/content.
package site

import "embed"

//go:embed site.yaml about.md projects/*.md
var FS embed.FS
