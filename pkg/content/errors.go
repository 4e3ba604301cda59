package content

import "errors"

var (
	ErrInvalidFrontmatter = errors.New("content: invalid frontmatter")
	ErrRenderFailed       = errors.New("content: markdown render failed")
	ErrNotFound           = errors.New("content: file not found")
	ErrInvalidSite        = errors.New("content: invalid site data")
)
