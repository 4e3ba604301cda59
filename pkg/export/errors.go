package export

import "errors"

var (
	ErrRender = errors.New("export: failed to render page")
	ErrWrite  = errors.New("export: failed to write file")
)
