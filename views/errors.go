package views

import "errors"

var (
	ErrTemplate    = errors.New("views: failed to parse templates")
	ErrMissingSite = errors.New("views: site content is required")
)
