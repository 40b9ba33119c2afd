package report

import "errors"

// Report domain errors
var (
	ErrRenderFailed    = errors.New("report rendering failed")
	ErrFontUnavailable = errors.New("script-capable font is not available")
)
