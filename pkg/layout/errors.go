package layout

import "errors"

var (
	// ErrTemplateNotFound is returned when the layout template cannot be
	// located. It usually points at a packaging or deployment problem.
	ErrTemplateNotFound = errors.New("layout template not found")
	ErrRenderFailed     = errors.New("failed to render layout")
)
