package goodmail

import (
	"github.com/dmitrymomot/goodmail/pkg/builder"
	"github.com/dmitrymomot/goodmail/pkg/config"
	"github.com/dmitrymomot/goodmail/pkg/layout"
)

// Errors callers are expected to check with errors.Is.
var (
	ErrInvalidConfig    = config.ErrInvalidConfig
	ErrInvalidArgument  = builder.ErrInvalidArgument
	ErrTemplateNotFound = layout.ErrTemplateNotFound
)
