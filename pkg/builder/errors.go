package builder

import "errors"

// ErrInvalidArgument is returned when a DSL call receives a value it cannot
// render, such as a non-numeric spacer height.
var ErrInvalidArgument = errors.New("invalid argument")
