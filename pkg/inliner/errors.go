package inliner

import "errors"

var ErrInlineFailed = errors.New("failed to inline css")
