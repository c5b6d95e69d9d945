//go:build noalloc

package errors

import (
	"github.com/kbukum/httpcore/header"
	"github.com/kbukum/httpcore/method"
	"github.com/kbukum/httpcore/status"
)

// Concrete is the closed set of error types an Error can hold.
type Concrete interface {
	status.InvalidStatusCode |
		method.InvalidMethod |
		header.InvalidHeaderName
}

func allocKind(Reference) (Kind, bool) { return "", false }
