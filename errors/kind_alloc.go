//go:build !noalloc

package errors

import (
	"github.com/kbukum/httpcore/header"
	"github.com/kbukum/httpcore/method"
	"github.com/kbukum/httpcore/status"
	"github.com/kbukum/httpcore/uri"
)

// Kinds that depend on dynamically sized values.
const (
	// KindURI marks a uri.InvalidURI.
	KindURI Kind = "uri"
	// KindURIParts marks a uri.InvalidURIParts.
	KindURIParts Kind = "uri_parts"
	// KindHeaderValue marks a header.InvalidHeaderValue.
	KindHeaderValue Kind = "header_value"
	// KindMaxSizeReached marks a header.MaxSizeReached.
	KindMaxSizeReached Kind = "max_size_reached"
)

// Concrete is the closed set of error types an Error can hold.
type Concrete interface {
	status.InvalidStatusCode |
		method.InvalidMethod |
		header.InvalidHeaderName |
		uri.InvalidURI |
		uri.InvalidURIParts |
		header.InvalidHeaderValue |
		header.MaxSizeReached
}

// FromURI wraps an invalid URI error.
func FromURI(err uri.InvalidURI) *Error {
	return newError(KindURI, err)
}

// FromURIParts wraps an invalid URI parts error.
func FromURIParts(err uri.InvalidURIParts) *Error {
	return newError(KindURIParts, err)
}

// FromHeaderValue wraps an invalid header value error.
func FromHeaderValue(err header.InvalidHeaderValue) *Error {
	return newError(KindHeaderValue, err)
}

// FromMaxSizeReached wraps a header map size error.
func FromMaxSizeReached(err header.MaxSizeReached) *Error {
	return newError(KindMaxSizeReached, err)
}

func allocKind(ref Reference) (Kind, bool) {
	switch ref.(type) {
	case uri.InvalidURI:
		return KindURI, true
	case uri.InvalidURIParts:
		return KindURIParts, true
	case header.InvalidHeaderValue:
		return KindHeaderValue, true
	case header.MaxSizeReached:
		return KindMaxSizeReached, true
	}
	return "", false
}
