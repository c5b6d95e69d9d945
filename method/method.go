package method

import (
	"golang.org/x/net/http/httpguts"
)

// Method is an HTTP request method such as GET or POST.
type Method string

// Standard methods.
const (
	Get     Method = "GET"
	Post    Method = "POST"
	Put     Method = "PUT"
	Delete  Method = "DELETE"
	Head    Method = "HEAD"
	Options Method = "OPTIONS"
	Connect Method = "CONNECT"
	Patch   Method = "PATCH"
	Trace   Method = "TRACE"
)

// InvalidMethod is returned when bytes do not form a valid method token.
type InvalidMethod struct{}

func (InvalidMethod) Error() string { return "invalid HTTP method" }

// Unwrap returns nil; an invalid method has no underlying cause.
func (InvalidMethod) Unwrap() error { return nil }

// FromBytes converts b to a Method. Methods are case-sensitive.
func FromBytes(b []byte) (Method, error) {
	if len(b) == 0 {
		return "", InvalidMethod{}
	}
	for _, c := range b {
		if !httpguts.IsTokenRune(rune(c)) {
			return "", InvalidMethod{}
		}
	}
	return Method(b), nil
}

// FromString is FromBytes for string input.
func FromString(s string) (Method, error) {
	return FromBytes([]byte(s))
}

// String returns the method as sent on the wire.
func (m Method) String() string { return string(m) }

// IsSafe reports whether the method is defined as safe by RFC 9110.
func (m Method) IsSafe() bool {
	switch m {
	case Get, Head, Options, Trace:
		return true
	}
	return false
}

// IsIdempotent reports whether the method is idempotent.
func (m Method) IsIdempotent() bool {
	switch m {
	case Put, Delete:
		return true
	}
	return m.IsSafe()
}
