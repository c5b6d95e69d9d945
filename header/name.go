package header

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// MaxNameLen is the longest header name accepted.
const MaxNameLen = 1<<16 - 1

// Name is a validated, lower-cased HTTP header field name.
type Name struct {
	s string
}

// InvalidHeaderName is returned when bytes do not form a valid header name.
type InvalidHeaderName struct{}

func (InvalidHeaderName) Error() string { return "invalid HTTP header name" }

// Unwrap returns nil; an invalid header name has no underlying cause.
func (InvalidHeaderName) Unwrap() error { return nil }

// NameFromString validates s and returns it as a Name.
func NameFromString(s string) (Name, error) {
	if len(s) > MaxNameLen || !httpguts.ValidHeaderFieldName(s) {
		return Name{}, InvalidHeaderName{}
	}
	return Name{s: strings.ToLower(s)}, nil
}

// NameFromBytes is NameFromString for byte input.
func NameFromBytes(b []byte) (Name, error) {
	return NameFromString(string(b))
}

// String returns the lower-cased name.
func (n Name) String() string { return n.s }
