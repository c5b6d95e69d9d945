package header

import (
	"github.com/kbukum/httpcore/convert"
)

// Value is a validated HTTP header field value.
type Value struct {
	b         []byte
	sensitive bool
}

// InvalidHeaderValue is returned when bytes are not a valid header value.
type InvalidHeaderValue struct{}

func (InvalidHeaderValue) Error() string { return "failed to parse header value" }

// Unwrap returns nil; an invalid header value has no underlying cause.
func (InvalidHeaderValue) Unwrap() error { return nil }

// ValueFromString accepts visible ASCII and horizontal tab only.
func ValueFromString(s string) (Value, error) {
	for i := 0; i < len(s); i++ {
		if !isVisibleASCII(s[i]) {
			return Value{}, InvalidHeaderValue{}
		}
	}
	return Value{b: []byte(s)}, nil
}

// ValueFromBytes accepts any byte except controls other than tab; bytes above
// 0x7f (obs-text) are allowed. The input is copied.
func ValueFromBytes(b []byte) (Value, error) {
	if !validValueBytes(b) {
		return Value{}, InvalidHeaderValue{}
	}
	return Value{b: append([]byte(nil), b...)}, nil
}

type valueResult struct {
	value Value
	err   error
}

// ValueFromMaybeShared builds a Value from string or byte input. When src is
// exactly a []byte the Value takes over its backing array without copying;
// the caller must not modify src afterwards. Any other input is copied.
func ValueFromMaybeShared[T ~string | ~[]byte](src T) (Value, error) {
	if r, ok := convert.DowncastInto[[]byte](src, valueFromShared); ok {
		return r.value, r.err
	}
	return ValueFromBytes([]byte(src))
}

func valueFromShared(b []byte) valueResult {
	if !validValueBytes(b) {
		return valueResult{err: InvalidHeaderValue{}}
	}
	return valueResult{value: Value{b: b}}
}

// Bytes returns the value's bytes. The slice must not be modified.
func (v Value) Bytes() []byte { return v.b }

// String returns the value as a string.
func (v Value) String() string { return string(v.b) }

// Len returns the length of the value in bytes.
func (v Value) Len() int { return len(v.b) }

// IsEmpty reports whether the value has zero length.
func (v Value) IsEmpty() bool { return len(v.b) == 0 }

// IsSensitive reports whether the value was marked sensitive.
func (v Value) IsSensitive() bool { return v.sensitive }

// WithSensitive returns a copy of v with the sensitivity flag set. Sensitive
// values are meant to be kept out of compression tables and logs.
func (v Value) WithSensitive(sensitive bool) Value {
	v.sensitive = sensitive
	return v
}

func isVisibleASCII(c byte) bool {
	return (c >= 32 && c < 127) || c == '\t'
}

func validValueBytes(b []byte) bool {
	for _, c := range b {
		if (c < 32 && c != '\t') || c == 127 {
			return false
		}
	}
	return true
}
