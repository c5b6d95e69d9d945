package errors

// Kind names the category of the value an Error holds.
type Kind string

// Kinds available in every build.
const (
	// KindStatusCode marks a status.InvalidStatusCode.
	KindStatusCode Kind = "status_code"
	// KindMethod marks a method.InvalidMethod.
	KindMethod Kind = "method"
	// KindHeaderName marks a header.InvalidHeaderName.
	KindHeaderName Kind = "header_name"
)

// String returns the kind's name.
func (k Kind) String() string { return string(k) }
