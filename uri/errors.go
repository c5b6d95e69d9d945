package uri

type errorKind uint8

const (
	kindInvalidURIChar errorKind = iota + 1
	kindInvalidScheme
	kindInvalidAuthority
	kindInvalidPort
	kindSchemeMissing
	kindAuthorityMissing
	kindPathAndQueryMissing
	kindTooLong
	kindEmpty
	kindSchemeTooLong
)

var kindMessages = map[errorKind]string{
	kindInvalidURIChar:      "invalid uri character",
	kindInvalidScheme:       "invalid scheme",
	kindInvalidAuthority:    "invalid authority",
	kindInvalidPort:         "invalid port number",
	kindSchemeMissing:       "scheme missing",
	kindAuthorityMissing:    "authority missing",
	kindPathAndQueryMissing: "path missing",
	kindTooLong:             "uri too long",
	kindEmpty:               "empty string",
	kindSchemeTooLong:       "scheme too long",
}

// InvalidURI is returned when a string cannot be parsed as a URI.
type InvalidURI struct {
	kind errorKind
}

func (e InvalidURI) Error() string {
	if msg, ok := kindMessages[e.kind]; ok {
		return msg
	}
	return "invalid uri"
}

// Unwrap returns nil; InvalidURI is always the root of its chain.
func (InvalidURI) Unwrap() error { return nil }

// InvalidURIParts is returned when Parts cannot be assembled into a URI.
type InvalidURIParts struct {
	cause InvalidURI
}

func (e InvalidURIParts) Error() string { return e.cause.Error() }

// Unwrap returns the InvalidURI describing the rejected component.
func (e InvalidURIParts) Unwrap() error { return e.cause }

func invalid(k errorKind) InvalidURI { return InvalidURI{kind: k} }
