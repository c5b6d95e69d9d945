package status

import "strconv"

// Code is an HTTP status code in the range 100-999.
type Code uint16

// Common status codes.
const (
	Continue            Code = 100
	SwitchingProtocols  Code = 101
	OK                  Code = 200
	Created             Code = 201
	Accepted            Code = 202
	NoContent           Code = 204
	MovedPermanently    Code = 301
	Found               Code = 302
	NotModified         Code = 304
	BadRequest          Code = 400
	Unauthorized        Code = 401
	Forbidden           Code = 403
	NotFound            Code = 404
	MethodNotAllowed    Code = 405
	Conflict            Code = 409
	TooManyRequests     Code = 429
	InternalServerError Code = 500
	NotImplemented      Code = 501
	BadGateway          Code = 502
	ServiceUnavailable  Code = 503
	GatewayTimeout      Code = 504
)

var reasons = map[Code]string{
	Continue:            "Continue",
	SwitchingProtocols:  "Switching Protocols",
	OK:                  "OK",
	Created:             "Created",
	Accepted:            "Accepted",
	NoContent:           "No Content",
	MovedPermanently:    "Moved Permanently",
	Found:               "Found",
	NotModified:         "Not Modified",
	BadRequest:          "Bad Request",
	Unauthorized:        "Unauthorized",
	Forbidden:           "Forbidden",
	NotFound:            "Not Found",
	MethodNotAllowed:    "Method Not Allowed",
	Conflict:            "Conflict",
	TooManyRequests:     "Too Many Requests",
	InternalServerError: "Internal Server Error",
	NotImplemented:      "Not Implemented",
	BadGateway:          "Bad Gateway",
	ServiceUnavailable:  "Service Unavailable",
	GatewayTimeout:      "Gateway Timeout",
}

// InvalidStatusCode is returned when a number is not a valid status code.
type InvalidStatusCode struct{}

func (InvalidStatusCode) Error() string { return "invalid status code" }

// Unwrap returns nil; an invalid status code has no underlying cause.
func (InvalidStatusCode) Unwrap() error { return nil }

// FromUint16 converts n to a Code. Any value outside 100-999 is rejected.
func FromUint16(n uint16) (Code, error) {
	if n < 100 || n > 999 {
		return 0, InvalidStatusCode{}
	}
	return Code(n), nil
}

// FromBytes parses a three-digit ASCII status code such as "404".
func FromBytes(b []byte) (Code, error) {
	if len(b) != 3 {
		return 0, InvalidStatusCode{}
	}
	var n uint16
	for i, c := range b {
		if c < '0' || c > '9' || (i == 0 && c == '0') {
			return 0, InvalidStatusCode{}
		}
		n = n*10 + uint16(c-'0')
	}
	return FromUint16(n)
}

// Uint16 returns the numeric value of the code.
func (c Code) Uint16() uint16 { return uint16(c) }

// String returns the three-digit representation of the code.
func (c Code) String() string { return strconv.Itoa(int(c)) }

// CanonicalReason returns the reason phrase for well-known codes, or "".
func (c Code) CanonicalReason() string { return reasons[c] }

// IsInformational reports whether the code is in the 1xx class.
func (c Code) IsInformational() bool { return c >= 100 && c < 200 }

// IsSuccess reports whether the code is in the 2xx class.
func (c Code) IsSuccess() bool { return c >= 200 && c < 300 }

// IsRedirection reports whether the code is in the 3xx class.
func (c Code) IsRedirection() bool { return c >= 300 && c < 400 }

// IsClientError reports whether the code is in the 4xx class.
func (c Code) IsClientError() bool { return c >= 400 && c < 500 }

// IsServerError reports whether the code is in the 5xx class.
func (c Code) IsServerError() bool { return c >= 500 && c < 600 }
