// Package errors provides the umbrella error for httpcore.
//
// Every validation failure produced by the status, method, uri and header
// packages converts into *Error without loss. The concrete value can be
// recovered by exact type:
//
//	code, err := status.FromUint16(n)
//	if err != nil {
//	    e, _ := errors.Convert(err)
//	    if errors.Is[status.InvalidStatusCode](e) {
//	        ...
//	    }
//	}
//
// An *Error renders exactly like the value it holds and reports that value's
// own cause from Source and Unwrap; it never adds a link to the chain.
//
// # Build configuration
//
// Building with the noalloc tag removes the URI, URIParts, HeaderValue and
// MaxSizeReached kinds, leaving StatusCode, Method and HeaderName.
package errors
