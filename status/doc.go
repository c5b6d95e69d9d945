// Package status provides HTTP status codes and the error returned when a
// numeric code falls outside the valid three-digit range.
//
// # Usage
//
//	code, err := status.FromUint16(204)
//	if err != nil {
//	    return err
//	}
//	code.IsSuccess() // true
package status
