// Package header provides HTTP header names, header values and a bounded
// header map.
//
// Names are validated against the RFC 9110 token grammar and stored in lower
// case. Values reject control characters other than horizontal tab. A Map
// refuses to grow beyond its configured number of entries and reports
// MaxSizeReached instead.
package header
