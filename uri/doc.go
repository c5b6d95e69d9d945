// Package uri parses request targets in the four forms HTTP uses: origin
// form ("/path?query"), absolute form ("scheme://authority/path"), authority
// form ("host:port") and asterisk form ("*").
//
// Parsing failures are reported as InvalidURI. Assembling a URI from separate
// components with FromParts reports InvalidURIParts, whose cause is the
// InvalidURI describing which component was rejected.
package uri
