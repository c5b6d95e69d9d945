package uri

import (
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/kbukum/httpcore/convert"
)

const (
	// MaxLen is the default longest URI Parse accepts.
	MaxLen = 1<<16 - 2
	// MaxSchemeLen is the longest scheme accepted.
	MaxSchemeLen = 64
)

// URI is a parsed request target. The zero value is not a valid URI.
type URI struct {
	scheme    string
	authority string
	path      string
	query     string
}

// Parse parses s, rejecting input longer than MaxLen.
func Parse(s string) (URI, error) {
	return ParseWithLimit(s, MaxLen)
}

// ParseWithLimit parses s, rejecting input longer than limit bytes.
func ParseWithLimit(s string, limit int) (URI, error) {
	switch {
	case s == "":
		return URI{}, invalid(kindEmpty)
	case len(s) > limit:
		return URI{}, invalid(kindTooLong)
	case !validChars(s):
		return URI{}, invalid(kindInvalidURIChar)
	case s == "*":
		return URI{path: "*"}, nil
	case s[0] == '/':
		path, query := splitPathAndQuery(s)
		return URI{path: path, query: query}, nil
	}

	scheme, rest, hasScheme := strings.Cut(s, "://")
	if !hasScheme {
		// authority form
		if k := checkAuthority(s); k != 0 {
			return URI{}, invalid(k)
		}
		return URI{authority: s}, nil
	}
	if k := checkScheme(scheme); k != 0 {
		return URI{}, invalid(k)
	}

	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	authority := rest[:end]
	if authority == "" {
		return URI{}, invalid(kindInvalidAuthority)
	}
	if k := checkAuthority(authority); k != 0 {
		return URI{}, invalid(k)
	}
	path, query := splitPathAndQuery(rest[end:])
	return URI{scheme: scheme, authority: authority, path: path, query: query}, nil
}

type parseResult struct {
	uri URI
	err error
}

// FromMaybeShared parses string or byte input. A string is parsed in place
// and the URI refers to substrings of it; any other input is copied first.
func FromMaybeShared[T ~string | ~[]byte](src T) (URI, error) {
	if r, ok := convert.DowncastInto[string](src, parseShared); ok {
		return r.uri, r.err
	}
	return Parse(string(src))
}

func parseShared(s string) parseResult {
	u, err := Parse(s)
	return parseResult{uri: u, err: err}
}

// Scheme returns the scheme, or "" for origin, authority and asterisk forms.
func (u URI) Scheme() string { return u.scheme }

// Authority returns the authority component, or "".
func (u URI) Authority() string { return u.authority }

// Host returns the authority without userinfo and port.
func (u URI) Host() string {
	host, _ := splitHostPort(u.authority)
	return host
}

// Port returns the explicit port, if any.
func (u URI) Port() (uint16, bool) {
	_, port := splitHostPort(u.authority)
	if port == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// Path returns the path. An absolute URI with an empty path reports "/".
func (u URI) Path() string {
	if u.path == "" && u.scheme != "" {
		return "/"
	}
	return u.path
}

// Query returns the query without the leading '?', or "".
func (u URI) Query() string { return u.query }

// PathAndQuery returns the path followed by '?' and the query when present.
func (u URI) PathAndQuery() string {
	if u.query == "" {
		return u.Path()
	}
	return u.Path() + "?" + u.query
}

// String reassembles the URI.
func (u URI) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteString("://")
	}
	b.WriteString(u.authority)
	if u.scheme != "" || u.path != "" {
		b.WriteString(u.PathAndQuery())
	}
	return b.String()
}

// Parts are the separately supplied components of a URI.
type Parts struct {
	Scheme       string
	Authority    string
	PathAndQuery string
}

// Parts returns the components of u.
func (u URI) Parts() Parts {
	p := Parts{Scheme: u.scheme, Authority: u.authority}
	if u.scheme != "" || u.path != "" {
		p.PathAndQuery = u.PathAndQuery()
	}
	return p
}

// FromParts assembles a URI from components. A scheme requires both an
// authority and a path; an authority with a path requires a scheme.
func FromParts(p Parts) (URI, error) {
	fail := func(k errorKind) (URI, error) {
		return URI{}, InvalidURIParts{cause: invalid(k)}
	}

	if p.Scheme != "" {
		if p.Authority == "" {
			return fail(kindAuthorityMissing)
		}
		if p.PathAndQuery == "" {
			return fail(kindPathAndQueryMissing)
		}
	} else if p.Authority != "" && p.PathAndQuery != "" {
		return fail(kindSchemeMissing)
	}
	if p.Scheme == "" && p.Authority == "" && p.PathAndQuery == "" {
		return fail(kindEmpty)
	}

	var u URI
	if p.Scheme != "" {
		if k := checkScheme(p.Scheme); k != 0 {
			return fail(k)
		}
		u.scheme = p.Scheme
	}
	if p.Authority != "" {
		if !validChars(p.Authority) {
			return fail(kindInvalidURIChar)
		}
		if k := checkAuthority(p.Authority); k != 0 {
			return fail(k)
		}
		u.authority = p.Authority
	}
	if pq := p.PathAndQuery; pq != "" {
		if !validChars(pq) {
			return fail(kindInvalidURIChar)
		}
		if pq != "*" && pq[0] != '/' && pq[0] != '?' {
			return fail(kindInvalidURIChar)
		}
		u.path, u.query = splitPathAndQuery(pq)
	}
	return u, nil
}

// checkScheme returns the reason s is rejected, or 0.
func checkScheme(s string) errorKind {
	if len(s) > MaxSchemeLen {
		return kindSchemeTooLong
	}
	if s == "" || !isAlpha(s[0]) {
		return kindInvalidScheme
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return kindInvalidScheme
		}
	}
	return 0
}

// checkAuthority returns the reason a is rejected, or 0.
func checkAuthority(a string) errorKind {
	if strings.ContainsAny(a, "/?#") {
		return kindInvalidAuthority
	}
	host, port := splitHostPort(a)
	if host == "" || !httpguts.ValidHostHeader(host) {
		return kindInvalidAuthority
	}
	if strings.HasPrefix(host, "[") != strings.HasSuffix(host, "]") {
		return kindInvalidAuthority
	}
	if port != "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return kindInvalidPort
		}
	}
	return 0
}

// splitHostPort drops userinfo and splits off a trailing ":port". IPv6
// literals keep their brackets.
func splitHostPort(authority string) (host, port string) {
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		authority = authority[i+1:]
	}
	i := strings.LastIndexByte(authority, ':')
	if i < 0 || strings.LastIndexByte(authority, ']') > i {
		return authority, ""
	}
	return authority[:i], authority[i+1:]
}

func splitPathAndQuery(s string) (path, query string) {
	s, _, _ = strings.Cut(s, "#")
	path, query, _ = strings.Cut(s, "?")
	return path, query
}

func validChars(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f {
			return false
		}
		switch c {
		case '"', '<', '>', '\\', '^', '`', '{', '|', '}':
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
