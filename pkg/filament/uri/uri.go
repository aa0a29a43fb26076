// Package uri implements the request-target of an HTTP message: the
// asterisk, origin, absolute and authority forms of RFC 7230 section 5.3.
package uri

import "strings"

const (
	// MaxLen is the longest accepted URI.
	MaxLen = 1<<16 - 2

	// MaxSchemeLen is the longest accepted scheme.
	MaxSchemeLen = 64
)

// URI is a parsed request-target. The zero URI is "/".
//
// Fragments are dropped when parsing: they are never sent on the wire.
// A URI keeps slices of the string it was parsed from.
type URI struct {
	scheme    string // lowercase
	authority Authority
	path      string
	query     string
	hasQuery  bool
}

// Parse parses s in any of the four request-target forms:
//
//	*                                  asterisk-form
//	/path?query                        origin-form
//	scheme://authority/path?query      absolute-form
//	host:port                          authority-form
func Parse(s string) (URI, error) {
	switch {
	case s == "":
		return URI{}, ErrEmpty
	case len(s) > MaxLen:
		return URI{}, ErrTooLong
	case s == "*":
		return URI{path: "*"}, nil
	case s[0] == '/':
		var u URI
		if err := u.parsePathAndQuery(s); err != nil {
			return URI{}, err
		}
		return u, nil
	}

	if i := strings.Index(s, "://"); i >= 0 {
		return parseAbsolute(s, i)
	}

	end, err := parseAuthority(s)
	if err != nil {
		return URI{}, err
	}
	if end != len(s) {
		return URI{}, ErrInvalidFormat
	}
	return URI{authority: Authority{s: s}}, nil
}

// MustParse is Parse for literals. It panics if s is not a valid URI.
func MustParse(s string) URI {
	u, err := Parse(s)
	if err != nil {
		panic("uri: " + err.Error() + ": " + s)
	}
	return u
}

func parseAbsolute(s string, schemeEnd int) (URI, error) {
	scheme := s[:schemeEnd]
	if !validScheme(scheme) {
		return URI{}, ErrInvalidScheme
	}

	rest := s[schemeEnd+3:]
	end, err := parseAuthority(rest)
	if err != nil {
		return URI{}, err
	}
	if end == 0 {
		return URI{}, ErrInvalidAuthority
	}

	u := URI{
		scheme:    strings.ToLower(scheme),
		authority: Authority{s: rest[:end]},
	}
	if err := u.parsePathAndQuery(rest[end:]); err != nil {
		return URI{}, err
	}
	return u, nil
}

// validScheme reports whether s is ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validScheme(s string) bool {
	if s == "" || len(s) > MaxSchemeLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// parsePathAndQuery splits s at the first '?' and drops everything from the
// first '#'. s is either empty or starts with '/', '?' or '#'.
func (u *URI) parsePathAndQuery(s string) error {
	queryStart := -1
	end := len(s)
	for i := 0; i < len(s); i++ {
		c := uriChars[s[i]]
		if c == 0 {
			return ErrInvalidChar
		}
		if c == '#' {
			end = i
			break
		}
		if c == '?' && queryStart < 0 {
			queryStart = i
		}
	}
	if queryStart >= 0 {
		u.path = s[:queryStart]
		u.query = s[queryStart+1 : end]
		u.hasQuery = true
	} else {
		u.path = s[:end]
	}
	return nil
}

// Scheme returns the lowercase scheme, or "" if the URI has none.
func (u URI) Scheme() string {
	return u.scheme
}

// Authority returns the authority, if any.
func (u URI) Authority() (Authority, bool) {
	return u.authority, !u.authority.IsZero()
}

// Host returns the host of the authority, or "".
func (u URI) Host() string {
	return u.authority.Host()
}

// Port returns the port of the authority, if any.
func (u URI) Port() (uint16, bool) {
	return u.authority.Port()
}

// Path returns the path. An absolute or origin URI with an empty path
// reports "/"; an authority-form URI reports "".
func (u URI) Path() string {
	if u.path != "" {
		return u.path
	}
	if u.scheme == "" && !u.authority.IsZero() {
		return ""
	}
	return "/"
}

// Query returns the query without its leading '?'.
func (u URI) Query() (string, bool) {
	return u.query, u.hasQuery
}

// PathAndQuery returns the origin-form of the URI.
func (u URI) PathAndQuery() string {
	if !u.hasQuery {
		return u.Path()
	}
	return u.Path() + "?" + u.query
}

// IsAbsolute reports whether the URI has a scheme and an authority.
func (u URI) IsAbsolute() bool {
	return u.scheme != "" && !u.authority.IsZero()
}

// String returns the URI in its normalized form.
func (u URI) String() string {
	if u.scheme == "" {
		if !u.authority.IsZero() {
			return u.authority.s
		}
		return u.PathAndQuery()
	}
	return u.scheme + "://" + u.authority.s + u.PathAndQuery()
}

// Equal reports whether u and other denote the same target. The scheme and
// authority compare case-insensitively; path and query compare exactly.
func (u URI) Equal(other URI) bool {
	return u.scheme == other.scheme &&
		u.authority.Equal(other.authority) &&
		u.Path() == other.Path() &&
		u.hasQuery == other.hasQuery &&
		u.query == other.query
}
