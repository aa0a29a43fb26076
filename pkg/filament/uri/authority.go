package uri

import (
	"strconv"
	"strings"
)

// Authority is the host[:port] part of a URI, optionally preceded by
// userinfo. Comparison ignores ASCII case.
type Authority struct {
	s string
}

// ParseAuthority validates s as a complete authority.
// Returns ErrInvalidChar for a disallowed byte or for trailing path, query
// or fragment, and ErrInvalidAuthority for an empty string or unbalanced
// brackets.
func ParseAuthority(s string) (Authority, error) {
	if s == "" {
		return Authority{}, ErrInvalidAuthority
	}
	end, err := parseAuthority(s)
	if err != nil {
		return Authority{}, err
	}
	if end != len(s) {
		return Authority{}, ErrInvalidChar
	}
	return Authority{s: s}, nil
}

// parseAuthority scans the authority at the start of s and returns where it
// ends: at the first '/', '?' or '#', or at len(s).
func parseAuthority(s string) (int, error) {
	var startBracket, endBracket bool
	end := len(s)
scan:
	for i := 0; i < len(s); i++ {
		switch uriChars[s[i]] {
		case '/', '?', '#':
			end = i
			break scan
		case '[':
			startBracket = true
		case ']':
			endBracket = true
		case 0:
			return 0, ErrInvalidChar
		}
	}
	if startBracket != endBracket {
		return 0, ErrInvalidAuthority
	}
	return end, nil
}

// String returns the authority as parsed.
func (a Authority) String() string {
	return a.s
}

// IsZero reports whether a is the empty authority.
func (a Authority) IsZero() bool {
	return a.s == ""
}

// Host returns the host without userinfo, port or IPv6 brackets.
func (a Authority) Host() string {
	hp := a.s
	if i := strings.LastIndexByte(hp, '@'); i >= 0 {
		hp = hp[i+1:]
	}
	if hp == "" {
		return ""
	}
	if hp[0] == '[' {
		if i := strings.IndexByte(hp, ']'); i > 0 {
			return hp[1:i]
		}
		return hp[1:]
	}
	if i := strings.IndexByte(hp, ':'); i >= 0 {
		return hp[:i]
	}
	return hp
}

// Port returns the port following the last ':' if it is a valid uint16.
func (a Authority) Port() (uint16, bool) {
	i := strings.LastIndexByte(a.s, ':')
	if i < 0 {
		return 0, false
	}
	p, err := strconv.ParseUint(a.s[i+1:], 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(p), true
}

// Equal reports whether a and other are equal ignoring ASCII case.
func (a Authority) Equal(other Authority) bool {
	return equalFold(a.s, other.s)
}

// EqualString reports whether a equals s ignoring ASCII case.
func (a Authority) EqualString(s string) bool {
	return equalFold(a.s, s)
}

// Compare orders a and other by their lowercase forms.
func (a Authority) Compare(other Authority) int {
	return a.CompareString(other.s)
}

// CompareString orders a and s by their lowercase forms.
func (a Authority) CompareString(s string) int {
	n := min(len(a.s), len(s))
	for i := 0; i < n; i++ {
		x, y := lower(a.s[i]), lower(s[i])
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.s) < len(s):
		return -1
	case len(a.s) > len(s):
		return 1
	}
	return 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

// uriChars maps every byte allowed in a URI to itself and every other byte
// to 0: unreserved, reserved and '%' from RFC 3986.
var uriChars = func() (t [256]byte) {
	const allowed = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"-._~" + // unreserved
		":/?#[]@" + // gen-delims
		"!$&'()*+,;=" + // sub-delims
		"%"
	for i := 0; i < len(allowed); i++ {
		t[allowed[i]] = allowed[i]
	}
	return t
}()
