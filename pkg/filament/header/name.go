package header

// MaxNameLen is the longest header name accepted by the constructors.
const MaxNameLen = 1<<16 - 1

// Name is a validated, case-insensitive HTTP header field name.
//
// A Name is stored in canonical ASCII lowercase, so two names compare equal
// with == exactly when they are equal ignoring ASCII case, and hashing the
// canonical bytes agrees with that equality. Well-known names are interned:
// parsing "Content-Type" in any case yields the ContentType variable.
//
// The zero Name is invalid and never stored in a Map.
type Name struct {
	name string
	std  bool
}

// ParseName validates s and returns its canonical Name.
// Returns ErrInvalidName if s is empty, longer than MaxNameLen, or contains a
// byte outside the RFC 7230 token set.
func ParseName(s string) (Name, error) {
	if len(s) == 0 || len(s) > MaxNameLen {
		return Name{}, ErrInvalidName
	}

	// Fast path: already canonical and valid, no copy needed
	canonical := true
	for i := 0; i < len(s); i++ {
		c := nameChars[s[i]]
		if c == 0 {
			return Name{}, ErrInvalidName
		}
		if c != s[i] {
			canonical = false
		}
	}
	if canonical {
		if n, ok := standardNames[s]; ok {
			return n, nil
		}
		return Name{name: s}, nil
	}
	return nameFromValidBytes([]byte(s)), nil
}

// NameFromBytes validates b and returns its canonical Name.
// The input is never retained.
func NameFromBytes(b []byte) (Name, error) {
	if len(b) == 0 || len(b) > MaxNameLen {
		return Name{}, ErrInvalidName
	}
	for _, ch := range b {
		if nameChars[ch] == 0 {
			return Name{}, ErrInvalidName
		}
	}

	// Lower into a stack buffer so well-known names do not allocate
	var buf [64]byte
	if len(b) <= len(buf) {
		for i, ch := range b {
			buf[i] = nameChars[ch]
		}
		if n, ok := standardNames[string(buf[:len(b)])]; ok {
			return n, nil
		}
		return Name{name: string(buf[:len(b)])}, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return nameFromValidBytes(cp), nil
}

// MustName is like ParseName but panics on invalid input.
// Intended for package-level literals.
func MustName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic("header: invalid header name " + quoteName(s))
	}
	return n
}

// nameFromValidBytes lowers b in place and interns the result.
// b must already be validated and must not be shared.
func nameFromValidBytes(b []byte) Name {
	for i, ch := range b {
		b[i] = nameChars[ch]
	}
	if n, ok := standardNames[string(b)]; ok {
		return n
	}
	return Name{name: string(b)}
}

// String returns the canonical lowercase form.
func (n Name) String() string {
	return n.name
}

// Len returns the length of the name in bytes.
func (n Name) Len() int {
	return len(n.name)
}

// IsStandard reports whether n is one of the interned well-known names.
func (n Name) IsStandard() bool {
	return n.std
}

// IsZero reports whether n is the invalid zero Name.
func (n Name) IsZero() bool {
	return n.name == ""
}

// EqualString compares n with s ignoring ASCII case.
//
// Allocation behavior: 0 allocs/op
func (n Name) EqualString(s string) bool {
	if len(n.name) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if n.name[i] != toLower(s[i]) {
			return false
		}
	}
	return true
}

// toLower converts an ASCII uppercase letter to lowercase.
// Non-letter bytes are returned unchanged.
func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

func quoteName(s string) string {
	if len(s) > 32 {
		s = s[:32] + "..."
	}
	return "\"" + s + "\""
}

// nameChars maps every RFC 7230 tchar to its lowercase form and every other
// byte to zero.
var nameChars = func() (t [256]byte) {
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c)
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = byte(c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = byte(c) + 32
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		t[c] = c
	}
	return t
}()
