package message

// Method IDs for O(1) switching. Extension methods share MethodUnknown and
// are told apart by their text.
const (
	MethodUnknown uint8 = 0
	MethodGET     uint8 = 1
	MethodPOST    uint8 = 2
	MethodPUT     uint8 = 3
	MethodDELETE  uint8 = 4
	MethodPATCH   uint8 = 5
	MethodHEAD    uint8 = 6
	MethodOPTIONS uint8 = 7
	MethodCONNECT uint8 = 8
	MethodTRACE   uint8 = 9
)

// Method is an HTTP request method: one of the nine standard methods or an
// extension token. Methods are case-sensitive. The zero Method is GET.
//
// Method values are comparable with ==, except that the zero value and GET
// compare unequal; use Equal when either side may be zero.
type Method struct {
	id  uint8
	ext string
}

// Standard methods.
var (
	GET     = Method{id: MethodGET}
	POST    = Method{id: MethodPOST}
	PUT     = Method{id: MethodPUT}
	DELETE  = Method{id: MethodDELETE}
	PATCH   = Method{id: MethodPATCH}
	HEAD    = Method{id: MethodHEAD}
	OPTIONS = Method{id: MethodOPTIONS}
	CONNECT = Method{id: MethodCONNECT}
	TRACE   = Method{id: MethodTRACE}
)

// ParseMethod returns the Method for s. Standard methods are recognized
// without allocation; any other valid token becomes an extension method.
// Returns ErrInvalidMethod if s is empty or not a token.
func ParseMethod(s string) (Method, error) {
	if id := methodID(s); id != MethodUnknown {
		return Method{id: id}, nil
	}
	if !isToken(s) {
		return Method{}, ErrInvalidMethod
	}
	return Method{ext: s}, nil
}

// ParseMethodBytes is ParseMethod for a byte slice. The slice is not retained.
//
// Allocation behavior: 0 allocs/op for standard methods
func ParseMethodBytes(b []byte) (Method, error) {
	if id := methodID(string(b)); id != MethodUnknown {
		return Method{id: id}, nil
	}
	return ParseMethod(string(b))
}

// methodID converts a method to its numeric ID, or MethodUnknown.
func methodID(s string) uint8 {
	switch len(s) {
	case 3:
		switch s {
		case "GET":
			return MethodGET
		case "PUT":
			return MethodPUT
		}
	case 4:
		switch s {
		case "POST":
			return MethodPOST
		case "HEAD":
			return MethodHEAD
		}
	case 5:
		switch s {
		case "PATCH":
			return MethodPATCH
		case "TRACE":
			return MethodTRACE
		}
	case 6:
		if s == "DELETE" {
			return MethodDELETE
		}
	case 7:
		switch s {
		case "OPTIONS":
			return MethodOPTIONS
		case "CONNECT":
			return MethodCONNECT
		}
	}
	return MethodUnknown
}

func (m Method) norm() Method {
	if m == (Method{}) {
		return GET
	}
	return m
}

// ID returns the numeric ID, MethodUnknown for extension methods.
func (m Method) ID() uint8 {
	return m.norm().id
}

// String returns the method text.
func (m Method) String() string {
	m = m.norm()
	switch m.id {
	case MethodGET:
		return "GET"
	case MethodPOST:
		return "POST"
	case MethodPUT:
		return "PUT"
	case MethodDELETE:
		return "DELETE"
	case MethodPATCH:
		return "PATCH"
	case MethodHEAD:
		return "HEAD"
	case MethodOPTIONS:
		return "OPTIONS"
	case MethodCONNECT:
		return "CONNECT"
	case MethodTRACE:
		return "TRACE"
	default:
		return m.ext
	}
}

// Equal reports whether m and other are the same method.
func (m Method) Equal(other Method) bool {
	return m.norm() == other.norm()
}

// IsStandard reports whether m is one of the nine methods of RFC 7231/5789.
func (m Method) IsStandard() bool {
	return m.norm().id != MethodUnknown
}

// IsSafe reports whether m is safe (RFC 7231 4.2.1): GET, HEAD, OPTIONS, TRACE.
func (m Method) IsSafe() bool {
	switch m.ID() {
	case MethodGET, MethodHEAD, MethodOPTIONS, MethodTRACE:
		return true
	}
	return false
}

// IsIdempotent reports whether m is idempotent (RFC 7231 4.2.2).
func (m Method) IsIdempotent() bool {
	switch m.ID() {
	case MethodPUT, MethodDELETE:
		return true
	}
	return m.IsSafe()
}

// tokenChars marks the RFC 7230 tchar bytes.
var tokenChars = func() (t [256]bool) {
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
		t[c-'a'+'A'] = true
	}
	for _, c := range "!#$%&'*+-.^_`|~" {
		t[c] = true
	}
	return t
}()

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChars[s[i]] {
			return false
		}
	}
	return true
}
