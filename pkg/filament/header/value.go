package header

import (
	"bytes"
	"strconv"
)

// Value is an HTTP header field value.
//
// Values are usually visible ASCII, but RFC 7230 also allows opaque octets
// (0x80-0xFF), so a Value is a byte string rather than a Go string. Control
// bytes below 0x20 are rejected by every constructor, which also rules out
// CR/LF header injection.
//
// A Value can be marked sensitive (credentials, cookies). Sensitivity is a
// hint for caches and HPACK/QPACK encoders and is not part of equality.
type Value struct {
	b         []byte
	sensitive bool
}

// ParseValue validates s and returns it as a Value.
// Returns ErrInvalidValue if s contains a byte below 0x20.
func ParseValue(s string) (Value, error) {
	for i := 0; i < len(s); i++ {
		if !validValueByte(s[i]) {
			return Value{}, ErrInvalidValue
		}
	}
	return Value{b: []byte(s)}, nil
}

// ValueFromBytes validates b and returns a Value holding a copy of it.
// Returns ErrInvalidValue if b contains a byte below 0x20.
func ValueFromBytes(b []byte) (Value, error) {
	for _, c := range b {
		if !validValueByte(c) {
			return Value{}, ErrInvalidValue
		}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{b: cp}, nil
}

// StaticValue converts a literal to a Value.
// It panics unless every byte is visible ASCII (0x20-0x7E).
func StaticValue(s string) Value {
	for i := 0; i < len(s); i++ {
		if !visibleASCII(s[i]) {
			panic("header: invalid static header value " + strconv.Quote(s))
		}
	}
	return Value{b: []byte(s)}
}

// ToString returns the value as a string if it only contains visible ASCII.
// Returns ErrValueNotVisible otherwise.
func (v Value) ToString() (string, error) {
	for _, c := range v.b {
		if !visibleASCII(c) {
			return "", ErrValueNotVisible
		}
	}
	return string(v.b), nil
}

// Bytes returns the raw bytes. The slice is shared with the Value and must
// not be modified.
func (v Value) Bytes() []byte {
	return v.b
}

// Len returns the length of the value in bytes.
func (v Value) Len() int {
	return len(v.b)
}

// IsEmpty reports whether the value has zero length.
func (v Value) IsEmpty() bool {
	return len(v.b) == 0
}

// SetSensitive marks the value as holding sensitive data.
func (v *Value) SetSensitive(sensitive bool) {
	v.sensitive = sensitive
}

// Sensitive reports whether the value was marked sensitive.
func (v Value) Sensitive() bool {
	return v.sensitive
}

// Equal compares the bytes of two values. Sensitivity is ignored.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v.b, other.b)
}

// EqualString compares the bytes of v with s.
func (v Value) EqualString(s string) bool {
	return string(v.b) == s
}

// Compare orders values bytewise. Sensitivity is ignored.
func (v Value) Compare(other Value) int {
	return bytes.Compare(v.b, other.b)
}

// String returns the value with every non-visible byte escaped as \xNN.
// Use ToString or Bytes for the raw content.
func (v Value) String() string {
	for _, c := range v.b {
		if !visibleASCII(c) {
			return escapeBytes(v.b)
		}
	}
	return string(v.b)
}

// GoString implements fmt.GoStringer.
func (v Value) GoString() string {
	return "header.Value{" + strconv.Quote(v.String()) + ", sensitive: " + strconv.FormatBool(v.sensitive) + "}"
}

func escapeBytes(b []byte) string {
	const hex = "0123456789abcdef"
	out := make([]byte, 0, len(b)+8)
	for _, c := range b {
		if visibleASCII(c) {
			out = append(out, c)
			continue
		}
		out = append(out, '\\', 'x', hex[c>>4], hex[c&0x0f])
	}
	return string(out)
}

func validValueByte(b byte) bool {
	return b >= 0x20
}

func visibleASCII(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
