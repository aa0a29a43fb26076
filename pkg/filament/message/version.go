package message

// Version is the HTTP protocol version of a message.
// The zero Version is HTTP/1.1.
type Version uint8

const (
	HTTP11 Version = iota
	HTTP09
	HTTP10
	HTTP2
	HTTP3
)

// ParseVersion parses the protocol token of a start line, e.g. "HTTP/1.1".
// "HTTP/2" and "HTTP/3" are accepted as well as their ".0" forms.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "HTTP/1.1":
		return HTTP11, nil
	case "HTTP/1.0":
		return HTTP10, nil
	case "HTTP/0.9":
		return HTTP09, nil
	case "HTTP/2.0", "HTTP/2":
		return HTTP2, nil
	case "HTTP/3.0", "HTTP/3":
		return HTTP3, nil
	}
	return HTTP11, ErrInvalidVersion
}

// String returns the protocol token.
func (v Version) String() string {
	switch v {
	case HTTP09:
		return "HTTP/0.9"
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2.0"
	case HTTP3:
		return "HTTP/3.0"
	default:
		return "HTTP/?"
	}
}
