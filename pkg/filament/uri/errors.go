package uri

import "errors"

// Parse errors
var (
	// ErrEmpty indicates an empty input.
	ErrEmpty = errors.New("uri: empty string")

	// ErrTooLong indicates an input longer than MaxLen bytes.
	ErrTooLong = errors.New("uri: too long")

	// ErrInvalidChar indicates a byte that may not appear in a URI.
	ErrInvalidChar = errors.New("uri: invalid character")

	// ErrInvalidScheme indicates a malformed or oversized scheme.
	ErrInvalidScheme = errors.New("uri: invalid scheme")

	// ErrInvalidAuthority indicates an empty authority or unbalanced IPv6 brackets.
	ErrInvalidAuthority = errors.New("uri: invalid authority")

	// ErrInvalidFormat indicates an input matching none of the request-target
	// forms.
	ErrInvalidFormat = errors.New("uri: invalid format")
)
