package header

import "errors"

// Construction errors returned by the name and value constructors.
var (
	// ErrInvalidName indicates a header name is empty, too long, or contains
	// a byte outside the RFC 7230 token set.
	ErrInvalidName = errors.New("header: invalid header name")

	// ErrInvalidValue indicates a header value contains a control byte (< 0x20).
	ErrInvalidValue = errors.New("header: invalid header value")

	// ErrValueNotVisible indicates a value holds opaque bytes and cannot be
	// represented as a visible ASCII string.
	ErrValueNotVisible = errors.New("header: value is not visible ASCII")
)

// Map errors
var (
	// ErrCapacityExceeded indicates an insertion would grow the map past
	// Config.MaxEntries names or Config.MaxValues values.
	// The map is left exactly as it was before the call.
	ErrCapacityExceeded = errors.New("header: capacity exceeded")

	// ErrInvalidConfig indicates a Config field is out of range.
	ErrInvalidConfig = errors.New("header: invalid map configuration")
)
