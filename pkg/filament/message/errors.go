package message

import (
	"errors"
	"fmt"
)

// Parse errors
var (
	// ErrInvalidMethod indicates a method is empty or contains a byte outside
	// the RFC 7230 token set.
	ErrInvalidMethod = errors.New("message: invalid HTTP method")

	// ErrInvalidStatusCode indicates a status code outside 100-999.
	ErrInvalidStatusCode = errors.New("message: invalid status code")

	// ErrInvalidVersion indicates an unknown HTTP version string.
	ErrInvalidVersion = errors.New("message: invalid HTTP version")
)

// Message errors
var (
	// ErrBuilderReused indicates Build was called twice on the same builder.
	ErrBuilderReused = errors.New("message: builder already used")

	// ErrNoTarget indicates the request URI has no scheme and authority, so
	// it cannot be turned into an absolute URL.
	ErrNoTarget = errors.New("message: request URI is not absolute")
)

// BuildError records the builder step that failed first.
//
// Example:
//
//	_, err := message.BuildRequest(message.Get("http://[::1"), []byte(nil))
//	var be *message.BuildError
//	if errors.As(err, &be) {
//	    // be.Op == "uri"
//	}
type BuildError struct {
	// Op is the builder step: "method", "uri", "status", "header" or "extension".
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("message: build %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}
