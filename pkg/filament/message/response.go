package message

import "github.com/yourusername/filament/pkg/filament/header"

// ResponseParts is the head of a response: everything but the body.
type ResponseParts struct {
	Status     StatusCode
	Version    Version
	Headers    *header.Map
	Extensions Extensions
}

// NewResponseParts returns a 200 OK HTTP/1.1 head with an empty header map.
func NewResponseParts() ResponseParts {
	return ResponseParts{
		Status:  StatusOK,
		Headers: header.New(),
	}
}

// Response is an HTTP response with a body of type T.
type Response[T any] struct {
	head ResponseParts
	body T
}

// NewResponse returns a 200 OK HTTP/1.1 response carrying body.
func NewResponse[T any](body T) *Response[T] {
	return &Response[T]{head: NewResponseParts(), body: body}
}

// ResponseFromParts assembles a response from a head and a body.
func ResponseFromParts[T any](parts ResponseParts, body T) *Response[T] {
	if parts.Headers == nil {
		parts.Headers = header.New()
	}
	if parts.Status == 0 {
		parts.Status = StatusOK
	}
	return &Response[T]{head: parts, body: body}
}

// MapResponse converts the body of r with f, keeping its head. The result
// shares the header map of r, so r should not be used afterwards.
func MapResponse[T, U any](r *Response[T], f func(T) U) *Response[U] {
	return &Response[U]{head: r.head, body: f(r.body)}
}

// Status returns the status code.
func (r *Response[T]) Status() StatusCode { return r.head.Status }

// SetStatus replaces the status code.
func (r *Response[T]) SetStatus(s StatusCode) { r.head.Status = s }

// Version returns the protocol version.
func (r *Response[T]) Version() Version { return r.head.Version }

// SetVersion replaces the protocol version.
func (r *Response[T]) SetVersion(v Version) { r.head.Version = v }

// Headers returns the header map. Mutations through it affect the response.
func (r *Response[T]) Headers() *header.Map {
	if r.head.Headers == nil {
		r.head.Headers = header.New()
	}
	return r.head.Headers
}

// Extensions returns the extension bag.
func (r *Response[T]) Extensions() *Extensions { return &r.head.Extensions }

// Body returns the body.
func (r *Response[T]) Body() T { return r.body }

// SetBody replaces the body.
func (r *Response[T]) SetBody(body T) { r.body = body }

// IntoParts splits the response into its head and body.
func (r *Response[T]) IntoParts() (ResponseParts, T) {
	return r.head, r.body
}

// ResponseBuilder assembles a response step by step, with the same
// first-error and single-use rules as RequestBuilder.
type ResponseBuilder struct {
	parts *ResponseParts
	err   error
}

// NewResponseBuilder returns a builder for a 200 OK HTTP/1.1 response.
func NewResponseBuilder() *ResponseBuilder {
	p := NewResponseParts()
	return &ResponseBuilder{parts: &p}
}

func (b *ResponseBuilder) head() *ResponseParts {
	if b.err != nil {
		return nil
	}
	return b.parts
}

// Status sets the status code. Codes outside 100-999 fail the builder.
func (b *ResponseBuilder) Status(code uint16) *ResponseBuilder {
	if p := b.head(); p != nil {
		s, err := StatusFromUint16(code)
		if err != nil {
			b.err = &BuildError{Op: "status", Err: err}
			return b
		}
		p.Status = s
	}
	return b
}

// Version sets the protocol version.
func (b *ResponseBuilder) Version(v Version) *ResponseBuilder {
	if p := b.head(); p != nil {
		p.Version = v
	}
	return b
}

// Header appends a header field (append semantics).
func (b *ResponseBuilder) Header(name, value string) *ResponseBuilder {
	if p := b.head(); p != nil {
		b.err = appendHeader(p.Headers, name, value)
	}
	return b
}

// HeaderValue appends an already validated header field.
func (b *ResponseBuilder) HeaderValue(name header.Name, value header.Value) *ResponseBuilder {
	if p := b.head(); p != nil {
		if err := p.Headers.Append(name, value); err != nil {
			b.err = &BuildError{Op: "header", Err: err}
		}
	}
	return b
}

// Extension stores v in the extension bag under its dynamic type.
// A nil v is ignored.
func (b *ResponseBuilder) Extension(v any) *ResponseBuilder {
	if p := b.head(); p != nil {
		insertAny(&p.Extensions, v)
	}
	return b
}

// Err returns the error recorded by the first failing step, if any.
func (b *ResponseBuilder) Err() error {
	return b.err
}

// BuildResponse consumes the builder and attaches body.
// It returns the first error recorded by a builder step, or ErrBuilderReused
// when b was already built.
func BuildResponse[T any](b *ResponseBuilder, body T) (*Response[T], error) {
	if b.parts == nil {
		return nil, ErrBuilderReused
	}
	parts := b.parts
	b.parts = nil
	if b.err != nil {
		return nil, b.err
	}
	return &Response[T]{head: *parts, body: body}, nil
}
