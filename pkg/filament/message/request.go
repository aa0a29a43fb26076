package message

import (
	"net/url"

	"github.com/yourusername/filament/pkg/filament/header"
	"github.com/yourusername/filament/pkg/filament/uri"
)

// RequestParts is the head of a request: everything but the body.
type RequestParts struct {
	Method     Method
	URI        uri.URI
	Version    Version
	Headers    *header.Map
	Extensions Extensions
}

// NewRequestParts returns a GET / HTTP/1.1 head with an empty header map.
func NewRequestParts() RequestParts {
	return RequestParts{
		Method:  GET,
		Headers: header.New(),
	}
}

// Request is an HTTP request with a body of type T. T can be anything from
// []byte to a decoded value or a stream.
type Request[T any] struct {
	head RequestParts
	body T
}

// NewRequest returns a GET / HTTP/1.1 request carrying body.
func NewRequest[T any](body T) *Request[T] {
	return &Request[T]{head: NewRequestParts(), body: body}
}

// RequestFromParts assembles a request from a head and a body.
func RequestFromParts[T any](parts RequestParts, body T) *Request[T] {
	if parts.Headers == nil {
		parts.Headers = header.New()
	}
	return &Request[T]{head: parts, body: body}
}

// MapRequest converts the body of r with f, keeping its head. The result
// shares the header map of r, so r should not be used afterwards.
func MapRequest[T, U any](r *Request[T], f func(T) U) *Request[U] {
	return &Request[U]{head: r.head, body: f(r.body)}
}

// Method returns the request method.
func (r *Request[T]) Method() Method { return r.head.Method }

// SetMethod replaces the request method.
func (r *Request[T]) SetMethod(m Method) { r.head.Method = m }

// URI returns the request target.
func (r *Request[T]) URI() uri.URI { return r.head.URI }

// SetURI replaces the request target.
func (r *Request[T]) SetURI(u uri.URI) { r.head.URI = u }

// Version returns the protocol version.
func (r *Request[T]) Version() Version { return r.head.Version }

// SetVersion replaces the protocol version.
func (r *Request[T]) SetVersion(v Version) { r.head.Version = v }

// Headers returns the header map. Mutations through it affect the request.
func (r *Request[T]) Headers() *header.Map {
	if r.head.Headers == nil {
		r.head.Headers = header.New()
	}
	return r.head.Headers
}

// Extensions returns the extension bag.
func (r *Request[T]) Extensions() *Extensions { return &r.head.Extensions }

// Body returns the body.
func (r *Request[T]) Body() T { return r.body }

// SetBody replaces the body.
func (r *Request[T]) SetBody(body T) { r.body = body }

// IntoParts splits the request into its head and body.
func (r *Request[T]) IntoParts() (RequestParts, T) {
	return r.head, r.body
}

// Target returns the request URI as an absolute URL.
// Returns ErrNoTarget when the URI lacks a scheme or an authority.
func (r *Request[T]) Target() (*url.URL, error) {
	if !r.head.URI.IsAbsolute() {
		return nil, ErrNoTarget
	}
	return url.Parse(r.head.URI.String())
}

// RequestBuilder assembles a request step by step. The first failing step
// is recorded and every later step is skipped; BuildRequest reports it.
// A builder can be built only once.
type RequestBuilder struct {
	parts *RequestParts
	err   error
}

// NewRequestBuilder returns a builder for a GET / HTTP/1.1 request.
func NewRequestBuilder() *RequestBuilder {
	p := NewRequestParts()
	return &RequestBuilder{parts: &p}
}

// head returns the parts to modify, or nil if a step already failed or the
// builder was used.
func (b *RequestBuilder) head() *RequestParts {
	if b.err != nil {
		return nil
	}
	return b.parts
}

// Method sets the method from its text.
func (b *RequestBuilder) Method(method string) *RequestBuilder {
	if p := b.head(); p != nil {
		m, err := ParseMethod(method)
		if err != nil {
			b.err = &BuildError{Op: "method", Err: err}
			return b
		}
		p.Method = m
	}
	return b
}

// MethodValue sets an already parsed method.
func (b *RequestBuilder) MethodValue(m Method) *RequestBuilder {
	if p := b.head(); p != nil {
		p.Method = m
	}
	return b
}

// URI sets the request target from its text.
func (b *RequestBuilder) URI(target string) *RequestBuilder {
	if p := b.head(); p != nil {
		u, err := uri.Parse(target)
		if err != nil {
			b.err = &BuildError{Op: "uri", Err: err}
			return b
		}
		p.URI = u
	}
	return b
}

// Version sets the protocol version.
func (b *RequestBuilder) Version(v Version) *RequestBuilder {
	if p := b.head(); p != nil {
		p.Version = v
	}
	return b
}

// Header appends a header field (append semantics: an existing value of
// the same name is kept).
func (b *RequestBuilder) Header(name, value string) *RequestBuilder {
	if p := b.head(); p != nil {
		b.err = appendHeader(p.Headers, name, value)
	}
	return b
}

// HeaderValue appends an already validated header field.
func (b *RequestBuilder) HeaderValue(name header.Name, value header.Value) *RequestBuilder {
	if p := b.head(); p != nil {
		if err := p.Headers.Append(name, value); err != nil {
			b.err = &BuildError{Op: "header", Err: err}
		}
	}
	return b
}

// Extension stores v in the extension bag under its dynamic type.
// A nil v is ignored.
func (b *RequestBuilder) Extension(v any) *RequestBuilder {
	if p := b.head(); p != nil {
		insertAny(&p.Extensions, v)
	}
	return b
}

// Err returns the error recorded by the first failing step, if any.
func (b *RequestBuilder) Err() error {
	return b.err
}

// BuildRequest consumes the builder and attaches body.
// It returns the first error recorded by a builder step, or ErrBuilderReused
// when b was already built.
func BuildRequest[T any](b *RequestBuilder, body T) (*Request[T], error) {
	if b.parts == nil {
		return nil, ErrBuilderReused
	}
	parts := b.parts
	b.parts = nil
	if b.err != nil {
		return nil, b.err
	}
	return &Request[T]{head: *parts, body: body}, nil
}

func newRequestBuilder(m Method, target string) *RequestBuilder {
	return NewRequestBuilder().MethodValue(m).URI(target)
}

// Get returns a builder for a GET request to target.
func Get(target string) *RequestBuilder { return newRequestBuilder(GET, target) }

// Put returns a builder for a PUT request to target.
func Put(target string) *RequestBuilder { return newRequestBuilder(PUT, target) }

// Post returns a builder for a POST request to target.
func Post(target string) *RequestBuilder { return newRequestBuilder(POST, target) }

// Delete returns a builder for a DELETE request to target.
func Delete(target string) *RequestBuilder { return newRequestBuilder(DELETE, target) }

// Options returns a builder for an OPTIONS request to target.
func Options(target string) *RequestBuilder { return newRequestBuilder(OPTIONS, target) }

// Head returns a builder for a HEAD request to target.
func Head(target string) *RequestBuilder { return newRequestBuilder(HEAD, target) }

// Connect returns a builder for a CONNECT request to target.
func Connect(target string) *RequestBuilder { return newRequestBuilder(CONNECT, target) }

// Patch returns a builder for a PATCH request to target.
func Patch(target string) *RequestBuilder { return newRequestBuilder(PATCH, target) }

// Trace returns a builder for a TRACE request to target.
func Trace(target string) *RequestBuilder { return newRequestBuilder(TRACE, target) }

// appendHeader validates and appends one field, wrapping any failure.
func appendHeader(m *header.Map, name, value string) error {
	n, err := header.ParseName(name)
	if err != nil {
		return &BuildError{Op: "header", Err: err}
	}
	v, err := header.ParseValue(value)
	if err != nil {
		return &BuildError{Op: "header", Err: err}
	}
	if err := m.Append(n, v); err != nil {
		return &BuildError{Op: "header", Err: err}
	}
	return nil
}
