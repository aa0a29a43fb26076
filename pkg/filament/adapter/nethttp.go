package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/textproto"

	"github.com/yourusername/filament/pkg/filament/header"
	"github.com/yourusername/filament/pkg/filament/message"
	"github.com/yourusername/filament/pkg/filament/uri"
)

// FromHTTPHeader builds a Map from h. The order of values within a name is
// kept; the order of names follows map iteration and is not significant.
func (c *Converter) FromHTTPHeader(h http.Header) (*header.Map, error) {
	m := c.newMap()
	for k, vals := range h {
		for _, v := range vals {
			if err := c.appendField(m, []byte(k), []byte(v)); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// ToHTTPHeader copies m into a new http.Header with canonical keys.
func ToHTTPHeader(m *header.Map) http.Header {
	h := make(http.Header, m.Len())
	m.VisitAll(func(name header.Name, v *header.Value) bool {
		key := textproto.CanonicalMIMEHeaderKey(name.String())
		h[key] = append(h[key], string(v.Bytes()))
		return true
	})
	return h
}

// FromHTTPRequest converts the head of r. The body is passed through
// unread. The Host field, which net/http keeps out of r.Header, is added
// when r.Host is set.
func (c *Converter) FromHTTPRequest(r *http.Request) (*message.Request[io.ReadCloser], error) {
	method, err := message.ParseMethod(r.Method)
	if err != nil {
		return nil, fmt.Errorf("adapter: method: %w", err)
	}

	target := r.RequestURI
	if target == "" {
		target = r.URL.String()
	}
	u, err := uri.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("adapter: uri: %w", err)
	}

	h, err := c.FromHTTPHeader(r.Header)
	if err != nil {
		return nil, err
	}
	if r.Host != "" && !h.Contains(header.Host) {
		if err := c.appendField(h, []byte("Host"), []byte(r.Host)); err != nil {
			return nil, err
		}
	}

	parts := message.RequestParts{
		Method:  method,
		URI:     u,
		Version: versionFromProto(r.ProtoMajor, r.ProtoMinor),
		Headers: h,
	}
	return message.RequestFromParts(parts, r.Body), nil
}

// NewHTTPRequest builds an outgoing *http.Request for req. The request URI
// must be absolute.
func NewHTTPRequest(ctx context.Context, req *message.Request[[]byte]) (*http.Request, error) {
	target, err := req.Target()
	if err != nil {
		return nil, err
	}
	var body io.Reader
	if b := req.Body(); b != nil {
		body = bytes.NewReader(b)
	}
	r, err := http.NewRequestWithContext(ctx, req.Method().String(), target.String(), body)
	if err != nil {
		return nil, err
	}
	r.Header = ToHTTPHeader(req.Headers())
	if host, ok := req.Headers().Get(header.Host); ok {
		r.Host = string(host.Bytes())
		r.Header.Del("Host")
	}
	return r, nil
}

// WriteHTTPResponse writes resp to w: headers, status, then body.
func WriteHTTPResponse(w http.ResponseWriter, resp *message.Response[[]byte]) error {
	dst := w.Header()
	for k, vals := range ToHTTPHeader(resp.Headers()) {
		dst[k] = vals
	}
	w.WriteHeader(int(resp.Status()))
	if len(resp.Body()) == 0 {
		return nil
	}
	_, err := w.Write(resp.Body())
	return err
}

func versionFromProto(major, minor int) message.Version {
	switch {
	case major == 0 && minor == 9:
		return message.HTTP09
	case major == 1 && minor == 0:
		return message.HTTP10
	case major == 2:
		return message.HTTP2
	case major == 3:
		return message.HTTP3
	default:
		return message.HTTP11
	}
}
