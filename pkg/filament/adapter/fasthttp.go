package adapter

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/yourusername/filament/pkg/filament/header"
	"github.com/yourusername/filament/pkg/filament/message"
	"github.com/yourusername/filament/pkg/filament/uri"
)

// FromFastRequestHeader builds a Map from a fasthttp request header,
// including the fields fasthttp stores out of band (Host, Content-Type,
// User-Agent, cookies). Field order is kept.
func (c *Converter) FromFastRequestHeader(h *fasthttp.RequestHeader) (*header.Map, error) {
	m := c.newMap()
	var err error
	h.VisitAll(func(k, v []byte) {
		if err != nil {
			return
		}
		err = c.appendField(m, k, v)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FromFastRequest converts src. The body is copied, as fasthttp reuses
// request buffers once the handler returns.
func (c *Converter) FromFastRequest(src *fasthttp.Request) (*message.Request[[]byte], error) {
	method, err := message.ParseMethodBytes(src.Header.Method())
	if err != nil {
		return nil, fmt.Errorf("adapter: method: %w", err)
	}
	u, err := uri.Parse(string(src.Header.RequestURI()))
	if err != nil {
		return nil, fmt.Errorf("adapter: uri: %w", err)
	}
	version, err := message.ParseVersion(string(src.Header.Protocol()))
	if err != nil {
		return nil, fmt.Errorf("adapter: version %q: %w", src.Header.Protocol(), err)
	}
	h, err := c.FromFastRequestHeader(&src.Header)
	if err != nil {
		return nil, err
	}

	var body []byte
	if b := src.Body(); len(b) > 0 {
		body = append([]byte(nil), b...)
	}

	parts := message.RequestParts{
		Method:  method,
		URI:     u,
		Version: version,
		Headers: h,
	}
	return message.RequestFromParts(parts, body), nil
}

// ToFastRequest writes req into dst, which is reset first.
func ToFastRequest(req *message.Request[[]byte], dst *fasthttp.Request) {
	dst.Reset()
	dst.Header.SetMethod(req.Method().String())
	dst.SetRequestURI(req.URI().String())
	dst.Header.SetProtocol(req.Version().String())
	req.Headers().VisitAll(func(name header.Name, v *header.Value) bool {
		dst.Header.AddBytesKV([]byte(name.String()), v.Bytes())
		return true
	})
	if b := req.Body(); len(b) > 0 {
		dst.SetBody(b)
	}
}

// ToFastResponse writes resp into dst, which is reset first. Repeated
// fields are added one value at a time.
func ToFastResponse(resp *message.Response[[]byte], dst *fasthttp.Response) {
	dst.Reset()
	dst.SetStatusCode(int(resp.Status()))
	resp.Headers().VisitAll(func(name header.Name, v *header.Value) bool {
		dst.Header.AddBytesKV([]byte(name.String()), v.Bytes())
		return true
	})
	if b := resp.Body(); len(b) > 0 {
		dst.SetBody(b)
	}
}
