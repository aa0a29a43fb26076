// Package message provides the HTTP message head types: Method, StatusCode,
// Version, Extensions, and the generic Request and Response that pair a head
// with a body of any type.
//
// Requests and responses are usually assembled with a builder:
//
//	b := message.Get("https://example.com/").
//		Header("Accept", "text/html").
//		Header("User-Agent", "filament/1.0")
//	req, err := message.BuildRequest(b, []byte(nil))
//
// A builder records the first error of any step and skips the rest; the
// error is reported by BuildRequest or BuildResponse.
package message
