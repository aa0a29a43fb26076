package message

import "strconv"

// StatusCode is an HTTP response status code in the range 100-999.
// The zero StatusCode is invalid; responses default to StatusOK.
type StatusCode uint16

// Common status codes.
const (
	StatusContinue             StatusCode = 100
	StatusSwitchingProtocols   StatusCode = 101
	StatusOK                   StatusCode = 200
	StatusCreated              StatusCode = 201
	StatusAccepted             StatusCode = 202
	StatusNoContent            StatusCode = 204
	StatusPartialContent       StatusCode = 206
	StatusMovedPermanently     StatusCode = 301
	StatusFound                StatusCode = 302
	StatusSeeOther             StatusCode = 303
	StatusNotModified          StatusCode = 304
	StatusTemporaryRedirect    StatusCode = 307
	StatusPermanentRedirect    StatusCode = 308
	StatusBadRequest           StatusCode = 400
	StatusUnauthorized         StatusCode = 401
	StatusForbidden            StatusCode = 403
	StatusNotFound             StatusCode = 404
	StatusMethodNotAllowed     StatusCode = 405
	StatusRequestTimeout       StatusCode = 408
	StatusConflict             StatusCode = 409
	StatusPayloadTooLarge      StatusCode = 413
	StatusURITooLong           StatusCode = 414
	StatusTooManyRequests      StatusCode = 429
	StatusHeaderFieldsTooLarge StatusCode = 431
	StatusInternalServerError  StatusCode = 500
	StatusNotImplemented       StatusCode = 501
	StatusBadGateway           StatusCode = 502
	StatusServiceUnavailable   StatusCode = 503
	StatusGatewayTimeout       StatusCode = 504
)

// StatusFromUint16 validates u as a status code.
// Returns ErrInvalidStatusCode unless 100 <= u <= 999.
func StatusFromUint16(u uint16) (StatusCode, error) {
	if u < 100 || u > 999 {
		return 0, ErrInvalidStatusCode
	}
	return StatusCode(u), nil
}

// ParseStatusCode parses exactly three ASCII digits.
// Returns ErrInvalidStatusCode for anything else or a code below 100.
func ParseStatusCode(s string) (StatusCode, error) {
	if len(s) != 3 {
		return 0, ErrInvalidStatusCode
	}
	var u uint16
	for i := 0; i < 3; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidStatusCode
		}
		u = u*10 + uint16(c-'0')
	}
	return StatusFromUint16(u)
}

// Uint16 returns the numeric code.
func (s StatusCode) Uint16() uint16 {
	return uint16(s)
}

// IsInformational reports a 1xx code.
func (s StatusCode) IsInformational() bool { return s >= 100 && s < 200 }

// IsSuccess reports a 2xx code.
func (s StatusCode) IsSuccess() bool { return s >= 200 && s < 300 }

// IsRedirection reports a 3xx code.
func (s StatusCode) IsRedirection() bool { return s >= 300 && s < 400 }

// IsClientError reports a 4xx code.
func (s StatusCode) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError reports a 5xx code.
func (s StatusCode) IsServerError() bool { return s >= 500 && s < 600 }

// String returns the code followed by its canonical reason, e.g.
// "404 Not Found", or only the code when no reason is registered.
func (s StatusCode) String() string {
	code := strconv.Itoa(int(s))
	if reason, ok := s.CanonicalReason(); ok {
		return code + " " + reason
	}
	return code
}

// CanonicalReason returns the reason phrase registered for s.
// Based on RFC 7231 Section 6 and the IANA status code registry.
func (s StatusCode) CanonicalReason() (string, bool) {
	switch s {
	// 1xx Informational
	case 100:
		return "Continue", true
	case 101:
		return "Switching Protocols", true
	case 102:
		return "Processing", true
	case 103:
		return "Early Hints", true

	// 2xx Success
	case 200:
		return "OK", true
	case 201:
		return "Created", true
	case 202:
		return "Accepted", true
	case 203:
		return "Non-Authoritative Information", true
	case 204:
		return "No Content", true
	case 205:
		return "Reset Content", true
	case 206:
		return "Partial Content", true
	case 207:
		return "Multi-Status", true
	case 208:
		return "Already Reported", true
	case 226:
		return "IM Used", true

	// 3xx Redirection
	case 300:
		return "Multiple Choices", true
	case 301:
		return "Moved Permanently", true
	case 302:
		return "Found", true
	case 303:
		return "See Other", true
	case 304:
		return "Not Modified", true
	case 305:
		return "Use Proxy", true
	case 307:
		return "Temporary Redirect", true
	case 308:
		return "Permanent Redirect", true

	// 4xx Client Error
	case 400:
		return "Bad Request", true
	case 401:
		return "Unauthorized", true
	case 402:
		return "Payment Required", true
	case 403:
		return "Forbidden", true
	case 404:
		return "Not Found", true
	case 405:
		return "Method Not Allowed", true
	case 406:
		return "Not Acceptable", true
	case 407:
		return "Proxy Authentication Required", true
	case 408:
		return "Request Timeout", true
	case 409:
		return "Conflict", true
	case 410:
		return "Gone", true
	case 411:
		return "Length Required", true
	case 412:
		return "Precondition Failed", true
	case 413:
		return "Payload Too Large", true
	case 414:
		return "URI Too Long", true
	case 415:
		return "Unsupported Media Type", true
	case 416:
		return "Range Not Satisfiable", true
	case 417:
		return "Expectation Failed", true
	case 418:
		return "I'm a teapot", true
	case 421:
		return "Misdirected Request", true
	case 422:
		return "Unprocessable Entity", true
	case 423:
		return "Locked", true
	case 424:
		return "Failed Dependency", true
	case 426:
		return "Upgrade Required", true
	case 428:
		return "Precondition Required", true
	case 429:
		return "Too Many Requests", true
	case 431:
		return "Request Header Fields Too Large", true
	case 451:
		return "Unavailable For Legal Reasons", true

	// 5xx Server Error
	case 500:
		return "Internal Server Error", true
	case 501:
		return "Not Implemented", true
	case 502:
		return "Bad Gateway", true
	case 503:
		return "Service Unavailable", true
	case 504:
		return "Gateway Timeout", true
	case 505:
		return "HTTP Version Not Supported", true
	case 506:
		return "Variant Also Negotiates", true
	case 507:
		return "Insufficient Storage", true
	case 508:
		return "Loop Detected", true
	case 510:
		return "Not Extended", true
	case 511:
		return "Network Authentication Required", true

	default:
		return "", false
	}
}
