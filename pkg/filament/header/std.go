package header

// Well-known header names. Each is interned: ParseName returns these exact
// values for any casing of the same name.
var (
	Accept                          = stdName("accept")
	AcceptCharset                   = stdName("accept-charset")
	AcceptEncoding                  = stdName("accept-encoding")
	AcceptLanguage                  = stdName("accept-language")
	AcceptPatch                     = stdName("accept-patch")
	AcceptRanges                    = stdName("accept-ranges")
	AccessControlAllowCredentials   = stdName("access-control-allow-credentials")
	AccessControlAllowHeaders       = stdName("access-control-allow-headers")
	AccessControlAllowMethods       = stdName("access-control-allow-methods")
	AccessControlAllowOrigin        = stdName("access-control-allow-origin")
	AccessControlExposeHeaders      = stdName("access-control-expose-headers")
	AccessControlMaxAge             = stdName("access-control-max-age")
	AccessControlRequestHeaders     = stdName("access-control-request-headers")
	AccessControlRequestMethod      = stdName("access-control-request-method")
	Age                             = stdName("age")
	Allow                           = stdName("allow")
	AltSvc                          = stdName("alt-svc")
	Authorization                   = stdName("authorization")
	CacheControl                    = stdName("cache-control")
	Connection                      = stdName("connection")
	ContentDisposition              = stdName("content-disposition")
	ContentEncoding                 = stdName("content-encoding")
	ContentLanguage                 = stdName("content-language")
	ContentLength                   = stdName("content-length")
	ContentLocation                 = stdName("content-location")
	ContentMD5                      = stdName("content-md5")
	ContentRange                    = stdName("content-range")
	ContentSecurityPolicy           = stdName("content-security-policy")
	ContentSecurityPolicyReportOnly = stdName("content-security-policy-report-only")
	ContentType                     = stdName("content-type")
	Cookie                          = stdName("cookie")
	DNT                             = stdName("dnt")
	Date                            = stdName("date")
	ETag                            = stdName("etag")
	Expect                          = stdName("expect")
	Expires                         = stdName("expires")
	Forwarded                       = stdName("forwarded")
	From                            = stdName("from")
	Host                            = stdName("host")
	IfMatch                         = stdName("if-match")
	IfModifiedSince                 = stdName("if-modified-since")
	IfNoneMatch                     = stdName("if-none-match")
	IfRange                         = stdName("if-range")
	IfUnmodifiedSince               = stdName("if-unmodified-since")
	LastModified                    = stdName("last-modified")
	KeepAlive                       = stdName("keep-alive")
	Link                            = stdName("link")
	Location                        = stdName("location")
	MaxForwards                     = stdName("max-forwards")
	Origin                          = stdName("origin")
	Pragma                          = stdName("pragma")
	ProxyAuthenticate               = stdName("proxy-authenticate")
	ProxyAuthorization              = stdName("proxy-authorization")
	PublicKeyPins                   = stdName("public-key-pins")
	PublicKeyPinsReportOnly         = stdName("public-key-pins-report-only")
	Range                           = stdName("range")
	Referer                         = stdName("referer")
	ReferrerPolicy                  = stdName("referrer-policy")
	Refresh                         = stdName("refresh")
	RetryAfter                      = stdName("retry-after")
	Server                          = stdName("server")
	SetCookie                       = stdName("set-cookie")
	StrictTransportSecurity         = stdName("strict-transport-security")
	TE                              = stdName("te")
	Tk                              = stdName("tk")
	Trailer                         = stdName("trailer")
	TransferEncoding                = stdName("transfer-encoding")
	Tsv                             = stdName("tsv")
	UserAgent                       = stdName("user-agent")
	Upgrade                         = stdName("upgrade")
	UpgradeInsecureRequests         = stdName("upgrade-insecure-requests")
	Vary                            = stdName("vary")
	Via                             = stdName("via")
	Warning                         = stdName("warning")
	WWWAuthenticate                 = stdName("www-authenticate")
	XContentTypeOptions             = stdName("x-content-type-options")
	XDNSPrefetchControl             = stdName("x-dns-prefetch-control")
	XFrameOptions                   = stdName("x-frame-options")
	XXSSProtection                  = stdName("x-xss-protection")
)

// standardHeaders lists the well-known names in declaration order.
var standardHeaders = []Name{
	Accept,
	AcceptCharset,
	AcceptEncoding,
	AcceptLanguage,
	AcceptPatch,
	AcceptRanges,
	AccessControlAllowCredentials,
	AccessControlAllowHeaders,
	AccessControlAllowMethods,
	AccessControlAllowOrigin,
	AccessControlExposeHeaders,
	AccessControlMaxAge,
	AccessControlRequestHeaders,
	AccessControlRequestMethod,
	Age,
	Allow,
	AltSvc,
	Authorization,
	CacheControl,
	Connection,
	ContentDisposition,
	ContentEncoding,
	ContentLanguage,
	ContentLength,
	ContentLocation,
	ContentMD5,
	ContentRange,
	ContentSecurityPolicy,
	ContentSecurityPolicyReportOnly,
	ContentType,
	Cookie,
	DNT,
	Date,
	ETag,
	Expect,
	Expires,
	Forwarded,
	From,
	Host,
	IfMatch,
	IfModifiedSince,
	IfNoneMatch,
	IfRange,
	IfUnmodifiedSince,
	LastModified,
	KeepAlive,
	Link,
	Location,
	MaxForwards,
	Origin,
	Pragma,
	ProxyAuthenticate,
	ProxyAuthorization,
	PublicKeyPins,
	PublicKeyPinsReportOnly,
	Range,
	Referer,
	ReferrerPolicy,
	Refresh,
	RetryAfter,
	Server,
	SetCookie,
	StrictTransportSecurity,
	TE,
	Tk,
	Trailer,
	TransferEncoding,
	Tsv,
	UserAgent,
	Upgrade,
	UpgradeInsecureRequests,
	Vary,
	Via,
	Warning,
	WWWAuthenticate,
	XContentTypeOptions,
	XDNSPrefetchControl,
	XFrameOptions,
	XXSSProtection,
}

// standardNames indexes the well-known names by canonical spelling.
var standardNames = func() map[string]Name {
	m := make(map[string]Name, len(standardHeaders))
	for _, n := range standardHeaders {
		m[n.name] = n
	}
	return m
}()

func stdName(s string) Name {
	return Name{name: s, std: true}
}

// StandardNames returns a copy of the well-known names in declaration order.
func StandardNames() []Name {
	out := make([]Name, len(standardHeaders))
	copy(out, standardHeaders)
	return out
}
