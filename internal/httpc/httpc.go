package httpc

import (
	"crypto/tls"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// Httpc builds resty clients for outbound portal calls.
//
// Every client carries a cookie jar so session cookies set by the backend are
// replayed on subsequent requests. There is no option to turn this off:
// credential inclusion is part of the request contract, not a per-call choice.
type Httpc struct {
	TlsConfig *tls.Config
}

// New returns a resty.Client configured according to the receiver's TLS settings.
// Defaults: MinVersion TLS1.3 when MinVersion is zero.
func (h *Httpc) New() *resty.Client {
	c := resty.New()

	jar, err := cookiejar.New(nil)
	if err == nil {
		c.SetCookieJar(jar)
	}

	cfg := h.TlsConfig
	if cfg == nil {
		return c
	}
	if cfg.MinVersion == 0 {
		cfg.MinVersion = tls.VersionTLS13
	}
	c.SetTLSClientConfig(cfg)
	return c
}

// ParseTLSVersion converts a TLS version string to the corresponding crypto/tls
// constant. Supports "1.2", "12", "tls1.2", "tls12" and friends.
// Returns 0 if the version string is not recognized.
func ParseTLSVersion(version string) uint16 {
	switch version {
	case "1.0", "10", "tls1.0", "tls10":
		return tls.VersionTLS10
	case "1.1", "11", "tls1.1", "tls11":
		return tls.VersionTLS11
	case "1.2", "12", "tls1.2", "tls12":
		return tls.VersionTLS12
	case "1.3", "13", "tls1.3", "tls13":
		return tls.VersionTLS13
	default:
		return 0
	}
}
