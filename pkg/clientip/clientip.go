package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Proxy headers consulted, in order, when they are trusted.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest returns the caller address. Proxy headers are honoured only
// when trustProxy is set, since any client can forge them; otherwise the
// TCP peer address is used. The result is "" when no valid address is found.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, name := range proxyHeaders {
			value := r.Header.Get(name)
			if value == "" {
				continue
			}
			// X-Forwarded-For lists the original client first.
			for candidate := range strings.SplitSeq(value, ",") {
				if ip := normalize(candidate); ip != "" {
					return ip
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
