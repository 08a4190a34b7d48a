package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIdentity resolves the conversation key of the caller: the
// X-Client-ID header when present, otherwise the remote address.
func (m Middleware) ClientIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderClientID))
		if id == "" || len(id) > maxClientIDLen {
			id = extractIP(c.Request)
		}
		c.Set(contextKeyClientID, id)
		c.Next()
	}
}

// ClientID returns the identity set by ClientIdentity.
func ClientID(c *gin.Context) string {
	return c.GetString(contextKeyClientID)
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
