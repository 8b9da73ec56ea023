package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP derives the client address the way the site runs behind a
// proxy/CDN: first hop of X-Forwarded-For, then X-Real-IP, then the
// connection's remote address.
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		if c.Request.RemoteAddr != "" {
			return c.Request.RemoteAddr
		}
		return "unknown"
	}
	return host
}
