package middleware

import (
	"crypto/subtle"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "restaurant-bot/pkg/errors"
	"restaurant-bot/pkg/response"
)

// WebhookGuard checks the caller address and the Telegram secret token.
func (m Middleware) WebhookGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.validateIPAddress(c.Request); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.WebhookGuard: %v", err)
			c.Abort()
			response.Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, "forbidden"), nil)
			return
		}
		if err := m.validateSecret(c.GetHeader(HeaderTelegramSecret)); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.WebhookGuard: %v", err)
			c.Abort()
			response.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized"), nil)
			return
		}
		c.Next()
	}
}

func (m Middleware) validateSecret(token string) error {
	if m.cfg.WebhookSecret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(m.cfg.WebhookSecret)) != 1 {
		return fmt.Errorf("invalid secret token")
	}
	return nil
}

// validateIPAddress checks the caller against AllowedIPs.
func (m Middleware) validateIPAddress(r *http.Request) error {
	if len(m.cfg.AllowedIPs) == 0 {
		return nil
	}

	ip := extractIP(r)
	for _, allowed := range m.cfg.AllowedIPs {
		if ip == allowed {
			return nil
		}
		if strings.Contains(allowed, "/") {
			_, ipNet, err := net.ParseCIDR(allowed)
			if err != nil {
				continue
			}
			if ipNet.Contains(net.ParseIP(ip)) {
				return nil
			}
		}
	}
	return fmt.Errorf("IP %s not whitelisted", ip)
}
