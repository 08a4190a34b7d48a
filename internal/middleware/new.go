// Package middleware holds the gin middleware shared by the HTTP and webhook
// routes: request ids, client identity, rate limiting and webhook guards.
package middleware

import (
	"restaurant-bot/pkg/log"
)

// Config configures the middleware set.
type Config struct {
	// RateLimitPerMin is the per-client request budget; 0 disables limiting.
	RateLimitPerMin int
	// WebhookSecret, when set, must match the Telegram secret token header.
	WebhookSecret string
	// AllowedIPs restricts webhook callers by address or CIDR; empty allows all.
	AllowedIPs []string
}

type Middleware struct {
	l           log.Logger
	cfg         Config
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l, cfg: cfg}
	if cfg.RateLimitPerMin > 0 {
		m.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
