package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"ovies_landing_go/config"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

const (
	htmxOrigin      = "https://unpkg.com"
	turnstileOrigin = "https://challenges.cloudflare.com"
)

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// contentSecurityPolicy builds the page policy. Turnstile origins are only
// allowed when the widget is configured.
func contentSecurityPolicy(nonce string, turnstile bool) string {
	scripts := []string{"'self'", "'nonce-" + nonce + "'", htmxOrigin}
	connect := []string{"'self'"}
	directives := [][]string{
		{"default-src", "'self'"},
		nil, // script-src
		{"style-src", "'self'", "https://fonts.googleapis.com"},
		{"img-src", "'self'", "data:"},
		{"font-src", "'self'", "https://fonts.gstatic.com"},
		nil, // connect-src
		{"form-action", "'self'"},
		{"base-uri", "'self'"},
		{"frame-ancestors", "'self'"},
	}
	if turnstile {
		scripts = append(scripts, turnstileOrigin)
		connect = append(connect, turnstileOrigin)
		directives = append(directives, []string{"frame-src", turnstileOrigin})
	}
	directives[1] = append([]string{"script-src"}, scripts...)
	directives[5] = append([]string{"connect-src"}, connect...)

	parts := make([]string, len(directives))
	for i, d := range directives {
		parts[i] = strings.Join(d, " ")
	}
	return strings.Join(parts, "; ")
}

// CSPNonce generates a nonce per request, exposes it to handlers and
// templates and sends the matching Content-Security-Policy
func CSPNonce(cfg *config.Config) echo.MiddlewareFunc {
	turnstile := cfg.TurnstileSiteKey != ""
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				return err
			}

			c.Set(string(NonceKey), nonce)

			// Templates read the nonce from the request context
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", contentSecurityPolicy(nonce, turnstile))
			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
