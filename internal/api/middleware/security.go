package middleware

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersConfig holds configuration for the security headers middleware.
type SecurityHeadersConfig struct {
	// IsDevelopment skips HSTS and relaxes the CSP for the local frontend.
	IsDevelopment bool
	// CustomCSPDirectives override or extend the default CSP directives.
	CustomCSPDirectives map[string]string
}

// DefaultSecurityHeadersConfig returns the production configuration.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{}
}

// SecurityHeaders sets the security-related response headers of the API.
func SecurityHeaders(cfg SecurityHeadersConfig) gin.HandlerFunc {
	csp := buildCSP(cfg)
	permissions := buildPermissionsPolicy()
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", csp)
		if !cfg.IsDevelopment {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", permissions)
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		// report PDFs are embedded by the frontend, which lives on a sibling host
		h.Set("Cross-Origin-Resource-Policy", "same-site")
		c.Next()
	}
}

// buildCSP renders the directives in a stable order.
func buildCSP(cfg SecurityHeadersConfig) string {
	directives := map[string]string{
		"default-src":     "'none'",
		"img-src":         "'self' data:",
		"connect-src":     "'self'",
		"frame-ancestors": "'none'",
		"object-src":      "'none'",
		"base-uri":        "'none'",
		"form-action":     "'none'",
	}
	if cfg.IsDevelopment {
		directives["connect-src"] = "'self' ws: wss:"
		directives["frame-ancestors"] = "'self' http://localhost:*"
	}
	for key, value := range cfg.CustomCSPDirectives {
		directives[key] = value
	}

	keys := make([]string, 0, len(directives))
	for k := range directives {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+directives[k])
	}
	return strings.Join(parts, "; ")
}

func buildPermissionsPolicy() string {
	policies := []string{
		"accelerometer=()",
		"camera=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"payment=()",
		"usb=()",
	}
	return strings.Join(policies, ", ")
}
