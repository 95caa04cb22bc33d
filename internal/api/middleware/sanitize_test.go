package middleware

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHeaders(t *testing.T) {
	assert.Nil(t, SanitizeHeaders(nil))

	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("Cookie", "session=1")
	h.Set("User-Agent", "curl/8.0\r\nX-Injected: 1")
	h.Set("X-Long", strings.Repeat("a", 500))

	out := SanitizeHeaders(h)
	assert.Equal(t, []string{"<redacted>"}, out["Authorization"])
	assert.Equal(t, []string{"<redacted>"}, out["Cookie"])
	assert.NotContains(t, out["User-Agent"][0], "\n")
	assert.Len(t, out["X-Long"][0], maxLoggedValue)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/api/v1/ws/notifications", SanitizePath("/api/v1/ws/notifications?token=secret"))
	assert.Len(t, SanitizePath("/"+strings.Repeat("x", 400)), maxLoggedValue)
}
