package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/arcanosig/arcano/backend/internal/logger"
)

func panicRouter(verbose bool, msg string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(Recovery(verbose))
	router.GET("/panic", func(c *gin.Context) { panic(msg) })
	return router
}

func TestRecoveryLogsStacktraceVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(true, buf)

	w := httptest.NewRecorder()
	panicRouter(true, "cautela panic").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	out := buf.String()
	assert.Contains(t, out, "PANIC: cautela panic")
	assert.Contains(t, out, "Stacktrace:")
	assert.Contains(t, out, "request_id")
}

func TestRecoveryLogsBriefWhenNotVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(false, buf)

	w := httptest.NewRecorder()
	panicRouter(false, "brief panic").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "PANIC: brief panic")
	assert.NotContains(t, buf.String(), "Stacktrace:")
}

func TestRecoveryRedactsBearerToken(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(true, buf)

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	w := httptest.NewRecorder()
	panicRouter(true, "sensitive panic").ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, buf.String(), "secret-token")
	assert.Contains(t, buf.String(), "<redacted>")
}
