package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/services"
)

func testConfig() config.Config {
	return config.Config{
		FrontendURL: "https://arcano.pm.gov.br/",
		MailQueue:   8,
		JWT:         config.JWTConfig{Secret: "test-secret", AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour},
		Storage:     config.StorageConfig{Driver: "local", Prefix: "relatorios"},
	}
}

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	db := database.OpenTestDB(t)

	bg, err := Register(router, db, testConfig(), services.NewLocalStorage(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, bg.Mail)
	require.NotNil(t, bg.Maintenance)
	require.NotNil(t, bg.Notifications)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/health",
		"POST /api/v1/auth/users/",
		"POST /api/v1/auth/jwt/create/",
		"GET /api/v1/auth/users/me/",
		"POST /api/v1/sac/reports",
		"GET /api/v1/sac/reports/:id/download",
		"GET /api/v1/sac/shares/:token",
		"POST /api/v1/oper/custodies",
		"POST /api/v1/oper/custody-acceptances/:protocol/confirm",
		"GET /api/v1/oper/notifications/ws",
		"GET /api/v1/history",
		"PUT /api/v1/settings/smtp",
		"GET /api/v1/oper/operations/:id/resources",
		"POST /api/v1/oper/fuel-logs",
		"POST /api/v1/oper/vehicles/:id/photos",
		"GET /api/v1/schema/",
		"GET /swagger/*any",
		"GET /redoc/",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/oper/operations", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	registerDocs(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/schema/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var doc struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Info     struct{ Title string }     `json:"info"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Equal(t, "ARCANO API", doc.Info.Title)
	for _, p := range []string{"/auth/jwt/create/", "/sac/reports/{id}", "/oper/operations/{id}/resources", "/oper/fuel-logs", "/health"} {
		assert.Contains(t, doc.Paths, p)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "script-src 'self'")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/redoc/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `spec-url="/api/v1/schema/"`)
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://arcano.pm.gov.br"}, AllowedOrigins(testConfig()))
	assert.Nil(t, AllowedOrigins(config.Config{}))
}
