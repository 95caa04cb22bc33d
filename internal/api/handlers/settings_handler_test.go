package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type fakeSMTP struct {
	*services.MailService
	sent    []string
	sendErr error
}

func (f *fakeSMTP) SendEmail(to, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, to)
	return nil
}

func (e *apiEnv) settings(t *testing.T) *fakeSMTP {
	t.Helper()
	f := &fakeSMTP{MailService: services.NewMailService(e.db, config.SMTPConfig{})}
	NewSettingsHandler(f).RegisterRoutes(e.router.Group("/api/v1", e.requireAuth, middleware.RequireAdmin()))
	return f
}

func TestSettingsHandler_SMTP(t *testing.T) {
	e := newAPIEnv(t)
	fake := e.settings(t)
	root := e.user("admin@pm.gov.br", admin)
	plain := e.user("sd@pm.gov.br", nil)

	assert.Equal(t, http.StatusForbidden, e.do(http.MethodGet, apiPath("/settings/smtp"), plain, nil).Code)

	w := e.do(http.MethodGet, apiPath("/settings/smtp"), root, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"configured":false`)

	w = e.do(http.MethodPost, apiPath("/settings/smtp/test"), root, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPut, apiPath("/settings/smtp"), root, map[string]interface{}{"host": "smtp.pm.gov.br", "port": 587, "from_address": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPut, apiPath("/settings/smtp"), root, map[string]interface{}{
		"host": "smtp.pm.gov.br", "port": 465, "username": "arcano", "password": "s3cr3t",
		"from_address": "arcano@pm.gov.br", "encryption": "ssl",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(http.MethodGet, apiPath("/settings/smtp"), root, nil)
	var got map[string]interface{}
	decodeJSON(t, w, &got)
	assert.Equal(t, "smtp.pm.gov.br", got["host"])
	assert.Equal(t, float64(465), got["port"])
	assert.Equal(t, maskedPassword, got["password"])
	assert.Equal(t, true, got["configured"])

	w = e.do(http.MethodPut, apiPath("/settings/smtp"), root, map[string]interface{}{
		"host": "smtp2.pm.gov.br", "port": 587, "password": maskedPassword, "from_address": "arcano@pm.gov.br",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var stored models.Setting
	require.NoError(t, e.db.Where("key = ?", "smtp_password").First(&stored).Error)
	assert.Equal(t, "s3cr3t", stored.Value, "the masked placeholder keeps the stored password")
	cfg, err := fake.GetSMTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "starttls", cfg.Encryption)

	w = e.do(http.MethodPost, apiPath("/settings/smtp/test"), root, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{root.Email}, fake.sent)

	fake.sendErr = errors.New("connection refused")
	w = e.do(http.MethodPost, apiPath("/settings/smtp/test"), root, testEmailRequest{To: "p1@pm.gov.br"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorOf(t, w), "connection refused")
}
