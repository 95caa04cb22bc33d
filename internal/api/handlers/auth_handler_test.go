package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

func TestAuthHandler_RegistrationActivationApproval(t *testing.T) {
	e := newAPIEnv(t)
	boss := e.user("admin@pm.gov.br", admin)
	plain := e.user("sd@pm.gov.br", nil)

	w := e.do(http.MethodPost, apiPath("/auth/users/"), nil, services.RegisterInput{
		Email: "Novo@PM.gov.br", Name: "joão da silva", CPF: "529.982.247-25", Patent: "CB", Password: testPassword,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "activation")
	require.Len(t, e.mailer.to("novo@pm.gov.br"), 1)

	var created models.User
	require.NoError(t, e.db.Where("email = ?", "novo@pm.gov.br").First(&created).Error)
	assert.False(t, created.IsActive)
	assert.Equal(t, "JOÃO DA SILVA", created.Name)

	login := LoginRequest{Email: "novo@pm.gov.br", Password: testPassword}
	w = e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, login)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodPost, apiPath("/auth/users/activation/"), nil, ActivationRequest{UID: created.UUID, Token: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = e.do(http.MethodPost, apiPath("/auth/users/activation/"), nil, ActivationRequest{UID: created.UUID, Token: created.ActivationToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, e.mailer.to(boss.Email), 1, "admins are asked to approve")

	w = e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, login)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodPost, apiPath("/auth/users/%d/approve", created.ID), plain, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = e.do(http.MethodPost, apiPath("/auth/users/%d/approve", created.ID), boss, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, login)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var pair services.TokenPair
	decodeJSON(t, w, &pair)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	e := newAPIEnv(t)
	e.user("existente@pm.gov.br", nil)

	w := e.do(http.MethodPost, apiPath("/auth/users/"), nil, services.RegisterInput{
		Email: "existente@pm.gov.br", Name: "X", CPF: "52998224725", Password: testPassword,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"email"`)

	w = e.do(http.MethodPost, apiPath("/auth/users/"), nil, services.RegisterInput{
		Email: "outro@pm.gov.br", Name: "X", CPF: "52998224725", Password: "12345678",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"password"`)
}

func TestAuthHandler_RefreshVerifyLogout(t *testing.T) {
	e := newAPIEnv(t)
	u := e.user("sd@pm.gov.br", nil)

	w := e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, LoginRequest{Email: u.Email, Password: testPassword})
	require.Equal(t, http.StatusOK, w.Code)
	var pair services.TokenPair
	decodeJSON(t, w, &pair)

	w = e.do(http.MethodPost, apiPath("/auth/jwt/refresh/"), nil, RefreshRequest{Refresh: pair.Refresh})
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed struct {
		Access string `json:"access"`
	}
	decodeJSON(t, w, &refreshed)
	assert.NotEmpty(t, refreshed.Access)

	w = e.do(http.MethodPost, apiPath("/auth/jwt/refresh/"), nil, RefreshRequest{Refresh: pair.Access})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "an access token cannot refresh")

	w = e.do(http.MethodPost, apiPath("/auth/jwt/verify/"), nil, VerifyRequest{Token: pair.Access})
	assert.Equal(t, http.StatusOK, w.Code)
	w = e.do(http.MethodPost, apiPath("/auth/jwt/verify/"), nil, VerifyRequest{Token: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := jsonRequest(t, http.MethodPost, apiPath("/auth/logout/"), RefreshRequest{Refresh: pair.Refresh})
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	w = e.send(req, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(http.MethodPost, apiPath("/auth/jwt/refresh/"), nil, RefreshRequest{Refresh: pair.Refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = jsonRequest(t, http.MethodGet, apiPath("/auth/users/me/"), nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	assert.Equal(t, http.StatusUnauthorized, e.send(req, nil).Code)
}

func TestAuthHandler_LoginLocksAfterFailures(t *testing.T) {
	e := newAPIEnv(t)
	u := e.user("sd@pm.gov.br", nil)

	for i := 0; i < 5; i++ {
		w := e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, LoginRequest{Email: u.Email, Password: "errada-123"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w := e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, LoginRequest{Email: u.Email, Password: testPassword})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, services.ErrAccountLocked.Error(), errorOf(t, w))
}

func TestAuthHandler_CPFLogin(t *testing.T) {
	e := newAPIEnv(t)
	regular := e.user("sd@pm.gov.br", nil)
	special := e.user("especial@pm.gov.br", func(u *models.User) { u.SpecialCPFAccess = true })

	w := e.do(http.MethodPost, apiPath("/auth/special/cpf-login/"), nil, CPFLoginRequest{CPF: regular.CPF, Password: testPassword})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodPost, apiPath("/auth/special/cpf-login/"), nil, CPFLoginRequest{CPF: special.CPF, Password: "errada-123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodPost, apiPath("/auth/special/cpf-login/"), nil, CPFLoginRequest{CPF: special.CPF, Password: testPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var pair services.TokenPair
	decodeJSON(t, w, &pair)
	assert.NotEmpty(t, pair.Access)
}

func TestAuthHandler_SetPassword(t *testing.T) {
	e := newAPIEnv(t)
	u := e.user("sd@pm.gov.br", nil)

	w := e.do(http.MethodPost, apiPath("/auth/users/set_password/"), u, SetPasswordRequest{CurrentPassword: "errada-123", NewPassword: "nova-senha-9"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "current_password")

	w = e.do(http.MethodPost, apiPath("/auth/users/set_password/"), u, SetPasswordRequest{CurrentPassword: testPassword, NewPassword: "nova-senha-9"})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, LoginRequest{Email: u.Email, Password: "nova-senha-9"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	e := newAPIEnv(t)
	u := e.user("sd@pm.gov.br", nil)

	w := e.do(http.MethodPost, apiPath("/auth/users/reset_password/"), nil, ResetPasswordRequest{Email: "ninguem@pm.gov.br"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(http.MethodPost, apiPath("/auth/users/reset_password/"), nil, ResetPasswordRequest{Email: u.Email})
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, e.mailer.to(u.Email), 1)

	var stored models.User
	require.NoError(t, e.db.First(&stored, u.ID).Error)
	require.NotEmpty(t, stored.ResetToken)

	w = e.do(http.MethodPost, apiPath("/auth/users/reset_password_confirm/"), nil, ResetPasswordConfirmRequest{UID: u.UUID, Token: "x", NewPassword: "nova-senha-9"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodPost, apiPath("/auth/users/reset_password_confirm/"), nil, ResetPasswordConfirmRequest{UID: u.UUID, Token: stored.ResetToken, NewPassword: "nova-senha-9"})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = e.do(http.MethodPost, apiPath("/auth/jwt/create/"), nil, LoginRequest{Email: u.Email, Password: "nova-senha-9"})
	assert.Equal(t, http.StatusOK, w.Code)
}
