package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB, *recordingMailer) {
	t.Helper()
	db := database.OpenTestDB(t)
	mailer := &recordingMailer{}
	cfg := config.Config{
		FrontendURL: "https://arcano.test",
		JWT:         config.JWTConfig{Secret: "test-secret", AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour},
	}
	return NewAuthService(db, cfg, mailer), db, mailer
}

func TestAuthService_RegisterActivateApprove(t *testing.T) {
	svc, db, mailer := newAuthService(t)
	ctx := context.Background()
	admin := createUser(t, db, "admin@pm.go.gov.br", func(u *models.User) { u.IsAdmin = true })

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "Novo@PM.go.gov.br",
		Name:     "cabo novo",
		CPF:      "529.982.247-25",
		Patent:   "CB",
		Password: "minhasenha123",
	})
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.False(t, user.IsApproved)
	assert.Equal(t, "novo@pm.go.gov.br", user.Email)
	assert.Equal(t, "CABO NOVO", user.Name)
	assert.Len(t, user.ActivationToken, 43)

	sent := mailer.to("novo@pm.go.gov.br")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Body, "/ativar/"+user.UUID+"/"+user.ActivationToken+"/")

	_, _, err = svc.Login(ctx, "novo@pm.go.gov.br", "minhasenha123")
	assert.ErrorIs(t, err, ErrAccountNotActivated)

	_, err = svc.Activate(ctx, user.UUID, "wrong")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Activate(ctx, user.UUID, user.ActivationToken)
	require.NoError(t, err)
	require.Len(t, mailer.to(admin.Email), 1)
	assert.Equal(t, "Novo usuário aguardando aprovação", mailer.to(admin.Email)[0].Subject)

	_, err = svc.Activate(ctx, user.UUID, user.ActivationToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = svc.Login(ctx, "novo@pm.go.gov.br", "minhasenha123")
	assert.ErrorIs(t, err, ErrAccountPendingApproval)

	approved, err := svc.Approve(ctx, user.ID, admin)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.Len(t, mailer.to("novo@pm.go.gov.br"), 2)

	var logs []models.UserChangeLog
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "is_approved", logs[0].FieldName)
	assert.Equal(t, admin.ID, *logs[0].ChangedByID)

	pair, _, err := svc.Login(ctx, "novo@pm.go.gov.br", "minhasenha123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, db, _ := newAuthService(t)
	ctx := context.Background()
	existing := createUser(t, db, "dup@pm.go.gov.br", nil)

	cases := map[string]RegisterInput{
		"email":    {Email: "DUP@pm.go.gov.br", Name: "X", CPF: "52998224725", Password: "minhasenha123"},
		"cpf":      {Email: "new@pm.go.gov.br", Name: "X", CPF: existing.CPF, Password: "minhasenha123"},
		"password": {Email: "new@pm.go.gov.br", Name: "X", CPF: "52998224725", Password: "12345678"},
	}
	for field, in := range cases {
		_, err := svc.Register(ctx, in)
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve, field)
		assert.Equal(t, field, ve.Field)
	}
}

func TestAuthService_InactiveUserCannotObtainTokens(t *testing.T) {
	svc, db, _ := newAuthService(t)
	createUser(t, db, "inativo@pm.go.gov.br", func(u *models.User) { u.IsActive = false })

	pair, _, err := svc.Login(context.Background(), "inativo@pm.go.gov.br", testPassword)
	assert.ErrorIs(t, err, ErrAccountNotActivated)
	assert.Empty(t, pair.Access)

	_, _, err = svc.Login(context.Background(), "inativo@pm.go.gov.br", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ninguem@pm.go.gov.br", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SuperuserSkipsApproval(t *testing.T) {
	svc, db, _ := newAuthService(t)
	createUser(t, db, "root@pm.go.gov.br", func(u *models.User) { u.IsApproved = false; u.IsSuperuser = true })

	_, user, err := svc.Login(context.Background(), "root@pm.go.gov.br", testPassword)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
}

func TestAuthService_Lockout(t *testing.T) {
	svc, db, _ := newAuthService(t)
	clock := newTestClock(time.Now())
	svc.now = clock.Now
	createUser(t, db, "lock@pm.go.gov.br", nil)
	ctx := context.Background()

	for i := 0; i < maxFailedLogins; i++ {
		_, _, err := svc.Login(ctx, "lock@pm.go.gov.br", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
	_, _, err := svc.Login(ctx, "lock@pm.go.gov.br", testPassword)
	assert.ErrorIs(t, err, ErrAccountLocked)

	clock.Advance(lockDuration + time.Second)
	_, _, err = svc.Login(ctx, "lock@pm.go.gov.br", testPassword)
	assert.NoError(t, err)
}

func TestAuthService_TokenLifecycle(t *testing.T) {
	svc, db, _ := newAuthService(t)
	clock := newTestClock(time.Now())
	svc.now = clock.Now
	u := createUser(t, db, "token@pm.go.gov.br", nil)
	ctx := context.Background()

	pair, _, err := svc.Login(ctx, u.Email, testPassword)
	require.NoError(t, err)

	user, claims, err := svc.Authenticate(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, user.ID)
	assert.Equal(t, u.UUID, claims.UUID)
	assert.Equal(t, TokenAccess, claims.Type)

	// A refresh token is not an access token.
	_, _, err = svc.Authenticate(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	access, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = svc.Refresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, svc.Logout(pair.Refresh, claims))

	_, err = svc.Refresh(pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	_, _, err = svc.Authenticate(pair.Access)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = svc.ParseToken(access, "")
	assert.NoError(t, err)
	clock.Advance(2 * time.Hour)
	_, err = svc.ParseToken(access, "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not-a-jwt", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_PurgeBlacklist(t *testing.T) {
	svc, db, _ := newAuthService(t)
	now := svc.now()
	require.NoError(t, db.Create(&models.TokenBlacklist{JTI: "old", ExpiresAt: now.Add(-time.Hour)}).Error)
	require.NoError(t, db.Create(&models.TokenBlacklist{JTI: "live", ExpiresAt: now.Add(time.Hour)}).Error)

	n, err := svc.PurgeBlacklist()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var left []models.TokenBlacklist
	db.Find(&left)
	require.Len(t, left, 1)
	assert.Equal(t, "live", left[0].JTI)
}

func TestAuthService_CPFLogin(t *testing.T) {
	svc, db, _ := newAuthService(t)
	special := createUser(t, db, "esp@pm.go.gov.br", func(u *models.User) { u.SpecialCPFAccess = true; u.CPF = "52998224725" })
	plain := createUser(t, db, "plain@pm.go.gov.br", nil)
	ctx := context.Background()

	pair, _, err := svc.CPFLogin(ctx, "529.982.247-25", testPassword)
	require.NoError(t, err)
	user, _, err := svc.Authenticate(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, special.ID, user.ID)

	_, _, err = svc.CPFLogin(ctx, plain.CPF, testPassword)
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	_, _, err = svc.CPFLogin(ctx, "52998224725", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_PasswordReset(t *testing.T) {
	svc, db, mailer := newAuthService(t)
	clock := newTestClock(time.Now())
	svc.now = clock.Now
	u := createUser(t, db, "reset@pm.go.gov.br", nil)
	ctx := context.Background()

	require.NoError(t, svc.RequestPasswordReset(ctx, "nobody@pm.go.gov.br"))
	require.NoError(t, svc.RequestPasswordReset(ctx, u.Email))
	sent := mailer.to(u.Email)
	require.Len(t, sent, 1)

	var stored models.User
	require.NoError(t, db.First(&stored, u.ID).Error)
	require.NotEmpty(t, stored.ResetToken)
	assert.True(t, strings.Contains(sent[0].Body, stored.ResetToken))

	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, u.UUID, "bad", "nova-senha-99"), ErrInvalidToken)
	require.NoError(t, svc.ConfirmPasswordReset(ctx, u.UUID, stored.ResetToken, "nova-senha-99"))
	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, u.UUID, stored.ResetToken, "nova-senha-98"), ErrInvalidToken)

	_, _, err := svc.Login(ctx, u.Email, "nova-senha-99")
	assert.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, u.Email))
	require.NoError(t, db.First(&stored, u.ID).Error)
	clock.Advance(resetTokenTTL)
	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, u.UUID, stored.ResetToken, "nova-senha-97"), ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, db, _ := newAuthService(t)
	u := createUser(t, db, "change@pm.go.gov.br", nil)
	ctx := context.Background()

	var ve *models.ValidationError
	assert.ErrorAs(t, svc.ChangePassword(ctx, u, "wrong", "outra-senha-1"), &ve)
	assert.ErrorAs(t, svc.ChangePassword(ctx, u, testPassword, "curta"), &ve)
	require.NoError(t, svc.ChangePassword(ctx, u, testPassword, "outra-senha-1"))

	_, _, err := svc.Login(ctx, u.Email, "outra-senha-1")
	assert.NoError(t, err)
}
