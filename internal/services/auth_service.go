package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"

	maxFailedLogins = 5
	lockDuration    = 15 * time.Minute
	resetTokenTTL   = time.Hour
)

// ErrAccountLocked is returned after too many failed logins.
var ErrAccountLocked = errors.New("account locked")

// Claims are the JWT claims issued for both token types.
type Claims struct {
	UUID string `json:"uuid"`
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() uint {
	id, _ := strconv.ParseUint(c.Subject, 10, 64)
	return uint(id)
}

// TokenPair is returned on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterInput is the self-registration payload.
type RegisterInput struct {
	Email    string        `json:"email"`
	Name     string        `json:"name"`
	CPF      string        `json:"cpf"`
	Phone    string        `json:"phone"`
	Patent   models.Patent `json:"patent"`
	Password string        `json:"password"`
}

type AuthService struct {
	db          *gorm.DB
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	frontendURL string
	mailer      Mailer
	now         func() time.Time
	log         *logrus.Entry
}

func NewAuthService(db *gorm.DB, cfg config.Config, mailer Mailer) *AuthService {
	log := logger.Component("auth")
	secret := cfg.JWT.Secret
	if secret == "" {
		secret, _ = randomToken(32)
		log.Warn("ARCANO_JWT_SECRET not set, using an ephemeral signing key")
	}
	return &AuthService{
		db:          db,
		secret:      []byte(secret),
		accessTTL:   cfg.JWT.AccessTTL,
		refreshTTL:  cfg.JWT.RefreshTTL,
		frontendURL: cfg.FrontendURL,
		mailer:      mailer,
		now:         utcNow,
		log:         log,
	}
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(pw string) error {
	if len(pw) < 8 {
		return models.Invalid("password", "a senha deve ter pelo menos 8 caracteres")
	}
	if strings.Trim(pw, "0123456789") == "" {
		return models.Invalid("password", "a senha não pode ser inteiramente numérica")
	}
	return nil
}

// Register creates an inactive, unapproved user and emails the activation link.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	user := &models.User{
		Email:  strings.ToLower(strings.TrimSpace(in.Email)),
		Name:   in.Name,
		CPF:    in.CPF,
		Phone:  in.Phone,
		Patent: in.Patent,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	var n int64
	if err := s.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, models.Invalid("email", "e-mail já cadastrado")
	}
	if err := s.db.Model(&models.User{}).Where("cpf = ?", models.NormalizeCPF(user.CPF)).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, models.Invalid("cpf", "CPF já cadastrado")
	}

	if err := user.SetPassword(in.Password); err != nil {
		return nil, err
	}
	token, err := randomToken(32)
	if err != nil {
		return nil, err
	}
	user.ActivationToken = token

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.send(activationEmail(user, s.frontendURL))
	s.log.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// Activate confirms the email address and asks the admins for approval.
func (s *AuthService) Activate(ctx context.Context, uid, token string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("uuid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if user.IsActive || user.ActivationToken == "" || user.ActivationToken != token {
		return nil, ErrInvalidToken
	}

	if err := s.db.WithContext(WithActor(ctx, user.ID)).Model(&user).Updates(map[string]interface{}{
		"is_active":        true,
		"activation_token": "",
	}).Error; err != nil {
		return nil, err
	}
	user.IsActive = true
	user.ActivationToken = ""

	var admins []models.User
	if err := s.db.Where("(is_admin = ? OR is_superuser = ?) AND is_active = ? AND email <> ''", true, true, true).
		Find(&admins).Error; err != nil {
		s.log.WithError(err).Warn("failed to load admins for approval request")
	}
	for i := range admins {
		s.send(approvalRequestEmail(&admins[i], &user, s.frontendURL))
	}
	return &user, nil
}

// Approve grants access to an activated user.
func (s *AuthService) Approve(ctx context.Context, userID uint, actor *models.User) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	if user.IsApproved {
		return &user, nil
	}

	err := s.db.WithContext(WithActor(ctx, actor.ID)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("is_approved", true).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserChangeLog{
			UserID:      user.ID,
			ChangedByID: &actor.ID,
			FieldName:   "is_approved",
			OldValue:    "false",
			NewValue:    "true",
		}).Error
	})
	if err != nil {
		return nil, err
	}
	user.IsApproved = true

	s.send(approvedEmail(&user, s.frontendURL))
	return &user, nil
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, *models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TokenPair{}, nil, ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, nil, err
	}
	return s.completeLogin(ctx, &user, password)
}

// CPFLogin authenticates users granted special CPF access.
func (s *AuthService) CPFLogin(ctx context.Context, cpf, password string) (TokenPair, *models.User, error) {
	var user models.User
	err := s.db.Where("cpf = ?", models.NormalizeCPF(cpf)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TokenPair{}, nil, ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, nil, err
	}
	if !user.SpecialCPFAccess {
		return TokenPair{}, nil, fmt.Errorf("%w: CPF login not enabled for this user", permissions.ErrForbidden)
	}
	return s.completeLogin(ctx, &user, password)
}

func (s *AuthService) completeLogin(ctx context.Context, user *models.User, password string) (TokenPair, *models.User, error) {
	if err := s.verifyPassword(ctx, user, password); err != nil {
		return TokenPair{}, nil, err
	}
	if !user.IsActive {
		return TokenPair{}, nil, ErrAccountNotActivated
	}
	if !user.IsApproved && !user.IsSuperuser {
		return TokenPair{}, nil, ErrAccountPendingApproval
	}

	now := s.now()
	if err := s.db.WithContext(WithActor(ctx, user.ID)).Model(user).Update("last_login", now).Error; err != nil {
		return TokenPair{}, nil, err
	}
	user.LastLogin = &now

	pair, err := s.issuePair(user)
	if err != nil {
		return TokenPair{}, nil, err
	}
	return pair, user, nil
}

func (s *AuthService) verifyPassword(ctx context.Context, user *models.User, password string) error {
	now := s.now()
	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		return ErrAccountLocked
	}

	db := s.db.WithContext(ctx).Model(user)
	if !user.CheckPassword(password) {
		updates := map[string]interface{}{"failed_logins": user.FailedLogins + 1}
		if user.FailedLogins+1 >= maxFailedLogins {
			updates["locked_until"] = now.Add(lockDuration)
			updates["failed_logins"] = 0
			s.log.WithField("user_id", user.ID).Warn("account locked after repeated login failures")
		}
		if err := db.UpdateColumns(updates).Error; err != nil {
			return err
		}
		return ErrInvalidCredentials
	}

	if user.FailedLogins > 0 || user.LockedUntil != nil {
		if err := db.UpdateColumns(map[string]interface{}{"failed_logins": 0, "locked_until": nil}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) issuePair(user *models.User) (TokenPair, error) {
	access, err := s.sign(user, TokenAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(user, TokenRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) sign(user *models.User, typ string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		UUID: user.UUID,
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates signature, expiry, type (when typ is non-empty) and revocation.
func (s *AuthService) ParseToken(tokenString, typ string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}
	if typ != "" && claims.Type != typ {
		return nil, ErrInvalidToken
	}
	revoked, err := s.isRevoked(claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Authenticate resolves an access token to an active user.
func (s *AuthService) Authenticate(tokenString string) (*models.User, *Claims, error) {
	claims, err := s.ParseToken(tokenString, TokenAccess)
	if err != nil {
		return nil, nil, err
	}
	var user models.User
	if err := s.db.First(&user, claims.UserID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, ErrAccountNotActivated
	}
	return &user, claims, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(refresh string) (string, error) {
	claims, err := s.ParseToken(refresh, TokenRefresh)
	if err != nil {
		return "", err
	}
	var user models.User
	if err := s.db.First(&user, claims.UserID()).Error; err != nil {
		return "", ErrInvalidToken
	}
	if !user.CanLogin() {
		return "", ErrInvalidToken
	}
	return s.sign(&user, TokenAccess, s.accessTTL)
}

// Logout revokes the refresh token and, when given, the current access token.
func (s *AuthService) Logout(refresh string, access *Claims) error {
	claims, err := s.ParseToken(refresh, TokenRefresh)
	if err != nil {
		return err
	}
	if access != nil && access.UserID() != claims.UserID() {
		return ErrInvalidToken
	}
	if err := s.revoke(claims); err != nil {
		return err
	}
	if access != nil {
		return s.revoke(access)
	}
	return nil
}

func (s *AuthService) revoke(c *Claims) error {
	exp := s.now().Add(s.refreshTTL)
	if c.ExpiresAt != nil {
		exp = c.ExpiresAt.Time
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TokenBlacklist{JTI: c.ID, ExpiresAt: exp}).Error
}

func (s *AuthService) isRevoked(jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	var n int64
	if err := s.db.Model(&models.TokenBlacklist{}).Where("jti = ?", jti).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// PurgeBlacklist drops entries for tokens that have expired anyway.
func (s *AuthService) PurgeBlacklist() (int64, error) {
	res := s.db.Where("expires_at < ?", s.now()).Delete(&models.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

// ChangePassword replaces the password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, current, next string) error {
	if !user.CheckPassword(current) {
		return models.Invalid("current_password", "senha atual incorreta")
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}
	if err := user.SetPassword(next); err != nil {
		return err
	}
	return s.db.WithContext(WithActor(ctx, user.ID)).Model(user).Update("password_hash", user.PasswordHash).Error
}

// RequestPasswordReset emails a reset link. Unknown addresses succeed silently.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	var user models.User
	err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token, err := randomToken(32)
	if err != nil {
		return err
	}
	expires := s.now().Add(resetTokenTTL)
	if err := s.db.WithContext(ctx).Model(&user).UpdateColumns(map[string]interface{}{
		"reset_token":   token,
		"reset_expires": expires,
	}).Error; err != nil {
		return err
	}
	s.send(passwordResetEmail(&user, token, s.frontendURL))
	return nil
}

// ConfirmPasswordReset sets a new password using an emailed token.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, uid, token, password string) error {
	var user models.User
	if err := s.db.Where("uuid = ?", uid).First(&user).Error; err != nil {
		return ErrInvalidToken
	}
	if user.ResetToken == "" || user.ResetToken != token || user.ResetExpires == nil || !s.now().Before(*user.ResetExpires) {
		return ErrInvalidToken
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.db.WithContext(WithActor(ctx, user.ID)).Model(&user).Updates(map[string]interface{}{
		"password_hash": user.PasswordHash,
		"reset_token":   "",
		"reset_expires": nil,
		"failed_logins": 0,
		"locked_until":  nil,
	}).Error
}

func (s *AuthService) send(msg Email, err error) {
	if err != nil {
		s.log.WithError(err).Error("failed to render email")
		return
	}
	if s.mailer != nil && msg.To != "" {
		s.mailer.Enqueue(msg)
	}
}
