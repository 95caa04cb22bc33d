package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts the account and token endpoints. requireAuth guards
// the endpoints that act on the caller.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/users/", h.Register)
	rg.POST("/users/activation/", h.Activate)
	rg.POST("/users/reset_password/", h.ResetPassword)
	rg.POST("/users/reset_password_confirm/", h.ResetPasswordConfirm)
	rg.POST("/jwt/create/", h.Login)
	rg.POST("/jwt/refresh/", h.Refresh)
	rg.POST("/jwt/verify/", h.Verify)
	rg.POST("/special/cpf-login/", h.CPFLogin)

	authed := rg.Group("", requireAuth)
	authed.POST("/logout/", h.Logout)
	authed.POST("/users/set_password/", h.SetPassword)
	authed.POST("/users/:id/approve", middleware.RequireAdmin(), h.Approve)
}

// Register godoc
// @Summary Register an account
// @Description The account stays inactive until the e-mail link is used and an administrator approves it.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Account"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Router /auth/users/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type ActivationRequest struct {
	UID   string `json:"uid" binding:"required"`
	Token string `json:"token" binding:"required"`
}

// Activate godoc
// @Summary Activate an account from the e-mail link
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ActivationRequest true "Activation"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/users/activation/ [post]
func (h *AuthHandler) Activate(c *gin.Context) {
	var req ActivationRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.authService.Activate(c.Request.Context(), req.UID, req.Token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Conta ativada. Aguarde a aprovação de um administrador."})
}

// Approve godoc
// @Summary Approve an activated account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/users/{id}/approve [post]
func (h *AuthHandler) Approve(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	user, err := h.authService.Approve(c.Request.Context(), id, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Obtain an access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} services.TokenPair
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/jwt/create/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

type CPFLoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CPFLogin godoc
// @Summary Log in with CPF and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CPFLoginRequest true "Credentials"
// @Success 200 {object} services.TokenPair
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/special/cpf-login/ [post]
func (h *AuthHandler) CPFLogin(c *gin.Context) {
	var req CPFLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, _, err := h.authService.CPFLogin(c.Request.Context(), req.CPF, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Refresh godoc
// @Summary Exchange a refresh token for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} AccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/jwt/refresh/ [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AccessResponse{Access: access})
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// Verify godoc
// @Summary Check that a token is valid
// @Tags auth
// @Accept json
// @Produce json
// @Param body body VerifyRequest true "Token"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/jwt/verify/ [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.authService.ParseToken(req.Token, ""); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.Logout(req.Refresh, middleware.CurrentClaims(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// SetPassword godoc
// @Summary Change the caller password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SetPasswordRequest true "Passwords"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /auth/users/set_password/ [post]
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ChangePassword(c.Request.Context(), middleware.CurrentUser(c), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPassword always answers 204 so it never reveals whether an account exists.
// @Summary Request a password reset e-mail
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Account e-mail"
// @Success 204
// @Router /auth/users/reset_password/ [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ResetPasswordConfirmRequest struct {
	UID         string `json:"uid" binding:"required"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPasswordConfirm godoc
// @Summary Set a new password from the reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordConfirmRequest true "Reset"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /auth/users/reset_password_confirm/ [post]
func (h *AuthHandler) ResetPasswordConfirm(c *gin.Context) {
	var req ResetPasswordConfirmRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ConfirmPasswordReset(c.Request.Context(), req.UID, req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
