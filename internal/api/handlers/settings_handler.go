package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/services"
)

const maskedPassword = "********"

// SMTPSender is the part of the mail service the settings endpoints need.
type SMTPSender interface {
	GetSMTPConfig() (*services.SMTPConfig, error)
	SaveSMTPConfig(cfg *services.SMTPConfig) error
	IsConfigured() bool
	SendEmail(to, subject, htmlBody string) error
}

type SettingsHandler struct {
	mail SMTPSender
}

func NewSettingsHandler(mail SMTPSender) *SettingsHandler {
	return &SettingsHandler{mail: mail}
}

// RegisterRoutes expects rg to be restricted to admins.
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/smtp", h.GetSMTPConfig)
	rg.PUT("/settings/smtp", h.UpdateSMTPConfig)
	rg.POST("/settings/smtp/test", h.SendTestEmail)
}

// SMTPSettingsResponse is the stored SMTP configuration with the password masked.
type SMTPSettingsResponse struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FromAddress string `json:"from_address"`
	Encryption  string `json:"encryption"`
	Configured  bool   `json:"configured"`
}

// GetSMTPConfig returns the effective SMTP settings with the password masked.
// @Summary SMTP settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SMTPSettingsResponse
// @Failure 403 {object} ErrorResponse
// @Router /settings/smtp [get]
func (h *SettingsHandler) GetSMTPConfig(c *gin.Context) {
	cfg, err := h.mail.GetSMTPConfig()
	if err != nil {
		respondError(c, err)
		return
	}
	password := ""
	if cfg.Password != "" {
		password = maskedPassword
	}
	c.JSON(http.StatusOK, SMTPSettingsResponse{
		Host:        cfg.Host,
		Port:        cfg.Port,
		Username:    cfg.Username,
		Password:    password,
		FromAddress: cfg.FromAddress,
		Encryption:  cfg.Encryption,
		Configured:  h.mail.IsConfigured(),
	})
}

type smtpRequest struct {
	Host        string `json:"host" binding:"required"`
	Port        int    `json:"port" binding:"required,min=1,max=65535"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FromAddress string `json:"from_address" binding:"required,email"`
	Encryption  string `json:"encryption" binding:"omitempty,oneof=none ssl starttls"`
}

// UpdateSMTPConfig stores SMTP settings. Sending the masked password keeps the stored one.
// @Summary Save SMTP settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body smtpRequest true "Settings"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /settings/smtp [put]
func (h *SettingsHandler) UpdateSMTPConfig(c *gin.Context) {
	var req smtpRequest
	if !bindJSON(c, &req) {
		return
	}
	current, err := h.mail.GetSMTPConfig()
	if err != nil {
		respondError(c, err)
		return
	}
	password := req.Password
	if password == maskedPassword {
		password = current.Password
	}
	encryption := req.Encryption
	if encryption == "" {
		encryption = "starttls"
	}
	cfg := &services.SMTPConfig{
		Host:        strings.TrimSpace(req.Host),
		Port:        req.Port,
		Username:    req.Username,
		Password:    password,
		FromAddress: req.FromAddress,
		Encryption:  encryption,
	}
	if err := h.mail.SaveSMTPConfig(cfg); err != nil {
		respondError(c, err)
		return
	}
	middleware.GetRequestLogger(c).WithField("host", cfg.Host).Info("SMTP settings updated")
	c.JSON(http.StatusOK, MessageResponse{Message: "SMTP settings saved"})
}

type testEmailRequest struct {
	To string `json:"to" binding:"omitempty,email"`
}

// SendTestEmail sends a message synchronously, to the caller unless "to" is given.
// @Summary Send a test e-mail
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body testEmailRequest true "Recipient"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /settings/smtp/test [post]
func (h *SettingsHandler) SendTestEmail(c *gin.Context) {
	var req testEmailRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	to := req.To
	if to == "" {
		to = middleware.CurrentUser(c).Email
	}
	if !h.mail.IsConfigured() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SMTP is not configured"})
		return
	}
	if err := h.mail.SendEmail(to, "ARCANO - e-mail de teste", "<p>As configurações de e-mail do ARCANO estão funcionando.</p>"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Test email sent", To: to})
}
