package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type NotificationProviderHandler struct {
	service *services.NotificationService
}

func NewNotificationProviderHandler(service *services.NotificationService) *NotificationProviderHandler {
	return &NotificationProviderHandler{service: service}
}

// RegisterRoutes expects rg to be restricted to admins.
func (h *NotificationProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notification-providers", h.List)
	rg.POST("/notification-providers", h.Create)
	rg.POST("/notification-providers/test", h.Test)
	rg.DELETE("/notification-providers/:id", h.Delete)
}

// List godoc
// @Summary List notification providers
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.NotificationProvider
// @Failure 403 {object} ErrorResponse
// @Router /oper/notification-providers [get]
func (h *NotificationProviderHandler) List(c *gin.Context) {
	providers, err := h.service.ListProviders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// Create godoc
// @Summary Add a notification provider
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.NotificationProvider true "Provider"
// @Success 201 {object} models.NotificationProvider
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/notification-providers [post]
func (h *NotificationProviderHandler) Create(c *gin.Context) {
	var provider models.NotificationProvider
	if !bindJSON(c, &provider) {
		return
	}
	provider.ID = ""
	if err := h.service.CreateProvider(&provider); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, provider)
}

// Delete godoc
// @Summary Remove a notification provider
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/notification-providers/{id} [delete]
func (h *NotificationProviderHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteProvider(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Provider deleted"})
}

// Test godoc
// @Summary Send a test message through a provider
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.NotificationProvider true "Provider"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/notification-providers/test [post]
func (h *NotificationProviderHandler) Test(c *gin.Context) {
	var provider models.NotificationProvider
	if !bindJSON(c, &provider) {
		return
	}
	if err := h.service.TestProvider(provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Test notification sent"})
}
