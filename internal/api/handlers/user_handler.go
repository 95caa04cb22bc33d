package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes expects rg to be authenticated.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me/", h.Me)
	rg.PATCH("/users/me/", h.UpdateMe)

	admin := rg.Group("", middleware.RequireAdmin())
	admin.GET("/users/", h.List)
	admin.GET("/users/:id", h.Get)
	admin.PATCH("/users/:id/access", h.UpdateAccess)
	admin.GET("/users/:id/changes", h.ChangeLog)
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /auth/users/me/ [get]
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// UpdateMe godoc
// @Summary Update the caller profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProfileInput true "Profile"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Router /auth/users/me/ [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req services.ProfileInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.UpdateProfile(actorContext(c), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param pending query boolean false "Only accounts awaiting approval"
// @Success 200 {array} models.User
// @Failure 403 {object} ErrorResponse
// @Router /auth/users/ [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Query("pending") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Router /auth/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	user, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateAccess godoc
// @Summary Change the access profile of a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body services.AccessInput true "Access"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/users/{id}/access [patch]
func (h *UserHandler) UpdateAccess(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req services.AccessInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.UpdateAccess(actorContext(c), id, req, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangeLog godoc
// @Summary Access changes of a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} models.UserChangeLog
// @Failure 404 {object} ErrorResponse
// @Router /auth/users/{id}/changes [get]
func (h *UserHandler) ChangeLog(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	logs, err := h.service.ChangeLog(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
