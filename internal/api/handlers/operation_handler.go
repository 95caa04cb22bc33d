package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type OperationHandler struct {
	service *services.OperationService
}

func NewOperationHandler(service *services.OperationService) *OperationHandler {
	return &OperationHandler{service: service}
}

// RegisterRoutes expects rg to be authenticated. Writes need full operations access.
func (h *OperationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/operations", h.List)
	rg.GET("/operations/:id", h.Get)
	rg.GET("/operations/:id/teams", h.Teams)
	rg.GET("/operations/:id/summary", h.Summary)
	rg.GET("/operations/:id/resources", h.Resources)

	w := rg.Group("", middleware.RequireOperations())
	w.POST("/operations", h.Create)
	w.PUT("/operations/:id", h.Update)
	w.POST("/operations/:id/activate", h.Activate)
	w.POST("/operations/:id/deactivate", h.Deactivate)
}

// List godoc
// @Summary List operations
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param active query boolean false "Only active operations"
// @Success 200 {array} models.Operation
// @Router /oper/operations [get]
func (h *OperationHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Get an operation
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {object} models.Operation
// @Failure 404 {object} ErrorResponse
// @Router /oper/operations/{id} [get]
func (h *OperationHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	op, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

// Create godoc
// @Summary Create an operation
// @Tags operations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.OperationInput true "Operation"
// @Success 201 {object} models.Operation
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/operations [post]
func (h *OperationHandler) Create(c *gin.Context) {
	var req services.OperationInput
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.service.Create(actorContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, op)
}

// Update godoc
// @Summary Update an operation
// @Tags operations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Param body body services.OperationInput true "Operation"
// @Success 200 {object} models.Operation
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/operations/{id} [put]
func (h *OperationHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req services.OperationInput
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.service.Update(actorContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

// Activate godoc
// @Summary Activate an operation
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {object} models.Operation
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/operations/{id}/activate [post]
func (h *OperationHandler) Activate(c *gin.Context) { h.setActive(c, true) }

// Deactivate godoc
// @Summary Deactivate an operation
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {object} models.Operation
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/operations/{id}/deactivate [post]
func (h *OperationHandler) Deactivate(c *gin.Context) { h.setActive(c, false) }

func (h *OperationHandler) setActive(c *gin.Context, active bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	op, err := h.service.SetActive(actorContext(c), id, active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

// Teams godoc
// @Summary Teams of an operation
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {array} models.Team
// @Failure 404 {object} ErrorResponse
// @Router /oper/operations/{id}/teams [get]
func (h *OperationHandler) Teams(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	teams, err := h.service.Teams(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// Summary godoc
// @Summary Team and custody counts of an operation
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {object} services.OperationSummary
// @Failure 404 {object} ErrorResponse
// @Router /oper/operations/{id}/summary [get]
func (h *OperationHandler) Summary(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	sum, err := h.service.Summary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// Resources godoc
// @Summary Operation resource tree
// @Description Teams with commander, members and vehicle, and their custodies with items. Non-staff users see only their own teams.
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {object} services.OperationResources
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/operations/{id}/resources [get]
func (h *OperationHandler) Resources(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	res, err := h.service.Resources(middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
