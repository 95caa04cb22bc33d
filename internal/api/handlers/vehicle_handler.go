package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type VehicleHandler struct {
	service *services.VehicleService
}

func NewVehicleHandler(service *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.List)
	rg.GET("/vehicles/:id", h.Get)

	w := rg.Group("", middleware.RequireOperations())
	w.POST("/vehicles", h.Create)
	w.PUT("/vehicles/:id", h.Update)
	w.DELETE("/vehicles/:id", h.Delete)
}

// List godoc
// @Summary List vehicles
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param available query boolean false "Only operational vehicles without a team"
// @Success 200 {array} models.Vehicle
// @Router /oper/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Query("available") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Get a vehicle
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} ErrorResponse
// @Router /oper/vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	v, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Create godoc
// @Summary Register a vehicle
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.Vehicle true "Vehicle"
// @Success 201 {object} models.Vehicle
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var v models.Vehicle
	if !bindJSON(c, &v) {
		return
	}
	v.ID = 0
	if err := h.service.Create(actorContext(c), &v); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Update godoc
// @Summary Update a vehicle
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param body body models.Vehicle true "Vehicle"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var in models.Vehicle
	if !bindJSON(c, &in) {
		return
	}
	v, err := h.service.Update(actorContext(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete godoc
// @Summary Delete a vehicle with its fuel logs and photos
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(actorContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
