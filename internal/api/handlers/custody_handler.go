package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type CustodyHandler struct {
	service *services.CustodyService
}

func NewCustodyHandler(service *services.CustodyService) *CustodyHandler {
	return &CustodyHandler{service: service}
}

// RegisterRoutes expects rg to be authenticated; the service enforces
// per-team permissions.
func (h *CustodyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/custodies", h.List)
	rg.POST("/custodies", h.Create)
	rg.GET("/custodies/summary", h.Summary)
	rg.GET("/custodies/:id", h.Get)
	rg.POST("/custodies/:id/return", h.ReturnAll)
	rg.GET("/custodies/:id/return-status", h.ReturnStatus)

	rg.POST("/custody-items", h.AddItem)
	rg.POST("/custody-items/:id/return", h.ReturnItem)
	rg.POST("/custody-items/:id/damage", h.ReportDamage)

	rg.GET("/custody-acceptances", h.ListAcceptances)
	rg.GET("/custody-acceptances/pending-count", h.PendingCount)
	rg.POST("/custody-acceptances/:protocol/confirm", h.Confirm)
	rg.POST("/custody-acceptances/:protocol/reject", h.Reject)
}

// List godoc
// @Summary List custodies
// @Tags custody
// @Produce json
// @Security BearerAuth
// @Param operation_id query integer false "Operation ID"
// @Param team_id query integer false "Team ID"
// @Param officer_id query integer false "Officer ID"
// @Param status query string false "active or returned"
// @Param acceptance query string false "Acceptance status"
// @Success 200 {array} models.Custody
// @Failure 400 {object} ErrorResponse
// @Router /oper/custodies [get]
func (h *CustodyHandler) List(c *gin.Context) {
	var f services.CustodyFilter
	var ok bool
	if f.OperationID, ok = queryUint(c, "operation_id"); !ok {
		return
	}
	if f.TeamID, ok = queryUint(c, "team_id"); !ok {
		return
	}
	if f.OfficerID, ok = queryUint(c, "officer_id"); !ok {
		return
	}
	f.Status = c.Query("status")
	f.Acceptance = models.AcceptanceStatus(c.Query("acceptance"))

	list, err := h.service.List(middleware.CurrentUser(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Open a custody
// @Tags custody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CustodyInput true "Custody"
// @Success 201 {object} models.Custody
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/custodies [post]
func (h *CustodyHandler) Create(c *gin.Context) {
	var req services.CustodyInput
	if !bindJSON(c, &req) {
		return
	}
	custody, err := h.service.Create(actorContext(c), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, custody)
}

// Summary godoc
// @Summary Custody counts visible to the caller
// @Tags custody
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.CustodySummary
// @Router /oper/custodies/summary [get]
func (h *CustodyHandler) Summary(c *gin.Context) {
	sum, err := h.service.Summary(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// load fetches a custody the caller may see.
func (h *CustodyHandler) load(c *gin.Context) (*models.Custody, bool) {
	custody, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if err := h.service.Authorize(middleware.CurrentUser(c), custody); err != nil {
		respondError(c, err)
		return nil, false
	}
	return custody, true
}

// Get godoc
// @Summary Get a custody
// @Tags custody
// @Produce json
// @Security BearerAuth
// @Param id path string true "Custody ID"
// @Success 200 {object} models.Custody
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/custodies/{id} [get]
func (h *CustodyHandler) Get(c *gin.Context) {
	custody, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, custody)
}

// ReturnStatus godoc
// @Summary Returned and pending items of a custody
// @Tags custody
// @Produce json
// @Security BearerAuth
// @Param id path string true "Custody ID"
// @Success 200 {object} services.ReturnStatus
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/custodies/{id}/return-status [get]
func (h *CustodyHandler) ReturnStatus(c *gin.Context) {
	custody, ok := h.load(c)
	if !ok {
		return
	}
	st, err := h.service.ReturnStatus(custody.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// ReturnAll godoc
// @Summary Return every pending item
// @Tags custody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Custody ID"
// @Param body body notesRequest true "Notes"
// @Success 200 {object} models.Custody
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/custodies/{id}/return [post]
func (h *CustodyHandler) ReturnAll(c *gin.Context) {
	var req notesRequest
	if !bindJSON(c, &req) {
		return
	}
	custody, err := h.service.ReturnAll(actorContext(c), middleware.CurrentUser(c), c.Param("id"), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, custody)
}

type addItemRequest struct {
	CustodyID string `json:"custody_id" binding:"required"`
	services.ItemInput
}

// AddItem godoc
// @Summary Add an item to a custody
// @Tags custody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body addItemRequest true "Item"
// @Success 201 {object} models.CustodyItem
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/custody-items [post]
func (h *CustodyHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.AddItem(actorContext(c), middleware.CurrentUser(c), req.CustodyID, req.ItemInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

type conditionRequest struct {
	Status            models.EquipmentStatus `json:"status"`
	DamageDescription string                 `json:"damage_description"`
}

// ReturnItem godoc
// @Summary Return an item
// @Tags custody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param body body conditionRequest true "Condition"
// @Success 200 {object} services.ItemReturn
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/custody-items/{id}/return [post]
func (h *CustodyHandler) ReturnItem(c *gin.Context) {
	var req conditionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.service.ReturnItem(actorContext(c), middleware.CurrentUser(c), c.Param("id"), req.Status, req.DamageDescription)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReportDamage godoc
// @Summary Report damage to an item
// @Tags custody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param body body conditionRequest true "Condition"
// @Success 200 {object} models.CustodyItem
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/custody-items/{id}/damage [post]
func (h *CustodyHandler) ReportDamage(c *gin.Context) {
	var req conditionRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.ReportDamage(actorContext(c), middleware.CurrentUser(c), c.Param("id"), req.Status, req.DamageDescription)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListAcceptances godoc
// @Summary Custody acceptances of the caller
// @Tags custody
// @Produce json
// @Security BearerAuth
// @Param status query string false "Acceptance status"
// @Success 200 {array} models.CustodyAcceptance
// @Router /oper/custody-acceptances [get]
func (h *CustodyHandler) ListAcceptances(c *gin.Context) {
	list, err := h.service.ListAcceptances(middleware.CurrentUser(c), models.AcceptanceStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PendingCount godoc
// @Summary Number of acceptances awaiting the caller
// @Tags custody
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CountResponse
// @Router /oper/custody-acceptances/pending-count [get]
func (h *CustodyHandler) PendingCount(c *gin.Context) {
	n, err := h.service.PendingAcceptanceCount(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: n})
}

// Confirm godoc
// @Summary Confirm receipt of a custody
// @Tags custody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param protocol path string true "Acceptance protocol"
// @Param body body notesRequest true "Notes"
// @Success 200 {object} models.CustodyAcceptance
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/custody-acceptances/{protocol}/confirm [post]
func (h *CustodyHandler) Confirm(c *gin.Context) { h.decide(c, h.service.ConfirmAcceptance) }

// Reject godoc
// @Summary Reject a custody
// @Tags custody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param protocol path string true "Acceptance protocol"
// @Param body body notesRequest true "Reason"
// @Success 200 {object} models.CustodyAcceptance
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/custody-acceptances/{protocol}/reject [post]
func (h *CustodyHandler) Reject(c *gin.Context) { h.decide(c, h.service.RejectAcceptance) }

type decision func(ctx context.Context, actor *models.User, protocol, notes, ip string) (*models.CustodyAcceptance, error)

func (h *CustodyHandler) decide(c *gin.Context, fn decision) {
	var req notesRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	acc, err := fn(actorContext(c), middleware.CurrentUser(c), c.Param("protocol"), req.Notes, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}
