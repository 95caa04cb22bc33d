package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/services"
)

type HistoryHandler struct {
	service *services.AuditService
}

func NewHistoryHandler(service *services.AuditService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// List returns audit history, filtered by ?table= and ?record_id=.
// @Summary Audit history
// @Tags system
// @Produce json
// @Security BearerAuth
// @Param table query string false "Table name"
// @Param record_id query string false "Record ID"
// @Param limit query integer false "Maximum number returned"
// @Success 200 {array} models.HistoryRecord
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	records, err := h.service.List(c.Query("table"), c.Query("record_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
