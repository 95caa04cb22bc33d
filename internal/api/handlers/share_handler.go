package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

// ShareHandler serves the public, token-addressed report links.
type ShareHandler struct {
	shares  *services.ShareService
	reports *services.ReportService
}

func NewShareHandler(shares *services.ShareService, reports *services.ReportService) *ShareHandler {
	return &ShareHandler{shares: shares, reports: reports}
}

// RegisterRoutes mounts endpoints that need no JWT.
func (h *ShareHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shares/:token", h.Info)
	rg.POST("/shares/:token/access", h.Access)
	rg.GET("/shares/:token/special", h.Special)
}

// Info godoc
// @Summary Describe a share link
// @Tags shares
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} services.ShareInfo
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Router /sac/shares/{token} [get]
func (h *ShareHandler) Info(c *gin.Context) {
	info, err := h.shares.Info(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Access godoc
// @Summary Open a protected share link
// @Tags shares
// @Accept json
// @Produce application/pdf
// @Param token path string true "Share token"
// @Param body body services.ShareCredentials true "Credentials"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Router /sac/shares/{token}/access [post]
func (h *ShareHandler) Access(c *gin.Context) {
	var creds services.ShareCredentials
	if !bindJSON(c, &creds) {
		return
	}
	share, err := h.shares.Access(c.Request.Context(), c.Param("token"), creds, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.send(c, share)
}

// Special godoc
// @Summary Open a special share link
// @Tags shares
// @Produce application/pdf
// @Param token path string true "Share token"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Router /sac/shares/{token}/special [get]
func (h *ShareHandler) Special(c *gin.Context) {
	share, err := h.shares.DirectAccess(c.Request.Context(), c.Param("token"), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.send(c, share)
}

func (h *ShareHandler) send(c *gin.Context, share *models.ReportShare) {
	if share.Report == nil {
		respondError(c, services.ErrNotFound)
		return
	}
	rc, err := h.reports.OpenPDF(c.Request.Context(), share.Report)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()
	sendPDF(c, rc, share.Report, "inline")
}
