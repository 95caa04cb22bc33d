package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type ReportHandler struct {
	reports *services.ReportService
	shares  *services.ShareService
}

func NewReportHandler(reports *services.ReportService, shares *services.ShareService) *ReportHandler {
	return &ReportHandler{reports: reports, shares: shares}
}

// RegisterRoutes expects rg to be authenticated.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports", h.List)
	rg.POST("/reports", h.Create)
	rg.GET("/reports/stats", h.Stats)
	rg.GET("/reports/:id", h.Get)
	rg.PUT("/reports/:id", h.Update)
	rg.PATCH("/reports/:id", h.Update)
	rg.DELETE("/reports/:id", h.Delete)
	rg.GET("/reports/:id/pdf-url", h.PDFURL)
	rg.GET("/reports/:id/download", h.Download)
	rg.GET("/reports/:id/view", h.View)
	rg.GET("/reports/:id/logs", h.Logs)

	rg.GET("/reports/:id/shares", h.ListShares)
	rg.POST("/reports/:id/shares", h.CreateShare)
	rg.POST("/reports/:id/special-link", h.SpecialLink)
	rg.DELETE("/reports/:id/shares/:share_id", h.DeactivateShare)
}

// List godoc
// @Summary List SAC reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param kind query string false "RELINT, RELATORIO or PEDIDO"
// @Param year query integer false "Report year"
// @Param analyst_id query integer false "Analyst user ID"
// @Success 200 {array} models.Report
// @Failure 400 {object} ErrorResponse
// @Router /sac/reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	analyst, ok := queryUint(c, "analyst_id")
	if !ok {
		return
	}
	year, ok := queryUint(c, "year")
	if !ok {
		return
	}
	list, err := h.reports.List(middleware.CurrentUser(c), services.ReportFilter{
		Kind:      models.ReportKind(strings.ToUpper(c.Query("kind"))),
		Year:      int(year),
		AnalystID: analyst,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// readReportBody accepts either a JSON body or a multipart form whose "data"
// field holds the JSON payload and whose optional "pdf" field holds the file.
func readReportBody(c *gin.Context, dst interface{}) (*services.PDFUpload, io.Closer, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil, bindJSON(c, dst)
	}
	if data := c.PostForm("data"); data != "" {
		if err := json.Unmarshal([]byte(data), dst); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data field: " + err.Error()})
			return nil, nil, false
		}
	}
	fh, err := c.FormFile("pdf")
	if err == http.ErrMissingFile {
		return nil, nil, true
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return &services.PDFUpload{Reader: f, Size: fh.Size, ContentType: fh.Header.Get("Content-Type")}, f, true
}

// Create godoc
// @Summary Create a SAC report
// @Description The number is assigned per kind and year.
// @Tags reports
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param body body services.ReportInput true "Report, or a multipart form with a data JSON field and a pdf file"
// @Success 201 {object} models.Report
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /sac/reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxPDFSize+1<<20)
	var req services.ReportInput
	pdf, closer, ok := readReportBody(c, &req)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}
	report, err := h.reports.Create(actorContext(c), middleware.CurrentUser(c), req, pdf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// Get godoc
// @Summary Get a SAC report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} models.Report
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.reports.View(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Update godoc
// @Summary Update a SAC report
// @Tags reports
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param body body services.ReportUpdate true "Changes, or a multipart form with a data JSON field and a pdf file"
// @Success 200 {object} models.Report
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id} [put]
// @Router /sac/reports/{id} [patch]
func (h *ReportHandler) Update(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxPDFSize+1<<20)
	var req services.ReportUpdate
	pdf, closer, ok := readReportBody(c, &req)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}
	report, err := h.reports.Update(actorContext(c), middleware.CurrentUser(c), c.Param("id"), req, pdf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Delete godoc
// @Summary Delete a SAC report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	if err := h.reports.Delete(actorContext(c), middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pdfReport loads a report for a caller allowed to read its PDF.
func (h *ReportHandler) pdfReport(c *gin.Context) (*models.Report, bool) {
	if !permissions.CanViewPDF(middleware.CurrentUser(c)) {
		respondError(c, permissions.ErrForbidden)
		return nil, false
	}
	report, err := h.reports.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return report, true
}

// PDFURL godoc
// @Summary Short-lived URL of the report PDF
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} PDFURLResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/pdf-url [get]
func (h *ReportHandler) PDFURL(c *gin.Context) {
	report, ok := h.pdfReport(c)
	if !ok {
		return
	}
	url, err := h.reports.PDFURL(report)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.reports.RecordAccess(c.Request.Context(), middleware.CurrentUser(c), report, models.ChangeAccess, requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PDFURLResponse{PDFURL: url})
}

// Download godoc
// @Summary Download the report PDF
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/download [get]
func (h *ReportHandler) Download(c *gin.Context) { h.stream(c, models.ChangeDownload, "attachment") }

// View godoc
// @Summary Show the report PDF inline
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/view [get]
func (h *ReportHandler) View(c *gin.Context) { h.stream(c, models.ChangeViewPDF, "inline") }

func (h *ReportHandler) stream(c *gin.Context, typ models.ReportChangeType, disposition string) {
	report, ok := h.pdfReport(c)
	if !ok {
		return
	}
	rc, err := h.reports.OpenPDF(c.Request.Context(), report)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()
	if err := h.reports.RecordAccess(c.Request.Context(), middleware.CurrentUser(c), report, typ, requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}
	sendPDF(c, rc, report, disposition)
}

// sendPDF streams rc. The file is named after the report number with the
// slash replaced, since it is not allowed in file names.
func sendPDF(c *gin.Context, rc io.Reader, report *models.Report, disposition string) {
	name := strings.ReplaceAll(report.NumberYear, "/", "_") + ".pdf"
	c.DataFromReader(http.StatusOK, -1, "application/pdf", rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("%s; filename=%q", disposition, name),
		"Cache-Control":       "no-store",
	})
}

// Logs godoc
// @Summary Change log of a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {array} models.ReportChangeLog
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/logs [get]
func (h *ReportHandler) Logs(c *gin.Context) {
	report, err := h.reports.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	logs, err := h.reports.Logs(middleware.CurrentUser(c), report)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Stats godoc
// @Summary Report counts per kind and year
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ReportStats
// @Router /sac/reports/stats [get]
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.reports.Stats(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// shareResponse exposes the special credentials once, on creation.
type shareResponse struct {
	*models.ReportShare
	SpecialPassword string `json:"special_password,omitempty"`
}

// CreateShare godoc
// @Summary Create a share link
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param body body services.ShareInput true "Share"
// @Success 201 {object} shareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/shares [post]
func (h *ReportHandler) CreateShare(c *gin.Context) {
	var req services.ShareInput
	if !bindJSON(c, &req) {
		return
	}
	h.createShare(c, req)
}

// SpecialLink godoc
// @Summary Create a special link with generated credentials
// @Description The generated password is only returned here.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 201 {object} shareResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/special-link [post]
func (h *ReportHandler) SpecialLink(c *gin.Context) {
	h.createShare(c, services.ShareInput{Kind: models.ShareSpecial})
}

func (h *ReportHandler) createShare(c *gin.Context, in services.ShareInput) {
	share, err := h.shares.Create(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shareResponse{ReportShare: share, SpecialPassword: share.SpecialPassword})
}

// ListShares godoc
// @Summary Share links of a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {array} models.ReportShare
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/shares [get]
func (h *ReportHandler) ListShares(c *gin.Context) {
	list, err := h.shares.List(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeactivateShare godoc
// @Summary Deactivate a share link
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param share_id path string true "Share ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sac/reports/{id}/shares/{share_id} [delete]
func (h *ReportHandler) DeactivateShare(c *gin.Context) {
	id, ok := paramUint(c, "share_id")
	if !ok {
		return
	}
	if err := h.shares.Deactivate(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
