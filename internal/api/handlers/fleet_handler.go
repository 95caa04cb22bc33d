package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/services"
)

// FleetHandler serves fuel logs and vehicle photos.
type FleetHandler struct {
	fuel   *services.FuelLogService
	photos *services.VehiclePhotoService
}

func NewFleetHandler(fuel *services.FuelLogService, photos *services.VehiclePhotoService) *FleetHandler {
	return &FleetHandler{fuel: fuel, photos: photos}
}

// RegisterRoutes expects rg to be authenticated; the services restrict
// non-staff users to the vehicle of their own team.
func (h *FleetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/fuel-logs", h.ListFuelLogs)
	rg.POST("/fuel-logs", h.CreateFuelLog)
	rg.GET("/fuel-logs/:id", h.GetFuelLog)
	rg.PUT("/fuel-logs/:id", h.UpdateFuelLog)
	rg.DELETE("/fuel-logs/:id", h.DeleteFuelLog)
	rg.GET("/vehicles/:id/fuel-summary", h.FuelSummary)

	rg.GET("/vehicle-photos", h.ListPhotos)
	rg.POST("/vehicles/:id/photos", h.UploadPhoto)
	rg.GET("/vehicle-photos/:id", h.GetPhoto)
	rg.GET("/vehicle-photos/:id/image", h.PhotoImage)
	rg.DELETE("/vehicle-photos/:id", h.DeletePhoto)
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return time.Time{}, false
	}
	return t, true
}

// ListFuelLogs godoc
// @Summary List fuel logs
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param veiculo_id query int false "Vehicle ID"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {array} models.FuelLog
// @Failure 400 {object} ErrorResponse
// @Router /oper/fuel-logs [get]
func (h *FleetHandler) ListFuelLogs(c *gin.Context) {
	var f services.FuelLogFilter
	var ok bool
	if f.VehicleID, ok = queryUint(c, "veiculo_id"); !ok {
		return
	}
	if f.From, ok = queryDate(c, "from"); !ok {
		return
	}
	if f.To, ok = queryDate(c, "to"); !ok {
		return
	}
	if !f.To.IsZero() {
		f.To = f.To.AddDate(0, 0, 1)
	}
	list, err := h.fuel.List(middleware.CurrentUser(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateFuelLog godoc
// @Summary Record a refuelling
// @Description The odometer may not be below the vehicle's current reading.
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.FuelLogInput true "Fuel log"
// @Success 201 {object} models.FuelLog
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/fuel-logs [post]
func (h *FleetHandler) CreateFuelLog(c *gin.Context) {
	var req services.FuelLogInput
	if !bindJSON(c, &req) {
		return
	}
	log, err := h.fuel.Create(actorContext(c), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// GetFuelLog godoc
// @Summary Get a fuel log
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fuel log ID"
// @Success 200 {object} models.FuelLog
// @Failure 404 {object} ErrorResponse
// @Router /oper/fuel-logs/{id} [get]
func (h *FleetHandler) GetFuelLog(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	log, err := h.fuel.Get(middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// UpdateFuelLog godoc
// @Summary Correct a fuel log
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fuel log ID"
// @Param body body services.FuelLogInput true "Fuel log"
// @Success 200 {object} models.FuelLog
// @Failure 400 {object} ErrorResponse
// @Router /oper/fuel-logs/{id} [put]
func (h *FleetHandler) UpdateFuelLog(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req services.FuelLogInput
	if !bindJSON(c, &req) {
		return
	}
	log, err := h.fuel.Update(actorContext(c), middleware.CurrentUser(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// DeleteFuelLog godoc
// @Summary Delete a fuel log
// @Tags fleet
// @Security BearerAuth
// @Param id path int true "Fuel log ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /oper/fuel-logs/{id} [delete]
func (h *FleetHandler) DeleteFuelLog(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.fuel.Delete(actorContext(c), middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FuelSummary godoc
// @Summary Fuel consumption of a vehicle
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} services.FuelSummary
// @Failure 403 {object} ErrorResponse
// @Router /oper/vehicles/{id}/fuel-summary [get]
func (h *FleetHandler) FuelSummary(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	sum, err := h.fuel.Summary(middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// ListPhotos godoc
// @Summary List vehicle photos
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param veiculo_id query int false "Vehicle ID"
// @Success 200 {array} models.VehiclePhoto
// @Router /oper/vehicle-photos [get]
func (h *FleetHandler) ListPhotos(c *gin.Context) {
	vehicleID, ok := queryUint(c, "veiculo_id")
	if !ok {
		return
	}
	list, err := h.photos.List(middleware.CurrentUser(c), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UploadPhoto godoc
// @Summary Upload a photo of a vehicle out of service
// @Tags fleet
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param imagem formData file true "jpg, jpeg, png or webp"
// @Param descricao formData string true "What the photo documents"
// @Param data_foto formData string false "RFC 3339 time the photo was taken"
// @Success 201 {object} models.VehiclePhoto
// @Failure 400 {object} ErrorResponse
// @Router /oper/vehicles/{id}/photos [post]
func (h *FleetHandler) UploadPhoto(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxPhotoSize+1<<20)
	fh, err := c.FormFile("imagem")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imagem is required", "field": "imagem"})
		return
	}
	up := services.PhotoUpload{Size: fh.Size, Filename: fh.Filename, Description: c.PostForm("descricao")}
	if raw := c.PostForm("data_foto"); raw != "" {
		taken, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data_foto", "field": "data_foto"})
			return
		}
		up.TakenAt = &taken
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()
	up.Reader = f

	photo, err := h.photos.Upload(actorContext(c), middleware.CurrentUser(c), id, up)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// GetPhoto godoc
// @Summary Get a vehicle photo
// @Tags fleet
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} models.VehiclePhoto
// @Failure 404 {object} ErrorResponse
// @Router /oper/vehicle-photos/{id} [get]
func (h *FleetHandler) GetPhoto(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	photo, err := h.photos.Get(middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

// PhotoImage godoc
// @Summary Stream the image of a vehicle photo
// @Tags fleet
// @Produce image/jpeg,image/png,image/webp
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /oper/vehicle-photos/{id}/image [get]
func (h *FleetHandler) PhotoImage(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	photo, err := h.photos.Get(middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	rc, err := h.photos.Open(c.Request.Context(), photo)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()
	c.DataFromReader(http.StatusOK, photo.Size, photo.ContentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", fmt.Sprintf("viatura-%d-%d", photo.VehicleID, photo.ID)),
		"Cache-Control":       "private, max-age=300",
	})
}

// DeletePhoto godoc
// @Summary Delete a vehicle photo
// @Tags fleet
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /oper/vehicle-photos/{id} [delete]
func (h *FleetHandler) DeletePhoto(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.photos.Delete(actorContext(c), middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
