package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
	"github.com/arcanosig/arcano/backend/internal/services"
)

// ErrorResponse is the body of every error answer. Field names the invalid
// input on validation errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// MessageResponse acknowledges an action that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
	To      string `json:"to,omitempty"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

type AccessResponse struct {
	Access string `json:"access"`
}

type PDFURLResponse struct {
	PDFURL string `json:"pdf_url"`
}

// respondError maps a service error to its HTTP status.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, services.ErrAccountPendingApproval):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "account pending approval"})
	case errors.Is(err, permissions.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "record already exists"})
	case errors.Is(err, services.ErrShareExpired):
		c.JSON(http.StatusGone, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountNotActivated),
		errors.Is(err, services.ErrAccountLocked),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		middleware.GetRequestLogger(c).WithError(err).WithField("path", middleware.SanitizePath(c.Request.URL.Path)).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindJSON decodes the body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name, Field: name})
		return 0, false
	}
	return uint(id), true
}

// queryUint parses an optional numeric query parameter; absent means 0.
func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name, Field: name})
		return 0, false
	}
	return uint(v), true
}

// actorContext carries the caller into the audit history of the writes it causes.
func actorContext(c *gin.Context) context.Context {
	if u := middleware.CurrentUser(c); u != nil {
		return services.WithActor(c.Request.Context(), u.ID)
	}
	return c.Request.Context()
}

func requestMeta(c *gin.Context) services.RequestMeta {
	return services.RequestMeta{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}
