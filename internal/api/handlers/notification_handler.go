package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

const wsPingInterval = 25 * time.Second

type NotificationHandler struct {
	service  *services.NotificationService
	realtime *services.RealtimeHub
	upgrader websocket.Upgrader
}

// NewNotificationHandler accepts websocket upgrades from origins and from the
// API's own host. Requests without an Origin header are not browsers.
func NewNotificationHandler(service *services.NotificationService, realtime *services.RealtimeHub, origins ...string) *NotificationHandler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &NotificationHandler{
		service:  service,
		realtime: realtime,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowed[origin] {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && strings.EqualFold(u.Host, r.Host)
			},
		},
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.GET("/notifications/unread-count", h.UnreadCount)
	rg.GET("/notifications/by-type", h.ByType)
	rg.GET("/notifications/ws", h.Stream)
	rg.PATCH("/notifications/read-all", h.MarkAllAsRead)
	rg.PATCH("/notifications/:id/read", h.MarkAsRead)
	rg.PATCH("/notifications/:id/unread", h.MarkAsUnread)
}

// List godoc
// @Summary Notifications of the caller
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query boolean false "Only unread"
// @Param type query string false "Notification type"
// @Param limit query integer false "Maximum number returned"
// @Success 200 {array} models.Notification
// @Failure 400 {object} ErrorResponse
// @Router /oper/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	f := services.ListFilter{
		UnreadOnly: c.Query("unread") == "true",
		Type:       models.NotificationType(c.Query("type")),
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		f.Limit = n
	}
	list, err := h.service.List(middleware.CurrentUser(c).ID, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UnreadCount godoc
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CountResponse
// @Router /oper/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, err := h.service.UnreadCount(middleware.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: n})
}

// ByType godoc
// @Summary Unread notifications per type
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.TypeCount
// @Router /oper/notifications/by-type [get]
func (h *NotificationHandler) ByType(c *gin.Context) {
	counts, err := h.service.CountByType(middleware.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// MarkAsRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.Notification
// @Failure 404 {object} ErrorResponse
// @Router /oper/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	n, err := h.service.MarkAsRead(middleware.CurrentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// MarkAsUnread godoc
// @Summary Mark a notification unread
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.Notification
// @Failure 404 {object} ErrorResponse
// @Router /oper/notifications/{id}/unread [patch]
func (h *NotificationHandler) MarkAsUnread(c *gin.Context) {
	n, err := h.service.MarkAsUnread(middleware.CurrentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// MarkAllAsRead godoc
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UpdatedResponse
// @Router /oper/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	n, err := h.service.MarkAllAsRead(middleware.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdatedResponse{Updated: n})
}

// Stream upgrades to a websocket that receives the user's new notifications.
// @Summary Stream notifications over a websocket
// @Description Browsers cannot set headers on websocket upgrades, so the token may travel in the query string.
// @Tags notifications
// @Security BearerAuth
// @Param token query string false "Access token, accepted on websocket upgrades only"
// @Success 101
// @Failure 401 {object} ErrorResponse
// @Router /oper/notifications/ws [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	user := middleware.CurrentUser(c)
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}
	client := services.NewWSClient(user.ID, conn)
	h.realtime.Register(client)
	log := middleware.GetRequestLogger(c)
	log.Debug("websocket connected")

	done := make(chan struct{})
	go func() {
		t := time.NewTicker(wsPingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := client.Ping(); err != nil {
					h.realtime.Unregister(client)
					return
				}
			}
		}
	}()

	_ = client.Listen()
	close(done)
	h.realtime.Unregister(client)
	log.Debug("websocket disconnected")
}
