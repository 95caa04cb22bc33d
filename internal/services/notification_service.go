package services

import (
	"errors"
	"fmt"
	"net"
	neturl "net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/containrrr/shoutrrr"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/metrics"
	"github.com/arcanosig/arcano/backend/internal/models"
)

// External alert categories matched against provider preferences.
const (
	AlertDamage  = "damage"
	AlertReport  = "report"
	AlertCustody = "custody"
	AlertTest    = "test"
)

// Publisher pushes a payload to a connected user.
type Publisher interface {
	Broadcast(userID uint, payload any)
}

type NotificationService struct {
	DB        *gorm.DB
	publisher Publisher
	send      func(url, message string) error
	now       func() time.Time
	wg        sync.WaitGroup
	log       *logrus.Entry
}

func NewNotificationService(db *gorm.DB, publisher Publisher) *NotificationService {
	return &NotificationService{
		DB:        db,
		publisher: publisher,
		send:      func(url, message string) error { return shoutrrr.Send(url, message) },
		now:       utcNow,
		log:       logger.Component("notifications"),
	}
}

var discordWebhookRegex = regexp.MustCompile(`^https://discord(?:app)?\.com/api/webhooks/(\d+)/([a-zA-Z0-9_-]+)`)

func normalizeURL(serviceType, rawURL string) string {
	if serviceType == "discord" {
		matches := discordWebhookRegex.FindStringSubmatch(rawURL)
		if len(matches) == 3 {
			return fmt.Sprintf("discord://%s@%s", matches[2], matches[1])
		}
	}
	return rawURL
}

// Internal Notifications (DB)

// Create stores n using db, which may be the caller's transaction.
func (s *NotificationService) Create(db *gorm.DB, n *models.Notification) error {
	if !n.Type.Valid() {
		return models.Invalid("type", "tipo de notificação inválido")
	}
	if err := db.Create(n).Error; err != nil {
		return err
	}
	metrics.IncNotification(string(n.Type))
	return nil
}

// ListFilter narrows the notifications of a user.
type ListFilter struct {
	UnreadOnly bool
	Type       models.NotificationType
	Limit      int
}

func (s *NotificationService) List(userID uint, f ListFilter) ([]models.Notification, error) {
	var notifications []models.Notification
	query := s.DB.Where("user_id = ?", userID).Order("created_at desc")
	if f.UnreadOnly {
		query = query.Where("read = ?", false)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	result := query.Find(&notifications)
	return notifications, result.Error
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var n int64
	err := s.DB.Model(&models.Notification{}).Where("user_id = ? AND read = ?", userID, false).Count(&n).Error
	return n, err
}

// TypeCount is the per-type tally returned by CountByType.
type TypeCount struct {
	Type   models.NotificationType `json:"type"`
	Total  int64                   `json:"total"`
	Unread int64                   `json:"unread"`
}

func (s *NotificationService) CountByType(userID uint) ([]TypeCount, error) {
	var out []TypeCount
	err := s.DB.Model(&models.Notification{}).
		Select("type, COUNT(*) AS total, SUM(CASE WHEN read = ? THEN 1 ELSE 0 END) AS unread", false).
		Where("user_id = ?", userID).
		Group("type").Order("type").
		Scan(&out).Error
	return out, err
}

func (s *NotificationService) get(userID uint, id string) (*models.Notification, error) {
	var n models.Notification
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NotificationService) MarkAsRead(userID uint, id string) (*models.Notification, error) {
	n, err := s.get(userID, id)
	if err != nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}
	now := s.now()
	if err := s.DB.Model(n).Updates(map[string]interface{}{"read": true, "read_at": now}).Error; err != nil {
		return nil, err
	}
	n.Read, n.ReadAt = true, &now
	return n, nil
}

func (s *NotificationService) MarkAsUnread(userID uint, id string) (*models.Notification, error) {
	n, err := s.get(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(n).Updates(map[string]interface{}{"read": false, "read_at": nil}).Error; err != nil {
		return nil, err
	}
	n.Read, n.ReadAt = false, nil
	return n, nil
}

func (s *NotificationService) MarkAllAsRead(userID uint) (int64, error) {
	res := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]interface{}{"read": true, "read_at": s.now()})
	return res.RowsAffected, res.Error
}

// MarkRelatedAsRead marks unread notifications of userID that reference the
// given object as read at exactly at. It runs on db, usually the caller's transaction.
func (s *NotificationService) MarkRelatedAsRead(db *gorm.DB, userID uint, nType models.NotificationType, objectType, objectID string, at time.Time) (int64, error) {
	res := db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ? AND object_type = ? AND object_id = ? AND read = ?", userID, nType, objectType, objectID, false).
		Updates(map[string]interface{}{"read": true, "read_at": at})
	return res.RowsAffected, res.Error
}

// Publish pushes notifications to connected clients. Call after commit.
func (s *NotificationService) Publish(list []models.Notification) {
	if s.publisher == nil {
		return
	}
	for i := range list {
		s.publisher.Broadcast(list[i].UserID, map[string]any{"event": "notification", "notification": list[i]})
	}
}

// External Notifications (Shoutrrr)

// SendExternal delivers title/message to every enabled provider subscribed to category.
func (s *NotificationService) SendExternal(category, title, message string) {
	var providers []models.NotificationProvider
	if err := s.DB.Where("enabled = ?", true).Find(&providers).Error; err != nil {
		s.log.WithError(err).Error("failed to fetch notification providers")
		return
	}

	for _, provider := range providers {
		if !wantsAlert(provider, category) {
			continue
		}

		s.wg.Add(1)
		go func(p models.NotificationProvider) {
			defer s.wg.Done()
			url := normalizeURL(p.Type, p.URL)
			if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
				if _, err := validateWebhookURL(url); err != nil {
					s.log.WithField("provider", p.Name).Warn("skipping notification due to invalid destination")
					return
				}
			}
			msg := fmt.Sprintf("%s\n\n%s", title, message)
			if err := s.send(url, msg); err != nil {
				s.log.WithError(err).WithField("provider", p.Name).Error("failed to send notification")
			}
		}(provider)
	}
}

// Wait blocks until in-flight external alerts finish.
func (s *NotificationService) Wait() { s.wg.Wait() }

func wantsAlert(p models.NotificationProvider, category string) bool {
	switch category {
	case AlertDamage:
		return p.NotifyDamage
	case AlertReport:
		return p.NotifyReports
	case AlertCustody:
		return p.NotifyCustody
	case AlertTest:
		return true
	default:
		return false
	}
}

// isPrivateIP returns true for RFC1918, loopback and link-local addresses.
func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsPrivate() {
		return true
	}
	return false
}

// validateWebhookURL parses and validates webhook URLs and ensures
// the resolved addresses are not private/local.
func validateWebhookURL(raw string) (*neturl.URL, error) {
	u, err := neturl.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return nil, errors.New("missing host")
	}
	if host == "localhost" || host == "127.0.0.1" || host == "::1" {
		return u, nil
	}

	ips, err := net.LookupIP(host)
	if err != nil {
		return nil, fmt.Errorf("dns lookup failed: %w", err)
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return nil, fmt.Errorf("disallowed host IP: %s", ip.String())
		}
	}
	return u, nil
}

// Providers

func (s *NotificationService) ListProviders() ([]models.NotificationProvider, error) {
	var list []models.NotificationProvider
	err := s.DB.Order("name").Find(&list).Error
	return list, err
}

func (s *NotificationService) CreateProvider(p *models.NotificationProvider) error {
	if strings.TrimSpace(p.Name) == "" {
		return models.Invalid("name", "nome é obrigatório")
	}
	if _, err := shoutrrr.CreateSender(normalizeURL(p.Type, p.URL)); err != nil {
		return models.Invalid("url", fmt.Sprintf("URL de notificação inválida: %v", err))
	}
	return s.DB.Create(p).Error
}

func (s *NotificationService) DeleteProvider(id string) error {
	res := s.DB.Delete(&models.NotificationProvider{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *NotificationService) TestProvider(provider models.NotificationProvider) error {
	url := normalizeURL(provider.Type, provider.URL)
	return s.send(url, "Notificação de teste do ARCANO")
}
