package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationProvider is an external alert channel reached through a shoutrrr URL.
type NotificationProvider struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"` // discord, slack, telegram, smtp, generic
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`

	// Notification Preferences
	NotifyDamage  bool `json:"notify_damage"`
	NotifyReports bool `json:"notify_reports"`
	NotifyCustody bool `json:"notify_custody"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *NotificationProvider) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if strings.TrimSpace(n.Type) == "" {
		if i := strings.Index(n.URL, "://"); i > 0 {
			n.Type = n.URL[:i]
		} else {
			n.Type = "generic"
		}
	}
	return
}
