package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationCustodyPending   NotificationType = "cautela_pendente"
	NotificationReturnPending    NotificationType = "devolucao_pendente"
	NotificationReturnConfirmed  NotificationType = "devolucao_confirmada"
	NotificationEquipmentDamaged NotificationType = "equipamento_danificado"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationCustodyPending, NotificationReturnPending, NotificationReturnConfirmed, NotificationEquipmentDamaged:
		return true
	}
	return false
}

// Object types a notification may reference.
const (
	ObjectCustody    = "cautela"
	ObjectItem       = "item"
	ObjectAcceptance = "aceite"
)

type Notification struct {
	ID         string           `gorm:"primaryKey;size:36" json:"id"`
	UserID     uint             `gorm:"index" json:"user_id"`
	Type       NotificationType `gorm:"size:30;index" json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Read       bool             `gorm:"index" json:"read"`
	ReadAt     *time.Time       `json:"read_at,omitempty"`
	Link       string           `json:"link,omitempty"`
	ObjectID   string           `gorm:"size:36;index" json:"object_id,omitempty"`
	ObjectType string           `gorm:"size:10" json:"object_type,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}
