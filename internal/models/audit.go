package models

import (
	"time"

	"gorm.io/datatypes"
)

// HistoryAction is the mutation captured in a HistoryRecord.
type HistoryAction string

const (
	HistoryCreate HistoryAction = "create"
	HistoryUpdate HistoryAction = "update"
	HistoryDelete HistoryAction = "delete"
)

// HistoryRecord is a JSON snapshot of an audited row after a mutation.
type HistoryRecord struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Table     string         `json:"table" gorm:"column:table_name;size:64;index:idx_history_record"`
	RecordID  string         `json:"record_id" gorm:"size:36;index:idx_history_record"`
	Action    HistoryAction  `json:"action" gorm:"size:10"`
	ActorID   *uint          `json:"actor_id,omitempty" gorm:"index"`
	Snapshot  datatypes.JSON `json:"snapshot" gorm:"type:json"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}

// EmailStatus is the delivery state of a queued email.
type EmailStatus string

const (
	EmailQueued EmailStatus = "queued"
	EmailSent   EmailStatus = "sent"
	EmailFailed EmailStatus = "failed"
)

// EmailLog tracks every message handed to the mail queue.
type EmailLog struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Recipient string      `json:"recipient" gorm:"index"`
	Subject   string      `json:"subject"`
	Status    EmailStatus `json:"status" gorm:"size:10;index"`
	Error     string      `json:"error,omitempty" gorm:"type:text"`
	SentAt    *time.Time  `json:"sent_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Setting is a key/value row grouped by category.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;size:100"`
	Value     string    `json:"value" gorm:"type:text"`
	Type      string    `json:"type" gorm:"size:20"` // string, int, bool
	Category  string    `json:"category" gorm:"size:50;index"`
	UpdatedAt time.Time `json:"updated_at"`
}
