package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Operation is a time-boxed policing operation that teams are assigned to.
type Operation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:200;not null;uniqueIndex:idx_operation_name_start"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   time.Time `json:"start_date" gorm:"type:date;uniqueIndex:idx_operation_name_start"`
	EndDate     time.Time `json:"end_date" gorm:"type:date"`
	IsActive    bool      `json:"is_active" gorm:"index"`
	Teams       []Team    `json:"teams,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (o *Operation) BeforeSave(tx *gorm.DB) error {
	o.Name = strings.ToUpper(strings.TrimSpace(o.Name))
	o.Description = strings.ToUpper(strings.TrimSpace(o.Description))
	return nil
}

// Status is "Ativa", "Encerrada" or "Inativa" on the given day.
func (o *Operation) Status(today time.Time) string {
	switch {
	case o.EndDate.Before(Day(today)):
		return "Encerrada"
	case o.IsActive:
		return "Ativa"
	default:
		return "Inativa"
	}
}

// DurationDays counts both start and end day.
func (o *Operation) DurationDays() int {
	return int(Day(o.EndDate).Sub(Day(o.StartDate)).Hours()/24) + 1
}

// DaysRemaining is zero once the end date has passed.
func (o *Operation) DaysRemaining(today time.Time) int {
	d := int(Day(o.EndDate).Sub(Day(today)).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
