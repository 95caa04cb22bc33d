package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Team (guarnição) is a patrol group inside an operation.
type Team struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"size:100;not null"`
	OperationID uint         `json:"operation_id" gorm:"index"`
	Operation   *Operation   `json:"operation,omitempty"`
	CommanderID uint         `json:"commander_id" gorm:"index"`
	Commander   *User        `json:"commander,omitempty"`
	VehicleID   *uint        `json:"vehicle_id,omitempty" gorm:"uniqueIndex"`
	Vehicle     *Vehicle     `json:"vehicle,omitempty"`
	Members     []TeamMember `json:"members,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (t *Team) BeforeSave(tx *gorm.DB) error {
	t.Name = strings.ToUpper(strings.TrimSpace(t.Name))
	return nil
}

// TeamMember links a user to a team.
type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id" gorm:"uniqueIndex:idx_team_member"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_team_member;index"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
