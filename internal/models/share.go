package models

import "time"

// ShareKind selects how an external reader proves access to a shared report.
type ShareKind string

const (
	ShareCPF     ShareKind = "cpf"
	ShareSpecial ShareKind = "especial"
)

func (k ShareKind) Valid() bool { return k == ShareCPF || k == ShareSpecial }

// SpecialShareTTL is the lifetime of an especial share.
const SpecialShareTTL = 24 * time.Hour

// ReportShare is a tokenized link to a report's PDF.
type ReportShare struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	ReportID        string     `json:"report_id" gorm:"size:36;index"`
	Report          *Report    `json:"report,omitempty"`
	CreatedByID     uint       `json:"created_by_id"`
	Kind            ShareKind  `json:"kind" gorm:"size:10"`
	Token           string     `json:"token" gorm:"uniqueIndex;size:64"`
	SpecialNumber   string     `json:"special_number,omitempty" gorm:"size:11"`
	SpecialPassword string     `json:"-" gorm:"size:8"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Active          bool       `json:"active"`
	Accesses        uint       `json:"accesses"`
	LastAccessAt    *time.Time `json:"last_access_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IsValid reports whether the share is active and not expired at now.
func (s *ReportShare) IsValid(now time.Time) bool {
	if !s.Active {
		return false
	}
	return s.ExpiresAt == nil || now.Before(*s.ExpiresAt)
}

// ShareAccess records one attempt to open a share, successful or not.
type ShareAccess struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ShareID    *uint     `json:"share_id" gorm:"index"`
	IPAddress  string    `json:"ip_address" gorm:"size:45"`
	UserAgent  string    `json:"user_agent"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	AccessedAt time.Time `json:"accessed_at"`
}
