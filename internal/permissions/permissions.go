// Package permissions holds the access predicates for reports and
// operations. Every function is pure: callers load the rows and pass the
// clock in.
package permissions

import (
	"errors"
	"fmt"
	"time"

	"github.com/arcanosig/arcano/backend/internal/models"
)

// ErrForbidden is returned when a predicate denies an action.
var ErrForbidden = errors.New("permission denied")

// Action is an operation on a report.
type Action string

const (
	Create Action = "create"
	Read   Action = "read"
	Update Action = "update"
	Delete Action = "delete"
)

// EditWindow is how long after creation a report may still be changed.
const EditWindow = 6 * time.Hour

func (a Action) isWrite() bool {
	return a == Create || a == Update || a == Delete
}

// CheckReport evaluates action on report for user at now. report may be nil for Create.
func CheckReport(user *models.User, action Action, report *models.Report, now time.Time) error {
	if user == nil {
		return ErrForbidden
	}
	switch {
	case action == Read:
		if !user.IsSac {
			return fmt.Errorf("%w: SAC module access required", ErrForbidden)
		}
		return nil
	case action.isWrite():
		if !user.IsSac || !(user.SacProfile == models.SacProfileAnalyst || user.SacProfile == models.SacProfileFocal) {
			return fmt.Errorf("%w: only ANALISTA or FOCAL may write reports", ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrForbidden, action)
	}

	if action == Create {
		return nil
	}
	if report == nil {
		return ErrForbidden
	}
	if report.AnalystID != user.ID {
		return fmt.Errorf("%w: only the report author may %s it", ErrForbidden, action)
	}
	if !WithinEditWindow(report.CreatedAt, now) {
		return fmt.Errorf("%w: the %s edit window has closed", ErrForbidden, EditWindow)
	}
	return nil
}

// CanReport is CheckReport as a boolean.
func CanReport(user *models.User, action Action, report *models.Report, now time.Time) bool {
	return CheckReport(user, action, report, now) == nil
}

// WithinEditWindow is true while less than EditWindow has elapsed since created.
func WithinEditWindow(created, now time.Time) bool {
	return now.Sub(created) < EditWindow
}

// CanViewAuditLog allows FOCAL and ANALISTA profiles and the report's own analyst.
func CanViewAuditLog(user *models.User, report *models.Report) bool {
	if user == nil {
		return false
	}
	if user.IsSac && (user.SacProfile == models.SacProfileFocal || user.SacProfile == models.SacProfileAnalyst) {
		return true
	}
	return report != nil && report.AnalystID == user.ID
}

// CanViewPDF allows superusers and SAC users with any reading profile.
func CanViewPDF(user *models.User) bool {
	if user == nil {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	if !user.IsSac {
		return false
	}
	switch user.SacProfile {
	case models.SacProfileReader, models.SacProfileAnalyst, models.SacProfileFocal:
		return true
	}
	return false
}

// CanShare allows only SAC focal points.
func CanShare(user *models.User) bool {
	return user != nil && user.IsSac && user.SacProfile == models.SacProfileFocal
}

// CanAccessTeam allows full-access staff, the team commander and its members.
func CanAccessTeam(user *models.User, team *models.Team, isMember bool) bool {
	if user == nil {
		return false
	}
	if user.HasFullOperationsAccess() {
		return true
	}
	if team == nil {
		return false
	}
	return team.CommanderID == user.ID || isMember
}

// CanManageOperations allows creating and editing operations, teams and vehicles.
func CanManageOperations(user *models.User) bool {
	return user != nil && user.HasFullOperationsAccess()
}
