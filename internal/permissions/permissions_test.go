package permissions

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arcanosig/arcano/backend/internal/models"
)

func sacUser(id uint, profile models.SacProfile) *models.User {
	return &models.User{ID: id, IsActive: true, IsApproved: true, IsSac: true, SacProfile: profile}
}

func TestCheckReport_Write(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, CheckReport(sacUser(1, models.SacProfileAnalyst), Create, nil, now))
	assert.NoError(t, CheckReport(sacUser(1, models.SacProfileFocal), Create, nil, now))
	assert.ErrorIs(t, CheckReport(sacUser(1, models.SacProfileReader), Create, nil, now), ErrForbidden)
	assert.ErrorIs(t, CheckReport(sacUser(1, models.SacProfileNone), Create, nil, now), ErrForbidden)
	assert.ErrorIs(t, CheckReport(&models.User{ID: 1, IsSuperuser: true}, Create, nil, now), ErrForbidden)
	assert.ErrorIs(t, CheckReport(nil, Create, nil, now), ErrForbidden)
}

func TestCheckReport_Authorship(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	report := &models.Report{AnalystID: 7, CreatedAt: now.Add(-time.Hour)}

	assert.NoError(t, CheckReport(sacUser(7, models.SacProfileAnalyst), Update, report, now))
	assert.NoError(t, CheckReport(sacUser(7, models.SacProfileAnalyst), Delete, report, now))
	assert.ErrorIs(t, CheckReport(sacUser(8, models.SacProfileFocal), Update, report, now), ErrForbidden)
	assert.ErrorIs(t, CheckReport(sacUser(8, models.SacProfileAnalyst), Delete, report, now), ErrForbidden)
	assert.ErrorIs(t, CheckReport(sacUser(7, models.SacProfileAnalyst), Update, nil, now), ErrForbidden)
}

func TestCheckReport_EditWindowClosesForEveryRole(t *testing.T) {
	created := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	report := &models.Report{AnalystID: 3, CreatedAt: created}

	users := map[string]*models.User{
		"analyst":   sacUser(3, models.SacProfileAnalyst),
		"focal":     sacUser(3, models.SacProfileFocal),
		"superuser": {ID: 3, IsSac: true, SacProfile: models.SacProfileFocal, IsSuperuser: true, IsAdmin: true},
	}
	for name, u := range users {
		for _, action := range []Action{Update, Delete} {
			assert.NoError(t, CheckReport(u, action, report, created.Add(EditWindow-time.Microsecond)), "%s %s inside window", name, action)
			err := CheckReport(u, action, report, created.Add(EditWindow))
			assert.True(t, errors.Is(err, ErrForbidden), "%s %s at exactly 6h", name, action)
			assert.ErrorIs(t, CheckReport(u, action, report, created.Add(7*time.Hour)), ErrForbidden)
		}
	}
}

func TestCheckReport_Read(t *testing.T) {
	now := time.Now()
	old := &models.Report{AnalystID: 99, CreatedAt: now.AddDate(-1, 0, 0)}

	assert.NoError(t, CheckReport(sacUser(1, models.SacProfileNone), Read, old, now))
	assert.NoError(t, CheckReport(sacUser(1, models.SacProfileReader), Read, old, now))
	assert.ErrorIs(t, CheckReport(&models.User{ID: 1, IsSuperuser: true}, Read, old, now), ErrForbidden)
	assert.ErrorIs(t, CheckReport(sacUser(1, models.SacProfileFocal), Action("publish"), old, now), ErrForbidden)
}

func TestCanViewAuditLog(t *testing.T) {
	report := &models.Report{AnalystID: 5}
	assert.True(t, CanViewAuditLog(sacUser(1, models.SacProfileFocal), report))
	assert.True(t, CanViewAuditLog(sacUser(1, models.SacProfileAnalyst), report))
	assert.False(t, CanViewAuditLog(sacUser(1, models.SacProfileReader), report))
	assert.True(t, CanViewAuditLog(&models.User{ID: 5}, report))
	assert.False(t, CanViewAuditLog(nil, report))
}

func TestCanViewPDF(t *testing.T) {
	assert.True(t, CanViewPDF(&models.User{IsSuperuser: true}))
	assert.True(t, CanViewPDF(sacUser(1, models.SacProfileReader)))
	assert.True(t, CanViewPDF(sacUser(1, models.SacProfileFocal)))
	assert.False(t, CanViewPDF(sacUser(1, models.SacProfileNone)))
	assert.False(t, CanViewPDF(&models.User{IsAdmin: true}))
}

func TestCanShare(t *testing.T) {
	assert.True(t, CanShare(sacUser(1, models.SacProfileFocal)))
	assert.False(t, CanShare(sacUser(1, models.SacProfileAnalyst)))
	assert.False(t, CanShare(&models.User{IsSuperuser: true}))
}

func TestCanAccessTeam(t *testing.T) {
	team := &models.Team{ID: 1, CommanderID: 10}

	assert.True(t, CanAccessTeam(&models.User{ID: 2, IsOperations: true}, team, false))
	assert.True(t, CanAccessTeam(&models.User{ID: 2, IsAdmin: true}, nil, false))
	assert.True(t, CanAccessTeam(&models.User{ID: 10}, team, false))
	assert.True(t, CanAccessTeam(&models.User{ID: 11}, team, true))
	assert.False(t, CanAccessTeam(&models.User{ID: 11}, team, false))
	assert.False(t, CanAccessTeam(nil, team, true))

	assert.True(t, CanManageOperations(&models.User{IsSuperuser: true}))
	assert.False(t, CanManageOperations(&models.User{IsSac: true}))
}
