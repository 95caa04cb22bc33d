package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

type fleetFixture struct {
	db        *gorm.DB
	clock     *testClock
	fuel      *FuelLogService
	admin     *models.User
	commander *models.User
	member    *models.User
	outsider  *models.User
	vehicle   *models.Vehicle
	team      *models.Team
}

// newFleetFixture assigns an operational vehicle at 10000 km to a team with a
// commander and one member.
func newFleetFixture(t *testing.T) *fleetFixture {
	t.Helper()
	db := database.OpenTestDB(t)
	clock := newTestClock(time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC))
	fuel := NewFuelLogService(db)
	fuel.now = clock.Now

	f := &fleetFixture{db: db, clock: clock, fuel: fuel}
	f.admin = createUser(t, db, "admin@pm.gov.br", func(u *models.User) { u.IsOperations = true })
	f.commander = createUser(t, db, "cmt@pm.gov.br", nil)
	f.member = createUser(t, db, "motorista@pm.gov.br", nil)
	f.outsider = createUser(t, db, "outro@pm.gov.br", nil)

	f.vehicle = &models.Vehicle{Plate: "PMA1B23", Model: "hilux", Operational: true, Odometer: 10000}
	require.NoError(t, db.Create(f.vehicle).Error)
	today := models.Day(clock.Now())
	op := &models.Operation{Name: "Litoral", StartDate: today, EndDate: today.AddDate(0, 0, 5), IsActive: true}
	require.NoError(t, db.Create(op).Error)
	f.team = &models.Team{Name: "Alfa", OperationID: op.ID, CommanderID: f.commander.ID, VehicleID: &f.vehicle.ID}
	require.NoError(t, db.Create(f.team).Error)
	require.NoError(t, db.Create(&models.TeamMember{TeamID: f.team.ID, UserID: f.member.ID}).Error)
	return f
}

func (f *fleetFixture) odometer(t *testing.T) uint {
	t.Helper()
	var v models.Vehicle
	require.NoError(t, f.db.First(&v, f.vehicle.ID).Error)
	return v.Odometer
}

func TestFuelLogService_CreateAdvancesOdometer(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()

	log, err := f.fuel.Create(ctx, f.member, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10350, Liters: 40.5, TotalCost: 243.00, Station: " posto central "})
	require.NoError(t, err)
	assert.Equal(t, "POSTO CENTRAL", log.Station)
	assert.Equal(t, f.clock.Now(), log.FilledAt)
	assert.Equal(t, f.member.ID, log.RecordedBy)
	assert.InDelta(t, 6.0, log.PricePerLiter(), 0.001)
	assert.Equal(t, uint(10350), f.odometer(t))

	// same reading is allowed, it does not move the odometer
	f.clock.Advance(time.Hour)
	_, err = f.fuel.Create(ctx, f.commander, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10350, Liters: 2, TotalCost: 12})
	require.NoError(t, err)
	assert.Equal(t, uint(10350), f.odometer(t))
}

func TestFuelLogService_RejectsOdometerBelowVehicle(t *testing.T) {
	f := newFleetFixture(t)

	_, err := f.fuel.Create(context.Background(), f.admin, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 9999, Liters: 30, TotalCost: 180})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "km_atual", verr.Field)
	assert.Contains(t, verr.Message, "10000 km")
	assert.Equal(t, uint(10000), f.odometer(t))

	var n int64
	require.NoError(t, f.db.Model(&models.FuelLog{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestFuelLogService_Validation(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()
	future := f.clock.Now().Add(time.Hour)

	cases := []struct {
		name  string
		in    FuelLogInput
		field string
	}{
		{"unknown vehicle", FuelLogInput{VehicleID: 999, Odometer: 10100, Liters: 1, TotalCost: 1}, "veiculo_id"},
		{"no liters", FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10100, TotalCost: 1}, "litros"},
		{"no cost", FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10100, Liters: 1}, "valor_total"},
		{"no odometer", FuelLogInput{VehicleID: f.vehicle.ID, Liters: 1, TotalCost: 1}, "km_atual"},
		{"future date", FuelLogInput{VehicleID: f.vehicle.ID, FilledAt: &future, Odometer: 10100, Liters: 1, TotalCost: 1}, "data"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.fuel.Create(ctx, f.admin, tc.in)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	require.NoError(t, f.db.Model(f.vehicle).Update("operational", false).Error)
	_, err := f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10100, Liters: 1, TotalCost: 1})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "veiculo_id", verr.Field)
}

func TestFuelLogService_UpdateKeepsSequence(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()

	first, err := f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10200, Liters: 30, TotalCost: 180})
	require.NoError(t, err)
	f.clock.Advance(24 * time.Hour)
	second, err := f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10500, Liters: 35, TotalCost: 210})
	require.NoError(t, err)

	at := first.FilledAt
	_, err = f.fuel.Update(ctx, f.admin, first.ID, FuelLogInput{FilledAt: &at, Odometer: 10600, Liters: 30, TotalCost: 180})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "km_atual", verr.Field)

	at = second.FilledAt
	updated, err := f.fuel.Update(ctx, f.admin, second.ID, FuelLogInput{FilledAt: &at, Odometer: 10700, Liters: 35, TotalCost: 215})
	require.NoError(t, err)
	assert.Equal(t, uint(10700), updated.Odometer)
	assert.Equal(t, f.vehicle.ID, updated.VehicleID)
	assert.Equal(t, uint(10700), f.odometer(t))

	require.NoError(t, f.fuel.Delete(ctx, f.admin, second.ID))
	assert.Equal(t, uint(10700), f.odometer(t))
	_, err = f.fuel.Get(f.admin, second.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFuelLogService_Access(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()

	_, err := f.fuel.Create(ctx, f.outsider, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10100, Liters: 10, TotalCost: 60})
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	log, err := f.fuel.Create(ctx, f.member, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10100, Liters: 10, TotalCost: 60})
	require.NoError(t, err)

	spare := &models.Vehicle{Plate: "PMA9Z99", Model: "duster", Operational: true, Odometer: 500}
	require.NoError(t, f.db.Create(spare).Error)
	_, err = f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: spare.ID, Odometer: 600, Liters: 10, TotalCost: 60})
	require.NoError(t, err)

	mine, err := f.fuel.List(f.member, FuelLogFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, log.ID, mine[0].ID)
	require.NotNil(t, mine[0].Vehicle)

	all, err := f.fuel.List(f.admin, FuelLogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bySpare, err := f.fuel.List(f.admin, FuelLogFilter{VehicleID: spare.ID})
	require.NoError(t, err)
	assert.Len(t, bySpare, 1)

	none, err := f.fuel.List(f.outsider, FuelLogFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.fuel.Get(f.outsider, log.ID)
	assert.ErrorIs(t, err, permissions.ErrForbidden)
	assert.ErrorIs(t, f.fuel.Delete(ctx, f.outsider, log.ID), permissions.ErrForbidden)
}

func TestFuelLogService_Summary(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()

	empty, err := f.fuel.Summary(f.admin, f.vehicle.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Logs)
	assert.Nil(t, empty.Last)
	assert.Nil(t, empty.AverageKmPerLiter)

	// previous month, outside the month total
	prev := time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)
	_, err = f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: f.vehicle.ID, FilledAt: &prev, Odometer: 10000, Liters: 40, TotalCost: 200})
	require.NoError(t, err)
	_, err = f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10400, Liters: 40, TotalCost: 240})
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	last, err := f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10600, Liters: 20, TotalCost: 120})
	require.NoError(t, err)

	sum, err := f.fuel.Summary(f.member, f.vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum.Logs)
	require.NotNil(t, sum.Last)
	assert.Equal(t, last.ID, sum.Last.ID)
	require.NotNil(t, sum.AverageKmPerLiter)
	assert.InDelta(t, 10.0, *sum.AverageKmPerLiter, 0.001)
	assert.InDelta(t, 360.0, sum.MonthCost, 0.001)

	_, err = f.fuel.Summary(f.outsider, f.vehicle.ID)
	assert.ErrorIs(t, err, permissions.ErrForbidden)
}

func TestVehicleService_DeleteRemovesFleetRecords(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()
	media := t.TempDir()
	storage := NewLocalStorage(media)

	_, err := f.fuel.Create(ctx, f.admin, FuelLogInput{VehicleID: f.vehicle.ID, Odometer: 10100, Liters: 10, TotalCost: 60})
	require.NoError(t, err)
	require.NoError(t, f.db.Model(f.vehicle).Update("operational", false).Error)
	photos := NewVehiclePhotoService(f.db, storage)
	photo, err := photos.Upload(ctx, f.admin, f.vehicle.ID, pngUpload("lataria.png", "lataria amassada"))
	require.NoError(t, err)

	require.NoError(t, NewVehicleService(f.db, storage).Delete(ctx, f.vehicle.ID))

	var logs, rows int64
	require.NoError(t, f.db.Model(&models.FuelLog{}).Count(&logs).Error)
	require.NoError(t, f.db.Model(&models.VehiclePhoto{}).Count(&rows).Error)
	assert.Zero(t, logs)
	assert.Zero(t, rows)
	_, err = storage.Open(ctx, photo.Path)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
