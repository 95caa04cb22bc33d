package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/models"
)

func TestVehicleService_CRUD(t *testing.T) {
	db := database.OpenTestDB(t)
	svc := NewVehicleService(db, nil)
	ctx := context.Background()

	var verr *models.ValidationError
	require.ErrorAs(t, svc.Create(ctx, &models.Vehicle{Plate: "AB-1234", Model: "hilux"}), &verr)
	assert.Equal(t, "prefixo", verr.Field)
	require.ErrorAs(t, svc.Create(ctx, &models.Vehicle{Plate: "ABC1234", Model: "fusca"}), &verr)
	assert.Equal(t, "modelo", verr.Field)

	v := &models.Vehicle{Plate: "abc-1234", Model: "hilux", Operational: true, Odometer: 1200}
	require.NoError(t, svc.Create(ctx, v))
	assert.Equal(t, "ABC1234", v.Plate)

	require.ErrorAs(t, svc.Create(ctx, &models.Vehicle{Plate: "ABC1234", Model: "l200"}), &verr)

	updated, err := svc.Update(ctx, v.ID, models.Vehicle{Plate: "ABC1D23", Model: "ranger", Odometer: 1500})
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", updated.Plate)
	assert.False(t, updated.Operational)

	require.NoError(t, svc.Delete(ctx, v.ID))
	_, err = svc.Get(v.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVehicleService_Available(t *testing.T) {
	db := database.OpenTestDB(t)
	svc := NewVehicleService(db, nil)
	ctx := context.Background()
	op := seedOperation(t, db, "Carnaval", true)
	old := seedOperation(t, db, "Antiga", false)
	cmd := createUser(t, db, "cmt@pm.gov.br", nil)

	busy := &models.Vehicle{Plate: "AAA1111", Model: "hilux", Operational: true}
	freed := &models.Vehicle{Plate: "BBB2222", Model: "hilux", Operational: true}
	broken := &models.Vehicle{Plate: "CCC3333", Model: "duster"}
	idle := &models.Vehicle{Plate: "DDD4444", Model: "outros", Operational: true}
	for _, v := range []*models.Vehicle{busy, freed, broken, idle} {
		require.NoError(t, svc.Create(ctx, v))
	}
	require.NoError(t, db.Create(&models.Team{Name: "a", OperationID: op.ID, CommanderID: cmd.ID, VehicleID: &busy.ID}).Error)
	require.NoError(t, db.Create(&models.Team{Name: "b", OperationID: old.ID, CommanderID: cmd.ID, VehicleID: &freed.ID}).Error)

	list, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BBB2222", list[0].Plate)
	assert.Equal(t, "DDD4444", list[1].Plate)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// deleting an assigned vehicle clears the team
	require.NoError(t, svc.Delete(ctx, busy.ID))
	var team models.Team
	require.NoError(t, db.First(&team, "name = ?", "A").Error)
	assert.Nil(t, team.VehicleID)
}
