package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanosig/arcano/backend/internal/models"
)

func TestMaintenanceService_Schedules(t *testing.T) {
	auth, db, _ := newAuthService(t)
	svc, err := NewMaintenanceService(NewOperationService(db), auth)
	require.NoError(t, err)
	assert.Len(t, svc.Cron.Entries(), 2)

	svc.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	svc.Stop(ctx)
}

func TestMaintenanceService_ExpireOperations(t *testing.T) {
	auth, db, _ := newAuthService(t)
	ops := NewOperationService(db)
	svc, err := NewMaintenanceService(ops, auth)
	require.NoError(t, err)

	current := seedOperation(t, db, "Carnaval", true)
	over := seedOperation(t, db, "Réveillon", true)
	yesterday := models.Day(time.Now()).AddDate(0, 0, -1)
	require.NoError(t, db.Model(over).Updates(map[string]interface{}{"start_date": yesterday, "end_date": yesterday}).Error)

	svc.ExpireOperations(context.Background())
	svc.PurgeBlacklist()

	var got models.Operation
	require.NoError(t, db.First(&got, over.ID).Error)
	assert.False(t, got.IsActive)
	require.NoError(t, db.First(&got, current.ID).Error)
	assert.True(t, got.IsActive)
}
