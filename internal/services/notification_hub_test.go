package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/models"
)

func TestNotificationHub_DispatchRequiresCustody(t *testing.T) {
	db := database.OpenTestDB(t)
	hub := NewNotificationHub(NewNotificationService(db, nil))
	err := hub.Dispatch(db, Event{Kind: EventCustodyCreated}, &Outbox{})
	assert.Error(t, err)
}

func TestNotificationHub_HandlerErrorAborts(t *testing.T) {
	db := database.OpenTestDB(t)
	hub := NewNotificationHub(NewNotificationService(db, nil))
	boom := errors.New("boom")
	hub.Subscribe(EventDamageReported, func(*gorm.DB, Event, *Outbox) error { return boom })

	err := hub.Dispatch(db, Event{Kind: EventDamageReported, Custody: &models.Custody{ID: "c"}, Item: &models.CustodyItem{ID: "i"}}, &Outbox{})
	assert.ErrorIs(t, err, boom)
}

func TestNotificationHub_ReturnedItemReadAtReturnTime(t *testing.T) {
	db := database.OpenTestDB(t)
	pub := &recordingPublisher{}
	notes := NewNotificationService(db, pub)
	hub := NewNotificationHub(notes)
	officer := createUser(t, db, "sd@pm.gov.br", nil)

	at := time.Date(2026, 1, 2, 3, 4, 5, 678901000, time.UTC)
	c := &models.Custody{ID: "c-1", OfficerID: officer.ID, AcceptanceProtocol: "CAUT-X"}
	item := &models.CustodyItem{ID: "i-1", EquipmentType: models.EquipmentRadio, ReturnedAt: &at, EquipmentStatus: models.StatusGood}

	out := &Outbox{}
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return hub.Dispatch(tx, Event{Kind: EventItemReturned, Custody: c, Item: item, ActorID: officer.ID}, out)
	}))
	require.Len(t, out.Notifications, 1)
	assert.Zero(t, pub.count(officer.ID), "nothing is pushed before flush")

	hub.Flush(out)
	assert.Equal(t, 1, pub.count(officer.ID))
	assert.Empty(t, out.Notifications)

	var n models.Notification
	require.NoError(t, db.First(&n, "object_id = ?", item.ID).Error)
	assert.Equal(t, models.NotificationReturnConfirmed, n.Type)
	assert.True(t, n.Read)
	require.NotNil(t, n.ReadAt)
	assert.True(t, n.ReadAt.Equal(at))
}

func TestNotificationHub_RolledBackTransactionLeavesNothing(t *testing.T) {
	db := database.OpenTestDB(t)
	hub := NewNotificationHub(NewNotificationService(db, nil))
	officer := createUser(t, db, "sd@pm.gov.br", nil)
	c := &models.Custody{ID: "c-1", OfficerID: officer.ID}

	_ = db.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, hub.Dispatch(tx, Event{Kind: EventCustodyCreated, Custody: c}, &Outbox{}))
		return errors.New("rollback")
	})

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}
