package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

type custodyFixture struct {
	db        *gorm.DB
	clock     *testClock
	svc       *CustodyService
	notes     *NotificationService
	pub       *recordingPublisher
	alerts    *[]sentAlert
	admin     *models.User
	commander *models.User
	officer   *models.User
	outsider  *models.User
	op        *models.Operation
	team      *models.Team
}

func newCustodyFixture(t *testing.T) *custodyFixture {
	t.Helper()
	db := database.OpenTestDB(t)
	clock := newTestClock(time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC))
	pub := &recordingPublisher{}
	notes := NewNotificationService(db, pub)
	notes.now = clock.Now
	alerts := stubSender(notes)
	svc := NewCustodyService(db, NewNotificationHub(notes))
	svc.now = clock.Now

	f := &custodyFixture{db: db, clock: clock, svc: svc, notes: notes, pub: pub, alerts: alerts}
	f.admin = createUser(t, db, "admin@pm.gov.br", func(u *models.User) { u.IsAdmin = true })
	f.commander = createUser(t, db, "cmt@pm.gov.br", nil)
	f.officer = createUser(t, db, "sd.silva@pm.gov.br", nil)
	f.outsider = createUser(t, db, "outro@pm.gov.br", nil)

	today := models.Day(clock.Now())
	f.op = &models.Operation{Name: "Carnaval", StartDate: today, EndDate: today.AddDate(0, 0, 10), IsActive: true}
	require.NoError(t, db.Create(f.op).Error)
	f.team = f.addTeam(t, "Alfa", f.commander, f.officer)

	require.NoError(t, db.Create(&models.NotificationProvider{
		Name: "ciops", URL: "generic://alertas.pm.gov.br/ciops", Enabled: true, NotifyDamage: true,
	}).Error)
	return f
}

func (f *custodyFixture) addTeam(t *testing.T, name string, commander *models.User, members ...*models.User) *models.Team {
	t.Helper()
	team := &models.Team{Name: name, OperationID: f.op.ID, CommanderID: commander.ID}
	require.NoError(t, f.db.Create(team).Error)
	for _, u := range append([]*models.User{commander}, members...) {
		require.NoError(t, f.db.Create(&models.TeamMember{TeamID: team.ID, UserID: u.ID}).Error)
	}
	return team
}

func (f *custodyFixture) create(t *testing.T, officer *models.User, items ...ItemInput) *models.Custody {
	t.Helper()
	c, err := f.svc.Create(context.Background(), f.commander, CustodyInput{OfficerID: officer.ID, TeamID: f.team.ID, Items: items})
	require.NoError(t, err)
	return c
}

func (f *custodyFixture) notifications(t *testing.T, userID uint, typ models.NotificationType) []models.Notification {
	t.Helper()
	var list []models.Notification
	require.NoError(t, f.db.Where("user_id = ? AND type = ?", userID, typ).Order("created_at, id").Find(&list).Error)
	return list
}

var (
	pistol = ItemInput{EquipmentType: models.EquipmentPistol, SerialNumber: "pt-0001"}
	radio  = ItemInput{EquipmentType: models.EquipmentRadio}
	vest   = ItemInput{EquipmentType: models.EquipmentVest, Quantity: 2}
)

func TestCustodyService_Create(t *testing.T) {
	f := newCustodyFixture(t)
	c := f.create(t, f.officer, pistol, radio)

	short := strings.SplitN(f.officer.UUID, "-", 2)[0]
	assert.Equal(t, fmt.Sprintf("CAUT-%s-202605100800", short), c.AcceptanceProtocol)
	assert.Equal(t, models.AcceptancePending, c.AcceptanceStatus)
	assert.True(t, c.DeliveredAt.Equal(f.clock.Now()))
	require.Len(t, c.Items, 2)
	assert.Equal(t, "PT-0001", c.Items[0].SerialNumber)
	assert.Equal(t, uint(1), c.Items[1].Quantity)

	var acc models.CustodyAcceptance
	require.NoError(t, f.db.First(&acc, "custody_id = ?", c.ID).Error)
	assert.Equal(t, c.AcceptanceProtocol, acc.Protocol)
	assert.Equal(t, models.AcceptancePending, acc.Status)

	pending := f.notifications(t, f.officer.ID, models.NotificationCustodyPending)
	require.Len(t, pending, 1)
	assert.False(t, pending[0].Read)
	assert.Equal(t, "/cautelas/detalhe/"+c.ID+"/", pending[0].Link)
	assert.Equal(t, c.ID, pending[0].ObjectID)
	assert.Equal(t, 1, f.pub.count(f.officer.ID))
}

func TestCustodyService_CreateRules(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	var verr *models.ValidationError

	_, err := f.svc.Create(ctx, f.commander, CustodyInput{OfficerID: f.officer.ID, TeamID: f.team.ID,
		Items: []ItemInput{{EquipmentType: models.EquipmentRifle}}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "numero_serie", verr.Field)

	_, err = f.svc.Create(ctx, f.commander, CustodyInput{OfficerID: f.outsider.ID, TeamID: f.team.ID})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "officer_id", verr.Field)

	_, err = f.svc.Create(ctx, f.outsider, CustodyInput{OfficerID: f.officer.ID, TeamID: f.team.ID})
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	f.create(t, f.officer, radio)
	_, err = f.svc.Create(ctx, f.admin, CustodyInput{OfficerID: f.officer.ID, TeamID: f.team.ID, Items: []ItemInput{vest}})
	assert.ErrorIs(t, err, ErrActiveCustody)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, f.db.Model(f.op).Update("is_active", false).Error)
	_, err = f.svc.Create(ctx, f.commander, CustodyInput{OfficerID: f.commander.ID, TeamID: f.team.ID})
	assert.ErrorIs(t, err, ErrOperationClosed)
}

func TestCustodyService_AcceptanceReadTimeEqualsAcceptedAt(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	c := f.create(t, f.officer, pistol)

	_, err := f.svc.ConfirmAcceptance(ctx, f.outsider, c.AcceptanceProtocol, "", "10.0.0.1")
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	f.clock.Advance(37*time.Minute + 12345678*time.Microsecond)
	acc, err := f.svc.ConfirmAcceptance(ctx, f.officer, c.AcceptanceProtocol, "recebido", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, models.AcceptanceConfirmed, acc.Status)
	require.NotNil(t, acc.AcceptedAt)
	assert.True(t, acc.AcceptedAt.Equal(f.clock.Now()))

	f.clock.Advance(time.Hour)
	pending := f.notifications(t, f.officer.ID, models.NotificationCustodyPending)
	require.Len(t, pending, 1)
	assert.True(t, pending[0].Read)
	require.NotNil(t, pending[0].ReadAt)
	assert.True(t, pending[0].ReadAt.Equal(*acc.AcceptedAt), "read at %s, accepted at %s", pending[0].ReadAt, acc.AcceptedAt)

	stored, err := f.svc.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AcceptanceConfirmed, stored.AcceptanceStatus)
	require.NotNil(t, stored.AcceptedAt)
	assert.True(t, stored.AcceptedAt.Equal(*acc.AcceptedAt))

	_, err = f.svc.ConfirmAcceptance(ctx, f.officer, c.AcceptanceProtocol, "", "")
	assert.ErrorIs(t, err, ErrNotPending)

	_, err = f.svc.ConfirmAcceptance(ctx, f.officer, "CAUT-unknown", "", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCustodyService_RejectAcceptance(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	c := f.create(t, f.officer, radio)

	count, err := f.svc.PendingAcceptanceCount(f.officer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	acc, err := f.svc.RejectAcceptance(ctx, f.admin, c.AcceptanceProtocol, "rádio com defeito", "")
	require.NoError(t, err)
	assert.Equal(t, models.AcceptanceRejected, acc.Status)

	stored, err := f.svc.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AcceptanceRejected, stored.AcceptanceStatus)
	assert.Nil(t, stored.AcceptedAt)

	count, err = f.svc.PendingAcceptanceCount(f.officer)
	require.NoError(t, err)
	assert.Zero(t, count)

	mine, err := f.svc.ListAcceptances(f.officer, "")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	none, err := f.svc.ListAcceptances(f.outsider, "")
	require.NoError(t, err)
	assert.Empty(t, none)
	rejected, err := f.svc.ListAcceptances(f.admin, models.AcceptanceRejected)
	require.NoError(t, err)
	assert.Len(t, rejected, 1)
}

var singleReturnProtocol = regexp.MustCompile(`^DEV-[0-9A-F]{8}$`)

func TestCustodyService_ReturnItem(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	c := f.create(t, f.officer, pistol, radio)

	_, err := f.svc.ReturnItem(ctx, f.officer, c.Items[0].ID, models.StatusDamaged, " ")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "descricao_danos", verr.Field)

	_, err = f.svc.ReturnItem(ctx, f.outsider, c.Items[0].ID, models.StatusGood, "")
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	f.clock.Advance(3*time.Hour + 250*time.Microsecond)
	res, err := f.svc.ReturnItem(ctx, f.officer, c.Items[0].ID, models.StatusDamaged, "ferrolho emperrado")
	require.NoError(t, err)
	assert.False(t, res.CustodyClosed)
	returnedAt := *res.Item.ReturnedAt
	assert.True(t, returnedAt.Equal(f.clock.Now()))
	assert.Regexp(t, singleReturnProtocol, res.Item.ReturnProtocol)
	assert.Equal(t, "FERROLHO EMPERRADO", res.Item.DamageDescription)
	assert.True(t, res.Item.ReturnConfirmed)

	f.clock.Advance(time.Minute)
	confirmed := f.notifications(t, f.officer.ID, models.NotificationReturnConfirmed)
	require.Len(t, confirmed, 1)
	assert.True(t, confirmed[0].Read)
	assert.True(t, confirmed[0].ReadAt.Equal(returnedAt))
	assert.Equal(t, models.ObjectItem, confirmed[0].ObjectType)

	damaged := f.notifications(t, f.officer.ID, models.NotificationEquipmentDamaged)
	require.Len(t, damaged, 1)
	assert.True(t, damaged[0].Read, "officer registered the return")
	assert.True(t, damaged[0].ReadAt.Equal(returnedAt))

	cmd := f.notifications(t, f.commander.ID, models.NotificationEquipmentDamaged)
	require.Len(t, cmd, 1)
	assert.False(t, cmd[0].Read)

	f.notes.Wait()
	require.Len(t, *f.alerts, 1)
	assert.Contains(t, (*f.alerts)[0].message, "Pistola - PT-0001")

	_, err = f.svc.ReturnItem(ctx, f.officer, c.Items[0].ID, models.StatusGood, "")
	assert.ErrorIs(t, err, ErrItemReturned)

	res, err = f.svc.ReturnItem(ctx, f.commander, c.Items[1].ID, "", "")
	require.NoError(t, err)
	assert.True(t, res.CustodyClosed)
	assert.Equal(t, models.StatusGood, res.Item.EquipmentStatus)

	closed, err := f.svc.Get(c.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.ReturnedAt)
	assert.True(t, closed.ReturnedAt.Equal(*res.Item.ReturnedAt))
	assert.Equal(t, models.AcceptanceInvalidated, closed.AcceptanceStatus)

	confirmed = f.notifications(t, f.officer.ID, models.NotificationReturnConfirmed)
	require.Len(t, confirmed, 2)
	assert.Equal(t, models.ObjectCustody, confirmed[1].ObjectType)
	assert.True(t, confirmed[1].ReadAt.Equal(*closed.ReturnedAt))

	_, err = f.svc.ReturnAll(ctx, f.officer, c.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyReturned)
}

func TestCustodyService_DamagedLastItemNotifiesCommander(t *testing.T) {
	f := newCustodyFixture(t)
	c := f.create(t, f.officer, pistol)

	res, err := f.svc.ReturnItem(context.Background(), f.commander, c.Items[0].ID, models.StatusLost, "")
	require.NoError(t, err)
	assert.True(t, res.CustodyClosed)

	damaged := f.notifications(t, f.officer.ID, models.NotificationEquipmentDamaged)
	require.Len(t, damaged, 1)
	assert.False(t, damaged[0].Read, "commander registered the return")
	assert.Len(t, f.notifications(t, f.commander.ID, models.NotificationEquipmentDamaged), 1)
}

func TestCustodyService_ReturnAllUsesSingleTimestamp(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	c := f.create(t, f.officer, pistol, radio, vest)

	f.clock.Advance(time.Hour)
	_, err := f.svc.ReturnItem(ctx, f.officer, c.Items[0].ID, models.StatusGood, "")
	require.NoError(t, err)

	f.clock.Advance(2*time.Hour + 987654*time.Microsecond)
	ts := f.clock.Now()
	closed, err := f.svc.ReturnAll(ctx, f.officer, c.ID, "")
	require.NoError(t, err)
	require.NotNil(t, closed.ReturnedAt)
	assert.True(t, closed.ReturnedAt.Equal(ts))
	assert.Equal(t, "Devolução em massa de todos os itens.", closed.ReturnNotes)

	base := fmt.Sprintf("DEV-MASSA-%s-%s", closed.ShortID(), ts.Format(protocolTime))
	assert.Equal(t, base+"-1", closed.Items[1].ReturnProtocol)
	assert.Equal(t, base+"-2", closed.Items[2].ReturnProtocol)
	for _, it := range closed.Items[1:] {
		require.NotNil(t, it.ReturnedAt)
		assert.True(t, it.ReturnedAt.Equal(ts))
		assert.Equal(t, models.StatusGood, it.EquipmentStatus)
	}
	assert.False(t, closed.Items[0].ReturnedAt.Equal(ts))

	confirmed := f.notifications(t, f.officer.ID, models.NotificationReturnConfirmed)
	require.Len(t, confirmed, 2)
	assert.True(t, confirmed[1].ReadAt.Equal(ts))

	status, err := f.svc.ReturnStatus(c.ID)
	require.NoError(t, err)
	assert.True(t, status.Returned)
	assert.Equal(t, 3, status.ReturnedItems)
	assert.Zero(t, status.PendingItems)

	// the officer can receive a new custody once the previous one is closed
	f.clock.Advance(time.Minute)
	f.create(t, f.officer, radio)
}

func TestCustodyService_ReturnAllWithoutItems(t *testing.T) {
	f := newCustodyFixture(t)
	c := f.create(t, f.officer)
	_, err := f.svc.ReturnAll(context.Background(), f.officer, c.ID, "sem itens")
	assert.ErrorIs(t, err, ErrNoPendingItems)
}

func TestCustodyService_ReportDamage(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	c := f.create(t, f.officer, pistol, radio)

	_, err := f.svc.ReportDamage(ctx, f.officer, c.Items[0].ID, models.StatusLost, "")
	assert.ErrorIs(t, err, ErrItemNotReturned)

	_, err = f.svc.ReturnItem(ctx, f.officer, c.Items[0].ID, models.StatusGood, "")
	require.NoError(t, err)
	assert.Empty(t, f.notifications(t, f.officer.ID, models.NotificationEquipmentDamaged))

	item, err := f.svc.ReportDamage(ctx, f.officer, c.Items[0].ID, models.StatusInoperable, "não dispara")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInoperable, item.EquipmentStatus)

	damaged := f.notifications(t, f.officer.ID, models.NotificationEquipmentDamaged)
	require.Len(t, damaged, 1)
	assert.False(t, damaged[0].Read)
	assert.Len(t, f.notifications(t, f.commander.ID, models.NotificationEquipmentDamaged), 1)

	// already damaged, no new notification
	_, err = f.svc.ReportDamage(ctx, f.officer, c.Items[0].ID, models.StatusDamaged, "cano torto")
	require.NoError(t, err)
	assert.Len(t, f.notifications(t, f.officer.ID, models.NotificationEquipmentDamaged), 1)

	f.notes.Wait()
	assert.Len(t, *f.alerts, 1)
}

func TestCustodyService_AddItem(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	c := f.create(t, f.officer, radio)

	item, err := f.svc.AddItem(ctx, f.commander, c.ID, vest)
	require.NoError(t, err)
	assert.Equal(t, uint(2), item.Quantity)

	_, err = f.svc.AddItem(ctx, f.officer, c.ID, radio)
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	_, err = f.svc.ReturnAll(ctx, f.officer, c.ID, "")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, f.commander, c.ID, radio)
	assert.ErrorIs(t, err, ErrAlreadyReturned)
}

func TestCustodyService_ListVisibilityAndSummary(t *testing.T) {
	f := newCustodyFixture(t)
	ctx := context.Background()
	bravoCmd := createUser(t, f.db, "cmt.bravo@pm.gov.br", nil)
	bravoOfficer := createUser(t, f.db, "sd.souza@pm.gov.br", nil)
	bravo := f.addTeam(t, "Bravo", bravoCmd, bravoOfficer)

	mine := f.create(t, f.officer, radio)
	_, err := f.svc.Create(ctx, bravoCmd, CustodyInput{OfficerID: bravoOfficer.ID, TeamID: bravo.ID, Items: []ItemInput{pistol}})
	require.NoError(t, err)
	_, err = f.svc.ReturnAll(ctx, f.officer, mine.ID, "")
	require.NoError(t, err)

	all, err := f.svc.List(f.admin, CustodyFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := f.svc.List(f.officer, CustodyFilter{})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, mine.ID, own[0].ID)

	none, err := f.svc.List(f.outsider, CustodyFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)

	active, err := f.svc.List(f.admin, CustodyFilter{Status: "active", OperationID: f.op.ID})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, bravoOfficer.ID, active[0].OfficerID)

	byTeam, err := f.svc.List(f.admin, CustodyFilter{TeamID: bravo.ID, Acceptance: models.AcceptancePending})
	require.NoError(t, err)
	assert.Len(t, byTeam, 1)

	_, err = f.svc.List(f.admin, CustodyFilter{Status: "lost"})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	assert.ErrorIs(t, f.svc.Authorize(f.outsider, mine), permissions.ErrForbidden)
	assert.NoError(t, f.svc.Authorize(f.commander, mine))
	assert.NoError(t, f.svc.Authorize(f.officer, mine))

	sum, err := f.svc.Summary(f.admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Active)
	assert.Equal(t, int64(1), sum.Returned)
	assert.Equal(t, int64(1), sum.PendingAcceptance)
	require.Len(t, sum.ByOperation, 1)
	assert.Equal(t, "CARNAVAL", sum.ByOperation[0].OperationName)
	assert.Equal(t, int64(1), sum.ByOperation[0].Active)
	assert.Equal(t, int64(1), sum.ByOperation[0].Returned)

	bravoSum, err := f.svc.Summary(bravoOfficer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bravoSum.Active)
	assert.Zero(t, bravoSum.Returned)
}
