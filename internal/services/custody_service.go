package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/metrics"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

const protocolTime = "200601021504"

// ItemInput describes one item handed over in a custody.
type ItemInput struct {
	EquipmentType models.EquipmentType `json:"tipo_equipamento"`
	SerialNumber  string               `json:"numero_serie"`
	Quantity      uint                 `json:"quantidade"`
	Notes         string               `json:"observacoes"`
}

func (in ItemInput) item(custodyID string) models.CustodyItem {
	return models.CustodyItem{
		CustodyID:     custodyID,
		EquipmentType: in.EquipmentType,
		SerialNumber:  strings.ToUpper(strings.TrimSpace(in.SerialNumber)),
		Quantity:      in.Quantity,
		Notes:         in.Notes,
	}
}

type CustodyInput struct {
	OfficerID uint        `json:"officer_id"`
	TeamID    uint        `json:"team_id"`
	Items     []ItemInput `json:"items"`
}

// CustodyFilter narrows custody listings. Zero values match everything.
type CustodyFilter struct {
	OperationID uint
	TeamID      uint
	OfficerID   uint
	Status      string // active | returned
	Acceptance  models.AcceptanceStatus
}

// ReturnStatus is the item-level return progress of a custody.
type ReturnStatus struct {
	CustodyID     string               `json:"custody_id"`
	Returned      bool                 `json:"returned"`
	ReturnedAt    *time.Time           `json:"returned_at,omitempty"`
	TotalItems    int                  `json:"total_items"`
	ReturnedItems int                  `json:"returned_items"`
	PendingItems  int                  `json:"pending_items"`
	Items         []models.CustodyItem `json:"items"`
}

type OperationCustodies struct {
	OperationID   uint   `json:"operation_id"`
	OperationName string `json:"operation_name"`
	Active        int64  `json:"active"`
	Returned      int64  `json:"returned"`
}

type CustodySummary struct {
	Active            int64                `json:"active"`
	Returned          int64                `json:"returned"`
	PendingAcceptance int64                `json:"pending_acceptance"`
	ByOperation       []OperationCustodies `json:"by_operation"`
}

// ItemReturn is the outcome of returning a single item.
type ItemReturn struct {
	Item          *models.CustodyItem `json:"item"`
	CustodyClosed bool                `json:"custody_closed"`
}

// CustodyService runs the custody lifecycle: hand-over, acceptance and return.
// Notifications are created through the hub inside each transaction and
// pushed once it commits.
type CustodyService struct {
	db  *gorm.DB
	hub *NotificationHub
	now func() time.Time
	log *logrus.Entry
}

func NewCustodyService(db *gorm.DB, hub *NotificationHub) *CustodyService {
	return &CustodyService{db: db, hub: hub, now: utcNow, log: logger.Component("custody")}
}

func (s *CustodyService) run(ctx context.Context, fn func(tx *gorm.DB, out *Outbox) error) error {
	out := &Outbox{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx, out)
	}); err != nil {
		return err
	}
	s.hub.Flush(out)
	return nil
}

func loadTeam(tx *gorm.DB, id uint) (*models.Team, error) {
	var team models.Team
	if err := tx.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Invalid("team_id", "guarnição não encontrada")
		}
		return nil, err
	}
	return &team, nil
}

func isTeamMember(tx *gorm.DB, teamID, userID uint) (bool, error) {
	var n int64
	err := tx.Model(&models.TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&n).Error
	return n > 0, err
}

// canManage allows full operations users and the team commander.
func canManage(user *models.User, team *models.Team) bool {
	return user.HasFullOperationsAccess() || team.CommanderID == user.ID
}

// canHandle additionally allows the officer holding the custody.
func canHandle(user *models.User, team *models.Team, c *models.Custody) bool {
	return canManage(user, team) || c.OfficerID == user.ID
}

func (s *CustodyService) Create(ctx context.Context, actor *models.User, in CustodyInput) (*models.Custody, error) {
	for i := range in.Items {
		item := in.Items[i].item("")
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	var created *models.Custody
	err := s.run(ctx, func(tx *gorm.DB, out *Outbox) error {
		team, err := loadTeam(tx, in.TeamID)
		if err != nil {
			return err
		}
		if !canManage(actor, team) {
			return permissions.ErrForbidden
		}
		officer, err := activeUser(tx, "officer_id", in.OfficerID)
		if err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&models.Custody{}).Where("officer_id = ? AND returned_at IS NULL", officer.ID).Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrActiveCustody
		}
		member, err := isTeamMember(tx, team.ID, officer.ID)
		if err != nil {
			return err
		}
		if !member {
			return models.Invalid("officer_id", "o policial deve ser membro da guarnição para receber uma cautela")
		}
		if _, err := requireActiveOperation(tx, team.OperationID); err != nil {
			return err
		}

		now := s.now()
		protocol := fmt.Sprintf("CAUT-%s-%s", strings.SplitN(officer.UUID, "-", 2)[0], now.Format(protocolTime))
		c := &models.Custody{
			OfficerID:          officer.ID,
			TeamID:             team.ID,
			DeliveredAt:        now,
			AcceptanceStatus:   models.AcceptancePending,
			AcceptanceProtocol: protocol,
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		acceptance := &models.CustodyAcceptance{CustodyID: c.ID, Protocol: protocol, Status: models.AcceptancePending}
		if err := tx.Create(acceptance).Error; err != nil {
			return err
		}
		for i := range in.Items {
			item := in.Items[i].item(c.ID)
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			c.Items = append(c.Items, item)
		}

		created = c
		return s.hub.Dispatch(tx, Event{
			Kind:        EventCustodyCreated,
			Custody:     c,
			Acceptance:  acceptance,
			ActorID:     actor.ID,
			CommanderID: team.CommanderID,
		}, out)
	})
	if err != nil {
		return nil, err
	}
	metrics.IncCustodyCreated()
	s.log.WithFields(logrus.Fields{"custody_id": created.ID, "officer_id": created.OfficerID}).Info("custody created")
	return s.Get(created.ID)
}

func (s *CustodyService) Get(id string) (*models.Custody, error) {
	var c models.Custody
	err := s.db.Preload("Officer").Preload("Team.Operation").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Authorize returns permissions.ErrForbidden unless user may see the custody.
func (s *CustodyService) Authorize(user *models.User, c *models.Custody) error {
	if user.HasFullOperationsAccess() || c.OfficerID == user.ID {
		return nil
	}
	team, err := loadTeam(s.db, c.TeamID)
	if err != nil {
		return err
	}
	member, err := isTeamMember(s.db, team.ID, user.ID)
	if err != nil {
		return err
	}
	if !permissions.CanAccessTeam(user, team, member) {
		return permissions.ErrForbidden
	}
	return nil
}

// visible restricts q, a custodies query, to what user may see.
func (s *CustodyService) visible(q *gorm.DB, user *models.User) *gorm.DB {
	if user.HasFullOperationsAccess() {
		return q
	}
	return q.Where("custodies.officer_id = ? OR custodies.team_id IN (?) OR custodies.team_id IN (?)",
		user.ID,
		s.db.Model(&models.Team{}).Select("id").Where("commander_id = ?", user.ID),
		s.db.Model(&models.TeamMember{}).Select("team_id").Where("user_id = ?", user.ID),
	)
}

func (s *CustodyService) List(user *models.User, f CustodyFilter) ([]models.Custody, error) {
	q := s.visible(s.db.Model(&models.Custody{}), user)
	if f.OperationID != 0 {
		q = q.Where("custodies.team_id IN (?)", s.db.Model(&models.Team{}).Select("id").Where("operation_id = ?", f.OperationID))
	}
	if f.TeamID != 0 {
		q = q.Where("custodies.team_id = ?", f.TeamID)
	}
	if f.OfficerID != 0 {
		q = q.Where("custodies.officer_id = ?", f.OfficerID)
	}
	switch f.Status {
	case "":
	case "active":
		q = q.Where("custodies.returned_at IS NULL")
	case "returned":
		q = q.Where("custodies.returned_at IS NOT NULL")
	default:
		return nil, models.Invalid("status", "status deve ser active ou returned")
	}
	if f.Acceptance != "" {
		q = q.Where("custodies.acceptance_status = ?", f.Acceptance)
	}

	var list []models.Custody
	err := q.Preload("Officer").Preload("Team").Preload("Items").
		Order("custodies.delivered_at desc").Find(&list).Error
	return list, err
}

func (s *CustodyService) Summary(user *models.User) (*CustodySummary, error) {
	sum := &CustodySummary{}
	base := func() *gorm.DB { return s.visible(s.db.Model(&models.Custody{}), user) }
	if err := base().Where("custodies.returned_at IS NULL").Count(&sum.Active).Error; err != nil {
		return nil, err
	}
	if err := base().Where("custodies.returned_at IS NOT NULL").Count(&sum.Returned).Error; err != nil {
		return nil, err
	}
	if err := base().Where("custodies.acceptance_status = ?", models.AcceptancePending).Count(&sum.PendingAcceptance).Error; err != nil {
		return nil, err
	}
	err := base().
		Select(`operations.id AS operation_id, operations.name AS operation_name,
			SUM(CASE WHEN custodies.returned_at IS NULL THEN 1 ELSE 0 END) AS active,
			SUM(CASE WHEN custodies.returned_at IS NOT NULL THEN 1 ELSE 0 END) AS returned`).
		Joins("JOIN teams ON teams.id = custodies.team_id").
		Joins("JOIN operations ON operations.id = teams.operation_id").
		Group("operations.id, operations.name").
		Order("operations.id").
		Scan(&sum.ByOperation).Error
	if err != nil {
		return nil, err
	}
	return sum, nil
}

func (s *CustodyService) ReturnStatus(id string) (*ReturnStatus, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	st := &ReturnStatus{CustodyID: c.ID, Returned: c.IsReturned(), ReturnedAt: c.ReturnedAt, TotalItems: len(c.Items), Items: c.Items}
	for i := range c.Items {
		if c.Items[i].IsReturned() {
			st.ReturnedItems++
		}
	}
	st.PendingItems = st.TotalItems - st.ReturnedItems
	return st, nil
}

// AddItem attaches an item to an open custody.
func (s *CustodyService) AddItem(ctx context.Context, actor *models.User, custodyID string, in ItemInput) (*models.CustodyItem, error) {
	item := in.item(custodyID)
	if err := item.Validate(); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Custody
		if err := tx.First(&c, "id = ?", custodyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Invalid("custody_id", "cautela não encontrada")
			}
			return err
		}
		team, err := loadTeam(tx, c.TeamID)
		if err != nil {
			return err
		}
		if !canManage(actor, team) {
			return permissions.ErrForbidden
		}
		if c.IsReturned() {
			return ErrAlreadyReturned
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// closeCustody marks c returned at ts and invalidates a still pending acceptance.
func closeCustody(tx *gorm.DB, c *models.Custody, ts time.Time, notes string) error {
	c.ReturnedAt, c.ReturnNotes = &ts, notes
	updates := map[string]interface{}{"returned_at": ts, "return_notes": notes}
	if c.AcceptanceStatus == models.AcceptancePending {
		c.AcceptanceStatus = models.AcceptanceInvalidated
		updates["acceptance_status"] = models.AcceptanceInvalidated
		var pending []models.CustodyAcceptance
		if err := tx.Where("custody_id = ? AND status = ?", c.ID, models.AcceptancePending).Find(&pending).Error; err != nil {
			return err
		}
		for i := range pending {
			if err := tx.Model(&pending[i]).Update("status", models.AcceptanceInvalidated).Error; err != nil {
				return err
			}
		}
	}
	return tx.Model(c).Updates(updates).Error
}

func (s *CustodyService) loadForUpdate(tx *gorm.DB, actor *models.User, id string) (*models.Custody, *models.Team, error) {
	var c models.Custody
	if err := tx.First(&c, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}
	team, err := loadTeam(tx, c.TeamID)
	if err != nil {
		return nil, nil, err
	}
	if !canHandle(actor, team, &c) {
		return nil, nil, permissions.ErrForbidden
	}
	return &c, team, nil
}

// ReturnAll returns every pending item with one timestamp and closes the custody.
func (s *CustodyService) ReturnAll(ctx context.Context, actor *models.User, id, notes string) (*models.Custody, error) {
	var returned []models.CustodyItem
	err := s.run(ctx, func(tx *gorm.DB, out *Outbox) error {
		c, team, err := s.loadForUpdate(tx, actor, id)
		if err != nil {
			return err
		}
		if c.IsReturned() {
			return ErrAlreadyReturned
		}
		var items []models.CustodyItem
		if err := tx.Where("custody_id = ? AND returned_at IS NULL", c.ID).Order("created_at, id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrNoPendingItems
		}

		ts := s.now()
		base := fmt.Sprintf("DEV-MASSA-%s-%s", c.ShortID(), ts.Format(protocolTime))
		for i := range items {
			it := &items[i]
			it.ReturnedAt = &ts
			it.EquipmentStatus = models.StatusGood
			it.ReturnProtocol = fmt.Sprintf("%s-%d", base, i+1)
			it.ReturnConfirmed = true
			if err := tx.Model(it).Updates(map[string]interface{}{
				"returned_at":      ts,
				"equipment_status": it.EquipmentStatus,
				"return_protocol":  it.ReturnProtocol,
				"return_confirmed": true,
			}).Error; err != nil {
				return err
			}
		}

		if strings.TrimSpace(notes) == "" {
			notes = "Devolução em massa de todos os itens."
		}
		if err := closeCustody(tx, c, ts, notes); err != nil {
			return err
		}
		returned = items
		return s.hub.Dispatch(tx, Event{Kind: EventCustodyReturned, Custody: c, ActorID: actor.ID, CommanderID: team.CommanderID}, out)
	})
	if err != nil {
		return nil, err
	}
	for i := range returned {
		metrics.IncItemReturned(string(returned[i].EquipmentStatus))
	}
	return s.Get(id)
}

func validateCondition(status models.EquipmentStatus, description string) (models.EquipmentStatus, error) {
	if status == "" {
		status = models.StatusGood
	}
	if !status.Valid() {
		return status, models.Invalid("status_equipamento", "status de equipamento inválido")
	}
	if status.NeedsDescription() && strings.TrimSpace(description) == "" {
		return status, models.Invalid("descricao_danos", "descreva os danos do equipamento")
	}
	return status, nil
}

// ReturnItem returns a single item. Returning the last pending item closes
// the custody at the item's return time.
func (s *CustodyService) ReturnItem(ctx context.Context, actor *models.User, itemID string, status models.EquipmentStatus, description string) (*ItemReturn, error) {
	status, err := validateCondition(status, description)
	if err != nil {
		return nil, err
	}
	protocol, err := randomHex(8)
	if err != nil {
		return nil, err
	}

	res := &ItemReturn{}
	err = s.run(ctx, func(tx *gorm.DB, out *Outbox) error {
		var item models.CustodyItem
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		c, team, err := s.loadForUpdate(tx, actor, item.CustodyID)
		if err != nil {
			return err
		}
		if item.IsReturned() {
			return ErrItemReturned
		}
		if c.IsReturned() {
			return ErrAlreadyReturned
		}

		ts := s.now()
		item.ReturnedAt = &ts
		item.EquipmentStatus = status
		item.DamageDescription = strings.ToUpper(strings.TrimSpace(description))
		item.ReturnProtocol = "DEV-" + protocol
		item.ReturnConfirmed = true
		if err := tx.Model(&item).Updates(map[string]interface{}{
			"returned_at":        ts,
			"equipment_status":   item.EquipmentStatus,
			"damage_description": item.DamageDescription,
			"return_protocol":    item.ReturnProtocol,
			"return_confirmed":   true,
		}).Error; err != nil {
			return err
		}

		var pending int64
		if err := tx.Model(&models.CustodyItem{}).Where("custody_id = ? AND returned_at IS NULL", c.ID).Count(&pending).Error; err != nil {
			return err
		}
		res.Item = &item
		ev := Event{Kind: EventItemReturned, Custody: c, Item: &item, ActorID: actor.ID, CommanderID: team.CommanderID}
		if pending == 0 {
			if err := closeCustody(tx, c, ts, "Todos os itens foram devolvidos."); err != nil {
				return err
			}
			res.CustodyClosed = true
			ev.Kind = EventCustodyReturned
		}
		return s.hub.Dispatch(tx, ev, out)
	})
	if err != nil {
		return nil, err
	}
	metrics.IncItemReturned(string(status))
	return res, nil
}

// ReportDamage updates the condition of an already returned item.
func (s *CustodyService) ReportDamage(ctx context.Context, actor *models.User, itemID string, status models.EquipmentStatus, description string) (*models.CustodyItem, error) {
	status, err := validateCondition(status, description)
	if err != nil {
		return nil, err
	}
	var item models.CustodyItem
	err = s.run(ctx, func(tx *gorm.DB, out *Outbox) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		c, team, err := s.loadForUpdate(tx, actor, item.CustodyID)
		if err != nil {
			return err
		}
		if !item.IsReturned() {
			return ErrItemNotReturned
		}
		wasDamaged := item.EquipmentStatus.IsDamaged()
		item.EquipmentStatus = status
		item.DamageDescription = strings.ToUpper(strings.TrimSpace(description))
		if err := tx.Model(&item).Updates(map[string]interface{}{
			"equipment_status":   item.EquipmentStatus,
			"damage_description": item.DamageDescription,
		}).Error; err != nil {
			return err
		}
		if wasDamaged || !status.IsDamaged() {
			return nil
		}
		return s.hub.Dispatch(tx, Event{Kind: EventDamageReported, Custody: c, Item: &item, ActorID: actor.ID, CommanderID: team.CommanderID}, out)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Acceptances

// ListAcceptances returns acceptances visible to user, newest first.
func (s *CustodyService) ListAcceptances(user *models.User, status models.AcceptanceStatus) ([]models.CustodyAcceptance, error) {
	q := s.db.Model(&models.CustodyAcceptance{}).Preload("Custody.Officer").Order("custody_acceptances.created_at desc")
	if !user.HasFullOperationsAccess() {
		q = q.Where("custody_acceptances.custody_id IN (?)", s.db.Model(&models.Custody{}).Select("id").Where("officer_id = ?", user.ID))
	}
	if status != "" {
		q = q.Where("custody_acceptances.status = ?", status)
	}
	var list []models.CustodyAcceptance
	err := q.Find(&list).Error
	return list, err
}

// PendingAcceptanceCount counts the user's own acceptances still pending.
func (s *CustodyService) PendingAcceptanceCount(user *models.User) (int64, error) {
	var n int64
	err := s.db.Model(&models.CustodyAcceptance{}).
		Joins("JOIN custodies ON custodies.id = custody_acceptances.custody_id").
		Where("custodies.officer_id = ? AND custody_acceptances.status = ?", user.ID, models.AcceptancePending).
		Count(&n).Error
	return n, err
}

// ConfirmAcceptance records the officer's acceptance. The custody's pending
// notification is marked read at the acceptance time.
func (s *CustodyService) ConfirmAcceptance(ctx context.Context, actor *models.User, protocol, notes, ip string) (*models.CustodyAcceptance, error) {
	return s.decide(ctx, actor, protocol, notes, ip, models.AcceptanceConfirmed)
}

func (s *CustodyService) RejectAcceptance(ctx context.Context, actor *models.User, protocol, notes, ip string) (*models.CustodyAcceptance, error) {
	return s.decide(ctx, actor, protocol, notes, ip, models.AcceptanceRejected)
}

func (s *CustodyService) decide(ctx context.Context, actor *models.User, protocol, notes, ip string, status models.AcceptanceStatus) (*models.CustodyAcceptance, error) {
	var acc models.CustodyAcceptance
	err := s.run(ctx, func(tx *gorm.DB, out *Outbox) error {
		if err := tx.First(&acc, "protocol = ?", protocol).Error; err != nil {
			return err
		}
		var c models.Custody
		if err := tx.First(&c, "id = ?", acc.CustodyID).Error; err != nil {
			return err
		}
		if actor.ID != c.OfficerID && !actor.IsAdmin && !actor.IsSuperuser {
			return permissions.ErrForbidden
		}
		if acc.Status != models.AcceptancePending {
			return ErrNotPending
		}
		if c.IsReturned() {
			return ErrAlreadyReturned
		}

		at := s.now()
		acc.Status, acc.AcceptedAt, acc.IPAddress, acc.Notes = status, &at, ip, notes
		if err := tx.Model(&acc).Updates(map[string]interface{}{
			"status":      status,
			"accepted_at": at,
			"ip_address":  ip,
			"notes":       notes,
		}).Error; err != nil {
			return err
		}
		c.AcceptanceStatus = status
		updates := map[string]interface{}{"acceptance_status": status}
		if status == models.AcceptanceConfirmed {
			c.AcceptedAt = &at
			updates["accepted_at"] = at
		}
		if err := tx.Model(&c).Updates(updates).Error; err != nil {
			return err
		}
		if status != models.AcceptanceConfirmed {
			return nil
		}
		return s.hub.Dispatch(tx, Event{Kind: EventAcceptanceConfirmed, Custody: &c, Acceptance: &acc, ActorID: actor.ID}, out)
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"protocol": protocol, "status": status}).Info("custody acceptance decided")
	return &acc, nil
}
