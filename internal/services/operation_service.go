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
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

const maxOperationYearsAhead = 5

// OperationInput is the create/update payload. Dates are YYYY-MM-DD.
type OperationInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// OperationSummary aggregates the teams and custodies of an operation.
type OperationSummary struct {
	Operation         models.Operation `json:"operation"`
	Status            string           `json:"status"`
	DurationDays      int              `json:"duration_days"`
	DaysRemaining     int              `json:"days_remaining"`
	Teams             int64            `json:"teams"`
	Members           int64            `json:"members"`
	ActiveCustodies   int64            `json:"active_custodies"`
	ReturnedCustodies int64            `json:"returned_custodies"`
	PendingAcceptance int64            `json:"pending_acceptance"`
}

// TeamResources is a team with everything handed to it.
type TeamResources struct {
	models.Team
	Custodies []models.Custody `json:"custodies"`
}

// OperationResources is the tree below an operation: teams with commander,
// members and vehicle, and each team's custodies with their items.
type OperationResources struct {
	Operation  models.Operation `json:"operation"`
	Status     string           `json:"status"`
	TotalTeams int              `json:"total_teams"`
	Teams      []TeamResources  `json:"teams"`
}

type OperationService struct {
	db  *gorm.DB
	now func() time.Time
	log *logrus.Entry
}

func NewOperationService(db *gorm.DB) *OperationService {
	return &OperationService{db: db, now: utcNow, log: logger.Component("operations")}
}

func parseDate(field, v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, models.Invalid(field, "data inválida, use AAAA-MM-DD")
	}
	return t, nil
}

func (s *OperationService) validate(in OperationInput, existing *models.Operation) (start, end time.Time, err error) {
	if strings.TrimSpace(in.Name) == "" {
		return start, end, models.Invalid("name", "nome é obrigatório")
	}
	if start, err = parseDate("start_date", in.StartDate); err != nil {
		return
	}
	if end, err = parseDate("end_date", in.EndDate); err != nil {
		return
	}
	today := models.Day(s.now())
	if end.Before(start) {
		return start, end, models.Invalid("end_date", "a data final deve ser igual ou posterior à data inicial")
	}
	limit := today.AddDate(maxOperationYearsAhead, 0, 0)
	if start.After(limit) || end.After(limit) {
		return start, end, models.Invalid("end_date", fmt.Sprintf("datas não podem ultrapassar %d anos no futuro", maxOperationYearsAhead))
	}
	switch {
	case existing == nil:
		if start.Before(today) {
			return start, end, models.Invalid("start_date", "a data inicial não pode estar no passado")
		}
	case existing.IsActive && start.Before(today) && !start.Equal(models.Day(existing.StartDate)):
		return start, end, models.Invalid("start_date", "não é possível mover o início de uma operação ativa para o passado")
	}
	return start, end, nil
}

func (s *OperationService) checkUnique(name string, start time.Time, exceptID uint) error {
	var n int64
	q := s.db.Model(&models.Operation{}).Where("name = ? AND start_date = ?", strings.ToUpper(strings.TrimSpace(name)), start)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return models.Invalid("name", "já existe uma operação com este nome e data inicial")
	}
	return nil
}

func (s *OperationService) Create(ctx context.Context, in OperationInput) (*models.Operation, error) {
	start, end, err := s.validate(in, nil)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(in.Name, start, 0); err != nil {
		return nil, err
	}
	op := &models.Operation{Name: in.Name, Description: in.Description, StartDate: start, EndDate: end, IsActive: true}
	if err := s.db.WithContext(ctx).Create(op).Error; err != nil {
		return nil, err
	}
	return op, nil
}

func (s *OperationService) Update(ctx context.Context, id uint, in OperationInput) (*models.Operation, error) {
	op, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	start, end, err := s.validate(in, op)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(in.Name, start, op.ID); err != nil {
		return nil, err
	}
	op.Name, op.Description, op.StartDate, op.EndDate = in.Name, in.Description, start, end
	if err := s.db.WithContext(ctx).Save(op).Error; err != nil {
		return nil, err
	}
	return op, nil
}

func (s *OperationService) Get(id uint) (*models.Operation, error) {
	var op models.Operation
	if err := s.db.First(&op, id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

// List returns operations, most recent start first.
func (s *OperationService) List(activeOnly bool) ([]models.Operation, error) {
	var ops []models.Operation
	q := s.db.Order("start_date desc, id desc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&ops).Error
	return ops, err
}

// SetActive toggles an operation. An operation that already ended cannot be activated.
func (s *OperationService) SetActive(ctx context.Context, id uint, active bool) (*models.Operation, error) {
	op, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if active && models.Day(op.EndDate).Before(models.Day(s.now())) {
		return nil, models.Invalid("end_date", "não é possível ativar uma operação já encerrada")
	}
	if op.IsActive == active {
		return op, nil
	}
	op.IsActive = active
	if err := s.db.WithContext(ctx).Model(op).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	return op, nil
}

// DeactivateExpired turns off every active operation whose end date has passed.
func (s *OperationService) DeactivateExpired(ctx context.Context) (int, error) {
	var expired []models.Operation
	if err := s.db.Where("is_active = ? AND end_date < ?", true, models.Day(s.now())).Find(&expired).Error; err != nil {
		return 0, err
	}
	for i := range expired {
		if err := s.db.WithContext(ctx).Model(&expired[i]).Update("is_active", false).Error; err != nil {
			return i, err
		}
		s.log.WithField("operation_id", expired[i].ID).Info("operation deactivated after end date")
	}
	return len(expired), nil
}

func (s *OperationService) Teams(id uint) ([]models.Team, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	var teams []models.Team
	err := s.db.Preload("Commander").Preload("Vehicle").Where("operation_id = ?", id).Order("name").Find(&teams).Error
	return teams, err
}

func (s *OperationService) Summary(id uint) (*OperationSummary, error) {
	op, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	today := s.now()
	sum := &OperationSummary{
		Operation:     *op,
		Status:        op.Status(today),
		DurationDays:  op.DurationDays(),
		DaysRemaining: op.DaysRemaining(today),
	}
	teamIDs := s.db.Model(&models.Team{}).Select("id").Where("operation_id = ?", id)
	counts := []struct {
		dst *int64
		q   *gorm.DB
	}{
		{&sum.Teams, s.db.Model(&models.Team{}).Where("operation_id = ?", id)},
		{&sum.Members, s.db.Model(&models.TeamMember{}).Where("team_id IN (?)", teamIDs)},
		{&sum.ActiveCustodies, s.db.Model(&models.Custody{}).Where("team_id IN (?) AND returned_at IS NULL", teamIDs)},
		{&sum.ReturnedCustodies, s.db.Model(&models.Custody{}).Where("team_id IN (?) AND returned_at IS NOT NULL", teamIDs)},
		{&sum.PendingAcceptance, s.db.Model(&models.Custody{}).Where("team_id IN (?) AND acceptance_status = ?", teamIDs, models.AcceptancePending)},
	}
	for _, c := range counts {
		if err := c.q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Resources builds the operation tree restricted to the teams actor may
// access. Users outside every team get permissions.ErrForbidden.
func (s *OperationService) Resources(actor *models.User, id uint) (*OperationResources, error) {
	if actor == nil {
		return nil, permissions.ErrForbidden
	}
	op, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	var teams []models.Team
	err = s.db.Preload("Commander").Preload("Vehicle").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Members.User").
		Where("operation_id = ?", id).Order("name").Find(&teams).Error
	if err != nil {
		return nil, err
	}

	res := &OperationResources{Operation: *op, Status: op.Status(s.now()), TotalTeams: len(teams), Teams: []TeamResources{}}
	index := map[uint]int{}
	var ids []uint
	for i := range teams {
		member := false
		for _, m := range teams[i].Members {
			if m.UserID == actor.ID {
				member = true
				break
			}
		}
		if !permissions.CanAccessTeam(actor, &teams[i], member) {
			continue
		}
		index[teams[i].ID] = len(res.Teams)
		ids = append(ids, teams[i].ID)
		res.Teams = append(res.Teams, TeamResources{Team: teams[i], Custodies: []models.Custody{}})
	}
	if len(ids) == 0 {
		if !permissions.CanManageOperations(actor) {
			return nil, fmt.Errorf("%w: not a member of any team in this operation", permissions.ErrForbidden)
		}
		return res, nil
	}

	var custodies []models.Custody
	err = s.db.Preload("Officer").Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Where("team_id IN ?", ids).Order("delivered_at desc").Find(&custodies).Error
	if err != nil {
		return nil, err
	}
	for _, c := range custodies {
		t := &res.Teams[index[c.TeamID]]
		t.Custodies = append(t.Custodies, c)
	}
	return res, nil
}

// requireActiveOperation loads the operation and fails when it is not active.
func requireActiveOperation(db *gorm.DB, id uint) (*models.Operation, error) {
	var op models.Operation
	if err := db.First(&op, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Invalid("operation_id", "operação não encontrada")
		}
		return nil, err
	}
	if !op.IsActive {
		return nil, ErrOperationClosed
	}
	return &op, nil
}
