package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

// TeamInput is the create/update payload of a team.
type TeamInput struct {
	Name        string `json:"name"`
	OperationID uint   `json:"operation_id"`
	CommanderID uint   `json:"commander_id"`
	VehicleID   *uint  `json:"vehicle_id"`
	MemberIDs   []uint `json:"member_ids"`
}

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

func activeUser(db *gorm.DB, field string, id uint) (*models.User, error) {
	var u models.User
	if err := db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Invalid(field, "usuário não encontrado")
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, models.Invalid(field, "usuário inativo")
	}
	return &u, nil
}

// memberElsewhere reports whether userID already belongs to a team of the
// operation other than exceptTeam.
func memberElsewhere(db *gorm.DB, operationID, userID, exceptTeam uint) (bool, error) {
	var n int64
	err := db.Model(&models.TeamMember{}).
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Where("teams.operation_id = ? AND team_members.user_id = ? AND teams.id <> ?", operationID, userID, exceptTeam).
		Count(&n).Error
	return n > 0, err
}

func (s *TeamService) checkVehicle(tx *gorm.DB, vehicleID *uint, exceptTeam uint) error {
	if vehicleID == nil {
		return nil
	}
	var v models.Vehicle
	if err := tx.First(&v, *vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Invalid("vehicle_id", "viatura não encontrada")
		}
		return err
	}
	var n int64
	if err := tx.Model(&models.Team{}).Where("vehicle_id = ? AND id <> ?", v.ID, exceptTeam).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return models.Invalid("vehicle_id", "viatura já vinculada a outra guarnição")
	}
	return nil
}

func (s *TeamService) addMember(tx *gorm.DB, team *models.Team, userID uint) error {
	if _, err := activeUser(tx, "user_id", userID); err != nil {
		return err
	}
	taken, err := memberElsewhere(tx, team.OperationID, userID, team.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrAlreadyMember
	}
	var existing int64
	if err := tx.Model(&models.TeamMember{}).Where("team_id = ? AND user_id = ?", team.ID, userID).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return tx.Create(&models.TeamMember{TeamID: team.ID, UserID: userID}).Error
}

// Create validates and stores a team. The commander becomes a member.
func (s *TeamService) Create(ctx context.Context, in TeamInput) (*models.Team, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.Invalid("name", "nome é obrigatório")
	}
	team := &models.Team{Name: in.Name, OperationID: in.OperationID, CommanderID: in.CommanderID, VehicleID: in.VehicleID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireActiveOperation(tx, in.OperationID); err != nil {
			return err
		}
		if _, err := activeUser(tx, "commander_id", in.CommanderID); err != nil {
			return err
		}
		if err := s.checkVehicle(tx, in.VehicleID, 0); err != nil {
			return err
		}
		if taken, err := memberElsewhere(tx, in.OperationID, in.CommanderID, 0); err != nil {
			return err
		} else if taken {
			return ErrAlreadyMember
		}
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		for _, id := range append([]uint{in.CommanderID}, in.MemberIDs...) {
			if err := s.addMember(tx, team, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(team.ID)
}

// Update changes name, commander and vehicle. A new commander is added as member.
func (s *TeamService) Update(ctx context.Context, id uint, in TeamInput) (*models.Team, error) {
	team, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.Invalid("name", "nome é obrigatório")
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireActiveOperation(tx, team.OperationID); err != nil {
			return err
		}
		if in.CommanderID != 0 && in.CommanderID != team.CommanderID {
			if err := s.addMember(tx, team, in.CommanderID); err != nil {
				return err
			}
			team.CommanderID = in.CommanderID
		}
		if err := s.checkVehicle(tx, in.VehicleID, team.ID); err != nil {
			return err
		}
		team.Name, team.VehicleID = in.Name, in.VehicleID
		return tx.Omit("Operation", "Commander", "Vehicle", "Members").Save(team).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *TeamService) Get(id uint) (*models.Team, error) {
	var t models.Team
	if err := s.db.Preload("Operation").Preload("Commander").Preload("Vehicle").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns teams, optionally of one operation. Users without full
// operations access only see teams they belong to.
func (s *TeamService) List(user *models.User, operationID uint) ([]models.Team, error) {
	q := s.db.Preload("Commander").Preload("Vehicle").Order("operation_id desc, name")
	if operationID != 0 {
		q = q.Where("operation_id = ?", operationID)
	}
	if !user.HasFullOperationsAccess() {
		q = q.Where("commander_id = ? OR id IN (?)", user.ID,
			s.db.Model(&models.TeamMember{}).Select("team_id").Where("user_id = ?", user.ID))
	}
	var teams []models.Team
	err := q.Find(&teams).Error
	return teams, err
}

func (s *TeamService) IsMember(teamID, userID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&n).Error
	return n > 0, err
}

// Authorize returns permissions.ErrForbidden when user cannot see the team.
func (s *TeamService) Authorize(user *models.User, team *models.Team) error {
	member, err := s.IsMember(team.ID, user.ID)
	if err != nil {
		return err
	}
	if !permissions.CanAccessTeam(user, team, member) {
		return permissions.ErrForbidden
	}
	return nil
}

func (s *TeamService) Members(teamID uint) ([]models.TeamMember, error) {
	if _, err := s.Get(teamID); err != nil {
		return nil, err
	}
	var members []models.TeamMember
	err := s.db.Preload("User").Where("team_id = ?", teamID).Order("id").Find(&members).Error
	return members, err
}

func (s *TeamService) AddMember(ctx context.Context, teamID, userID uint) (*models.TeamMember, error) {
	team, err := s.Get(teamID)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireActiveOperation(tx, team.OperationID); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyMember
		}
		return s.addMember(tx, team, userID)
	})
	if err != nil {
		return nil, err
	}
	var m models.TeamMember
	if err := s.db.Preload("User").Where("team_id = ? AND user_id = ?", teamID, userID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveMember deletes a membership. The commander cannot be removed.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID uint) error {
	team, err := s.Get(teamID)
	if err != nil {
		return err
	}
	if team.CommanderID == userID {
		return models.Invalid("user_id", "o comandante não pode ser removido da guarnição")
	}
	var m models.TeamMember
	if err := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&m).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&m).Error
}
