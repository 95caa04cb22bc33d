package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

type VehicleService struct {
	db      *gorm.DB
	storage Storage
	log     *logrus.Entry
}

// NewVehicleService builds the fleet service. storage holds vehicle photos and
// may be nil when no photo will be removed.
func NewVehicleService(db *gorm.DB, storage Storage) *VehicleService {
	return &VehicleService{db: db, storage: storage, log: logger.Component("vehicles")}
}

// List returns vehicles by plate. available keeps operational vehicles not
// assigned to a team of an active operation.
func (s *VehicleService) List(available bool) ([]models.Vehicle, error) {
	q := s.db.Order("plate")
	if available {
		busy := s.db.Model(&models.Team{}).Select("teams.vehicle_id").
			Joins("JOIN operations ON operations.id = teams.operation_id").
			Where("operations.is_active = ? AND teams.vehicle_id IS NOT NULL", true)
		q = q.Where("operational = ? AND id NOT IN (?)", true, busy)
	}
	var list []models.Vehicle
	err := q.Find(&list).Error
	return list, err
}

func (s *VehicleService) Get(id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VehicleService) Create(ctx context.Context, v *models.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Invalid("prefixo", "já existe uma viatura com esta placa")
		}
		return err
	}
	return nil
}

func (s *VehicleService) Update(ctx context.Context, id uint, in models.Vehicle) (*models.Vehicle, error) {
	v, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	v.Plate, v.Model, v.Operational, v.Odometer, v.Notes = in.Plate, in.Model, in.Operational, in.Odometer, in.Notes
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.Invalid("prefixo", "já existe uma viatura com esta placa")
		}
		return nil, err
	}
	return v, nil
}

// Delete removes a vehicle with its fuel logs and photos and clears it from any team.
func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	v, err := s.Get(id)
	if err != nil {
		return err
	}
	var photos []models.VehiclePhoto
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var teams []models.Team
		if err := tx.Where("vehicle_id = ?", v.ID).Find(&teams).Error; err != nil {
			return err
		}
		for i := range teams {
			if err := tx.Model(&teams[i]).Update("vehicle_id", nil).Error; err != nil {
				return err
			}
		}
		var logs []models.FuelLog
		if err := tx.Where("vehicle_id = ?", v.ID).Find(&logs).Error; err != nil {
			return err
		}
		for i := range logs {
			if err := tx.Delete(&logs[i]).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("vehicle_id = ?", v.ID).Find(&photos).Error; err != nil {
			return err
		}
		for i := range photos {
			if err := tx.Delete(&photos[i]).Error; err != nil {
				return err
			}
		}
		return tx.Delete(v).Error
	})
	if err != nil {
		return err
	}
	if s.storage != nil {
		for _, p := range photos {
			if err := s.storage.Delete(ctx, p.Path); err != nil {
				s.log.WithError(err).WithField("vehicle_id", v.ID).Warn("failed to remove vehicle photo")
			}
		}
	}
	return nil
}

func loadVehicle(db *gorm.DB, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Invalid("veiculo_id", "viatura não encontrada")
		}
		return nil, err
	}
	return &v, nil
}

// authorizeVehicle allows full operations users and the commander or members
// of the team the vehicle is assigned to.
func authorizeVehicle(db *gorm.DB, user *models.User, vehicleID uint) error {
	if user == nil {
		return permissions.ErrForbidden
	}
	if user.HasFullOperationsAccess() {
		return nil
	}
	var team models.Team
	err := db.Where("vehicle_id = ?", vehicleID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: vehicle is not assigned to a team", permissions.ErrForbidden)
	}
	if err != nil {
		return err
	}
	member, err := isTeamMember(db, team.ID, user.ID)
	if err != nil {
		return err
	}
	if !permissions.CanAccessTeam(user, &team, member) {
		return fmt.Errorf("%w: vehicle belongs to another team", permissions.ErrForbidden)
	}
	return nil
}

// visibleVehicles restricts q to rows whose column names a vehicle user may see.
func visibleVehicles(db, q *gorm.DB, user *models.User, column string) *gorm.DB {
	if user.HasFullOperationsAccess() {
		return q
	}
	teams := db.Model(&models.TeamMember{}).Select("team_id").Where("user_id = ?", user.ID)
	return q.Where(column+" IN (?)", db.Model(&models.Team{}).Select("vehicle_id").
		Where("vehicle_id IS NOT NULL AND (commander_id = ? OR id IN (?))", user.ID, teams))
}
