package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/models"
)

// consumptionWindow is how many recent refuellings the average consumption covers.
const consumptionWindow = 5

// FuelLogInput is the create/update payload. FilledAt defaults to now.
type FuelLogInput struct {
	VehicleID uint       `json:"veiculo_id"`
	FilledAt  *time.Time `json:"data"`
	Odometer  uint       `json:"km_atual"`
	Liters    float64    `json:"litros"`
	TotalCost float64    `json:"valor_total"`
	Station   string     `json:"posto"`
	Notes     string     `json:"observacao"`
}

// FuelLogFilter narrows fuel log listings. Zero values match everything.
type FuelLogFilter struct {
	VehicleID uint
	From      time.Time
	To        time.Time
}

// FuelSummary aggregates the refuellings of one vehicle.
type FuelSummary struct {
	VehicleID         uint            `json:"veiculo_id"`
	Logs              int64           `json:"total_abastecimentos"`
	Last              *models.FuelLog `json:"ultimo_abastecimento,omitempty"`
	AverageKmPerLiter *float64        `json:"consumo_medio,omitempty"`
	MonthCost         float64         `json:"valor_total_mes"`
}

type FuelLogService struct {
	db  *gorm.DB
	now func() time.Time
	log *logrus.Entry
}

func NewFuelLogService(db *gorm.DB) *FuelLogService {
	return &FuelLogService{db: db, now: utcNow, log: logger.Component("fuel")}
}

func (s *FuelLogService) fill(f *models.FuelLog, in FuelLogInput, now time.Time) error {
	f.FilledAt = now
	if in.FilledAt != nil {
		f.FilledAt = in.FilledAt.UTC()
	}
	f.Odometer, f.Liters, f.TotalCost, f.Station, f.Notes = in.Odometer, in.Liters, in.TotalCost, in.Station, in.Notes
	if err := f.Validate(); err != nil {
		return err
	}
	if f.FilledAt.After(now) {
		return models.Invalid("data", "data do abastecimento não pode ser futura")
	}
	return nil
}

// checkSequence keeps the odometer non-decreasing across the vehicle's logs
// ordered by date.
func checkSequence(tx *gorm.DB, f *models.FuelLog) error {
	var n int64
	earlier := tx.Model(&models.FuelLog{}).
		Where("vehicle_id = ? AND filled_at <= ? AND odometer > ?", f.VehicleID, f.FilledAt, f.Odometer)
	later := tx.Model(&models.FuelLog{}).
		Where("vehicle_id = ? AND filled_at >= ? AND odometer < ?", f.VehicleID, f.FilledAt, f.Odometer)
	if f.ID != 0 {
		earlier = earlier.Where("id <> ?", f.ID)
		later = later.Where("id <> ?", f.ID)
	}
	if err := earlier.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return models.Invalid("km_atual", "existe abastecimento anterior com quilometragem maior")
	}
	if err := later.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return models.Invalid("km_atual", "existe abastecimento posterior com quilometragem menor")
	}
	return nil
}

// raiseOdometer moves the vehicle odometer forward to km. It never goes back.
func raiseOdometer(tx *gorm.DB, v *models.Vehicle, km uint) error {
	if km <= v.Odometer {
		return nil
	}
	if err := tx.Model(v).Update("odometer", km).Error; err != nil {
		return err
	}
	v.Odometer = km
	return nil
}

// Create records a refuelling of an operational vehicle. The odometer may not
// be below the vehicle's current reading, which it then advances.
func (s *FuelLogService) Create(ctx context.Context, actor *models.User, in FuelLogInput) (*models.FuelLog, error) {
	now := s.now()
	var f *models.FuelLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		v, err := loadVehicle(tx, in.VehicleID)
		if err != nil {
			return err
		}
		if err := authorizeVehicle(tx, actor, v.ID); err != nil {
			return err
		}
		if !v.Operational {
			return models.Invalid("veiculo_id", "não é possível registrar abastecimento para viatura fora de condições de uso")
		}
		f = &models.FuelLog{VehicleID: v.ID, RecordedBy: actor.ID}
		if err := s.fill(f, in, now); err != nil {
			return err
		}
		if f.Odometer < v.Odometer {
			return models.Invalid("km_atual", fmt.Sprintf("quilometragem não pode ser menor que a atual da viatura (%d km)", v.Odometer))
		}
		if err := checkSequence(tx, f); err != nil {
			return err
		}
		if err := tx.Create(f).Error; err != nil {
			return err
		}
		f.Vehicle = v
		return raiseOdometer(tx, v, f.Odometer)
	})
	if err != nil {
		return nil, err
	}
	s.log.WithField("vehicle_id", f.VehicleID).WithField("odometer", f.Odometer).Info("fuel log recorded")
	return f, nil
}

// Update corrects a fuel log. The vehicle cannot change.
func (s *FuelLogService) Update(ctx context.Context, actor *models.User, id uint, in FuelLogInput) (*models.FuelLog, error) {
	now := s.now()
	var f models.FuelLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Vehicle").First(&f, id).Error; err != nil {
			return err
		}
		if err := authorizeVehicle(tx, actor, f.VehicleID); err != nil {
			return err
		}
		if err := s.fill(&f, in, now); err != nil {
			return err
		}
		if err := checkSequence(tx, &f); err != nil {
			return err
		}
		vehicle := f.Vehicle
		f.Vehicle = nil
		if err := tx.Save(&f).Error; err != nil {
			return err
		}
		f.Vehicle = vehicle
		if vehicle == nil {
			return nil
		}
		return raiseOdometer(tx, vehicle, f.Odometer)
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete removes a fuel log. The vehicle odometer keeps its reading.
func (s *FuelLogService) Delete(ctx context.Context, actor *models.User, id uint) error {
	f, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(f).Error
}

func (s *FuelLogService) Get(actor *models.User, id uint) (*models.FuelLog, error) {
	var f models.FuelLog
	if err := s.db.Preload("Vehicle").First(&f, id).Error; err != nil {
		return nil, err
	}
	if err := authorizeVehicle(s.db, actor, f.VehicleID); err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns the logs actor may see, newest first.
func (s *FuelLogService) List(actor *models.User, filter FuelLogFilter) ([]models.FuelLog, error) {
	q := visibleVehicles(s.db, s.db.Preload("Vehicle"), actor, "vehicle_id")
	if filter.VehicleID != 0 {
		q = q.Where("vehicle_id = ?", filter.VehicleID)
	}
	if !filter.From.IsZero() {
		q = q.Where("filled_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("filled_at < ?", filter.To)
	}
	var list []models.FuelLog
	err := q.Order("filled_at desc, id desc").Find(&list).Error
	return list, err
}

// Summary reports the refuelling count, the latest log, the average km/l over
// the last consumptionWindow intervals and the cost in the current month.
func (s *FuelLogService) Summary(actor *models.User, vehicleID uint) (*FuelSummary, error) {
	v, err := loadVehicle(s.db, vehicleID)
	if err != nil {
		return nil, err
	}
	if err := authorizeVehicle(s.db, actor, v.ID); err != nil {
		return nil, err
	}
	sum := &FuelSummary{VehicleID: v.ID}
	if err := s.db.Model(&models.FuelLog{}).Where("vehicle_id = ?", v.ID).Count(&sum.Logs).Error; err != nil {
		return nil, err
	}

	var recent []models.FuelLog
	if err := s.db.Where("vehicle_id = ?", v.ID).Order("filled_at desc, id desc").
		Limit(consumptionWindow + 1).Find(&recent).Error; err != nil {
		return nil, err
	}
	if len(recent) > 0 {
		sum.Last = &recent[0]
	}
	sum.AverageKmPerLiter = averageConsumption(recent)

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if err := s.db.Model(&models.FuelLog{}).Where("vehicle_id = ? AND filled_at >= ?", v.ID, monthStart).
		Select("COALESCE(SUM(total_cost), 0)").Scan(&sum.MonthCost).Error; err != nil {
		return nil, err
	}
	return sum, nil
}

// averageConsumption expects logs newest first. Each interval counts the
// distance since the previous refuelling against the liters of the newer one.
func averageConsumption(logs []models.FuelLog) *float64 {
	var km, liters float64
	for i := 0; i+1 < len(logs); i++ {
		if logs[i].Odometer <= logs[i+1].Odometer {
			continue
		}
		km += float64(logs[i].Odometer - logs[i+1].Odometer)
		liters += logs[i].Liters
	}
	if km == 0 || liters == 0 {
		return nil
	}
	avg := km / liters
	return &avg
}
