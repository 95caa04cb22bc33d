package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/models"
)

// Models lists every persisted type in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.UserChangeLog{},
		&models.TokenBlacklist{},
		&models.Setting{},
		&models.EmailLog{},
		&models.Report{},
		&models.ReportChangeLog{},
		&models.ReportShare{},
		&models.ShareAccess{},
		&models.Vehicle{},
		&models.VehiclePhoto{},
		&models.FuelLog{},
		&models.Operation{},
		&models.Team{},
		&models.TeamMember{},
		&models.Custody{},
		&models.CustodyItem{},
		&models.CustodyAcceptance{},
		&models.Notification{},
		&models.NotificationProvider{},
		&models.HistoryRecord{},
	}
}

// Migrate applies GORM auto-migrations for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
