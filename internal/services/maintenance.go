package services

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/arcanosig/arcano/backend/internal/logger"
)

const (
	expireOperationsSpec = "@hourly"
	purgeBlacklistSpec   = "@daily"
)

// MaintenanceService runs the periodic housekeeping jobs.
type MaintenanceService struct {
	Cron       *cron.Cron
	operations *OperationService
	auth       *AuthService
	log        *logrus.Entry
}

func NewMaintenanceService(operations *OperationService, auth *AuthService) (*MaintenanceService, error) {
	s := &MaintenanceService{
		Cron:       cron.New(),
		operations: operations,
		auth:       auth,
		log:        logger.Component("cron"),
	}
	if _, err := s.Cron.AddFunc(expireOperationsSpec, func() { s.ExpireOperations(context.Background()) }); err != nil {
		return nil, err
	}
	if _, err := s.Cron.AddFunc(purgeBlacklistSpec, s.PurgeBlacklist); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MaintenanceService) Start() { s.Cron.Start() }

// Stop halts the scheduler and waits for running jobs until ctx is done.
func (s *MaintenanceService) Stop(ctx context.Context) {
	select {
	case <-s.Cron.Stop().Done():
	case <-ctx.Done():
	}
}

// ExpireOperations deactivates operations whose end date has passed.
func (s *MaintenanceService) ExpireOperations(ctx context.Context) {
	n, err := s.operations.DeactivateExpired(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to deactivate expired operations")
		return
	}
	if n > 0 {
		s.log.WithField("count", n).Info("expired operations deactivated")
	}
}

func (s *MaintenanceService) PurgeBlacklist() {
	n, err := s.auth.PurgeBlacklist()
	if err != nil {
		s.log.WithError(err).Error("failed to purge token blacklist")
		return
	}
	s.log.WithField("count", n).Debug("token blacklist purged")
}
