package service

import (
	"context"
	"time"

	"goalbot/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService runs periodic housekeeping over bot users
type MaintenanceService struct {
	userRepo repository.BotUserRepository
	codeTTL  time.Duration
	logger   *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(userRepo repository.BotUserRepository, codeTTL time.Duration, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		userRepo: userRepo,
		codeTTL:  codeTTL,
		logger:   logger,
	}
}

// CleanupStaleCodes clears verification codes older than the configured TTL
func (s *MaintenanceService) CleanupStaleCodes(ctx context.Context) error {
	s.logger.Info("Starting cleanup of stale verification codes", zap.Duration("ttl", s.codeTTL))

	n, err := s.userRepo.ClearStaleCodes(ctx, s.codeTTL)
	if err != nil {
		s.logger.Error("Failed to cleanup stale verification codes", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("cleared", n))
	return nil
}
