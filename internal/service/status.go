// Package service holds the status reconciliation logic shared by the hub's
// checkStatus channel and the REST drift-correction surface.
package service

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"
)

//go:generate mockgen -destination=mock_contract_test.go -package=service -source=status.go

type DBRepo interface {
	GetUserLiveStatus(ctx context.Context, userID string) (bool, error)
	SetUserLiveStatus(ctx context.Context, userID string, isLive bool) error
}

type PlatformClient interface {
	EnsureSubscribed(ctx context.Context, userID string) error
	CheckLiveStatus(ctx context.Context, userID string) (bool, error)
}

type StatusService struct {
	repository DBRepo
	platform   PlatformClient
	logger     logger_lib.LoggerInterface
}

func NewStatus(repo DBRepo, platform PlatformClient, logger logger_lib.LoggerInterface) *StatusService {
	return &StatusService{
		repository: repo,
		platform:   platform,
		logger:     logger,
	}
}

// Check makes sure the platform pushes future changes for the user, queries
// the current stream state directly to correct drift, writes the result
// through, and returns it. When the platform is unreachable it degrades to
// the last known stored status; subscription failures are logged and retried
// on the next call rather than here.
func (s *StatusService) Check(ctx context.Context, userID string) (bool, error) {
	if err := s.platform.EnsureSubscribed(ctx, userID); err != nil {
		s.logger.Warn(fmt.Sprintf("subscription registration for %s failed, will retry on next check: %v", userID, err))
	}

	isLive, err := s.platform.CheckLiveStatus(ctx, userID)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("live status query for %s failed, falling back to stored status: %v", userID, err))

		stored, dbErr := s.repository.GetUserLiveStatus(ctx, userID)
		if dbErr != nil {
			return false, fmt.Errorf("failed to read stored live status: %v", dbErr)
		}
		return stored, nil
	}

	stored, err := s.repository.GetUserLiveStatus(ctx, userID)
	if err != nil || stored != isLive {
		if err := s.repository.SetUserLiveStatus(ctx, userID, isLive); err != nil {
			return isLive, fmt.Errorf("failed to write live status: %v", err)
		}
	}

	return isLive, nil
}
