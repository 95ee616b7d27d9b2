package service

import (
	"context"
	"errors"
	"fmt"

	"codex-service/internal/core/config"
	"codex-service/internal/core/logger"
	"codex-service/internal/features/version/domain"
	"codex-service/internal/features/version/ports"

	"go.uber.org/zap"
)

// ErrOverridesDisabled is returned by write operations when no override store is configured.
var ErrOverridesDisabled = errors.New("version overrides are disabled")

// VersionServiceImpl implements ports.VersionService.
// The configured payload is served unless an operator override is stored.
type VersionServiceImpl struct {
	defaults domain.VersionInfo
	// repo holds operator overrides; nil when Redis is not configured.
	repo ports.VersionRepository
}

// NewVersionService creates a new VersionServiceImpl. repo may be nil.
func NewVersionService(cfg config.VersionConfig, repo ports.VersionRepository) *VersionServiceImpl {
	return &VersionServiceImpl{
		defaults: domain.VersionInfo{
			LatestVersion: cfg.LatestVersion,
			UpdateType:    domain.UpdateType(cfg.UpdateType),
			AppStoreLink:  cfg.AppStoreLink,
		},
		repo: repo,
	}
}

// GetVersion returns the override when one is stored, else the configured payload.
// A failing store is logged and the configured payload is served.
func (s *VersionServiceImpl) GetVersion(ctx context.Context) (*domain.VersionInfo, error) {
	info := s.defaults
	if s.repo == nil {
		return &info, nil
	}

	override, err := s.repo.Get(ctx)
	if err != nil {
		logger.Get().Warn("Failed to read version override, serving defaults", zap.Error(err))
		return &info, nil
	}
	if override != nil {
		return override, nil
	}

	return &info, nil
}

// SetVersion validates and stores an override.
func (s *VersionServiceImpl) SetVersion(ctx context.Context, latestVersion string, updateType domain.UpdateType, appStoreLink string) error {
	if s.repo == nil {
		return ErrOverridesDisabled
	}

	info, err := domain.NewVersionInfo(latestVersion, updateType, appStoreLink)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, info); err != nil {
		return fmt.Errorf("service: failed to save version info: %w", err)
	}

	return nil
}

// ResetVersion removes the override so the configured payload is served again.
func (s *VersionServiceImpl) ResetVersion(ctx context.Context) error {
	if s.repo == nil {
		return ErrOverridesDisabled
	}

	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove version info: %w", err)
	}

	return nil
}
