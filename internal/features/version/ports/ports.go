package ports

import (
	"context"

	"codex-service/internal/features/version/domain"
)

// VersionService defines the primary port for the version check.
type VersionService interface {
	GetVersion(ctx context.Context) (*domain.VersionInfo, error)
	SetVersion(ctx context.Context, latestVersion string, updateType domain.UpdateType, appStoreLink string) error
	ResetVersion(ctx context.Context) error
}

// VersionRepository defines the secondary port for the operator override.
// Get returns nil, nil when no override is stored.
type VersionRepository interface {
	Save(ctx context.Context, info *domain.VersionInfo) error
	Get(ctx context.Context) (*domain.VersionInfo, error)
	Delete(ctx context.Context) error
}
