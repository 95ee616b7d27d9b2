package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"codex-service/internal/core/cache"
	"codex-service/internal/features/version/domain"
)

const versionCacheKey = "app_version"

// RedisVersionRepository implements ports.VersionRepository on top of the cache port.
type RedisVersionRepository struct {
	cache cache.Cache
}

// NewRedisVersionRepository creates a new RedisVersionRepository.
func NewRedisVersionRepository(c cache.Cache) *RedisVersionRepository {
	return &RedisVersionRepository{
		cache: c,
	}
}

// Save stores the override without expiration; it lives until Delete.
func (r *RedisVersionRepository) Save(ctx context.Context, info *domain.VersionInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal version info: %w", err)
	}

	if err := r.cache.Set(ctx, versionCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save version info to cache: %w", err)
	}

	return nil
}

// Get retrieves the override, or nil when none is stored.
func (r *RedisVersionRepository) Get(ctx context.Context) (*domain.VersionInfo, error) {
	data, err := r.cache.Get(ctx, versionCacheKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get version info from cache: %w", err)
	}

	var info domain.VersionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal version info: %w", err)
	}

	return &info, nil
}

// Delete removes the override.
func (r *RedisVersionRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, versionCacheKey); err != nil {
		return fmt.Errorf("failed to delete version info from cache: %w", err)
	}
	return nil
}
