package adapters

import (
	"context"
	"testing"

	"codex-service/internal/core/cache"
	"codex-service/internal/features/version/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (*RedisVersionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisVersionRepository(adapter), mr
}

func TestRedisVersionRepository_SaveGet(t *testing.T) {
	repo, mr := newRepository(t)
	ctx := context.Background()

	info := &domain.VersionInfo{
		LatestVersion: "1.12",
		UpdateType:    domain.UpdateTypeForce,
		AppStoreLink:  "https://apps.apple.com/app/codex",
	}
	require.NoError(t, repo.Save(ctx, info))

	assert.True(t, mr.Exists("codex:app_version"))
	assert.Equal(t, 0.0, mr.TTL("codex:app_version").Seconds())

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestRedisVersionRepository_GetMissing(t *testing.T) {
	repo, _ := newRepository(t)

	got, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisVersionRepository_GetCorrupt(t *testing.T) {
	repo, mr := newRepository(t)
	require.NoError(t, mr.Set("codex:app_version", "{not json"))

	got, err := repo.Get(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRedisVersionRepository_Delete(t *testing.T) {
	repo, mr := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.VersionInfo{LatestVersion: "1.12", AppStoreLink: "https://google.com"}))
	require.NoError(t, repo.Delete(ctx))
	assert.False(t, mr.Exists("codex:app_version"))

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisVersionRepository_Unreachable(t *testing.T) {
	repo, mr := newRepository(t)
	mr.Close()

	_, err := repo.Get(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrCacheMiss)
}
