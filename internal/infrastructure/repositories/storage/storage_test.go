//go:build unit

package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/storage"
)

func newSettings(t *testing.T) *entities.Settings {
	t.Helper()
	dir := t.TempDir()
	settings := entities.DefaultSettings()
	settings.Storage.SyncFile = filepath.Join(dir, "sync", "sync.yaml")
	settings.Storage.LocalFile = filepath.Join(dir, "local", "local.yaml")
	return settings
}

func TestPreferenceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return empty when nothing was stored", func(t *testing.T) {
		t.Parallel()
		// given
		repository := storage.NewPreferenceRepository(newSettings(t))

		// when
		repo, err := repository.GetRepo(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, repo)
	})

	t.Run("should read back the stored repository", func(t *testing.T) {
		t.Parallel()
		// given
		repository := storage.NewPreferenceRepository(newSettings(t))
		require.NoError(t, repository.SetRepo(context.Background(), "https://github.com/me/drupalpod"))

		// when
		repo, err := repository.GetRepo(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/me/drupalpod", repo)
	})

	t.Run("should fail when the area file is corrupt", func(t *testing.T) {
		t.Parallel()
		// given
		settings := newSettings(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(settings.Storage.SyncFile), 0o700))
		require.NoError(t, os.WriteFile(settings.Storage.SyncFile, []byte("drupalpod_repo: [unclosed"), 0o600))
		repository := storage.NewPreferenceRepository(settings)

		// when
		_, err := repository.GetRepo(context.Background())

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the stored repository is not a string", func(t *testing.T) {
		t.Parallel()
		// given
		settings := newSettings(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(settings.Storage.SyncFile), 0o700))
		require.NoError(t, os.WriteFile(settings.Storage.SyncFile, []byte("drupalpod_repo: [a, b]\n"), 0o600))
		repository := storage.NewPreferenceRepository(settings)

		// when
		_, err := repository.GetRepo(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "drupalpod_repo")
	})
}

func TestProjectTypeCacheRepository(t *testing.T) {
	t.Parallel()

	t.Run("should miss when the project was never cached", func(t *testing.T) {
		t.Parallel()
		// given
		repository := storage.NewProjectTypeCacheRepository(newSettings(t))

		// when
		entry, found, err := repository.GetProjectType(context.Background(), "token")

		// then
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, entry)
	})

	t.Run("should keep entries for different projects side by side", func(t *testing.T) {
		t.Parallel()
		// given
		settings := newSettings(t)
		repository := storage.NewProjectTypeCacheRepository(settings)
		stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		ctx := context.Background()
		require.NoError(t, repository.SetProjectType(ctx, "token", entities.ProjectTypeCacheEntry{
			Type: "project_module", Timestamp: stamp,
		}))
		require.NoError(t, repository.SetProjectType(ctx, "olivero", entities.ProjectTypeCacheEntry{
			Type: "project_theme", Timestamp: stamp,
		}))

		// when
		token, tokenFound, tokenErr := repository.GetProjectType(ctx, "token")
		olivero, oliveroFound, oliveroErr := repository.GetProjectType(ctx, "olivero")

		// then
		require.NoError(t, tokenErr)
		require.NoError(t, oliveroErr)
		assert.True(t, tokenFound)
		assert.True(t, oliveroFound)
		assert.Equal(t, "project_module", token.Type)
		assert.True(t, stamp.Equal(token.Timestamp))
		assert.Equal(t, "project_theme", olivero.Type)

		raw, err := os.ReadFile(settings.Storage.LocalFile)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "project_type_token")
	})
}
