package repositories

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// PreferenceRepository is the sync-scoped storage holding user preferences.
type PreferenceRepository interface {
	// GetRepo returns the stored repository URL, or "" when none is stored.
	GetRepo(ctx context.Context) (string, error)
	SetRepo(ctx context.Context, url string) error
}

// ProjectTypeCacheRepository is the local-scoped storage caching project types.
type ProjectTypeCacheRepository interface {
	// GetProjectType returns the cached entry for projectName, if any.
	GetProjectType(ctx context.Context, projectName string) (*entities.ProjectTypeCacheEntry, bool, error)
	SetProjectType(ctx context.Context, projectName string, entry entities.ProjectTypeCacheEntry) error
}
