package storage

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

const repoKey = "drupalpod_repo"

// PreferenceRepository keeps the workspace repository URL in the sync area.
type PreferenceRepository struct {
	area *FileArea
}

func NewPreferenceRepository(settings *entities.Settings) *PreferenceRepository {
	return &PreferenceRepository{area: NewFileArea(settings.Storage.SyncFile)}
}

func (it *PreferenceRepository) GetRepo(_ context.Context) (string, error) {
	var repo string
	if _, err := it.area.Get(repoKey, &repo); err != nil {
		return "", err
	}
	return repo, nil
}

func (it *PreferenceRepository) SetRepo(_ context.Context, repoURL string) error {
	return it.area.Set(repoKey, repoURL)
}
