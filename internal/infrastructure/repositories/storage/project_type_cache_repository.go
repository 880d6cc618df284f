package storage

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// ProjectTypeCacheRepository keeps resolved project types in the local area.
type ProjectTypeCacheRepository struct {
	area *FileArea
}

func NewProjectTypeCacheRepository(settings *entities.Settings) *ProjectTypeCacheRepository {
	return &ProjectTypeCacheRepository{area: NewFileArea(settings.Storage.LocalFile)}
}

func (it *ProjectTypeCacheRepository) GetProjectType(
	_ context.Context,
	projectName string,
) (*entities.ProjectTypeCacheEntry, bool, error) {
	var entry entities.ProjectTypeCacheEntry
	found, err := it.area.Get(entities.ProjectTypeCacheKey(projectName), &entry)
	if err != nil || !found {
		return nil, false, err
	}
	return &entry, true, nil
}

func (it *ProjectTypeCacheRepository) SetProjectType(
	_ context.Context,
	projectName string,
	entry entities.ProjectTypeCacheEntry,
) error {
	return it.area.Set(entities.ProjectTypeCacheKey(projectName), entry)
}
