//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// InMemoryPreferenceRepository implements repositories.PreferenceRepository in memory.
type InMemoryPreferenceRepository struct {
	Repo   string
	GetErr error
	SetErr error
	// spy: values passed to SetRepo
	SetCalls []string
}

var _ repositories.PreferenceRepository = (*InMemoryPreferenceRepository)(nil)

func (r *InMemoryPreferenceRepository) GetRepo(_ context.Context) (string, error) {
	if r.GetErr != nil {
		return "", r.GetErr
	}
	return r.Repo, nil
}

func (r *InMemoryPreferenceRepository) SetRepo(_ context.Context, repoURL string) error {
	r.SetCalls = append(r.SetCalls, repoURL)
	if r.SetErr != nil {
		return r.SetErr
	}
	r.Repo = repoURL
	return nil
}

// InMemoryProjectTypeCacheRepository implements repositories.ProjectTypeCacheRepository in memory.
type InMemoryProjectTypeCacheRepository struct {
	mu      sync.Mutex
	Entries map[string]entities.ProjectTypeCacheEntry
	GetErr  error
	SetErr  error
}

var _ repositories.ProjectTypeCacheRepository = (*InMemoryProjectTypeCacheRepository)(nil)

func NewInMemoryProjectTypeCacheRepository() *InMemoryProjectTypeCacheRepository {
	return &InMemoryProjectTypeCacheRepository{Entries: make(map[string]entities.ProjectTypeCacheEntry)}
}

func (r *InMemoryProjectTypeCacheRepository) GetProjectType(
	_ context.Context,
	projectName string,
) (*entities.ProjectTypeCacheEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.GetErr != nil {
		return nil, false, r.GetErr
	}
	entry, ok := r.Entries[projectName]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

func (r *InMemoryProjectTypeCacheRepository) SetProjectType(
	_ context.Context,
	projectName string,
	entry entities.ProjectTypeCacheEntry,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SetErr != nil {
		return r.SetErr
	}
	r.Entries[projectName] = entry
	return nil
}

// Entry returns the cached entry for projectName, if any.
func (r *InMemoryProjectTypeCacheRepository) Entry(projectName string) (entities.ProjectTypeCacheEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.Entries[projectName]
	return entry, ok
}
