//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// StubProjectTypeRepository implements repositories.ProjectTypeRepository as a configurable stub.
type StubProjectTypeRepository struct {
	ProjectType string
	Found       bool
	LookupErr   error
	// Release, when set, blocks lookups until it is closed.
	Release chan struct{}

	mu          sync.Mutex
	LookupNames []string
}

var _ repositories.ProjectTypeRepository = (*StubProjectTypeRepository)(nil)

func (s *StubProjectTypeRepository) LookupProjectType(
	ctx context.Context,
	projectName string,
) (string, bool, error) {
	s.mu.Lock()
	s.LookupNames = append(s.LookupNames, projectName)
	s.mu.Unlock()

	if s.Release != nil {
		select {
		case <-s.Release:
		case <-ctx.Done():
			return "", false, ctx.Err()
		}
	}
	return s.ProjectType, s.Found, s.LookupErr
}

// Calls returns how many lookups were made.
func (s *StubProjectTypeRepository) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.LookupNames)
}
