//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
)

// StubResolveProjectTypeCommand is a stub implementation of commands.ResolveProjectType.
// It is safe to call from the presenter's background goroutine.
type StubResolveProjectTypeCommand struct {
	ProjectType string
	ExecuteErr  error

	mu    sync.Mutex
	names []string
}

var _ commands.ResolveProjectType = (*StubResolveProjectTypeCommand)(nil)

func (s *StubResolveProjectTypeCommand) Execute(_ context.Context, projectName string) (string, error) {
	s.mu.Lock()
	s.names = append(s.names, projectName)
	s.mu.Unlock()
	return s.ProjectType, s.ExecuteErr
}

// Names returns the project names that were resolved.
func (s *StubResolveProjectTypeCommand) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}
