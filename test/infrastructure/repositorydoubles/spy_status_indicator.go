//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// SpyStatusIndicator records Show and Hide calls.
type SpyStatusIndicator struct {
	mu        sync.Mutex
	Messages  []string
	HideCount int
}

var _ repositories.StatusIndicator = (*SpyStatusIndicator)(nil)

func (s *SpyStatusIndicator) Show(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, message)
}

func (s *SpyStatusIndicator) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.HideCount++
}

// ShowCount returns how many times Show was called.
func (s *SpyStatusIndicator) ShowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Messages)
}

// Hides returns how many times Hide was called.
func (s *SpyStatusIndicator) Hides() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.HideCount
}
