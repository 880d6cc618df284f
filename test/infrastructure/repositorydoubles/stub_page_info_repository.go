//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// StubPageInfoRepository implements repositories.PageInfoRepository as a configurable stub.
type StubPageInfoRepository struct {
	// --- identity ---
	StrategyName string

	// --- Available ---
	Unavailable bool

	// --- Extract ---
	Metadata     *entities.IssueMetadata
	ExtractErr   error
	ExtractCalls []string
}

var _ repositories.PageInfoRepository = (*StubPageInfoRepository)(nil)

func (s *StubPageInfoRepository) Name() string { return s.StrategyName }

func (s *StubPageInfoRepository) Available(_ context.Context) bool { return !s.Unavailable }

func (s *StubPageInfoRepository) Extract(
	_ context.Context,
	pageURL string,
) (*entities.IssueMetadata, error) {
	s.ExtractCalls = append(s.ExtractCalls, pageURL)
	return s.Metadata, s.ExtractErr
}
