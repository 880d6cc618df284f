//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// SpyTabRepository records the URLs it was asked to open.
type SpyTabRepository struct {
	OpenErr    error
	OpenedURLs []string
}

var _ repositories.TabRepository = (*SpyTabRepository)(nil)

func (s *SpyTabRepository) Open(_ context.Context, url string) error {
	s.OpenedURLs = append(s.OpenedURLs, url)
	return s.OpenErr
}

// StubRemoteRepository implements repositories.RemoteRepository as a configurable stub.
type StubRemoteRepository struct {
	VerifyErr    error
	VerifiedURLs []string
}

var _ repositories.RemoteRepository = (*StubRemoteRepository)(nil)

func (s *StubRemoteRepository) Verify(_ context.Context, url string) error {
	s.VerifiedURLs = append(s.VerifiedURLs, url)
	return s.VerifyErr
}
