package repositories

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// PageInfoRepository is one strategy for reading an issue page. Strategies
// are tried in rank order until one returns a successful result.
type PageInfoRepository interface {
	// Name returns the strategy identifier (e.g. "attached", "fetch").
	Name() string

	// Available reports whether the strategy can run in this environment.
	Available(ctx context.Context) bool

	// Extract reads the page at pageURL and returns its metadata without a
	// project type.
	Extract(ctx context.Context, pageURL string) (*entities.IssueMetadata, error)
}
