//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// StubReadIssueCommand is a stub implementation of commands.ReadIssue.
type StubReadIssueCommand struct {
	Metadata   *entities.IssueMetadata
	ExecuteErr error
	LastOpts   commands.ReadIssueOptions
	CallCount  int
}

var _ commands.ReadIssue = (*StubReadIssueCommand)(nil)

func (s *StubReadIssueCommand) Execute(
	_ context.Context,
	opts commands.ReadIssueOptions,
) (*entities.IssueMetadata, error) {
	s.CallCount++
	s.LastOpts = opts
	return s.Metadata, s.ExecuteErr
}
