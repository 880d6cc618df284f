//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// StubLaunchCommand is a stub implementation of commands.Launch.
type StubLaunchCommand struct {
	URL         string
	ExecuteErr  error
	Requests    []entities.LaunchRequest
	LastOptions commands.LaunchOptions
}

var _ commands.Launch = (*StubLaunchCommand)(nil)

func (s *StubLaunchCommand) Execute(
	_ context.Context,
	request entities.LaunchRequest,
	opts commands.LaunchOptions,
) (string, error) {
	s.Requests = append(s.Requests, request)
	s.LastOptions = opts
	return s.URL, s.ExecuteErr
}
