//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
)

// StubRepoPreferenceCommand is a stub implementation of commands.RepoPreference.
type StubRepoPreferenceCommand struct {
	Repo         string
	SetErr       error
	InstallErr   error
	SetURLs      []string
	SetVerify    []bool
	InstallCount int
}

var _ commands.RepoPreference = (*StubRepoPreferenceCommand)(nil)

func (s *StubRepoPreferenceCommand) Get(_ context.Context) string { return s.Repo }

func (s *StubRepoPreferenceCommand) Set(_ context.Context, url string, verify bool) error {
	s.SetURLs = append(s.SetURLs, url)
	s.SetVerify = append(s.SetVerify, verify)
	return s.SetErr
}

func (s *StubRepoPreferenceCommand) Install(_ context.Context) error {
	s.InstallCount++
	return s.InstallErr
}
