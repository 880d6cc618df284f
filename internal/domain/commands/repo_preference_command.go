package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// RepoPreference is the interface for the repo preference store.
type RepoPreference interface {
	Get(ctx context.Context) string
	Set(ctx context.Context, url string, verify bool) error
	Install(ctx context.Context) error
}

// RepoPreferenceCommand reads and writes the Gitpod workspace repository URL.
// Reads and install share one fallback so the two paths never diverge.
type RepoPreferenceCommand struct {
	store    repositories.PreferenceRepository
	remote   repositories.RemoteRepository
	fallback string
}

// NewRepoPreferenceCommand creates a new RepoPreferenceCommand.
func NewRepoPreferenceCommand(
	store repositories.PreferenceRepository,
	remote repositories.RemoteRepository,
	settings *entities.Settings,
) *RepoPreferenceCommand {
	fallback := settings.Repo.Default
	if fallback == "" {
		fallback = entities.DefaultRepoURL
	}
	return &RepoPreferenceCommand{
		store:    store,
		remote:   remote,
		fallback: fallback,
	}
}

// Get returns the stored repository URL or the fallback.
func (it *RepoPreferenceCommand) Get(ctx context.Context) string {
	url, err := it.store.GetRepo(ctx)
	if err != nil {
		logger.Errorf("[preferences] Error getting DrupalPod repo: %v", err)
		return it.fallback
	}
	if url == "" {
		return it.fallback
	}
	return url
}

// Set stores url. An empty url is ignored.
func (it *RepoPreferenceCommand) Set(ctx context.Context, url string, verify bool) error {
	if url == "" {
		return nil
	}
	if verify {
		if err := it.remote.Verify(ctx, url); err != nil {
			return fmt.Errorf("repository %q is not reachable: %w", url, err)
		}
	}
	if err := it.store.SetRepo(ctx, url); err != nil {
		return fmt.Errorf("failed to store repository: %w", err)
	}
	logger.Debugf("[preferences] DrupalPod repo set to: %s", url)
	return nil
}

// Install writes the fallback when nothing is stored yet.
func (it *RepoPreferenceCommand) Install(ctx context.Context) error {
	current, err := it.store.GetRepo(ctx)
	if err != nil {
		return fmt.Errorf("failed to read repository preference: %w", err)
	}
	if current != "" {
		return nil
	}
	logger.Debug("[preferences] Setting default repository")
	return it.Set(ctx, it.fallback, false)
}
