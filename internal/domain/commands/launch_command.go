package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// Launch is the interface for the environment launcher.
type Launch interface {
	Execute(ctx context.Context, request entities.LaunchRequest, opts LaunchOptions) (string, error)
}

// LaunchOptions holds runtime options for a launch.
type LaunchOptions struct {
	// PrintOnly builds and validates the URL without opening it.
	PrintOnly bool
}

// LaunchCommand builds the Gitpod URL for a form snapshot and opens it.
type LaunchCommand struct {
	preference RepoPreference
	tabs       repositories.TabRepository
}

// NewLaunchCommand creates a new LaunchCommand.
func NewLaunchCommand(preference RepoPreference, tabs repositories.TabRepository) *LaunchCommand {
	return &LaunchCommand{
		preference: preference,
		tabs:       tabs,
	}
}

// Execute returns the launch URL. Validation failures abort before any tab
// is opened.
func (it *LaunchCommand) Execute(
	ctx context.Context,
	request entities.LaunchRequest,
	opts LaunchOptions,
) (string, error) {
	repoURL := it.preference.Get(ctx)

	url, err := entities.BuildGitpodURL(request, repoURL)
	if err != nil {
		logger.Errorf("[launcher] Invalid Gitpod URL parameters: %v", err)
		return "", err
	}

	if opts.PrintOnly {
		return url, nil
	}

	if openErr := it.tabs.Open(ctx, url); openErr != nil {
		return "", fmt.Errorf("failed to open Gitpod: %w", openErr)
	}
	logger.Infof("[launcher] Opened Gitpod for %s", request.ProjectName)
	return url, nil
}
