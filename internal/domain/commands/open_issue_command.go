package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// OpenIssue is the interface for the full issue-to-Gitpod flow.
type OpenIssue interface {
	Execute(ctx context.Context, opts OpenIssueOptions) (string, error)
}

// OpenIssueOptions holds runtime options for one launch flow.
type OpenIssueOptions struct {
	PageURL   string
	Preferred []repositories.PageInfoRepository
	Form      repositories.FormRepository
	PrintOnly bool
}

// OpenIssueCommand reads the page, presents the form and launches Gitpod.
type OpenIssueCommand struct {
	reader    ReadIssue
	presenter PresentForm
	launcher  Launch
}

// NewOpenIssueCommand creates a new OpenIssueCommand.
func NewOpenIssueCommand(reader ReadIssue, presenter PresentForm, launcher Launch) *OpenIssueCommand {
	return &OpenIssueCommand{
		reader:    reader,
		presenter: presenter,
		launcher:  launcher,
	}
}

// Execute runs the flow and returns the launch URL. Every halting failure is
// shown to the user as a warning before it is returned.
func (it *OpenIssueCommand) Execute(ctx context.Context, opts OpenIssueOptions) (string, error) {
	metadata, err := it.reader.Execute(ctx, ReadIssueOptions{
		PageURL:   opts.PageURL,
		Preferred: opts.Preferred,
	})
	if err != nil {
		opts.Form.ShowWarnings([]entities.Warning{entities.WarningFor(err)})
		return "", err
	}

	view := it.presenter.Execute(ctx, metadata)
	if len(view.Warnings) > 0 {
		opts.Form.ShowWarnings(view.Warnings)
	}

	selection, err := opts.Form.Prompt(ctx, view)
	if err != nil {
		if errors.Is(err, entities.ErrValidation) {
			opts.Form.ShowWarnings([]entities.Warning{entities.WarningSomethingWentWrong})
		}
		return "", err
	}

	projectType, err := view.ProjectType.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("waiting for project type: %w", err)
	}

	url, err := it.launcher.Execute(ctx, view.LaunchRequest(selection, projectType), LaunchOptions{
		PrintOnly: opts.PrintOnly,
	})
	if err != nil {
		opts.Form.ShowWarnings([]entities.Warning{entities.WarningSomethingWentWrong})
		return "", err
	}

	logger.Debugf("Gitpod URL: %s", url)
	return url, nil
}
