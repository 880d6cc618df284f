package commands

import (
	"context"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// PresentForm is the interface for turning issue metadata into a form view.
type PresentForm interface {
	Execute(ctx context.Context, metadata *entities.IssueMetadata) *entities.FormView
}

// PresentFormCommand builds the form view and starts the project type lookup
// in the background.
type PresentFormCommand struct {
	resolver ResolveProjectType
	settings *entities.Settings
}

// NewPresentFormCommand creates a new PresentFormCommand.
func NewPresentFormCommand(resolver ResolveProjectType, settings *entities.Settings) *PresentFormCommand {
	return &PresentFormCommand{
		resolver: resolver,
		settings: settings,
	}
}

// Execute returns immediately; the view's ProjectType resolves later to the
// looked-up type or "Unknown".
func (it *PresentFormCommand) Execute(ctx context.Context, metadata *entities.IssueMetadata) *entities.FormView {
	view := &entities.FormView{
		Warnings:        warningsFor(metadata),
		ProjectName:     metadata.ProjectName,
		IssueFork:       metadata.IssueFork,
		ModuleVersion:   metadata.ModuleVersion,
		Branches:        slices.Clone(metadata.IssueBranches),
		CoreVersions:    slices.Clone(it.settings.Form.CoreVersions),
		InstallProfiles: slices.Clone(it.settings.Form.InstallProfiles),
		Patches:         slices.Clone(metadata.AvailablePatches),
		ProjectType:     entities.NewPendingProjectType(),
	}

	if metadata.ProjectType != "" {
		view.ProjectType.Resolve(metadata.ProjectType)
		return view
	}

	go func() {
		projectType, err := it.resolver.Execute(ctx, metadata.ProjectName)
		if err != nil {
			logger.Errorf("[form] Error getting project type: %v", err)
			projectType = entities.UnknownProjectType
		}
		view.ProjectType.Resolve(projectType)
	}()

	return view
}

// warningsFor returns every guidance warning that applies; they are independent.
func warningsFor(metadata *entities.IssueMetadata) []entities.Warning {
	var warnings []entities.Warning
	if !metadata.LoggedIn {
		warnings = append(warnings, entities.WarningNotLoggedIn)
	}
	if !metadata.HasFork() {
		warnings = append(warnings, entities.WarningNoIssueFork)
	}
	if !metadata.PushAccess {
		warnings = append(warnings, entities.WarningNoPushAccess)
	}
	return warnings
}
