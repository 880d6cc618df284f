package controllers

import (
	"encoding/json"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// InspectController handles the "inspect" subcommand.
type InspectController struct {
	reader   commands.ReadIssue
	resolver commands.ResolveProjectType
	settings *entities.Settings
}

// NewInspectController creates a new InspectController.
func NewInspectController(
	reader commands.ReadIssue,
	resolver commands.ResolveProjectType,
	settings *entities.Settings,
) *InspectController {
	return &InspectController{reader: reader, resolver: resolver, settings: settings}
}

// GetBind returns the Cobra command metadata for the inspect controller.
func (it *InspectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "inspect <issue-url>",
		Short: "Print the metadata read from an issue page as JSON",
		Long: `Read a Drupal.org issue page and print the extracted metadata,
including the resolved project type, without opening anything.`,
	}
}

// Execute reads the page and prints the metadata.
func (it *InspectController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		logger.Error("inspect needs exactly one issue URL")
		return
	}
	ctx := commandContext(cmd)

	metadata, err := it.reader.Execute(ctx, commands.ReadIssueOptions{
		PageURL:   args[0],
		Preferred: preferredStrategies(cmd, it.settings),
	})
	if err != nil {
		logger.Errorf("Inspect failed: %v", err)
		return
	}

	projectType, err := it.resolver.Execute(ctx, metadata.ProjectName)
	if err != nil {
		logger.Warnf("Could not resolve project type: %v", err)
		projectType = entities.UnknownProjectType
	}
	metadata.ProjectType = projectType

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(metadata); err != nil {
		logger.Errorf("Failed to write metadata: %v", err)
	}
}

// AddFlags adds the inspect-specific flags to the given Cobra command.
func (it *InspectController) AddFlags(cmd *cobra.Command) {
	addSnapshotFlag(cmd)
}
