package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// RepoController handles the "repo" subcommand.
type RepoController struct {
	command commands.RepoPreference
}

// NewRepoController creates a new RepoController.
func NewRepoController(command commands.RepoPreference) *RepoController {
	return &RepoController{command: command}
}

// GetBind returns the Cobra command metadata for the repo controller.
func (it *RepoController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "repo [url]",
		Short: "Show or change the DrupalPod workspace repository",
		Long: `Without arguments, print the repository Gitpod workspaces are built from.
With a URL, store it as the new preference.

Use a fork of DrupalPod to customise the workspace. --verify checks
that the URL is a reachable git repository before saving it.`,
	}
}

// Execute prints or updates the stored repository.
func (it *RepoController) Execute(cmd *cobra.Command, args []string) {
	ctx := commandContext(cmd)

	initialise, _ := cmd.Flags().GetBool("init")
	verify, _ := cmd.Flags().GetBool("verify")

	switch {
	case initialise:
		if err := it.command.Install(ctx); err != nil {
			logger.Errorf("Failed to initialise repository preference: %v", err)
			return
		}
	case len(args) > 0:
		if err := it.command.Set(ctx, args[0], verify); err != nil {
			logger.Errorf("Failed to save repository: %v", err)
			return
		}
		logger.Infof("Workspace repository set to %s", args[0])
		return
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), it.command.Get(ctx))
}

// AddFlags adds the repo-specific flags to the given Cobra command.
func (it *RepoController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("init", false, "Store the default repository if none is set")
	cmd.Flags().Bool("verify", false, "Check the repository is reachable before saving")
}
