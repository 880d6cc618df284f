package controllers

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	domainRepos "github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/ui"
)

// OpenController handles the root command: read an issue page, ask for the
// launch parameters and open the Gitpod workspace.
type OpenController struct {
	command  commands.OpenIssue
	settings *entities.Settings
}

// NewOpenController creates a new OpenController.
func NewOpenController(command commands.OpenIssue, settings *entities.Settings) *OpenController {
	return &OpenController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the open controller.
func (it *OpenController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "drupalpod [issue-url]",
		Short: "Open a Drupal.org issue in a Gitpod workspace",
		Long: `Read a Drupal.org issue page, pick the issue branch, core version,
install profile and patch, then open a DrupalPod workspace on Gitpod.

The page is read through the first available strategy: a tab in a
browser started with --remote-debugging-port (browser.cdp_url), a
headless browser, or an anonymous HTTP request. Use --html to read a
page saved from your browser instead.`,
	}
}

// Execute runs the open flow for the issue URL in args.
func (it *OpenController) Execute(cmd *cobra.Command, args []string) {
	ctx := commandContext(cmd)

	assumeYes, _ := cmd.Flags().GetBool("yes")
	printOnly, _ := cmd.Flags().GetBool("print")
	selection := selectionFromFlags(cmd)

	url, err := it.command.Execute(ctx, commands.OpenIssueOptions{
		PageURL:   args[0],
		Preferred: preferredStrategies(cmd, it.settings),
		Form:      newForm(assumeYes, selection),
		PrintOnly: printOnly,
	})
	if errors.Is(err, ui.ErrCancelled) {
		logger.Info("Cancelled, nothing was opened")
		return
	}
	if err != nil {
		logger.Errorf("Open failed: %v", err)
		return
	}

	if printOnly {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), url)
	}
}

// AddFlags adds the open-specific flags to the given Cobra command.
func (it *OpenController) AddFlags(cmd *cobra.Command) {
	addSnapshotFlag(cmd)
	cmd.Flags().String("branch", "", "Issue branch to check out")
	cmd.Flags().String("core", "", "Drupal core version")
	cmd.Flags().String("profile", "", "Install profile")
	cmd.Flags().String("patch", "", "Patch URL to apply")
	cmd.Flags().BoolP("yes", "y", false, "Skip the form and use the flags or first options")
	cmd.Flags().Bool("print", false, "Print the Gitpod URL instead of opening it")
}

func selectionFromFlags(cmd *cobra.Command) entities.FormSelection {
	branch, _ := cmd.Flags().GetString("branch")
	core, _ := cmd.Flags().GetString("core")
	profile, _ := cmd.Flags().GetString("profile")
	patch, _ := cmd.Flags().GetString("patch")
	return entities.FormSelection{
		IssueBranch:    branch,
		CoreVersion:    core,
		InstallProfile: profile,
		PatchFile:      patch,
	}
}

func newForm(assumeYes bool, selection entities.FormSelection) domainRepos.FormRepository {
	if assumeYes || !isInteractive() {
		return ui.NewPresetFormRepository(os.Stderr, selection)
	}
	return ui.NewInteractiveFormRepository(os.Stderr, selection)
}
