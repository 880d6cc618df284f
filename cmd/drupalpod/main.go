package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drupalpod/drupalpod-cli/internal"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/controllers"
)

func buildRootCommand(openController *controllers.OpenController) *cobra.Command {
	bind := openController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long:  bind.Long,
		Example: `  drupalpod https://www.drupal.org/project/token/issues/3312345
  drupalpod --yes --core 11.x https://www.drupal.org/project/token/issues/3312345
  drupalpod --html ~/Downloads/issue.html --print https://www.drupal.org/project/token/issues/3312345`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			openController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	openController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fc, ok := ctrl.(entities.FlagController); ok {
			fc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	defer appContext.Close()

	cobraRoot := buildRootCommand(appContext.GetRootController())
	addSubcommands(cobraRoot, appContext)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		stop()
		appContext.Close()
		logger.Fatalf("Error executing 'drupalpod': %s", err)
	}
}
