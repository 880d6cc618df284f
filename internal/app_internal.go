package internal

import (
	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/controllers"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/pageinfo"
)

// AppInternal holds the wired application: the root controller, the
// subcommand controllers and the resources released on exit.
type AppInternal struct {
	root        *controllers.OpenController
	controllers []entities.Controller
	runner      *pageinfo.PlaywrightRunner
}

// NewAppInternal creates the AppInternal.
func NewAppInternal(
	root *controllers.OpenController,
	subcommands *[]entities.Controller,
	runner *pageinfo.PlaywrightRunner,
) *AppInternal {
	return &AppInternal{root: root, controllers: *subcommands, runner: runner}
}

// GetRootController returns the controller behind the bare command.
func (it *AppInternal) GetRootController() *controllers.OpenController {
	return it.root
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// Close stops the browser driver if any strategy started it.
func (it *AppInternal) Close() {
	if err := it.runner.Close(); err != nil {
		logger.Warnf("Failed to stop playwright: %v", err)
	}
}
