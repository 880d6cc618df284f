package controllers

import (
	"go.uber.org/dig"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewOpenController,
		NewInspectController,
		NewRepoController,
		NewNativeHostController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the
// AppInternal. The open controller backs the root command instead.
func NewControllers(
	inspectController *InspectController,
	repoController *RepoController,
	nativeHostController *NativeHostController,
) *[]entities.Controller {
	return &[]entities.Controller{
		inspectController,
		repoController,
		nativeHostController,
	}
}
