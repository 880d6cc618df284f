package repositories

import (
	"go.uber.org/dig"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	domainRepos "github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/desktop"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/drupalorg"
	gitRepo "github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/git"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/pageinfo"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/storage"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/ui"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		pageinfo.NewPlaywrightRunner,
		drupalorg.NewProjectTypeRepository,
		storage.NewPreferenceRepository,
		storage.NewProjectTypeCacheRepository,
		desktop.NewTabRepository,
		gitRepo.NewRemoteRepository,
		ui.NewSpinnerIndicator,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Register page-access registry with all strategies, in default rank order
	if err := container.Provide(func(
		runner *pageinfo.PlaywrightRunner,
		settings *entities.Settings,
	) *PageInfoRegistry {
		reg := NewPageInfoRegistry()
		reg.Register(pageinfo.NewAttachedPageRepository(runner, settings))
		reg.Register(pageinfo.NewScriptingPageRepository(runner, settings))
		reg.Register(pageinfo.NewFetchPageRepository(settings))
		return reg
	}); err != nil {
		return err
	}

	// Bind domain interfaces to implementations
	bindings := []any{
		func(impl *drupalorg.ProjectTypeRepository) domainRepos.ProjectTypeRepository { return impl },
		func(impl *storage.PreferenceRepository) domainRepos.PreferenceRepository { return impl },
		func(impl *storage.ProjectTypeCacheRepository) domainRepos.ProjectTypeCacheRepository { return impl },
		func(impl *desktop.TabRepository) domainRepos.TabRepository { return impl },
		func(impl *gitRepo.RemoteRepository) domainRepos.RemoteRepository { return impl },
		func(impl *ui.SpinnerIndicator) domainRepos.StatusIndicator { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
