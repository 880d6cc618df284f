package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewReadIssueCommand,
		NewResolveProjectTypeCommand,
		NewPresentFormCommand,
		NewRepoPreferenceCommand,
		NewLaunchCommand,
		NewOpenIssueCommand,
		NewHandleMessageCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *ReadIssueCommand) ReadIssue { return impl },
		func(impl *ResolveProjectTypeCommand) ResolveProjectType { return impl },
		func(impl *PresentFormCommand) PresentForm { return impl },
		func(impl *RepoPreferenceCommand) RepoPreference { return impl },
		func(impl *LaunchCommand) Launch { return impl },
		func(impl *OpenIssueCommand) OpenIssue { return impl },
		func(impl *HandleMessageCommand) HandleMessage { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
