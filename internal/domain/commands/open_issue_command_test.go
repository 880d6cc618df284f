//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/test/domain/commanddoubles"
	"github.com/drupalpod/drupalpod-cli/test/domain/entitybuilders"
	"github.com/drupalpod/drupalpod-cli/test/infrastructure/repositorydoubles"
)

func TestOpenIssueCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should launch with the selection and the resolved project type", func(t *testing.T) {
		t.Parallel()
		// given
		metadata := entitybuilders.NewIssueMetadataBuilder().WithPushAccess(false).BuildIssueMetadata()
		reader := &commanddoubles.StubReadIssueCommand{Metadata: metadata}
		presenter := commands.NewPresentFormCommand(
			&commanddoubles.StubResolveProjectTypeCommand{ProjectType: "project_module"},
			entities.DefaultSettings(),
		)
		launcher := &commanddoubles.StubLaunchCommand{URL: "https://gitpod.io/#x"}
		form := &repositorydoubles.SpyFormRepository{
			Selection: entities.FormSelection{IssueBranch: "3312345-fix-tokens", CoreVersion: "11.x"},
		}
		command := commands.NewOpenIssueCommand(reader, presenter, launcher)

		// when
		url, err := command.Execute(context.Background(), commands.OpenIssueOptions{
			PageURL:   issueURL,
			Form:      form,
			PrintOnly: true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://gitpod.io/#x", url)
		assert.Equal(t, []entities.Warning{entities.WarningNoPushAccess}, form.Warnings)
		require.Len(t, launcher.Requests, 1)
		assert.Equal(t, "project_module", launcher.Requests[0].ProjectType)
		assert.Equal(t, "3312345-fix-tokens", launcher.Requests[0].IssueBranch)
		assert.Equal(t, "11.x", launcher.Requests[0].CoreVersion)
		assert.Equal(t, entities.NoInstallProfile, launcher.Requests[0].InstallProfile)
		assert.True(t, launcher.LastOptions.PrintOnly)
	})

	t.Run("should show the not-issue-page warning and stop", func(t *testing.T) {
		t.Parallel()
		// given
		reader := &commanddoubles.StubReadIssueCommand{
			ExecuteErr: fmt.Errorf("%w: x", entities.ErrNotIssuePage),
		}
		launcher := &commanddoubles.StubLaunchCommand{}
		form := &repositorydoubles.SpyFormRepository{}
		command := commands.NewOpenIssueCommand(reader, nil, launcher)

		// when
		_, err := command.Execute(context.Background(), commands.OpenIssueOptions{PageURL: "x", Form: form})

		// then
		require.ErrorIs(t, err, entities.ErrNotIssuePage)
		assert.Equal(t, []entities.Warning{entities.WarningNotIssuePage}, form.Warnings)
		assert.Empty(t, form.PromptViews)
		assert.Empty(t, launcher.Requests)
	})

	t.Run("should show a generic warning when the launch fails", func(t *testing.T) {
		t.Parallel()
		// given
		reader := &commanddoubles.StubReadIssueCommand{
			Metadata: entitybuilders.NewIssueMetadataBuilder().BuildIssueMetadata(),
		}
		presenter := commands.NewPresentFormCommand(
			&commanddoubles.StubResolveProjectTypeCommand{ProjectType: "module"}, entities.DefaultSettings(),
		)
		launcher := &commanddoubles.StubLaunchCommand{ExecuteErr: entities.ErrValidation}
		form := &repositorydoubles.SpyFormRepository{}
		command := commands.NewOpenIssueCommand(reader, presenter, launcher)

		// when
		_, err := command.Execute(context.Background(), commands.OpenIssueOptions{PageURL: issueURL, Form: form})

		// then
		require.ErrorIs(t, err, entities.ErrValidation)
		assert.Equal(t, []entities.Warning{entities.WarningSomethingWentWrong}, form.Warnings)
	})

	t.Run("should not launch when the form is cancelled", func(t *testing.T) {
		t.Parallel()
		// given
		reader := &commanddoubles.StubReadIssueCommand{
			Metadata: entitybuilders.NewIssueMetadataBuilder().BuildIssueMetadata(),
		}
		presenter := commands.NewPresentFormCommand(
			&commanddoubles.StubResolveProjectTypeCommand{ProjectType: "module"}, entities.DefaultSettings(),
		)
		launcher := &commanddoubles.StubLaunchCommand{}
		cancelled := errors.New("cancelled")
		form := &repositorydoubles.SpyFormRepository{PromptErr: cancelled}
		command := commands.NewOpenIssueCommand(reader, presenter, launcher)

		// when
		_, err := command.Execute(context.Background(), commands.OpenIssueOptions{PageURL: issueURL, Form: form})

		// then
		require.ErrorIs(t, err, cancelled)
		assert.NotContains(t, form.Warnings, entities.WarningSomethingWentWrong)
		assert.Empty(t, launcher.Requests)
	})

	t.Run("should show a generic warning when a preset selection is not offered", func(t *testing.T) {
		t.Parallel()
		// given
		reader := &commanddoubles.StubReadIssueCommand{
			Metadata: entitybuilders.NewIssueMetadataBuilder().BuildIssueMetadata(),
		}
		presenter := commands.NewPresentFormCommand(
			&commanddoubles.StubResolveProjectTypeCommand{ProjectType: "module"}, entities.DefaultSettings(),
		)
		launcher := &commanddoubles.StubLaunchCommand{}
		form := &repositorydoubles.SpyFormRepository{
			PromptErr: fmt.Errorf("%w: core version %q is not offered", entities.ErrValidation, "7.x"),
		}
		command := commands.NewOpenIssueCommand(reader, presenter, launcher)

		// when
		_, err := command.Execute(context.Background(), commands.OpenIssueOptions{PageURL: issueURL, Form: form})

		// then
		require.ErrorIs(t, err, entities.ErrValidation)
		assert.Contains(t, form.Warnings, entities.WarningSomethingWentWrong)
		assert.Empty(t, launcher.Requests)
	})
}
