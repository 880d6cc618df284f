//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/test/domain/entitybuilders"
)

func TestBuildGitpodURL(t *testing.T) {
	t.Parallel()

	t.Run("should assemble the eight tokens and the repository", func(t *testing.T) {
		t.Parallel()
		// given
		request := entities.LaunchRequest{
			ProjectName:    "views",
			IssueFork:      "",
			IssueBranch:    "1234-fix",
			ProjectType:    "module",
			ModuleVersion:  "9.1.x",
			CoreVersion:    "9.3.x",
			PatchFile:      "",
			InstallProfile: "(none)",
		}

		// when
		url, err := entities.BuildGitpodURL(request, "https://git.example/repo")

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"https://gitpod.io/#DP_PROJECT_NAME=views,DP_ISSUE_FORK=,DP_ISSUE_BRANCH=1234-fix,"+
				"DP_PROJECT_TYPE=module,DP_MODULE_VERSION=9.1.x,DP_CORE_VERSION=9.3.x,"+
				"DP_PATCH_FILE=,DP_INSTALL_PROFILE=''/https://git.example/repo",
			url,
		)
	})

	t.Run("should percent-encode the branch and patch", func(t *testing.T) {
		t.Parallel()
		// given
		request := entitybuilders.NewLaunchRequestBuilder().
			WithIssueBranch("fix it/now").
			WithPatchFile("https://www.drupal.org/files/issues/fix (1).patch").
			BuildLaunchRequest()

		// when
		tokens := request.Tokens()

		// then
		assert.Equal(t, "DP_ISSUE_BRANCH=fix%20it%2Fnow", tokens[2])
		assert.Equal(t, "DP_PATCH_FILE=https%3A%2F%2Fwww.drupal.org%2Ffiles%2Fissues%2Ffix%20(1).patch", tokens[6])
	})

	t.Run("should blank a fork serialised as false", func(t *testing.T) {
		t.Parallel()
		// given
		request := entitybuilders.NewLaunchRequestBuilder().WithIssueFork("false").BuildLaunchRequest()

		// when
		tokens := request.Tokens()

		// then
		assert.Equal(t, "DP_ISSUE_FORK=", tokens[1])
	})

	t.Run("should reject forbidden characters", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{`va"ews`, "va`ews", `va\ews`} {
			// given
			request := entitybuilders.NewLaunchRequestBuilder().WithProjectName(name).BuildLaunchRequest()

			// when
			url, err := entities.BuildGitpodURL(request, entities.DefaultRepoURL)

			// then
			require.ErrorIs(t, err, entities.ErrValidation, name)
			assert.Empty(t, url)
		}
	})

	t.Run("should require the project type", func(t *testing.T) {
		t.Parallel()
		// given
		request := entitybuilders.NewLaunchRequestBuilder().WithProjectType("").BuildLaunchRequest()

		// when
		_, err := entities.BuildGitpodURL(request, entities.DefaultRepoURL)

		// then
		assert.ErrorIs(t, err, entities.ErrValidation)
	})
}

func TestEncodeURIComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a%20b", entities.EncodeURIComponent("a b"))
	assert.Equal(t, "!'()*-_.~", entities.EncodeURIComponent("!'()*-_.~"))
	assert.Equal(t, "%C3%A9%26%3D", entities.EncodeURIComponent("é&="))
}
