//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

func TestPatchesFromLinks(t *testing.T) {
	t.Parallel()

	t.Run("should dedupe patches and keep the empty sentinel first", func(t *testing.T) {
		t.Parallel()
		// given
		hrefs := []string{
			"https://www.drupal.org/files/issues/2024-01-01/fix-1.patch",
			"/user/login",
			"https://www.drupal.org/files/issues/2024-01-01/fix-1.patch",
			"https://www.drupal.org/files/issues/2024-02-01/fix-2.patch",
		}

		// when
		patches := entities.PatchesFromLinks(hrefs)

		// then
		assert.Equal(t, []string{
			"",
			"https://www.drupal.org/files/issues/2024-01-01/fix-1.patch",
			"https://www.drupal.org/files/issues/2024-02-01/fix-2.patch",
		}, patches)
	})

	t.Run("should return only the sentinel when nothing matches", func(t *testing.T) {
		t.Parallel()
		// given
		hrefs := []string{
			"https://www.drupal.org/files/issues/fix.diff",
			"http://www.drupal.org/files/issues/fix.patch",
			"https://example.com/files/issues/fix.patch",
		}

		// when
		patches := entities.PatchesFromLinks(hrefs)

		// then
		assert.Equal(t, []string{""}, patches)
	})
}

func TestModuleVersionFromText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "should strip a trailing -dev", text: "8.9.x-dev", want: "8.9.x"},
		{name: "should keep a plain version", text: "9.1.x", want: "9.1.x"},
		{name: "should trim surrounding whitespace", text: "\n  2.0.x-dev  ", want: "2.0.x"},
		{name: "should not touch -dev in the middle", text: "1.x-dev-rc", want: "1.x-dev-rc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// given / when
			got := entities.ModuleVersionFromText(tt.text)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewIssueMetadata(t *testing.T) {
	t.Parallel()

	t.Run("should normalise every snapshot field", func(t *testing.T) {
		t.Parallel()
		// given
		snapshot := entities.PageSnapshot{
			Path:        "/project/views/issues/1234567",
			IssueFork:   "  views-1234567 ",
			Branches:    []string{"1234567-fix", "1234567-fix", "1234567-alt"},
			Hrefs:       []string{"https://www.drupal.org/files/issues/a.patch"},
			VersionText: "8.x-3.x-dev",
			LoggedIn:    true,
		}

		// when
		metadata := entities.NewIssueMetadata(snapshot)

		// then
		assert.True(t, metadata.Success)
		assert.Equal(t, "views", metadata.ProjectName)
		assert.Equal(t, "views-1234567", metadata.IssueFork)
		assert.Equal(t, []string{"", "1234567-fix", "1234567-alt"}, metadata.IssueBranches)
		assert.Equal(t, []string{"", "https://www.drupal.org/files/issues/a.patch"}, metadata.AvailablePatches)
		assert.Equal(t, "8.x-3.x", metadata.ModuleVersion)
		assert.True(t, metadata.LoggedIn)
		assert.False(t, metadata.PushAccess)
		assert.Empty(t, metadata.ProjectType)
	})

	t.Run("should yield sentinel-only lists for an empty page", func(t *testing.T) {
		t.Parallel()
		// given
		snapshot := entities.PageSnapshot{Path: "/project/token/issues/1"}

		// when
		metadata := entities.NewIssueMetadata(snapshot)

		// then
		assert.Equal(t, []string{""}, metadata.IssueBranches)
		assert.Equal(t, []string{""}, metadata.AvailablePatches)
		assert.False(t, metadata.HasFork())
	})
}

func TestIssueMetadata_HasFork(t *testing.T) {
	t.Parallel()

	assert.False(t, (&entities.IssueMetadata{IssueFork: ""}).HasFork())
	assert.False(t, (&entities.IssueMetadata{IssueFork: "false"}).HasFork())
	assert.True(t, (&entities.IssueMetadata{IssueFork: "views-1234567"}).HasFork())
}
