//go:build unit

package pageinfo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/pageinfo"
)

const issuePage = `<html><body class="logged-in">
<a class="fork-link" href="#">views-1234567</a>
<div class="branches"><span data-branch="1234567-fix"></span></div>
<div class="field-name-field-issue-version"><div>Version:</div><div>9.1.x-dev</div></div>
</body></html>`

func TestFetchPageRepository_Extract(t *testing.T) {
	t.Parallel()

	t.Run("should extract the page served over HTTP", func(t *testing.T) {
		t.Parallel()
		// given
		var userAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(issuePage))
		}))
		defer server.Close()
		repository := pageinfo.NewFetchPageRepository(entities.DefaultSettings())

		// when
		metadata, err := repository.Extract(context.Background(), server.URL+"/project/views/issues/1234567")

		// then
		require.NoError(t, err)
		assert.Equal(t, "views", metadata.ProjectName)
		assert.Equal(t, "views-1234567", metadata.IssueFork)
		assert.Equal(t, []string{"", "1234567-fix"}, metadata.IssueBranches)
		assert.Equal(t, "9.1.x", metadata.ModuleVersion)
		assert.Equal(t, "drupalpod-cli", userAgent)
	})

	t.Run("should fail on a non-200 response", func(t *testing.T) {
		t.Parallel()
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()
		repository := pageinfo.NewFetchPageRepository(entities.DefaultSettings())

		// when
		metadata, err := repository.Extract(context.Background(), server.URL+"/project/views/issues/1")

		// then
		require.Error(t, err)
		assert.Nil(t, metadata)
	})
}

func TestSnapshotPageRepository(t *testing.T) {
	t.Parallel()

	t.Run("should read a saved page using the URL path for the project name", func(t *testing.T) {
		t.Parallel()
		// given
		path := filepath.Join(t.TempDir(), "issue.html")
		require.NoError(t, os.WriteFile(path, []byte(issuePage), 0o600))
		repository := pageinfo.NewSnapshotPageRepository(path, entities.DefaultSettings())

		// when
		available := repository.Available(context.Background())
		metadata, err := repository.Extract(
			context.Background(), "https://www.drupal.org/project/views/issues/1234567",
		)

		// then
		assert.True(t, available)
		require.NoError(t, err)
		assert.Equal(t, "views", metadata.ProjectName)
		assert.True(t, metadata.LoggedIn)
	})

	t.Run("should be unavailable when the file does not exist", func(t *testing.T) {
		t.Parallel()
		// given
		repository := pageinfo.NewSnapshotPageRepository(
			filepath.Join(t.TempDir(), "missing.html"), entities.DefaultSettings(),
		)

		// when
		available := repository.Available(context.Background())

		// then
		assert.False(t, available)
		assert.Equal(t, pageinfo.SnapshotName, repository.Name())
	})
}

func TestAttachedPageRepository_Available(t *testing.T) {
	t.Parallel()

	// given
	settings := entities.DefaultSettings()
	settings.Browser.CDPURL = ""
	repository := pageinfo.NewAttachedPageRepository(pageinfo.NewPlaywrightRunner(settings), settings)

	// when
	available := repository.Available(context.Background())

	// then
	assert.False(t, available)
}

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	want := "https://www.drupal.org/project/views/issues/1234567"
	assert.Equal(t, want, pageinfo.CanonicalURL(want+"#comment-12"))
	assert.Equal(t, want, pageinfo.CanonicalURL(want+"/"))
	assert.Equal(t, want, pageinfo.CanonicalURL(want+"?page=1"))
}

func TestDecodeSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("should normalise the object returned by the in-page extractor", func(t *testing.T) {
		t.Parallel()
		// given
		raw := map[string]any{
			"path":        "/project/views/issues/1234567",
			"issueFork":   "views-1234567",
			"branches":    []any{"1234567-fix"},
			"hrefs":       []any{"https://www.drupal.org/files/issues/a.patch"},
			"versionText": "9.1.x-dev",
			"loggedIn":    true,
			"pushAccess":  false,
		}

		// when
		metadata, err := pageinfo.DecodeSnapshot(raw)

		// then
		require.NoError(t, err)
		assert.True(t, metadata.Success)
		assert.Equal(t, "views", metadata.ProjectName)
		assert.Equal(t, []string{"", "1234567-fix"}, metadata.IssueBranches)
		assert.Equal(t, "9.1.x", metadata.ModuleVersion)
	})

	t.Run("should report an error thrown inside the page as an extraction failure", func(t *testing.T) {
		t.Parallel()
		// given
		raw := map[string]any{"error": "document.querySelector: 'div[' is not a valid selector"}

		// when
		metadata, err := pageinfo.DecodeSnapshot(raw)

		// then
		require.ErrorIs(t, err, entities.ErrExtraction)
		require.NotNil(t, metadata)
		assert.False(t, metadata.Success)
	})

	t.Run("should reject a result that is not an extractor object", func(t *testing.T) {
		t.Parallel()
		// given
		raw := []any{"unexpected"}

		// when
		metadata, err := pageinfo.DecodeSnapshot(raw)

		// then
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrExtraction)
		assert.Nil(t, metadata)
	})
}
