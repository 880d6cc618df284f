//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

func TestIsIssuePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "should accept an issue page", url: "https://www.drupal.org/project/views/issues/1234567", want: true},
		{name: "should accept an issue page with a fragment", url: "https://www.drupal.org/project/views/issues/1234567#comment-9", want: true},
		{name: "should reject a project page", url: "https://www.drupal.org/project/views", want: false},
		{name: "should reject the issue queue", url: "https://www.drupal.org/project/issues/views", want: false},
		{name: "should reject plain http", url: "http://www.drupal.org/project/views/issues/1234567", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// given / when
			got := entities.IsIssuePage(tt.url)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectNameFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "views", entities.ProjectNameFromPath("/project/views/issues/1234567"))
	assert.Empty(t, entities.ProjectNameFromPath("/project"))
	assert.Empty(t, entities.ProjectNameFromPath(""))
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.drupal.org", entities.Origin("https://www.drupal.org/project/views/issues/1"))
	assert.Empty(t, entities.Origin("not a url"))
}
