//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// SpyFormRepository records warnings and answers Prompt with a fixed selection.
type SpyFormRepository struct {
	Selection entities.FormSelection
	PromptErr error

	Warnings    []entities.Warning
	PromptViews []*entities.FormView
}

var _ repositories.FormRepository = (*SpyFormRepository)(nil)

func (s *SpyFormRepository) ShowWarnings(warnings []entities.Warning) {
	s.Warnings = append(s.Warnings, warnings...)
}

func (s *SpyFormRepository) Prompt(
	_ context.Context,
	view *entities.FormView,
) (entities.FormSelection, error) {
	s.PromptViews = append(s.PromptViews, view)
	if s.PromptErr != nil {
		return entities.FormSelection{}, s.PromptErr
	}
	return view.Apply(s.Selection)
}
