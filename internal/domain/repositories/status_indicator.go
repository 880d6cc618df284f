package repositories

import (
	"context"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// StatusIndicator is the transient "reading page" indicator.
type StatusIndicator interface {
	Show(message string)
	Hide()
}

// FormRepository shows warnings and collects the user's form selections.
type FormRepository interface {
	ShowWarnings(warnings []entities.Warning)
	Prompt(ctx context.Context, view *entities.FormView) (entities.FormSelection, error)
}
