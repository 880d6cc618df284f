package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// FormModel exposes the interactive form model to tests.
type FormModel = formModel

func NewFormModel(ctx context.Context, view *entities.FormView, selection *entities.FormSelection) *FormModel {
	return newFormModel(ctx, view, selection)
}

// Summary renders the project note as the form currently shows it.
func (m *formModel) Summary() string {
	return describe(m.view, m.summary)
}

// WaitForProjectType runs the command that reports the resolution.
func (m *formModel) WaitForProjectType() tea.Msg {
	return m.waitForProjectType()
}
