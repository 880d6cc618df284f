package ui

import (
	"context"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// PresetFormRepository answers the form without asking: the selection comes
// from command-line flags and unset fields take the first option.
type PresetFormRepository struct {
	*WarningPrinter
	selection entities.FormSelection
}

func NewPresetFormRepository(out io.Writer, selection entities.FormSelection) *PresetFormRepository {
	return &PresetFormRepository{
		WarningPrinter: NewWarningPrinter(out),
		selection:      selection,
	}
}

func (it *PresetFormRepository) Prompt(
	_ context.Context,
	view *entities.FormView,
) (entities.FormSelection, error) {
	selection, err := view.Apply(it.selection)
	if err != nil {
		return entities.FormSelection{}, err
	}
	logger.Debugf(
		"[form] Preset selection: branch=%q core=%q profile=%q patch=%q",
		selection.IssueBranch, selection.CoreVersion, selection.InstallProfile, selection.PatchFile,
	)
	return selection, nil
}
