package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// ErrCancelled is returned when the user aborts the form.
var ErrCancelled = errors.New("cancelled by user")

const emptyOptionLabel = "None"

// InteractiveFormRepository asks the user for the launch parameters with a
// huh form rendered on out.
type InteractiveFormRepository struct {
	*WarningPrinter
	out     io.Writer
	initial entities.FormSelection
}

// NewInteractiveFormRepository creates the form. initial pre-selects values
// passed as flags; unset fields start on the first option.
func NewInteractiveFormRepository(out io.Writer, initial entities.FormSelection) *InteractiveFormRepository {
	return &InteractiveFormRepository{
		WarningPrinter: NewWarningPrinter(out),
		out:            out,
		initial:        initial,
	}
}

func (it *InteractiveFormRepository) Prompt(
	ctx context.Context,
	view *entities.FormView,
) (entities.FormSelection, error) {
	selection, err := view.Apply(it.initial)
	if err != nil {
		return entities.FormSelection{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newFormModel(ctx, view, &selection)
	program := tea.NewProgram(model, tea.WithOutput(it.out), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return entities.FormSelection{}, ErrCancelled
		}
		return entities.FormSelection{}, fmt.Errorf("form error: %w", err)
	}
	if model.form.State == huh.StateAborted || !*model.confirmed {
		return entities.FormSelection{}, ErrCancelled
	}

	return selection, nil
}

// summary holds everything the project note renders. huh re-renders the note
// only when the hash of this value changes.
type summary struct {
	Selection   *entities.FormSelection
	ProjectType string
}

type projectTypeResolvedMsg struct{}

// formModel drives the huh form and feeds the resolved project type into the
// summary note while the form is on screen.
type formModel struct {
	ctx       context.Context
	form      *huh.Form
	view      *entities.FormView
	summary   *summary
	confirmed *bool
}

func newFormModel(ctx context.Context, view *entities.FormView, selection *entities.FormSelection) *formModel {
	state := &summary{Selection: selection, ProjectType: view.ProjectType.Current()}
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("DrupalPod · %s", view.ProjectName)).
				DescriptionFunc(func() string {
					return describe(view, state)
				}, state),
			huh.NewSelect[string]().
				Title("Issue branch").
				Options(optionsFor(view.Branches)...).
				Value(&selection.IssueBranch),
			huh.NewSelect[string]().
				Title("Drupal core version").
				Options(optionsFor(view.CoreVersions)...).
				Value(&selection.CoreVersion),
			huh.NewSelect[string]().
				Title("Install profile").
				Options(optionsFor(view.InstallProfiles)...).
				Value(&selection.InstallProfile),
			huh.NewSelect[string]().
				Title("Patch").
				Options(optionsFor(view.Patches)...).
				Value(&selection.PatchFile),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Open in Gitpod?").
				Affirmative("Open").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	form.SubmitCmd = tea.Quit
	form.CancelCmd = tea.Interrupt

	return &formModel{ctx: ctx, form: form, view: view, summary: state, confirmed: &confirmed}
}

func (m *formModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.waitForProjectType)
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(projectTypeResolvedMsg); ok {
		m.summary.ProjectType = m.view.ProjectType.Current()
	}

	model, cmd := m.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.form = form
	}
	return m, cmd
}

func (m *formModel) View() string {
	return m.form.View()
}

func (m *formModel) waitForProjectType() tea.Msg {
	select {
	case <-m.view.ProjectType.Done():
		return projectTypeResolvedMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

func describe(view *entities.FormView, state *summary) string {
	fork := view.IssueFork
	if fork == "" || fork == "false" {
		fork = emptyOptionLabel
	}
	return fmt.Sprintf(
		"Project type: %s\nModule version: %s\nIssue fork: %s",
		state.ProjectType, view.ModuleVersion, fork,
	)
}

func optionsFor(values []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(values))
	for _, value := range values {
		label := value
		if label == "" {
			label = emptyOptionLabel
		}
		options = append(options, huh.NewOption(label, value))
	}
	return options
}
