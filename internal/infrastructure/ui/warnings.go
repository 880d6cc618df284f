// Package ui holds the terminal adapters for the form presenter: the
// interactive huh form, the non-interactive preset form, warning rendering
// and the reading-page spinner.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

var (
	warningTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	warningTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warningBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("214")).
				Padding(0, 1)
)

// WarningPrinter renders guidance warnings as boxed blocks.
type WarningPrinter struct {
	out io.Writer
}

func NewWarningPrinter(out io.Writer) *WarningPrinter {
	return &WarningPrinter{out: out}
}

func (it *WarningPrinter) ShowWarnings(warnings []entities.Warning) {
	for _, warning := range warnings {
		block := lipgloss.JoinVertical(
			lipgloss.Left,
			warningTitleStyle.Render("Heads up"),
			warningTextStyle.Render(warning.Message()),
		)
		_, _ = fmt.Fprintln(it.out, warningBoxStyle.Render(block))
	}
}
