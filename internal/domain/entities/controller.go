package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata a controller is mounted with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point backed by one or more domain commands.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}

// FlagController is a Controller that declares its own flags.
type FlagController interface {
	Controller
	AddFlags(cmd *cobra.Command)
}
