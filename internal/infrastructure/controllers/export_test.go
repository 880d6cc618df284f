package controllers

import (
	"io"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
)

// NewNativeHostControllerWithStreams creates a NativeHostController bound to
// the given streams.
func NewNativeHostControllerWithStreams(
	command commands.HandleMessage,
	preference commands.RepoPreference,
	input io.Reader,
	output io.Writer,
) *NativeHostController {
	return &NativeHostController{command: command, preference: preference, input: input, output: output}
}
