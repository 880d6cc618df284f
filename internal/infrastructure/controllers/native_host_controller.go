package controllers

import (
	"context"
	"errors"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drupalpod/drupalpod-cli/internal/domain/commands"
	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/messaging"
)

// NativeHostController handles the "native-host" subcommand, the message
// router the browser extension talks to over native messaging.
type NativeHostController struct {
	command    commands.HandleMessage
	preference commands.RepoPreference
	input      io.Reader
	output     io.Writer
}

// NewNativeHostController creates a new NativeHostController bound to the
// process standard streams.
func NewNativeHostController(
	command commands.HandleMessage,
	preference commands.RepoPreference,
) *NativeHostController {
	return &NativeHostController{command: command, preference: preference, input: os.Stdin, output: os.Stdout}
}

// GetBind returns the Cobra command metadata for the native host controller.
func (it *NativeHostController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "native-host",
		Short: "Serve extension messages over native messaging",
		Long: `Answer fetch-drupalpod-repo, set-drupalpod-repo and getPageInfo
messages from the DrupalPod browser extension on stdin/stdout.

Browsers start this command themselves; register it in a native
messaging host manifest rather than running it by hand.`,
	}
}

// Execute serves messages until the browser closes the channel.
func (it *NativeHostController) Execute(cmd *cobra.Command, _ []string) {
	if err := it.Serve(commandContext(cmd)); err != nil {
		logger.Errorf("[messages] Native host stopped: %v", err)
	}
}

// Serve seeds the repository preference, then answers one response per
// message, in order, until EOF.
func (it *NativeHostController) Serve(ctx context.Context) error {
	if err := it.preference.Install(ctx); err != nil {
		logger.Warnf("[messages] Failed to seed the repository preference: %v", err)
	}

	codec := messaging.NewNativeCodec(it.input, it.output)
	for {
		message, err := codec.Read()
		if errors.Is(err, io.EOF) {
			logger.Debug("[messages] Channel closed")
			return nil
		}
		if err != nil {
			return err
		}

		response := it.command.Execute(ctx, *message)
		if err = codec.Write(response); err != nil {
			return err
		}
	}
}
