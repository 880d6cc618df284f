package controllers

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	domainRepos "github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/pageinfo"
)

const htmlFlag = "html"

func addSnapshotFlag(cmd *cobra.Command) {
	cmd.Flags().String(htmlFlag, "",
		"Read a saved copy of the issue page instead of loading it")
}

// preferredStrategies returns the snapshot strategy when --html is set.
func preferredStrategies(cmd *cobra.Command, settings *entities.Settings) []domainRepos.PageInfoRepository {
	path, _ := cmd.Flags().GetString(htmlFlag)
	if path == "" {
		return nil
	}
	return []domainRepos.PageInfoRepository{pageinfo.NewSnapshotPageRepository(path, settings)}
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// commandContext returns the context the command was executed with, which
// main cancels on SIGINT and SIGTERM.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
