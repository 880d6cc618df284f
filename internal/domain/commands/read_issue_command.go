package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
	infraRepos "github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories"
)

const readingPageMessage = "Reading issue page..."

// ReadIssue is the interface for reading an issue page into IssueMetadata.
type ReadIssue interface {
	Execute(ctx context.Context, opts ReadIssueOptions) (*entities.IssueMetadata, error)
}

// ReadIssueOptions holds runtime options for a single page read.
type ReadIssueOptions struct {
	PageURL string
	// Preferred strategies are tried before the configured ones (e.g. a saved snapshot).
	Preferred []repositories.PageInfoRepository
}

// ReadIssueCommand gates the URL, checks page access and relays the
// extraction result through the first page-access strategy that succeeds.
type ReadIssueCommand struct {
	registry  *infraRepos.PageInfoRegistry
	indicator repositories.StatusIndicator
	settings  *entities.Settings
}

// NewReadIssueCommand creates a new ReadIssueCommand.
func NewReadIssueCommand(
	registry *infraRepos.PageInfoRegistry,
	indicator repositories.StatusIndicator,
	settings *entities.Settings,
) *ReadIssueCommand {
	return &ReadIssueCommand{
		registry:  registry,
		indicator: indicator,
		settings:  settings,
	}
}

// Execute reads the page. The status indicator is shown on entry and hidden
// exactly once on every return path.
func (it *ReadIssueCommand) Execute(
	ctx context.Context,
	opts ReadIssueOptions,
) (*entities.IssueMetadata, error) {
	it.indicator.Show(readingPageMessage)
	var hideOnce sync.Once
	hide := func() { hideOnce.Do(it.indicator.Hide) }
	defer hide()

	if !entities.IsIssuePage(opts.PageURL) {
		logger.Debugf("[transport] %q is not an issue page", opts.PageURL)
		return nil, fmt.Errorf("%w: %s", entities.ErrNotIssuePage, opts.PageURL)
	}

	if !it.settings.AllowsOrigin(opts.PageURL) {
		logger.Errorf("[transport] No page access granted for %s", entities.Origin(opts.PageURL))
		return nil, fmt.Errorf("%w: %s", entities.ErrPermissionDenied, entities.Origin(opts.PageURL))
	}

	strategies := make([]repositories.PageInfoRepository, 0, len(opts.Preferred)+len(it.registry.All()))
	strategies = append(strategies, opts.Preferred...)
	strategies = append(strategies, it.registry.Ranked(it.settings.Browser.Strategies)...)

	metadata, err := it.extract(ctx, opts.PageURL, strategies)
	hide()
	return metadata, err
}

// extract tries each strategy in order and returns the first successful result.
func (it *ReadIssueCommand) extract(
	ctx context.Context,
	pageURL string,
	strategies []repositories.PageInfoRepository,
) (*entities.IssueMetadata, error) {
	var errs []error
	for _, strategy := range strategies {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if !strategy.Available(ctx) {
			logger.Debugf("[transport] Strategy %q is not available, skipping", strategy.Name())
			continue
		}

		logger.Debugf("[transport] Reading page with strategy %q", strategy.Name())
		metadata, err := strategy.Extract(ctx, pageURL)
		if err != nil {
			logger.Warnf("[transport] Strategy %q failed: %v", strategy.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", strategy.Name(), err))
			continue
		}
		if metadata == nil || !metadata.Success {
			logger.Warnf("[transport] Strategy %q returned an unsuccessful result", strategy.Name())
			errs = append(errs, fmt.Errorf("%s: %w", strategy.Name(), entities.ErrExtraction))
			continue
		}

		logger.Infof("[transport] Read %s using %q", pageURL, strategy.Name())
		return metadata, nil
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: no page-access strategy available", entities.ErrTransport)
	}
	return nil, fmt.Errorf("%w: %w", entities.ErrTransport, errors.Join(errs...))
}
