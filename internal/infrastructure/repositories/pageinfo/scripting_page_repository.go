package pageinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/dom"
)

// ScriptingName identifies the strategy that loads the page in a fresh
// browser and injects the extractor.
const ScriptingName = "scripting"

// ScriptingPageRepository launches its own Chromium, navigates to the issue
// and runs the extractor in the page.
type ScriptingPageRepository struct {
	runner    *PlaywrightRunner
	headless  bool
	timeout   time.Duration
	userAgent string
	markers   dom.Markers
}

func NewScriptingPageRepository(runner *PlaywrightRunner, settings *entities.Settings) *ScriptingPageRepository {
	return &ScriptingPageRepository{
		runner:    runner,
		headless:  settings.Browser.Headless,
		timeout:   settings.Browser.Timeout,
		userAgent: settings.HTTP.UserAgent,
		markers:   dom.MarkersFromSettings(settings),
	}
}

func (it *ScriptingPageRepository) Name() string {
	return ScriptingName
}

func (it *ScriptingPageRepository) Available(_ context.Context) bool {
	if _, err := it.runner.Start(); err != nil {
		logger.Debugf("[transport] Scripting strategy unavailable: %v", err)
		return false
	}
	return true
}

func (it *ScriptingPageRepository) Extract(ctx context.Context, pageURL string) (*entities.IssueMetadata, error) {
	pw, err := it.runner.Start()
	if err != nil {
		return nil, err
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(it.headless),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent: playwright.String(it.userAgent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(float64(it.timeout.Milliseconds()))

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	waitUntil := playwright.WaitUntilStateDomcontentloaded
	response, err := page.Goto(pageURL, playwright.PageGotoOptions{WaitUntil: waitUntil})
	if err != nil {
		return nil, fmt.Errorf("navigation failed: %w", err)
	}
	if response != nil && !response.Ok() {
		return nil, fmt.Errorf("navigation to %s returned status %d", pageURL, response.Status())
	}

	return evaluateSnapshot(page, it.markers)
}
