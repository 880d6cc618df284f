package pageinfo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"
	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/dom"
)

// AttachedName identifies the strategy that reads the issue tab already open
// in the user's browser.
const AttachedName = "attached"

var errPageNotOpen = errors.New("issue page is not open in the attached browser")

// AttachedPageRepository connects to a running browser over the Chrome
// DevTools Protocol and extracts metadata from the matching open tab, so the
// user's own session decides the logged-in and push-access flags.
type AttachedPageRepository struct {
	runner  *PlaywrightRunner
	cdpURL  string
	markers dom.Markers
}

func NewAttachedPageRepository(runner *PlaywrightRunner, settings *entities.Settings) *AttachedPageRepository {
	return &AttachedPageRepository{
		runner:  runner,
		cdpURL:  settings.Browser.CDPURL,
		markers: dom.MarkersFromSettings(settings),
	}
}

func (it *AttachedPageRepository) Name() string {
	return AttachedName
}

func (it *AttachedPageRepository) Available(_ context.Context) bool {
	if it.cdpURL == "" {
		return false
	}
	if _, err := it.runner.Start(); err != nil {
		logger.Debugf("[transport] Attached strategy unavailable: %v", err)
		return false
	}
	return true
}

func (it *AttachedPageRepository) Extract(ctx context.Context, pageURL string) (*entities.IssueMetadata, error) {
	pw, err := it.runner.Start()
	if err != nil {
		return nil, err
	}

	browser, err := pw.Chromium.ConnectOverCDP(it.cdpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to attach to %s: %w", it.cdpURL, err)
	}
	// closing a CDP connection detaches without closing the user's browser
	defer func() { _ = browser.Close() }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	page := findPage(browser, pageURL)
	if page == nil {
		return nil, errPageNotOpen
	}

	logger.Debugf("[transport] Reading attached tab %s", page.URL())
	return evaluateSnapshot(page, it.markers)
}

func findPage(browser playwright.Browser, pageURL string) playwright.Page {
	want := canonicalURL(pageURL)
	for _, browserContext := range browser.Contexts() {
		for _, page := range browserContext.Pages() {
			if canonicalURL(page.URL()) == want {
				return page
			}
		}
	}
	return nil
}

// canonicalURL drops the query, fragment and trailing slash so that
// "…/issues/1#comment-2" matches "…/issues/1".
func canonicalURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	return parsed.String()
}
