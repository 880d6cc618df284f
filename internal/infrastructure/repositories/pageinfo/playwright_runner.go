package pageinfo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/dom"
)

//go:embed extractor.js
var extractorScript string

// PlaywrightRunner starts the playwright driver on first use and shares it
// between the attached and scripting strategies.
type PlaywrightRunner struct {
	install bool

	mu      sync.Mutex
	started bool
	pw      *playwright.Playwright
	runErr  error
}

// NewPlaywrightRunner creates a runner. Nothing is started until Start.
func NewPlaywrightRunner(settings *entities.Settings) *PlaywrightRunner {
	return &PlaywrightRunner{install: settings.Browser.Install}
}

// Start runs the driver, installing it first when configured. The outcome of
// the first attempt is remembered.
func (r *PlaywrightRunner) Start() (*playwright.Playwright, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return r.pw, r.runErr
	}
	r.started = true

	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if r.install {
		if err := playwright.Install(opts); err != nil {
			r.runErr = fmt.Errorf("failed to install playwright: %w", err)
			return nil, r.runErr
		}
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		r.runErr = fmt.Errorf("failed to start playwright: %w", err)
		return nil, r.runErr
	}

	r.pw = pw
	return pw, nil
}

// Close stops the driver if it was started.
func (r *PlaywrightRunner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pw == nil {
		return nil
	}
	err := r.pw.Stop()
	r.pw = nil
	return err
}

// evaluateSnapshot runs the extractor function inside the page and
// normalises its result.
func evaluateSnapshot(page playwright.Page, markers dom.Markers) (*entities.IssueMetadata, error) {
	raw, err := page.Evaluate(extractorScript, map[string]any{
		"loggedIn":   markers.LoggedIn,
		"pushAccess": markers.PushAccess,
	})
	if err != nil {
		return nil, fmt.Errorf("script evaluation failed: %w", err)
	}
	return decodeSnapshot(raw)
}

// decodeSnapshot converts the extractor's return value into IssueMetadata.
func decodeSnapshot(raw any) (*entities.IssueMetadata, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("unexpected script result: %w", err)
	}

	var snapshot entities.PageSnapshot
	if unmarshalErr := json.Unmarshal(encoded, &snapshot); unmarshalErr != nil {
		return nil, fmt.Errorf("unexpected script result: %w", unmarshalErr)
	}
	if snapshot.ExtractionErr != "" {
		logger.Debugf("[transport] In-page extraction error: %s", snapshot.ExtractionErr)
		return &entities.IssueMetadata{Success: false}, fmt.Errorf("%w: %s", entities.ErrExtraction, snapshot.ExtractionErr)
	}

	return entities.NewIssueMetadata(snapshot), nil
}
