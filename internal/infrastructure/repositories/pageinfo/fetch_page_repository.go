package pageinfo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/dom"
)

// FetchName identifies the anonymous HTTP strategy.
const FetchName = "fetch"

// FetchPageRepository downloads the issue page anonymously and extracts it
// with the goquery extractor. Logged-in and push-access flags are always
// false here, since no session cookies are sent.
type FetchPageRepository struct {
	client    *http.Client
	userAgent string
	markers   dom.Markers
}

func NewFetchPageRepository(settings *entities.Settings) *FetchPageRepository {
	return &FetchPageRepository{
		client:    &http.Client{Timeout: settings.HTTP.Timeout},
		userAgent: settings.HTTP.UserAgent,
		markers:   dom.MarkersFromSettings(settings),
	}
}

func (it *FetchPageRepository) Name() string {
	return FetchName
}

func (it *FetchPageRepository) Available(_ context.Context) bool {
	return true
}

func (it *FetchPageRepository) Extract(ctx context.Context, pageURL string) (*entities.IssueMetadata, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", it.userAgent)
	req.Header.Set("Accept", "text/html")

	logger.Debugf("[transport] GET %s", pageURL)
	resp, err := it.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s returned status %d", pageURL, resp.StatusCode)
	}

	return dom.ExtractFrom(resp.Body, parsed.Path, it.markers)
}
