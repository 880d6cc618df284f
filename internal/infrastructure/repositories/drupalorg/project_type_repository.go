package drupalorg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

const (
	nodeEndpoint    = "/api-d7/node.json"
	machineNameKey  = "field_project_machine_name"
	projectTypePath = "list.0.type"
	maxBodyBytes    = 4 << 20
)

var errInvalidPayload = errors.New("drupal.org returned an invalid JSON payload")

// ProjectTypeRepository asks the Drupal.org node API for the bundle of the
// project node whose machine name matches.
type ProjectTypeRepository struct {
	client     *http.Client
	baseURL    string
	userAgent  string
	maxElapsed time.Duration
}

func NewProjectTypeRepository(settings *entities.Settings) *ProjectTypeRepository {
	return &ProjectTypeRepository{
		client:     &http.Client{Timeout: settings.HTTP.Timeout},
		baseURL:    strings.TrimSuffix(settings.DrupalOrg.APIBaseURL, "/"),
		userAgent:  settings.HTTP.UserAgent,
		maxElapsed: settings.DrupalOrg.MaxRetry,
	}
}

// LookupProjectType returns found=false when no node matches. Transient
// failures (transport errors, 429 and 5xx) are retried with exponential
// backoff until the configured window closes.
func (it *ProjectTypeRepository) LookupProjectType(
	ctx context.Context,
	projectName string,
) (string, bool, error) {
	endpoint := fmt.Sprintf(
		"%s%s?%s=%s", it.baseURL, nodeEndpoint, machineNameKey, url.QueryEscape(projectName),
	)

	var body []byte
	operation := func() error {
		var err error
		body, err = it.get(ctx, endpoint)
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(it.newBackoff(), ctx)); err != nil {
		return "", false, err
	}

	if !gjson.ValidBytes(body) {
		return "", false, errInvalidPayload
	}

	result := gjson.GetBytes(body, projectTypePath)
	if !result.Exists() || result.String() == "" {
		logger.Debugf("[resolver] No project node found for %q", projectName)
		return "", false, nil
	}
	return result.String(), true, nil
}

func (it *ProjectTypeRepository) newBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = it.maxElapsed
	return bo
}

func (it *ProjectTypeRepository) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("User-Agent", it.userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debugf("[resolver] GET %s", endpoint)
	resp, err := it.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, fmt.Errorf("request to drupal.org failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read drupal.org response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("drupal.org returned status %d", resp.StatusCode)
	default:
		return nil, backoff.Permanent(fmt.Errorf("drupal.org returned status %d", resp.StatusCode))
	}
}
