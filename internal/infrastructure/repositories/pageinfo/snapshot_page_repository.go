package pageinfo

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/dom"
)

// SnapshotName identifies the strategy that reads a saved copy of the page.
const SnapshotName = "snapshot"

// SnapshotPageRepository extracts metadata from an HTML file saved from the
// browser. It is never registered; callers create one per --html flag.
type SnapshotPageRepository struct {
	path    string
	markers dom.Markers
}

func NewSnapshotPageRepository(path string, settings *entities.Settings) *SnapshotPageRepository {
	return &SnapshotPageRepository{path: path, markers: dom.MarkersFromSettings(settings)}
}

func (it *SnapshotPageRepository) Name() string {
	return SnapshotName
}

func (it *SnapshotPageRepository) Available(_ context.Context) bool {
	info, err := os.Stat(it.path)
	return err == nil && !info.IsDir()
}

func (it *SnapshotPageRepository) Extract(_ context.Context, pageURL string) (*entities.IssueMetadata, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	file, err := os.Open(it.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer file.Close()

	return dom.ExtractFrom(file, parsed.Path, it.markers)
}
