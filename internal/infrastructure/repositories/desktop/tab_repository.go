package desktop

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"
	logger "github.com/sirupsen/logrus"
)

// TabRepository opens URLs in the user's default browser.
type TabRepository struct {
	open func(url string) error
}

func NewTabRepository() *TabRepository {
	// the launcher's own output must never reach stdout, which belongs to
	// --print and the native messaging channel
	browser.Stdout = io.Discard
	return &TabRepository{open: browser.OpenURL}
}

func (it *TabRepository) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Infof("Opening %s", url)
	if err := it.open(url); err != nil {
		return fmt.Errorf("failed to open browser tab: %w", err)
	}
	return nil
}
