package repositories

import "context"

// TabRepository opens URLs in the user's browser.
type TabRepository interface {
	Open(ctx context.Context, url string) error
}

// RemoteRepository checks that a git repository URL is reachable.
type RemoteRepository interface {
	Verify(ctx context.Context, url string) error
}
