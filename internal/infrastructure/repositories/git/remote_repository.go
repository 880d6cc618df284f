package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/storage/memory"
	logger "github.com/sirupsen/logrus"
)

// RemoteRepository checks that a workspace repository URL points to a
// reachable git remote by listing its references.
type RemoteRepository struct{}

func NewRemoteRepository() *RemoteRepository {
	return &RemoteRepository{}
}

func (it *RemoteRepository) Verify(ctx context.Context, url string) error {
	remote := gogit.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})

	refs, err := remote.ListContext(ctx, &gogit.ListOptions{})
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		logger.Warnf("Repository %s exists but has no commits", url)
		return nil
	}
	if err != nil {
		return fmt.Errorf("repository %s is not reachable: %w", url, err)
	}

	logger.Debugf("Repository %s advertises %d references", url, len(refs))
	return nil
}
