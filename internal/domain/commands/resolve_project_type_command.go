package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// ResolveProjectType is the interface for resolving a project's type.
type ResolveProjectType interface {
	Execute(ctx context.Context, projectName string) (string, error)
}

// ResolveProjectTypeCommand resolves project types through a 24 hour cache
// in front of the Drupal.org API.
type ResolveProjectTypeCommand struct {
	remote repositories.ProjectTypeRepository
	cache  repositories.ProjectTypeCacheRepository
	now    entities.Clock
	group  singleflight.Group
}

// NewResolveProjectTypeCommand creates a new ResolveProjectTypeCommand.
func NewResolveProjectTypeCommand(
	remote repositories.ProjectTypeRepository,
	cache repositories.ProjectTypeCacheRepository,
	now entities.Clock,
) *ResolveProjectTypeCommand {
	return &ResolveProjectTypeCommand{
		remote: remote,
		cache:  cache,
		now:    now,
	}
}

// Execute returns the cached type when fresh, otherwise looks it up and
// caches the result. An empty lookup result resolves to "Unknown"; network
// and parse failures are returned as errors.
func (it *ResolveProjectTypeCommand) Execute(ctx context.Context, projectName string) (string, error) {
	if projectName == "" {
		return "", fmt.Errorf("%w: no project name provided", entities.ErrResolver)
	}

	result, err, _ := it.group.Do(projectName, func() (any, error) {
		return it.resolve(ctx, projectName)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (it *ResolveProjectTypeCommand) resolve(ctx context.Context, projectName string) (string, error) {
	entry, ok, cacheErr := it.cache.GetProjectType(ctx, projectName)
	if cacheErr != nil {
		logger.Warnf("[resolver] Failed to read cache for %q: %v", projectName, cacheErr)
	}
	if ok && entry.IsFresh(it.now()) {
		logger.Debugf("[resolver] Using cached project type for %q", projectName)
		return entry.Type, nil
	}

	projectType, found, err := it.remote.LookupProjectType(ctx, projectName)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", entities.ErrResolver, err)
	}
	if !found || projectType == "" {
		logger.Warnf("[resolver] No project found with name %q", projectName)
		projectType = entities.UnknownProjectType
	}

	if setErr := it.cache.SetProjectType(ctx, projectName, entities.ProjectTypeCacheEntry{
		Type:      projectType,
		Timestamp: it.now(),
	}); setErr != nil {
		logger.Warnf("[resolver] Failed to cache project type for %q: %v", projectName, setErr)
	}

	return projectType, nil
}
