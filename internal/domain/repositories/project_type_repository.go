package repositories

import "context"

// ProjectTypeRepository looks up a project's type on Drupal.org.
type ProjectTypeRepository interface {
	// LookupProjectType returns the type of the first project matching the
	// machine name. found is false when the lookup succeeded but matched nothing.
	LookupProjectType(ctx context.Context, projectName string) (projectType string, found bool, err error)
}
