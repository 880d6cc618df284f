package entities

import (
	"context"
	"sync"
	"time"
)

const (
	// UnknownProjectType is shown when a project type cannot be determined.
	UnknownProjectType = "Unknown"
	// LoadingProjectType is shown while a lookup is in flight.
	LoadingProjectType = "Loading..."

	// ProjectTypeTTL is how long a cached project type stays valid.
	ProjectTypeTTL = 24 * time.Hour

	projectTypeKeyPrefix = "project_type_"
)

// Clock returns the current time.
type Clock func() time.Time

// ProjectTypeCacheEntry is a cached project type lookup.
type ProjectTypeCacheEntry struct {
	Type      string    `json:"type"      yaml:"type"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// IsFresh reports whether the entry is younger than ProjectTypeTTL at now.
func (e ProjectTypeCacheEntry) IsFresh(now time.Time) bool {
	return e.Timestamp.After(now.Add(-ProjectTypeTTL))
}

// ProjectTypeCacheKey returns the storage key for a project's cached type.
func ProjectTypeCacheKey(projectName string) string {
	return projectTypeKeyPrefix + projectName
}

// PendingProjectType is a write-once project type that starts out pending.
type PendingProjectType struct {
	mu    sync.RWMutex
	value string
	done  chan struct{}
	once  sync.Once
}

// NewPendingProjectType creates a pending project type.
func NewPendingProjectType() *PendingProjectType {
	return &PendingProjectType{done: make(chan struct{})}
}

// Resolve publishes the value. Only the first call has any effect.
func (p *PendingProjectType) Resolve(value string) {
	p.once.Do(func() {
		if value == "" {
			value = UnknownProjectType
		}
		p.mu.Lock()
		p.value = value
		p.mu.Unlock()
		close(p.done)
	})
}

// Current returns the value to display right now.
func (p *PendingProjectType) Current() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.value == "" {
		return LoadingProjectType
	}
	return p.value
}

// Done is closed once the value is resolved.
func (p *PendingProjectType) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the value is resolved or ctx is done.
func (p *PendingProjectType) Wait(ctx context.Context) (string, error) {
	select {
	case <-p.done:
		return p.Current(), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
