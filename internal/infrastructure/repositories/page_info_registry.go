package repositories

import (
	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/drupalpod/drupalpod-cli/internal/domain/repositories"
)

// PageInfoRegistry manages all registered page-access strategies.
type PageInfoRegistry struct {
	strategies map[string]domainRepos.PageInfoRepository
	order      []string
}

// NewPageInfoRegistry creates an empty page-access strategy registry.
func NewPageInfoRegistry() *PageInfoRegistry {
	return &PageInfoRegistry{
		strategies: make(map[string]domainRepos.PageInfoRepository),
	}
}

// Register adds a strategy under its name. Registration order is the default rank.
func (r *PageInfoRegistry) Register(s domainRepos.PageInfoRepository) {
	if _, exists := r.strategies[s.Name()]; !exists {
		r.order = append(r.order, s.Name())
	}
	r.strategies[s.Name()] = s
}

// Get returns the strategy with the given name, or nil if not registered.
func (r *PageInfoRegistry) Get(name string) domainRepos.PageInfoRepository {
	return r.strategies[name]
}

// All returns every registered strategy in registration order.
func (r *PageInfoRegistry) All() []domainRepos.PageInfoRepository {
	result := make([]domainRepos.PageInfoRepository, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.strategies[name])
	}
	return result
}

// Ranked returns the named strategies in the given order. An empty ranking
// means registration order; unknown names are skipped.
func (r *PageInfoRegistry) Ranked(names []string) []domainRepos.PageInfoRepository {
	if len(names) == 0 {
		return r.All()
	}
	result := make([]domainRepos.PageInfoRepository, 0, len(names))
	for _, name := range names {
		s := r.Get(name)
		if s == nil {
			logger.Warnf("[transport] Unknown page-access strategy %q in config (known: %v), ignoring", name, r.Names())
			continue
		}
		result = append(result, s)
	}
	return result
}

// Names returns the list of registered strategy names in registration order.
func (r *PageInfoRegistry) Names() []string {
	return append([]string(nil), r.order...)
}
