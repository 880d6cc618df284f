//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories"
	"github.com/drupalpod/drupalpod-cli/test/infrastructure/repositorydoubles"
)

func newRegistry() *repositories.PageInfoRegistry {
	registry := repositories.NewPageInfoRegistry()
	registry.Register(&repositorydoubles.StubPageInfoRepository{StrategyName: "attached"})
	registry.Register(&repositorydoubles.StubPageInfoRepository{StrategyName: "scripting"})
	registry.Register(&repositorydoubles.StubPageInfoRepository{StrategyName: "fetch"})
	return registry
}

func names(registry *repositories.PageInfoRegistry, ranking []string) []string {
	var result []string
	for _, strategy := range registry.Ranked(ranking) {
		result = append(result, strategy.Name())
	}
	return result
}

func TestPageInfoRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should keep registration order by default", func(t *testing.T) {
		t.Parallel()
		// given
		registry := newRegistry()

		// when
		ranked := names(registry, nil)

		// then
		assert.Equal(t, []string{"attached", "scripting", "fetch"}, ranked)
		assert.Equal(t, ranked, registry.Names())
	})

	t.Run("should follow the configured ranking and skip unknown names", func(t *testing.T) {
		t.Parallel()
		// given
		registry := newRegistry()

		// when
		ranked := names(registry, []string{"fetch", "carrier-pigeon", "attached"})

		// then
		assert.Equal(t, []string{"fetch", "attached"}, ranked)
	})

	t.Run("should replace a strategy registered twice without duplicating it", func(t *testing.T) {
		t.Parallel()
		// given
		registry := newRegistry()
		replacement := &repositorydoubles.StubPageInfoRepository{StrategyName: "fetch", Unavailable: true}

		// when
		registry.Register(replacement)

		// then
		assert.Len(t, registry.All(), 3)
		assert.Same(t, replacement, registry.Get("fetch"))
		assert.Nil(t, registry.Get("missing"))
	})
}
