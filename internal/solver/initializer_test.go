package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializePopulation_AllDepotSafe(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()
	cfg := DefaultConfig()
	cfg.PopulationSize = 20

	pop := InitializePopulation(ctx, prefs, cfg)
	require.Len(t, pop, 20)

	for _, ind := range pop {
		assert.Equal(t, prefs.StartNodeID, ind.Route[0])
		assert.Equal(t, prefs.StartNodeID, ind.Route[len(ind.Route)-1])
		assert.True(t, IsFeasible(ind.Route, ctx, prefs))
	}
}

func TestInitializePopulation_InteriorDistinct(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()
	cfg := DefaultConfig()
	cfg.PopulationSize = 10

	pop := InitializePopulation(ctx, prefs, cfg)
	for _, ind := range pop {
		seen := map[int]bool{}
		for _, id := range ind.Interior() {
			assert.False(t, seen[id], "duplicate interior id %d", id)
			seen[id] = true
		}
	}
}
