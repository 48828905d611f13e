package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NeverWorsensBestEver(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()
	cfg := DefaultConfig()
	cfg.PopulationSize = 10
	cfg.GenerationsMax = 15
	cfg.StagnationLimit = 5

	pop := InitializePopulation(ctx, prefs, cfg)
	EvaluateAll(pop, ctx, prefs)

	firstBest := pop.Best().Fitness
	result := Run(context.Background(), pop, ctx, prefs, cfg)

	require.NotNil(t, result)
	assert.GreaterOrEqual(t, result.Fitness, firstBest)
}

func TestRun_RespectsCancellation(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()
	cfg := DefaultConfig()
	cfg.PopulationSize = 10
	cfg.GenerationsMax = 200

	pop := InitializePopulation(ctx, prefs, cfg)
	EvaluateAll(pop, ctx, prefs)

	gctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Run(gctx, pop, ctx, prefs, cfg)
	assert.NotNil(t, result)
}
