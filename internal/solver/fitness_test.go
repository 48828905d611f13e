package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/routewise/toptw-hga/internal/poi"
)

func TestEvaluate_DepotOnlyIsZero(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()

	ind := NewIndividual(0)
	Evaluate(ind, ctx, prefs)

	assert.Equal(t, 0.0, ind.TotalScore)
	assert.Equal(t, 0.0, ind.Fitness)
	assert.True(t, ind.Evaluated)
}

func TestEvaluate_PenalizesLateArrival(t *testing.T) {
	ctx := testContext()
	ctx.Catalog = poi.NewCatalog([]poi.POI{
		{ID: 0, Category: poi.CategoryDepot, OpenTime: 0, CloseTime: 1000},
		{ID: 1, X: 500, Category: poi.CategoryHistoryCulture, BaseScore: 10, OpenTime: 0, CloseTime: 50, ServiceDuration: 10},
	})
	ctx.Matrix = poi.BuildMatrix(ctx.Catalog.All())

	prefs := testPrefs()
	prefs.EndTime = 1000

	ind := &Individual{Route: []int{0, 1, 0}}
	Evaluate(ind, ctx, prefs)

	assert.True(t, ind.Evaluated)
	assert.Less(t, ind.Fitness, ind.TotalScore)
}

func TestEvaluate_BudgetPenaltyReducesFitness(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()

	cheap := &Individual{Route: []int{0, 1, 0}}
	Evaluate(cheap, ctx, prefs)

	prefs.Budget = 0
	expensive := &Individual{Route: []int{0, 1, 0}}
	Evaluate(expensive, ctx, prefs)

	assert.Less(t, expensive.Fitness, cheap.Fitness)
}
