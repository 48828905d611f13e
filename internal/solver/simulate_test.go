package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/routewise/toptw-hga/internal/poi"
)

func testCatalog() poi.Catalog {
	return poi.NewCatalog([]poi.POI{
		{ID: 0, X: 0, Y: 0, Category: poi.CategoryDepot, OpenTime: 0, CloseTime: 1000},
		{ID: 1, X: 10, Y: 0, Category: poi.CategoryHistoryCulture, BaseScore: 10, OpenTime: 0, CloseTime: 1000, ServiceDuration: 30, Price: 5},
		{ID: 2, X: 20, Y: 0, Category: poi.CategoryFoodDrink, BaseScore: 20, OpenTime: 0, CloseTime: 1000, ServiceDuration: 20, Price: 15},
	})
}

func testContext() *Context {
	catalog := testCatalog()
	matrix := poi.BuildMatrix(catalog.All())
	return &Context{Catalog: catalog, Matrix: matrix, RNG: rand.New(rand.NewSource(1))}
}

func testPrefs() Preferences {
	return NewPreferences(1000, 0, 500, 0, map[poi.Category]int{
		poi.CategoryHistoryCulture: 3,
		poi.CategoryNatureParks:    3,
		poi.CategoryFoodDrink:      3,
		poi.CategoryShopping:       3,
		poi.CategoryEntertainment:  3,
	})
}

func TestSimulate_WaitWhenEarly(t *testing.T) {
	ctx := testContext()
	ctx.Catalog = poi.NewCatalog([]poi.POI{
		{ID: 0, Category: poi.CategoryDepot, OpenTime: 0, CloseTime: 1000},
		{ID: 1, X: 10, Category: poi.CategoryHistoryCulture, OpenTime: 50, CloseTime: 200, ServiceDuration: 10},
	})
	ctx.Matrix = poi.BuildMatrix(ctx.Catalog.All())

	prefs := testPrefs()
	sim := Simulate([]int{0, 1, 0}, ctx, prefs)

	assert.Equal(t, 50.0, sim.Arrivals[1])
	assert.Equal(t, 40.0, sim.Waits[1])
}

func TestSimulate_LateArrivalNotClamped(t *testing.T) {
	ctx := testContext()
	ctx.Catalog = poi.NewCatalog([]poi.POI{
		{ID: 0, Category: poi.CategoryDepot, OpenTime: 0, CloseTime: 1000},
		{ID: 1, X: 500, Category: poi.CategoryHistoryCulture, OpenTime: 0, CloseTime: 100, ServiceDuration: 10},
	})
	ctx.Matrix = poi.BuildMatrix(ctx.Catalog.All())

	prefs := testPrefs()
	sim := Simulate([]int{0, 1, 0}, ctx, prefs)

	assert.False(t, sim.Feasible)
	assert.Equal(t, 500.0, sim.Arrivals[1])
}

func TestIsFeasible_MatchesSimulate(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()

	route := []int{0, 1, 2, 0}
	sim := Simulate(route, ctx, prefs)
	assert.Equal(t, sim.Feasible, IsFeasible(route, ctx, prefs))
}

func TestTryInsert_RejectsOverBudget(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()
	prefs.Budget = 1

	assert.False(t, TryInsert([]int{0, 0}, 1, ctx, prefs))
}
