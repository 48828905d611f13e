package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair_RestoresFeasibility(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()
	prefs.Budget = 6 // only the cheaper POI (price 5) fits

	ind := &Individual{Route: []int{0, 1, 2, 0}}
	assertInfeasible(t, ind, ctx, prefs)

	Repair(ind, ctx, prefs)
	assert.True(t, IsFeasible(ind.Route, ctx, prefs))
}

func TestRepair_DepotOnlyWhenNothingFits(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()
	prefs.Budget = 0

	ind := &Individual{Route: []int{0, 1, 2, 0}}
	Repair(ind, ctx, prefs)

	assert.Equal(t, []int{0, 0}, ind.Route)
}

func assertInfeasible(t *testing.T, ind *Individual, ctx *Context, prefs Preferences) {
	t.Helper()
	assert.False(t, IsFeasible(ind.Route, ctx, prefs))
}
