package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTournamentSelect_ReturnsFittest(t *testing.T) {
	ctx := testContext()
	pop := Population{
		{Route: []int{0, 0}, Fitness: 1},
		{Route: []int{0, 0}, Fitness: 5},
		{Route: []int{0, 0}, Fitness: 3},
	}

	best := TournamentSelect(pop, ctx, 3)
	assert.Equal(t, 5.0, best.Fitness)
}

func TestOX1_PreservesDepotSentinels(t *testing.T) {
	ctx := testContext()
	p1 := &Individual{Route: []int{0, 1, 2, 0}}
	p2 := &Individual{Route: []int{0, 2, 1, 0}}

	child := OX1(p1, p2, ctx)

	assert.Equal(t, 0, child.Route[0])
	assert.Equal(t, 0, child.Route[len(child.Route)-1])
}

func TestOX1_ShortInteriorReturnsCopyOfP1(t *testing.T) {
	ctx := testContext()
	p1 := &Individual{Route: []int{0, 1, 0}}
	p2 := &Individual{Route: []int{0, 2, 0}}

	child := OX1(p1, p2, ctx)
	assert.Equal(t, p1.Route, child.Route)
}

func TestMutate_NeverBreaksDepotSentinels(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()

	ind := &Individual{Route: []int{0, 1, 2, 0}}
	for i := 0; i < 20; i++ {
		Mutate(ind, ctx, prefs, 1.0)
		assert.Equal(t, ind.Route[0], ind.Route[len(ind.Route)-1])
	}
}

func TestMutate_NoOpBelowMutationRate(t *testing.T) {
	ctx := testContext()
	prefs := testPrefs()

	ind := &Individual{Route: []int{0, 1, 2, 0}}
	before := append([]int(nil), ind.Route...)
	Mutate(ind, ctx, prefs, 0.0)

	assert.Equal(t, before, ind.Route)
}
