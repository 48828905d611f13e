package testutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routewise/toptw-hga/internal/poi"
	"github.com/routewise/toptw-hga/internal/solver"
)

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// AssertValidUUID checks if a string is a valid UUID, used to check the
// correlation id attached to a request/response pair.
func AssertValidUUID(t *testing.T, id string, msgAndArgs ...interface{}) bool {
	return assert.Regexp(t, uuidRegex, id, msgAndArgs...)
}

// AssertDepotSafe asserts that a route starts and ends at the same node
// and that its interior POIs are pairwise distinct.
func AssertDepotSafe(t *testing.T, route []int, msgAndArgs ...interface{}) bool {
	if len(route) < 2 {
		return assert.Fail(t, "route must have at least a start and end sentinel", msgAndArgs...)
	}

	ok := assert.Equal(t, route[0], route[len(route)-1], msgAndArgs...)

	seen := make(map[int]bool, len(route))
	for _, id := range route[1 : len(route)-1] {
		if seen[id] {
			ok = assert.Fail(t, "duplicate interior POI id", id) && ok
		}
		seen[id] = true
	}
	return ok
}

// AssertFeasibleRoute asserts that route satisfies every hard constraint
// (time windows, budget, final duration) under ctx and prefs.
func AssertFeasibleRoute(t *testing.T, route []int, ctx *solver.Context, prefs solver.Preferences, msgAndArgs ...interface{}) bool {
	return assert.True(t, solver.IsFeasible(route, ctx, prefs), msgAndArgs...)
}

// AssertSymmetricMatrix asserts that m is symmetric with a zero diagonal.
func AssertSymmetricMatrix(t *testing.T, m *poi.Matrix, msgAndArgs ...interface{}) bool {
	ok := true
	for i := 0; i < m.Len(); i++ {
		ok = assert.Equal(t, 0.0, m.TravelTime(i, i), msgAndArgs...) && ok
		for j := i + 1; j < m.Len(); j++ {
			ok = assert.InDelta(t, m.TravelTime(i, j), m.TravelTime(j, i), 1e-9, msgAndArgs...) && ok
		}
	}
	return ok
}

// AssertMonotoneFitness asserts that fitnesses (taken across successive
// generations' best-ever values) never decreases, the elitism invariant.
func AssertMonotoneFitness(t *testing.T, fitnesses []float64, msgAndArgs ...interface{}) bool {
	ok := true
	for i := 1; i < len(fitnesses); i++ {
		ok = assert.GreaterOrEqual(t, fitnesses[i], fitnesses[i-1], msgAndArgs...) && ok
	}
	return ok
}
