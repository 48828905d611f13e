package solver

import (
	"context"
	"math/rand"

	"github.com/routewise/toptw-hga/internal/poi"
)

// Result is the solved route plus the aggregate figures the HTTP facade
// formats into a response.
type Result struct {
	Best           *Individual
	GenerationsRan int
}

// Solve runs the full hybrid genetic algorithm for one request: it takes
// an owned copy of catalog (the caller's deep copy, per spec §5), builds
// the initial population, and evolves it until stagnation, the generation
// cap, or ctx cancellation. Catalog and matrix are never mutated; only the
// per-request route containers are owned and rewritten.
//
// If the catalog has no non-depot POIs, Solve returns the depot-only
// individual immediately (zero fitness) without running any generation —
// the caller is expected to treat that as a no-feasible-route response.
func Solve(ctx context.Context, catalog poi.Catalog, matrix *poi.Matrix, prefs Preferences) (*Result, error) {
	if _, ok := catalog.Get(prefs.StartNodeID); !ok {
		return nil, ErrUnknownStartNode{StartNodeID: prefs.StartNodeID}
	}

	cfg := DefaultConfig()
	sctx := &Context{
		Catalog: catalog,
		Matrix:  matrix,
		RNG:     rand.New(rand.NewSource(rand.Int63())),
	}

	if !hasNonDepotPOI(catalog) {
		depotOnly := NewIndividual(prefs.StartNodeID)
		Evaluate(depotOnly, sctx, prefs)
		return &Result{Best: depotOnly}, nil
	}

	pop := InitializePopulation(sctx, prefs, cfg)
	EvaluateAll(pop, sctx, prefs)

	best := Run(ctx, pop, sctx, prefs, cfg)
	return &Result{Best: best}, nil
}

func hasNonDepotPOI(catalog poi.Catalog) bool {
	for _, p := range catalog.All() {
		if !p.IsDepot() {
			return true
		}
	}
	return false
}

// ErrUnknownStartNode indicates a request's start_node_id does not exist
// in the catalog. The HTTP facade maps this to a 400 response.
type ErrUnknownStartNode struct {
	StartNodeID int
}

func (e ErrUnknownStartNode) Error() string {
	return "solver: start node id not found in catalog"
}
