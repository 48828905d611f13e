package solver

import "sort"

// All operators below are depot-safe: they read and write only the
// interior slice, reconstructing the depot-bounded route afterward.

// TournamentSelect samples k distinct individuals uniformly and returns
// the fittest of the sample. If k exceeds the population size, every
// individual is sampled.
func TournamentSelect(pop Population, ctx *Context, k int) *Individual {
	if k > len(pop) {
		k = len(pop)
	}

	idx := ctx.RNG.Perm(len(pop))[:k]
	best := pop[idx[0]]
	for _, i := range idx[1:] {
		if pop[i].Fitness > best.Fitness {
			best = pop[i]
		}
	}
	return best
}

// OX1 performs order crossover on two parents' interior slices and returns
// a new child individual sharing p1's start/end node. The child is built
// as a contiguous segment copied from p1 followed by p2's remaining POIs
// in p2's own order, skipping anything the segment already carries — the
// two parents need not share the same interior, so the child's length is
// whatever that union-minus-duplicates produces, not forced to match
// either parent (child interior stays a subset of p1's interior union
// p2's interior). If either parent's interior has fewer than 2 POIs, the
// child is a copy of p1.
func OX1(p1, p2 *Individual, ctx *Context) *Individual {
	i1, i2 := p1.Interior(), p2.Interior()
	if len(i1) < 2 || len(i2) < 2 {
		return p1.Clone()
	}

	cut1 := ctx.RNG.Intn(len(i1))
	cut2 := ctx.RNG.Intn(len(i1))
	if cut1 > cut2 {
		cut1, cut2 = cut2, cut1
	}
	segment := i1[cut1 : cut2+1]

	taken := make(map[int]bool, len(segment))
	for _, id := range segment {
		taken[id] = true
	}

	child := make([]int, 0, len(i1)+len(i2))
	child = append(child, segment...)
	for _, id := range i2 {
		if taken[id] {
			continue
		}
		child = append(child, id)
		taken[id] = true
	}

	route := make([]int, 0, len(child)+2)
	route = append(route, p1.Route[0])
	route = append(route, child...)
	route = append(route, p1.Route[len(p1.Route)-1])

	return &Individual{Route: route}
}

// mutationOp is one of the three interior-mutation strategies, dispatched
// by weighted random choice.
type mutationOp int

const (
	opTwoOpt mutationOp = iota
	opSwap
	opBestInsertion
)

// Mutate applies mutation_rate as the probability that ind is mutated at
// all; when it fires, one of 2-opt (30%), swap (30%) or best-insertion
// (40%) is dispatched. An interior with fewer than 2 nodes always reduces
// to best-insertion, since 2-opt and swap have nothing to act on.
func Mutate(ind *Individual, ctx *Context, prefs Preferences, mutationRate float64) {
	if ctx.RNG.Float64() >= mutationRate {
		return
	}

	if len(ind.Interior()) < 2 {
		bestInsertionMutate(ind, ctx, prefs)
		return
	}

	r := ctx.RNG.Float64()
	var op mutationOp
	switch {
	case r < 0.3:
		op = opTwoOpt
	case r < 0.6:
		op = opSwap
	default:
		op = opBestInsertion
	}

	switch op {
	case opTwoOpt:
		twoOptMutate(ind, ctx, prefs)
	case opSwap:
		swapMutate(ind, ctx, prefs)
	case opBestInsertion:
		bestInsertionMutate(ind, ctx, prefs)
	}
}

// twoOptMutate reverses a random interior segment, keeping the reversal
// only if the resulting route is feasible.
func twoOptMutate(ind *Individual, ctx *Context, prefs Preferences) {
	interior := ind.Interior()
	if len(interior) < 2 {
		return
	}

	i := ctx.RNG.Intn(len(interior))
	j := ctx.RNG.Intn(len(interior))
	if i > j {
		i, j = j, i
	}
	if i == j {
		return
	}

	trial := make([]int, len(interior))
	copy(trial, interior)
	for l, r := i, j; l < r; l, r = l+1, r-1 {
		trial[l], trial[r] = trial[r], trial[l]
	}

	route := withInterior(ind.Route, trial)
	if IsFeasible(route, ctx, prefs) {
		ind.Route = route
		ind.Evaluated = false
	}
}

// swapMutate exchanges two random interior positions, keeping the swap
// only if the resulting route is feasible.
func swapMutate(ind *Individual, ctx *Context, prefs Preferences) {
	interior := ind.Interior()
	if len(interior) < 2 {
		return
	}

	i := ctx.RNG.Intn(len(interior))
	j := ctx.RNG.Intn(len(interior))
	if i == j {
		return
	}

	trial := make([]int, len(interior))
	copy(trial, interior)
	trial[i], trial[j] = trial[j], trial[i]

	route := withInterior(ind.Route, trial)
	if IsFeasible(route, ctx, prefs) {
		ind.Route = route
		ind.Evaluated = false
	}
}

// bestInsertionMutate samples up to 10 unvisited POIs, ranks them by
// weighted base score, and inserts each at the gap minimizing added
// travel, accepting only feasible insertions.
func bestInsertionMutate(ind *Individual, ctx *Context, prefs Preferences) {
	const sampleSize = 10

	visited := ind.InteriorIDSet()
	visited[ind.Route[0]] = struct{}{}

	var pool []int
	for id := 0; id < ctx.Catalog.Len(); id++ {
		if _, ok := visited[id]; ok {
			continue
		}
		p, _ := ctx.Catalog.Get(id)
		if p.IsDepot() {
			continue
		}
		pool = append(pool, id)
	}
	ctx.RNG.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > sampleSize {
		pool = pool[:sampleSize]
	}

	sort.Slice(pool, func(i, j int) bool {
		pi, _ := ctx.Catalog.Get(pool[i])
		pj, _ := ctx.Catalog.Get(pool[j])
		wi := pi.BaseScore * prefs.InterestWeights[pi.Category]
		wj := pj.BaseScore * prefs.InterestWeights[pj.Category]
		return wi > wj
	})

	for _, cand := range pool {
		route, ok := bestInsertionPosition(ind.Route, cand, ctx, prefs)
		if ok {
			ind.Route = route
			ind.Evaluated = false
		}
	}
}

// bestInsertionPosition scans every interior gap for the position
// minimizing added travel distance and returns the resulting route if it
// is feasible there.
func bestInsertionPosition(route []int, candidateID int, ctx *Context, prefs Preferences) ([]int, bool) {
	p, _ := ctx.Catalog.Get(candidateID)

	bestPos := -1
	bestDelta := 0.0
	for pos := 1; pos < len(route); pos++ {
		prev, next := route[pos-1], route[pos]
		delta := ctx.Matrix.TravelTime(prev, candidateID) + p.ServiceDuration +
			ctx.Matrix.TravelTime(candidateID, next) - ctx.Matrix.TravelTime(prev, next)
		if bestPos == -1 || delta < bestDelta {
			bestPos, bestDelta = pos, delta
		}
	}
	if bestPos == -1 {
		return route, false
	}

	trial, ok := InsertAt(route, bestPos, candidateID, ctx, prefs)
	if !ok {
		return route, false
	}
	return trial, true
}

// withInterior reconstructs a depot-bounded route from a mutated interior
// slice, preserving the original start/end sentinels.
func withInterior(route []int, interior []int) []int {
	out := make([]int, 0, len(interior)+2)
	out = append(out, route[0])
	out = append(out, interior...)
	out = append(out, route[len(route)-1])
	return out
}
