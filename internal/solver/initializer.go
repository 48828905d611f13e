package solver

import "sort"

// heuristicFraction is the share of the initial population built by the
// Labadie-desirability restricted-candidate-list heuristic; the remainder
// is built by pure-random insertion order, to keep the population diverse
// enough for crossover to matter.
const heuristicFraction = 0.8

// InitializePopulation builds cfg.PopulationSize individuals: roughly 80%
// via greedy-randomized (RCL) construction, the rest via random insertion
// order.
func InitializePopulation(ctx *Context, prefs Preferences, cfg Config) Population {
	pop := make(Population, cfg.PopulationSize)
	heuristicCount := int(heuristicFraction * float64(cfg.PopulationSize))

	for i := 0; i < cfg.PopulationSize; i++ {
		if i < heuristicCount {
			pop[i] = buildHeuristicIndividual(ctx, prefs, cfg)
		} else {
			pop[i] = buildRandomIndividual(ctx, prefs)
		}
	}
	return pop
}

type candidate struct {
	id           int
	desirability float64
}

// buildHeuristicIndividual grows a route greedily: at each step it ranks
// every unvisited, currently-insertable POI by Labadie desirability,
// restricts to the top RCLSize, and appends one chosen uniformly at random.
func buildHeuristicIndividual(ctx *Context, prefs Preferences, cfg Config) *Individual {
	ind := NewIndividual(prefs.StartNodeID)
	visited := map[int]bool{prefs.StartNodeID: true}

	for {
		cands := rankedCandidates(ind.Route, ctx, prefs, visited)
		feasible := cands[:0:0]
		for _, c := range cands {
			if TryInsert(ind.Route, c.id, ctx, prefs) {
				feasible = append(feasible, c)
			} else {
				visited[c.id] = true
			}
		}
		if len(feasible) == 0 {
			break
		}

		rclSize := cfg.RCLSize
		if rclSize > len(feasible) {
			rclSize = len(feasible)
		}
		rcl := feasible[:rclSize]
		pick := rcl[ctx.RNG.Intn(len(rcl))]

		ind.Route = insertBeforeClosingDepot(ind.Route, pick.id)
		visited[pick.id] = true
	}
	return ind
}

// buildRandomIndividual shuffles every non-depot POI and appends whichever
// pass try_insert in that order.
func buildRandomIndividual(ctx *Context, prefs Preferences) *Individual {
	ind := NewIndividual(prefs.StartNodeID)

	n := ctx.Catalog.Len()
	ids := make([]int, 0, n-1)
	for id := 0; id < n; id++ {
		if id != prefs.StartNodeID {
			ids = append(ids, id)
		}
	}
	ctx.RNG.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for _, id := range ids {
		if TryInsert(ind.Route, id, ctx, prefs) {
			ind.Route = insertBeforeClosingDepot(ind.Route, id)
		}
	}
	return ind
}

// rankedCandidates returns every unvisited, non-depot POI ranked by
// descending Labadie desirability — (base_score · interest_weight) /
// distance from the route's current tail — with a distance of zero
// treated as infinitely desirable.
func rankedCandidates(route []int, ctx *Context, prefs Preferences, visited map[int]bool) []candidate {
	tail := route[len(route)-2]

	var cands []candidate
	for id := 0; id < ctx.Catalog.Len(); id++ {
		if visited[id] || id == prefs.StartNodeID {
			continue
		}
		p, _ := ctx.Catalog.Get(id)
		if p.IsDepot() {
			continue
		}

		weight := prefs.InterestWeights[p.Category]
		numerator := p.BaseScore * weight
		dist := ctx.Matrix.TravelTime(tail, id)

		var desirability float64
		if dist == 0 {
			desirability = positiveInfinity(numerator)
		} else {
			desirability = numerator / dist
		}
		cands = append(cands, candidate{id: id, desirability: desirability})
	}

	sort.Slice(cands, func(i, j int) bool { return cands[i].desirability > cands[j].desirability })
	return cands
}

func positiveInfinity(numerator float64) float64 {
	if numerator <= 0 {
		return 0
	}
	return numerator * 1e18
}

func insertBeforeClosingDepot(route []int, id int) []int {
	n := len(route)
	out := make([]int, n+1)
	copy(out, route[:n-1])
	out[n-1] = id
	out[n] = route[n-1]
	return out
}
