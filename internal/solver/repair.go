package solver

import "math"

// Repair removes interior POIs from an infeasible individual until it
// becomes feasible or only the two depot sentinels remain, mutating the
// route in place. Each round removes the interior POI with the lowest
// score/time-cost ratio, where time-cost is the time (travel plus service
// duration) saved by removing it; a POI whose removal would not shorten the route (marginal_time_cost
// <= 0) is never chosen. If no POI qualifies, the node immediately before
// the trailing depot is removed as a fallback.
func Repair(ind *Individual, ctx *Context, prefs Preferences) {
	for !IsFeasible(ind.Route, ctx, prefs) {
		interior := ind.Interior()
		if len(interior) == 0 {
			break
		}

		removeIdx, ok := worstRatioIndex(ind.Route, ctx, prefs)
		if !ok {
			removeIdx = len(ind.Route) - 2
		}

		ind.Route = removeAt(ind.Route, removeIdx)
		ind.Evaluated = false
	}
}

// worstRatioIndex returns the route index (excluding both depot
// sentinels) of the interior POI with the lowest score/time-cost ratio,
// or false if no interior POI has a positive marginal time cost.
func worstRatioIndex(route []int, ctx *Context, prefs Preferences) (int, bool) {
	bestIdx := -1
	bestRatio := math.Inf(1)

	for i := 1; i < len(route)-1; i++ {
		prev, cur, next := route[i-1], route[i], route[i+1]
		p, _ := ctx.Catalog.Get(cur)

		marginal := ctx.Matrix.TravelTime(prev, cur) + p.ServiceDuration +
			ctx.Matrix.TravelTime(cur, next) - ctx.Matrix.TravelTime(prev, next)
		if marginal <= 0 {
			continue
		}

		score := p.BaseScore * prefs.InterestWeights[p.Category]
		ratio := score / marginal
		if ratio < bestRatio {
			bestRatio, bestIdx = ratio, i
		}
	}

	if bestIdx == -1 {
		return 0, false
	}
	return bestIdx, true
}

func removeAt(route []int, idx int) []int {
	out := make([]int, 0, len(route)-1)
	out = append(out, route[:idx]...)
	out = append(out, route[idx+1:]...)
	return out
}
