package solver

// SimResult is a forward simulation of a route: per-stop arrival, wait,
// start and departure times, plus the accumulated cost and the time the
// tour returns to the depot. Simulate always runs to completion, even once
// a stop is found infeasible, so every index in the report is populated —
// IsFeasible is the short-circuiting variant used by hot paths that only
// need a yes/no answer.
type SimResult struct {
	Feasible  bool
	Arrivals  []float64
	Waits     []float64
	Starts    []float64
	Leaves    []float64
	TotalCost float64
	FinalTime float64
}

// Simulate walks route from the depot, computing arrival/wait/start/leave
// times at every stop. A late arrival (past a POI's close_time) is not
// clamped and does not stop the simulation — it is left as-is so fitness
// can penalize the exact overage; only an early arrival is clamped forward
// to the POI's open_time (the wait).
func Simulate(route []int, ctx *Context, prefs Preferences) SimResult {
	n := len(route)
	res := SimResult{
		Feasible: true,
		Arrivals: make([]float64, n),
		Waits:    make([]float64, n),
		Starts:   make([]float64, n),
		Leaves:   make([]float64, n),
	}

	currentTime := prefs.StartTime
	res.Starts[0] = currentTime
	res.Leaves[0] = currentTime

	var cost float64
	for i := 1; i < n; i++ {
		prevID, curID := route[i-1], route[i]
		travel := ctx.Matrix.TravelTime(prevID, curID)
		arrival := currentTime + travel

		cur, _ := ctx.Catalog.Get(curID)

		wait := 0.0
		if arrival < cur.OpenTime {
			wait = cur.OpenTime - arrival
			arrival = cur.OpenTime
		}
		if arrival > cur.CloseTime {
			res.Feasible = false
		}

		departure := arrival + cur.ServiceDuration
		cost += cur.Price

		res.Arrivals[i] = arrival
		res.Waits[i] = wait
		res.Starts[i] = arrival
		res.Leaves[i] = departure

		currentTime = departure
	}

	res.TotalCost = cost
	res.FinalTime = currentTime
	if cost > prefs.Budget || currentTime > prefs.EndTime {
		res.Feasible = false
	}
	return res
}

// IsFeasible is a short-circuiting feasibility check: it returns false at
// the first time-window, budget, or final-duration violation instead of
// simulating the whole route. Used by insertion and repair, which only
// need a yes/no answer and run many times per generation.
func IsFeasible(route []int, ctx *Context, prefs Preferences) bool {
	currentTime := prefs.StartTime
	var cost float64

	for i := 1; i < len(route); i++ {
		prevID, curID := route[i-1], route[i]
		travel := ctx.Matrix.TravelTime(prevID, curID)
		arrival := currentTime + travel

		cur, _ := ctx.Catalog.Get(curID)
		if arrival < cur.OpenTime {
			arrival = cur.OpenTime
		}
		if arrival > cur.CloseTime {
			return false
		}

		cost += cur.Price
		if cost > prefs.Budget {
			return false
		}

		currentTime = arrival + cur.ServiceDuration
	}

	return currentTime <= prefs.EndTime
}

// TryInsert reports whether candidateID can be appended immediately before
// the closing depot without breaking feasibility.
func TryInsert(route []int, candidateID int, ctx *Context, prefs Preferences) bool {
	trial := make([]int, len(route)+1)
	copy(trial, route[:len(route)-1])
	trial[len(route)-1] = candidateID
	trial[len(route)] = route[len(route)-1]
	return IsFeasible(trial, ctx, prefs)
}

// InsertAt reports whether candidateID can be inserted at position pos
// (0 < pos < len(route), strictly between the two depot sentinels)
// without breaking feasibility, and returns the resulting route.
func InsertAt(route []int, pos, candidateID int, ctx *Context, prefs Preferences) ([]int, bool) {
	trial := make([]int, 0, len(route)+1)
	trial = append(trial, route[:pos]...)
	trial = append(trial, candidateID)
	trial = append(trial, route[pos:]...)
	return trial, IsFeasible(trial, ctx, prefs)
}
