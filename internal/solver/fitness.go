package solver

import "github.com/routewise/toptw-hga/internal/poi"

// Penalty coefficients applied to constraint violations, so infeasible
// individuals still carry a gradient toward feasibility instead of being
// discarded outright (spec §4 fitness shaping).
const (
	lateArrivalPenalty = 100.0
	lateReturnPenalty  = 100.0
	budgetPenalty      = 0.5
	waitPenalty        = 0.2
)

// Evaluate simulates ind's route and sets its fitness, total score, total
// cost, total time and total wait in place. Fitness is total interest
// score minus every shaping penalty accrued along the route.
func Evaluate(ind *Individual, ctx *Context, prefs Preferences) {
	sim := Simulate(ind.Route, ctx, prefs)

	var totalScore, penalty, totalWait float64
	for i, id := range ind.Route {
		p, _ := ctx.Catalog.Get(id)
		if p.Category == poi.CategoryDepot {
			continue
		}

		totalScore += p.BaseScore * prefs.InterestWeights[p.Category]

		if sim.Arrivals[i] > p.CloseTime {
			penalty += lateArrivalPenalty * (sim.Arrivals[i] - p.CloseTime)
		}
		if sim.Waits[i] > 0 {
			penalty += waitPenalty * sim.Waits[i]
			totalWait += sim.Waits[i]
		}
	}

	if sim.FinalTime > prefs.EndTime {
		penalty += lateReturnPenalty * (sim.FinalTime - prefs.EndTime)
	}
	if sim.TotalCost > prefs.Budget {
		penalty += budgetPenalty * (sim.TotalCost - prefs.Budget)
	}

	ind.TotalScore = totalScore
	ind.TotalCost = sim.TotalCost
	ind.TotalTime = sim.FinalTime
	ind.TotalWait = totalWait
	ind.Fitness = totalScore - penalty
	ind.Evaluated = true
}

// EvaluateAll evaluates every individual in the population.
func EvaluateAll(pop Population, ctx *Context, prefs Preferences) {
	for _, ind := range pop {
		Evaluate(ind, ctx, prefs)
	}
}
