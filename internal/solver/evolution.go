package solver

import (
	"context"
	"sort"
)

// Run executes the evolutionary loop starting from an already-initialized
// and evaluated population, checking ctx.Done() once per generation for
// cooperative cancellation, and returns the best individual ever seen.
func Run(gctx context.Context, pop Population, sctx *Context, prefs Preferences, cfg Config) *Individual {
	sortByFitnessDesc(pop)
	bestEver := pop.Best().Clone()
	stagnation := 0

	for gen := 0; gen < cfg.GenerationsMax; gen++ {
		select {
		case <-gctx.Done():
			return bestEver
		default:
		}

		next := make(Population, 0, cfg.PopulationSize)
		next = append(next, cloneTop(pop, cfg.ElitismCount)...)

		for len(next) < cfg.PopulationSize {
			p1 := TournamentSelect(pop, sctx, cfg.TournamentK)
			p2 := TournamentSelect(pop, sctx, cfg.TournamentK)

			child := OX1(p1, p2, sctx)
			Mutate(child, sctx, prefs, cfg.MutationRate)
			Repair(child, sctx, prefs)
			Evaluate(child, sctx, prefs)

			if duplicatesAny(child, next) {
				child = buildRandomIndividual(sctx, prefs)
				Evaluate(child, sctx, prefs)
			}

			next = append(next, child)
		}

		sortByFitnessDesc(next)
		pop = next

		best := pop.Best()
		if best.Fitness-bestEver.Fitness > cfg.ImprovementThreshold {
			bestEver = best.Clone()
			stagnation = 0
		} else {
			stagnation++
		}

		if stagnation >= cfg.StagnationLimit {
			break
		}
	}

	return bestEver
}

func sortByFitnessDesc(pop Population) {
	sort.Slice(pop, func(i, j int) bool { return pop[i].Fitness > pop[j].Fitness })
}

func cloneTop(pop Population, n int) Population {
	if n > len(pop) {
		n = len(pop)
	}
	out := make(Population, n)
	for i := 0; i < n; i++ {
		out[i] = pop[i].Clone()
	}
	return out
}

// duplicatesAny reports whether child's interior-ID-set matches that of
// any individual already placed in next (the diversity filter).
func duplicatesAny(child *Individual, next Population) bool {
	for _, ind := range next {
		if SameInteriorSet(child, ind) {
			return true
		}
	}
	return false
}
