// Package solver implements the hybrid genetic algorithm that turns a
// POI catalog and a caller's preferences into a single feasible,
// interest-maximizing tour anchored at a fixed depot.
package solver

import (
	"math/rand"

	"github.com/routewise/toptw-hga/internal/poi"
)

// Config holds every tunable constant of the evolutionary loop.
type Config struct {
	PopulationSize       int
	ElitismCount         int
	GenerationsMax       int
	StagnationLimit      int
	ImprovementThreshold float64
	MutationRate         float64
	TournamentK          int
	RCLSize              int
}

// DefaultConfig returns the constants used across every solve request.
func DefaultConfig() Config {
	return Config{
		PopulationSize:       50,
		ElitismCount:         2,
		GenerationsMax:       200,
		StagnationLimit:      15,
		ImprovementThreshold: 1e-4,
		MutationRate:         0.3,
		TournamentK:          3,
		RCLSize:              3,
	}
}

// starWeight maps a 1..5 interest star rating to its raw weight, before
// normalization across the five categories.
var starWeight = map[int]float64{1: 0.1, 2: 0.5, 3: 1.0, 4: 1.5, 5: 2.0}

// Preferences is the solver's per-request input: budget, time window, the
// fixed start/end node, and derived interest weights. Time fields are in
// the dataset's native unit (minutes, Solomon convention); any hour-based
// input is converted before reaching the solver.
type Preferences struct {
	Budget          float64
	StartTime       float64
	EndTime         float64
	StartNodeID     int
	InterestStars   map[poi.Category]int
	InterestWeights map[poi.Category]float64
}

// NewPreferences derives interest_weights from the supplied star ratings by
// mapping each star to its raw weight then normalizing so the weights sum
// to the number of categories (mean = 1.0).
func NewPreferences(budget, startTime, endTime float64, startNodeID int, stars map[poi.Category]int) Preferences {
	raw := make(map[poi.Category]float64, len(stars))
	var sum float64
	for cat, star := range stars {
		w := starWeight[star]
		raw[cat] = w
		sum += w
	}

	weights := make(map[poi.Category]float64, len(stars))
	n := float64(len(stars))
	for cat, w := range raw {
		if sum == 0 {
			weights[cat] = 0
			continue
		}
		weights[cat] = w / sum * n
	}

	return Preferences{
		Budget:          budget,
		StartTime:       startTime,
		EndTime:         endTime,
		StartNodeID:     startNodeID,
		InterestStars:   stars,
		InterestWeights: weights,
	}
}

// Context bundles everything an operator needs to evaluate or mutate a
// route: the request's owned catalog copy, the shared distance matrix, and
// the solver's private RNG stream (spec §5 "RNG ownership" — distinct from
// the catalog loader's per-POI stream).
type Context struct {
	Catalog poi.Catalog
	Matrix  *poi.Matrix
	RNG     *rand.Rand
}

// Individual is one candidate tour: a sequence of POI ids beginning and
// ending at the depot, plus its most recently computed fitness terms.
type Individual struct {
	Route      []int
	Fitness    float64
	TotalScore float64
	TotalCost  float64
	TotalTime  float64
	TotalWait  float64
	Evaluated  bool
}

// NewIndividual returns the depot-only tour [depot, depot].
func NewIndividual(depotID int) *Individual {
	return &Individual{Route: []int{depotID, depotID}}
}

// Interior returns the POI ids visited between the opening and closing
// depot, excluding both depot entries.
func (ind *Individual) Interior() []int {
	if len(ind.Route) <= 2 {
		return nil
	}
	return ind.Route[1 : len(ind.Route)-1]
}

// Clone returns a deep copy of the individual with its own route slice.
func (ind *Individual) Clone() *Individual {
	route := make([]int, len(ind.Route))
	copy(route, ind.Route)
	return &Individual{
		Route:      route,
		Fitness:    ind.Fitness,
		TotalScore: ind.TotalScore,
		TotalCost:  ind.TotalCost,
		TotalTime:  ind.TotalTime,
		TotalWait:  ind.TotalWait,
		Evaluated:  ind.Evaluated,
	}
}

// InteriorIDSet returns the interior POI ids as a set, used for
// order-independent duplicate detection between individuals.
func (ind *Individual) InteriorIDSet() map[int]struct{} {
	interior := ind.Interior()
	set := make(map[int]struct{}, len(interior))
	for _, id := range interior {
		set[id] = struct{}{}
	}
	return set
}

// SameInteriorSet reports whether two individuals visit exactly the same
// set of interior POIs, regardless of order.
func SameInteriorSet(a, b *Individual) bool {
	as, bs := a.InteriorIDSet(), b.InteriorIDSet()
	if len(as) != len(bs) {
		return false
	}
	for id := range as {
		if _, ok := bs[id]; !ok {
			return false
		}
	}
	return true
}

// Population is an ordered slice of individuals, typically sorted by
// descending fitness after each generation.
type Population []*Individual

// Best returns the population's highest-fitness individual. Population
// must be non-empty.
func (p Population) Best() *Individual {
	best := p[0]
	for _, ind := range p[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}
