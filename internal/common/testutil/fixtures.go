package testutil

import (
	"github.com/routewise/toptw-hga/internal/poi"
	"github.com/routewise/toptw-hga/internal/solver"
)

// NewTestPOI builds a single non-depot POI with sensible defaults; every
// non-zero field in overrides (other than ID and Category) replaces the
// corresponding default, and zero-valued fields are ignored.
func NewTestPOI(id int, category poi.Category, overrides poi.POI) poi.POI {
	p := poi.POI{
		ID:              id,
		Name:            "Test POI",
		X:               float64(id),
		Y:               float64(id),
		BaseScore:       10,
		OpenTime:        0,
		CloseTime:       600,
		ServiceDuration: 30,
		Price:           10,
		Category:        category,
	}
	if overrides.Name != "" {
		p.Name = overrides.Name
	}
	if overrides.X != 0 {
		p.X = overrides.X
	}
	if overrides.Y != 0 {
		p.Y = overrides.Y
	}
	if overrides.BaseScore != 0 {
		p.BaseScore = overrides.BaseScore
	}
	if overrides.OpenTime != 0 {
		p.OpenTime = overrides.OpenTime
	}
	if overrides.CloseTime != 0 {
		p.CloseTime = overrides.CloseTime
	}
	if overrides.ServiceDuration != 0 {
		p.ServiceDuration = overrides.ServiceDuration
	}
	if overrides.Price != 0 {
		p.Price = overrides.Price
	}
	return p
}

// NewTestCatalog builds a catalog with a depot at id 0 and n generated
// non-depot POIs spread along a line, cycling through the five interest
// categories.
func NewTestCatalog(n int) poi.Catalog {
	categories := poi.Categories
	pois := make([]poi.POI, 0, n+1)
	pois = append(pois, poi.POI{ID: 0, Name: "Depot", Category: poi.CategoryDepot, OpenTime: 0, CloseTime: 1000})

	for i := 1; i <= n; i++ {
		cat := categories[(i-1)%len(categories)]
		pois = append(pois, NewTestPOI(i, cat, poi.POI{X: float64(i * 10)}))
	}
	return poi.NewCatalog(pois)
}

// NewTestPreferences builds a Preferences value from the given budget, time
// window and start node. A nil star map defaults to a neutral 3-star
// rating across every category.
func NewTestPreferences(budget, startTime, endTime float64, startNodeID int, stars map[poi.Category]int) solver.Preferences {
	if stars == nil {
		stars = map[poi.Category]int{
			poi.CategoryHistoryCulture: 3,
			poi.CategoryNatureParks:    3,
			poi.CategoryFoodDrink:      3,
			poi.CategoryShopping:       3,
			poi.CategoryEntertainment:  3,
		}
	}
	return solver.NewPreferences(budget, startTime, endTime, startNodeID, stars)
}

// NewTestIndividual builds an Individual directly from a route, useful for
// hand-crafted scenarios (spec §8's S5-style sequencing cases) where the
// constructive heuristics would never produce the exact route under test.
func NewTestIndividual(route []int) *solver.Individual {
	out := make([]int, len(route))
	copy(out, route)
	return &solver.Individual{Route: out}
}
