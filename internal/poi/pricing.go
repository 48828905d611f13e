package poi

import "math/rand"

// The benchmark files this solver consumes carry coordinates, a time window
// and a service duration per POI, but no category or entry price — both are
// needed for interest-weighted scoring and budget feasibility (spec §3, §6).
// Rather than require a second input file, each POI is assigned a category
// and a price deterministically from its id, so the same catalog file always
// produces the same augmented catalog regardless of which process loads it.

type categoryWeight struct {
	Category Category
	Weight   float64
}

// categoryDraw is the fixed weighted distribution POIs are drawn from.
// The weights sum to 1.0 and are checked in order, so a POI's category
// only depends on its id and this table, never on iteration order.
var categoryDraw = []categoryWeight{
	{CategoryHistoryCulture, 0.35},
	{CategoryFoodDrink, 0.25},
	{CategoryNatureParks, 0.15},
	{CategoryShopping, 0.15},
	{CategoryEntertainment, 0.10},
}

// Price tiers per category, in the catalog's native currency unit.
const (
	lowTierMin  = 0.0
	lowTierMax  = 50.0
	midTierMin  = 50.0
	midTierMax  = 150.0
	highTierMin = 150.0
	highTierMax = 300.0
)

// AssignCategoryAndPrice derives a POI's category and entry price from its
// id alone. The per-POI RNG stream this draws from is distinct from any
// solver RNG, so augmenting the catalog never perturbs solver randomness.
func AssignCategoryAndPrice(id int) (Category, float64) {
	rng := rand.New(rand.NewSource(int64(id)))

	r := rng.Float64()
	cat := categoryDraw[len(categoryDraw)-1].Category
	var cumulative float64
	for _, cw := range categoryDraw {
		cumulative += cw.Weight
		if r < cumulative {
			cat = cw.Category
			break
		}
	}

	return cat, priceForCategory(cat, rng)
}

func priceForCategory(cat Category, rng *rand.Rand) float64 {
	switch cat {
	case CategoryHistoryCulture, CategoryNatureParks:
		return lowTierMin + rng.Float64()*(lowTierMax-lowTierMin)
	case CategoryFoodDrink, CategoryShopping:
		return midTierMin + rng.Float64()*(midTierMax-midTierMin)
	case CategoryEntertainment:
		return highTierMin + rng.Float64()*(highTierMax-highTierMin)
	default:
		return 0
	}
}
