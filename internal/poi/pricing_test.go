package poi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignCategoryAndPrice_Deterministic(t *testing.T) {
	for id := 1; id <= 50; id++ {
		cat1, price1 := AssignCategoryAndPrice(id)
		cat2, price2 := AssignCategoryAndPrice(id)
		assert.Equal(t, cat1, cat2, "category must be stable across calls for id %d", id)
		assert.Equal(t, price1, price2, "price must be stable across calls for id %d", id)
	}
}

func TestAssignCategoryAndPrice_ValidCategory(t *testing.T) {
	known := map[Category]bool{
		CategoryHistoryCulture: true,
		CategoryNatureParks:    true,
		CategoryFoodDrink:      true,
		CategoryShopping:       true,
		CategoryEntertainment:  true,
	}

	for id := 1; id <= 200; id++ {
		cat, price := AssignCategoryAndPrice(id)
		assert.True(t, known[cat], "unexpected category %q for id %d", cat, id)
		assert.GreaterOrEqual(t, price, 0.0)
	}
}

func TestAssignCategoryAndPrice_CoversAllCategories(t *testing.T) {
	// Different ids are not guaranteed different categories, but across a
	// large sample all five categories should appear given the draw weights.
	seen := map[Category]bool{}
	for id := 1; id <= 500; id++ {
		cat, _ := AssignCategoryAndPrice(id)
		seen[cat] = true
	}
	assert.Len(t, seen, 5)
}
