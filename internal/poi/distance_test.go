package poi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePOIs() []POI {
	return []POI{
		{ID: 0, X: 0, Y: 0, Category: CategoryDepot},
		{ID: 1, X: 3, Y: 4, Category: CategoryHistoryCulture},
		{ID: 2, X: 6, Y: 8, Category: CategoryFoodDrink},
	}
}

func TestBuildMatrix_Symmetric(t *testing.T) {
	m := BuildMatrix(samplePOIs())

	for i := 0; i < m.Len(); i++ {
		for j := 0; j < m.Len(); j++ {
			assert.InDelta(t, m.TravelTime(i, j), m.TravelTime(j, i), 1e-9)
		}
	}
}

func TestBuildMatrix_ZeroDiagonal(t *testing.T) {
	m := BuildMatrix(samplePOIs())

	for i := 0; i < m.Len(); i++ {
		assert.Equal(t, 0.0, m.TravelTime(i, i))
	}
}

func TestBuildMatrix_EuclideanDistance(t *testing.T) {
	m := BuildMatrix(samplePOIs())

	assert.InDelta(t, 5.0, m.TravelTime(0, 1), 1e-9)
	assert.InDelta(t, 10.0, m.TravelTime(0, 2), 1e-9)
	assert.InDelta(t, math.Hypot(3, 4), m.TravelTime(1, 0), 1e-9)
}
