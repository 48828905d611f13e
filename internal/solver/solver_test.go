package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/routewise/toptw-hga/internal/poi"
)

func TestSolve_DepotOnlyCatalog(t *testing.T) {
	catalog := poi.NewCatalog([]poi.POI{
		{ID: 0, Category: poi.CategoryDepot, OpenTime: 0, CloseTime: 1000},
	})
	matrix := poi.BuildMatrix(catalog.All())
	prefs := testPrefs()

	result, err := Solve(context.Background(), catalog, matrix, prefs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, result.Best.Route)
	assert.Equal(t, 0.0, result.Best.Fitness)
}

func TestSolve_UnknownStartNode(t *testing.T) {
	catalog := testCatalog()
	matrix := poi.BuildMatrix(catalog.All())
	prefs := testPrefs()
	prefs.StartNodeID = 999

	_, err := Solve(context.Background(), catalog, matrix, prefs)
	assert.Error(t, err)

	var unknownErr ErrUnknownStartNode
	assert.ErrorAs(t, err, &unknownErr)
}

func TestSolve_ReturnsFeasibleRoute(t *testing.T) {
	catalog := testCatalog()
	matrix := poi.BuildMatrix(catalog.All())
	prefs := testPrefs()

	result, err := Solve(context.Background(), catalog, matrix, prefs)
	require.NoError(t, err)

	sctx := &Context{Catalog: catalog, Matrix: matrix}
	assert.True(t, IsFeasible(result.Best.Route, sctx, prefs))
}
