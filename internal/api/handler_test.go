package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/routewise/toptw-hga/internal/api"
	"github.com/routewise/toptw-hga/internal/common/testutil"
	"github.com/routewise/toptw-hga/internal/poi"
)

func TestHandler_Solve_ReturnsItinerary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog := testutil.NewTestCatalog(4)
	matrix := poi.BuildMatrix(catalog.All())
	handler := api.NewHandler(catalog, matrix, nil)

	r := gin.New()
	r.POST("/api/v1/itineraries", handler.Solve)

	body := strings.NewReader(`{
		"budget": 1000,
		"start_time": 0,
		"end_time": 10,
		"start_node_id": 0,
		"interests": {
			"history_culture": 5,
			"nature_parks": 3,
			"food_drink": 4,
			"shopping": 2,
			"entertainment": 1
		}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Greater(t, len(resp.Items), 2)
	require.Equal(t, 0, resp.Items[0].POIID)
	require.Equal(t, 0, resp.Items[len(resp.Items)-1].POIID)
}

func TestHandler_Solve_RejectsUnknownStartNode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog := testutil.NewTestCatalog(2)
	matrix := poi.BuildMatrix(catalog.All())
	handler := api.NewHandler(catalog, matrix, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": c.Errors.Last().Err.Error()})
		}
	})
	r.POST("/api/v1/itineraries", handler.Solve)

	body := strings.NewReader(`{
		"budget": 1000,
		"start_time": 8,
		"end_time": 18,
		"start_node_id": 999,
		"interests": {
			"history_culture": 5,
			"nature_parks": 3,
			"food_drink": 4,
			"shopping": 2,
			"entertainment": 1
		}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.NotEqual(t, http.StatusOK, rec.Code)
}
