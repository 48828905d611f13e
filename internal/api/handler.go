package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	itinerarycache "github.com/routewise/toptw-hga/internal/cache"
	commonmw "github.com/routewise/toptw-hga/internal/common/middleware"
	"github.com/routewise/toptw-hga/internal/common/validators"
	"github.com/routewise/toptw-hga/internal/poi"
	"github.com/routewise/toptw-hga/internal/solver"
	pkgerrors "github.com/routewise/toptw-hga/pkg/errors"
)

// Handler wires the HTTP facade to the POI catalog, distance matrix,
// solver, and the optional solve-result cache.
type Handler struct {
	catalog   poi.Catalog
	matrix    *poi.Matrix
	validator *validators.Validator
	cache     *itinerarycache.SolveCache
}

// NewHandler builds a Handler over an already-loaded catalog and matrix.
// cache may be nil, in which case every request is solved fresh.
func NewHandler(catalog poi.Catalog, matrix *poi.Matrix, cache *itinerarycache.SolveCache) *Handler {
	return &Handler{
		catalog:   catalog,
		matrix:    matrix,
		validator: validators.NewValidator(),
		cache:     cache,
	}
}

// CatalogVersion reports the cache-busting version tag of the POI
// catalog this handler was built over, so callers can surface it (e.g.
// as a response header) without reaching into cache internals.
func (h *Handler) CatalogVersion() string {
	return itinerarycache.CatalogVersion(h.catalog)
}

// Solve handles POST /api/v1/itineraries: it validates the request,
// checks the solve-result cache, runs the solver on a cache miss, and
// formats the best individual into a SolveResponse.
func (h *Handler) Solve(c *gin.Context) {
	start := time.Now()

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		commonmw.AbortWithError(c, pkgerrors.NewInvalidInputError(err.Error()))
		return
	}
	req.Interests = h.validator.SanitizeInterestKeys(req.Interests)

	input := validators.SolveRequestInput{
		Budget:      req.Budget,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		StartNodeID: req.StartNodeID,
		Interests:   req.Interests,
	}
	if err := h.validator.ValidateSolveRequest(input); err != nil {
		commonmw.AbortWithError(c, pkgerrors.NewInvalidInputError(err.Error()))
		return
	}

	stars := make(map[poi.Category]int, len(req.Interests))
	for cat, star := range req.Interests {
		stars[poi.Category(cat)] = star
	}

	prefs := solver.NewPreferences(
		req.Budget,
		HoursToMinutes(req.StartTime),
		HoursToMinutes(req.EndTime),
		req.StartNodeID,
		stars,
	)

	requestCatalog := h.catalog.Clone()

	if h.cache != nil {
		catalogVersion := itinerarycache.CatalogVersion(h.catalog)
		if entry, err := h.cache.Get(c.Request.Context(), catalogVersion, prefs); err == nil {
			c.JSON(200, cachedEntryToResponse(requestCatalog, h.matrix, prefs, entry, time.Since(start)))
			return
		}
	}

	result, err := solver.Solve(c.Request.Context(), requestCatalog, h.matrix, prefs)
	if err != nil {
		var unknownStart solver.ErrUnknownStartNode
		if errors.As(err, &unknownStart) {
			commonmw.AbortWithError(c, pkgerrors.NewUnknownStartNodeError(unknownStart.StartNodeID))
			return
		}
		commonmw.AbortWithError(c, pkgerrors.NewInternalFaultError(err))
		return
	}

	if len(result.Best.Interior()) == 0 {
		commonmw.AbortWithError(c, pkgerrors.NewNoFeasibleRouteError())
		return
	}

	if h.cache != nil {
		catalogVersion := itinerarycache.CatalogVersion(h.catalog)
		_ = h.cache.Put(c.Request.Context(), catalogVersion, prefs, result)
	}

	c.JSON(200, BuildResponse(requestCatalog, h.matrix, prefs, result, time.Since(start)))
}

// cachedEntryToResponse rebuilds a SolveResponse from a cached route
// without re-running the solver.
func cachedEntryToResponse(catalog poi.Catalog, matrix *poi.Matrix, prefs solver.Preferences, entry itinerarycache.Entry, elapsed time.Duration) SolveResponse {
	ind := &solver.Individual{
		Route:      entry.Route,
		Fitness:    entry.Fitness,
		TotalScore: entry.TotalScore,
		TotalCost:  entry.TotalCost,
		TotalTime:  entry.TotalTime,
		Evaluated:  true,
	}
	result := &solver.Result{Best: ind}
	return BuildResponse(catalog, matrix, prefs, result, elapsed)
}
