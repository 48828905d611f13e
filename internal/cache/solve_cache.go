// Package cache memoizes solved itineraries: the hybrid genetic algorithm
// is randomized and not cheap, and two callers submitting the same
// preferences against the same catalog version within a short window are
// common (e.g. a user re-opening the same trip in two tabs).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/routewise/toptw-hga/internal/common/cache"
	"github.com/routewise/toptw-hga/internal/poi"
	"github.com/routewise/toptw-hga/internal/solver"
)

// SolveCache memoizes a solved route for an identical (catalog-version,
// preferences) pair for cache.SolveResultExpiration.
type SolveCache struct {
	redis *cache.RedisCache
}

// NewSolveCache wraps an existing Redis cache client.
func NewSolveCache(redis *cache.RedisCache) *SolveCache {
	return &SolveCache{redis: redis}
}

// Entry is the cached shape of a solved route, independent of any HTTP
// response formatting.
type Entry struct {
	Route      []int   `json:"route"`
	Fitness    float64 `json:"fitness"`
	TotalScore float64 `json:"total_score"`
	TotalCost  float64 `json:"total_cost"`
	TotalTime  float64 `json:"total_time"`
}

// Get looks up a previously solved route for this catalog version and
// preferences hash. A cache miss is reported via cache.ErrCacheMiss.
func (s *SolveCache) Get(ctx context.Context, catalogVersion string, prefs solver.Preferences) (Entry, error) {
	key := s.redis.SolveResultKey(catalogVersion, HashPreferences(prefs))

	var entry Entry
	err := s.redis.Get(ctx, key, &entry)
	return entry, err
}

// Put stores a solved route, keyed by catalog version and preferences
// hash, for cache.SolveResultExpiration.
func (s *SolveCache) Put(ctx context.Context, catalogVersion string, prefs solver.Preferences, result *solver.Result) error {
	entry := Entry{
		Route:      result.Best.Route,
		Fitness:    result.Best.Fitness,
		TotalScore: result.Best.TotalScore,
		TotalCost:  result.Best.TotalCost,
		TotalTime:  result.Best.TotalTime,
	}

	key := s.redis.SolveResultKey(catalogVersion, HashPreferences(prefs))
	return s.redis.Set(ctx, key, entry, cache.SolveResultExpiration)
}

// HashPreferences derives a stable cache-key fragment from a preferences
// value: field order in a map is nondeterministic, so categories are
// sorted before hashing.
func HashPreferences(prefs solver.Preferences) string {
	type stableStar struct {
		Category poi.Category `json:"category"`
		Star     int          `json:"star"`
	}
	stars := make([]stableStar, 0, len(prefs.InterestStars))
	for cat, star := range prefs.InterestStars {
		stars = append(stars, stableStar{Category: cat, Star: star})
	}
	sort.Slice(stars, func(i, j int) bool { return stars[i].Category < stars[j].Category })

	payload, _ := json.Marshal(struct {
		Budget      float64      `json:"budget"`
		StartTime   float64      `json:"start_time"`
		EndTime     float64      `json:"end_time"`
		StartNodeID int          `json:"start_node_id"`
		Stars       []stableStar `json:"stars"`
	}{prefs.Budget, prefs.StartTime, prefs.EndTime, prefs.StartNodeID, stars})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// CatalogVersion derives a stable version tag for a catalog, used to
// invalidate cached results whenever the on-disk dataset changes.
func CatalogVersion(catalog poi.Catalog) string {
	payload, _ := json.Marshal(catalog.All())
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("n%d-%s", catalog.Len(), hex.EncodeToString(sum[:8]))
}
