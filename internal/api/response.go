package api

import (
	"fmt"
	"math"
	"time"

	"github.com/routewise/toptw-hga/internal/poi"
	"github.com/routewise/toptw-hga/internal/solver"
)

// ItineraryItem is one stop in the solved route, with every timing field
// formatted back into "HH:MM" for display. The first and last items are
// always the start/end node.
type ItineraryItem struct {
	Order    int     `json:"order"`
	POIID    int     `json:"poi_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Arrival  string  `json:"arrival"`
	Start    string  `json:"start"`
	Leave    string  `json:"leave"`
	WaitMin  int     `json:"wait_minutes"`
	Cost     float64 `json:"cost"`
	Score    float64 `json:"score"`
}

// SolveResponse is the full itinerary response shape: aggregate figures
// plus the ordered list of stops.
type SolveResponse struct {
	TotalScore      float64         `json:"total_score"`
	TotalCost       float64         `json:"total_cost"`
	TotalDurationHr float64         `json:"total_duration_hours"`
	Items           []ItineraryItem `json:"items"`
	ExecutionTimeS  float64         `json:"execution_time_seconds"`
}

// BuildResponse re-simulates the solved route to recover its per-stop
// timing report, then converts every dataset-native-minute field back to
// the response's "HH:MM"/hours convention.
func BuildResponse(catalog poi.Catalog, matrix *poi.Matrix, prefs solver.Preferences, result *solver.Result, elapsed time.Duration) SolveResponse {
	sctx := &solver.Context{Catalog: catalog, Matrix: matrix}
	sim := solver.Simulate(result.Best.Route, sctx, prefs)

	items := make([]ItineraryItem, len(result.Best.Route))
	for i, id := range result.Best.Route {
		p, _ := catalog.Get(id)
		score := 0.0
		if !p.IsDepot() {
			score = p.BaseScore * prefs.InterestWeights[p.Category]
		}
		items[i] = ItineraryItem{
			Order:    i,
			POIID:    id,
			Name:     p.Name,
			Category: string(p.Category),
			Arrival:  minutesToHHMM(sim.Arrivals[i]),
			Start:    minutesToHHMM(sim.Starts[i]),
			Leave:    minutesToHHMM(sim.Leaves[i]),
			WaitMin:  int(math.Round(sim.Waits[i])),
			Cost:     p.Price,
			Score:    score,
		}
	}

	return SolveResponse{
		TotalScore:      result.Best.TotalScore,
		TotalCost:       result.Best.TotalCost,
		TotalDurationHr: (result.Best.TotalTime - prefs.StartTime) / 60,
		Items:           items,
		ExecutionTimeS:  elapsed.Seconds(),
	}
}

// minutesToHHMM formats a dataset-native-minutes timestamp as "HH:MM".
func minutesToHHMM(minutes float64) string {
	total := int(math.Round(minutes))
	h := (total / 60) % 24
	m := total % 60
	if m < 0 {
		m += 60
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// HoursToMinutes converts a user-facing hour value to the dataset's
// native minute unit (Solomon convention).
func HoursToMinutes(hours float64) float64 { return hours * 60 }
