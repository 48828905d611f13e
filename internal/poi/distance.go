package poi

import "math"

// Matrix is a symmetric N×N travel-time table, stored as a flattened
// row-major N×N array whose upper-triangle entries are computed once and
// mirrored onto the lower triangle, so it is built once per catalog and then
// looked up in O(1) for the lifetime of the process.
type Matrix struct {
	n    int
	dist []float64
}

// BuildMatrix computes the Euclidean distance between every pair of POIs.
// Travel time and distance are treated as the same unit (spec §2b), so the
// matrix doubles as a travel-time table.
func BuildMatrix(pois []POI) *Matrix {
	n := len(pois)
	m := &Matrix{n: n, dist: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclidean(pois[i], pois[j])
			m.set(i, j, d)
			m.set(j, i, d)
		}
	}
	return m
}

func euclidean(a, b POI) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (m *Matrix) set(i, j int, v float64) {
	m.dist[i*m.n+j] = v
}

// TravelTime returns the precomputed distance between i and j.
func (m *Matrix) TravelTime(i, j int) float64 {
	return m.dist[i*m.n+j]
}

// Len returns the number of POIs the matrix was built over.
func (m *Matrix) Len() int { return m.n }
