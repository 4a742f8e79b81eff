package vector

// SquaredDistance returns the squared Euclidean distance between a and b.
// Callers guarantee equal lengths; Index.Search checks dimensionality before
// any comparison is made.
func SquaredDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// Similarity maps a squared distance to a score in (0, 1]: 1/(1+distance).
// Identical vectors score 1.0 and the score decays as distance grows, which
// keeps "higher is better" semantics for display alongside the raw distance.
func Similarity(distance float64) float64 {
	return 1 / (1 + distance)
}
