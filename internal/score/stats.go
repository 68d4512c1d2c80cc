// Package score implements the deterministic 7-day gut score engine:
// per-day aggregation, signal extraction, windowed statistics, the weighted
// score composer and the sleep diagnostic hints. Everything here is a pure
// function; same window in, same score out.
package score

import "math"

// Mean returns the arithmetic mean, 0 for an empty sequence.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation (divide by N), 0 for
// sequences shorter than 2. Golden reproducibility depends on exactly this
// formula.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
