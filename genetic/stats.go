package genetic

import (
	"math"
)

// --- Statistical helpers for generation records and reporting ---

// Mean calculates the average of a slice of float64 values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Stdev calculates the sample standard deviation of a slice of float64
// values. It is undefined for fewer than 2 values and returns 0.
func Stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	// Use sample standard deviation (divide by n-1)
	return math.Sqrt(variance / float64(len(values)-1))
}

// intsToFloats converts a slice of ints for use with the float helpers.
func intsToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
