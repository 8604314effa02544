// Package stats provides the small set of numeric helpers used by the prep package.
package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}

	return sum / float64(n)
}

// Variance computes the variance of a slice in a single pass.
func Variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	mean := sum / n

	return (sumSq / n) - (mean * mean)
}

// Std computes the standard deviation of a slice.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Median computes the median of a slice.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mode computes the most frequent value of a slice.
// Ties resolve to the value that reached the winning count first.
func Mode(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	counts := make(map[float64]int, len(x))
	best, bestCount := x[0], 0
	for _, v := range x {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}

	return best
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	minVal, maxVal := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < minVal {
			minVal = x[i]
		} else if x[i] > maxVal {
			maxVal = x[i]
		}
	}

	return minVal, maxVal
}
