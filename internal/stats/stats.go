// Package stats provides the small statistical kernel the baseline
// calculator is built on.
package stats

import "slices"

type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Median returns the statistical median of values, or nil for an empty
// input. Odd-length inputs yield the middle element; even-length inputs
// yield the arithmetic mean of the two middle elements. The caller's
// slice is never mutated.
func Median[T Number](values []T) *float64 {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	for i, v := range values {
		sorted[i] = float64(v)
	}
	slices.Sort(sorted)

	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 1 {
		m = sorted[mid]
	} else {
		m = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &m
}
