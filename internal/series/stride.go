// Package series drives the per-step rigid-body calculators over a time
// series and implements the stride sampling every derived series shares.
package series

import "errors"

// DefaultMaxPoints caps the number of points kept for plotting.
const DefaultMaxPoints = 5000

// ErrStride indicates a sampling stride below 1.
var ErrStride = errors.New("series: stride must be >= 1")

// Stride returns the sampling interval that keeps about maxPoints of total
// samples: max(1, total/maxPoints).
func Stride(total, maxPoints int) int {
	if maxPoints <= 0 {
		return 1
	}
	k := total / maxPoints
	if k < 1 {
		k = 1
	}
	return k
}

// Count is the number of samples kept from n at stride k: floor(n/k).
func Count(n, k int) int {
	if k < 1 {
		return 0
	}
	return n / k
}

// Indices returns the sampled indices 0, k, 2k, ... of a length-n series.
func Indices(n, k int) []int {
	idx := make([]int, Count(n, k))
	for i := range idx {
		idx[i] = i * k
	}
	return idx
}

// Pick samples xs at stride k.
func Pick[T any](xs []T, k int) []T {
	out := make([]T, Count(len(xs), k))
	for i := range out {
		out[i] = xs[i*k]
	}
	return out
}
