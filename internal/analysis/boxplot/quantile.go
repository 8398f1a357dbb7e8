package boxplot

import (
	"math"

	"boxstat/domain/core"
)

// Quantile returns the p-th quantile of an ascending slice by linear
// interpolation between order statistics (Hyndman-Fan type 7, the numpy and
// matplotlib default).
func Quantile(sorted []float64, p float64) (float64, error) {
	if len(sorted) == 0 {
		return math.NaN(), core.ErrEmptyInput
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN(), core.NewInvalidQuantileError(p)
	}
	return quantile7(sorted, p), nil
}

// quantile7 assumes a non-empty ascending slice and p in [0, 1].
func quantile7(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return lerp(sorted[lo], sorted[hi], h-float64(lo))
}

// lerp interpolates from the nearer endpoint so rounding never carries the
// result past b, keeping quantiles monotone in p.
func lerp(a, b, t float64) float64 {
	d := b - a
	if t < 0.5 {
		return a + t*d
	}
	return b - (1-t)*d
}
