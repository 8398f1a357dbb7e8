package boxplot

import (
	"math"
	"testing"

	"boxstat/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{name: "minimum", p: 0, expected: 1},
		{name: "first quartile interpolates", p: 0.25, expected: 1.75},
		{name: "median of even sample", p: 0.5, expected: 2.5},
		{name: "third quartile interpolates", p: 0.75, expected: 3.25},
		{name: "maximum", p: 1, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantile(sorted, tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestQuantileRejectsBadInput(t *testing.T) {
	_, err := Quantile(nil, 0.5)
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := Quantile([]float64{1}, p)
		assert.ErrorIs(t, err, core.ErrInvalidQuantile, "p=%v", p)
	}
}
