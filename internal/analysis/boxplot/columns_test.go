package boxplot

import (
	"context"
	"fmt"
	"math"
	"testing"

	"boxstat/domain/core"
	"boxstat/domain/stats/boxplot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeColumnsIsolatesEmptyColumns(t *testing.T) {
	computer, err := NewComputer(WithWorkers(2))
	require.NoError(t, err)

	nan := math.NaN()
	columns := []boxplot.Column{
		{Key: "height", Values: referenceSample},
		{Key: "notes", Values: []float64{nan, nan, nan}},
		{Key: "weight", Values: []float64{5, nan, 5, 5, 5}},
		{Key: "empty"},
		{Key: "latency", Values: []float64{math.Inf(1), 3, 1, math.Inf(-1), 2}},
	}

	results := computer.ComputeColumns(context.Background(), columns)
	require.Len(t, results, len(columns))

	for i, col := range columns {
		assert.Equal(t, col.Key, results[i].Key, "results must keep input order")
	}

	assert.True(t, results[0].OK())
	assert.Equal(t, []float64{35}, results[0].Summary.Outliers)

	assert.False(t, results[1].OK())
	assert.ErrorIs(t, results[1].Err, core.ErrEmptyInput)
	assert.Contains(t, results[1].ErrorMessage(), "notes")
	assert.Equal(t, 3, results[1].Missing)

	require.True(t, results[2].OK())
	assert.Equal(t, 1, results[2].Missing)
	assert.Equal(t, 4, results[2].Summary.Count)
	assert.Equal(t, 5.0, results[2].Summary.Median)

	assert.ErrorIs(t, results[3].Err, core.ErrEmptyInput)

	require.True(t, results[4].OK())
	assert.Equal(t, 2, results[4].Missing)
	assert.Equal(t, 3, results[4].Summary.Count)
	assert.Equal(t, [5]float64{1, 1.5, 2, 2.5, 3}, results[4].Summary.FiveNumber())
}

func TestComputeColumnsMatchesSequentialCompute(t *testing.T) {
	computer, err := NewComputer(WithWorkers(4))
	require.NoError(t, err)

	columns := make([]boxplot.Column, 32)
	for i := range columns {
		values := make([]float64, 10+i)
		for j := range values {
			values[j] = float64((j*7+i)%13) + float64(i)
		}
		columns[i] = boxplot.Column{Key: core.ColumnKey(fmt.Sprintf("c%02d", i)), Values: values}
	}

	results := computer.ComputeColumns(context.Background(), columns)
	for i, col := range columns {
		want, err := computer.Compute(col.Values)
		require.NoError(t, err)
		assert.Equal(t, want, results[i].Summary, "column %s", col.Key)
	}
}

func TestComputeColumnsCancelled(t *testing.T) {
	computer, err := NewComputer(WithWorkers(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := computer.ComputeColumns(ctx, []boxplot.Column{
		{Key: "a", Values: []float64{1, 2, 3}},
		{Key: "b", Values: []float64{4, 5, 6}},
	})
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
