package boxplot

import (
	"context"

	"boxstat/domain/core"
	"boxstat/domain/stats/boxplot"

	"golang.org/x/sync/errgroup"
)

// ComputeColumn summarises one named group. Missing (NaN or ±Inf) values are
// counted and excluded; a column left with nothing fails on its own.
func (c *Computer) ComputeColumn(col boxplot.Column) boxplot.ColumnSummary {
	result := boxplot.ColumnSummary{Key: col.Key}
	s := usableSorted(col.Values)
	result.Missing = len(col.Values) - len(s)
	if len(s) == 0 {
		result.Err = core.NewEmptyInputError(col.Key)
		return result
	}
	result.Summary = c.summarise(s, core.ComputeSampleHash(col.Values))
	return result
}

// ComputeColumns summarises every column independently, at most c.workers at
// a time. Results keep the input order. A failing column never aborts the
// others; columns not started before ctx is done carry ctx's error.
func (c *Computer) ComputeColumns(ctx context.Context, columns []boxplot.Column) []boxplot.ColumnSummary {
	results := make([]boxplot.ColumnSummary, len(columns))

	g := new(errgroup.Group)
	g.SetLimit(c.workers)
	for i, col := range columns {
		if err := ctx.Err(); err != nil {
			results[i] = boxplot.ColumnSummary{Key: col.Key, Err: err}
			continue
		}
		i, col := i, col
		g.Go(func() error {
			results[i] = c.ComputeColumn(col)
			return nil
		})
	}
	// Workers never return an error; per-column failures live in results.
	_ = g.Wait()

	return results
}
