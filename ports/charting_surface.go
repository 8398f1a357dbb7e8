package ports

import (
	"context"

	"boxstat/domain/core"
	"boxstat/domain/stats/boxplot"
)

// ChartingSurface draws computed box plots. Implementations own everything
// visual (axes, glyphs, output medium); they never recompute statistics.
type ChartingSurface interface {
	Render(ctx context.Context, chart Chart) error
}

// Chart is one titled figure with a box per column.
type Chart struct {
	RunID   core.RunID              `json:"run_id"`
	Title   string                  `json:"title"`
	YLabel  string                  `json:"y_label,omitempty"`
	Columns []boxplot.ColumnSummary `json:"columns"`
}
