package app

import (
	"context"
	"time"

	"boxstat/domain/core"
	"boxstat/domain/stats/boxplot"
	"boxstat/internal"
	analysisboxplot "boxstat/internal/analysis/boxplot"
	"boxstat/internal/errors"
	"boxstat/ports"
)

// BoxPlotService computes box plot summaries and hands them to a charting surface
type BoxPlotService struct {
	computer *analysisboxplot.Computer
	surface  ports.ChartingSurface
	logger   *internal.Logger
}

// SummaryRequest defines one figure to compute and render
type SummaryRequest struct {
	RunID   core.RunID // optional, will be generated if empty
	Title   string
	YLabel  string
	Columns []boxplot.Column
}

// SummaryResult contains the computed figure and run bookkeeping
type SummaryResult struct {
	Chart     ports.Chart `json:"chart"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	RuntimeMs int64       `json:"runtime_ms"`
}

// NewBoxPlotService creates a box plot service
func NewBoxPlotService(computer *analysisboxplot.Computer, surface ports.ChartingSurface, logger *internal.Logger) *BoxPlotService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &BoxPlotService{
		computer: computer,
		surface:  surface,
		logger:   logger.WithComponent("boxplot"),
	}
}

// SummarizeSample computes and renders a single unnamed sample
func (s *BoxPlotService) SummarizeSample(ctx context.Context, title string, values []float64) (*SummaryResult, error) {
	return s.Summarize(ctx, SummaryRequest{
		Title:   title,
		YLabel:  "Values",
		Columns: []boxplot.Column{{Values: values}},
	})
}

// Summarize computes every column independently, renders the whole figure
// (failed columns included, so the surface can report them) and returns an
// error only when rendering failed or no column could be summarised.
func (s *BoxPlotService) Summarize(ctx context.Context, req SummaryRequest) (*SummaryResult, error) {
	startTime := time.Now()

	if len(req.Columns) == 0 {
		return nil, errors.InvalidInput("at least one column is required")
	}

	runID := req.RunID
	if runID.IsEmpty() {
		runID = core.NewRunID()
	}

	s.logger.Debug("run %s: summarising %d column(s) with whisker coefficient %g",
		runID, len(req.Columns), s.computer.WhiskerCoef())

	summaries := s.computer.ComputeColumns(ctx, req.Columns)

	result := &SummaryResult{
		Chart: ports.Chart{
			RunID:   runID,
			Title:   req.Title,
			YLabel:  req.YLabel,
			Columns: summaries,
		},
	}
	var firstErr error
	for _, cs := range summaries {
		if cs.OK() {
			result.Succeeded++
			s.logger.Trace("run %s: column %q %s", runID, cs.Key, cs.Summary)
			continue
		}
		result.Failed++
		if firstErr == nil {
			firstErr = cs.Err
		}
		s.logger.Warn("run %s: column %q skipped: %v", runID, cs.Key, cs.Err)
	}

	if err := s.surface.Render(ctx, result.Chart); err != nil {
		return result, errors.Wrapf(err, "run %s: failed to render chart", runID)
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	s.logger.Info("run %s: %d column(s) summarised, %d failed in %dms",
		runID, result.Succeeded, result.Failed, result.RuntimeMs)

	if result.Succeeded == 0 {
		return result, errors.Wrapf(firstErr, "run %s: no column could be summarised", runID)
	}
	return result, nil
}
