package report

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"boxstat/domain/stats/boxplot"
	"boxstat/internal"
	"boxstat/internal/config"
	"boxstat/internal/errors"
	"boxstat/ports"
)

// Writer is a ChartingSurface that prints the numbers behind each box
// instead of drawing it: a five-number summary as text, or the full
// summaries as JSON.
type Writer struct {
	out       io.Writer
	format    string
	precision int
	logger    *internal.Logger
}

var _ ports.ChartingSurface = (*Writer)(nil)

// NewWriter creates a report writer; format is config.FormatText or config.FormatJSON.
func NewWriter(out io.Writer, format string, precision int, logger *internal.Logger) *Writer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Writer{
		out:       out,
		format:    format,
		precision: precision,
		logger:    logger.WithComponent("report"),
	}
}

// Render writes chart in the configured format.
func (w *Writer) Render(ctx context.Context, chart ports.Chart) error {
	if err := ctx.Err(); err != nil {
		return errors.RenderError(w.format+" report", err)
	}

	var err error
	switch w.format {
	case config.FormatJSON:
		err = w.renderJSON(chart)
	case config.FormatText:
		err = w.renderText(chart)
	default:
		return errors.InvalidInput("unsupported report format: " + w.format)
	}
	if err != nil {
		return errors.RenderError(w.format+" report", err)
	}

	w.logger.Debug("rendered %d column(s) for run %s", len(chart.Columns), chart.RunID)
	return nil
}

func (w *Writer) renderText(chart ports.Chart) error {
	bw := bufio.NewWriter(w.out)

	fmt.Fprintln(bw, chart.Title)
	fmt.Fprintln(bw, strings.Repeat("=", len(chart.Title)))
	if chart.YLabel != "" {
		fmt.Fprintf(bw, "Values: %s\n", chart.YLabel)
	}

	for _, col := range chart.Columns {
		fmt.Fprintln(bw)
		if !col.Key.IsEmpty() {
			fmt.Fprintf(bw, "[%s]\n", col.Key)
		}
		if !col.OK() {
			fmt.Fprintf(bw, "error: %s\n", col.ErrorMessage())
			continue
		}
		w.writeSummary(bw, col)
	}

	return bw.Flush()
}

func (w *Writer) writeSummary(bw *bufio.Writer, col boxplot.ColumnSummary) {
	s := col.Summary
	f := func(v float64) string { return fmt.Sprintf("%.*f", w.precision, v) }

	fmt.Fprintf(bw, "Samples: %d", s.Count)
	if col.Missing > 0 {
		fmt.Fprintf(bw, " (%d missing)", col.Missing)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "--- Outliers ---")
	if s.HasOutliers() {
		outliers := make([]string, len(s.Outliers))
		for i, o := range s.Outliers {
			outliers[i] = f(o)
		}
		fmt.Fprintln(bw, strings.Join(outliers, " "))
	} else {
		fmt.Fprintln(bw, "none")
	}

	fmt.Fprintln(bw, "Five Number Summary:")
	for i, v := range s.FiveNumber() {
		fmt.Fprintf(bw, "%s: %s\n", fiveNumberLabels[i], f(v))
	}
	fmt.Fprintf(bw, "IQR: %s  fences: [%s, %s]  mean: %s\n", f(s.IQR), f(s.LowerFence), f(s.UpperFence), f(s.Mean))
}

var fiveNumberLabels = [5]string{"Min", "Q1 ", "Q2 ", "Q3 ", "Max"}

type jsonColumn struct {
	Key     string           `json:"key"`
	Missing int              `json:"missing"`
	Summary *boxplot.Summary `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type jsonChart struct {
	RunID   string       `json:"run_id"`
	Title   string       `json:"title"`
	YLabel  string       `json:"y_label,omitempty"`
	Columns []jsonColumn `json:"columns"`
}

func (w *Writer) renderJSON(chart ports.Chart) error {
	doc := jsonChart{
		RunID:   chart.RunID.String(),
		Title:   chart.Title,
		YLabel:  chart.YLabel,
		Columns: make([]jsonColumn, len(chart.Columns)),
	}
	for i, col := range chart.Columns {
		jc := jsonColumn{Key: col.Key.String(), Missing: col.Missing}
		if col.OK() {
			s := col.Summary
			jc.Summary = &s
		} else {
			jc.Error = col.ErrorMessage()
		}
		doc.Columns[i] = jc
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
