package boxplot

import (
	"fmt"
	"strings"

	"boxstat/domain/core"
)

// DefaultWhiskerCoef is the fence multiplier applied to the IQR (Tukey's 1.5).
const DefaultWhiskerCoef = 1.5

// NotchCoef scales IQR/sqrt(n) into the half-width of the median confidence interval.
const NotchCoef = 1.57

// Summary is the box-and-whisker geometry of one sample.
// It is derived once and never mutated; Outliers is owned by the summary.
type Summary struct {
	Count int `json:"count"`

	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	IQR    float64 `json:"iqr"`

	WhiskerCoef  float64 `json:"whisker_coef"`
	LowerFence   float64 `json:"lower_fence"`
	UpperFence   float64 `json:"upper_fence"`
	LowerWhisker float64 `json:"lower_whisker"`
	UpperWhisker float64 `json:"upper_whisker"`

	// Outliers are sorted ascending.
	Outliers []float64 `json:"outliers"`

	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Mean      float64 `json:"mean"`
	NotchLow  float64 `json:"notch_low"`
	NotchHigh float64 `json:"notch_high"`

	Fingerprint core.SampleHash `json:"fingerprint"`
}

// FiveNumber returns the values drawn as the glyph: lower whisker, Q1, median, Q3, upper whisker.
func (s Summary) FiveNumber() [5]float64 {
	return [5]float64{s.LowerWhisker, s.Q1, s.Median, s.Q3, s.UpperWhisker}
}

// HasOutliers reports whether any value is plotted individually.
func (s Summary) HasOutliers() bool {
	return len(s.Outliers) > 0
}

// Contains reports whether v is drawn inside the whiskers.
func (s Summary) Contains(v float64) bool {
	return v >= s.LowerWhisker && v <= s.UpperWhisker
}

// String is a compact one-line rendering used in logs.
func (s Summary) String() string {
	outliers := make([]string, len(s.Outliers))
	for i, o := range s.Outliers {
		outliers[i] = fmt.Sprintf("%g", o)
	}
	return fmt.Sprintf("n=%d whiskers=[%g, %g] box=[%g, %g, %g] outliers=[%s] sample=%s",
		s.Count, s.LowerWhisker, s.UpperWhisker, s.Q1, s.Median, s.Q3, strings.Join(outliers, " "), s.Fingerprint.Short())
}

// Column is one named group of values. NaN marks a missing entry.
type Column struct {
	Key    core.ColumnKey `json:"key"`
	Values []float64      `json:"values"`
}

// ColumnSummary is the per-column outcome. Exactly one of Summary and Err is meaningful.
type ColumnSummary struct {
	Key     core.ColumnKey `json:"key"`
	Missing int            `json:"missing"`
	Summary Summary        `json:"summary"`
	Err     error          `json:"-"`
}

// OK reports whether the column produced a summary.
func (c ColumnSummary) OK() bool {
	return c.Err == nil
}

// ErrorMessage renders Err for reports.
func (c ColumnSummary) ErrorMessage() string {
	if c.Err == nil {
		return ""
	}
	return c.Err.Error()
}
