package boxplot

import (
	"math"
	"runtime"
	"sort"

	"boxstat/domain/core"
	"boxstat/domain/stats/boxplot"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Computer derives box plot summaries. It holds only immutable settings and
// is safe for concurrent use.
type Computer struct {
	whiskerCoef float64
	workers     int
}

// Option configures a Computer.
type Option func(*Computer)

// WithWhiskerCoef sets the IQR multiplier used for the fences.
func WithWhiskerCoef(k float64) Option {
	return func(c *Computer) { c.whiskerCoef = k }
}

// WithWorkers bounds the number of columns computed at the same time.
func WithWorkers(n int) Option {
	return func(c *Computer) { c.workers = n }
}

// NewComputer creates a computer; the defaults are Tukey's 1.5 fences and one
// worker per CPU.
func NewComputer(opts ...Option) (*Computer, error) {
	c := &Computer{
		whiskerCoef: boxplot.DefaultWhiskerCoef,
		workers:     runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.whiskerCoef <= 0 || math.IsNaN(c.whiskerCoef) || math.IsInf(c.whiskerCoef, 0) {
		return nil, core.NewInvalidWhiskerCoefError(c.whiskerCoef)
	}
	if c.workers < 1 {
		c.workers = 1
	}
	return c, nil
}

var defaultComputer = &Computer{whiskerCoef: boxplot.DefaultWhiskerCoef, workers: 1}

// Compute summarises sample with the default 1.5 whisker coefficient.
func Compute(sample []float64) (boxplot.Summary, error) {
	return defaultComputer.Compute(sample)
}

// WhiskerCoef returns the configured fence multiplier.
func (c *Computer) WhiskerCoef() float64 {
	return c.whiskerCoef
}

// Compute summarises one sample. NaN and ±Inf entries are treated as missing
// and dropped, so every summary field is finite; the caller's slice is never
// reordered.
func (c *Computer) Compute(sample []float64) (boxplot.Summary, error) {
	s := usableSorted(sample)
	if len(s) == 0 {
		return boxplot.Summary{}, core.ErrEmptyInput
	}
	return c.summarise(s, core.ComputeSampleHash(sample)), nil
}

// usableSorted returns an ascending copy of sample without missing entries.
func usableSorted(sample []float64) []float64 {
	s := make([]float64, 0, len(sample))
	for _, v := range sample {
		if !isMissing(v) {
			s = append(s, v)
		}
	}
	sort.Float64s(s)
	return s
}

// isMissing reports whether v cannot be placed on a finite axis.
func isMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func (c *Computer) summarise(s []float64, fingerprint core.SampleHash) boxplot.Summary {
	n := len(s)
	b := boxplot.Summary{
		Count:       n,
		Median:      quantile7(s, 0.5),
		Q1:          quantile7(s, 0.25),
		Q3:          quantile7(s, 0.75),
		WhiskerCoef: c.whiskerCoef,
		Min:         floats.Min(s),
		Max:         floats.Max(s),
		Fingerprint: fingerprint,
	}
	b.IQR = b.Q3 - b.Q1
	b.LowerFence = b.Q1 - c.whiskerCoef*b.IQR
	b.UpperFence = b.Q3 + c.whiskerCoef*b.IQR

	mean, err := stats.Mean(s)
	if err != nil {
		mean = math.NaN()
	}
	b.Mean = mean

	half := boxplot.NotchCoef * b.IQR / math.Sqrt(float64(n))
	b.NotchLow, b.NotchHigh = b.Median-half, b.Median+half

	// Smallest value inside the lower fence; it degenerates to Q1 when that
	// value lies above the box.
	lo := sort.SearchFloat64s(s, b.LowerFence)
	if lo < n && s[lo] <= b.Q1 {
		b.LowerWhisker = s[lo]
	} else {
		b.LowerWhisker = b.Q1
	}

	// Largest value inside the upper fence, or Q3 when it lies below the box.
	hi := sort.Search(n, func(i int) bool { return s[i] > b.UpperFence }) - 1
	if hi >= 0 && s[hi] >= b.Q3 {
		b.UpperWhisker = s[hi]
	} else {
		b.UpperWhisker = b.Q3
	}

	b.Outliers = []float64{}
	for _, v := range s {
		if !b.Contains(v) {
			b.Outliers = append(b.Outliers, v)
		}
	}

	return b
}
