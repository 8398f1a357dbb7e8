package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"testing"

	"boxstat/domain/core"
	"boxstat/domain/stats/boxplot"
	"boxstat/internal"
	analysisboxplot "boxstat/internal/analysis/boxplot"
	"boxstat/internal/errors"
	"boxstat/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChartingSurface records rendered charts
type MockChartingSurface struct {
	mock.Mock
}

func (m *MockChartingSurface) Render(ctx context.Context, chart ports.Chart) error {
	args := m.Called(ctx, chart)
	return args.Error(0)
}

func newTestService(t *testing.T, surface ports.ChartingSurface) *BoxPlotService {
	t.Helper()
	computer, err := analysisboxplot.NewComputer(analysisboxplot.WithWorkers(2))
	require.NoError(t, err)
	return NewBoxPlotService(computer, surface, internal.NewLoggerTo(io.Discard, internal.LogLevelTrace))
}

func TestSummarizeSampleRendersOneBox(t *testing.T) {
	surface := new(MockChartingSurface)
	surface.On("Render", mock.Anything, mock.MatchedBy(func(c ports.Chart) bool {
		return c.Title == "Box Plot of Sample Data" && len(c.Columns) == 1 && !c.RunID.IsEmpty()
	})).Return(nil).Once()

	svc := newTestService(t, surface)
	result, err := svc.SummarizeSample(context.Background(), "Box Plot of Sample Data",
		[]float64{14, 16, 18, 12, 13, 17, 15, 19, 35, 20})

	require.NoError(t, err)
	surface.AssertExpectations(t)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, "Values", result.Chart.YLabel)
	assert.Equal(t, []float64{35}, result.Chart.Columns[0].Summary.Outliers)
}

func TestSummarizeKeepsGoingPastEmptyColumns(t *testing.T) {
	surface := new(MockChartingSurface)
	surface.On("Render", mock.Anything, mock.Anything).Return(nil).Once()

	svc := newTestService(t, surface)
	result, err := svc.Summarize(context.Background(), SummaryRequest{
		RunID: "run-42",
		Title: "Columns",
		Columns: []boxplot.Column{
			{Key: "a", Values: []float64{1, 2, 3}},
			{Key: "b", Values: []float64{math.NaN()}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, core.RunID("run-42"), result.Chart.RunID)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.ErrorIs(t, result.Chart.Columns[1].Err, core.ErrEmptyInput)
}

func TestSummarizeFailsWhenEveryColumnIsEmpty(t *testing.T) {
	surface := new(MockChartingSurface)
	surface.On("Render", mock.Anything, mock.Anything).Return(nil).Once()

	svc := newTestService(t, surface)
	result, err := svc.SummarizeSample(context.Background(), "empty", nil)

	require.Error(t, err)
	surface.AssertExpectations(t)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
	assert.Equal(t, errors.CodeEmptyInput, errors.GetCode(err))
	assert.Equal(t, 1, result.Failed)
}

func TestSummarizeRenderFailure(t *testing.T) {
	surface := new(MockChartingSurface)
	surface.On("Render", mock.Anything, mock.Anything).
		Return(errors.RenderError("test surface", fmt.Errorf("disk full"))).Once()

	svc := newTestService(t, surface)
	_, err := svc.SummarizeSample(context.Background(), "t", []float64{1, 2})

	require.Error(t, err)
	assert.Equal(t, errors.CodeRenderError, errors.GetCode(err))
}

func TestSummarizeRequiresColumns(t *testing.T) {
	svc := newTestService(t, new(MockChartingSurface))
	_, err := svc.Summarize(context.Background(), SummaryRequest{Title: "nothing"})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
