package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracekit/tracekit/pkg/chart"
)

func TestBoxOnlyDistribution(t *testing.T) {
	g := &chart.DistributionGraph{
		Data: chart.DistributionData{Values: []float64{1, 2, 3, 4, 100}},
		Configuration: chart.DistributionConfiguration{
			Style: chart.DistributionStyle{ShowBox: true},
		},
	}
	require.Nil(t, g.Validate())

	fig, err := Build(g)
	require.NoError(t, err)
	require.Len(t, fig.Traces, 1)

	trace := fig.Traces[0]
	require.Equal(t, TraceBox, trace.Kind)
	require.NotNil(t, trace.Box)
	require.Equal(t, []float64{1, 2, 3, 4, 100}, trace.Box.Values)
	require.Equal(t, 1.0, trace.Box.Summary.Minimum)
	require.Equal(t, 3.0, trace.Box.Summary.Median)
	require.Equal(t, 100.0, trace.Box.Summary.Maximum)
	require.Less(t, trace.Box.Summary.Q1, trace.Box.Summary.Median)
	require.Greater(t, trace.Box.Summary.Q3, trace.Box.Summary.Median)
	require.Equal(t, []float64{0}, trace.Xs)
}

func TestDistributionValueBands(t *testing.T) {
	bands := chart.BandsConfig{
		Low:  chart.BandStyle{Offset: fp(2), Color: "gray", IsFilled: true},
		High: chart.BandStyle{Offset: fp(3), Width: fp(1)},
	}

	g := &chart.DistributionGraph{
		Data: chart.DistributionData{Values: []float64{1, 2, 3, 4}},
		Configuration: chart.DistributionConfiguration{
			Style:      chart.DistributionStyle{ShowBox: true},
			ValueBands: bands,
		},
	}
	require.Nil(t, g.Validate())

	fig, err := Build(g)
	require.NoError(t, err)
	require.Len(t, fig.Traces, 3)

	// Band fills draw under the box, band lines on top.
	require.Equal(t, TraceFill, fig.Traces[0].Kind)
	require.Equal(t, TraceBox, fig.Traces[1].Kind)
	require.Equal(t, TraceLine, fig.Traces[2].Kind)

	// The low fill spans the value axis (y) from the data minimum to the
	// offset, across the single category slot.
	fill := fig.Traces[0]
	require.Equal(t, []float64{1, 1, 2, 2}, fill.Ys)
	require.Equal(t, []float64{-0.5, 0.5, 0.5, -0.5}, fill.Xs)

	require.Equal(t, []float64{3, 3}, fig.Traces[2].Ys)
}

func TestDistributionValueBandsHorizontal(t *testing.T) {
	g := &chart.DistributionGraph{
		Data: chart.DistributionData{Values: []float64{1, 2, 3, 4}},
		Configuration: chart.DistributionConfiguration{
			Style:      chart.DistributionStyle{ShowBox: true},
			Horizontal: true,
			ValueBands: chart.BandsConfig{
				Low: chart.BandStyle{Offset: fp(2), Color: "gray", IsFilled: true},
			},
		},
	}
	require.Nil(t, g.Validate())

	fig, err := Build(g)
	require.NoError(t, err)
	require.Len(t, fig.Traces, 2)

	// A horizontal layout puts the value axis along x, so the band
	// becomes a vertical region.
	fill := fig.Traces[0]
	require.Equal(t, TraceFill, fill.Kind)
	require.Equal(t, []float64{1, 2, 2, 1}, fill.Xs)
	require.Equal(t, []float64{-0.5, -0.5, 0.5, 0.5}, fill.Ys)
	require.Equal(t, TraceBox, fig.Traces[1].Kind)
}

func TestDistributionsValueBandsSpanAllSeries(t *testing.T) {
	g := &chart.DistributionsGraph{
		Data: chart.DistributionsData{
			Series: []chart.DistributionData{
				{Values: []float64{1, 2, 3}, Name: "a"},
				{Values: []float64{4, 5, 6}, Name: "b"},
			},
		},
		Configuration: chart.DistributionConfiguration{
			Style: chart.DistributionStyle{ShowBox: true},
			ValueBands: chart.BandsConfig{
				Low: chart.BandStyle{Offset: fp(2), Color: "gray", IsFilled: true},
			},
		},
	}
	require.Nil(t, g.Validate())

	fig, err := Build(g)
	require.NoError(t, err)
	require.Len(t, fig.Traces, 3)

	// The fill comes first and spans the merged value range of every
	// series and both category slots.
	fill := fig.Traces[0]
	require.Equal(t, TraceFill, fill.Kind)
	require.Equal(t, []float64{1, 1, 2, 2}, fill.Ys)
	require.Equal(t, []float64{-0.5, 1.5, 1.5, -0.5}, fill.Xs)

	require.Equal(t, TraceBox, fig.Traces[1].Kind)
	require.Equal(t, TraceBox, fig.Traces[2].Kind)
}

func TestDistributionsHiddenSeriesKeepSlot(t *testing.T) {
	g := &chart.DistributionsGraph{
		Data: chart.DistributionsData{
			Series: []chart.DistributionData{
				{Values: []float64{1, 2, 3}, Name: "a"},
				{Values: []float64{4, 5, 6}, Name: "b"},
				{Values: []float64{7, 8, 9}, Name: "c"},
			},
			Colors: []string{"red", "", "blue"},
		},
		Configuration: chart.DistributionConfiguration{
			Style: chart.DistributionStyle{ShowBox: true},
		},
	}
	require.Nil(t, g.Validate())

	fig, err := Build(g)
	require.NoError(t, err)
	require.Len(t, fig.Traces, 2, "the hidden middle series draws nothing")

	// The hidden series keeps its slot: the third series stays at 2.
	require.Equal(t, []float64{0}, fig.Traces[0].Xs)
	require.Equal(t, []float64{2}, fig.Traces[1].Xs)
	require.Equal(t, "blue", fig.Traces[1].Box.Color)

	require.Equal(t, []float64{0, 2}, fig.Layout.XAxis.TickPositions)
	require.Equal(t, []string{"a", "c"}, fig.Layout.XAxis.TickLabels)
}

func TestViolinDrawsUnderBox(t *testing.T) {
	g := &chart.DistributionGraph{
		Data: chart.DistributionData{Values: []float64{1, 2, 2, 3, 3, 3, 4}},
		Configuration: chart.DistributionConfiguration{
			Style: chart.DistributionStyle{ShowBox: true, ShowViolin: true},
		},
	}
	require.Nil(t, g.Validate())

	fig, err := Build(g)
	require.NoError(t, err)
	require.Len(t, fig.Traces, 2)
	require.Equal(t, TraceFill, fig.Traces[0].Kind)
	require.Equal(t, TraceBox, fig.Traces[1].Kind)
}

func TestDensityOutlineViolin(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4}
	xs, ys := densityOutline(values, 0, true, false)
	require.Len(t, xs, 2*violinSamples)

	widest := 0.0
	for i, x := range xs {
		widest = math.Max(widest, math.Abs(x))
		if i >= violinSamples {
			require.LessOrEqual(t, x, 0.0, "mirrored side sits left of the slot")
		}
	}
	require.InDelta(t, violinHalfWidth, widest, 1e-9,
		"the widest point spans exactly the slot's half-width")

	// The value range is padded by three bandwidths on either side.
	require.Less(t, ys[0], 1.0)
	require.Greater(t, ys[violinSamples-1], 4.0)
}

func TestDensityOutlineCurve(t *testing.T) {
	xs, _ := densityOutline([]float64{1, 2, 3}, 2, false, false)
	require.Len(t, xs, violinSamples)
	for _, x := range xs {
		require.GreaterOrEqual(t, x, 2.0, "a curve keeps to the positive side of its slot")
	}
}

func TestDensityOutlineDegenerateSample(t *testing.T) {
	// All values equal: the Scott bandwidth collapses to zero and the
	// fallback keeps the outline finite.
	xs, ys := densityOutline([]float64{5, 5, 5}, 0, true, false)
	require.Len(t, xs, 2*violinSamples)
	for i, x := range xs {
		require.False(t, math.IsNaN(x) || math.IsInf(x, 0))
		require.False(t, math.IsNaN(ys[i]) || math.IsInf(ys[i], 0))
	}
}

func TestDensityOutlineHorizontal(t *testing.T) {
	xs, ys := densityOutline([]float64{1, 2, 3}, 1, true, true)
	// Horizontal swaps the roles: values run along x, slots along y.
	require.Greater(t, xs[violinSamples-1], 3.0)
	widest := 0.0
	for _, y := range ys {
		widest = math.Max(widest, math.Abs(y-1))
	}
	require.InDelta(t, violinHalfWidth, widest, 1e-9)
}
