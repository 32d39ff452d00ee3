package render

import (
	"testing"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/chart/color"
)

func fp(v float64) *float64 { return &v }

func categoricalAB() *color.Palette {
	return color.Categorical([]color.Entry{
		{Label: "A", Color: "red"},
		{Label: "B", Color: ""},
	})
}

func TestBuildDispatchesEveryKind(t *testing.T) {
	graphs := []chart.Graph{
		&chart.PointsGraph{Data: chart.PointsData{Xs: []float64{1}, Ys: []float64{2}}},
		&chart.GridGraph{Data: chart.GridData{Xs: []float64{1}, Ys: []float64{2}}},
		&chart.LineGraph{Data: chart.LineData{Xs: []float64{0, 1}, Ys: []float64{1, 2}}},
		&chart.LinesGraph{Data: chart.LinesData{Series: []chart.LineData{{Xs: []float64{0}, Ys: []float64{1}}}}},
		&chart.CdfGraph{Data: chart.CdfData{Values: []float64{1, 2}}},
		&chart.CdfsGraph{Data: chart.CdfsData{Series: []chart.CdfData{{Values: []float64{1}}}}},
		&chart.BarGraph{Data: chart.BarData{Values: []float64{1}}},
		&chart.BarsGraph{Data: chart.BarsData{Series: []chart.BarData{{Values: []float64{1}}}}},
		&chart.DistributionGraph{
			Data:          chart.DistributionData{Values: []float64{1, 2}},
			Configuration: chart.DistributionConfiguration{Style: chart.DistributionStyle{ShowBox: true}},
		},
		&chart.DistributionsGraph{
			Data:          chart.DistributionsData{Series: []chart.DistributionData{{Values: []float64{1}}}},
			Configuration: chart.DistributionConfiguration{Style: chart.DistributionStyle{ShowBox: true}},
		},
	}

	for _, g := range graphs {
		fig, err := Build(g)
		if err != nil {
			t.Fatalf("Build(%s): %v", g.Kind(), err)
		}
		if fig == nil {
			t.Fatalf("Build(%s): nil figure", g.Kind())
		}
	}
}

func TestBuildPanicsOnInvalidGraph(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("rendering an invalid graph must panic")
		}
	}()
	g := &chart.PointsGraph{Data: chart.PointsData{Xs: []float64{1}, Ys: []float64{1, 2}}}
	Build(g) //nolint:errcheck // the call must not return
}

// TestCategoricalSplitSkipsEmptyColor is the masked-split contract: the
// category with an empty palette color produces no trace at all, and the
// other category's trace holds exactly its own points.
func TestCategoricalSplitSkipsEmptyColor(t *testing.T) {
	g := &chart.PointsGraph{
		Data: chart.PointsData{
			Xs:     []float64{0, 1, 2},
			Ys:     []float64{10, 11, 12},
			Colors: []color.Value{color.Named("A"), color.Named("B"), color.Named("A")},
		},
		Configuration: chart.PointsConfiguration{
			Style: chart.PointsStyle{Palette: categoricalAB()},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(fig.Traces) != 1 {
		t.Fatalf("got %d traces, want 1 (category B is hidden)", len(fig.Traces))
	}

	trace := fig.Traces[0]
	if trace.Name != "A" || !trace.Legend {
		t.Errorf("trace should be named after its category, got %q", trace.Name)
	}
	if len(trace.Xs) != 2 || trace.Xs[0] != 0 || trace.Xs[1] != 2 {
		t.Errorf("trace should hold exactly category A's points, got xs %v", trace.Xs)
	}
	if trace.Marker.Color != "red" {
		t.Errorf("trace color = %q, want the palette entry's color", trace.Marker.Color)
	}
}

// TestMaskCompleteness asserts the mask property: the per-category masks
// partition the visible points exactly, with no overlap and no leftovers.
func TestMaskCompleteness(t *testing.T) {
	colors := []color.Value{
		color.Named("A"), color.Named("B"), color.Named("A"),
		color.Empty(), color.Named("B"),
	}
	sizes := []float64{1, 1, 0, 1, 2}
	palette := color.Categorical([]color.Entry{
		{Label: "A", Color: "red"},
		{Label: "B", Color: "blue"},
	})

	vis := visibleMask(len(colors), colors, sizes)
	covered := make(mask, len(colors))
	for _, cat := range splitCategories(colors, vis, palette) {
		for i, selected := range cat.m {
			if !selected {
				continue
			}
			if covered[i] {
				t.Fatalf("point %d selected by two categories", i)
			}
			covered[i] = true
		}
	}
	for i := range colors {
		if covered[i] != vis[i] {
			t.Errorf("point %d: covered=%v visible=%v", i, covered[i], vis[i])
		}
	}
}

func TestTraceOrdering(t *testing.T) {
	g := &chart.PointsGraph{
		Data: chart.PointsData{Xs: []float64{0, 10}, Ys: []float64{0, 10}},
		Configuration: chart.PointsConfiguration{
			VerticalBands: chart.BandsConfig{
				Low:  chart.BandStyle{Offset: fp(2), IsFilled: true},
				High: chart.BandStyle{Offset: fp(8), Width: fp(1)},
			},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(fig.Traces) != 3 {
		t.Fatalf("got %d traces, want fill + markers + band line", len(fig.Traces))
	}
	if fig.Traces[0].Kind != TraceFill {
		t.Errorf("band fills must draw first, got %s", fig.Traces[0].Kind)
	}
	if fig.Traces[1].Kind != TraceMarker {
		t.Errorf("data traces draw over fills, got %s", fig.Traces[1].Kind)
	}
	if fig.Traces[2].Kind != TraceLine {
		t.Errorf("band lines must draw last, got %s", fig.Traces[2].Kind)
	}
}

func TestNumericColorAxis(t *testing.T) {
	g := &chart.PointsGraph{
		Data: chart.PointsData{
			Xs:     []float64{0, 1, 2},
			Ys:     []float64{0, 1, 2},
			Colors: color.NumericValues([]float64{1, 10, 100}),
		},
		Configuration: chart.PointsConfiguration{
			Style: chart.PointsStyle{
				Palette:    color.Builtin("viridis"),
				ColorScale: chart.ScaleConfig{LogRegularization: fp(0), ShowScale: true},
			},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(fig.Traces) != 1 {
		t.Fatalf("numeric colors should emit one combined trace, got %d", len(fig.Traces))
	}

	marker := fig.Traces[0].Marker
	if marker.ColorAxis != ColorAxisPrimary {
		t.Errorf("marker should reference the primary color axis, got %q", marker.ColorAxis)
	}
	if marker.Values[1] != 1 {
		t.Errorf("color values should be log-transformed, got %v", marker.Values)
	}

	axis := fig.Layout.PrimaryColorAxis
	if axis == nil {
		t.Fatal("layout should carry the primary color axis")
	}
	if axis.CMin != 0 || axis.CMax != 2 {
		t.Errorf("color domain = [%v, %v], want [0, 2]", axis.CMin, axis.CMax)
	}
	if !axis.ShowScale || len(axis.TickPositions) == 0 {
		t.Error("shown log scale should carry colorbar ticks")
	}
	if len(axis.Stops) == 0 {
		t.Error("color axis should carry the palette's normalized stops")
	}
}

func TestBorderLayerIndependentAxis(t *testing.T) {
	g := &chart.PointsGraph{
		Data: chart.PointsData{
			Xs:           []float64{0, 1},
			Ys:           []float64{0, 1},
			Colors:       color.NumericValues([]float64{1, 2}),
			BorderColors: color.NumericValues([]float64{5, 6}),
		},
		Configuration: chart.PointsConfiguration{
			Style:  chart.PointsStyle{Palette: color.Builtin("viridis")},
			Border: chart.PointsStyle{Palette: color.Builtin("greys")},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig.Layout.PrimaryColorAxis == nil || fig.Layout.BorderColorAxis == nil {
		t.Fatal("both color axes should be present")
	}
	if fig.Layout.BorderColorAxis.CMin != 5 || fig.Layout.BorderColorAxis.CMax != 6 {
		t.Errorf("border axis should use the border values, got [%v, %v]",
			fig.Layout.BorderColorAxis.CMin, fig.Layout.BorderColorAxis.CMax)
	}

	var rings int
	for _, trace := range fig.Traces {
		if trace.Kind == TraceMarker && trace.Marker.Ring {
			rings++
			if trace.Marker.ColorAxis != ColorAxisBorder {
				t.Errorf("ring trace should reference the border axis, got %q", trace.Marker.ColorAxis)
			}
		}
	}
	if rings != 1 {
		t.Errorf("got %d ring traces, want 1", rings)
	}
}

func TestGridFlattensRowMajor(t *testing.T) {
	g := &chart.GridGraph{
		Data: chart.GridData{
			Xs:          []float64{10, 20},
			Ys:          []float64{1, 2},
			ColumnNames: []string{"c0", "c1"},
			RowNames:    []string{"r0", "r1"},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(fig.Traces) != 1 {
		t.Fatalf("got %d traces, want 1", len(fig.Traces))
	}

	trace := fig.Traces[0]
	wantXs := []float64{10, 20, 10, 20}
	wantYs := []float64{1, 1, 2, 2}
	for i := range wantXs {
		if trace.Xs[i] != wantXs[i] || trace.Ys[i] != wantYs[i] {
			t.Fatalf("cells not flattened row-major: xs %v ys %v", trace.Xs, trace.Ys)
		}
	}
	if len(fig.Layout.XAxis.TickLabels) != 2 || fig.Layout.XAxis.TickLabels[0] != "c0" {
		t.Errorf("column names should become x ticks, got %v", fig.Layout.XAxis.TickLabels)
	}
}

func TestExportPassthrough(t *testing.T) {
	g := &chart.LineGraph{
		Data: chart.LineData{Xs: []float64{0}, Ys: []float64{0}},
		Configuration: chart.LineConfiguration{
			Figure: chart.FigureConfiguration{
				Title:       "t",
				OutputFile:  "figure.png",
				Width:       fp(640),
				Height:      fp(480),
				Interactive: true,
			},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	export := fig.Layout.Export
	if export.OutputFile != "figure.png" || *export.Width != 640 || *export.Height != 480 || !export.Interactive {
		t.Errorf("export parameters must pass through verbatim, got %+v", export)
	}
	if fig.Layout.Title != "t" {
		t.Errorf("title = %q", fig.Layout.Title)
	}
}

func TestLinesStackingFractions(t *testing.T) {
	g := &chart.LinesGraph{
		Data: chart.LinesData{
			Series: []chart.LineData{
				{Xs: []float64{0, 1, 2}, Ys: []float64{1, 1, 1}, Name: "a"},
				{Xs: []float64{0.5, 1.5}, Ys: []float64{2, 2}, Name: "b"},
			},
		},
		Configuration: chart.LinesConfiguration{Stacking: chart.StackingFractions},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig.Layout.Stacking != "fraction" {
		t.Errorf("layout stacking = %q", fig.Layout.Stacking)
	}
	if len(fig.Traces) != 2 {
		t.Fatalf("got %d traces, want 2", len(fig.Traces))
	}

	// Both series share the unified grid, and the top series is pinned to
	// the full fraction wherever anything is drawn.
	top := fig.Traces[1]
	if len(top.Xs) != 5 {
		t.Fatalf("unified grid should have 5 points, got %v", top.Xs)
	}
	for i, y := range top.Ys {
		if y != 1 {
			t.Errorf("top stacked fraction at %v = %v, want 1", top.Xs[i], y)
		}
	}
}

func TestEdgeCategoricalSplit(t *testing.T) {
	g := &chart.PointsGraph{
		Data: chart.PointsData{
			Xs:    []float64{0, 1, 2},
			Ys:    []float64{0, 1, 2},
			Edges: []chart.Edge{{From: 0, To: 1}, {From: 1, To: 2}},
			EdgeColors: []color.Value{
				color.Named("A"), color.Named("B"),
			},
		},
		Configuration: chart.PointsConfiguration{
			Edges: chart.EdgeStyle{
				Palette: color.Categorical([]color.Entry{
					{Label: "A", Color: "red"},
					{Label: "B", Color: "blue"},
				}),
			},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var edgeTraces []Trace
	for _, trace := range fig.Traces {
		if trace.Kind == TraceLine {
			edgeTraces = append(edgeTraces, trace)
		}
	}
	if len(edgeTraces) != 2 {
		t.Fatalf("got %d edge traces, want one per category", len(edgeTraces))
	}
	if edgeTraces[0].Name != "A" || len(edgeTraces[0].Segments) != 1 {
		t.Errorf("category A should hold its single edge, got %+v", edgeTraces[0])
	}
	if edgeTraces[0].Segments[0].X1 != 1 {
		t.Errorf("edge segment should connect the endpoint coordinates, got %+v", edgeTraces[0].Segments[0])
	}
}

func TestBarCategoricalSplit(t *testing.T) {
	g := &chart.BarGraph{
		Data: chart.BarData{
			Values: []float64{3, 4, 5},
			Names:  []string{"x", "y", "z"},
			Colors: []color.Value{color.Named("A"), color.Named("B"), color.Named("A")},
		},
		Configuration: chart.BarConfiguration{
			Style: chart.PointsStyle{
				Palette: color.Categorical([]color.Entry{
					{Label: "A", Color: "red"},
					{Label: "B", Color: "blue"},
				}),
			},
		},
	}

	fig, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(fig.Traces) != 2 {
		t.Fatalf("got %d traces, want one per category", len(fig.Traces))
	}
	a := fig.Traces[0]
	if a.Name != "A" || len(a.Ys) != 2 || a.Labels[1] != "z" {
		t.Errorf("category A trace should hold bars x and z, got %+v", a)
	}
}
