package render

import (
	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/chart/color"
	"github.com/tracekit/tracekit/pkg/render/scale"
)

// buildBar renders a single-series bar graph. Bar colors split exactly
// like marker colors: per-category traces for a categorical palette, a
// combined trace otherwise.
func buildBar(g *chart.BarGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	valueAxis := axisLayout(&cfg.ValueAxis, "")
	if cfg.Horizontal {
		fig.Layout.XAxis = valueAxis
		fig.Layout.YAxis = Axis{Kind: AxisLinear}
	} else {
		fig.Layout.XAxis = Axis{Kind: AxisLinear}
		fig.Layout.YAxis = valueAxis
	}

	bands := barValueBands(&cfg.ValueBands, g.Data.Values, len(g.Data.Values), cfg.Horizontal)
	fig.Traces = append(fig.Traces, bands.fillTraces()...)

	traces, axis := barTraces(&g.Data, &cfg.Style, cfg.Horizontal, "", false)
	fig.Traces = append(fig.Traces, traces...)
	fig.Layout.PrimaryColorAxis = axis

	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// buildBars renders a grouped or stacked multi-series bar graph: one bar
// trace per series, sharing the top-level category names.
func buildBars(g *chart.BarsGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	valueAxis := axisLayout(&cfg.ValueAxis, "")
	if cfg.Horizontal {
		fig.Layout.XAxis = valueAxis
		fig.Layout.YAxis = Axis{Kind: AxisLinear}
	} else {
		fig.Layout.XAxis = Axis{Kind: AxisLinear}
		fig.Layout.YAxis = valueAxis
	}
	fig.Layout.BarMode = BarModeGroup
	if cfg.Stacked {
		fig.Layout.BarMode = BarModeStack
	}

	categories := 0
	if len(g.Data.Series) > 0 {
		categories = len(g.Data.Series[0].Values)
	}
	bands := barValueBands(&cfg.ValueBands, barsValueSpan(g), categories, cfg.Horizontal)
	fig.Traces = append(fig.Traces, bands.fillTraces()...)

	for i := range g.Data.Series {
		data := g.Data.Series[i]
		if data.Names == nil {
			data.Names = g.Data.Names
		}
		name := ""
		if g.Data.SeriesNames != nil {
			name = g.Data.SeriesNames[i]
		}
		traces, axis := barTraces(&data, &cfg.Style, cfg.Horizontal, name, name != "")
		fig.Traces = append(fig.Traces, traces...)
		if fig.Layout.PrimaryColorAxis == nil {
			fig.Layout.PrimaryColorAxis = axis
		}
	}

	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// barTraces renders one bar series, splitting on its color mode. The
// returned color axis is non-nil only for numeric colors.
func barTraces(data *chart.BarData, style *chart.PointsStyle, horizontal bool, name string, legend bool) ([]Trace, *ColorAxis) {
	n := len(data.Values)
	if n == 0 {
		return nil, nil
	}
	vis := visibleMask(n, data.Colors, nil)

	trace := func(m mask, traceName string, barStyle *BarStyle, showLegend bool) Trace {
		return Trace{
			Kind:       TraceBar,
			Name:       traceName,
			Legend:     showLegend,
			Ys:         selectFloats(data.Values, m),
			Labels:     selectStrings(data.Names, m),
			Hovers:     selectStrings(data.Hovers, m),
			Horizontal: horizontal,
			Bar:        barStyle,
		}
	}

	if data.Colors != nil && style.Palette != nil && style.Palette.Kind() == color.PaletteCategorical {
		var traces []Trace
		for _, cat := range splitCategories(data.Colors, vis, style.Palette) {
			traces = append(traces, trace(cat.m, cat.label, &BarStyle{Color: cat.color}, true))
		}
		return traces, nil
	}

	if data.Colors == nil {
		if vis.count() == 0 {
			return nil, nil
		}
		return []Trace{trace(vis, name, &BarStyle{Color: style.Color}, legend)}, nil
	}

	var traces []Trace
	var axis *ColorAxis

	named := vis.and(kindMask(data.Colors, color.KindNamed))
	if named.count() > 0 {
		barStyle := &BarStyle{Colors: names(selectValues(data.Colors, named))}
		traces = append(traces, trace(named, name, barStyle, legend))
	}

	numeric := vis.and(kindMask(data.Colors, color.KindNumeric))
	if numeric.count() > 0 {
		values := numbers(selectValues(data.Colors, numeric))
		transformed, _, _ := scale.ColorDomain(values, &style.ColorScale, style.Palette)
		barStyle := &BarStyle{Values: transformed, ColorAxis: ColorAxisPrimary}
		traces = append(traces, trace(numeric, name, barStyle, legend))
		axis = buildColorAxis(values, style)
	}
	return traces, axis
}

// barValueBands computes the value-axis band geometry of a bar graph. The
// value span always includes zero, since bars grow from the axis.
func barValueBands(cfg *chart.BandsConfig, values []float64, categories int, horizontal bool) bandSet {
	if !cfg.Exists() || len(values) == 0 {
		return bandSet{}
	}
	lo, hi := 0.0, 0.0
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	box := valueBox(lo, hi, -0.5, float64(categories)-0.5, horizontal)
	return valueBands(cfg, box, horizontal)
}

// barsValueSpan collects the values bounding a multi-series bar graph:
// raw values when grouped, per-category running totals when stacked.
func barsValueSpan(g *chart.BarsGraph) []float64 {
	var span []float64
	for _, s := range g.Data.Series {
		span = append(span, s.Values...)
	}
	if !g.Configuration.Stacked || len(g.Data.Series) == 0 {
		return span
	}
	totals := make([]float64, len(g.Data.Series[0].Values))
	for _, s := range g.Data.Series {
		for i, v := range s.Values {
			totals[i] += v
		}
	}
	return append(span, totals...)
}
