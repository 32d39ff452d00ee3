package render

import (
	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/render/band"
	"github.com/tracekit/tracekit/pkg/render/series"
)

// buildLine renders a single line graph.
func buildLine(g *chart.LineGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	fig.Layout.XAxis = axisLayout(&cfg.XAxis, "")
	fig.Layout.YAxis = axisLayout(&cfg.YAxis, "")

	var bands bandSet
	if len(g.Data.Xs) > 0 {
		box := dataBox(g.Data.Xs, g.Data.Ys)
		bands.add(band.Vertical(&cfg.VerticalBands, box))
		bands.add(band.Horizontal(&cfg.HorizontalBands, box))
	}

	fig.Traces = append(fig.Traces, bands.fillTraces()...)
	fig.Traces = append(fig.Traces, lineTrace(g.Data.Xs, g.Data.Ys, g.Data.Name, cfg.Style.Color, &cfg.Style))
	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// buildLines renders a multi-series line graph. When the configuration
// stacks, the series are first unified onto one shared x-grid and their
// values accumulated; hidden series (empty color) never contribute.
func buildLines(g *chart.LinesGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	fig.Layout.XAxis = axisLayout(&cfg.XAxis, "")
	fig.Layout.YAxis = axisLayout(&cfg.YAxis, "")
	fig.Layout.Stacking = string(cfg.Stacking)

	visible := make([]chart.LineData, 0, len(g.Data.Series))
	colors := make([]string, 0, len(g.Data.Series))
	for i, s := range g.Data.Series {
		if g.Data.Colors != nil && g.Data.Colors[i] == "" {
			continue
		}
		visible = append(visible, s)
		if g.Data.Colors != nil {
			colors = append(colors, g.Data.Colors[i])
		} else {
			colors = append(colors, cfg.Style.Color)
		}
	}
	if len(visible) == 0 {
		return fig, nil
	}

	xsPerSeries := make([][]float64, len(visible))
	ysPerSeries := make([][]float64, len(visible))
	for i, s := range visible {
		xsPerSeries[i] = s.Xs
		ysPerSeries[i] = s.Ys
	}

	if cfg.Stacking != chart.StackingNone {
		unifiedXs, unifiedYs, err := series.Unify(xsPerSeries, ysPerSeries)
		if err != nil {
			return nil, err
		}
		stacked := series.Stack(unifiedYs, cfg.Stacking)
		for i := range xsPerSeries {
			xsPerSeries[i] = unifiedXs
			ysPerSeries[i] = stacked[i]
		}
	}

	var allXs, allYs []float64
	for i := range visible {
		allXs = append(allXs, xsPerSeries[i]...)
		allYs = append(allYs, ysPerSeries[i]...)
	}
	var bands bandSet
	if len(allXs) > 0 {
		box := dataBox(allXs, allYs)
		bands.add(band.Vertical(&cfg.VerticalBands, box))
		bands.add(band.Horizontal(&cfg.HorizontalBands, box))
	}

	fig.Traces = append(fig.Traces, bands.fillTraces()...)
	for i, s := range visible {
		trace := lineTrace(xsPerSeries[i], ysPerSeries[i], s.Name, colors[i], &cfg.Style)
		trace.Legend = s.Name != ""
		fig.Traces = append(fig.Traces, trace)
	}
	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// lineTrace assembles one data line trace from a series and its style.
func lineTrace(xs, ys []float64, name, color string, style *chart.LineStyle) Trace {
	width := 1.0
	if style.Width != nil {
		width = *style.Width
	}
	return Trace{
		Kind: TraceLine,
		Name: name,
		Xs:   xs,
		Ys:   ys,
		Line: &LineStyle{
			Color:  color,
			Width:  width,
			Dashed: style.IsDashed,
			Filled: style.IsFilled,
		},
	}
}
