package render

import (
	"sort"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/render/band"
)

// buildCdf renders a single cumulative distribution graph.
func buildCdf(g *chart.CdfGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	fig.Layout.XAxis = axisLayout(&cfg.ValueAxis, "")
	fig.Layout.YAxis = axisLayout(&cfg.FractionAxis, "")

	xs, ys := cdfCurve(g.Data.Values, cfg.Direction, cfg.Percent)

	bands := cdfValueBands(cfg, xs, ys)
	fig.Traces = append(fig.Traces, bands.fillTraces()...)
	fig.Traces = append(fig.Traces, lineTrace(xs, ys, g.Data.Name, cfg.Style.Color, &cfg.Style))
	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// buildCdfs renders multiple CDFs in one graph; hidden series (empty
// color) are skipped.
func buildCdfs(g *chart.CdfsGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	fig.Layout.XAxis = axisLayout(&cfg.ValueAxis, "")
	fig.Layout.YAxis = axisLayout(&cfg.FractionAxis, "")

	var allXs, allYs []float64
	type curve struct {
		xs, ys []float64
		name   string
		color  string
	}
	var curves []curve
	for i, s := range g.Data.Series {
		seriesColor := cfg.Style.Color
		if g.Data.Colors != nil {
			if g.Data.Colors[i] == "" {
				continue
			}
			seriesColor = g.Data.Colors[i]
		}
		xs, ys := cdfCurve(s.Values, cfg.Direction, cfg.Percent)
		curves = append(curves, curve{xs: xs, ys: ys, name: s.Name, color: seriesColor})
		allXs = append(allXs, xs...)
		allYs = append(allYs, ys...)
	}

	var bands bandSet
	if len(allXs) > 0 {
		bands = cdfValueBands(cfg, allXs, allYs)
	}
	fig.Traces = append(fig.Traces, bands.fillTraces()...)
	for _, c := range curves {
		trace := lineTrace(c.xs, c.ys, c.name, c.color, &cfg.Style)
		trace.Legend = c.name != ""
		fig.Traces = append(fig.Traces, trace)
	}
	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// cdfCurve ranks the values and computes the accumulated fraction at each.
//
// In the up direction the fraction at the i-th sorted value (0-based) is
// (i+1)/n: the share of values up to and including it. The down direction
// keeps its deliberate asymmetry: the fraction is (n-i+1)/n, the share of
// values down to and including it, which reaches 1 + 1/n at the smallest
// value before percent scaling.
func cdfCurve(values []float64, direction chart.CdfDirection, percent bool) (xs, ys []float64) {
	n := len(values)
	xs = make([]float64, n)
	copy(xs, values)
	sort.Float64s(xs)

	unit := 1.0
	if percent {
		unit = 100
	}

	ys = make([]float64, n)
	for i := range ys {
		if direction == chart.CdfDownToValue {
			ys[i] = unit * float64(n-i+1) / float64(n)
		} else {
			ys[i] = unit * float64(i+1) / float64(n)
		}
	}
	return xs, ys
}

// cdfValueBands computes band geometry along the value (x) axis of a CDF.
func cdfValueBands(cfg *chart.CdfConfiguration, xs, ys []float64) bandSet {
	var set bandSet
	if !cfg.ValueBands.Exists() {
		return set
	}
	box := dataBox(xs, ys)
	set.add(band.Vertical(&cfg.ValueBands, box))
	return set
}
