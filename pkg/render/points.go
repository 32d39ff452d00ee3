package render

import (
	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/chart/color"
	"github.com/tracekit/tracekit/pkg/render/band"
)

// buildPoints renders a scatter graph: band fills, point-to-point edges,
// the primary markers, the border rings, then band lines.
func buildPoints(g *chart.PointsGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	fig.Layout.XAxis = axisLayout(&cfg.XAxis, "")
	fig.Layout.YAxis = axisLayout(&cfg.YAxis, "")

	var bands bandSet
	if len(g.Data.Xs) > 0 {
		box := dataBox(g.Data.Xs, g.Data.Ys)
		bands.add(band.Vertical(&cfg.VerticalBands, box))
		bands.add(band.Horizontal(&cfg.HorizontalBands, box))
		bands.add(band.Diagonal(&cfg.DiagonalBands, box, cfg.XAxis.IsLog() && cfg.YAxis.IsLog()))
	}
	fig.Traces = append(fig.Traces, bands.fillTraces()...)

	fig.Traces = append(fig.Traces, edgeTraces(&g.Data, &cfg.Edges)...)

	primary, primaryAxis := buildMarkers(markerLayer{
		xs:      g.Data.Xs,
		ys:      g.Data.Ys,
		hovers:  g.Data.Hovers,
		colors:  g.Data.Colors,
		sizes:   g.Data.Sizes,
		style:   &cfg.Style,
		axisRef: ColorAxisPrimary,
	})
	fig.Traces = append(fig.Traces, primary...)
	fig.Layout.PrimaryColorAxis = primaryAxis

	if borderConfigured(g) {
		border, borderAxis := buildMarkers(markerLayer{
			xs:      g.Data.Xs,
			ys:      g.Data.Ys,
			colors:  g.Data.BorderColors,
			sizes:   g.Data.BorderSizes,
			style:   &cfg.Border,
			axisRef: ColorAxisBorder,
			ring:    true,
		})
		fig.Traces = append(fig.Traces, border...)
		fig.Layout.BorderColorAxis = borderAxis
	}

	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// borderConfigured reports whether the graph draws a border ring layer at
// all: either the data carries border arrays or the configuration styles
// the rings.
func borderConfigured(g *chart.PointsGraph) bool {
	return g.Data.BorderColors != nil || g.Data.BorderSizes != nil ||
		g.Configuration.Border.Color != "" || g.Configuration.Border.Size != nil
}

// edgeTraces renders the point-to-point edges as detached line segments,
// drawn under the markers. Edge colors split exactly like marker colors:
// per-category traces for a categorical palette, one combined trace
// otherwise; numeric edge colors are resolved to concrete colors by
// sampling the palette gradient, since edges share no color axis with the
// markers.
func edgeTraces(data *chart.PointsData, style *chart.EdgeStyle) []Trace {
	if len(data.Edges) == 0 {
		return nil
	}

	segments := make([]Segment, len(data.Edges))
	for i, e := range data.Edges {
		segments[i] = Segment{
			X0: data.Xs[e.From], Y0: data.Ys[e.From],
			X1: data.Xs[e.To], Y1: data.Ys[e.To],
		}
	}
	width := 1.0
	if style.Width != nil {
		width = *style.Width
	}

	if data.EdgeColors == nil {
		return []Trace{{
			Kind:     TraceLine,
			Segments: segments,
			Line:     &LineStyle{Color: style.Color, Width: width},
		}}
	}

	vis := visibleMask(len(data.Edges), data.EdgeColors, nil)

	if style.Palette != nil && style.Palette.Kind() == color.PaletteCategorical {
		var traces []Trace
		for _, cat := range splitCategories(data.EdgeColors, vis, style.Palette) {
			traces = append(traces, Trace{
				Kind:     TraceLine,
				Name:     cat.label,
				Legend:   true,
				Segments: selectSegments(segments, cat.m),
				Line:     &LineStyle{Color: cat.color, Width: width},
			})
		}
		return traces
	}

	var traces []Trace

	named := vis.and(kindMask(data.EdgeColors, color.KindNamed))
	if named.count() > 0 {
		traces = append(traces, Trace{
			Kind:     TraceLine,
			Segments: selectSegments(segments, named),
			Line: &LineStyle{
				Width:  width,
				Colors: names(selectValues(data.EdgeColors, named)),
			},
		})
	}

	numeric := vis.and(kindMask(data.EdgeColors, color.KindNumeric))
	if numeric.count() > 0 {
		values := numbers(selectValues(data.EdgeColors, numeric))
		traces = append(traces, Trace{
			Kind:     TraceLine,
			Segments: selectSegments(segments, numeric),
			Line: &LineStyle{
				Width:  width,
				Colors: sampledColors(values, style),
			},
		})
	}
	return traces
}

// sampledColors maps numeric edge color values onto concrete colors
// through the edge palette's gradient. Without a continuous palette the
// values stay uncolored and the backend picks its default.
func sampledColors(values []float64, style *chart.EdgeStyle) []string {
	if style.Palette == nil || style.Palette.Kind() == color.PaletteCategorical {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = style.Palette.Sample(v)
	}
	return out
}

func selectSegments(segments []Segment, m mask) []Segment {
	out := make([]Segment, 0, m.count())
	for i, s := range segments {
		if m[i] {
			out = append(out, s)
		}
	}
	return out
}
