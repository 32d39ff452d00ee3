package render

import (
	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/chart/color"
	"github.com/tracekit/tracekit/pkg/render/scale"
)

// markerLayer is one color axis worth of markers: the primary dots or the
// border rings, each with its own style, colors and sizes. Points and grid
// graphs both render through it.
type markerLayer struct {
	xs     []float64
	ys     []float64
	hovers []string
	colors []color.Value
	sizes  []float64
	style  *chart.PointsStyle
	// axisRef names the layout color axis numeric values resolve through.
	axisRef string
	ring    bool
}

// buildMarkers renders one marker layer into traces, splitting categorical
// palettes into one trace per category and collecting explicit and numeric
// colors into combined-visibility traces. The returned color axis is
// non-nil only when a numeric trace was emitted.
func buildMarkers(l markerLayer) ([]Trace, *ColorAxis) {
	n := len(l.xs)
	if n == 0 {
		return nil, nil
	}
	vis := visibleMask(n, l.colors, l.sizes)
	sizes := normalizedSizes(l.sizes, vis, l.style)

	if l.colors != nil && l.style.Palette != nil && l.style.Palette.Kind() == color.PaletteCategorical {
		var traces []Trace
		for _, cat := range splitCategories(l.colors, vis, l.style.Palette) {
			traces = append(traces, l.trace(cat.m, cat.label, &MarkerStyle{Color: cat.color}, sizes, true))
		}
		return traces, nil
	}

	if l.colors == nil {
		if vis.count() == 0 {
			return nil, nil
		}
		return []Trace{l.trace(vis, "", &MarkerStyle{Color: l.style.Color}, sizes, false)}, nil
	}

	// No categorical palette: explicit color strings and numeric values
	// each collect into one combined-visibility trace.
	var traces []Trace
	var axis *ColorAxis

	named := vis.and(kindMask(l.colors, color.KindNamed))
	if named.count() > 0 {
		style := &MarkerStyle{Colors: names(selectValues(l.colors, named))}
		traces = append(traces, l.trace(named, "", style, sizes, false))
	}

	numeric := vis.and(kindMask(l.colors, color.KindNumeric))
	if numeric.count() > 0 {
		values := numbers(selectValues(l.colors, numeric))
		transformed, _, _ := scale.ColorDomain(values, &l.style.ColorScale, l.style.Palette)
		style := &MarkerStyle{Values: transformed, ColorAxis: l.axisRef}
		traces = append(traces, l.trace(numeric, "", style, sizes, false))
		axis = buildColorAxis(values, l.style)
	}
	return traces, axis
}

// trace assembles one marker trace over the masked selection.
func (l markerLayer) trace(m mask, name string, style *MarkerStyle, sizes []float64, legend bool) Trace {
	if sizes != nil {
		style.Sizes = selectFloats(sizes, m)
	} else {
		style.Size = l.style.Size
	}
	style.Ring = l.ring
	return Trace{
		Kind:   TraceMarker,
		Name:   name,
		Legend: legend,
		Xs:     selectFloats(l.xs, m),
		Ys:     selectFloats(l.ys, m),
		Hovers: selectStrings(l.hovers, m),
		Marker: style,
	}
}

// normalizedSizes rescales the visible sizes and realigns them with the
// original indices, so category masks can select from them later. Hidden
// elements never reach the normalizer.
func normalizedSizes(sizes []float64, vis mask, style *chart.PointsStyle) []float64 {
	if sizes == nil {
		return nil
	}
	norm := scale.Sizes(selectFloats(sizes, vis), &style.SizeScale, &style.SizeRange)
	out := make([]float64, len(sizes))
	j := 0
	for i := range sizes {
		if vis[i] {
			out[i] = norm[j]
			j++
		}
	}
	return out
}

// buildColorAxis resolves the continuous color axis of a numeric marker or
// bar trace: domain bounds, normalized gradient stops, and log colorbar
// ticks when the scale is shown.
func buildColorAxis(values []float64, style *chart.PointsStyle) *ColorAxis {
	cfg := &style.ColorScale
	_, cMin, cMax := scale.ColorDomain(values, cfg, style.Palette)

	axis := &ColorAxis{CMin: cMin, CMax: cMax, ShowScale: cfg.ShowScale}
	if style.Palette != nil && style.Palette.Kind() != color.PaletteCategorical {
		lo, hi := rawColorDomain(values, cfg, style.Palette)
		axis.Stops = scale.Stops(style.Palette.Stops(), cfg, &lo, &hi)
	}
	if cfg.ShowScale && cfg.IsLog() {
		axis.TickPositions, axis.TickLabels = scale.LogTicks(values, cfg)
	}
	return axis
}

// rawColorDomain resolves the untransformed color domain with the same
// priority ColorDomain uses: config bounds, then data, then the palette.
func rawColorDomain(values []float64, cfg *chart.ScaleConfig, palette *color.Palette) (lo, hi float64) {
	lo, hi = 0, 1
	if palette != nil && palette.Kind() != color.PaletteCategorical {
		lo, hi = palette.ValueRange()
	}
	if len(values) > 0 {
		dataLo, dataHi := values[0], values[0]
		for _, v := range values[1:] {
			if v < dataLo {
				dataLo = v
			}
			if v > dataHi {
				dataHi = v
			}
		}
		lo, hi = dataLo, dataHi
	}
	if cfg.Minimum != nil {
		lo = *cfg.Minimum
	}
	if cfg.Maximum != nil {
		hi = *cfg.Maximum
	}
	return lo, hi
}

// kindMask selects the elements of one color value kind.
func kindMask(values []color.Value, kind color.Kind) mask {
	m := make(mask, len(values))
	for i, v := range values {
		m[i] = v.Kind() == kind
	}
	return m
}

func names(values []color.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Name()
	}
	return out
}

func numbers(values []color.Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Number()
	}
	return out
}
