package scale

import (
	"math"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/chart/color"
)

// Default pixel range for scaled marker sizes.
const (
	DefaultSmallestSize = 2.0
	DefaultLargestSize  = 10.0
)

// Sizes rescales raw size values into a pixel range.
//
// When neither the range, the log regularization, nor any explicit bound is
// configured, the raw values pass through unchanged and are interpreted
// directly as pixel diameters. Otherwise the scale domain is resolved from
// the explicit bounds (falling back to the data's min/max), optionally
// shifted into log10(v + reg) space together with the data, and linearly
// rescaled into [smallest, largest] (defaulting to 2..10 pixels), clamped.
//
// Hidden elements (size zero) are masked out by the trace builder before
// normalization, so the sentinel never reaches this function.
func Sizes(values []float64, cfg *chart.ScaleConfig, rng *chart.SizeRange) []float64 {
	if !rng.IsConfigured() && !cfg.IsLog() && cfg.Minimum == nil && cfg.Maximum == nil {
		return values
	}
	if len(values) == 0 {
		return values
	}

	sMin, sMax := resolveBounds(values, cfg.Minimum, cfg.Maximum)

	transform := func(v float64) float64 { return v }
	if cfg.IsLog() {
		reg := *cfg.LogRegularization
		transform = func(v float64) float64 { return math.Log10(v + reg) }
		sMin = transform(sMin)
		sMax = transform(sMax)
	}

	smallest := DefaultSmallestSize
	if rng.Smallest != nil {
		smallest = *rng.Smallest
	}
	largest := DefaultLargestSize
	if rng.Largest != nil {
		largest = *rng.Largest
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = smallest + clamp01(fraction(transform(v), sMin, sMax))*(largest-smallest)
	}
	return out
}

// Stops remaps continuous palette stops into normalized [0, 1] gradient
// positions.
//
// The scale domain is resolved in priority order: the explicit dataMin and
// dataMax arguments, then the config's own bounds, then the palette's own
// value range. In log mode both the stop values and the domain are shifted
// through log10(v + reg) first. Each stop value is then remapped via
// clamp((v-cMin)/(cMax-cMin), 0, 1), preserving stop order; ReverseScale
// flips the gradient.
func Stops(stops []color.Stop, cfg *chart.ScaleConfig, dataMin, dataMax *float64) []color.Stop {
	if len(stops) == 0 {
		return nil
	}

	paletteMin, paletteMax := stopsRange(stops)
	cMin := *firstOf(dataMin, cfg.Minimum, &paletteMin)
	cMax := *firstOf(dataMax, cfg.Maximum, &paletteMax)

	transform := func(v float64) float64 { return v }
	if cfg.IsLog() {
		reg := *cfg.LogRegularization
		transform = func(v float64) float64 { return math.Log10(v + reg) }
	}
	lo := transform(cMin)
	hi := transform(cMax)

	out := make([]color.Stop, len(stops))
	for i, s := range stops {
		pos := clamp01(fraction(transform(s.Value), lo, hi))
		if cfg.ReverseScale {
			pos = 1 - pos
		}
		out[i] = color.Stop{Value: pos, Color: s.Color}
	}
	if cfg.ReverseScale {
		reverse(out)
	}
	return out
}

// ColorDomain resolves the numeric domain of a continuous color scale the
// same way Stops does, returning the (possibly log-transformed) values the
// backend should color by together with the domain bounds.
func ColorDomain(values []float64, cfg *chart.ScaleConfig, palette *color.Palette) (transformed []float64, cMin, cMax float64) {
	var dataMin, dataMax *float64
	if len(values) > 0 {
		lo, hi := minMax(values)
		dataMin, dataMax = &lo, &hi
	}

	var paletteMin, paletteMax *float64
	if palette != nil && palette.Kind() != color.PaletteCategorical {
		lo, hi := palette.ValueRange()
		paletteMin, paletteMax = &lo, &hi
	}

	cMin = *firstOf(cfg.Minimum, dataMin, paletteMin, fptr(0))
	cMax = *firstOf(cfg.Maximum, dataMax, paletteMax, fptr(1))

	transformed = values
	if cfg.IsLog() {
		reg := *cfg.LogRegularization
		transformed = make([]float64, len(values))
		for i, v := range values {
			transformed[i] = math.Log10(v + reg)
		}
		cMin = math.Log10(cMin + reg)
		cMax = math.Log10(cMax + reg)
	}
	return transformed, cMin, cMax
}

// resolveBounds picks explicit bounds where set, else the data min/max.
func resolveBounds(values []float64, minimum, maximum *float64) (lo, hi float64) {
	dataLo, dataHi := minMax(values)
	lo, hi = dataLo, dataHi
	if minimum != nil {
		lo = *minimum
	}
	if maximum != nil {
		hi = *maximum
	}
	return lo, hi
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func stopsRange(stops []color.Stop) (lo, hi float64) {
	lo, hi = stops[0].Value, stops[0].Value
	for _, s := range stops[1:] {
		if s.Value < lo {
			lo = s.Value
		}
		if s.Value > hi {
			hi = s.Value
		}
	}
	return lo, hi
}

// fraction maps v into [0, 1] relative to [lo, hi]. A collapsed domain
// maps everything to the midpoint.
func fraction(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// firstOf returns the first non-nil pointer.
func firstOf(ptrs ...*float64) *float64 {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}

func fptr(v float64) *float64 { return &v }

func reverse(stops []color.Stop) {
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}
}
