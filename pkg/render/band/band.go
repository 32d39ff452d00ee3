// Package band computes the geometry of filled band regions and band lines:
// the low/middle/high partitions of a graph's plotted area along the x axis
// (vertical bands), the y axis (horizontal bands), or around the y = x
// diagonal (diagonal bands).
//
// All geometry is produced in data coordinates; log-scaled axes only change
// which operation table positions the diagonal (see diagonal.go) and are
// otherwise the backend's concern. Filled regions are drawn under the data,
// band lines on top of it; the trace builder owns that ordering.
package band

import "github.com/tracekit/tracekit/pkg/chart"

// Box is the bounding box of the plotted data, in data coordinates.
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Square returns the square spanned by the unified min/max of both axes,
// used to clip diagonal bands.
func (b Box) Square() (lo, hi float64) {
	lo = b.XMin
	if b.YMin < lo {
		lo = b.YMin
	}
	hi = b.XMax
	if b.YMax > hi {
		hi = b.YMax
	}
	return lo, hi
}

// Fill is one filled band region: a closed polygon with the band's style.
type Fill struct {
	Xs, Ys []float64
	Style  *chart.BandStyle
	// Name identifies the band ("low", "middle", "high") for trace naming.
	Name string
}

// Line is one band reference line: a two-point segment with the band's
// style.
type Line struct {
	Xs, Ys []float64
	Style  *chart.BandStyle
	Name   string
}

// Band names.
const (
	NameLow    = "low"
	NameMiddle = "middle"
	NameHigh   = "high"
)

// Vertical computes the fills and lines of bands partitioning the x range.
// The low region spans from the data's minimum x to the low offset, the
// high region from the high offset to the maximum x, and the middle region
// between the two offsets (defined only when both are present).
func Vertical(cfg *chart.BandsConfig, box Box) (fills []Fill, lines []Line) {
	rect := func(x0, x1 float64) ([]float64, []float64) {
		return []float64{x0, x1, x1, x0}, []float64{box.YMin, box.YMin, box.YMax, box.YMax}
	}
	segment := func(offset float64) ([]float64, []float64) {
		return []float64{offset, offset}, []float64{box.YMin, box.YMax}
	}
	return axisBands(cfg, box.XMin, box.XMax, rect, segment)
}

// Horizontal computes the fills and lines of bands partitioning the y
// range, mirroring Vertical.
func Horizontal(cfg *chart.BandsConfig, box Box) (fills []Fill, lines []Line) {
	rect := func(y0, y1 float64) ([]float64, []float64) {
		return []float64{box.XMin, box.XMax, box.XMax, box.XMin}, []float64{y0, y0, y1, y1}
	}
	segment := func(offset float64) ([]float64, []float64) {
		return []float64{box.XMin, box.XMax}, []float64{offset, offset}
	}
	return axisBands(cfg, box.YMin, box.YMax, rect, segment)
}

// axisBands shares the vertical/horizontal construction: rect builds the
// region polygon between two coordinates on the banded axis, segment the
// reference line at one offset.
func axisBands(
	cfg *chart.BandsConfig,
	dataMin, dataMax float64,
	rect func(c0, c1 float64) ([]float64, []float64),
	segment func(offset float64) ([]float64, []float64),
) (fills []Fill, lines []Line) {
	if cfg.Low.Exists() && cfg.Low.IsFilled {
		xs, ys := rect(dataMin, *cfg.Low.Offset)
		fills = append(fills, Fill{Xs: xs, Ys: ys, Style: &cfg.Low, Name: NameLow})
	}
	if cfg.Middle.Exists() && cfg.Middle.IsFilled && cfg.Low.Exists() && cfg.High.Exists() {
		xs, ys := rect(*cfg.Low.Offset, *cfg.High.Offset)
		fills = append(fills, Fill{Xs: xs, Ys: ys, Style: &cfg.Middle, Name: NameMiddle})
	}
	if cfg.High.Exists() && cfg.High.IsFilled {
		xs, ys := rect(*cfg.High.Offset, dataMax)
		fills = append(fills, Fill{Xs: xs, Ys: ys, Style: &cfg.High, Name: NameHigh})
	}

	for _, band := range []struct {
		style *chart.BandStyle
		name  string
	}{
		{&cfg.Low, NameLow},
		{&cfg.Middle, NameMiddle},
		{&cfg.High, NameHigh},
	} {
		if band.style.Exists() && band.style.Width != nil {
			xs, ys := segment(*band.style.Offset)
			lines = append(lines, Line{Xs: xs, Ys: ys, Style: band.style, Name: band.name})
		}
	}
	return fills, lines
}
