package band

import "github.com/tracekit/tracekit/pkg/chart"

// diagonalOps abstracts over linear and logarithmic diagonals. The offset of
// a diagonal band is additive on linear axes (y = x + offset, neutral at 0)
// and multiplicative on log axes (y = x * offset, neutral at 1); both are
// straight lines in data coordinates, so the same clipping works for either.
type diagonalOps struct {
	threshold float64
	increase  func(v, offset float64) float64
	decrease  func(v, offset float64) float64
}

var (
	linearOps = diagonalOps{
		threshold: 0,
		increase:  func(v, o float64) float64 { return v + o },
		decrease:  func(v, o float64) float64 { return v - o },
	}
	logOps = diagonalOps{
		threshold: 1,
		increase:  func(v, o float64) float64 { return v * o },
		decrease:  func(v, o float64) float64 { return v / o },
	}
)

// Diagonal computes the fills and lines of bands around the y = x diagonal.
// The low region lies below the low offset line, the high region above the
// high offset line, and the middle region is the strip between the two
// (defined only when both are present). Each region is the clip of its
// half-plane (or strip) to the bounding square spanned by the unified
// min/max of both axes; depending on where the offset line crosses the
// square's edges the clip comes out as a triangle, a quadrilateral, or a
// pentagon. Degenerate clips (the line misses the square entirely) produce
// nothing.
//
// Validation has already rejected diagonal bands over mixed-linearity axes
// and non-positive offsets on log axes.
func Diagonal(cfg *chart.BandsConfig, box Box, isLog bool) (fills []Fill, lines []Line) {
	ops := linearOps
	if isLog {
		ops = logOps
	}
	lo, hi := box.Square()
	square := []point{{lo, lo}, {hi, lo}, {hi, hi}, {lo, hi}}

	if cfg.Low.Exists() && cfg.Low.IsFilled {
		region := clipDiagonal(square, *cfg.Low.Offset, ops, sideBelow)
		fills = appendFill(fills, region, &cfg.Low, NameLow)
	}
	if cfg.Middle.Exists() && cfg.Middle.IsFilled && cfg.Low.Exists() && cfg.High.Exists() {
		region := clipDiagonal(square, *cfg.High.Offset, ops, sideBelow)
		region = clipDiagonal(region, *cfg.Low.Offset, ops, sideAbove)
		fills = appendFill(fills, region, &cfg.Middle, NameMiddle)
	}
	if cfg.High.Exists() && cfg.High.IsFilled {
		region := clipDiagonal(square, *cfg.High.Offset, ops, sideAbove)
		fills = appendFill(fills, region, &cfg.High, NameHigh)
	}

	for _, band := range []struct {
		style *chart.BandStyle
		name  string
	}{
		{&cfg.Low, NameLow},
		{&cfg.Middle, NameMiddle},
		{&cfg.High, NameHigh},
	} {
		if !band.style.Exists() || band.style.Width == nil {
			continue
		}
		xs, ys, ok := diagonalSegment(lo, hi, *band.style.Offset, ops)
		if !ok {
			continue
		}
		lines = append(lines, Line{Xs: xs, Ys: ys, Style: band.style, Name: band.name})
	}
	return fills, lines
}

type point struct{ x, y float64 }

type side int

const (
	sideBelow side = iota // keep y <= increase(x, offset)
	sideAbove             // keep y >= increase(x, offset)
)

// clipDiagonal clips a convex polygon against the half-plane on one side of
// the diagonal line y = increase(x, offset). The signed distance
// y - increase(x, offset) is linear in (x, y) for both operation tables, so
// edge intersections interpolate exactly.
func clipDiagonal(poly []point, offset float64, ops diagonalOps, keep side) []point {
	dist := func(p point) float64 {
		d := p.y - ops.increase(p.x, offset)
		if keep == sideAbove {
			d = -d
		}
		return d
	}

	var out []point
	for i := range poly {
		cur, next := poly[i], poly[(i+1)%len(poly)]
		dc, dn := dist(cur), dist(next)
		if dc <= 0 {
			out = append(out, cur)
		}
		if (dc < 0) != (dn < 0) && dc != 0 && dn != 0 {
			t := dc / (dc - dn)
			out = append(out, point{
				x: cur.x + t*(next.x-cur.x),
				y: cur.y + t*(next.y-cur.y),
			})
		}
	}
	return out
}

// diagonalSegment returns the endpoints of the line y = increase(x, offset)
// within the bounding square, or ok=false when the line misses it.
func diagonalSegment(lo, hi, offset float64, ops diagonalOps) (xs, ys []float64, ok bool) {
	x0 := lo
	if x := ops.decrease(lo, offset); x > x0 {
		x0 = x
	}
	x1 := hi
	if x := ops.decrease(hi, offset); x < x1 {
		x1 = x
	}
	if x1 <= x0 {
		return nil, nil, false
	}
	return []float64{x0, x1},
		[]float64{ops.increase(x0, offset), ops.increase(x1, offset)},
		true
}

func appendFill(fills []Fill, region []point, style *chart.BandStyle, name string) []Fill {
	if len(region) < 3 {
		return fills
	}
	xs := make([]float64, len(region))
	ys := make([]float64, len(region))
	for i, p := range region {
		xs[i] = p.x
		ys[i] = p.y
	}
	return append(fills, Fill{Xs: xs, Ys: ys, Style: style, Name: name})
}
