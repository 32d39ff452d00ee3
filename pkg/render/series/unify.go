package series

import (
	"math"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/errors"
)

// Unify merges independently-sampled line series onto one shared x-grid so
// that stacking can sum them at every visually relevant x-coordinate, not
// just at each series' own samples.
//
// # Algorithm
//
// Each series keeps a read cursor. The globally smallest unread x across all
// series becomes the next unification point; every series contributes a
// y-value at that x — its own sample when the cursor matches exactly, a
// linear interpolation between its neighboring samples otherwise, and zero
// before its first or after its last sample (the zero boundary sample acts
// as the series' crossing onto and off the grid). Cursors whose x matched
// advance, and the loop ends when every series is exhausted.
//
// The unified x-grid is non-decreasing and every unified series has exactly
// one y per grid point.
func Unify(xs, ys [][]float64) ([]float64, [][]float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput,
			"series x and y counts differ: %d vs %d", len(xs), len(ys))
	}
	for s := range xs {
		if len(xs[s]) != len(ys[s]) {
			return nil, nil, errors.New(errors.ErrCodeInvalidInput,
				"series %d: xs and ys lengths differ: %d vs %d", s, len(xs[s]), len(ys[s]))
		}
	}

	cursors := make([]int, len(xs))
	unifiedYs := make([][]float64, len(xs))
	var unifiedXs []float64

	for {
		u := math.Inf(1)
		exhausted := true
		for s := range xs {
			if cursors[s] < len(xs[s]) && xs[s][cursors[s]] < u {
				u = xs[s][cursors[s]]
				exhausted = false
			}
		}
		if exhausted {
			break
		}

		unifiedXs = append(unifiedXs, u)
		for s := range xs {
			unifiedYs[s] = append(unifiedYs[s], valueAt(xs[s], ys[s], cursors[s], u))
		}
		for s := range xs {
			if cursors[s] < len(xs[s]) && xs[s][cursors[s]] == u {
				cursors[s]++
			}
		}
	}
	return unifiedXs, unifiedYs, nil
}

// valueAt evaluates one series at the unification point u given its cursor:
// the exact sample when the cursor matches, zero outside the series' sampled
// range, and a linear interpolation between the neighboring samples inside.
func valueAt(xs, ys []float64, cursor int, u float64) float64 {
	if cursor < len(xs) && xs[cursor] == u {
		return ys[cursor]
	}
	if cursor == 0 || cursor >= len(xs) {
		return 0
	}
	x0, y0 := xs[cursor-1], ys[cursor-1]
	x1, y1 := xs[cursor], ys[cursor]
	if x1 == x0 {
		return y0
	}
	return y0 + (u-x0)*(y1-y0)/(x1-x0)
}

// Stack accumulates unified series for stacked rendering. Series must
// already share one x-grid (all equal length). Each output series is the
// running sum of itself and every series before it; StackingFractions
// additionally divides by the per-point total and StackingPercents scales
// the fraction by 100. StackingNone returns the input unchanged.
func Stack(ys [][]float64, mode chart.Stacking) [][]float64 {
	if mode == chart.StackingNone || len(ys) == 0 {
		return ys
	}

	n := len(ys[0])
	out := make([][]float64, len(ys))
	running := make([]float64, n)
	for s := range ys {
		out[s] = make([]float64, n)
		for i, v := range ys[s] {
			running[i] += v
			out[s][i] = running[i]
		}
	}

	if mode == chart.StackingFractions || mode == chart.StackingPercents {
		unit := 1.0
		if mode == chart.StackingPercents {
			unit = 100
		}
		for s := range out {
			for i := range out[s] {
				if running[i] == 0 {
					out[s][i] = 0
					continue
				}
				out[s][i] = unit * out[s][i] / running[i]
			}
		}
	}
	return out
}
