package scale

import (
	"fmt"
	"math"

	"github.com/tracekit/tracekit/pkg/chart"
)

// maxLabeledTicks is the largest tick count for which the intermediate
// (2x/5x) ticks still carry labels; beyond it they stay blank to avoid
// visual clutter. Decade-boundary ticks are always labeled.
const maxLabeledTicks = 7

// tickEpsilon absorbs float rounding when trimming ticks at the range ends.
const tickEpsilon = 1e-9

// LogTicks generates colorbar tick positions and labels for a logarithmic
// color scale. It is used only when the scale is shown and log-regularized.
//
// Positions are emitted in log space (k + log10(multiplier)), matching the
// log10(v + reg) values the backend colors by; labels show the data-space
// decade. Each decade contributes three ticks: the boundary 10^k plus
// 2·10^k and 5·10^k. A 2.15x step would divide a decade into three exactly,
// but 2x and 5x are close enough and conventional. Ticks outside
// [cMin, cMax] are trimmed from both ends; if the whole range rounds onto a
// single decade boundary, no ticks are produced at all.
func LogTicks(values []float64, cfg *chart.ScaleConfig) (positions []float64, labels []string) {
	if !cfg.IsLog() || len(values) == 0 {
		return nil, nil
	}
	reg := *cfg.LogRegularization

	lo, hi := resolveBounds(values, cfg.Minimum, cfg.Maximum)
	cMin := math.Log10(lo + reg)
	cMax := math.Log10(hi + reg)

	intMin := int(math.Floor(cMin))
	intMax := int(math.Ceil(cMax))
	if intMin == intMax {
		return nil, nil
	}

	type tick struct {
		position float64
		decade   int
		mult     int
	}
	var ticks []tick
	for k := intMin; k < intMax; k++ {
		for _, mult := range []int{1, 2, 5} {
			ticks = append(ticks, tick{
				position: float64(k) + math.Log10(float64(mult)),
				decade:   k,
				mult:     mult,
			})
		}
	}
	ticks = append(ticks, tick{position: float64(intMax), decade: intMax, mult: 1})

	kept := ticks[:0]
	for _, t := range ticks {
		if t.position < cMin-tickEpsilon || t.position > cMax+tickEpsilon {
			continue
		}
		kept = append(kept, t)
	}

	labelIntermediates := len(kept) <= maxLabeledTicks
	positions = make([]float64, len(kept))
	labels = make([]string, len(kept))
	for i, t := range kept {
		positions[i] = t.position
		if t.mult == 1 {
			labels[i] = fmt.Sprintf("1e%d", t.decade)
		} else if labelIntermediates {
			labels[i] = fmt.Sprintf("%de%d", t.mult, t.decade)
		}
	}
	return positions, labels
}
