package render

import (
	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/render/band"
)

// bandSet is the computed band geometry of one graph, kept split so fills
// can draw under the data and lines over it.
type bandSet struct {
	fills []band.Fill
	lines []band.Line
}

func (b *bandSet) add(fills []band.Fill, lines []band.Line) {
	b.fills = append(b.fills, fills...)
	b.lines = append(b.lines, lines...)
}

// fillTraces converts the band fills into fill traces.
func (b *bandSet) fillTraces() []Trace {
	traces := make([]Trace, 0, len(b.fills))
	for _, f := range b.fills {
		traces = append(traces, Trace{
			Kind: TraceFill,
			Name: f.Name,
			Xs:   f.Xs,
			Ys:   f.Ys,
			Fill: &FillStyle{Color: f.Style.Color},
		})
	}
	return traces
}

// lineTraces converts the band lines into line traces.
func (b *bandSet) lineTraces() []Trace {
	traces := make([]Trace, 0, len(b.lines))
	for _, l := range b.lines {
		traces = append(traces, Trace{
			Kind: TraceLine,
			Name: l.Name,
			Xs:   l.Xs,
			Ys:   l.Ys,
			Line: &LineStyle{
				Color:  l.Style.Color,
				Width:  *l.Style.Width,
				Dashed: l.Style.IsDashed,
			},
		})
	}
	return traces
}

// dataBox computes the bounding box of the plotted coordinates.
func dataBox(xs, ys []float64) band.Box {
	box := band.Box{XMin: xs[0], XMax: xs[0], YMin: ys[0], YMax: ys[0]}
	for i := 1; i < len(xs); i++ {
		if xs[i] < box.XMin {
			box.XMin = xs[i]
		}
		if xs[i] > box.XMax {
			box.XMax = xs[i]
		}
	}
	for i := 1; i < len(ys); i++ {
		if ys[i] < box.YMin {
			box.YMin = ys[i]
		}
		if ys[i] > box.YMax {
			box.YMax = ys[i]
		}
	}
	return box
}

// valueBox builds the bounding box of a value-axis graph (bar, cdf,
// distribution): the values span one side, the category or fraction span
// the other, swapped for horizontal layouts.
func valueBox(valueLo, valueHi, otherLo, otherHi float64, horizontal bool) band.Box {
	if horizontal {
		return band.Box{XMin: valueLo, XMax: valueHi, YMin: otherLo, YMax: otherHi}
	}
	return band.Box{XMin: otherLo, XMax: otherHi, YMin: valueLo, YMax: valueHi}
}

// valueBands computes band geometry along the value axis of a bar, cdf or
// distribution graph: horizontal bands for vertical layouts and vice versa.
func valueBands(cfg *chart.BandsConfig, box band.Box, horizontal bool) bandSet {
	var set bandSet
	if !cfg.Exists() {
		return set
	}
	if horizontal {
		set.add(band.Vertical(cfg, box))
	} else {
		set.add(band.Horizontal(cfg, box))
	}
	return set
}
