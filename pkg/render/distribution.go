package render

import (
	moremath "github.com/aclements/go-moremath/stats"
	"github.com/montanaflynn/stats"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/errors"
)

// violinSamples is the number of points the density outline is sampled at.
const violinSamples = 64

// violinHalfWidth is the maximum half-width of a violin in category slots,
// leaving a gap between neighboring distributions.
const violinHalfWidth = 0.4

// buildDistribution renders one distribution at category slot zero.
func buildDistribution(g *chart.DistributionGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	distributionAxes(fig, cfg)

	bands := distributionValueBands(cfg, g.Data.Values, 1)
	fig.Traces = append(fig.Traces, bands.fillTraces()...)

	traces, err := distributionTraces(&g.Data, cfg, 0, cfg.Style.Color)
	if err != nil {
		return nil, err
	}
	fig.Traces = append(fig.Traces, traces...)

	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// buildDistributions renders several distributions side by side, one
// category slot each; hidden series (empty color) keep their slot but draw
// nothing.
func buildDistributions(g *chart.DistributionsGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	distributionAxes(fig, cfg)

	var span []float64
	for i, s := range g.Data.Series {
		if g.Data.Colors != nil && g.Data.Colors[i] == "" {
			continue
		}
		span = append(span, s.Values...)
	}
	bands := distributionValueBands(cfg, span, len(g.Data.Series))
	fig.Traces = append(fig.Traces, bands.fillTraces()...)

	var positions []float64
	var labels []string
	for i := range g.Data.Series {
		s := &g.Data.Series[i]
		seriesColor := cfg.Style.Color
		if g.Data.Colors != nil {
			if g.Data.Colors[i] == "" {
				continue
			}
			seriesColor = g.Data.Colors[i]
		}
		traces, err := distributionTraces(s, cfg, float64(i), seriesColor)
		if err != nil {
			return nil, err
		}
		fig.Traces = append(fig.Traces, traces...)
		positions = append(positions, float64(i))
		labels = append(labels, s.Name)
	}

	// Category slots become explicit ticks named after the distributions.
	if cfg.Horizontal {
		fig.Layout.YAxis.TickPositions = positions
		fig.Layout.YAxis.TickLabels = labels
	} else {
		fig.Layout.XAxis.TickPositions = positions
		fig.Layout.XAxis.TickLabels = labels
	}

	fig.Traces = append(fig.Traces, bands.lineTraces()...)
	return fig, nil
}

// distributionAxes lays the value axis along y, or along x for horizontal
// graphs.
func distributionAxes(fig *Figure, cfg *chart.DistributionConfiguration) {
	valueAxis := axisLayout(&cfg.ValueAxis, "")
	if cfg.Horizontal {
		fig.Layout.XAxis = valueAxis
		fig.Layout.YAxis = Axis{Kind: AxisLinear}
	} else {
		fig.Layout.XAxis = Axis{Kind: AxisLinear}
		fig.Layout.YAxis = valueAxis
	}
}

// distributionTraces renders the selected shapes of one distribution at
// its category slot: the violin (or curve) first so the box draws on top
// of it.
func distributionTraces(data *chart.DistributionData, cfg *chart.DistributionConfiguration, slot float64, color string) ([]Trace, error) {
	var traces []Trace

	if cfg.Style.ShowViolin || cfg.Style.ShowCurve {
		xs, ys := densityOutline(data.Values, slot, cfg.Style.ShowViolin, cfg.Horizontal)
		trace := Trace{
			Kind: TraceLine,
			Name: data.Name,
			Xs:   xs,
			Ys:   ys,
			Line: &LineStyle{Color: color, Width: 1},
		}
		if cfg.Style.ShowViolin {
			trace.Kind = TraceFill
			trace.Line = nil
			trace.Fill = &FillStyle{Color: color}
		}
		traces = append(traces, trace)
	}

	if cfg.Style.ShowBox {
		summary, err := boxSummary(data.Values)
		if err != nil {
			return nil, err
		}
		trace := Trace{
			Kind:       TraceBox,
			Name:       data.Name,
			Horizontal: cfg.Horizontal,
			Box: &BoxStyle{
				Color:   color,
				Values:  data.Values,
				Summary: summary,
			},
		}
		// The category slot the box sits at.
		if cfg.Horizontal {
			trace.Ys = []float64{slot}
		} else {
			trace.Xs = []float64{slot}
		}
		traces = append(traces, trace)
	}
	return traces, nil
}

// boxSummary computes the five-number summary of the values.
func boxSummary(values []float64) (BoxSummary, error) {
	minimum, err := stats.Min(values)
	if err != nil {
		return BoxSummary{}, errors.Wrap(errors.ErrCodeInternal, err, "box summary")
	}
	maximum, err := stats.Max(values)
	if err != nil {
		return BoxSummary{}, errors.Wrap(errors.ErrCodeInternal, err, "box summary")
	}
	median, err := stats.Median(values)
	if err != nil {
		return BoxSummary{}, errors.Wrap(errors.ErrCodeInternal, err, "box summary")
	}
	quartiles, err := stats.Quartile(values)
	if err != nil {
		return BoxSummary{}, errors.Wrap(errors.ErrCodeInternal, err, "box summary")
	}
	return BoxSummary{
		Minimum: minimum,
		Q1:      quartiles.Q1,
		Median:  median,
		Q3:      quartiles.Q3,
		Maximum: maximum,
	}, nil
}

// densityOutline samples a Gaussian kernel density estimate of the values
// over their padded range and shapes it around the category slot: a full
// mirrored outline for a violin, or just the positive half for a curve.
// Density amplitudes are normalized so the widest point spans the slot's
// half-width.
func densityOutline(values []float64, slot float64, mirrored, horizontal bool) (xs, ys []float64) {
	sample := moremath.Sample{Xs: values}
	bandwidth := moremath.BandwidthScott(sample)
	if bandwidth <= 0 {
		// Degenerate sample (all values equal); any positive bandwidth
		// yields a sharp bump around the common value.
		bandwidth = 1
	}
	kde := moremath.KDE{Sample: sample, Bandwidth: bandwidth}

	lo, hi := sample.Bounds()
	lo -= 3 * bandwidth
	hi += 3 * bandwidth

	points := make([]float64, violinSamples)
	widths := make([]float64, violinSamples)
	maxDensity := 0.0
	for i := range points {
		points[i] = lo + (hi-lo)*float64(i)/float64(violinSamples-1)
		widths[i] = kde.PDF(points[i])
		if widths[i] > maxDensity {
			maxDensity = widths[i]
		}
	}
	if maxDensity > 0 {
		for i := range widths {
			widths[i] *= violinHalfWidth / maxDensity
		}
	}

	slots := make([]float64, 0, 2*violinSamples)
	vals := make([]float64, 0, 2*violinSamples)
	for i := range points {
		slots = append(slots, slot+widths[i])
		vals = append(vals, points[i])
	}
	if mirrored {
		for i := violinSamples - 1; i >= 0; i-- {
			slots = append(slots, slot-widths[i])
			vals = append(vals, points[i])
		}
	}

	if horizontal {
		return vals, slots
	}
	return slots, vals
}

// distributionValueBands computes band geometry along the value axis.
func distributionValueBands(cfg *chart.DistributionConfiguration, span []float64, slots int) bandSet {
	if !cfg.ValueBands.Exists() || len(span) == 0 {
		return bandSet{}
	}
	lo, hi := span[0], span[0]
	for _, v := range span[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	box := valueBox(lo, hi, -0.5, float64(slots)-0.5, cfg.Horizontal)
	return valueBands(&cfg.ValueBands, box, cfg.Horizontal)
}
