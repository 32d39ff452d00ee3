package render

import (
	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/errors"
)

// Build renders a validated graph into a figure: the ordered trace list
// plus the layout descriptor. It dispatches on the graph's kind with an
// exhaustive switch over the closed variant.
//
// Build panics (via chart.MustValid) when the graph fails validation: by
// the time rendering starts the caller was expected to have surfaced
// validation errors already, so an invalid graph here is a programming
// error, not a data error.
func Build(g chart.Graph) (*Figure, error) {
	chart.MustValid(g)

	switch g := g.(type) {
	case *chart.PointsGraph:
		return buildPoints(g)
	case *chart.GridGraph:
		return buildGrid(g)
	case *chart.LineGraph:
		return buildLine(g)
	case *chart.LinesGraph:
		return buildLines(g)
	case *chart.CdfGraph:
		return buildCdf(g)
	case *chart.CdfsGraph:
		return buildCdfs(g)
	case *chart.BarGraph:
		return buildBar(g)
	case *chart.BarsGraph:
		return buildBars(g)
	case *chart.DistributionGraph:
		return buildDistribution(g)
	case *chart.DistributionsGraph:
		return buildDistributions(g)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"unsupported graph kind: %s", g.Kind())
	}
}

// baseLayout copies the kind-independent figure chrome and the backend
// pass-through parameters into a layout.
func baseLayout(cfg *chart.FigureConfiguration) Layout {
	return Layout{
		Title:      cfg.Title,
		ShowLegend: cfg.ShowLegend,
		ShowGrid:   cfg.ShowGrid,
		Export: Export{
			OutputFile:  cfg.OutputFile,
			Width:       cfg.Width,
			Height:      cfg.Height,
			Interactive: cfg.Interactive,
		},
	}
}

// axisLayout converts an axis configuration into its layout descriptor.
func axisLayout(cfg *chart.AxisConfig, title string) Axis {
	kind := AxisLinear
	if cfg.IsLog() {
		kind = AxisLog
	}
	return Axis{
		Title:   title,
		Kind:    kind,
		Minimum: cfg.Minimum,
		Maximum: cfg.Maximum,
	}
}
