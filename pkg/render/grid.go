package render

import "github.com/tracekit/tracekit/pkg/chart"

// buildGrid renders a grid scatter graph: the cells flatten into marker
// positions at every (column, row) cross and then render exactly like
// points, including the categorical split and the border ring layer.
// Column and row names become explicit axis ticks.
func buildGrid(g *chart.GridGraph) (*Figure, error) {
	cfg := &g.Configuration
	fig := &Figure{Layout: baseLayout(&cfg.Figure)}
	fig.Layout.XAxis = axisLayout(&cfg.XAxis, "")
	fig.Layout.YAxis = axisLayout(&cfg.YAxis, "")

	if g.Data.ColumnNames != nil {
		fig.Layout.XAxis.TickPositions = g.Data.Xs
		fig.Layout.XAxis.TickLabels = g.Data.ColumnNames
	}
	if g.Data.RowNames != nil {
		fig.Layout.YAxis.TickPositions = g.Data.Ys
		fig.Layout.YAxis.TickLabels = g.Data.RowNames
	}

	// Cell arrays are row-major: cell (col, row) sits at row*len(Xs)+col.
	cells := g.Data.Cells()
	xs := make([]float64, 0, cells)
	ys := make([]float64, 0, cells)
	for _, y := range g.Data.Ys {
		for _, x := range g.Data.Xs {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	primary, primaryAxis := buildMarkers(markerLayer{
		xs:      xs,
		ys:      ys,
		hovers:  g.Data.Hovers,
		colors:  g.Data.Colors,
		sizes:   g.Data.Sizes,
		style:   &cfg.Style,
		axisRef: ColorAxisPrimary,
	})
	fig.Traces = append(fig.Traces, primary...)
	fig.Layout.PrimaryColorAxis = primaryAxis

	// Grid data carries no border color array; the ring layer draws with
	// the border style's fixed color over the same visibility as the cells.
	if cfg.Border.Color != "" || cfg.Border.Size != nil {
		border, borderAxis := buildMarkers(markerLayer{
			xs:      xs,
			ys:      ys,
			sizes:   g.Data.Sizes,
			style:   &cfg.Border,
			axisRef: ColorAxisBorder,
			ring:    true,
		})
		fig.Traces = append(fig.Traces, border...)
		fig.Layout.BorderColorAxis = borderAxis
	}
	return fig, nil
}
