package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// GridData is the sampled data of a grid scatter graph: markers at every
// (x, y) cross of the column and row coordinates. Cell arrays are stored
// row-major (cell (col, row) at index row*len(Xs)+col) and must have
// exactly len(Xs)*len(Ys) entries.
type GridData struct {
	// Xs are the column coordinates, Ys the row coordinates.
	Xs []float64 `json:"xs" toml:"xs"`
	Ys []float64 `json:"ys" toml:"ys"`
	// Colors color each cell; empty hides the cell.
	Colors []color.Value `json:"colors,omitempty" toml:"colors"`
	// Sizes are per-cell diameters (or scale inputs). Zero hides the cell.
	Sizes []float64 `json:"sizes,omitempty" toml:"sizes"`
	// Hovers are per-cell hover texts.
	Hovers []string `json:"hovers,omitempty" toml:"hovers"`
	// ColumnNames and RowNames label the grid axes.
	ColumnNames []string `json:"column_names,omitempty" toml:"column_names"`
	RowNames    []string `json:"row_names,omitempty" toml:"row_names"`
}

// Cells returns the number of grid cells.
func (d *GridData) Cells() int { return len(d.Xs) * len(d.Ys) }

// GridConfiguration configures a grid scatter graph.
type GridConfiguration struct {
	Figure FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	XAxis  AxisConfig          `json:"x_axis,omitempty" toml:"x_axis"`
	YAxis  AxisConfig          `json:"y_axis,omitempty" toml:"y_axis"`
	// Style is the cell marker style, including the cell color axis.
	Style PointsStyle `json:"style,omitempty" toml:"style"`
	// Border styles the cell border rings on an independent color axis.
	Border PointsStyle `json:"border,omitempty" toml:"border"`
}

func (c *GridConfiguration) validate(path string) *Invalid {
	if invalid := c.Figure.validate(path + ".figure"); invalid != nil {
		return invalid
	}
	if invalid := c.XAxis.validate(path + ".x_axis"); invalid != nil {
		return invalid
	}
	if invalid := c.YAxis.validate(path + ".y_axis"); invalid != nil {
		return invalid
	}
	if invalid := c.Style.validate(path + ".style"); invalid != nil {
		return invalid
	}
	return c.Border.validate(path + ".border")
}

// GridGraph pairs grid data with its configuration.
type GridGraph struct {
	Data          GridData          `json:"data" toml:"data"`
	Configuration GridConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *GridGraph) Kind() GraphKind { return KindGrid }

// Validate implements Graph.
func (g *GridGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}

	cells := g.Data.Cells()
	if g.Data.Colors != nil {
		if invalid := validateArrayLen("data.colors", len(g.Data.Colors), "data cells", cells); invalid != nil {
			return invalid
		}
	}
	if g.Data.Sizes != nil {
		if invalid := validateArrayLen("data.sizes", len(g.Data.Sizes), "data cells", cells); invalid != nil {
			return invalid
		}
	}
	if g.Data.Hovers != nil {
		if invalid := validateArrayLen("data.hovers", len(g.Data.Hovers), "data cells", cells); invalid != nil {
			return invalid
		}
	}
	if g.Data.ColumnNames != nil {
		if invalid := validateArrayLen("data.column_names", len(g.Data.ColumnNames), "data.xs", len(g.Data.Xs)); invalid != nil {
			return invalid
		}
	}
	if g.Data.RowNames != nil {
		if invalid := validateArrayLen("data.row_names", len(g.Data.RowNames), "data.ys", len(g.Data.Ys)); invalid != nil {
			return invalid
		}
	}

	if invalid := validateColorValues("data.colors", g.Data.Colors, g.Configuration.Style.Palette); invalid != nil {
		return invalid
	}
	return validateSizes("data.sizes", g.Data.Sizes)
}
