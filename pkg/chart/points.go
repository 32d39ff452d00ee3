package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// Edge connects two points of a points graph by index (0-based).
type Edge struct {
	From int `json:"from" toml:"from"`
	To   int `json:"to" toml:"to"`
}

// PointsData is the sampled data of a points (scatter) graph. Xs and Ys are
// the primary arrays; every other array is optional and, when present, must
// match their length. A zero size or an empty color hides the point.
type PointsData struct {
	Xs []float64 `json:"xs" toml:"xs"`
	Ys []float64 `json:"ys" toml:"ys"`
	// Colors color each point: a color string, a categorical label, a
	// number for a continuous scale, or empty to hide the point.
	Colors []color.Value `json:"colors,omitempty" toml:"colors"`
	// BorderColors color each point's border ring on an independent
	// color axis.
	BorderColors []color.Value `json:"border_colors,omitempty" toml:"border_colors"`
	// Sizes are per-point diameters (or scale inputs). Zero hides the point.
	Sizes []float64 `json:"sizes,omitempty" toml:"sizes"`
	// BorderSizes are per-point border ring widths. Zero hides the border.
	BorderSizes []float64 `json:"border_sizes,omitempty" toml:"border_sizes"`
	// Hovers are per-point hover texts.
	Hovers []string `json:"hovers,omitempty" toml:"hovers"`
	// Edges connect point pairs.
	Edges []Edge `json:"edges,omitempty" toml:"edges"`
	// EdgeColors color each edge on its own color axis.
	EdgeColors []color.Value `json:"edge_colors,omitempty" toml:"edge_colors"`
}

// EdgeStyle controls how point-to-point edges are drawn.
type EdgeStyle struct {
	// Color is the fixed edge color, used when the data carries no
	// per-edge colors.
	Color string `json:"color,omitempty" toml:"color"`
	// Width is the edge stroke width.
	Width *float64 `json:"width,omitempty" toml:"width"`
	// Palette resolves per-edge color values.
	Palette *color.Palette `json:"color_palette,omitempty" toml:"color_palette"`
	// ColorScale maps numeric per-edge colors onto the palette.
	ColorScale ScaleConfig `json:"color_scale,omitempty" toml:"color_scale"`
}

func (s *EdgeStyle) validate(path string) *Invalid {
	if !color.IsColor(s.Color) {
		return invalidf("%s.color: invalid color: %s", path, s.Color)
	}
	if s.Width != nil && *s.Width <= 0 {
		return invalidf("%s.width: %s is not positive", path, ftoa(*s.Width))
	}
	if invalid := s.ColorScale.validate(path + ".color_scale"); invalid != nil {
		return invalid
	}
	if s.Palette != nil {
		if msg := s.Palette.Validate(); msg != "" {
			return invalidf("%s.color_palette: %s", path, msg)
		}
		if s.Palette.Kind() == color.PaletteCategorical && s.ColorScale.ReverseScale {
			return invalidf("%s.color_scale.reverse_scale: a categorical color palette cannot be reversed", path)
		}
	}
	return nil
}

// PointsConfiguration configures a points graph.
type PointsConfiguration struct {
	Figure FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	XAxis  AxisConfig          `json:"x_axis,omitempty" toml:"x_axis"`
	YAxis  AxisConfig          `json:"y_axis,omitempty" toml:"y_axis"`
	// Style is the primary marker style.
	Style PointsStyle `json:"style,omitempty" toml:"style"`
	// Border styles the marker border rings on an independent color axis,
	// so a point can encode two attributes at once.
	Border PointsStyle `json:"border,omitempty" toml:"border"`
	// Edges styles the point-to-point edges.
	Edges EdgeStyle `json:"edges,omitempty" toml:"edges"`
	// VerticalBands partition the x range, HorizontalBands the y range,
	// and DiagonalBands the region around the y = x line.
	VerticalBands   BandsConfig `json:"vertical_bands,omitempty" toml:"vertical_bands"`
	HorizontalBands BandsConfig `json:"horizontal_bands,omitempty" toml:"horizontal_bands"`
	DiagonalBands   BandsConfig `json:"diagonal_bands,omitempty" toml:"diagonal_bands"`
}

func (c *PointsConfiguration) validate(path string) *Invalid {
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
	if invalid := c.Border.validate(path + ".border"); invalid != nil {
		return invalid
	}
	if invalid := c.Edges.validate(path + ".edges"); invalid != nil {
		return invalid
	}
	if invalid := c.VerticalBands.validate(path+".vertical_bands", c.XAxis.IsLog()); invalid != nil {
		return invalid
	}
	if invalid := c.HorizontalBands.validate(path+".horizontal_bands", c.YAxis.IsLog()); invalid != nil {
		return invalid
	}
	if invalid := validateSameScaleKind(path+".diagonal_bands", &c.XAxis, &c.YAxis, &c.DiagonalBands); invalid != nil {
		return invalid
	}
	return c.DiagonalBands.validate(path+".diagonal_bands", c.XAxis.IsLog() && c.YAxis.IsLog())
}

// PointsGraph pairs points data with its configuration.
type PointsGraph struct {
	Data          PointsData          `json:"data" toml:"data"`
	Configuration PointsConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *PointsGraph) Kind() GraphKind { return KindPoints }

// Validate implements Graph. Children are validated before the cross-object
// checks (palette membership, edge indices).
func (g *PointsGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}

	n := len(g.Data.Xs)
	if invalid := validateArrayLen("data.ys", len(g.Data.Ys), "data.xs", n); invalid != nil {
		return invalid
	}
	if g.Data.Colors != nil {
		if invalid := validateArrayLen("data.colors", len(g.Data.Colors), "data.xs", n); invalid != nil {
			return invalid
		}
	}
	if g.Data.BorderColors != nil {
		if invalid := validateArrayLen("data.border_colors", len(g.Data.BorderColors), "data.xs", n); invalid != nil {
			return invalid
		}
	}
	if g.Data.Sizes != nil {
		if invalid := validateArrayLen("data.sizes", len(g.Data.Sizes), "data.xs", n); invalid != nil {
			return invalid
		}
	}
	if g.Data.BorderSizes != nil {
		if invalid := validateArrayLen("data.border_sizes", len(g.Data.BorderSizes), "data.xs", n); invalid != nil {
			return invalid
		}
	}
	if g.Data.Hovers != nil {
		if invalid := validateArrayLen("data.hovers", len(g.Data.Hovers), "data.xs", n); invalid != nil {
			return invalid
		}
	}
	if g.Data.EdgeColors != nil {
		if invalid := validateArrayLen("data.edge_colors", len(g.Data.EdgeColors), "data.edges", len(g.Data.Edges)); invalid != nil {
			return invalid
		}
	}

	if invalid := validateColorValues("data.colors", g.Data.Colors, g.Configuration.Style.Palette); invalid != nil {
		return invalid
	}
	if invalid := validateColorValues("data.border_colors", g.Data.BorderColors, g.Configuration.Border.Palette); invalid != nil {
		return invalid
	}
	if invalid := validateColorValues("data.edge_colors", g.Data.EdgeColors, g.Configuration.Edges.Palette); invalid != nil {
		return invalid
	}
	if invalid := validateSizes("data.sizes", g.Data.Sizes); invalid != nil {
		return invalid
	}
	if invalid := validateSizes("data.border_sizes", g.Data.BorderSizes); invalid != nil {
		return invalid
	}

	for i, e := range g.Data.Edges {
		if e.From < 0 || e.From >= n {
			return invalidf("data.edges[%d].from: %d is out of range (0..%d)", i, e.From, n-1)
		}
		if e.To < 0 || e.To >= n {
			return invalidf("data.edges[%d].to: %d is out of range (0..%d)", i, e.To, n-1)
		}
		if e.From == e.To {
			return invalidf("data.edges[%d]: from and to are the same point: %d", i, e.From)
		}
	}
	return nil
}
