package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// DistributionData is the sampled data of a distribution graph: the raw
// values whose distribution is summarized.
type DistributionData struct {
	Values []float64 `json:"values" toml:"values"`
	// Name labels the distribution.
	Name string `json:"name,omitempty" toml:"name"`
}

func (d *DistributionData) validate(path string) *Invalid {
	if len(d.Values) == 0 {
		return invalidf("%s.values: no values", path)
	}
	return nil
}

// DistributionStyle selects which distribution shapes are drawn. At least
// one of box, violin and curve must be shown; a curve is the positive half
// of a violin, so the two are mutually exclusive.
type DistributionStyle struct {
	// ShowBox draws a box-and-whiskers summary.
	ShowBox bool `json:"show_box,omitempty" toml:"show_box"`
	// ShowViolin draws a kernel density outline mirrored around the axis.
	ShowViolin bool `json:"show_violin,omitempty" toml:"show_violin"`
	// ShowCurve draws the positive half of the violin.
	ShowCurve bool `json:"show_curve,omitempty" toml:"show_curve"`
	// Color fills the drawn shapes.
	Color string `json:"color,omitempty" toml:"color"`
}

func (s *DistributionStyle) validate(path string) *Invalid {
	if !s.ShowBox && !s.ShowViolin && !s.ShowCurve {
		return invalidf("%s: must show at least one of: box, violin, curve", path)
	}
	if s.ShowViolin && s.ShowCurve {
		return invalidf("%s: can't show both violin and curve", path)
	}
	if !color.IsColor(s.Color) {
		return invalidf("%s.color: invalid color: %s", path, s.Color)
	}
	return nil
}

// DistributionConfiguration configures a distribution graph.
type DistributionConfiguration struct {
	Figure FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	// ValueAxis is the axis the values are plotted along.
	ValueAxis AxisConfig        `json:"value_axis,omitempty" toml:"value_axis"`
	Style     DistributionStyle `json:"style,omitempty" toml:"style"`
	// Horizontal plots the values along the x axis instead of the y axis.
	Horizontal bool `json:"horizontal,omitempty" toml:"horizontal"`
	// ValueBands partition the value axis.
	ValueBands BandsConfig `json:"value_bands,omitempty" toml:"value_bands"`
}

func (c *DistributionConfiguration) validate(path string) *Invalid {
	if invalid := c.Figure.validate(path + ".figure"); invalid != nil {
		return invalid
	}
	if invalid := c.ValueAxis.validate(path + ".value_axis"); invalid != nil {
		return invalid
	}
	if invalid := c.Style.validate(path + ".style"); invalid != nil {
		return invalid
	}
	return c.ValueBands.validate(path+".value_bands", c.ValueAxis.IsLog())
}

// DistributionGraph pairs one distribution with its configuration.
type DistributionGraph struct {
	Data          DistributionData          `json:"data" toml:"data"`
	Configuration DistributionConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *DistributionGraph) Kind() GraphKind { return KindDistribution }

// Validate implements Graph.
func (g *DistributionGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	return g.Data.validate("data")
}

// DistributionsData is a set of distributions drawn side by side.
type DistributionsData struct {
	Series []DistributionData `json:"series" toml:"series"`
	// Colors are per-distribution colors; empty hides the distribution.
	Colors []string `json:"colors,omitempty" toml:"colors"`
}

// DistributionsGraph pairs multiple distributions with a shared
// configuration.
type DistributionsGraph struct {
	Data          DistributionsData         `json:"data" toml:"data"`
	Configuration DistributionConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *DistributionsGraph) Kind() GraphKind { return KindDistributions }

// Validate implements Graph.
func (g *DistributionsGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	if len(g.Data.Series) == 0 {
		return invalidf("data.series: no distributions")
	}
	for i, s := range g.Data.Series {
		if invalid := s.validate(invalidPathIndex("data.series", i)); invalid != nil {
			return invalid
		}
	}
	if g.Data.Colors != nil {
		if invalid := validateArrayLen("data.colors", len(g.Data.Colors), "data.series", len(g.Data.Series)); invalid != nil {
			return invalid
		}
		for i, c := range g.Data.Colors {
			if !color.IsColor(c) {
				return invalidf("data.colors[%d]: invalid color: %s", i, c)
			}
		}
	}
	return nil
}
