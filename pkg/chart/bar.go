package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// BarData is the sampled data of a bar graph: one value per bar, with
// optional per-bar names, colors and hovers.
type BarData struct {
	Values []float64 `json:"values" toml:"values"`
	// Names label the bars along the category axis.
	Names []string `json:"names,omitempty" toml:"names"`
	// Colors color each bar; empty hides the bar.
	Colors []color.Value `json:"colors,omitempty" toml:"colors"`
	// Hovers are per-bar hover texts.
	Hovers []string `json:"hovers,omitempty" toml:"hovers"`
}

func (d *BarData) validate(path string) *Invalid {
	n := len(d.Values)
	if d.Names != nil {
		if invalid := validateArrayLen(path+".names", len(d.Names), path+".values", n); invalid != nil {
			return invalid
		}
	}
	if d.Colors != nil {
		if invalid := validateArrayLen(path+".colors", len(d.Colors), path+".values", n); invalid != nil {
			return invalid
		}
	}
	if d.Hovers != nil {
		if invalid := validateArrayLen(path+".hovers", len(d.Hovers), path+".values", n); invalid != nil {
			return invalid
		}
	}
	return nil
}

// BarConfiguration configures a bar graph.
type BarConfiguration struct {
	Figure FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	// ValueAxis is the numeric axis of the bars.
	ValueAxis AxisConfig `json:"value_axis,omitempty" toml:"value_axis"`
	// Style is the bar marker style, including the bar color axis.
	Style PointsStyle `json:"style,omitempty" toml:"style"`
	// Horizontal lays the bars out left-to-right instead of bottom-up.
	Horizontal bool `json:"horizontal,omitempty" toml:"horizontal"`
	// ValueBands partition the value axis.
	ValueBands BandsConfig `json:"value_bands,omitempty" toml:"value_bands"`
}

func (c *BarConfiguration) validate(path string) *Invalid {
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

// BarGraph pairs bar data with its configuration.
type BarGraph struct {
	Data          BarData          `json:"data" toml:"data"`
	Configuration BarConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *BarGraph) Kind() GraphKind { return KindBar }

// Validate implements Graph.
func (g *BarGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	if invalid := g.Data.validate("data"); invalid != nil {
		return invalid
	}
	return validateColorValues("data.colors", g.Data.Colors, g.Configuration.Style.Palette)
}

// BarsData is a set of bar series sharing the same categories. Every
// series must have one value per category name.
type BarsData struct {
	// Names label the shared categories.
	Names []string `json:"names,omitempty" toml:"names"`
	// Series are the grouped (or stacked) bar series.
	Series []BarData `json:"series" toml:"series"`
	// SeriesNames label the series in the legend.
	SeriesNames []string `json:"series_names,omitempty" toml:"series_names"`
}

// BarsConfiguration configures a multi-series bar graph.
type BarsConfiguration struct {
	Figure    FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	ValueAxis AxisConfig          `json:"value_axis,omitempty" toml:"value_axis"`
	Style     PointsStyle         `json:"style,omitempty" toml:"style"`
	// Stacked stacks the series instead of grouping them side by side.
	Stacked bool `json:"stacked,omitempty" toml:"stacked"`
	// Horizontal lays the bars out left-to-right instead of bottom-up.
	Horizontal bool `json:"horizontal,omitempty" toml:"horizontal"`
	// ValueBands partition the value axis.
	ValueBands BandsConfig `json:"value_bands,omitempty" toml:"value_bands"`
}

func (c *BarsConfiguration) validate(path string) *Invalid {
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

// BarsGraph pairs multiple bar series with a shared configuration.
type BarsGraph struct {
	Data          BarsData          `json:"data" toml:"data"`
	Configuration BarsConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *BarsGraph) Kind() GraphKind { return KindBars }

// Validate implements Graph.
func (g *BarsGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	if len(g.Data.Series) == 0 {
		return invalidf("data.series: no bar series")
	}
	for i, s := range g.Data.Series {
		path := invalidPathIndex("data.series", i)
		if invalid := s.validate(path); invalid != nil {
			return invalid
		}
		if g.Data.Names != nil {
			if invalid := validateArrayLen(path+".values", len(s.Values), "data.names", len(g.Data.Names)); invalid != nil {
				return invalid
			}
		}
		if invalid := validateColorValues(path+".colors", s.Colors, g.Configuration.Style.Palette); invalid != nil {
			return invalid
		}
	}
	if g.Data.SeriesNames != nil {
		if invalid := validateArrayLen("data.series_names", len(g.Data.SeriesNames), "data.series", len(g.Data.Series)); invalid != nil {
			return invalid
		}
	}
	// All series must agree on length even without explicit names.
	for i := 1; i < len(g.Data.Series); i++ {
		if invalid := validateArrayLen(
			invalidPathIndex("data.series", i)+".values", len(g.Data.Series[i].Values),
			"data.series[0].values", len(g.Data.Series[0].Values)); invalid != nil {
			return invalid
		}
	}
	return nil
}
