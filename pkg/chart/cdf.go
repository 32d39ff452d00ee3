package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// CdfDirection selects which tail of the distribution a CDF accumulates.
type CdfDirection string

// CDF directions.
const (
	// CdfUpToValue plots the fraction of values up to and including each
	// value.
	CdfUpToValue CdfDirection = "up_to_value"
	// CdfDownToValue plots the fraction of values down to and including
	// each value. The fraction at the smallest value includes that value
	// itself, so before percent scaling it can reach 1 + 1/n at the first
	// point; this keeps the "down to and including" semantics.
	CdfDownToValue CdfDirection = "down_to_value"
)

func (d CdfDirection) validate(path string) *Invalid {
	switch d {
	case CdfUpToValue, CdfDownToValue:
		return nil
	case "":
		return nil // defaults to up_to_value
	default:
		return invalidf("%s: unknown cdf direction: %s", path, string(d))
	}
}

// CdfData is the sampled data of a CDF graph: the raw values to rank.
type CdfData struct {
	Values []float64 `json:"values" toml:"values"`
	// Name labels the CDF in the legend.
	Name string `json:"name,omitempty" toml:"name"`
}

func (d *CdfData) validate(path string) *Invalid {
	if len(d.Values) == 0 {
		return invalidf("%s.values: no values", path)
	}
	return nil
}

// CdfConfiguration configures a CDF graph.
type CdfConfiguration struct {
	Figure FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	// ValueAxis is the axis of the ranked values.
	ValueAxis AxisConfig `json:"value_axis,omitempty" toml:"value_axis"`
	// FractionAxis is the axis of the accumulated fraction.
	FractionAxis AxisConfig `json:"fraction_axis,omitempty" toml:"fraction_axis"`
	Style        LineStyle  `json:"style,omitempty" toml:"style"`
	// Direction selects the accumulated tail. Empty means up_to_value.
	Direction CdfDirection `json:"direction,omitempty" toml:"direction"`
	// Percent scales fractions into percents.
	Percent bool `json:"percent,omitempty" toml:"percent"`
	// ValueBands partition the value axis.
	ValueBands BandsConfig `json:"value_bands,omitempty" toml:"value_bands"`
}

func (c *CdfConfiguration) validate(path string) *Invalid {
	if invalid := c.Figure.validate(path + ".figure"); invalid != nil {
		return invalid
	}
	if invalid := c.ValueAxis.validate(path + ".value_axis"); invalid != nil {
		return invalid
	}
	if invalid := c.FractionAxis.validate(path + ".fraction_axis"); invalid != nil {
		return invalid
	}
	if invalid := c.Style.validate(path + ".style"); invalid != nil {
		return invalid
	}
	if invalid := c.Direction.validate(path + ".direction"); invalid != nil {
		return invalid
	}
	return c.ValueBands.validate(path+".value_bands", c.ValueAxis.IsLog())
}

// CdfGraph pairs one CDF with its configuration.
type CdfGraph struct {
	Data          CdfData          `json:"data" toml:"data"`
	Configuration CdfConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *CdfGraph) Kind() GraphKind { return KindCdf }

// Validate implements Graph.
func (g *CdfGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	return g.Data.validate("data")
}

// CdfsData is a set of CDFs drawn in one graph.
type CdfsData struct {
	Series []CdfData `json:"series" toml:"series"`
	// Colors are per-series colors; empty hides the series.
	Colors []string `json:"colors,omitempty" toml:"colors"`
}

// CdfsGraph pairs multiple CDFs with a shared configuration.
type CdfsGraph struct {
	Data          CdfsData         `json:"data" toml:"data"`
	Configuration CdfConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *CdfsGraph) Kind() GraphKind { return KindCdfs }

// Validate implements Graph.
func (g *CdfsGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	if len(g.Data.Series) == 0 {
		return invalidf("data.series: no cdf series")
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
