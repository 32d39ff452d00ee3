package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// LineStyle controls how a line series is drawn.
type LineStyle struct {
	// Color strokes the line (and fills under it when IsFilled).
	Color string `json:"color,omitempty" toml:"color"`
	// Width is the stroke width.
	Width *float64 `json:"width,omitempty" toml:"width"`
	// IsDashed strokes the line dashed.
	IsDashed bool `json:"is_dashed,omitempty" toml:"is_dashed"`
	// IsFilled fills the area between the line and the axis (or the
	// previous series when stacking).
	IsFilled bool `json:"is_filled,omitempty" toml:"is_filled"`
}

func (s *LineStyle) validate(path string) *Invalid {
	if !color.IsColor(s.Color) {
		return invalidf("%s.color: invalid color: %s", path, s.Color)
	}
	if s.Width != nil && *s.Width <= 0 {
		return invalidf("%s.width: %s is not positive", path, ftoa(*s.Width))
	}
	return nil
}

// Stacking selects how multiple line series combine vertically.
type Stacking string

// Stacking modes.
const (
	// StackingNone draws each series independently.
	StackingNone Stacking = ""
	// StackingValues stacks series by cumulative sum.
	StackingValues Stacking = "stack"
	// StackingFractions stacks and normalizes each x to sum to 1.
	StackingFractions Stacking = "fraction"
	// StackingPercents stacks and normalizes each x to sum to 100.
	StackingPercents Stacking = "percent"
)

func (s Stacking) validate(path string) *Invalid {
	switch s {
	case StackingNone, StackingValues, StackingFractions, StackingPercents:
		return nil
	default:
		return invalidf("%s: unknown stacking: %s", path, string(s))
	}
}

// LineData is one sampled line series. Xs must be non-decreasing.
type LineData struct {
	Xs []float64 `json:"xs" toml:"xs"`
	Ys []float64 `json:"ys" toml:"ys"`
	// Name labels the series in the legend.
	Name string `json:"name,omitempty" toml:"name"`
}

func (d *LineData) validate(path string) *Invalid {
	if invalid := validateArrayLen(path+".ys", len(d.Ys), path+".xs", len(d.Xs)); invalid != nil {
		return invalid
	}
	for i := 1; i < len(d.Xs); i++ {
		if d.Xs[i] < d.Xs[i-1] {
			return invalidf("%s.xs[%d]: %s is less than the previous value: %s",
				path, i, ftoa(d.Xs[i]), ftoa(d.Xs[i-1]))
		}
	}
	return nil
}

// LineConfiguration configures a single line graph.
type LineConfiguration struct {
	Figure FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	XAxis  AxisConfig          `json:"x_axis,omitempty" toml:"x_axis"`
	YAxis  AxisConfig          `json:"y_axis,omitempty" toml:"y_axis"`
	Style  LineStyle           `json:"style,omitempty" toml:"style"`
	// VerticalBands partition the x range, HorizontalBands the y range.
	VerticalBands   BandsConfig `json:"vertical_bands,omitempty" toml:"vertical_bands"`
	HorizontalBands BandsConfig `json:"horizontal_bands,omitempty" toml:"horizontal_bands"`
}

func (c *LineConfiguration) validate(path string) *Invalid {
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
	if invalid := c.VerticalBands.validate(path+".vertical_bands", c.XAxis.IsLog()); invalid != nil {
		return invalid
	}
	return c.HorizontalBands.validate(path+".horizontal_bands", c.YAxis.IsLog())
}

// LineGraph pairs one line series with its configuration.
type LineGraph struct {
	Data          LineData          `json:"data" toml:"data"`
	Configuration LineConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *LineGraph) Kind() GraphKind { return KindLine }

// Validate implements Graph.
func (g *LineGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	return g.Data.validate("data")
}

// LinesData is a set of independently sampled line series.
type LinesData struct {
	Series []LineData `json:"series" toml:"series"`
	// Colors are per-series colors; empty hides the series.
	Colors []string `json:"colors,omitempty" toml:"colors"`
}

// LinesConfiguration configures a multi-line graph.
type LinesConfiguration struct {
	Figure FigureConfiguration `json:"figure,omitempty" toml:"figure"`
	XAxis  AxisConfig          `json:"x_axis,omitempty" toml:"x_axis"`
	YAxis  AxisConfig          `json:"y_axis,omitempty" toml:"y_axis"`
	Style  LineStyle           `json:"style,omitempty" toml:"style"`
	// Stacking combines the series vertically; StackingNone overlays them.
	Stacking Stacking `json:"stacking,omitempty" toml:"stacking"`
	// VerticalBands partition the x range, HorizontalBands the y range.
	VerticalBands   BandsConfig `json:"vertical_bands,omitempty" toml:"vertical_bands"`
	HorizontalBands BandsConfig `json:"horizontal_bands,omitempty" toml:"horizontal_bands"`
}

func (c *LinesConfiguration) validate(path string) *Invalid {
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
	if invalid := c.Stacking.validate(path + ".stacking"); invalid != nil {
		return invalid
	}
	if invalid := c.VerticalBands.validate(path+".vertical_bands", c.XAxis.IsLog()); invalid != nil {
		return invalid
	}
	return c.HorizontalBands.validate(path+".horizontal_bands", c.YAxis.IsLog())
}

// LinesGraph pairs multiple line series with a shared configuration.
type LinesGraph struct {
	Data          LinesData          `json:"data" toml:"data"`
	Configuration LinesConfiguration `json:"configuration,omitempty" toml:"configuration"`
}

// Kind implements Graph.
func (g *LinesGraph) Kind() GraphKind { return KindLines }

// Validate implements Graph.
func (g *LinesGraph) Validate() *Invalid {
	if invalid := g.Configuration.validate("configuration"); invalid != nil {
		return invalid
	}
	if len(g.Data.Series) == 0 {
		return invalidf("data.series: no line series")
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
