package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// FigureConfiguration holds the kind-independent chrome of a graph plus the
// backend pass-through parameters. The engine copies OutputFile, Width,
// Height and Interactive verbatim into the emitted layout and never
// interprets them; they belong to the downstream plotting backend.
type FigureConfiguration struct {
	// Title is the graph title.
	Title string `json:"title,omitempty" toml:"title"`
	// ShowLegend displays the trace legend.
	ShowLegend bool `json:"show_legend,omitempty" toml:"show_legend"`
	// ShowGrid displays background grid lines.
	ShowGrid bool `json:"show_grid,omitempty" toml:"show_grid"`

	// Pass-through parameters for the plotting backend.
	OutputFile  string   `json:"output_file,omitempty" toml:"output_file"`
	Width       *float64 `json:"width,omitempty" toml:"width"`
	Height      *float64 `json:"height,omitempty" toml:"height"`
	Interactive bool     `json:"interactive,omitempty" toml:"interactive"`
}

func (f *FigureConfiguration) validate(path string) *Invalid {
	if f.Width != nil && *f.Width <= 0 {
		return invalidf("%s.width: %s is not positive", path, ftoa(*f.Width))
	}
	if f.Height != nil && *f.Height <= 0 {
		return invalidf("%s.height: %s is not positive", path, ftoa(*f.Height))
	}
	return nil
}

// validateArrayLen checks an optional parallel array against the primary
// coordinate array's length.
func validateArrayLen(path string, n int, primaryPath string, primary int) *Invalid {
	if n != primary {
		return invalidf("%s: %d entries do not match %s: %d entries", path, n, primaryPath, primary)
	}
	return nil
}

// validateColorValues checks a data color field against its palette:
//   - with no palette, named values must be valid colors
//   - with a categorical palette, named values must be palette members
//     and numeric values are rejected
//   - with a continuous or built-in palette, values must be numeric
//
// The empty sentinel is exempt everywhere: it hides the element.
func validateColorValues(path string, values []color.Value, palette *color.Palette) *Invalid {
	categorical := palette != nil && palette.Kind() == color.PaletteCategorical
	continuous := palette != nil && !categorical

	for i, v := range values {
		switch v.Kind() {
		case color.KindEmpty:
			// Hidden element, always allowed.

		case color.KindNamed:
			if categorical {
				if _, ok := palette.Lookup(v.Name()); !ok {
					return invalidf("%s[%d]: the value: %s is not in the categorical color palette",
						path, i, v.Name())
				}
			} else if continuous {
				return invalidf("%s[%d]: the value: %s is not numeric (continuous color palette)",
					path, i, v.Name())
			} else if !color.IsConcreteColor(v.Name()) {
				return invalidf("%s[%d]: invalid color: %s", path, i, v.Name())
			}

		case color.KindNumeric:
			if categorical {
				return invalidf("%s[%d]: the value: %s is not a label in the categorical color palette",
					path, i, v.String())
			}
		}
	}
	return nil
}

// validateSizes checks a data size field: entries must be non-negative;
// exactly zero is the "do not draw" sentinel, not a drawing instruction.
func validateSizes(path string, sizes []float64) *Invalid {
	for i, s := range sizes {
		if s < 0 {
			return invalidf("%s[%d]: %s is negative", path, i, ftoa(s))
		}
	}
	return nil
}

// validateSameScaleKind rejects diagonal bands over mixed-linearity axes.
func validateSameScaleKind(path string, xAxis, yAxis *AxisConfig, diagonal *BandsConfig) *Invalid {
	if diagonal.Exists() && xAxis.IsLog() != yAxis.IsLog() {
		return invalidf("%s: diagonal bands over a combination of linear and log scale axes", path)
	}
	return nil
}
