package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// ScaleConfig controls how a numeric encoding (color or size) maps data
// values onto its visual range. The bound and log invariants are the same
// as for AxisConfig.
type ScaleConfig struct {
	// Minimum is the lower scale bound. Nil derives it from the data or
	// the palette.
	Minimum *float64 `json:"minimum,omitempty" toml:"minimum"`
	// Maximum is the upper scale bound.
	Maximum *float64 `json:"maximum,omitempty" toml:"maximum"`
	// LogRegularization switches the scale to log10(v + reg) mode.
	LogRegularization *float64 `json:"log_regularization,omitempty" toml:"log_regularization"`
	// ReverseScale flips the scale direction. Not allowed for
	// categorical palettes.
	ReverseScale bool `json:"reverse_scale,omitempty" toml:"reverse_scale"`
	// ShowScale displays the colorbar for this scale.
	ShowScale bool `json:"show_scale,omitempty" toml:"show_scale"`
}

// IsLog reports whether the scale is logarithmic.
func (s *ScaleConfig) IsLog() bool { return s.LogRegularization != nil }

// validate checks bound ordering and log positivity.
func (s *ScaleConfig) validate(path string) *Invalid {
	if invalid := validateRange(path, s.Minimum, s.Maximum); invalid != nil {
		return invalid
	}
	return validateLogRegularization(path, s.Minimum, s.Maximum, s.LogRegularization)
}

// SizeRange is the pixel range sizes are rescaled into.
type SizeRange struct {
	// Smallest is the diameter mapped to the scale minimum. Defaults to 2.
	Smallest *float64 `json:"smallest,omitempty" toml:"smallest"`
	// Largest is the diameter mapped to the scale maximum. Defaults to 10.
	Largest *float64 `json:"largest,omitempty" toml:"largest"`
}

// IsConfigured reports whether either end of the range is set.
func (r *SizeRange) IsConfigured() bool {
	return r.Smallest != nil || r.Largest != nil
}

func (r *SizeRange) validate(path string) *Invalid {
	if r.Smallest != nil && *r.Smallest <= 0 {
		return invalidf("%s.smallest: %s is not positive", path, ftoa(*r.Smallest))
	}
	if r.Largest != nil && *r.Largest <= 0 {
		return invalidf("%s.largest: %s is not positive", path, ftoa(*r.Largest))
	}
	if r.Smallest != nil && r.Largest != nil && *r.Largest <= *r.Smallest {
		return notLarger(path+".largest", *r.Largest, path+".smallest", *r.Smallest)
	}
	return nil
}

// PointsStyle controls marker appearance: a fixed color or a color scale
// with a palette, and a fixed size or a size scale with a pixel range.
type PointsStyle struct {
	// Color is the fixed marker color, used when the data carries no
	// per-point colors.
	Color string `json:"color,omitempty" toml:"color"`
	// ColorScale maps numeric per-point colors onto the palette.
	ColorScale ScaleConfig `json:"color_scale,omitempty" toml:"color_scale"`
	// Palette resolves per-point color values. Nil uses the backend's
	// default gradient for numeric values.
	Palette *color.Palette `json:"color_palette,omitempty" toml:"color_palette"`
	// Size is the fixed marker diameter in pixels.
	Size *float64 `json:"size,omitempty" toml:"size"`
	// SizeScale maps numeric per-point sizes onto SizeRange.
	SizeScale ScaleConfig `json:"size_scale,omitempty" toml:"size_scale"`
	// SizeRange is the pixel range for scaled sizes.
	SizeRange SizeRange `json:"size_range,omitempty" toml:"size_range"`
}

// validate checks the style and its nested scales and palette.
func (s *PointsStyle) validate(path string) *Invalid {
	if invalid := s.ColorScale.validate(path + ".color_scale"); invalid != nil {
		return invalid
	}
	if invalid := s.SizeScale.validate(path + ".size_scale"); invalid != nil {
		return invalid
	}
	if invalid := s.SizeRange.validate(path + ".size_range"); invalid != nil {
		return invalid
	}
	if !color.IsColor(s.Color) {
		return invalidf("%s.color: invalid color: %s", path, s.Color)
	}
	if s.Size != nil && *s.Size <= 0 {
		return invalidf("%s.size: %s is not positive", path, ftoa(*s.Size))
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
