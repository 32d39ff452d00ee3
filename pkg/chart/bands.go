package chart

import "github.com/tracekit/tracekit/pkg/chart/color"

// BandStyle controls one band region of a graph. A band exists only when
// Offset is set; the remaining fields control how it is drawn.
type BandStyle struct {
	// Offset positions the band's reference line. For vertical bands this
	// is an x coordinate, for horizontal bands a y coordinate, and for
	// diagonal bands the offset from the y = x line (additive in linear
	// space, multiplicative in log space).
	Offset *float64 `json:"offset,omitempty" toml:"offset"`
	// Color fills the band region and strokes its line.
	Color string `json:"color,omitempty" toml:"color"`
	// Width is the stroke width of the band line. Nil draws no line.
	Width *float64 `json:"width,omitempty" toml:"width"`
	// IsDashed strokes the band line dashed instead of solid.
	IsDashed bool `json:"is_dashed,omitempty" toml:"is_dashed"`
	// IsFilled fills the band region.
	IsFilled bool `json:"is_filled,omitempty" toml:"is_filled"`
}

// Exists reports whether the band is configured at all.
func (b *BandStyle) Exists() bool { return b.Offset != nil }

// validate checks the style in isolation. isLog marks a log-scale context,
// where the (multiplicative) offset must be positive.
func (b *BandStyle) validate(path string, isLog bool) *Invalid {
	if b.Width != nil && *b.Width < 0 {
		return invalidf("%s.width: %s is negative", path, ftoa(*b.Width))
	}
	if !color.IsColor(b.Color) {
		return invalidf("%s.color: invalid color: %s", path, b.Color)
	}
	if isLog && b.Offset != nil && *b.Offset <= 0 {
		return invalidf("%s.offset: %s is not positive (log scale)", path, ftoa(*b.Offset))
	}
	return nil
}

// BandsConfig groups the low, middle and high bands partitioning one
// direction of a graph. Offsets must be totally ordered: low < middle <
// high whenever both sides of a comparison are set.
type BandsConfig struct {
	Low    BandStyle `json:"low,omitempty" toml:"low"`
	Middle BandStyle `json:"middle,omitempty" toml:"middle"`
	High   BandStyle `json:"high,omitempty" toml:"high"`
}

// Exists reports whether any of the three bands is configured.
func (b *BandsConfig) Exists() bool {
	return b.Low.Exists() || b.Middle.Exists() || b.High.Exists()
}

// validate checks each band style and the cross-band offset ordering.
func (b *BandsConfig) validate(path string, isLog bool) *Invalid {
	if invalid := b.Low.validate(path+".low", isLog); invalid != nil {
		return invalid
	}
	if invalid := b.Middle.validate(path+".middle", isLog); invalid != nil {
		return invalid
	}
	if invalid := b.High.validate(path+".high", isLog); invalid != nil {
		return invalid
	}

	if b.Low.Offset != nil && b.Middle.Offset != nil && *b.Low.Offset >= *b.Middle.Offset {
		return notLess(path+".low.offset", *b.Low.Offset, path+".middle.offset", *b.Middle.Offset)
	}
	if b.Middle.Offset != nil && b.High.Offset != nil && *b.Middle.Offset >= *b.High.Offset {
		return notLess(path+".middle.offset", *b.Middle.Offset, path+".high.offset", *b.High.Offset)
	}
	if b.Low.Offset != nil && b.High.Offset != nil && *b.Low.Offset >= *b.High.Offset {
		return notLess(path+".low.offset", *b.Low.Offset, path+".high.offset", *b.High.Offset)
	}
	return nil
}
