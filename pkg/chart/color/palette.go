package color

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// Palette - closed variant over the three palette forms
// =============================================================================

// PaletteKind discriminates the variants of a Palette.
type PaletteKind int

const (
	// PaletteBuiltin names one of the built-in gradient palettes.
	PaletteBuiltin PaletteKind = iota
	// PaletteContinuous is an ordered list of (value, color) stops.
	PaletteContinuous
	// PaletteCategorical maps string labels to explicit colors. A
	// categorical palette cannot be reversed.
	PaletteCategorical
)

// Stop is one (value, color) pair of a continuous palette.
type Stop struct {
	Value float64 `json:"value" toml:"value"`
	Color string  `json:"color" toml:"color"`
}

// Entry is one (label, color) pair of a categorical palette. An empty Color
// hides every element carrying the label.
type Entry struct {
	Label string `json:"label" toml:"label"`
	Color string `json:"color" toml:"color"`
}

// Palette is a closed variant: a built-in palette name, a continuous list
// of (value, color) stops, or a categorical list of (label, color) entries.
type Palette struct {
	kind    PaletteKind
	builtin string
	stops   []Stop
	entries []Entry
}

// Builtin returns a palette referring to a built-in gradient by name.
func Builtin(name string) *Palette {
	return &Palette{kind: PaletteBuiltin, builtin: name}
}

// Continuous returns a palette of explicit (value, color) stops.
func Continuous(stops []Stop) *Palette {
	return &Palette{kind: PaletteContinuous, stops: stops}
}

// Categorical returns a palette mapping labels to colors.
func Categorical(entries []Entry) *Palette {
	return &Palette{kind: PaletteCategorical, entries: entries}
}

// Kind returns the variant discriminator.
func (p *Palette) Kind() PaletteKind { return p.kind }

// BuiltinName returns the built-in palette name.
// It panics unless Kind is PaletteBuiltin.
func (p *Palette) BuiltinName() string {
	if p.kind != PaletteBuiltin {
		panic("color.Palette.BuiltinName called on non-builtin palette")
	}
	return p.builtin
}

// Stops returns the continuous stops. For a built-in palette it expands the
// named gradient to evenly spaced stops over [0, 1]. It panics on a
// categorical palette.
func (p *Palette) Stops() []Stop {
	switch p.kind {
	case PaletteContinuous:
		return p.stops
	case PaletteBuiltin:
		return builtinStops(p.builtin)
	default:
		panic("color.Palette.Stops called on categorical palette")
	}
}

// Entries returns the categorical entries in palette order.
// It panics unless Kind is PaletteCategorical.
func (p *Palette) Entries() []Entry {
	if p.kind != PaletteCategorical {
		panic("color.Palette.Entries called on non-categorical palette")
	}
	return p.entries
}

// Lookup returns the color for a categorical label and whether the label is
// a member of the palette.
func (p *Palette) Lookup(label string) (string, bool) {
	if p.kind != PaletteCategorical {
		return "", false
	}
	for _, e := range p.entries {
		if e.Label == label {
			return e.Color, true
		}
	}
	return "", false
}

// ValueRange returns the min and max stop values of a continuous or
// built-in palette.
func (p *Palette) ValueRange() (lo, hi float64) {
	stops := p.Stops()
	lo, hi = stops[0].Value, stops[0].Value
	for _, s := range stops[1:] {
		if s.Value < lo {
			lo = s.Value
		}
		if s.Value > hi {
			hi = s.Value
		}
	}
	return lo, hi
}

// Sample blends the gradient of a continuous or built-in palette at a raw
// stop value, clamped to the palette's value range, and returns the blended
// color as a hex string. It panics on a categorical palette.
func (p *Palette) Sample(v float64) string {
	stops := p.Stops()
	if v <= stops[0].Value {
		return hexOf(stops[0].Color)
	}
	last := stops[len(stops)-1]
	if v >= last.Value {
		return hexOf(last.Color)
	}

	for i := 1; i < len(stops); i++ {
		if v > stops[i].Value {
			continue
		}
		from, _ := toColorful(stops[i-1].Color)
		to, _ := toColorful(stops[i].Color)
		t := (v - stops[i-1].Value) / (stops[i].Value - stops[i-1].Value)
		return from.BlendLuv(to, t).Hex()
	}
	return hexOf(last.Color)
}

func hexOf(s string) string {
	c, ok := toColorful(s)
	if !ok {
		return s
	}
	return c.Hex()
}

// Validate checks internal palette consistency. It returns a human-readable
// message, or "" when the palette is valid:
//   - built-in names must be known
//   - continuous palettes need >= 1 stop, strictly ascending values, and
//     valid colors
//   - categorical palettes need valid (or empty) colors and unique labels
func (p *Palette) Validate() string {
	switch p.kind {
	case PaletteBuiltin:
		if _, ok := builtinPalettes[p.builtin]; !ok {
			return fmt.Sprintf("unknown built-in color palette: %s", p.builtin)
		}

	case PaletteContinuous:
		if len(p.stops) == 0 {
			return "empty color palette"
		}
		for i, s := range p.stops {
			if !IsConcreteColor(s.Color) {
				return fmt.Sprintf("invalid color palette color: %s", s.Color)
			}
			// Strictly ascending, so the stop range can never degenerate.
			if i > 0 && s.Value <= p.stops[i-1].Value {
				return fmt.Sprintf("color palette value: %v is not larger than the previous value: %v",
					s.Value, p.stops[i-1].Value)
			}
		}

	case PaletteCategorical:
		if len(p.entries) == 0 {
			return "empty color palette"
		}
		seen := make(map[string]bool, len(p.entries))
		for _, e := range p.entries {
			if seen[e.Label] {
				return fmt.Sprintf("duplicate color palette label: %s", e.Label)
			}
			seen[e.Label] = true
			if !IsColor(e.Color) {
				return fmt.Sprintf("invalid color palette color: %s", e.Color)
			}
		}
	}
	return ""
}

// =============================================================================
// JSON wire form
// =============================================================================

// paletteJSON is the wire form of a Palette: exactly one field set.
type paletteJSON struct {
	Builtin     string  `json:"builtin,omitempty"`
	Continuous  []Stop  `json:"continuous,omitempty"`
	Categorical []Entry `json:"categorical,omitempty"`
}

// MarshalJSON emits the palette in its wire form.
func (p *Palette) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case PaletteBuiltin:
		return json.Marshal(paletteJSON{Builtin: p.builtin})
	case PaletteContinuous:
		return json.Marshal(paletteJSON{Continuous: p.stops})
	default:
		return json.Marshal(paletteJSON{Categorical: p.entries})
	}
}

// UnmarshalJSON decodes the palette wire form, requiring exactly one
// variant field to be present.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var raw paletteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	set := 0
	if raw.Builtin != "" {
		set++
	}
	if raw.Continuous != nil {
		set++
	}
	if raw.Categorical != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("color palette must set exactly one of builtin, continuous, categorical")
	}

	switch {
	case raw.Builtin != "":
		*p = *Builtin(raw.Builtin)
	case raw.Continuous != nil:
		*p = *Continuous(raw.Continuous)
	default:
		*p = *Categorical(raw.Categorical)
	}
	return nil
}

// =============================================================================
// Built-in palettes
// =============================================================================

// builtinPalettes are anchor colors for the named gradients. Stops are
// produced by blending the anchors in the perceptually uniform LUV space.
var builtinPalettes = map[string][]string{
	"viridis": {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
	"plasma":  {"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"},
	"inferno": {"#000004", "#57106e", "#bc3754", "#f98e09", "#fcffa4"},
	"magma":   {"#000004", "#51127c", "#b73779", "#fc8961", "#fcfdbf"},
	"cividis": {"#00224e", "#35456c", "#666970", "#a69d75", "#fee838"},
	"greys":   {"#ffffff", "#000000"},
	"bluered": {"#0000ff", "#ff0000"},
	"icefire": {"#bde7db", "#2332a9", "#0f0f0f", "#ae1719", "#f5e2a0"},
}

// BuiltinNames returns the sorted names of the built-in palettes.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinPalettes))
	for name := range builtinPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name refers to a built-in palette.
func IsBuiltin(name string) bool {
	_, ok := builtinPalettes[name]
	return ok
}

// builtinStops expands a built-in palette into interpolated stops over
// [0, 1]. Eight segments per anchor pair keeps the gradient smooth without
// bloating the emitted layout.
func builtinStops(name string) []Stop {
	anchors := builtinPalettes[name]
	if anchors == nil {
		return nil
	}

	const perSegment = 8
	total := (len(anchors)-1)*perSegment + 1
	stops := make([]Stop, 0, total)

	for i := 0; i+1 < len(anchors); i++ {
		from, _ := colorful.Hex(anchors[i])
		to, _ := colorful.Hex(anchors[i+1])
		for j := 0; j < perSegment; j++ {
			t := float64(j) / perSegment
			pos := (float64(i) + t) / float64(len(anchors)-1)
			stops = append(stops, Stop{Value: pos, Color: from.BlendLuv(to, t).Hex()})
		}
	}
	last := anchors[len(anchors)-1]
	stops = append(stops, Stop{Value: 1, Color: last})
	return stops
}
