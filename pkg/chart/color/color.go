// Package color implements color validation and palette handling for the
// rendering engine.
//
// Colors arrive from callers as CSS-style strings: a named color ("red",
// "steelblue"), a hex form ("#ff0000", "#f00"), or a functional form
// ("rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)"). The empty string is a valid
// value everywhere a color is accepted and means "do not draw this element".
//
// Data color fields can also be numeric (mapped through a continuous
// palette). The Value type resolves the string-or-number union once, at
// validation time, so downstream code never branches on runtime type again.
package color

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// =============================================================================
// Color string validation
// =============================================================================

// IsColor reports whether s names a valid color. The empty string is
// accepted as the "hidden" sentinel.
func IsColor(s string) bool {
	if s == "" {
		return true
	}
	return isConcreteColor(s)
}

// IsConcreteColor reports whether s names a valid, drawable color.
// Unlike IsColor it rejects the empty string.
func IsConcreteColor(s string) bool {
	return s != "" && isConcreteColor(s)
}

func isConcreteColor(s string) bool {
	name := strings.ToLower(strings.TrimSpace(s))

	if _, ok := colornames.Map[name]; ok {
		return true
	}
	if strings.HasPrefix(name, "#") {
		_, err := colorful.Hex(normalizeHex(name))
		return err == nil
	}
	if strings.HasPrefix(name, "rgb(") || strings.HasPrefix(name, "rgba(") {
		return parseRGBFunc(name)
	}
	return false
}

// normalizeHex expands the #rgb shorthand to #rrggbb, which is the only hex
// form colorful.Hex accepts.
func normalizeHex(s string) string {
	if len(s) == 4 {
		return "#" + strings.Repeat(string(s[1]), 2) +
			strings.Repeat(string(s[2]), 2) +
			strings.Repeat(string(s[3]), 2)
	}
	return s
}

// toColorful converts a valid color string into a colorful.Color for
// blending. The alpha channel of rgba() forms is dropped.
func toColorful(s string) (colorful.Color, bool) {
	name := strings.ToLower(strings.TrimSpace(s))

	if rgba, ok := colornames.Map[name]; ok {
		return colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}, true
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(normalizeHex(name))
		return c, err == nil
	}
	if strings.HasPrefix(name, "rgb(") || strings.HasPrefix(name, "rgba(") {
		if !parseRGBFunc(name) {
			return colorful.Color{}, false
		}
		parts := strings.Split(name[strings.IndexByte(name, '(')+1:len(name)-1], ",")
		channel := func(i int) float64 {
			v, _ := strconv.Atoi(strings.TrimSpace(parts[i]))
			return float64(v) / 255
		}
		return colorful.Color{R: channel(0), G: channel(1), B: channel(2)}, true
	}
	return colorful.Color{}, false
}

// parseRGBFunc validates an rgb(r, g, b) or rgba(r, g, b, a) functional
// form. Channels must be integers in [0, 255]; alpha a float in [0, 1].
func parseRGBFunc(s string) bool {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return false
	}
	wantAlpha := strings.HasPrefix(s, "rgba")

	parts := strings.Split(s[open+1:len(s)-1], ",")
	if wantAlpha && len(parts) != 4 {
		return false
	}
	if !wantAlpha && len(parts) != 3 {
		return false
	}

	for _, part := range parts[:3] {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return false
		}
	}
	if wantAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return false
		}
	}
	return true
}

// =============================================================================
// Value - resolved string-or-number color union
// =============================================================================

// Kind discriminates the variants of a Value.
type Kind int

const (
	// KindEmpty marks a hidden element (empty string sentinel).
	KindEmpty Kind = iota
	// KindNamed is a CSS color string or a categorical label.
	KindNamed
	// KindNumeric is a number mapped through a continuous color scale.
	KindNumeric
)

// Value is one element of a data color field: Named(string),
// Numeric(float64), or Empty. It is resolved once at validation time.
type Value struct {
	kind Kind
	name string
	num  float64
}

// Named returns a Value holding a color string or categorical label.
// Named("") is identical to Empty().
func Named(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindNamed, name: s}
}

// Numeric returns a Value holding a number for continuous color mapping.
func Numeric(v float64) Value {
	return Value{kind: KindNumeric, num: v}
}

// Empty returns the hidden-element sentinel.
func Empty() Value {
	return Value{}
}

// Kind returns the variant discriminator.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is the hidden-element sentinel.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Name returns the color string or label. It panics unless Kind is KindNamed.
func (v Value) Name() string {
	if v.kind != KindNamed {
		panic(fmt.Sprintf("color.Value.Name called on %v value", v.kind))
	}
	return v.name
}

// Number returns the numeric value. It panics unless Kind is KindNumeric.
func (v Value) Number() float64 {
	if v.kind != KindNumeric {
		panic(fmt.Sprintf("color.Value.Number called on %v value", v.kind))
	}
	return v.num
}

// String implements fmt.Stringer for diagnostics and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindNamed:
		return v.name
	case KindNumeric:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON emits the value in its wire form: a string, a number, or an
// empty string for the hidden sentinel.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumeric:
		return json.Marshal(v.num)
	default:
		return json.Marshal(v.String())
	}
}

// UnmarshalJSON resolves the string-or-number union at decode time.
func (v *Value) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = Numeric(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color value must be a string or a number: %w", err)
	}
	*v = Named(s)
	return nil
}

// Values converts a raw string slice into resolved Values.
func Values(raw []string) []Value {
	if raw == nil {
		return nil
	}
	out := make([]Value, len(raw))
	for i, s := range raw {
		out[i] = Named(s)
	}
	return out
}

// NumericValues converts a raw float slice into resolved Values.
func NumericValues(raw []float64) []Value {
	if raw == nil {
		return nil
	}
	out := make([]Value, len(raw))
	for i, v := range raw {
		out[i] = Numeric(v)
	}
	return out
}
