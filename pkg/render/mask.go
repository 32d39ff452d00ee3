package render

import "github.com/tracekit/tracekit/pkg/chart/color"

// mask selects a subset of a data array's elements.
type mask []bool

func (m mask) count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// visibleMask computes the combined visibility of every element: an empty
// color or a zero size is a "do not draw" sentinel, never a drawing
// instruction. Absent arrays hide nothing.
func visibleMask(n int, colors []color.Value, sizes []float64) mask {
	m := make(mask, n)
	for i := range m {
		m[i] = true
		if colors != nil && colors[i].IsEmpty() {
			m[i] = false
		}
		if sizes != nil && sizes[i] == 0 {
			m[i] = false
		}
	}
	return m
}

// category is one categorical-palette split: the palette entry plus the
// mask selecting exactly the visible elements labeled with it.
type category struct {
	label string
	color string
	m     mask
}

// splitCategories builds one mask per palette entry, in palette order.
// Entries with an empty color are dropped (hidden categories), as are
// categories no visible element uses.
func splitCategories(colors []color.Value, visible mask, palette *color.Palette) []category {
	var split []category
	for _, entry := range palette.Entries() {
		if entry.Color == "" {
			continue
		}
		m := make(mask, len(colors))
		any := false
		for i, v := range colors {
			if visible[i] && v.Kind() == color.KindNamed && v.Name() == entry.Label {
				m[i] = true
				any = true
			}
		}
		if any {
			split = append(split, category{label: entry.Label, color: entry.Color, m: m})
		}
	}
	return split
}

// Masked selection helpers. Each returns the elements the mask keeps, in
// order; a nil input stays nil.

func selectFloats(values []float64, m mask) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, 0, m.count())
	for i, v := range values {
		if m[i] {
			out = append(out, v)
		}
	}
	return out
}

func selectStrings(values []string, m mask) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, m.count())
	for i, v := range values {
		if m[i] {
			out = append(out, v)
		}
	}
	return out
}

func selectValues(values []color.Value, m mask) []color.Value {
	if values == nil {
		return nil
	}
	out := make([]color.Value, 0, m.count())
	for i, v := range values {
		if m[i] {
			out = append(out, v)
		}
	}
	return out
}

// and intersects two masks.
func (m mask) and(other mask) mask {
	out := make(mask, len(m))
	for i := range m {
		out[i] = m[i] && other[i]
	}
	return out
}
