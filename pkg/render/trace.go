package render

import (
	"encoding/json"

	"github.com/tracekit/tracekit/pkg/chart/color"
)

// ============================================================================
// Traces
// ============================================================================

// TraceKind is the closed set of primitive drawables.
type TraceKind string

// Trace kinds.
const (
	TraceFill   TraceKind = "fill"
	TraceLine   TraceKind = "line"
	TraceMarker TraceKind = "marker"
	TraceBar    TraceKind = "bar"
	TraceBox    TraceKind = "box"
)

// Trace is one atomic drawable handed to the plotting backend. Exactly one
// of the style fields matching Kind is set. Trace order in a figure is
// significant: later traces draw on top.
type Trace struct {
	Kind TraceKind `json:"kind"`
	// Name labels the trace in the legend.
	Name string `json:"name,omitempty"`
	// Legend includes the trace in the legend.
	Legend bool `json:"legend,omitempty"`

	// Xs and Ys are the trace geometry: polygon vertices for fills, sample
	// points for lines, marker positions for markers.
	Xs []float64 `json:"xs,omitempty"`
	Ys []float64 `json:"ys,omitempty"`
	// Segments are detached two-point pieces of a line trace (point-to-point
	// edges), used instead of Xs/Ys.
	Segments []Segment `json:"segments,omitempty"`
	// Labels are category labels of a bar trace, parallel to Ys.
	Labels []string `json:"labels,omitempty"`
	// Hovers are per-element hover texts.
	Hovers []string `json:"hovers,omitempty"`
	// Horizontal swaps the value axis of bar and box traces.
	Horizontal bool `json:"horizontal,omitempty"`

	Fill   *FillStyle   `json:"fill,omitempty"`
	Line   *LineStyle   `json:"line,omitempty"`
	Marker *MarkerStyle `json:"marker,omitempty"`
	Bar    *BarStyle    `json:"bar,omitempty"`
	Box    *BoxStyle    `json:"box,omitempty"`
}

// Segment is one detached line piece in data coordinates.
type Segment struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// FillStyle styles a filled polygon trace.
type FillStyle struct {
	Color string `json:"color,omitempty"`
}

// LineStyle styles a line trace.
type LineStyle struct {
	Color  string  `json:"color,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Dashed bool    `json:"dashed,omitempty"`
	// Filled fills the area under the line (or down to the previous series
	// when the layout stacks).
	Filled bool `json:"filled,omitempty"`
	// Colors are per-segment colors of an edge trace.
	Colors []string `json:"colors,omitempty"`
}

// MarkerStyle styles a marker trace. Color modes are mutually exclusive:
// a fixed Color, explicit per-point Colors, or numeric Values resolved
// through one of the layout's color axes.
type MarkerStyle struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	// Values are the (possibly log-transformed) numbers the backend colors
	// by, resolved through ColorAxis.
	Values []float64 `json:"values,omitempty"`
	// ColorAxis names the layout color axis for Values: "primary" or
	// "border".
	ColorAxis string `json:"color_axis,omitempty"`
	// Size is the fixed diameter; Sizes are per-point diameters.
	Size  *float64  `json:"size,omitempty"`
	Sizes []float64 `json:"sizes,omitempty"`
	// Ring draws the markers as border rings instead of filled dots.
	Ring bool `json:"ring,omitempty"`
}

// BarStyle styles a bar trace, with the same color modes as MarkerStyle.
type BarStyle struct {
	Color     string    `json:"color,omitempty"`
	Colors    []string  `json:"colors,omitempty"`
	Values    []float64 `json:"values,omitempty"`
	ColorAxis string    `json:"color_axis,omitempty"`
}

// BoxStyle carries a box trace's raw values plus the precomputed
// five-number summary, so the backend does no statistics of its own.
type BoxStyle struct {
	Color   string     `json:"color,omitempty"`
	Values  []float64  `json:"values"`
	Summary BoxSummary `json:"summary"`
}

// BoxSummary is the five-number summary of a distribution.
type BoxSummary struct {
	Minimum float64 `json:"minimum"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Maximum float64 `json:"maximum"`
}

// ============================================================================
// Layout
// ============================================================================

// AxisKind is the scale type of an axis.
type AxisKind string

// Axis kinds.
const (
	AxisLinear AxisKind = "linear"
	AxisLog    AxisKind = "log"
)

// Axis describes one layout axis.
type Axis struct {
	Title   string   `json:"title,omitempty"`
	Kind    AxisKind `json:"kind"`
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
	// TickPositions and TickLabels override the backend's automatic ticks,
	// used for named grid rows/columns and distribution slots.
	TickPositions []float64 `json:"tick_positions,omitempty"`
	TickLabels    []string  `json:"tick_labels,omitempty"`
}

// ColorAxis describes one continuous color scale shared by traces that
// reference it. A layout carries at most two: the primary axis and the
// border axis, so a point can encode two attributes at once.
type ColorAxis struct {
	// Stops are the gradient stops with normalized [0, 1] positions.
	Stops []color.Stop `json:"stops,omitempty"`
	// CMin and CMax bound the (possibly log-transformed) color values.
	CMin float64 `json:"cmin"`
	CMax float64 `json:"cmax"`
	// ShowScale displays the colorbar.
	ShowScale bool `json:"show_scale,omitempty"`
	// TickPositions and TickLabels are the colorbar ticks of a log scale,
	// in log space.
	TickPositions []float64 `json:"tick_positions,omitempty"`
	TickLabels    []string  `json:"tick_labels,omitempty"`
}

// BarMode selects how multiple bar traces share a category slot.
type BarMode string

// Bar modes.
const (
	BarModeGroup BarMode = "group"
	BarModeStack BarMode = "stack"
)

// Export carries the backend pass-through parameters verbatim from the
// figure configuration. The engine never interprets them.
type Export struct {
	OutputFile  string   `json:"output_file,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`
}

// Layout is the non-data chrome of a figure: axes, legend, color axes and
// the export pass-through.
type Layout struct {
	Title      string `json:"title,omitempty"`
	ShowLegend bool   `json:"show_legend,omitempty"`
	ShowGrid   bool   `json:"show_grid,omitempty"`
	XAxis      Axis   `json:"x_axis"`
	YAxis      Axis   `json:"y_axis"`
	// Stacking is the line stacking mode of the figure, empty for none.
	Stacking string `json:"stacking,omitempty"`
	// BarMode applies when the figure has multiple bar traces.
	BarMode BarMode `json:"bar_mode,omitempty"`

	PrimaryColorAxis *ColorAxis `json:"color_axis,omitempty"`
	BorderColorAxis  *ColorAxis `json:"border_color_axis,omitempty"`

	Export Export `json:"export,omitempty"`
}

// Color axis references used by MarkerStyle.ColorAxis.
const (
	ColorAxisPrimary = "primary"
	ColorAxisBorder  = "border"
)

// ============================================================================
// Figure
// ============================================================================

// Figure is a complete renderable scene: the ordered traces plus the
// layout.
type Figure struct {
	Traces []Trace `json:"traces"`
	Layout Layout  `json:"layout"`
}

// MarshalIndent serializes the figure for the backend.
func (f *Figure) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}
