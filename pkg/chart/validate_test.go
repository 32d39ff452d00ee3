package chart

import (
	"strings"
	"testing"

	"github.com/tracekit/tracekit/pkg/chart/color"
)

func fp(v float64) *float64 { return &v }

func TestAxisConfigRangeMessage(t *testing.T) {
	g := &BarGraph{
		Data: BarData{Values: []float64{1, 2}},
		Configuration: BarConfiguration{
			ValueAxis: AxisConfig{Minimum: fp(5), Maximum: fp(3)},
		},
	}

	invalid := g.Validate()
	if invalid == nil {
		t.Fatal("inverted axis range should be invalid")
	}
	for _, want := range []string{"5", "3", "larger", "configuration.value_axis"} {
		if !strings.Contains(invalid.Message, want) {
			t.Errorf("message %q should contain %q", invalid.Message, want)
		}
	}
}

func TestAxisConfigLogRegularization(t *testing.T) {
	tests := []struct {
		name  string
		axis  AxisConfig
		valid bool
	}{
		{"plain linear", AxisConfig{}, true},
		{"log with positive domain", AxisConfig{Minimum: fp(1), Maximum: fp(10), LogRegularization: fp(0)}, true},
		{"log shifts zero minimum", AxisConfig{Minimum: fp(0), Maximum: fp(10), LogRegularization: fp(1)}, true},
		{"negative regularization", AxisConfig{LogRegularization: fp(-1)}, false},
		{"unloggable minimum", AxisConfig{Minimum: fp(0), Maximum: fp(10), LogRegularization: fp(0)}, false},
		{"unloggable maximum", AxisConfig{Maximum: fp(-5), LogRegularization: fp(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &LineGraph{
				Data:          LineData{Xs: []float64{1, 2}, Ys: []float64{1, 2}},
				Configuration: LineConfiguration{XAxis: tt.axis},
			}
			invalid := g.Validate()
			if (invalid == nil) != tt.valid {
				t.Errorf("Validate() = %v, want valid=%v", invalid, tt.valid)
			}
		})
	}
}

func TestBandsOrdering(t *testing.T) {
	g := &PointsGraph{
		Data: PointsData{Xs: []float64{0, 1}, Ys: []float64{0, 1}},
		Configuration: PointsConfiguration{
			HorizontalBands: BandsConfig{
				Low:    BandStyle{Offset: fp(5)},
				Middle: BandStyle{Offset: fp(3)},
			},
		},
	}

	invalid := g.Validate()
	if invalid == nil {
		t.Fatal("low offset above middle offset should be invalid")
	}
	if !strings.Contains(invalid.Message, "low.offset") ||
		!strings.Contains(invalid.Message, "middle.offset") ||
		!strings.Contains(invalid.Message, "not less") {
		t.Errorf("unexpected message: %q", invalid.Message)
	}
}

func TestBandsFullOrderingValid(t *testing.T) {
	g := &PointsGraph{
		Data: PointsData{Xs: []float64{0, 1}, Ys: []float64{0, 1}},
		Configuration: PointsConfiguration{
			VerticalBands: BandsConfig{
				Low:    BandStyle{Offset: fp(-1)},
				Middle: BandStyle{Offset: fp(0)},
				High:   BandStyle{Offset: fp(2)},
			},
		},
	}
	if invalid := g.Validate(); invalid != nil {
		t.Errorf("ordered bands should be valid, got %q", invalid.Message)
	}
}

func TestDiagonalBandsMixedScales(t *testing.T) {
	g := &PointsGraph{
		Data: PointsData{Xs: []float64{1, 2}, Ys: []float64{1, 2}},
		Configuration: PointsConfiguration{
			XAxis:         AxisConfig{LogRegularization: fp(0)},
			DiagonalBands: BandsConfig{Low: BandStyle{Offset: fp(1)}},
		},
	}

	invalid := g.Validate()
	if invalid == nil {
		t.Fatal("diagonal bands over mixed axes should be invalid")
	}
	if !strings.Contains(invalid.Message, "combination of linear and log scale axes") {
		t.Errorf("unexpected message: %q", invalid.Message)
	}

	// Same linearity on both axes is fine.
	g.Configuration.YAxis.LogRegularization = fp(0)
	if invalid := g.Validate(); invalid != nil {
		t.Errorf("both-log diagonal bands should be valid, got %q", invalid.Message)
	}
}

func TestLogBandOffsetMustBePositive(t *testing.T) {
	g := &PointsGraph{
		Data: PointsData{Xs: []float64{1, 2}, Ys: []float64{1, 2}},
		Configuration: PointsConfiguration{
			XAxis:         AxisConfig{LogRegularization: fp(0)},
			VerticalBands: BandsConfig{Low: BandStyle{Offset: fp(-2)}},
		},
	}
	if g.Validate() == nil {
		t.Error("non-positive band offset on a log axis should be invalid")
	}
}

func TestArrayLengthAgreement(t *testing.T) {
	base := func() *PointsGraph {
		return &PointsGraph{Data: PointsData{Xs: []float64{0, 1, 2}, Ys: []float64{0, 1, 2}}}
	}

	g := base()
	g.Data.Ys = []float64{0, 1}
	if g.Validate() == nil {
		t.Error("ys length mismatch should be invalid")
	}

	g = base()
	g.Data.Hovers = []string{"only one"}
	if g.Validate() == nil {
		t.Error("hovers length mismatch should be invalid")
	}

	g = base()
	g.Data.Sizes = []float64{1, 2, 3}
	if invalid := g.Validate(); invalid != nil {
		t.Errorf("matching sizes should be valid, got %q", invalid.Message)
	}

	g = base()
	g.Data.Sizes = []float64{1, -2, 3}
	if g.Validate() == nil {
		t.Error("negative size should be invalid")
	}
}

func TestColorValidity(t *testing.T) {
	g := &PointsGraph{
		Data: PointsData{
			Xs:     []float64{0, 1},
			Ys:     []float64{0, 1},
			Colors: color.Values([]string{"red", "blurple"}),
		},
	}
	invalid := g.Validate()
	if invalid == nil || !strings.Contains(invalid.Message, "blurple") {
		t.Errorf("invalid color should be rejected, got %v", invalid)
	}

	// The empty string hides the point and is always allowed.
	g.Data.Colors = color.Values([]string{"red", ""})
	if invalid := g.Validate(); invalid != nil {
		t.Errorf("empty color should be valid, got %q", invalid.Message)
	}
}

func TestCategoricalPaletteMembership(t *testing.T) {
	palette := color.Categorical([]color.Entry{{Label: "A", Color: "red"}, {Label: "B", Color: "blue"}})
	g := &PointsGraph{
		Data: PointsData{
			Xs:     []float64{0, 1, 2},
			Ys:     []float64{0, 1, 2},
			Colors: color.Values([]string{"A", "C", ""}),
		},
		Configuration: PointsConfiguration{
			Style: PointsStyle{Palette: palette},
		},
	}
	invalid := g.Validate()
	if invalid == nil || !strings.Contains(invalid.Message, "C") {
		t.Errorf("non-member label should be rejected, got %v", invalid)
	}

	g.Data.Colors = color.Values([]string{"A", "B", ""})
	if invalid := g.Validate(); invalid != nil {
		t.Errorf("member labels should be valid, got %q", invalid.Message)
	}

	// Numeric values make no sense against a categorical palette.
	g.Data.Colors = []color.Value{color.Numeric(1), color.Named("A"), color.Empty()}
	if g.Validate() == nil {
		t.Error("numeric value against categorical palette should be invalid")
	}
}

func TestContinuousPaletteRequiresNumericValues(t *testing.T) {
	palette := color.Continuous([]color.Stop{{Value: 0, Color: "blue"}, {Value: 1, Color: "red"}})
	g := &PointsGraph{
		Data: PointsData{
			Xs:     []float64{0, 1},
			Ys:     []float64{0, 1},
			Colors: []color.Value{color.Numeric(0.2), color.Named("red")},
		},
		Configuration: PointsConfiguration{Style: PointsStyle{Palette: palette}},
	}
	if g.Validate() == nil {
		t.Error("named value against continuous palette should be invalid")
	}

	g.Data.Colors = []color.Value{color.Numeric(0.2), color.Empty()}
	if invalid := g.Validate(); invalid != nil {
		t.Errorf("numeric values should be valid, got %q", invalid.Message)
	}
}

func TestEdgeValidity(t *testing.T) {
	base := func(edges []Edge) *PointsGraph {
		return &PointsGraph{
			Data: PointsData{Xs: []float64{0, 1, 2}, Ys: []float64{0, 1, 2}, Edges: edges},
		}
	}

	if invalid := base([]Edge{{From: 0, To: 2}}).Validate(); invalid != nil {
		t.Errorf("valid edge rejected: %q", invalid.Message)
	}
	if base([]Edge{{From: 0, To: 3}}).Validate() == nil {
		t.Error("out-of-range endpoint should be invalid")
	}
	if base([]Edge{{From: -1, To: 1}}).Validate() == nil {
		t.Error("negative endpoint should be invalid")
	}
	if base([]Edge{{From: 1, To: 1}}).Validate() == nil {
		t.Error("self edge should be invalid")
	}
}

func TestDistributionShapeCombinations(t *testing.T) {
	base := func(box, violin, curve bool) *DistributionGraph {
		return &DistributionGraph{
			Data: DistributionData{Values: []float64{1, 2, 3, 4, 100}},
			Configuration: DistributionConfiguration{
				Style: DistributionStyle{ShowBox: box, ShowViolin: violin, ShowCurve: curve},
			},
		}
	}

	if invalid := base(true, false, false).Validate(); invalid != nil {
		t.Errorf("box only should be valid, got %q", invalid.Message)
	}
	if invalid := base(true, true, false).Validate(); invalid != nil {
		t.Errorf("box plus violin should be valid, got %q", invalid.Message)
	}
	if base(false, false, false).Validate() == nil {
		t.Error("no shapes should be invalid")
	}
	if base(false, true, true).Validate() == nil {
		t.Error("violin plus curve should be invalid")
	}
}

func TestSizeRangeOrdering(t *testing.T) {
	g := &PointsGraph{
		Data: PointsData{Xs: []float64{0}, Ys: []float64{0}},
		Configuration: PointsConfiguration{
			Style: PointsStyle{SizeRange: SizeRange{Smallest: fp(10), Largest: fp(2)}},
		},
	}
	invalid := g.Validate()
	if invalid == nil || !strings.Contains(invalid.Message, "larger") {
		t.Errorf("inverted size range should be invalid, got %v", invalid)
	}
}

func TestReversedCategoricalPaletteRejected(t *testing.T) {
	g := &PointsGraph{
		Data: PointsData{Xs: []float64{0}, Ys: []float64{0}},
		Configuration: PointsConfiguration{
			Style: PointsStyle{
				Palette:    color.Categorical([]color.Entry{{Label: "A", Color: "red"}}),
				ColorScale: ScaleConfig{ReverseScale: true},
			},
		},
	}
	if g.Validate() == nil {
		t.Error("reversed categorical palette should be invalid")
	}
}

func TestMustValidPanics(t *testing.T) {
	g := &BarGraph{
		Data:          BarData{Values: []float64{1}},
		Configuration: BarConfiguration{ValueAxis: AxisConfig{Minimum: fp(5), Maximum: fp(3)}},
	}

	defer func() {
		if recover() == nil {
			t.Error("MustValid should panic on an invalid graph")
		}
	}()
	MustValid(g)
}

// TestValidationTotality feeds arbitrarily-valued but well-typed graphs
// through Validate and asserts it always returns instead of panicking.
func TestValidationTotality(t *testing.T) {
	graphs := []Graph{
		&PointsGraph{},
		&PointsGraph{Data: PointsData{Xs: []float64{1}, Ys: nil, Edges: []Edge{{From: 9, To: -3}}}},
		&GridGraph{},
		&GridGraph{Data: GridData{Xs: []float64{1, 2}, Ys: []float64{3}, Colors: color.Values([]string{"x"})}},
		&LineGraph{},
		&LinesGraph{},
		&CdfGraph{},
		&CdfsGraph{Data: CdfsData{Series: []CdfData{{}}}},
		&BarGraph{},
		&BarsGraph{Data: BarsData{Series: []BarData{{Values: []float64{1}}, {Values: []float64{1, 2}}}}},
		&DistributionGraph{},
		&DistributionsGraph{},
		&PointsGraph{Configuration: PointsConfiguration{
			XAxis: AxisConfig{Minimum: fp(-5), LogRegularization: fp(0)},
			Style: PointsStyle{Size: fp(-3), Color: "###"},
		}},
	}

	for i, g := range graphs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("graph %d (%s): Validate panicked: %v", i, g.Kind(), r)
				}
			}()
			_ = g.Validate()
		}()
	}
}
