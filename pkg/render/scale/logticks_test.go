package scale

import (
	"math"
	"testing"

	"github.com/tracekit/tracekit/pkg/chart"
)

func TestLogTicksDecadeThirds(t *testing.T) {
	cfg := &chart.ScaleConfig{LogRegularization: fp(0)}
	positions, labels := LogTicks([]float64{1, 100}, cfg)

	// Two decades: 1, 2, 5, 10, 20, 50, 100.
	wantLabels := []string{"1e0", "2e0", "5e0", "1e1", "2e1", "5e1", "1e2"}
	if len(positions) != len(wantLabels) {
		t.Fatalf("got %d ticks (%v), want %d", len(positions), labels, len(wantLabels))
	}
	for i, want := range wantLabels {
		if labels[i] != want {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want)
		}
	}

	// Positions are in log space: 1e1 sits at exactly 1.
	if math.Abs(positions[3]-1) > 1e-12 {
		t.Errorf("decade boundary position = %v, want 1", positions[3])
	}
}

// TestLogTicksMonotonicWithinRange asserts that ticks are
// strictly increasing and all lie within [cMin, cMax].
func TestLogTicksMonotonicWithinRange(t *testing.T) {
	cfg := &chart.ScaleConfig{LogRegularization: fp(1)}
	values := []float64{0, 3, 17, 420, 99999}
	positions, labels := LogTicks(values, cfg)

	if len(positions) == 0 {
		t.Fatal("expected ticks for a multi-decade range")
	}
	if len(positions) != len(labels) {
		t.Fatalf("positions/labels length mismatch: %d vs %d", len(positions), len(labels))
	}

	cMin := math.Log10(0 + 1)
	cMax := math.Log10(99999 + 1)
	prev := math.Inf(-1)
	for i, p := range positions {
		if p <= prev {
			t.Fatalf("positions not strictly increasing at %d: %v", i, positions)
		}
		if p < cMin-1e-9 || p > cMax+1e-9 {
			t.Fatalf("position %v outside [%v, %v]", p, cMin, cMax)
		}
		prev = p
	}
}

func TestLogTicksTrimsEnds(t *testing.T) {
	// Range 3..70 spans log10 0.477..1.845: ticks 1 and 2 (below) and
	// 100 (above) must be trimmed, keeping 5, 10, 20, 50.
	cfg := &chart.ScaleConfig{LogRegularization: fp(0)}
	_, labels := LogTicks([]float64{3, 70}, cfg)

	want := []string{"5e0", "1e1", "2e1", "5e1"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestLogTicksNarrowRange(t *testing.T) {
	// A range collapsing onto one decade boundary yields no ticks.
	cfg := &chart.ScaleConfig{LogRegularization: fp(0)}
	positions, labels := LogTicks([]float64{10, 10}, cfg)
	if positions != nil || labels != nil {
		t.Errorf("single-boundary range should produce no ticks, got %v %v", positions, labels)
	}
}

func TestLogTicksBlanksIntermediatesWhenCrowded(t *testing.T) {
	// Four decades produce 13 ticks: intermediates must be blank, decade
	// boundaries always labeled.
	cfg := &chart.ScaleConfig{LogRegularization: fp(0)}
	positions, labels := LogTicks([]float64{1, 10000}, cfg)

	if len(positions) != 13 {
		t.Fatalf("got %d ticks, want 13", len(positions))
	}
	for i, label := range labels {
		isBoundary := i%3 == 0
		if isBoundary && label == "" {
			t.Errorf("decade boundary tick %d must be labeled", i)
		}
		if !isBoundary && label != "" {
			t.Errorf("intermediate tick %d should be blank when crowded, got %q", i, label)
		}
	}
}

func TestLogTicksConfigBounds(t *testing.T) {
	// Configured bounds override the data range.
	cfg := &chart.ScaleConfig{LogRegularization: fp(0), Minimum: fp(1), Maximum: fp(100)}
	positions, _ := LogTicks([]float64{5, 7}, cfg)

	if len(positions) != 7 {
		t.Errorf("config bounds should widen the tick range, got %d ticks", len(positions))
	}
}

func TestLogTicksLinearScaleNoTicks(t *testing.T) {
	positions, labels := LogTicks([]float64{1, 100}, &chart.ScaleConfig{})
	if positions != nil || labels != nil {
		t.Error("linear scale should produce no log ticks")
	}
}
