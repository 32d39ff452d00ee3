package band

import (
	"testing"

	"github.com/tracekit/tracekit/pkg/chart"
)

func fp(v float64) *float64 { return &v }

func bandsCfg(low, middle, high *float64, filled bool) *chart.BandsConfig {
	cfg := &chart.BandsConfig{}
	for style, offset := range map[*chart.BandStyle]*float64{
		&cfg.Low:    low,
		&cfg.Middle: middle,
		&cfg.High:   high,
	} {
		if offset != nil {
			style.Offset = offset
			style.IsFilled = filled
		}
	}
	return cfg
}

func TestVerticalBandFills(t *testing.T) {
	cfg := bandsCfg(fp(2), fp(5), fp(8), true)
	box := Box{XMin: 0, XMax: 10, YMin: 0, YMax: 1}

	fills, _ := Vertical(cfg, box)
	if len(fills) != 3 {
		t.Fatalf("got %d fills, want 3", len(fills))
	}

	wantXs := map[string][]float64{
		NameLow:    {0, 2, 2, 0},
		NameMiddle: {2, 8, 8, 2},
		NameHigh:   {8, 10, 10, 8},
	}
	for i, name := range []string{NameLow, NameMiddle, NameHigh} {
		fill := fills[i]
		if fill.Name != name {
			t.Fatalf("fills[%d].Name = %q, want %q", i, fill.Name, name)
		}
		for j, x := range wantXs[name] {
			if fill.Xs[j] != x {
				t.Errorf("%s band xs = %v, want %v", name, fill.Xs, wantXs[name])
				break
			}
		}
		if fill.Ys[0] != 0 || fill.Ys[2] != 1 {
			t.Errorf("%s band should span the full y range, ys = %v", name, fill.Ys)
		}
	}
}

func TestVerticalBandLines(t *testing.T) {
	cfg := bandsCfg(fp(2), nil, nil, false)
	cfg.Low.Width = fp(1.5)

	fills, lines := Vertical(cfg, Box{XMin: 0, XMax: 10, YMin: -1, YMax: 1})
	if len(fills) != 0 {
		t.Fatalf("unfilled band should produce no fills, got %d", len(fills))
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	line := lines[0]
	if line.Xs[0] != 2 || line.Xs[1] != 2 {
		t.Errorf("vertical band line should sit at the offset, xs = %v", line.Xs)
	}
	if line.Ys[0] != -1 || line.Ys[1] != 1 {
		t.Errorf("vertical band line should span the y range, ys = %v", line.Ys)
	}
	if line.Style.Width == nil || *line.Style.Width != 1.5 {
		t.Error("band line should carry its style")
	}
}

func TestMiddleFillNeedsBothNeighbors(t *testing.T) {
	cfg := bandsCfg(nil, fp(5), nil, true)
	fills, _ := Vertical(cfg, Box{XMin: 0, XMax: 10, YMin: 0, YMax: 1})
	if len(fills) != 0 {
		t.Errorf("middle region is undefined without low and high, got %d fills", len(fills))
	}
}

func TestHorizontalBandFills(t *testing.T) {
	cfg := bandsCfg(fp(2), nil, fp(8), true)
	box := Box{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	fills, _ := Horizontal(cfg, box)
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}

	low := fills[0]
	if low.Ys[0] != 0 || low.Ys[2] != 2 {
		t.Errorf("low band should span YMin..offset, ys = %v", low.Ys)
	}
	if low.Xs[0] != 0 || low.Xs[1] != 10 {
		t.Errorf("low band should span the full x range, xs = %v", low.Xs)
	}
	high := fills[1]
	if high.Ys[0] != 8 || high.Ys[2] != 10 {
		t.Errorf("high band should span offset..YMax, ys = %v", high.Ys)
	}
}

func TestDiagonalLowTriangle(t *testing.T) {
	cfg := bandsCfg(fp(-5), nil, nil, true)
	box := Box{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	fills, _ := Diagonal(cfg, box, false)
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(fills))
	}

	// The region below y = x - 5 clipped to [0,10]^2 is the triangle
	// (5,0) (10,0) (10,5).
	fill := fills[0]
	wantXs := []float64{5, 10, 10}
	wantYs := []float64{0, 0, 5}
	if len(fill.Xs) != 3 {
		t.Fatalf("low diagonal region should be a triangle, got %d vertices", len(fill.Xs))
	}
	for i := range wantXs {
		if fill.Xs[i] != wantXs[i] || fill.Ys[i] != wantYs[i] {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", i, fill.Xs[i], fill.Ys[i], wantXs[i], wantYs[i])
		}
	}
}

func TestDiagonalHighTriangle(t *testing.T) {
	cfg := bandsCfg(nil, nil, fp(5), true)
	box := Box{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	fills, _ := Diagonal(cfg, box, false)
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(fills))
	}
	if len(fills[0].Xs) != 3 {
		t.Fatalf("high diagonal region should be a triangle, got %d vertices", len(fills[0].Xs))
	}
	// All triangle vertices lie on or above y = x + 5.
	for i := range fills[0].Xs {
		if fills[0].Ys[i] < fills[0].Xs[i]+5 {
			t.Errorf("vertex (%v, %v) below the high line", fills[0].Xs[i], fills[0].Ys[i])
		}
	}
}

func TestDiagonalMiddleStrip(t *testing.T) {
	cfg := bandsCfg(fp(-5), fp(0), fp(5), true)
	box := Box{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	fills, _ := Diagonal(cfg, box, false)
	if len(fills) != 3 {
		t.Fatalf("got %d fills, want 3", len(fills))
	}

	// The strip between y = x - 5 and y = x + 5 clips to a hexagon.
	middle := fills[1]
	if middle.Name != NameMiddle {
		t.Fatalf("fills[1].Name = %q, want %q", middle.Name, NameMiddle)
	}
	if len(middle.Xs) != 6 {
		t.Errorf("middle strip should clip to a hexagon, got %d vertices", len(middle.Xs))
	}
	for i := range middle.Xs {
		d := middle.Ys[i] - middle.Xs[i]
		if d < -5 || d > 5 {
			t.Errorf("vertex (%v, %v) outside the strip", middle.Xs[i], middle.Ys[i])
		}
	}
}

func TestDiagonalUnifiedSquare(t *testing.T) {
	// Axis ranges differ: the clip square spans the unified min/max.
	cfg := bandsCfg(fp(0), nil, nil, true)
	box := Box{XMin: 2, XMax: 6, YMin: 0, YMax: 10}

	fills, _ := Diagonal(cfg, box, false)
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(fills))
	}
	for i := range fills[0].Xs {
		if fills[0].Xs[i] < 0 || fills[0].Xs[i] > 10 || fills[0].Ys[i] < 0 || fills[0].Ys[i] > 10 {
			t.Errorf("vertex (%v, %v) outside the unified square", fills[0].Xs[i], fills[0].Ys[i])
		}
	}
}

func TestDiagonalLogLine(t *testing.T) {
	cfg := bandsCfg(fp(2), nil, nil, false)
	cfg.Low.Width = fp(1)
	box := Box{XMin: 1, XMax: 10, YMin: 1, YMax: 10}

	_, lines := Diagonal(cfg, box, true)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	// y = 2x enters the square at (1, 2) and exits at (5, 10).
	line := lines[0]
	if line.Xs[0] != 1 || line.Ys[0] != 2 {
		t.Errorf("line start = (%v, %v), want (1, 2)", line.Xs[0], line.Ys[0])
	}
	if line.Xs[1] != 5 || line.Ys[1] != 10 {
		t.Errorf("line end = (%v, %v), want (5, 10)", line.Xs[1], line.Ys[1])
	}
}

func TestDiagonalLineMissesSquare(t *testing.T) {
	cfg := bandsCfg(fp(100), nil, nil, false)
	cfg.Low.Width = fp(1)

	fills, lines := Diagonal(cfg, Box{XMin: 0, XMax: 10, YMin: 0, YMax: 10}, false)
	if len(lines) != 0 {
		t.Errorf("line far outside the square should be dropped, got %d", len(lines))
	}
	if len(fills) != 0 {
		t.Errorf("unfilled band should produce no fills, got %d", len(fills))
	}
}

// TestBandOrderingNonDegenerate asserts the ordering and shape property:
// fills come back in low, middle, high order and every polygon has at
// least three vertices.
func TestBandOrderingNonDegenerate(t *testing.T) {
	cfg := bandsCfg(fp(2), fp(5), fp(8), true)
	cfg.Low.Width = fp(1)
	cfg.Middle.Width = fp(1)
	cfg.High.Width = fp(1)
	box := Box{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	for name, run := range map[string]func() ([]Fill, []Line){
		"vertical":   func() ([]Fill, []Line) { return Vertical(cfg, box) },
		"horizontal": func() ([]Fill, []Line) { return Horizontal(cfg, box) },
		"diagonal":   func() ([]Fill, []Line) { return Diagonal(cfg, box, false) },
	} {
		fills, lines := run()
		if len(fills) != 3 {
			t.Fatalf("%s: got %d fills, want 3", name, len(fills))
		}
		for i, want := range []string{NameLow, NameMiddle, NameHigh} {
			if fills[i].Name != want {
				t.Errorf("%s: fills[%d].Name = %q, want %q", name, i, fills[i].Name, want)
			}
			if len(fills[i].Xs) < 3 || len(fills[i].Xs) != len(fills[i].Ys) {
				t.Errorf("%s: %s fill is degenerate: %d/%d vertices",
					name, want, len(fills[i].Xs), len(fills[i].Ys))
			}
		}
		if len(lines) != 3 {
			t.Errorf("%s: got %d lines, want 3", name, len(lines))
		}
	}
}
