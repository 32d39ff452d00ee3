package color

import (
	"encoding/json"
	"testing"
)

func TestContinuousPaletteValidate(t *testing.T) {
	tests := []struct {
		name  string
		stops []Stop
		valid bool
	}{
		{"two stops", []Stop{{0, "blue"}, {1, "red"}}, true},
		{"single stop", []Stop{{0, "blue"}}, true},
		{"empty", nil, false},
		{"bad color", []Stop{{0, "blurple"}, {1, "red"}}, false},
		{"descending", []Stop{{1, "blue"}, {0, "red"}}, false},
		{"duplicate value", []Stop{{1, "blue"}, {1, "red"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Continuous(tt.stops).Validate()
			if (msg == "") != tt.valid {
				t.Errorf("Validate() = %q, want valid=%v", msg, tt.valid)
			}
		})
	}
}

func TestCategoricalPaletteValidate(t *testing.T) {
	if msg := Categorical([]Entry{{"A", "red"}, {"B", ""}}).Validate(); msg != "" {
		t.Errorf("empty category color should be valid, got %q", msg)
	}
	if msg := Categorical([]Entry{{"A", "red"}, {"A", "blue"}}).Validate(); msg == "" {
		t.Error("duplicate label should be invalid")
	}
	if msg := Categorical([]Entry{{"A", "blurple"}}).Validate(); msg == "" {
		t.Error("invalid color should be rejected")
	}
}

func TestBuiltinPalette(t *testing.T) {
	if !IsBuiltin("viridis") {
		t.Fatal("viridis should be built in")
	}
	if msg := Builtin("viridis").Validate(); msg != "" {
		t.Errorf("viridis should validate, got %q", msg)
	}
	if msg := Builtin("no-such-palette").Validate(); msg == "" {
		t.Error("unknown builtin should be invalid")
	}

	stops := Builtin("viridis").Stops()
	if len(stops) == 0 {
		t.Fatal("builtin stops should not be empty")
	}
	if stops[0].Value != 0 || stops[len(stops)-1].Value != 1 {
		t.Errorf("builtin stops should span [0,1], got [%v,%v]",
			stops[0].Value, stops[len(stops)-1].Value)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Value <= stops[i-1].Value {
			t.Fatalf("builtin stop values must be ascending: %v then %v",
				stops[i-1].Value, stops[i].Value)
		}
	}
	for _, s := range stops {
		if !IsConcreteColor(s.Color) {
			t.Fatalf("builtin stop has invalid color %q", s.Color)
		}
	}
}

func TestPaletteLookup(t *testing.T) {
	p := Categorical([]Entry{{"A", "red"}, {"B", ""}})

	if c, ok := p.Lookup("A"); !ok || c != "red" {
		t.Errorf("Lookup(A) = %q, %v", c, ok)
	}
	if c, ok := p.Lookup("B"); !ok || c != "" {
		t.Errorf("Lookup(B) = %q, %v", c, ok)
	}
	if _, ok := p.Lookup("C"); ok {
		t.Error("Lookup(C) should miss")
	}
}

func TestPaletteValueRange(t *testing.T) {
	lo, hi := Continuous([]Stop{{-2, "blue"}, {0, "white"}, {3, "red"}}).ValueRange()
	if lo != -2 || hi != 3 {
		t.Errorf("ValueRange = %v, %v", lo, hi)
	}
}

func TestPaletteJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    *Palette
	}{
		{"builtin", Builtin("viridis")},
		{"continuous", Continuous([]Stop{{0, "blue"}, {1, "red"}})},
		{"categorical", Categorical([]Entry{{"A", "red"}, {"B", ""}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.p)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var back Palette
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back.Kind() != tt.p.Kind() {
				t.Errorf("kind = %v, want %v", back.Kind(), tt.p.Kind())
			}
		})
	}

	var p Palette
	if err := json.Unmarshal([]byte(`{}`), &p); err == nil {
		t.Error("palette without any variant field should fail to decode")
	}
	if err := json.Unmarshal([]byte(`{"builtin":"viridis","continuous":[]}`), &p); err == nil {
		t.Error("palette with two variant fields should fail to decode")
	}
}
