package errors

import "testing"

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid relative", "out/figure.json", false},
		{"valid absolute", "/tmp/figure.json", false},
		{"empty", "", true},
		{"traversal", "../secrets/figure.json", true},
		{"null byte", "figure\x00.json", true},
		{"too long", string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"json", "html"} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", format, err)
		}
	}
	for _, format := range []string{"", "svg", "png"} {
		if err := ValidateFormat(format); err == nil {
			t.Errorf("ValidateFormat(%q) = nil, want error", format)
		}
	}
}
