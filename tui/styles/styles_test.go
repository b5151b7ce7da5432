package styles

import "testing"

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(12.345); got != "12.35" && got != "12.34" {
		t.Errorf("FormatPrice(12.345) = %q", got)
	}
	if got := FormatPrice(0.01); got != "0.01" {
		t.Errorf("FormatPrice(0.01) = %q, want 0.01", got)
	}
}

func TestFormatChange(t *testing.T) {
	tests := []struct {
		change float64
		want   string
	}{
		{0.0123, "+1.23%"},
		{-0.05, "-5.00%"},
		{0, "+0.00%"},
	}
	for _, tt := range tests {
		if got := FormatChange(tt.change); got != tt.want {
			t.Errorf("FormatChange(%v) = %q, want %q", tt.change, got, tt.want)
		}
	}
}
