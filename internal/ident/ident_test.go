package ident

import "testing"

func TestBasename(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		prefix string
		caps   bool
		want   string
	}{
		{"plain", "logo", "", false, "logo"},
		{"path", "assets/logo.png", "", false, "assets_logo_png"},
		{"caps", "data/logo.png", "G_", true, "G_DATA_LOGO_PNG"},
		{"prefix kept verbatim", "x", "my-", false, "my-x"},
		{"prefix not upper-cased", "x", "pre_", true, "pre_X"},
		{"unicode", "héllo", "", false, "h_llo"},
		{"digits", "font8x8.bin", "", true, "FONT8X8_BIN"},
		{"empty", "", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Basename(tt.in, tt.prefix, tt.caps); got != tt.want {
				t.Errorf("Basename(%q, %q, %v) = %q, want %q", tt.in, tt.prefix, tt.caps, got, tt.want)
			}
		})
	}
}
