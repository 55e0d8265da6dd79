package render

import "testing"

func TestRGBQuarter(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want RGB
	}{
		{"exact", RGB{200, 100, 40}, RGB{50, 25, 10}},
		{"truncates", RGB{255, 3, 7}, RGB{63, 0, 1}},
		{"black", RGBBlack, RGBBlack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Quarter(); got != tt.want {
				t.Errorf("Quarter(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBOver(t *testing.T) {
	dst := RGB{0, 0, 0}
	if got := dst.Over(RGBA{10, 20, 30, 255}); got != (RGB{10, 20, 30}) {
		t.Errorf("opaque Over = %v, want {10 20 30}", got)
	}
	if got := dst.Over(RGBA{200, 200, 200, 0}); got != dst {
		t.Errorf("transparent Over = %v, want unchanged", got)
	}
	half := dst.Over(RGBA{200, 100, 0, 128})
	if half.R < 99 || half.R > 101 || half.G < 49 || half.G > 51 {
		t.Errorf("half alpha Over = %v, want about {100 50 0}", half)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ff0000", RGB{255, 0, 0}, false},
		{"#336699", RGB{0x33, 0x66, 0x99}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{"red", RGB{}, true},
		{"", RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{0x0f, 0x84, 0x0b}).Hex(); got != "#0f840b" {
		t.Errorf("Hex = %q, want #0f840b", got)
	}
}

func TestHighlightColor(t *testing.T) {
	if RGBHighlight != (RGB{200, 0, 0}) {
		t.Errorf("RGBHighlight = %v, want {200 0 0}", RGBHighlight)
	}
	if got := RGBHighlight.Hex(); got != "#c80000" {
		t.Errorf("RGBHighlight.Hex = %q, want #c80000", got)
	}
}
