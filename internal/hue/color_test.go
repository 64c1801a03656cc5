package hue

import "testing"

func TestRGB_Hex(t *testing.T) {
	tests := []struct {
		color RGB
		want  string
	}{
		{RGB{238, 0, 255}, "#ee00ff"},
		{RGB{119, 0, 127}, "#77007f"},
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %s, want %s", tt.color, got, tt.want)
		}
	}
}

func TestRGB_Darken(t *testing.T) {
	got := RGB{238, 0, 255}.Darken()
	if got != (RGB{119, 0, 127}) {
		t.Errorf("Darken: got %v, want {119 0 127}", got)
	}
}

func TestRGB_NRGBA(t *testing.T) {
	c := RGB{1, 2, 3}.NRGBA()
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 255 {
		t.Errorf("NRGBA: got %v, want {1 2 3 255}", c)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
	}{
		{"black", RGB{0, 0, 0}},
		{"white", RGB{255, 255, 255}},
		{"lime", RGB{0, 255, 0}},
		{"Magenta", RGB{255, 0, 255}},
		{"lightblue", RGB{173, 216, 230}},
		{"#fff", RGB{255, 255, 255}},
		{"#ee00ff", RGB{238, 0, 255}},
		{"#77007F", RGB{119, 0, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "notacolor", "#12", "#ggg", "ff0000"} {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("ParseColor(%q) should fail", input)
		}
	}
}
