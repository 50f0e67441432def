package colorpicker

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"RGB", ModeRGB},
		{"rgb", ModeRGB},
		{"HSB", ModeHSB},
		{"hsv", ModeHSB},
		{" HSL ", ModeHSL},
	}
	for _, tt := range tests {
		if got, err := ParseMode(tt.in); err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %s, %v, want %s", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseMode("cmyk"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("ParseMode(cmyk) error = %v", err)
	}
}

func TestModeNext(t *testing.T) {
	m := ModeRGB
	var seen []Mode
	for i := 0; i < 3; i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	if seen[0] != ModeHSB || seen[1] != ModeHSL || seen[2] != ModeRGB {
		t.Errorf("Next cycle = %v, want [HSB HSL RGB]", seen)
	}
}

func TestFields(t *testing.T) {
	red := HSV{0, 100, 100}
	tests := []struct {
		mode Mode
		hsv  HSV
		want [3]int
	}{
		{ModeRGB, red, [3]int{255, 0, 0}},
		{ModeHSB, red, [3]int{0, 100, 100}},
		{ModeHSL, red, [3]int{0, 100, 50}},
		{ModeHSB, HSV{359.7, 49.5, 10.2}, [3]int{0, 50, 10}},
	}
	for _, tt := range tests {
		if got := Fields(tt.mode, tt.hsv); got != tt.want {
			t.Errorf("Fields(%s, %v) = %v, want %v", tt.mode, tt.hsv, got, tt.want)
		}
	}
	if got := ModeHSL.Labels(); got != [3]string{"H", "S", "L"} {
		t.Errorf("HSL labels = %v", got)
	}
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		mode Mode
		in   [3]float64
		want HSV
	}{
		{ModeRGB, [3]float64{0, 255, 0}, HSV{120, 100, 100}},
		{ModeHSB, [3]float64{240, 50, 50}, HSV{240, 50, 50}},
		{ModeHSL, [3]float64{0, 100, 50}, HSV{0, 100, 100}},
	}
	for _, tt := range tests {
		got, err := ParseFields(tt.mode, tt.in)
		if err != nil {
			t.Errorf("ParseFields(%s, %v) error: %v", tt.mode, tt.in, err)
			continue
		}
		if !approxHSV(got, tt.want) {
			t.Errorf("ParseFields(%s, %v) = %v, want %v", tt.mode, tt.in, got, tt.want)
		}
	}

	bad := []struct {
		mode Mode
		in   [3]float64
	}{
		{ModeRGB, [3]float64{256, 0, 0}},
		{ModeHSB, [3]float64{0, -1, 0}},
		{ModeHSL, [3]float64{0, 0, 101}},
	}
	for _, tt := range bad {
		if _, err := ParseFields(tt.mode, tt.in); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("ParseFields(%s, %v) error = %v, want ErrInvalidColorFormat", tt.mode, tt.in, err)
		}
	}
}
