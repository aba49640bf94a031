package models

import (
	"image/color"
	"testing"
)

func TestColor_Packed(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected uint32
	}{
		{"Black", Color{0, 0, 0}, 0},
		{"White", Color{255, 255, 255}, 0xffffff},
		{"Red is most significant", Color{255, 0, 0}, 0xff0000},
		{"Blue is least significant", Color{0, 0, 255}, 0x0000ff},
		{"Mixed channels", Color{10, 20, 30}, 660510},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Packed(); got != tt.expected {
				t.Errorf("Packed() = %d, expected %d", got, tt.expected)
			}
			if back := ColorFromPacked(tt.expected); back != tt.color {
				t.Errorf("ColorFromPacked(%d) = %+v, expected %+v", tt.expected, back, tt.color)
			}
		})
	}
}

func TestColor_RGBA(t *testing.T) {
	c := Color{10, 20, 30}
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("Expected opaque {10 20 30}, got %+v", got)
	}
}

func TestColor_Hex(t *testing.T) {
	if hex := (Color{255, 8, 0}).Hex(); hex != "#ff0800" {
		t.Errorf("Expected #ff0800, got %s", hex)
	}
}
