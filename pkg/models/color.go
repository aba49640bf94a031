package models

import "fmt"

// Color is an opaque 8-bit RGB color
type Color struct {
	R, G, B uint8
}

// ColorFromPacked unpacks a 24-bit RGB integer, red in the most significant byte
func ColorFromPacked(packed uint32) Color {
	return Color{
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
	}
}

// Packed returns (((R << 8) | G) << 8) | B
func (c Color) Packed() uint32 {
	return ((uint32(c.R)<<8)|uint32(c.G))<<8 | uint32(c.B)
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
