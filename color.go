package pixgrid

import "image/color"

// Color is a non-premultiplied colour with 8-bit red, green, blue and alpha
// channels.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a colour from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns c as the equivalent standard library colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex parses a colour from a hex string with an optional leading '#'.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4: // RGB, RGBA
		for i := 0; i < len(hex); i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Color{}, ErrInvalidHex
			}
			v[i] = d * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, ErrInvalidHex
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, ErrInvalidHex
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Palette used by the canvas and the demo session.
var (
	Background      = RGB(26, 32, 44)
	Axis            = RGB(74, 85, 104)
	PanelBackground = RGB(31, 41, 55)
	Green           = RGB(0, 255, 0)
	Yellow          = RGB(255, 255, 0)
	Blue            = RGB(59, 130, 246)
	Red             = RGB(239, 68, 68)
	White           = RGB(255, 255, 255)
	Gray            = RGB(156, 163, 175)
	Transparent     = RGBA(0, 0, 0, 0)
)
