package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB with coverage, used by draw primitives
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{255, 255, 255}
	RGBHighlight = RGB{200, 0, 0} // Selected body
)

// Opaque returns c with full alpha
func (c RGB) Opaque() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Quarter divides every channel by 4 with integer truncation
func (c RGB) Quarter() RGB {
	return RGB{R: c.R / 4, G: c.G / 4, B: c.B / 4}
}

// Hex formats c as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB drops the alpha channel
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Over composites src onto dst using src alpha
func (dst RGB) Over(src RGBA) RGB {
	if src.A == 255 {
		return src.RGB()
	}
	return dst.Blend(src.RGB(), float64(src.A)/255)
}

// ParseHex parses #rgb or #rrggbb
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}
