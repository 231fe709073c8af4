package main

import (
	"fmt"
	"image/color"
	"math"
)

// Fixed saturation and lightness of every firework colour.
const (
	colorSaturation = 1.0
	colorLightness  = 0.6
)

// Color is a firework colour. Only the hue varies; it renders as the
// token hsl(<hue>,100%,60%).
type Color struct {
	Hue int
}

// RandomColor picks a colour with a uniformly random hue.
func RandomColor(r *Random) Color {
	return Color{Hue: r.Hue()}
}

func (c Color) String() string {
	return fmt.Sprintf("hsl(%d,100%%,60%%)", c.Hue)
}

// RGBA converts the colour to opaque 8-bit RGB.
func (c Color) RGBA() color.RGBA {
	r, g, b := hslToRGB(float64(c.Hue), colorSaturation, colorLightness)
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

// hslToRGB helper
func hslToRGB(h, s, l float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
