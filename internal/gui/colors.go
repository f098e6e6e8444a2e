package gui

import "image/color"

var (
	black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// luminanceThreshold separates backgrounds that read best with black text
// from those that need white.
// See https://stackoverflow.com/questions/3942878
const luminanceThreshold = 0.179

// Negate returns the channel-wise complement of the color. Alpha is kept.
func Negate(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Luminance computes the relative luminance of the color, channels
// normalized to [0, 1].
func Luminance(c color.NRGBA) float64 {
	return 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
}

// FontColor returns the font color with the best contrast against the given
// background: black above the luminance threshold, white at or below it.
func FontColor(bg color.NRGBA) color.NRGBA {
	if Luminance(bg) > luminanceThreshold {
		return black
	}
	return white
}
