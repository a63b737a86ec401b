// Package filter implements the color rejection policy applied both
// before quantization (to source colors) and after (to averaged box
// output): near-black, near-white, and the empirical skin-tone "red-I-line"
// hue band are excluded from candidate and final swatch sets alike.
package filter

import "github.com/seanho/ImagePalette/color"

const (
	minLightness = 0.05
	maxLightness = 0.95

	iLineMinHue        = 10.0
	iLineMaxHue        = 37.0
	iLineMaxSaturation = 0.82
)

// ShouldIgnore reports whether hsl falls in an excluded region: near-black
// (lightness <= 0.05), near-white (lightness >= 0.95), or the red-I-line
// skin-tone band (10 <= hue <= 37 and saturation <= 0.82).
func ShouldIgnore(hsl color.HSL) bool {
	if hsl.L <= minLightness || hsl.L >= maxLightness {
		return true
	}
	if hsl.H >= iLineMinHue && hsl.H <= iLineMaxHue && hsl.S <= iLineMaxSaturation {
		return true
	}
	return false
}
