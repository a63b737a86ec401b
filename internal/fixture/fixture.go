// Package fixture generates deterministic synthetic pixel buffers for
// tests, since this module has no bundled PNG test images.
package fixture

import "github.com/seanho/ImagePalette/color"

// Solid returns n copies of c.
func Solid(n int, c color.Color32) []color.Color32 {
	px := make([]color.Color32, n)
	for i := range px {
		px[i] = c
	}
	return px
}

// TwoColors returns nA copies of a followed by nB copies of b.
func TwoColors(a color.Color32, nA int, b color.Color32, nB int) []color.Color32 {
	px := make([]color.Color32, 0, nA+nB)
	px = append(px, Solid(nA, a)...)
	px = append(px, Solid(nB, b)...)
	return px
}

// UniformCube returns one pixel per distinct color sampled uniformly over
// an n x n x n grid spanning the 5-bit-reduced channel cube (so every
// sample lands in its own histogram bucket), skipping any color a
// predicate rejects. Each channel is split into n steps of 256/n (integer
// division, e.g. n=4 -> step=64, n=6 -> step=42) and sampled at each
// step's centre.
func UniformCube(n int, reject func(color.Color32) bool) []color.Color32 {
	step := 256 / n
	var px []color.Color32
	for r := 0; r < n; r++ {
		for g := 0; g < n; g++ {
			for b := 0; b < n; b++ {
				c := color.Pack(0xFF, uint8(r*step+step/2), uint8(g*step+step/2), uint8(b*step+step/2))
				if reject != nil && reject(c) {
					continue
				}
				px = append(px, c)
			}
		}
	}
	return px
}
