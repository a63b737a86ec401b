// Package histogram builds a reduced-precision color population tally
// from a flat pixel buffer, the input the median-cut quantizer consumes.
package histogram

import "github.com/seanho/ImagePalette/color"

// Histogram is a reduced-precision color population tally: each of R, G,
// B has its low 3 bits cleared (retaining the high 5 bits in place, so
// channels stay on the 0-255 scale) and alpha forced to 0xFF, collapsing
// 24-bit color into a 15-bit key space (32,768 buckets max). It owns no
// input pixels after construction.
type Histogram struct {
	colors []color.Color32
	counts []int
	pop    map[color.Color32]int
}

// Build tallies pixels into a Histogram. Each pixel's reduced key is
// (p.R()>>3<<3, p.G()>>3<<3, p.B()>>3<<3) with alpha forced opaque.
func Build(pixels []color.Color32) *Histogram {
	pop := make(map[color.Color32]int)
	for _, p := range pixels {
		pop[reduce(p)]++
	}

	h := &Histogram{
		colors: make([]color.Color32, 0, len(pop)),
		counts: make([]int, 0, len(pop)),
		pop:    pop,
	}
	for c, n := range pop {
		h.colors = append(h.colors, c)
		h.counts = append(h.counts, n)
	}
	return h
}

func reduce(p color.Color32) color.Color32 {
	return color.Pack(0xFF, p.R()>>3<<3, p.G()>>3<<3, p.B()>>3<<3)
}

// Colors returns the histogram's distinct reduced-precision colors, in
// arbitrary order.
func (h *Histogram) Colors() []color.Color32 { return h.colors }

// Counts returns the population counts parallel to Colors.
func (h *Histogram) Counts() []int { return h.counts }

// Population returns the pixel count for a given reduced-precision color,
// or 0 if it was never observed.
func (h *Histogram) Population(c color.Color32) int { return h.pop[c] }

// Len returns the number of distinct colors in the histogram.
func (h *Histogram) Len() int { return len(h.colors) }
