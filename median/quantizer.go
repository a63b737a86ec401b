// Package median implements the modified median-cut color quantizer: a
// box-splitting loop over a priority queue ordered by box volume, operating
// in place on a shared color array owned by one quantization run.
package median

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/seanho/ImagePalette/color"
	"github.com/seanho/ImagePalette/filter"
)

// Result is one quantized box's population-weighted average color.
type Result struct {
	Color      color.Color32
	Population int
}

// Quantize runs modified median-cut quantization over colors, weighted by
// the per-color populations in pop, producing at most maxColors Results.
// Repeated entries in colors are counted once; each distinct color
// carries its full population from pop.
//
// Colors that ShouldIgnore (near-black, near-white, red-I-line) are
// dropped before quantization, and averaged box colors that drift into an
// excluded region are dropped again afterward. If the filtered color
// count is already <= maxColors, quantization is skipped entirely and one
// Result is emitted per remaining color.
func Quantize(colors []color.Color32, pop map[color.Color32]int, maxColors int) []Result {
	if maxColors < 1 {
		panic(fmt.Errorf("median: maxColors must be >= 1, got %d", maxColors))
	}

	filtered := make([]color.Color32, 0, len(colors))
	seen := make(map[color.Color32]bool, len(colors))
	for _, c := range colors {
		if seen[c] {
			continue
		}
		seen[c] = true
		if !filter.ShouldIgnore(color.ToHSL(c)) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	if len(filtered) <= maxColors {
		results := make([]Result, 0, len(filtered))
		for _, c := range filtered {
			results = append(results, Result{Color: c, Population: pop[c]})
		}
		return results
	}

	boxes := split(filtered, maxColors)

	results := make([]Result, 0, len(boxes))
	for _, b := range boxes {
		avg, population := averageColor(filtered, b, pop)
		if population == 0 {
			continue
		}
		if filter.ShouldIgnore(color.ToHSL(avg)) {
			continue
		}
		results = append(results, Result{Color: avg, Population: population})
	}
	return results
}

// split runs the box-splitting loop: seed one box spanning the whole
// array, then repeatedly pop the largest-volume box and split it along
// its longest dimension until maxColors boxes have been produced or no
// box can split further.
func split(colors []color.Color32, maxColors int) []*vbox {
	ordinal := 0
	q := &boxQueue{newVbox(colors, 0, len(colors)-1, ordinal)}
	ordinal++
	heap.Init(q)

	for q.Len() < maxColors {
		b := heap.Pop(q).(*vbox)
		if !b.canSplit() {
			heap.Push(q, b)
			break
		}

		s := findSplitPoint(colors, b)
		right := newVbox(colors, s+1, b.upper, ordinal)
		ordinal++
		b.upper = s
		b.fitBox(colors)

		heap.Push(q, b)
		heap.Push(q, right)
	}
	return []*vbox(*q)
}

// findSplitPoint sorts the box's slice in place along its longest
// dimension and returns the first index at or past the channel midpoint.
// R and G use >=, blue uses a strict > -- a deliberate asymmetry
// preserved from the reference algorithm.
func findSplitPoint(colors []color.Color32, b *vbox) int {
	dim := b.longestDimension()

	slice := colors[b.lower : b.upper+1]
	sort.Slice(slice, func(i, j int) bool {
		return channelValue(slice[i], dim) < channelValue(slice[j], dim)
	})

	min, max := b.dimRange(dim)
	mid := (int(min) + int(max)) / 2

	for i := b.lower; i < b.upper; i++ {
		v := int(channelValue(colors[i], dim))
		if dim == dimB {
			if v > mid {
				return i
			}
		} else if v >= mid {
			return i
		}
	}
	return b.lower
}

// averageColor computes the population-weighted average RGB over the
// box's slice, alpha forced to 255, and the box's total population.
func averageColor(colors []color.Color32, b *vbox, pop map[color.Color32]int) (color.Color32, int) {
	var rSum, gSum, bSum, popSum int64
	for i := b.lower; i <= b.upper; i++ {
		c := colors[i]
		p := int64(pop[c])
		rSum += p * int64(c.R())
		gSum += p * int64(c.G())
		bSum += p * int64(c.B())
		popSum += p
	}
	if popSum == 0 {
		return 0, 0
	}
	r := uint8(math.Round(float64(rSum) / float64(popSum)))
	g := uint8(math.Round(float64(gSum) / float64(popSum)))
	bl := uint8(math.Round(float64(bSum) / float64(popSum)))
	return color.Pack(0xFF, r, g, bl), int(popSum)
}
