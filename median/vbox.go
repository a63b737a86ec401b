package median

import "github.com/seanho/ImagePalette/color"

// Channel dimension identifiers, used for longestDimension/findSplitPoint.
const (
	dimR = iota
	dimG
	dimB
)

// vbox is an axis-aligned region of 3-D color space, with inclusive bounds, anchored to a contiguous
// slice [lower, upper] of the quantizer's shared, mutable, in-place-sortable
// color array. It is a non-owning view, valid only for the lifetime of one
// quantization run.
type vbox struct {
	lower, upper               int
	minR, maxR, minG, maxG     uint8
	minB, maxB                 uint8
	ordinal                    int
}

// newVbox constructs a vbox over colors[lower:upper+1] and immediately
// fits its channel bounds.
func newVbox(colors []color.Color32, lower, upper, ordinal int) *vbox {
	b := &vbox{lower: lower, upper: upper, ordinal: ordinal}
	b.fitBox(colors)
	return b
}

// fitBox scans the box's slice and sets min/max of each channel to the
// observed extrema (inclusive).
func (b *vbox) fitBox(colors []color.Color32) {
	minR, maxR := uint8(255), uint8(0)
	minG, maxG := uint8(255), uint8(0)
	minB, maxB := uint8(255), uint8(0)
	for i := b.lower; i <= b.upper; i++ {
		c := colors[i]
		r, g, bl := c.R(), c.G(), c.B()
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
		if g < minG {
			minG = g
		}
		if g > maxG {
			maxG = g
		}
		if bl < minB {
			minB = bl
		}
		if bl > maxB {
			maxB = bl
		}
	}
	b.minR, b.maxR = minR, maxR
	b.minG, b.maxG = minG, maxG
	b.minB, b.maxB = minB, maxB
}

// colorCount is the number of colors in the box's slice.
func (b *vbox) colorCount() int { return b.upper - b.lower + 1 }

// canSplit reports whether the box has more than one color.
func (b *vbox) canSplit() bool { return b.colorCount() > 1 }

// volume is the product of each channel's inclusive span.
func (b *vbox) volume() int64 {
	return (int64(b.maxR) - int64(b.minR) + 1) * (int64(b.maxG) - int64(b.minG) + 1) * (int64(b.maxB) - int64(b.minB) + 1)
}

// longestDimension returns the channel with the largest max-min span,
// breaking ties R > G > B.
func (b *vbox) longestDimension() int {
	rSpan := int(b.maxR) - int(b.minR)
	gSpan := int(b.maxG) - int(b.minG)
	bSpan := int(b.maxB) - int(b.minB)
	if rSpan >= gSpan && rSpan >= bSpan {
		return dimR
	}
	if gSpan >= bSpan {
		return dimG
	}
	return dimB
}

func channelValue(c color.Color32, dim int) uint8 {
	switch dim {
	case dimR:
		return c.R()
	case dimG:
		return c.G()
	default:
		return c.B()
	}
}

func (b *vbox) dimRange(dim int) (min, max uint8) {
	switch dim {
	case dimR:
		return b.minR, b.maxR
	case dimG:
		return b.minG, b.maxG
	default:
		return b.minB, b.maxB
	}
}
