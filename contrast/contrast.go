// Package contrast implements WCAG 2.0 relative luminance, contrast ratio,
// and a bounded binary search for the minimum overlay alpha that meets a
// target contrast ratio.
package contrast

import (
	"errors"
	"math"

	"github.com/seanho/ImagePalette/color"
)

// ErrTranslucentBackground is the contract-violation error panicked when
// a background color with alpha != 255 is passed to Ratio or MinAlpha.
// This is a programmer bug, signalled via panic rather than a returned
// error; Extract is the sole recover point.
var ErrTranslucentBackground = errors.New("contrast: background must be fully opaque")

// RelativeLuminance computes the WCAG relative luminance of c, ignoring
// alpha. For each channel v = c/255, s = v/12.92 if v < 0.03928, else
// ((v+0.055)/1.055)^2.4. Returns 0.2126*sR + 0.7152*sG + 0.0722*sB.
func RelativeLuminance(c color.Color32) float64 {
	return 0.2126*linearize(c.R()) + 0.7152*linearize(c.G()) + 0.0722*linearize(c.B())
}

func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v < 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio computes the WCAG contrast ratio between fg and bg. bg must be
// fully opaque; this is asserted (panics on violation), not returned as an
// error. If fg is translucent it is first composited over bg.
func Ratio(fg, bg color.Color32) float64 {
	if bg.A() != 255 {
		panic(ErrTranslucentBackground)
	}
	if fg.A() != 255 {
		fg = color.Composite(fg, bg, color.CompositeStandard)
	}
	l1 := RelativeLuminance(fg)
	l2 := RelativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// maxIterations and minRange bound the MinAlpha binary search to O(1)
// wall-clock work.
const (
	maxIterations = 10
	minRange      = 10
)

// MinAlpha searches for the minimum alpha in [0,255] at which fg
// composited over bg meets the target contrast ratio. bg must be fully
// opaque (asserted). Returns ok=false if even fully-opaque fg cannot meet
// the target.
func MinAlpha(fg, bg color.Color32, target float64) (alpha uint8, ok bool) {
	if bg.A() != 255 {
		panic(ErrTranslucentBackground)
	}

	opaqueFg := fg.SetAlphaComponent(255)
	if Ratio(opaqueFg, bg) < target {
		return 0, false
	}

	lo, hi := 0, 255
	for i := 0; i < maxIterations && hi-lo > minRange; i++ {
		mid := (lo + hi) / 2
		if Ratio(fg.SetAlphaComponent(uint8(mid)), bg) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return uint8(hi), true
}
