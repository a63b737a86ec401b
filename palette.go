// Package palette is the public entry point of the color-cut palette
// extraction engine: given a flat pixel buffer, it builds a histogram,
// runs modified median-cut quantization, and enriches each resulting
// swatch with WCAG-derived title/body foreground text colors.
package palette

import (
	"fmt"
	"sync"

	"github.com/seanho/ImagePalette/color"
	"github.com/seanho/ImagePalette/contrast"
	"github.com/seanho/ImagePalette/histogram"
	"github.com/seanho/ImagePalette/median"
)

const (
	defaultBodyTarget  = 4.5
	defaultTitleTarget = 3.0
)

var (
	white = color.Pack(0xFF, 0xFF, 0xFF, 0xFF)
	black = color.Pack(0xFF, 0x00, 0x00, 0x00)
)

// TextColor is a foreground overlay color for text drawn on a swatch:
// Gray selects white (true) or black (false), Alpha is the overlay's
// opacity in [0,1].
type TextColor struct {
	Gray  bool
	Alpha float64
}

// Swatch is one representative color extracted from an image, its pixel
// population, and its lazily-computed WCAG text overlay colors.
type Swatch struct {
	RGB        color.RGB
	Color32    color.Color32
	Population int

	textOnce     sync.Once
	titleColor   *TextColor
	bodyColor    *TextColor
	bodyTarget   float64
	titleTarget  float64
}

// TitleTextColor returns the swatch's title-sized (contrast target 3.0 by
// default) foreground text color, or nil if no overlay meets the target.
// Computed on first call and cached.
func (s *Swatch) TitleTextColor() *TextColor {
	s.ensureTextColors()
	return s.titleColor
}

// BodyTextColor returns the swatch's body-sized (contrast target 4.5 by
// default) foreground text color, or nil if no overlay meets the target.
// Computed on first call and cached.
func (s *Swatch) BodyTextColor() *TextColor {
	s.ensureTextColors()
	return s.bodyColor
}

func (s *Swatch) ensureTextColors() {
	s.textOnce.Do(func() {
		bodyTarget := s.bodyTarget
		if bodyTarget == 0 {
			bodyTarget = defaultBodyTarget
		}
		titleTarget := s.titleTarget
		if titleTarget == 0 {
			titleTarget = defaultTitleTarget
		}
		s.titleColor, s.bodyColor = computeTextColors(s.Color32, titleTarget, bodyTarget)
	})
}

// computeTextColors resolves title/body text overlay colors: for each of title and body,
// white is preferred whenever it meets that field's own target, else black
// is used if it meets the target, else the field is left unresolved. Title
// and body are resolved independently, since title's target is at most
// body's by default, so a color meeting body's target then meets title's
// too, and white-wins-both / black-wins-both naturally falls out of the
// two independent resolutions agreeing.
func computeTextColors(bg color.Color32, titleTarget, bodyTarget float64) (title, body *TextColor) {
	title = resolveTextColor(bg, titleTarget)
	body = resolveTextColor(bg, bodyTarget)
	return title, body
}

func resolveTextColor(bg color.Color32, target float64) *TextColor {
	if a, ok := contrast.MinAlpha(white, bg, target); ok {
		return &TextColor{Gray: true, Alpha: float64(a) / 255}
	}
	if a, ok := contrast.MinAlpha(black, bg, target); ok {
		return &TextColor{Gray: false, Alpha: float64(a) / 255}
	}
	return nil
}

// Option configures Extract.
type Option func(*options)

type options struct {
	titleTarget float64
	bodyTarget  float64
}

// WithTextContrastTargets overrides the default WCAG AA targets
// (title 3.0, body 4.5) used when resolving each swatch's text colors.
func WithTextContrastTargets(title, body float64) Option {
	return func(o *options) {
		o.titleTarget = title
		o.bodyTarget = body
	}
}

// Extract runs the full palette-extraction pipeline over pixels (opaque
// ARGB32 values; alpha is ignored and reset to 0xFF during histogramming)
// and returns at most maxColors swatches in unspecified order.
//
// maxColors < 1 is a contract violation: the algorithmic core panics on
// it, and Extract is the sole recover point, returning the panic wrapped
// as an error. An empty or fully-filtered pixel set is not an error; it
// yields a nil, nil result.
func Extract(pixels []color.Color32, maxColors int, opts ...Option) (swatches []*Swatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			swatches, err = nil, e
		}
	}()

	if maxColors < 1 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidMaxColors, maxColors))
	}
	if len(pixels) == 0 {
		return nil, nil
	}

	cfg := &options{titleTarget: defaultTitleTarget, bodyTarget: defaultBodyTarget}
	for _, opt := range opts {
		opt(cfg)
	}

	hist := histogram.Build(pixels)
	if hist.Len() == 0 {
		return nil, nil
	}

	colors := hist.Colors()
	counts := hist.Counts()
	pop := make(map[color.Color32]int, len(colors))
	for i, c := range colors {
		pop[c] = counts[i]
	}

	results := median.Quantize(colors, pop, maxColors)
	if len(results) == 0 {
		return nil, nil
	}

	swatches = make([]*Swatch, len(results))
	for i, r := range results {
		swatches[i] = &Swatch{
			RGB:         r.Color.ToRGB(),
			Color32:     r.Color,
			Population:  r.Population,
			titleTarget: cfg.titleTarget,
			bodyTarget:  cfg.bodyTarget,
		}
	}
	return swatches, nil
}

// Equal reports whether two swatches have equal RGB and Population, the
// equality of RGB and Population (text colors are derived, not identity).
func (s *Swatch) Equal(other *Swatch) bool {
	return s.RGB == other.RGB && s.Population == other.Population
}
