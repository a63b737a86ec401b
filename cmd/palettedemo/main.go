// Command palettedemo is a minimal example driver for the palette package:
// it decodes an image file, flattens its pixels into a []color.Color32,
// and prints the extracted swatches with their WCAG text overlay colors.
//
// Pixel acquisition is explicitly out of scope for the palette package
// itself; this command is the seam where image decoding
// lives, never imported by the core algorithm packages.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/seanho/ImagePalette/color"
	palette "github.com/seanho/ImagePalette"
)

func main() {
	maxColors := flag.Int("max-colors", 6, "maximum number of swatches to extract")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: palettedemo [-max-colors N] <image-file>\n")
		os.Exit(2)
	}

	swatches, err := extractFromFile(flag.Arg(0), *maxColors)
	if err != nil {
		log.Fatalf("palettedemo: %v", err)
	}

	for _, s := range swatches {
		title := "none"
		if tc := s.TitleTextColor(); tc != nil {
			title = fmt.Sprintf("gray=%v alpha=%.2f", tc.Gray, tc.Alpha)
		}
		body := "none"
		if bc := s.BodyTextColor(); bc != nil {
			body = fmt.Sprintf("gray=%v alpha=%.2f", bc.Gray, bc.Alpha)
		}
		fmt.Printf("rgb=%+v population=%d title=%s body=%s\n", s.RGB, s.Population, title, body)
	}
}

func extractFromFile(path string, maxColors int) ([]*palette.Swatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return palette.Extract(flattenPixels(img), maxColors)
}

// flattenPixels converts every pixel in img to an opaque Color32, matching
// the packed ARGB32 representation the palette package operates on.
func flattenPixels(img image.Image) []color.Color32 {
	bounds := img.Bounds()
	pixels := make([]color.Color32, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// img.At returns 16-bit-per-channel premultiplied values;
			// shift down to 8 bits per channel and force opaque.
			pixels = append(pixels, color.Pack(0xFF, uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return pixels
}
