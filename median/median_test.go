package median

import (
	"math/rand"
	"testing"

	"github.com/seanho/ImagePalette/color"
	"github.com/seanho/ImagePalette/filter"
	"github.com/seanho/ImagePalette/internal/fixture"
)

func popMap(pixels []color.Color32) map[color.Color32]int {
	pop := make(map[color.Color32]int)
	for _, p := range pixels {
		pop[p]++
	}
	return pop
}

func TestQuantizeSolidColor(t *testing.T) {
	red := color.Pack(0xFF, 0xFF, 0x00, 0x00)
	pixels := fixture.Solid(100, red)
	results := Quantize(pixels, popMap(pixels), 4)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Color.ToRGB() != (color.RGB{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("unexpected color %+v", results[0].Color.ToRGB())
	}
	if results[0].Population != 100 {
		t.Errorf("population = %d, want 100", results[0].Population)
	}
}

func TestQuantizeTwoColorsBelowCap(t *testing.T) {
	blue := color.Pack(0xFF, 0x33, 0x66, 0xCC)
	orange := color.Pack(0xFF, 0xCC, 0x66, 0x33)
	pixels := fixture.TwoColors(blue, 50, orange, 30)
	results := Quantize(pixels, popMap(pixels), 8)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	byColor := map[color.Color32]int{}
	for _, r := range results {
		byColor[r.Color] = r.Population
	}
	if byColor[blue] != 50 {
		t.Errorf("blue population = %d, want 50", byColor[blue])
	}
	if byColor[orange] != 30 {
		t.Errorf("orange population = %d, want 30", byColor[orange])
	}
}

func TestQuantizeAllFiltered(t *testing.T) {
	black := color.Pack(0xFF, 0x00, 0x00, 0x00)
	white := color.Pack(0xFF, 0xFF, 0xFF, 0xFF)
	pixels := fixture.TwoColors(black, 100, white, 100)
	results := Quantize(pixels, popMap(pixels), 4)
	if len(results) != 0 {
		t.Fatalf("expected empty palette, got %d results", len(results))
	}
}

func TestQuantizeCapEnforced(t *testing.T) {
	var survivors []color.Color32
	for _, c := range fixture.UniformCube(6, nil) {
		if filter.ShouldIgnore(color.ToHSL(c)) {
			continue
		}
		survivors = append(survivors, c)
		if len(survivors) == 64 {
			break
		}
	}
	if len(survivors) < 64 {
		t.Fatalf("fixture did not produce 64 non-filtered colors, got %d", len(survivors))
	}

	results := Quantize(survivors, popMap(survivors), 4)
	if len(results) != 4 {
		t.Fatalf("expected exactly 4 results, got %d", len(results))
	}
	total := 0
	for _, r := range results {
		total += r.Population
	}
	if total != 64 {
		t.Errorf("population sum = %d, want 64", total)
	}
}

func TestQuantizeCountNeverExceedsMax(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for trial := 0; trial < 20; trial++ {
		n := 10 + rng.Intn(500)
		pixels := make([]color.Color32, n)
		for i := range pixels {
			pixels[i] = color.Pack(0xFF, uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
		}
		maxColors := 1 + rng.Intn(32)
		results := Quantize(pixels, popMap(pixels), maxColors)
		if len(results) > maxColors {
			t.Fatalf("trial %d: got %d results, want <= %d", trial, len(results), maxColors)
		}
	}
}

func TestQuantizePopulationConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 10 + rng.Intn(500)
		pixels := make([]color.Color32, n)
		for i := range pixels {
			pixels[i] = color.Pack(0xFF, uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
		}
		pop := popMap(pixels)
		nonFiltered := 0
		for c, n := range pop {
			if !filter.ShouldIgnore(color.ToHSL(c)) {
				nonFiltered += n
			}
		}
		results := Quantize(pixels, pop, 1+rng.Intn(32))
		total := 0
		for _, r := range results {
			total += r.Population
		}
		if total > nonFiltered {
			t.Fatalf("trial %d: output population %d exceeds input non-filtered population %d", trial, total, nonFiltered)
		}
	}
}

func TestVboxFitBoxTightness(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	colors := make([]color.Color32, 50)
	for i := range colors {
		colors[i] = color.Pack(0xFF, uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
	}
	b := newVbox(colors, 0, len(colors)-1, 0)

	wantMinR, wantMaxR := uint8(255), uint8(0)
	wantMinG, wantMaxG := uint8(255), uint8(0)
	wantMinB, wantMaxB := uint8(255), uint8(0)
	for _, c := range colors {
		if c.R() < wantMinR {
			wantMinR = c.R()
		}
		if c.R() > wantMaxR {
			wantMaxR = c.R()
		}
		if c.G() < wantMinG {
			wantMinG = c.G()
		}
		if c.G() > wantMaxG {
			wantMaxG = c.G()
		}
		if c.B() < wantMinB {
			wantMinB = c.B()
		}
		if c.B() > wantMaxB {
			wantMaxB = c.B()
		}
	}
	if b.minR != wantMinR || b.maxR != wantMaxR || b.minG != wantMinG || b.maxG != wantMaxG || b.minB != wantMinB || b.maxB != wantMaxB {
		t.Fatalf("fitBox bounds = (%d,%d,%d,%d,%d,%d), want (%d,%d,%d,%d,%d,%d)",
			b.minR, b.maxR, b.minG, b.maxG, b.minB, b.maxB,
			wantMinR, wantMaxR, wantMinG, wantMaxG, wantMinB, wantMaxB)
	}
}

func TestSplitPartitionsIndices(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	colors := make([]color.Color32, 200)
	for i := range colors {
		colors[i] = color.Pack(0xFF, uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
	}
	boxes := split(colors, 16)

	covered := make([]bool, len(colors))
	for _, b := range boxes {
		for i := b.lower; i <= b.upper; i++ {
			if covered[i] {
				t.Fatalf("index %d covered by more than one box", i)
			}
			covered[i] = true
		}
	}
	for i, c := range covered {
		if !c {
			t.Fatalf("index %d not covered by any box", i)
		}
	}
}

func TestLongestDimensionTieBreak(t *testing.T) {
	colors := []color.Color32{
		color.Pack(0xFF, 0, 0, 0),
		color.Pack(0xFF, 100, 100, 100),
	}
	b := newVbox(colors, 0, 1, 0)
	if got := b.longestDimension(); got != dimR {
		t.Errorf("equal spans should break tie toward R, got %d", got)
	}
}

func TestBlueSplitAsymmetry(t *testing.T) {
	// Construct a box whose longest dimension is blue, with one value
	// sitting exactly on the midpoint, to exercise the B-channel strict
	// '>' rule versus R/G's '>='.
	colors := []color.Color32{
		color.Pack(0xFF, 0, 0, 0),
		color.Pack(0xFF, 0, 0, 100), // midpoint = 50
		color.Pack(0xFF, 0, 0, 50),
		color.Pack(0xFF, 0, 0, 100),
	}
	b := newVbox(colors, 0, len(colors)-1, 0)
	if dim := b.longestDimension(); dim != dimB {
		t.Fatalf("expected blue to be the longest dimension, got %d", dim)
	}
	split := findSplitPoint(colors, b)
	// After sorting by B ascending: [0, 50, 100, 100]. Midpoint is 50.
	// Strict '>' means index 0 (0>50) and index 1 (50>50) do not match,
	// index 2 (100>50) does, so split returns index 2; a '>=' rule would
	// have returned index 1.
	if split != 2 {
		t.Errorf("blue split point = %d, want 2 (strict > asymmetry)", split)
	}
}
