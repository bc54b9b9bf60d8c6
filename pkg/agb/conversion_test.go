// Package agb provides tests for the luma/index authoring round trip.
package agb

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/hansbonini/agbtools/pkg/common"
)

// grayImage builds an opaque image whose gray level at (x, y) is y*width+x
// truncated to 8 bits.
func grayImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(y*width + x)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestLumaIndexRoundTrip(t *testing.T) {
	src := grayImage(16, 16)

	indexes := IndexesFromLuma(src, uint8(255), 8, 8)
	if len(indexes) != 256 {
		t.Fatalf("IndexesFromLuma() produced %d indexes, want 256", len(indexes))
	}

	size := image.Point{X: 16, Y: 16}
	out, err := LumaFromIndexes(indexes, 255, 8, 8, &size)
	if err != nil {
		t.Fatalf("LumaFromIndexes() failed: %v", err)
	}

	// Every opaque pixel's luminance survives the round trip exactly,
	// including values like 111 that are sensitive to the scale math.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := src.NRGBAAt(x, y)
			got := out.NRGBAAt(x, y)
			if got.R != want.R || got.A != 255 {
				t.Fatalf("pixel (%d, %d) = %v, want gray %d opaque", x, y, got, want.R)
			}
		}
	}
}

func TestIndexesFromLuma_Normalization(t *testing.T) {
	testCases := []struct {
		name     string
		gray     uint8
		expected uint8
	}{
		{"black", 0, 0},
		{"just below first step", 16, 0},
		{"first step", 17, 1},
		{"below midpoint", 128, 7},
		{"white", 255, 15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					img.SetNRGBA(x, y, color.NRGBA{R: tc.gray, G: tc.gray, B: tc.gray, A: 255})
				}
			}

			indexes := IndexesFromLuma(img, uint8(15), 8, 8)
			if len(indexes) != 64 {
				t.Fatalf("IndexesFromLuma() produced %d indexes, want 64", len(indexes))
			}
			if indexes[0] != tc.expected {
				t.Errorf("gray %d maps to index %d, want %d", tc.gray, indexes[0], tc.expected)
			}
		})
	}
}

func TestIndexesFromLuma_TransparentTilesOmitted(t *testing.T) {
	// Two tiles stacked vertically; the bottom one is fully transparent
	// and must not grow the output.
	img := image.NewNRGBA(image.Rect(0, 0, 8, 16))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	indexes := IndexesFromLuma(img, uint8(255), 8, 8)
	if len(indexes) != 64 {
		t.Errorf("IndexesFromLuma() produced %d indexes, want 64", len(indexes))
	}
}

func TestIndexesFromLuma_TransparentSlotZeroFilled(t *testing.T) {
	// A transparent pixel whose slot is later covered by an opaque
	// pixel's growth gets the zero value, deterministically.
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{})

	indexes := IndexesFromLuma(img, uint8(255), 8, 8)
	if len(indexes) != 64 {
		t.Fatalf("IndexesFromLuma() produced %d indexes, want 64", len(indexes))
	}
	if indexes[0] != 0 {
		t.Errorf("transparent slot = %d, want 0", indexes[0])
	}
	if indexes[1] != 200 {
		t.Errorf("opaque slot = %d, want 200", indexes[1])
	}
}

func TestLumaFromIndexes_BadLength(t *testing.T) {
	data := make([]uint8, 63)
	if _, err := LumaFromIndexes(data, 255, 8, 8, nil); err == nil {
		t.Error("LumaFromIndexes() should fail when the data length is not a multiple of the tile area")
	}
}

func TestLumaFromIndexes_ZeroMaxcol(t *testing.T) {
	data := make([]uint8, 64)
	_, err := LumaFromIndexes(data, 0, 8, 8, nil)
	if err == nil {
		t.Fatal("LumaFromIndexes() should fail when maxcol is zero")
	}
	if !strings.Contains(err.Error(), common.ErrInvalidMaxcol) {
		t.Errorf("error %q should contain %q", err.Error(), common.ErrInvalidMaxcol)
	}
}

func TestLumaFromIndexes_BadCanvas(t *testing.T) {
	data := make([]uint8, 64)
	size := image.Point{X: 10, Y: 10}
	if _, err := LumaFromIndexes(data, 255, 8, 8, &size); err == nil {
		t.Error("LumaFromIndexes() should fail when the canvas is not tile aligned")
	}
}

func TestLumaFromIndexes_DerivedCanvas(t *testing.T) {
	// Five 8x8 tiles fit a 3x2 tile grid: 24x16 pixels, with the sixth
	// tile position left fully transparent.
	data := make([]uint8, 5*64)
	for i := range data {
		data[i] = 255
	}

	img, err := LumaFromIndexes(data, 255, 8, 8, nil)
	if err != nil {
		t.Fatalf("LumaFromIndexes() failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 24 || b.Dy() != 16 {
		t.Fatalf("derived canvas = %dx%d, want 24x16", b.Dx(), b.Dy())
	}

	// Inside the data: opaque white.
	if got := img.NRGBAAt(0, 0); got.A != 255 || got.R != 255 {
		t.Errorf("pixel (0, 0) = %v, want opaque white", got)
	}
	// Sixth tile position (col 2, row 1) is past the data: transparent.
	if got := img.NRGBAAt(16, 8); got.A != 0 {
		t.Errorf("pixel (16, 8) = %v, want fully transparent", got)
	}
}
