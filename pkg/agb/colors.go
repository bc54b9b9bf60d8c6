// Package agb implements the packed graphics formats of the AGB and NTR
// handheld platforms: 15-bit color words, 4bpp and 8bpp tile patterns and
// the grayscale authoring round trip for index data.
package agb

import (
	"image/color"
	"io"

	"github.com/hansbonini/agbtools/pkg/common"
)

// AGBColor represents a 15-bit BGR color word as stored in palette RAM.
// Bit layout: bit 15 alpha flag, bits 14-10 blue, bits 9-5 green,
// bits 4-0 red. Each channel keeps the top 5 bits of its 8-bit value.
type AGBColor uint16

// AGBColorFromRGBA packs 8-bit color channels into an AGB color word.
// When useAlpha is false the alpha flag is forced clear (fully opaque);
// when true the flag carries the top bit of the alpha channel, which is
// the NTR transparency convention.
func AGBColorFromRGBA(r, g, b, a uint8, useAlpha bool) AGBColor {
	word := uint16(b&0xF8)<<7 | uint16(g&0xF8)<<2 | uint16(r)>>3
	if useAlpha {
		word |= uint16(a&0x80) << 8
	}
	return AGBColor(word)
}

// ToRGBA expands an AGB color word back to an 8-bit RGBA color. The 5-bit
// channels map to the top bits of each 8-bit channel, so full intensity
// decodes as 248 rather than 255. When useAlpha is true the alpha flag
// selects between fully opaque and fully transparent; otherwise the color
// is always opaque.
func (c AGBColor) ToRGBA(useAlpha bool) color.RGBA {
	rgba := color.RGBA{
		R: uint8(c&0x1F) << 3,
		G: uint8(c>>5&0x1F) << 3,
		B: uint8(c>>10&0x1F) << 3,
		A: 255,
	}
	if useAlpha && c&0x8000 == 0 {
		rgba.A = 0
	}
	return rgba
}

// writeColor packs a single color and writes its little-endian word to w.
func writeColor(w io.Writer, c color.Color, useAlpha bool) error {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	word := AGBColorFromRGBA(nrgba.R, nrgba.G, nrgba.B, nrgba.A, useAlpha)
	return common.WriteUint16LE(w, uint16(word))
}

// WriteColors encodes an ordered sequence of colors as packed little-endian
// color words. The position of a color in the sequence is its palette
// index. No length limit is enforced here; callers supply a palette within
// the target format's index range.
func WriteColors(w io.Writer, colors []color.Color, useAlpha bool) error {
	for _, c := range colors {
		if err := writeColor(w, c, useAlpha); err != nil {
			return err
		}
	}
	return nil
}
