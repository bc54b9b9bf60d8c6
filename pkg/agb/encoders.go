package agb

import (
	"image"
	"image/color"
	"io"

	"github.com/hansbonini/agbtools/pkg/common"
)

// AGB4Encoder encodes 4bpp tile patterns. Indexes are reordered into 8x8
// tiles and packed two per byte, low nibble first. Index values above 15
// are masked to 4 bits, not rejected.
type AGB4Encoder[S common.Sample] struct {
	w io.Writer
}

// NewAGB4Encoder creates a 4bpp tile encoder writing to w.
func NewAGB4Encoder[S common.Sample](w io.Writer) *AGB4Encoder[S] {
	return &AGB4Encoder[S]{w: w}
}

// EncodeIndexes writes the index data of a width x height image as packed
// 4bpp tiles. Width and height must be multiples of 8.
func (e *AGB4Encoder[S]) EncodeIndexes(data []S, width, _ int) error {
	var out [1]byte

	chunker := common.NewTileChunker(data, 8, 8, width)
	for tile, ok := chunker.Next(); ok; tile, ok = chunker.Next() {
		for i := 0; i < len(tile); i += 2 {
			lo := byte(tile[i]) & 0x0F
			hi := byte(tile[i+1]) & 0x0F
			out[0] = lo | hi<<4
			if _, err := e.w.Write(out[:]); err != nil {
				return err
			}
		}
	}

	return nil
}

// EncodePalette writes the palette as packed color words with the alpha
// flag clear.
func (e *AGB4Encoder[S]) EncodePalette(colors []color.Color) error {
	return WriteColors(e.w, colors, false)
}

// PaletteMaxcol returns the highest index value the format can store.
func (e *AGB4Encoder[S]) PaletteMaxcol() uint16 {
	return 15
}

// AGB8Encoder encodes 8bpp patterns, one index per byte. The tiled variant
// reorders indexes into 8x8 tiles; the chunky variant keeps raster order,
// which the chunker expresses as 1x1 tiles.
type AGB8Encoder[S common.Sample] struct {
	w     io.Writer
	tsize int
}

// NewAGB8EncoderTiled creates an 8bpp encoder using 8x8 tile ordering.
func NewAGB8EncoderTiled[S common.Sample](w io.Writer) *AGB8Encoder[S] {
	return &AGB8Encoder[S]{w: w, tsize: 8}
}

// NewAGB8EncoderChunky creates an 8bpp encoder that keeps raster order,
// for bitmap modes without tile reordering.
func NewAGB8EncoderChunky[S common.Sample](w io.Writer) *AGB8Encoder[S] {
	return &AGB8Encoder[S]{w: w, tsize: 1}
}

// EncodeIndexes writes the index data of a width x height image, one byte
// per index. In tiled mode width and height must be multiples of 8.
func (e *AGB8Encoder[S]) EncodeIndexes(data []S, width, _ int) error {
	out := make([]byte, e.tsize*e.tsize)

	chunker := common.NewTileChunker(data, e.tsize, e.tsize, width)
	for tile, ok := chunker.Next(); ok; tile, ok = chunker.Next() {
		for i, s := range tile {
			out[i] = byte(s)
		}
		if _, err := e.w.Write(out); err != nil {
			return err
		}
	}

	return nil
}

// EncodePalette writes the palette as packed color words with the alpha
// flag clear.
func (e *AGB8Encoder[S]) EncodePalette(colors []color.Color) error {
	return WriteColors(e.w, colors, false)
}

// PaletteMaxcol returns the highest index value the format can store.
func (e *AGB8Encoder[S]) PaletteMaxcol() uint16 {
	return 255
}

// AGB16Encoder encodes direct 15-bit color data in raster order, two bytes
// per pixel. The AGB variant always emits opaque color words; the NTR
// variant carries a one-bit transparency flag in bit 15.
type AGB16Encoder struct {
	w        io.Writer
	useAlpha bool
}

// NewAGB16Encoder creates a direct color encoder with the alpha flag
// suppressed, the AGB convention.
func NewAGB16Encoder(w io.Writer) *AGB16Encoder {
	return &AGB16Encoder{w: w, useAlpha: false}
}

// NewNTR16Encoder creates a direct color encoder that carries the alpha
// flag, the NTR convention.
func NewNTR16Encoder(w io.Writer) *AGB16Encoder {
	return &AGB16Encoder{w: w, useAlpha: true}
}

// EncodeColors packs every pixel of img in raster order. Direct color
// formats are stored without tile reordering.
func (e *AGB16Encoder) EncodeColors(img image.Image) error {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if err := writeColor(e.w, img.At(x, y), e.useAlpha); err != nil {
				return err
			}
		}
	}
	return nil
}
