package pkg

import (
	"image"
	"image/color"

	"github.com/hansbonini/agbtools/pkg/agb"
	"github.com/hansbonini/agbtools/pkg/common"
)

// Default CLUT palettes for authoring (packed AGBColor words)
var SpriteClut = [16]uint16{
	0x0000, 0x7FFF, 0x001F, 0x03E0,
	0x7C00, 0x03FF, 0x7C1F, 0x7FE0,
	0x0010, 0x0200, 0x4000, 0x0210,
	0x4010, 0x4200, 0x294A, 0x5AD6,
}

var UIClut = [16]uint16{
	0x0000, 0x0842, 0x1084, 0x18C6,
	0x2108, 0x294A, 0x318C, 0x39CE,
	0x4210, 0x4A52, 0x5294, 0x5AD6,
	0x6318, 0x6B5A, 0x739C, 0x7BDE,
}

// Graphics format identifiers accepted by the gfx commands
const (
	Format4bpp       = "4bpp"
	Format8bpp       = "8bpp"
	Format8bppChunky = "8bpp-chunky"
	Format16bpp      = "16bpp"
	FormatNTR16      = "ntr16"
)

// EncodeOptions holds the parameters for an image to binary conversion
type EncodeOptions struct {
	Format      string // one of the Format constants
	InputFile   string // source PNG or BMP image
	OutputFile  string // destination for the packed pattern data
	PaletteFile string // optional destination for packed palette data
	Clut        string // optional stock palette name ("sprite", "ui")
	MaxColors   int    // optional palette size cap below the format limit
}

// DecodeOptions holds the parameters for rendering packed index data as an
// editable grayscale image
type DecodeOptions struct {
	Format     string // 4bpp or 8bpp variant, selects the unpacking
	InputFile  string // source pattern data
	OutputFile string // destination PNG
	TileWidth  int
	TileHeight int
	Width      int // optional explicit canvas width
	Height     int // optional explicit canvas height
}

// IndexedGraphicsEncoder interface defines the contract of palette-based
// pattern encoders
type IndexedGraphicsEncoder[S common.Sample] interface {
	EncodeIndexes(data []S, width, height int) error
	EncodePalette(colors []color.Color) error
	PaletteMaxcol() uint16
}

// DirectGraphicsEncoder interface defines the contract of direct color
// pattern encoders
type DirectGraphicsEncoder interface {
	EncodeColors(img image.Image) error
}

// GfxProcessor interface defines file-level graphics conversion operations
type GfxProcessor interface {
	Encode(opts EncodeOptions) error
	Decode(opts DecodeOptions) error
	PackPalette(manifestFile, outputFile string) error
	DumpPalette(inputFile, manifestFile string, useAlpha bool) error
}

// StockPalette returns one of the built-in authoring palettes by name
func StockPalette(name string) (color.Palette, bool) {
	var clut [16]uint16
	switch name {
	case "sprite":
		clut = SpriteClut
	case "ui":
		clut = UIClut
	default:
		return nil, false
	}

	pal := make(color.Palette, len(clut))
	for i, word := range clut {
		pal[i] = agb.AGBColor(word).ToRGBA(false)
	}
	return pal, true
}
