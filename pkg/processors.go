// Package pkg provides the file-level conversion pipeline between editable
// images and packed AGB/NTR graphics data.
package pkg

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/hansbonini/agbtools/pkg/agb"
	"github.com/hansbonini/agbtools/pkg/common"
	"github.com/lucasb-eyer/go-colorful"

	_ "golang.org/x/image/bmp" // register BMP input support
)

// GfxFileProcessor implements GfxProcessor over files on disk
type GfxFileProcessor struct{}

// NewGfxProcessor creates a new graphics file processor
func NewGfxProcessor() *GfxFileProcessor {
	return &GfxFileProcessor{}
}

// loadImage opens and decodes a PNG or BMP image
func (p *GfxFileProcessor) loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToLoadImage, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToDecodeImage, err)
	}
	return img, nil
}

// Encode converts an input image into packed pattern data for the selected
// format. Indexed formats also resolve a palette for the image and can
// write it to a separate file.
func (p *GfxFileProcessor) Encode(opts EncodeOptions) error {
	img, err := p.loadImage(opts.InputFile)
	if err != nil {
		return err
	}
	b := img.Bounds()
	common.LogDebug(common.DebugImageLoaded, opts.InputFile, b.Dx(), b.Dy())

	out, err := os.Create(opts.OutputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateOutputFile, err)
	}
	defer out.Close()

	switch opts.Format {
	case Format16bpp:
		if err := agb.NewAGB16Encoder(out).EncodeColors(img); err != nil {
			return common.FormatError(common.ErrFailedToEncodeColors, err)
		}
	case FormatNTR16:
		if err := agb.NewNTR16Encoder(out).EncodeColors(img); err != nil {
			return common.FormatError(common.ErrFailedToEncodeColors, err)
		}
	case Format4bpp, Format8bpp, Format8bppChunky:
		if err := p.encodeIndexed(opts, img, out); err != nil {
			return err
		}
	default:
		return common.FormatErrorString(common.ErrUnknownFormat, "%q", opts.Format)
	}

	common.LogInfo(common.InfoEncodedGraphics, opts.InputFile, opts.Format, opts.OutputFile)
	return nil
}

// encodeIndexed handles the palette-based formats
func (p *GfxFileProcessor) encodeIndexed(opts EncodeOptions, img image.Image, out io.Writer) error {
	var enc IndexedGraphicsEncoder[uint8]
	switch opts.Format {
	case Format4bpp:
		enc = agb.NewAGB4Encoder[uint8](out)
	case Format8bpp:
		enc = agb.NewAGB8EncoderTiled[uint8](out)
	default:
		enc = agb.NewAGB8EncoderChunky[uint8](out)
	}

	maxColors := int(enc.PaletteMaxcol()) + 1
	if opts.MaxColors > 0 && opts.MaxColors < maxColors {
		maxColors = opts.MaxColors
	}

	palette, err := p.resolvePalette(img, opts.Clut, maxColors)
	if err != nil {
		return err
	}
	common.LogDebug(common.DebugPaletteSize, len(palette))

	indexes := MatchIndexes(img, palette)
	common.LogDebug(common.DebugIndexCount, len(indexes))

	b := img.Bounds()
	if err := enc.EncodeIndexes(indexes, b.Dx(), b.Dy()); err != nil {
		return common.FormatError(common.ErrFailedToEncodeIndexes, err)
	}

	if opts.PaletteFile != "" {
		pf, err := os.Create(opts.PaletteFile)
		if err != nil {
			return common.FormatError(common.ErrFailedToCreateOutputFile, err)
		}
		defer pf.Close()

		if err := agb.WriteColors(pf, palette, false); err != nil {
			return common.FormatError(common.ErrFailedToEncodePalette, err)
		}
		common.LogInfo(common.InfoPaletteWritten, opts.PaletteFile)
	}
	return nil
}

// resolvePalette picks the palette for an indexed encode: a stock CLUT if
// requested, the image's own palette if it has one, or a median cut
// quantization of the image otherwise.
func (p *GfxFileProcessor) resolvePalette(img image.Image, clut string, maxColors int) (color.Palette, error) {
	if clut != "" {
		pal, ok := StockPalette(clut)
		if !ok {
			return nil, common.FormatErrorString(common.ErrUnknownClut, "%q", clut)
		}
		return pal, nil
	}

	if pm, ok := img.(*image.Paletted); ok {
		pal := pm.Palette
		if len(pal) > maxColors {
			common.LogWarn(common.WarnPaletteTruncated, len(pal), maxColors)
			pal = pal[:maxColors]
		}
		return pal, nil
	}

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	return q.Quantize(make(color.Palette, 0, maxColors), img), nil
}

// MatchIndexes maps every pixel of img to its nearest palette entry by
// perceptual (CIE-Lab) distance and returns the indexes in raster order.
// Fully transparent pixels map to index 0.
func MatchIndexes(img image.Image, palette color.Palette) []uint8 {
	labs := make([]colorful.Color, len(palette))
	usable := make([]bool, len(palette))
	for i, pc := range palette {
		if c, ok := colorful.MakeColor(pc); ok {
			labs[i] = c
			usable[i] = true
		}
	}

	b := img.Bounds()
	indexes := make([]uint8, 0, b.Dx()*b.Dy())
	transparent := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				indexes = append(indexes, 0)
				transparent++
				continue
			}

			cc, ok := colorful.MakeColor(c)
			if !ok {
				indexes = append(indexes, 0)
				continue
			}

			best := 0
			bestDist := math.MaxFloat64
			for i := range palette {
				if !usable[i] {
					continue
				}
				if d := cc.DistanceLab(labs[i]); d < bestDist {
					best, bestDist = i, d
				}
			}
			indexes = append(indexes, uint8(best))
		}
	}

	if transparent > 0 {
		common.LogWarn(common.WarnTransparentPixels, transparent)
	}
	return indexes
}

// Decode renders packed index data as a grayscale PNG for editing
func (p *GfxFileProcessor) Decode(opts DecodeOptions) error {
	f, err := os.Open(opts.InputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToReadIndexData, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return common.FormatError(common.ErrFailedToReadIndexData, err)
	}
	raw, err := common.ReadBytes(f, int(info.Size()))
	if err != nil {
		return common.FormatError(common.ErrFailedToReadIndexData, err)
	}

	var indexes []uint8
	var maxcol uint16
	switch opts.Format {
	case Format4bpp:
		indexes = UnpackNibbles(raw)
		maxcol = 15
	case Format8bpp, Format8bppChunky:
		indexes = raw
		maxcol = 255
	default:
		return common.FormatErrorString(common.ErrUnknownFormat, "%q", opts.Format)
	}

	var size *image.Point
	if opts.Width > 0 || opts.Height > 0 {
		size = &image.Point{X: opts.Width, Y: opts.Height}
	}

	img, err := agb.LumaFromIndexes(indexes, maxcol, opts.TileWidth, opts.TileHeight, size)
	if err != nil {
		return common.FormatError(common.ErrFailedToRenderIndexes, err)
	}
	common.LogDebug(common.DebugDerivedCanvas, img.Bounds().Dx(), img.Bounds().Dy())

	out, err := os.Create(opts.OutputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateOutputFile, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return common.FormatError(common.ErrFailedToWritePNG, err)
	}

	common.LogInfo(common.InfoDecodedGraphics, len(indexes), opts.OutputFile)
	return nil
}

// UnpackNibbles expands packed 4bpp bytes into one index per sample,
// low nibble first
func UnpackNibbles(raw []byte) []uint8 {
	out := make([]uint8, 0, len(raw)*2)
	for _, b := range raw {
		out = append(out, b&0x0F, b>>4)
	}
	return out
}

// PackPalette converts a YAML palette manifest into packed color words
func (p *GfxFileProcessor) PackPalette(manifestFile, outputFile string) error {
	f, err := os.Open(manifestFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToLoadManifest, err)
	}
	defer f.Close()

	m, err := LoadPaletteManifest(f)
	if err != nil {
		return err
	}

	pal, err := m.Palette()
	if err != nil {
		return err
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateOutputFile, err)
	}
	defer out.Close()

	if err := agb.WriteColors(out, []color.Color(pal), m.UseAlpha); err != nil {
		return common.FormatError(common.ErrFailedToEncodePalette, err)
	}

	common.LogInfo(common.InfoPaletteWritten, outputFile)
	return nil
}

// DumpPalette reads packed color words and writes them back out as a YAML
// palette manifest
func (p *GfxFileProcessor) DumpPalette(inputFile, manifestFile string, useAlpha bool) error {
	f, err := os.Open(inputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToReadPalette, err)
	}
	defer f.Close()

	var colors []string
	for {
		word, err := common.ReadUint16LE(f)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return common.FormatErrorString(common.ErrOddPaletteSize, "%s", inputFile)
		}
		if err != nil {
			return common.FormatError(common.ErrFailedToReadPalette, err)
		}
		colors = append(colors, FormatHexColor(agb.AGBColor(word).ToRGBA(useAlpha)))
	}

	name := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	m := &PaletteManifest{Name: name, UseAlpha: useAlpha, Colors: colors}

	out, err := os.Create(manifestFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateOutputFile, err)
	}
	defer out.Close()

	if err := m.Write(out); err != nil {
		return common.FormatError(common.ErrFailedToWriteManifest, err)
	}

	common.LogInfo(common.InfoManifestWritten, manifestFile)
	return nil
}
