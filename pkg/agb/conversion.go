package agb

import (
	"image"
	"image/color"
	"math"

	"github.com/hansbonini/agbtools/pkg/common"
)

// IndexesFromLuma interprets the grayscale values of an image as palette
// indexes and returns them in block-scan tile order, ready for an indexed
// encoder. Luminance is normalized into [0, maxcol] with a truncating
// scale, so a full-range grayscale image maps evenly onto the palette.
//
// Fully transparent pixels do not grow the output: trailing tiles drawn as
// transparent are omitted from the result, which lets an editor mark unused
// tiles on a canvas whose tile grid is larger than the data. A transparent
// pixel whose slot is later covered by the growth of a non-transparent
// pixel keeps the zero value the growth filled in; transparent pixels
// never write.
//
// Image width and height should be multiples of the tile size; remainder
// pixels land on undefined addresses.
func IndexesFromLuma[S common.Sample](img image.Image, maxcol S, tw, th int) []S {
	b := img.Bounds()
	width := b.Dx()
	height := b.Dy()
	out := make([]S, 0, width*height)

	graymax := float64(math.MaxUint16)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			_, _, _, a := c.RGBA()
			if a == 0 {
				continue
			}

			gray := color.Gray16Model.Convert(c).(color.Gray16).Y
			idx := common.TileAddress(x, y, width, tw, th)

			if idx >= len(out) {
				out = append(out, make([]S, idx+1-len(out))...)
			}

			// Multiply before dividing so exact ratios stay exact.
			out[idx] = S(math.Floor(float64(gray) * float64(maxcol) / graymax))
		}
	}

	return out
}

// LumaFromIndexes renders decoded index data as a grayscale image, the
// inverse of IndexesFromLuma. Each index becomes a gray level scaled by
// maxcol, replicated across RGB with full alpha.
//
// The image size is taken from size when given; otherwise the smallest
// roughly square tile grid that fits the data is used. The data length
// must be a multiple of the tile area and the image size a multiple of the
// tile size. As a convenience for editors the canvas may hold more tiles
// than the data covers; pixels past the data are fully transparent.
func LumaFromIndexes[S common.Sample](data []S, maxcol uint16, tw, th int, size *image.Point) (*image.NRGBA, error) {
	if tw <= 0 || th <= 0 {
		return nil, common.FormatErrorString(common.ErrInvalidTileSize, "%dx%d is not positive", tw, th)
	}
	if maxcol == 0 {
		return nil, common.FormatErrorString(common.ErrInvalidMaxcol, "maxcol must be positive")
	}

	tstride := tw * th
	tcount := len(data) / tstride
	if tcount*tstride != len(data) {
		return nil, common.FormatErrorString(common.ErrInvalidIndexDataLength, "%d is not a multiple of the tile area %d", len(data), tstride)
	}

	var iw, ih int
	if size != nil {
		iw, ih = size.X, size.Y
	} else if tcount > 0 {
		cols := int(math.Ceil(math.Sqrt(float64(tcount))))
		iw = cols * tw
		ih = int(math.Ceil(float64(tcount)/float64(cols))) * th
	}

	if iw%tw != 0 || ih%th != 0 {
		return nil, common.FormatErrorString(common.ErrInvalidImageSize, "%dx%d is not a multiple of the tile size %dx%d", iw, ih, tw, th)
	}

	img := image.NewNRGBA(image.Rect(0, 0, iw, ih))
	for y := 0; y < ih; y++ {
		for x := 0; x < iw; x++ {
			idx := common.TileAddress(x, y, iw, tw, th)
			if idx >= len(data) {
				// Zero value pixel: transparent black.
				continue
			}
			gray := uint8(math.Round(float64(data[idx]) * 255 / float64(maxcol)))
			img.SetNRGBA(x, y, color.NRGBA{R: gray, G: gray, B: gray, A: 255})
		}
	}

	return img, nil
}
