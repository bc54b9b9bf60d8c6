// Package common provides shared utilities for tile processing.
// This file implements the generic tile addressing and chunking engine used
// by every tiled graphics format.
package common

// Sample is the constraint for pixel channel and palette index values.
// All supported sample types are unsigned, so the maximum value of the type
// can be derived by complementing zero.
type Sample interface {
	~uint8 | ~uint16 | ~uint32
}

// SampleMax returns the largest value representable by the sample type S.
func SampleMax[S Sample]() S {
	return ^S(0)
}

// TileAddress maps an image coordinate to its linear position in a
// block-scan ordered buffer. Tiles of tw x th pixels are laid out
// left-to-right, top-to-bottom, and pixels inside a tile are row-major.
// The image width must be a multiple of tw for the result to be meaningful.
func TileAddress(x, y, width, tw, th int) int {
	tx := x / tw
	px := x % tw
	ty := y / th
	py := y % th

	tile := ty*(width/tw) + tx
	return tile*(tw*th) + py*tw + px
}

// TileChunker reorders a flat row-major sample buffer into fixed size tiles.
// Tiles are emitted in row-major tile order and each tile holds its tw*th
// samples in row-major pixel order. The chunker takes ownership of the
// buffer and yields every tile exactly once; it cannot be restarted.
//
// The buffer length divided by width must be a multiple of th, and width a
// multiple of tw. The chunker does not check this; callers that violate it
// get garbage at the remainder, not an error.
type TileChunker[S Sample] struct {
	data   []S
	tw, th int
	width  int
	tile   int
	count  int
}

// NewTileChunker creates a chunker over data interpreted as a width-wide
// raster image, splitting it into tw x th tiles.
func NewTileChunker[S Sample](data []S, tw, th, width int) *TileChunker[S] {
	return &TileChunker[S]{
		data:  data,
		tw:    tw,
		th:    th,
		width: width,
		count: len(data) / (tw * th),
	}
}

// Next returns the next tile in block-scan order, or false once every tile
// has been emitted.
func (c *TileChunker[S]) Next() ([]S, bool) {
	if c.tile >= c.count {
		return nil, false
	}

	tilesPerRow := c.width / c.tw
	baseX := (c.tile % tilesPerRow) * c.tw
	baseY := (c.tile / tilesPerRow) * c.th

	tile := make([]S, 0, c.tw*c.th)
	for py := 0; py < c.th; py++ {
		row := (baseY+py)*c.width + baseX
		tile = append(tile, c.data[row:row+c.tw]...)
	}

	c.tile++
	return tile, true
}
