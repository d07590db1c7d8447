package game

import (
	"errors"
	"fmt"
)

const (
	// TileSize is the edge length of a background tile in pixels.
	TileSize = 8

	// BlockTiles is the edge length of a screen block in tiles.
	BlockTiles = 32
)

// ErrBadDimensions is returned for maps that are not 32 or 64 tiles on an axis.
var ErrBadDimensions = errors.New("tilemap dimensions must be 32 or 64 tiles")

// ErrBadLength is returned when the tile slice does not match the dimensions.
var ErrBadLength = errors.New("tilemap length does not match dimensions")

// Tilemap is a grid of tile indices. Maps wider or taller than
// one screen block are stored as consecutive 32x32 blocks: the right
// half follows the left at +0x400 and the bottom half follows at +0x400
// (32 wide) or +0x800 (64 wide).
type Tilemap struct {
	Width  int // in tiles
	Height int // in tiles
	Tiles  []uint16
}

// NewTilemap validates the dimensions and wraps tiles without copying.
func NewTilemap(width, height int, tiles []uint16) (*Tilemap, error) {
	if !validAxis(width) || !validAxis(height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d entries, need %d", ErrBadLength, len(tiles), width*height)
	}
	return &Tilemap{Width: width, Height: height, Tiles: tiles}, nil
}

// NewBlankTilemap allocates a map filled with tile 0.
func NewBlankTilemap(width, height int) (*Tilemap, error) {
	if !validAxis(width) || !validAxis(height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	return NewTilemap(width, height, make([]uint16, width*height))
}

func validAxis(n int) bool {
	return n == BlockTiles || n == 2*BlockTiles
}

// blockIndex maps a wrapped tile coordinate to its slot in block layout.
func blockIndex(x, y, width, height int) int {
	offset := 0

	// right-hand blocks of a 64 wide map
	if width == 64 && x >= 32 {
		x -= 32
		offset += 0x400
	}

	// bottom blocks sit after one block (32 wide) or two blocks (64 wide)
	if height == 64 && y >= 32 {
		y -= 32
		if width == 64 {
			offset += 0x800
		} else {
			offset += 0x400
		}
	}

	return y*BlockTiles + x + offset
}

// At returns the tile at column col and row row, wrapping both axes.
func (m *Tilemap) At(col, row int) uint16 {
	col, row = wrap(col, m.Width), wrap(row, m.Height)
	return m.Tiles[blockIndex(col, row, m.Width, m.Height)]
}

// Set stores a tile at column col and row row, wrapping both axes.
// Only level builders call Set; the map is read-only during play.
func (m *Tilemap) Set(col, row int, tile uint16) {
	col, row = wrap(col, m.Width), wrap(row, m.Height)
	m.Tiles[blockIndex(col, row, m.Width, m.Height)] = tile
}

// LookupTile returns the tile under screen pixel (x, y) once the layer
// scroll is applied. Both axes wrap around the map.
func LookupTile(x, y, xScroll, yScroll int, m *Tilemap) uint16 {
	x += xScroll
	y += yScroll

	// pixels to tiles
	x >>= 3
	y >>= 3

	x = wrap(x, m.Width)
	y = wrap(y, m.Height)

	index := blockIndex(x, y, m.Width, m.Height)
	invariant(index >= 0 && index < len(m.Tiles), "tile index %d outside %dx%d map", index, m.Width, m.Height)
	return m.Tiles[index]
}

// wrap reduces v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
