package game

// Display and sprite hardware limits.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
	NumSprites   = 128

	// OAMWords is the size of the attribute memory in 16-bit words.
	OAMWords = NumSprites * 4
)

// Field widths of the sprite position in attribute memory.
const (
	spriteXMask    = 0x1ff
	spriteYMask    = 0xff
	spriteTileMask = 0x3ff
)

// SpriteSize is one of the twelve hardware shape/size classes.
type SpriteSize uint8

const (
	Size8x8 SpriteSize = iota
	Size16x16
	Size32x32
	Size64x64
	Size16x8
	Size32x8
	Size32x16
	Size64x32
	Size8x16
	Size8x32
	Size16x32
	Size32x64
)

// spriteGeometry holds the size bits, shape bits and pixel extent of each class.
var spriteGeometry = [...]struct {
	size, shape uint16
	w, h        int
}{
	Size8x8:   {0, 0, 8, 8},
	Size16x16: {1, 0, 16, 16},
	Size32x32: {2, 0, 32, 32},
	Size64x64: {3, 0, 64, 64},
	Size16x8:  {0, 1, 16, 8},
	Size32x8:  {1, 1, 32, 8},
	Size32x16: {2, 1, 32, 16},
	Size64x32: {3, 1, 64, 32},
	Size8x16:  {0, 2, 8, 16},
	Size8x32:  {1, 2, 8, 32},
	Size16x32: {2, 2, 16, 32},
	Size32x64: {3, 2, 32, 64},
}

// Dimensions returns the pixel width and height of the class.
func (s SpriteSize) Dimensions() (w, h int) {
	g := spriteGeometry[s]
	return g.w, g.h
}

// SpriteSlot identifies a record in the sprite table. Slots are handed
// out once per level and never reused while an actor holds them.
type SpriteSlot int

// Sprite is the semantic view of one attribute record. X and Y always
// hold the truncated field values, exactly what the hardware would see.
type Sprite struct {
	X, Y       int
	Size       SpriteSize
	HFlip      bool
	VFlip      bool
	Tile       int
	Priority   int
	Palette256 bool
}

// SpriteSink receives the packed attribute block once per frame.
type SpriteSink interface {
	TransferSprites(words *[OAMWords]uint16)
}

// SpriteTable mirrors every hardware sprite record. Game code mutates the
// table during a frame and Commit pushes it to the hardware in one block.
type SpriteTable struct {
	sprites [NumSprites]Sprite
	next    int

	// packed is reused by Commit to avoid per-frame allocation
	packed [OAMWords]uint16
}

// NewSpriteTable returns a table with every record hidden.
func NewSpriteTable() *SpriteTable {
	t := &SpriteTable{}
	t.Clear()
	return t
}

// Clear resets the allocation counter and parks every record offscreen.
func (t *SpriteTable) Clear() {
	t.next = 0
	for i := range t.sprites {
		t.sprites[i] = Sprite{X: ScreenWidth, Y: ScreenHeight}
	}
}

// Allocate claims the next slot. Allocating more than NumSprites records
// is a precondition violation.
func (t *SpriteTable) Allocate(x, y int, size SpriteSize, hflip, vflip bool, tile, priority int) SpriteSlot {
	invariant(t.next < NumSprites, "sprite table full (%d records)", NumSprites)

	slot := SpriteSlot(t.next)
	t.next++

	t.sprites[slot] = Sprite{
		X:          x & spriteXMask,
		Y:          y & spriteYMask,
		Size:       size,
		HFlip:      hflip,
		VFlip:      vflip,
		Tile:       tile & spriteTileMask,
		Priority:   priority & 0x3,
		Palette256: true,
	}
	return slot
}

// Live returns the number of allocated slots.
func (t *SpriteTable) Live() int {
	return t.next
}

// Get returns a copy of the record in slot.
func (t *SpriteTable) Get(slot SpriteSlot) Sprite {
	return t.sprites[slot]
}

// SetPosition stores x and y masked to their field widths. Out of range
// coordinates wrap rather than clamp.
func (t *SpriteTable) SetPosition(slot SpriteSlot, x, y int) {
	s := &t.sprites[slot]
	s.Y = y & spriteYMask
	s.X = x & spriteXMask
}

// Move offsets the stored (already truncated) position by dx, dy.
func (t *SpriteTable) Move(slot SpriteSlot, dx, dy int) {
	s := &t.sprites[slot]
	t.SetPosition(slot, s.X+dx, s.Y+dy)
}

// SetHFlip sets the horizontal flip flag.
func (t *SpriteTable) SetHFlip(slot SpriteSlot, flip bool) {
	t.sprites[slot].HFlip = flip
}

// SetVFlip sets the vertical flip flag.
func (t *SpriteTable) SetVFlip(slot SpriteSlot, flip bool) {
	t.sprites[slot].VFlip = flip
}

// SetTileOffset selects the tile image the record starts at.
func (t *SpriteTable) SetTileOffset(slot SpriteSlot, offset int) {
	t.sprites[slot].Tile = offset & spriteTileMask
}

// Hide parks the record at the offscreen sentinel.
func (t *SpriteTable) Hide(slot SpriteSlot) {
	t.SetPosition(slot, ScreenWidth, ScreenHeight)
}

// Commit packs the whole table and hands it to sink in one transfer.
func (t *SpriteTable) Commit(sink SpriteSink) {
	for i := range t.sprites {
		attrs := t.sprites[i].Attributes()
		copy(t.packed[i*4:i*4+4], attrs[:])
	}
	sink.TransferSprites(&t.packed)
}
