package game

// Attribute word bit layout.
//
//	attr0: bits 0-7 Y, bit 13 256-colour mode, bits 14-15 shape
//	attr1: bits 0-8 X, bit 12 h-flip, bit 13 v-flip, bits 14-15 size
//	attr2: bits 0-9 tile offset, bits 10-11 priority
//	attr3: unused (affine parameters)
const (
	attr0Palette256 = 1 << 13
	attr0ShapeShift = 14
	attr1HFlip      = 1 << 12
	attr1VFlip      = 1 << 13
	attr1SizeShift  = 14
	attr2PrioShift  = 10
)

// Attributes packs the record into its four hardware words. This is the
// only place the bit layout is known to the game.
func (s Sprite) Attributes() [4]uint16 {
	g := spriteGeometry[s.Size]

	a0 := uint16(s.Y&spriteYMask) | g.shape<<attr0ShapeShift
	if s.Palette256 {
		a0 |= attr0Palette256
	}

	a1 := uint16(s.X&spriteXMask) | g.size<<attr1SizeShift
	if s.HFlip {
		a1 |= attr1HFlip
	}
	if s.VFlip {
		a1 |= attr1VFlip
	}

	a2 := uint16(s.Tile&spriteTileMask) | uint16(s.Priority&0x3)<<attr2PrioShift

	return [4]uint16{a0, a1, a2, 0}
}
