package emu

import (
	"image/color"
	"testing"

	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
	"github.com/Chairfield97/CPSC-305-GBA-Game/level"
)

// newTestEmulator creates an emulator running the built-in level.
func newTestEmulator(t *testing.T) *Emulator {
	t.Helper()
	e, err := NewEmulator(nil, RegionNTSC)
	if err != nil {
		t.Fatalf("NewEmulator failed: %v", err)
	}
	return e
}

// encodedDefault returns the built-in level as cartridge bytes.
func encodedDefault(t *testing.T) []byte {
	t.Helper()
	data, err := level.Encode(level.Default())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return data
}

// blankLayer returns an empty 32x32 tilemap.
func blankLayer(t *testing.T) *game.Tilemap {
	t.Helper()
	m, err := game.NewBlankTilemap(32, 32)
	if err != nil {
		t.Fatalf("NewBlankTilemap failed: %v", err)
	}
	return m
}

// pixelAt reads one framebuffer pixel.
func pixelAt(v *VDP, x, y int) color.RGBA {
	return v.Framebuffer().RGBAAt(x, y)
}

// commitSprites packs a sprite table straight into the VDP.
func commitSprites(v *VDP, st *game.SpriteTable) {
	st.Commit(oamSink{v})
}

type oamSink struct{ v *VDP }

func (s oamSink) TransferSprites(words *[game.OAMWords]uint16) {
	s.v.LoadOAM(words)
}
