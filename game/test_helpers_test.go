package game

import "testing"

// groundTile is a solid tile from the first ground range.
const groundTile = 545

// newGroundMap returns a 64x32 collision map with solid rows 18 and 19,
// which puts the ground surface at pixel row 144.
func newGroundMap(t *testing.T) *Tilemap {
	t.Helper()
	m, err := NewBlankTilemap(64, 32)
	if err != nil {
		t.Fatalf("NewBlankTilemap failed: %v", err)
	}
	for col := 0; col < 64; col++ {
		m.Set(col, 18, groundTile)
		m.Set(col, 19, groundTile)
	}
	return m
}

// newTestLevel returns a flat level with every enemy parked well to the
// right of the screen.
func newTestLevel(t *testing.T) *Level {
	t.Helper()
	bg, err := NewBlankTilemap(32, 32)
	if err != nil {
		t.Fatalf("NewBlankTilemap failed: %v", err)
	}
	lvl := &Level{
		Background: bg,
		Foreground: newGroundMap(t),
	}
	for i := range lvl.Spawns {
		lvl.Spawns[i] = EnemySpawn{X: 300 + i*24, Y: 128, Frame: EnemyFrame}
	}
	return lvl
}

// keysHolding returns a key register value with the given buttons down.
func keysHolding(buttons ...Button) uint16 {
	keys := KeysReleased
	for _, b := range buttons {
		keys &^= uint16(b)
	}
	return keys
}

// fakeHardware records everything the driver pushes to it.
type fakeHardware struct {
	keys      uint16
	vblanks   int
	transfers int
	oam       [OAMWords]uint16
	scroll    [4][2]int16
	text      [TextRows]string
	calls     []string

	// onVBlank runs after each WaitVBlank, letting tests script input
	onVBlank func(h *fakeHardware)
}

func newFakeHardware() *fakeHardware {
	return &fakeHardware{keys: KeysReleased}
}

func (h *fakeHardware) WaitVBlank() {
	h.vblanks++
	h.calls = append(h.calls, "vblank")
	if h.onVBlank != nil {
		h.onVBlank(h)
	}
}

func (h *fakeHardware) Keys() uint16 {
	return h.keys
}

func (h *fakeHardware) TransferSprites(words *[OAMWords]uint16) {
	h.transfers++
	h.oam = *words
	h.calls = append(h.calls, "sprites")
}

func (h *fakeHardware) SetScroll(layer int, x, y int16) {
	h.scroll[layer] = [2]int16{x, y}
	h.calls = append(h.calls, "scroll")
}

func (h *fakeHardware) SetText(row int, text string) {
	h.text[row] = text
	h.calls = append(h.calls, "text")
}
