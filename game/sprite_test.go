package game

import "testing"

type countingSink struct {
	calls int
	words [OAMWords]uint16
}

func (s *countingSink) TransferSprites(words *[OAMWords]uint16) {
	s.calls++
	s.words = *words
}

// TestSpriteTable_Clear tests that every record starts at the offscreen sentinel
func TestSpriteTable_Clear(t *testing.T) {
	st := NewSpriteTable()
	st.Allocate(10, 10, Size8x8, false, false, 1, 0)
	st.Clear()

	if st.Live() != 0 {
		t.Errorf("live: expected 0, got %d", st.Live())
	}
	for i := 0; i < NumSprites; i++ {
		s := st.Get(SpriteSlot(i))
		if s.X != ScreenWidth || s.Y != ScreenHeight {
			t.Fatalf("slot %d: expected (%d,%d), got (%d,%d)", i, ScreenWidth, ScreenHeight, s.X, s.Y)
		}
	}

	attrs := st.Get(0).Attributes()
	if attrs != [4]uint16{ScreenHeight, ScreenWidth, 0, 0} {
		t.Errorf("cleared attributes: expected [160 240 0 0], got %v", attrs)
	}
}

// TestSpriteTable_AllocateSequential tests slot hand-out order
func TestSpriteTable_AllocateSequential(t *testing.T) {
	st := NewSpriteTable()
	for i := 0; i < 5; i++ {
		if slot := st.Allocate(0, 0, Size8x8, false, false, 0, 0); slot != SpriteSlot(i) {
			t.Errorf("allocation %d: expected slot %d, got %d", i, i, slot)
		}
	}
	if st.Live() != 5 {
		t.Errorf("live: expected 5, got %d", st.Live())
	}
}

// TestSpriteTable_PositionTruncation tests that coordinates wrap to field width
func TestSpriteTable_PositionTruncation(t *testing.T) {
	st := NewSpriteTable()
	slot := st.Allocate(0, 0, Size16x16, false, false, 0, 0)

	tests := []struct {
		x, y         int
		wantX, wantY int
	}{
		{600, 300, 88, 44},
		{-1, -1, 511, 255},
		{511, 255, 511, 255},
		{512, 256, 0, 0},
	}

	for _, tt := range tests {
		st.SetPosition(slot, tt.x, tt.y)
		s := st.Get(slot)
		if s.X != tt.wantX || s.Y != tt.wantY {
			t.Errorf("SetPosition(%d, %d): expected (%d,%d), got (%d,%d)",
				tt.x, tt.y, tt.wantX, tt.wantY, s.X, s.Y)
		}
	}
}

// TestSpriteTable_MoveRoundTrip tests that opposite moves cancel even across wraps
func TestSpriteTable_MoveRoundTrip(t *testing.T) {
	st := NewSpriteTable()
	slot := st.Allocate(5, 250, Size8x8, false, false, 0, 0)

	for i := 0; i < 1000; i++ {
		st.Move(slot, 3, 7)
	}
	for i := 0; i < 1000; i++ {
		st.Move(slot, -3, -7)
	}

	s := st.Get(slot)
	if s.X != 5 || s.Y != 250 {
		t.Errorf("expected (5,250), got (%d,%d)", s.X, s.Y)
	}
}

// TestSpriteTable_MoveDrift tests that Move works from the truncated position
func TestSpriteTable_MoveDrift(t *testing.T) {
	st := NewSpriteTable()
	slot := st.Allocate(0, 0, Size8x8, false, false, 0, 0)

	for i := 0; i < 600; i++ {
		st.Move(slot, 1, -1)
	}

	s := st.Get(slot)
	if s.X != 600&0x1ff || s.Y != (-600)&0xff {
		t.Errorf("expected (%d,%d), got (%d,%d)", 600&0x1ff, (-600)&0xff, s.X, s.Y)
	}
}

// TestSprite_Attributes tests the packed hardware words
func TestSprite_Attributes(t *testing.T) {
	st := NewSpriteTable()
	slot := st.Allocate(10, 20, Size16x32, true, false, 48, 2)

	got := st.Get(slot).Attributes()
	want := [4]uint16{
		20 | 1<<13 | 2<<14,
		10 | 1<<12 | 2<<14,
		48 | 2<<10,
		0,
	}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	st.SetVFlip(slot, true)
	st.SetHFlip(slot, false)
	got = st.Get(slot).Attributes()
	if got[1] != 10|1<<13|2<<14 {
		t.Errorf("attr1 after flip change: expected 0x%04X, got 0x%04X", 10|1<<13|2<<14, got[1])
	}
}

// TestSprite_AttributesShapes tests shape and size bits per class
func TestSprite_AttributesShapes(t *testing.T) {
	tests := []struct {
		size        SpriteSize
		shape, bits uint16
	}{
		{Size8x8, 0, 0},
		{Size64x64, 0, 3},
		{Size32x8, 1, 1},
		{Size8x32, 2, 1},
		{Size32x64, 2, 3},
	}

	for _, tt := range tests {
		a := Sprite{Size: tt.size}.Attributes()
		if a[0]>>14 != tt.shape {
			t.Errorf("size %d: shape expected %d, got %d", tt.size, tt.shape, a[0]>>14)
		}
		if a[1]>>14 != tt.bits {
			t.Errorf("size %d: size bits expected %d, got %d", tt.size, tt.bits, a[1]>>14)
		}
	}
}

// TestSpriteTable_CommitSingleTransfer tests that a commit is one block transfer
func TestSpriteTable_CommitSingleTransfer(t *testing.T) {
	st := NewSpriteTable()
	st.Allocate(1, 2, Size8x8, false, false, 3, 0)
	slot := st.Allocate(100, 50, Size16x16, false, false, 64, 1)

	sink := &countingSink{}
	st.Commit(sink)

	if sink.calls != 1 {
		t.Fatalf("transfers: expected 1, got %d", sink.calls)
	}
	want := st.Get(slot).Attributes()
	base := int(slot) * 4
	for i := 0; i < 4; i++ {
		if sink.words[base+i] != want[i] {
			t.Errorf("word %d: expected 0x%04X, got 0x%04X", base+i, want[i], sink.words[base+i])
		}
	}
	// unused records are committed hidden
	if sink.words[8] != ScreenHeight || sink.words[9] != ScreenWidth {
		t.Errorf("unused slot: expected (160,240), got (%d,%d)", sink.words[8], sink.words[9])
	}
}

// TestSpriteSize_Dimensions tests pixel extents
func TestSpriteSize_Dimensions(t *testing.T) {
	if w, h := Size16x32.Dimensions(); w != 16 || h != 32 {
		t.Errorf("16x32: got %dx%d", w, h)
	}
	if w, h := Size64x32.Dimensions(); w != 64 || h != 32 {
		t.Errorf("64x32: got %dx%d", w, h)
	}
}
