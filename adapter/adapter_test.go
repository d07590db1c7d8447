package adapter

import (
	"testing"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
	"github.com/Chairfield97/CPSC-305-GBA-Game/level"
)

func TestFactory_SystemInfo(t *testing.T) {
	info := (&Factory{}).SystemInfo()

	if info.ScreenWidth != 240 || info.MaxScreenHeight != 160 {
		t.Errorf("expected 240x160, got %dx%d", info.ScreenWidth, info.MaxScreenHeight)
	}
	if len(info.Extensions) != 1 || info.Extensions[0] != level.Extension {
		t.Errorf("expected extensions [%s], got %v", level.Extension, info.Extensions)
	}
	if info.SerializeSize != emu.SerializeSize() {
		t.Errorf("expected serialize size %d, got %d", emu.SerializeSize(), info.SerializeSize)
	}

	seen := map[int]bool{}
	for _, b := range info.Buttons {
		if seen[int(b.ID)] {
			t.Errorf("button bit %d advertised twice", b.ID)
		}
		seen[int(b.ID)] = true
	}
	for _, bit := range []int{emu.InputBitA, emu.InputBitB, emu.InputBitStart} {
		if !seen[bit] {
			t.Errorf("button bit %d not advertised", bit)
		}
	}
}

func TestFactory_CreateEmulator(t *testing.T) {
	f := &Factory{}

	e, err := f.CreateEmulator(nil, emu.RegionNTSC)
	if err != nil {
		t.Fatalf("CreateEmulator with built-in level failed: %v", err)
	}
	defer e.Close()

	e.RunFrame()
	if got := e.GetTiming().FPS; got != 60 {
		t.Errorf("expected 60 fps, got %d", got)
	}

	if _, err := f.CreateEmulator([]byte("not a level"), emu.RegionNTSC); err == nil {
		t.Error("expected error for a corrupt cartridge")
	}
}

func TestFactory_CreateEmulatorWithConfig(t *testing.T) {
	cfg := game.Config{Delay: 0, Lives: 7, EnemyQuota: 2}
	f := &Factory{Cfg: &cfg}

	e, err := f.CreateEmulator(nil, emu.RegionNTSC)
	if err != nil {
		t.Fatalf("CreateEmulator failed: %v", err)
	}
	ge := e.(*emu.Emulator)
	if got := ge.Driver().State().Session.Lives; got != 7 {
		t.Errorf("expected 7 lives, got %d", got)
	}

	bad := game.Config{Lives: 0, EnemyQuota: 1}
	if _, err := (&Factory{Cfg: &bad}).CreateEmulator(nil, emu.RegionNTSC); err == nil {
		t.Error("expected error for zero lives")
	}
}

func TestFactory_DetectRegion(t *testing.T) {
	f := &Factory{}

	cart, err := level.Encode(level.Default())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, ok := f.DetectRegion(cart); !ok {
		t.Error("expected a level cartridge to be recognised")
	}
	if _, ok := f.DetectRegion([]byte{0xF3, 0xED, 0x56}); ok {
		t.Error("expected foreign data to be rejected")
	}
}
