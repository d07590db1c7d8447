// Package adapter exposes the game core to eblitui frontends.
package adapter

import (
	emucore "github.com/user-none/eblitui/api"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
	"github.com/Chairfield97/CPSC-305-GBA-Game/level"
)

// Compile-time interface check.
var _ emucore.CoreFactory = (*Factory)(nil)

// Factory implements emucore.CoreFactory for the side-scroller core.
// Cfg carries the session tunables; the zero value means the defaults
// with pacing left to the frontend.
type Factory struct {
	Cfg *game.Config
}

// SystemInfo returns system metadata for UI configuration.
func (f *Factory) SystemInfo() emucore.SystemInfo {
	return emucore.SystemInfo{
		Name:            emu.Name,
		ConsoleName:     "Handheld Side-Scroller",
		Extensions:      []string{level.Extension},
		ScreenWidth:     emu.ScreenWidth,
		MaxScreenHeight: emu.MaxScreenHeight,
		AspectRatio:     float64(emu.ScreenWidth) / float64(emu.MaxScreenHeight),
		SampleRate:      48000,
		Buttons: []emucore.Button{
			{Name: "A", ID: emu.InputBitA, DefaultKey: "J", DefaultPad: "A"},
			{Name: "B", ID: emu.InputBitB, DefaultKey: "K", DefaultPad: "B"},
			{Name: "Start", ID: emu.InputBitStart, DefaultKey: "Enter", DefaultPad: "Start"},
		},
		Players: 1,
		CoreOptions: []emucore.CoreOption{
			{
				Key:         emu.OptionOverlay,
				Label:       "Status Overlay",
				Description: "Draw the enemy and life counters over the game",
				Type:        emucore.CoreOptionBool,
				Default:     "true",
				Category:    emucore.CoreOptionCategoryVideo,
			},
		},
		DataDirName:   emu.Name,
		CoreName:      emu.Name,
		CoreVersion:   emu.Version,
		SerializeSize: emu.SerializeSize(),
	}
}

// CreateEmulator creates a new emulator running the level in rom. An
// empty rom runs the built-in level.
func (f *Factory) CreateEmulator(rom []byte, region emucore.Region) (emucore.Emulator, error) {
	cfg := emu.FrontendConfig()
	if f.Cfg != nil {
		cfg = *f.Cfg
	}
	e, err := emu.NewEmulatorWithConfig(rom, region, cfg)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// DetectRegion reports the region for rom. The bool is true when rom is
// a level cartridge.
func (f *Factory) DetectRegion(rom []byte) (emucore.Region, bool) {
	return emu.DetectRegionFromROM(rom)
}
