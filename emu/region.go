package emu

import (
	emucore "github.com/user-none/eblitui/api"

	"github.com/Chairfield97/CPSC-305-GBA-Game/level"
)

// Region is an alias for emucore.Region.
type Region = emucore.Region

const (
	RegionNTSC = emucore.RegionNTSC
	RegionPAL  = emucore.RegionPAL
)

// RegionTiming holds the display timing the frontend paces frames by.
type RegionTiming struct {
	Scanlines int // Total scanlines per frame, including vblank
	FPS       int // Frames per second
}

// The handheld has a single LCD timing: 160 visible lines plus 68 of
// vblank at just under 60 Hz. Both regions run at it.
var LCDTiming = RegionTiming{
	Scanlines: 228,
	FPS:       60,
}

// GetTimingForRegion returns the timing for r.
func GetTimingForRegion(r Region) RegionTiming {
	return LCDTiming
}

// DefaultRegion returns the default region (NTSC).
func DefaultRegion() Region {
	return RegionNTSC
}

// DetectRegionFromROM reports NTSC for every cartridge. The bool is true
// when rom is something the console can run: a level cartridge, or no
// cartridge at all for the built-in level.
func DetectRegionFromROM(rom []byte) (Region, bool) {
	return RegionNTSC, len(rom) == 0 || level.IsCartridge(rom)
}
