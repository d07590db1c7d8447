package cli

import (
	emucore "github.com/user-none/eblitui/api"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
)

// ButtonMask packs held buttons into the frontend bitmask SetInput takes.
func ButtonMask(up, down, left, right, a, b, start bool) uint32 {
	var mask uint32
	set := func(held bool, bit int) {
		if held {
			mask |= 1 << bit
		}
	}
	set(up, int(emucore.ButtonUp))
	set(down, int(emucore.ButtonDown))
	set(left, int(emucore.ButtonLeft))
	set(right, int(emucore.ButtonRight))
	set(a, emu.InputBitA)
	set(b, emu.InputBitB)
	set(start, emu.InputBitStart)
	return mask
}
