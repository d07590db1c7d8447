package emu

import (
	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
	emucore "github.com/user-none/eblitui/api"
)

// Frontend button bit numbers beyond the d-pad, as advertised in the
// system info.
const (
	InputBitA      = 4
	InputBitB      = 5
	InputBitSelect = 6
	InputBitStart  = 7
	InputBitL      = 8
	InputBitR      = 9
)

// padMap pairs frontend bits with key register buttons.
var padMap = [...]struct {
	bit    int
	button game.Button
}{
	{int(emucore.ButtonUp), game.ButtonUp},
	{int(emucore.ButtonDown), game.ButtonDown},
	{int(emucore.ButtonLeft), game.ButtonLeft},
	{int(emucore.ButtonRight), game.ButtonRight},
	{InputBitA, game.ButtonA},
	{InputBitB, game.ButtonB},
	{InputBitSelect, game.ButtonSelect},
	{InputBitStart, game.ButtonStart},
	{InputBitL, game.ButtonL},
	{InputBitR, game.ButtonR},
}

// KeyInput is the key input register. It is active low: a cleared bit
// means the button is held.
type KeyInput struct {
	Register uint16
}

// NewKeyInput returns a register with every button released.
func NewKeyInput() *KeyInput {
	return &KeyInput{Register: game.KeysReleased}
}

// SetMask loads the register from a frontend button bitmask, where a set
// bit means pressed.
func (k *KeyInput) SetMask(buttons uint32) {
	reg := game.KeysReleased
	for _, m := range padMap {
		if buttons&(1<<m.bit) != 0 {
			reg &^= uint16(m.button)
		}
	}
	k.Register = reg
}

// Set holds or releases one button.
func (k *KeyInput) Set(b game.Button, held bool) {
	if held {
		k.Register &^= uint16(b)
	} else {
		k.Register |= uint16(b)
	}
}

// Release lets go of every button.
func (k *KeyInput) Release() {
	k.Register = game.KeysReleased
}
