package game

// Button is a bit in the key input register.
type Button uint16

// Key register bit assignments.
const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL
)

// KeysReleased is the key register value with no button held.
// The register is active low: a cleared bit means the button is down.
const KeysReleased uint16 = 0x03FF

// FrameClock blocks until the display has scanned out a full frame.
// WaitVBlank is the only point at which the game loop suspends.
type FrameClock interface {
	WaitVBlank()
}

// InputPort exposes the raw key input register.
type InputPort interface {
	Keys() uint16
}

// Pressed reports whether b is held in the raw register value keys.
// There is no debouncing or edge detection; a held button reads as
// pressed on every frame.
func Pressed(keys uint16, b Button) bool {
	return keys&uint16(b) == 0
}

// BusyDelay burns amount*10 loop iterations and returns the count. It is
// the legacy frame pacer and deliberately not a timer.
func BusyDelay(amount int) uint32 {
	var spins uint32
	for i := 0; i < amount*10; i++ {
		spins++
	}
	return spins
}
