package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
)

// HoldFrames is how long a key press keeps its button held. It outlasts
// the usual auto-repeat interval so a held key reads as continuously
// pressed.
const HoldFrames = 20

var keyButtons = map[tcell.Key]game.Button{
	tcell.KeyLeft:  game.ButtonLeft,
	tcell.KeyRight: game.ButtonRight,
	tcell.KeyUp:    game.ButtonUp,
	tcell.KeyDown:  game.ButtonDown,
	tcell.KeyEnter: game.ButtonStart,
}

var runeButtons = map[rune]game.Button{
	'a': game.ButtonLeft,
	'd': game.ButtonRight,
	'w': game.ButtonUp,
	's': game.ButtonDown,
	'z': game.ButtonA,
	'j': game.ButtonA,
	' ': game.ButtonA,
	'x': game.ButtonB,
	'k': game.ButtonB,
}

// Keys tracks how many more frames each button stays held.
type Keys struct {
	held map[game.Button]int
}

// NewKeys returns a tracker with nothing held.
func NewKeys() *Keys {
	return &Keys{held: make(map[game.Button]int)}
}

// Press holds the button mapped to ev, if any, and reports whether one was.
func (k *Keys) Press(ev *tcell.EventKey) bool {
	b, ok := keyButtons[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		b, ok = runeButtons[ev.Rune()]
	}
	if !ok {
		return false
	}

	k.held[b] = HoldFrames
	// opposite directions cancel
	switch b {
	case game.ButtonLeft:
		delete(k.held, game.ButtonRight)
	case game.ButtonRight:
		delete(k.held, game.ButtonLeft)
	}
	return true
}

// Apply writes the held buttons into the key register and ages them by
// one frame.
func (k *Keys) Apply(in *emu.KeyInput) {
	in.Release()
	for b, n := range k.held {
		in.Set(b, true)
		if n <= 1 {
			delete(k.held, b)
		} else {
			k.held[b] = n - 1
		}
	}
}
