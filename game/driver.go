package game

import (
	"context"
	"fmt"
	"strings"
)

// Text overlay grid, sized for the console's 7x13 system font.
const (
	TextCols = 34
	TextRows = 12

	statusRow  = 0
	messageRow = 5
)

// ScrollRegisters latches background layer offsets for the next frame.
type ScrollRegisters interface {
	SetScroll(layer int, x, y int16)
}

// TextOverlay rewrites one row of the character grid. An empty string
// clears the row.
type TextOverlay interface {
	SetText(row int, text string)
}

// Hardware is everything the game needs from the console.
type Hardware interface {
	FrameClock
	InputPort
	SpriteSink
	ScrollRegisters
	TextOverlay
}

// Outcome is the result of a finished session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Driver runs the fixed per-frame sequence against a Hardware.
type Driver struct {
	hw    Hardware
	cfg   Config
	state *GameState

	// status is the last status line pushed to the overlay
	status string

	// spins counts busy-delay iterations run so far
	spins uint64

	inFrame bool
}

// NewDriver validates cfg and lvl and sets up a fresh session.
func NewDriver(hw Hardware, lvl *Level, cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &Driver{
		hw:    hw,
		cfg:   cfg,
		state: NewGameState(lvl, cfg),
	}, nil
}

// State exposes the session state for inspection.
func (d *Driver) State() *GameState {
	return d.state
}

// Phase returns the current session phase.
func (d *Driver) Phase() Phase {
	return d.state.Phase
}

// Outcome returns the session result, or OutcomeNone while playing.
func (d *Driver) Outcome() Outcome {
	if !d.state.Session.Over {
		return OutcomeNone
	}
	if d.state.Session.Won {
		return OutcomeWin
	}
	return OutcomeLoss
}

// Frame runs one frame of game logic and commits the result to the
// hardware: scroll registers, overlay text and the sprite table, in
// that order. Hosts that pace frames themselves call Frame directly.
func (d *Driver) Frame() {
	invariant(!d.inFrame, "frame re-entered")
	d.inFrame = true

	keys := d.hw.Keys()
	switch d.state.Phase {
	case PhasePlaying:
		d.play(keys)
	case PhaseWon, PhaseLost:
		if Pressed(keys, ButtonStart) {
			d.state.Phase = PhaseDone
		}
	}

	d.commit()
	d.state.Frame++
	d.inFrame = false
}

// Run is the main loop: frame, vblank wait, busy delay, until the end
// screen is dismissed or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) (Outcome, error) {
	for d.state.Phase != PhaseDone {
		if err := ctx.Err(); err != nil {
			return d.Outcome(), err
		}
		d.Frame()
		d.hw.WaitVBlank()
		d.spins += uint64(BusyDelay(d.cfg.Delay))
	}
	return d.Outcome(), nil
}

// Spins returns the number of busy-delay iterations Run has burned.
func (d *Driver) Spins() uint64 {
	return d.spins
}

// Snapshot records the session for a later Restore.
func (d *Driver) Snapshot() ([]byte, error) {
	return d.state.MarshalBinary()
}

// Restore replaces the session with a snapshot and redraws the overlay
// on the next commit.
func (d *Driver) Restore(data []byte) error {
	if err := d.state.UnmarshalBinary(data); err != nil {
		return err
	}

	d.status = ""
	switch d.state.Phase {
	case PhaseWon:
		d.showMessage("YOU WIN!", "PRESS START")
	case PhaseLost:
		d.showMessage("GAME OVER", "PRESS START")
	default:
		d.hw.SetText(messageRow, "")
		d.hw.SetText(messageRow+1, "")
	}
	return nil
}

func (d *Driver) play(keys uint16) {
	s := d.state
	st := s.Sprites
	p := &s.Player

	p.Update(st, s.FGScroll, s.Level.Foreground)

	switch {
	case Pressed(keys, ButtonRight):
		if p.Right(st) {
			s.Scroll(1)
		}
	case Pressed(keys, ButtonLeft):
		if p.Left(st) {
			s.Scroll(-1)
		}
	default:
		p.Stop(st)
	}

	if Pressed(keys, ButtonA) {
		p.Jump(st)
	}
	if Pressed(keys, ButtonB) {
		s.Projectile.Fire(st, p)
	}
	p.ShowFalling(st)

	for i := range s.Enemies {
		s.Enemies[i].Animate(st, s.Frame)
	}

	ResolveRound(st, &s.Projectile, s.Enemies[:])
	TickDeaths(st, s.Enemies[:], &s.Session)

	if !CheckFall(st, p, &s.Session) {
		CheckContact(st, p, s.Enemies[:], &s.Session)
	}

	if s.Session.Evaluate() {
		if s.Session.Won {
			s.Phase = PhaseWon
			d.showMessage("YOU WIN!", "PRESS START")
		} else {
			s.Phase = PhaseLost
			d.showMessage("GAME OVER", "PRESS START")
		}
	}
}

func (d *Driver) commit() {
	s := d.state
	d.hw.SetScroll(LayerBackground, int16(s.BGScroll), 0)
	d.hw.SetScroll(LayerForeground, int16(s.FGScroll), 0)

	line := fmt.Sprintf("ENEMIES: %d  LIFE: %d", s.Session.EnemiesRemaining, s.Session.Lives)
	if line != d.status {
		d.hw.SetText(statusRow, line)
		d.status = line
	}

	s.Sprites.Commit(d.hw)
}

func (d *Driver) showMessage(title, prompt string) {
	d.hw.SetText(messageRow, centre(title))
	d.hw.SetText(messageRow+1, centre(prompt))
}

// centre pads text so it sits in the middle of an overlay row.
func centre(text string) string {
	if len(text) >= TextCols {
		return text[:TextCols]
	}
	return strings.Repeat(" ", (TextCols-len(text))/2) + text
}
