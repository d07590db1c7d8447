//go:build !libretro

// Package cli provides a command-line runner for the game.
// It handles input polling and runs the game in a window without the full UI.
package cli

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	emuebiten "github.com/Chairfield97/CPSC-305-GBA-Game/bridge/ebiten"
	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
)

// Runner wraps an emulator for command-line mode.
// The runner polls input and hands it to the emulator via SetInput().
type Runner struct {
	emulator *emuebiten.Emulator

	// quick save slot, held in memory for the life of the window
	saved []byte
}

// NewRunner creates a new Runner wrapping the given emulator.
func NewRunner(e *emu.Emulator) *Runner {
	return &Runner{
		emulator: emuebiten.NewEmulator(e),
	}
}

// Close cleans up the runner's resources.
func (r *Runner) Close() {
	r.emulator.Close()
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !ebiten.IsFocused() {
		return nil
	}

	r.pollInput()
	r.pollSaveKeys()

	r.emulator.RunFrame()
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.emulator.DrawToScreen(screen)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.emulator.Layout(outsideWidth, outsideHeight)
}

// Outcome reports the result of the session on screen.
func (r *Runner) Outcome() game.Outcome {
	return r.emulator.Driver().Outcome()
}

// pollSaveKeys handles F5 (save) and F9 (load) for the in-memory slot.
func (r *Runner) pollSaveKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		data, err := r.emulator.Serialize()
		if err != nil {
			log.Printf("save state failed: %v", err)
			return
		}
		r.saved = data
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) && r.saved != nil {
		if err := r.emulator.Deserialize(r.saved); err != nil {
			log.Printf("load state failed: %v", err)
		}
	}
}

// pollInput reads keyboard and gamepad input and passes it to the emulator.
func (r *Runner) pollInput() {
	// Keyboard (WASD + arrows for movement, J/Z jump, K/X shoot, Enter start)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	btnA := ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsKeyPressed(ebiten.KeyZ)
	btnB := ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsKeyPressed(ebiten.KeyX)
	start := ebiten.IsKeyPressed(ebiten.KeyEnter)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		// D-pad
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			up = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			down = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			left = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			right = true
		}

		// Face buttons: A/Cross = jump, B/Circle = shoot
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			btnA = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight) {
			btnB = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			start = true
		}

		// Left analog stick (with deadzone)
		const deadzone = 0.5
		axisX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		axisY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if axisX < -deadzone {
			left = true
		}
		if axisX > deadzone {
			right = true
		}
		if axisY < -deadzone {
			up = true
		}
		if axisY > deadzone {
			down = true
		}
	}

	r.emulator.SetInput(0, ButtonMask(up, down, left, right, btnA, btnB, start))
}
