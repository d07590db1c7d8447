//go:build !libretro && !ios

// Package ebiten provides an Ebiten-specific wrapper for the emulator.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
)

// Emulator wraps emu.Emulator with Ebiten-specific rendering
type Emulator struct {
	*emu.Emulator

	offscreen *ebiten.Image           // Offscreen buffer for native resolution rendering
	drawOpts  ebiten.DrawImageOptions // Pre-allocated draw options to avoid per-frame allocation
}

// NewEmulator wraps e for drawing with Ebiten.
func NewEmulator(e *emu.Emulator) *Emulator {
	return &Emulator{Emulator: e}
}

// DrawToScreen renders the emulator framebuffer to the given screen,
// scaled by the largest factor that fits and centered.
func (e *Emulator) DrawToScreen(screen *ebiten.Image) {
	src := e.GetFramebufferImage()
	if src == nil {
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	nativeW := float64(emu.ScreenWidth)
	nativeH := float64(e.GetActiveHeight())

	scale := float64(screenW) / nativeW
	if s := float64(screenH) / nativeH; s < scale {
		scale = s
	}

	offsetX := (float64(screenW) - nativeW*scale) / 2
	offsetY := (float64(screenH) - nativeH*scale) / 2

	e.drawOpts = ebiten.DrawImageOptions{}
	e.drawOpts.GeoM.Scale(scale, scale)
	e.drawOpts.GeoM.Translate(offsetX, offsetY)
	e.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(src, &e.drawOpts)
}

// Layout returns the window size so Draw controls the scaling.
func (e *Emulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// GetFramebufferImage returns the current frame as an ebiten.Image at
// native resolution.
func (e *Emulator) GetFramebufferImage() *ebiten.Image {
	activeHeight := e.GetActiveHeight()

	if e.offscreen == nil || e.offscreen.Bounds().Dy() != activeHeight {
		e.offscreen = ebiten.NewImage(emu.ScreenWidth, activeHeight)
	}

	fb := e.GetFramebuffer()
	requiredLen := e.GetFramebufferStride() * activeHeight
	if len(fb) < requiredLen {
		return nil
	}
	e.offscreen.WritePixels(fb[:requiredLen])
	return e.offscreen
}
