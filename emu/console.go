package emu

import (
	"image"

	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
)

// Compile-time interface check.
var _ game.Hardware = (*Console)(nil)

// Console is the software handheld the game runs on: a key register, a
// video unit and a vblank signal. It is driven from a single goroutine.
type Console struct {
	vdp  *VDP
	keys *KeyInput

	// onVBlank runs after each frame is scanned out
	onVBlank func()
	frames   uint64
}

// NewConsole returns a console showing lvl's tile layers.
func NewConsole(lvl *game.Level) *Console {
	vdp := NewVDP()
	if lvl != nil {
		vdp.LoadLayers(lvl.Background, lvl.Foreground)
	}
	return &Console{
		vdp:  vdp,
		keys: NewKeyInput(),
	}
}

// WaitVBlank scans out the frame and then runs the vblank hook, which is
// where a blocking host paces frames and samples input.
func (c *Console) WaitVBlank() {
	c.vdp.RenderFrame()
	c.frames++
	if c.onVBlank != nil {
		c.onVBlank()
	}
}

// Keys returns the key input register.
func (c *Console) Keys() uint16 {
	return c.keys.Register
}

// TransferSprites latches a new sprite attribute block.
func (c *Console) TransferSprites(words *[game.OAMWords]uint16) {
	c.vdp.LoadOAM(words)
}

// SetScroll sets a background layer's scroll registers.
func (c *Console) SetScroll(layer int, x, y int16) {
	c.vdp.SetScroll(layer, x, y)
}

// SetText rewrites one overlay row.
func (c *Console) SetText(row int, text string) {
	c.vdp.SetText(row, text)
}

// OnVBlank installs fn as the vblank hook.
func (c *Console) OnVBlank(fn func()) {
	c.onVBlank = fn
}

// Input returns the key register for the host to drive.
func (c *Console) Input() *KeyInput {
	return c.keys
}

// VDP returns the video unit.
func (c *Console) VDP() *VDP {
	return c.vdp
}

// Framebuffer returns the last scanned out frame.
func (c *Console) Framebuffer() *image.RGBA {
	return c.vdp.Framebuffer()
}

// Frames returns the number of vblanks since power on.
func (c *Console) Frames() uint64 {
	return c.frames
}
