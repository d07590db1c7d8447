package emu

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Display geometry.
const (
	ScreenWidth     = game.ScreenWidth
	MaxScreenHeight = game.ScreenHeight
)

// Layer priorities: lower numbers are drawn in front. Sprites with
// priority p show over any background pixel of priority p or greater.
var layerPriority = [2]uint8{
	game.LayerBackground: 1,
	game.LayerForeground: 0,
}

// priority recorded for pixels where only the backdrop shows
const backdropPriority = 4

// objDimensions is the hardware [shape][size] sprite geometry table.
var objDimensions = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

var (
	backdropColor = color.RGBA{R: 104, G: 168, B: 232, A: 255}
	textColor     = image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowColor   = image.NewUniform(color.RGBA{A: 255})
)

// VDP is the video unit: two tile layers, 128 sprites and a text overlay
// scanned out into an RGBA framebuffer.
type VDP struct {
	layers  [2]*game.Tilemap
	hScroll [2]int16
	vScroll [2]int16

	// oam holds the attribute words latched by the last transfer
	oam [game.OAMWords]uint16

	text        [game.TextRows]string
	showOverlay bool

	framebuffer *image.RGBA

	// priority of the frontmost background pixel on the current line
	bgPriority [ScreenWidth]uint8

	drawer font.Drawer
}

// NewVDP returns a video unit showing only the backdrop.
func NewVDP() *VDP {
	fb := image.NewRGBA(image.Rect(0, 0, ScreenWidth, MaxScreenHeight))
	v := &VDP{
		framebuffer: fb,
		showOverlay: true,
		drawer: font.Drawer{
			Dst:  fb,
			Face: basicfont.Face7x13,
		},
	}
	// power on showing the backdrop rather than black
	v.Clear()
	return v
}

// LoadLayers points the tile layers at a level's maps.
func (v *VDP) LoadLayers(bg, fg *game.Tilemap) {
	v.layers[game.LayerBackground] = bg
	v.layers[game.LayerForeground] = fg
}

// SetScroll latches a layer's scroll offset. Unknown layers are ignored.
func (v *VDP) SetScroll(layer int, x, y int16) {
	if layer < 0 || layer >= len(v.layers) {
		return
	}
	v.hScroll[layer] = x
	v.vScroll[layer] = y
}

// LoadOAM latches a full sprite attribute block.
func (v *VDP) LoadOAM(words *[game.OAMWords]uint16) {
	v.oam = *words
}

// SetText replaces one overlay row. Rows outside the grid are ignored and
// text past the last column is cut.
func (v *VDP) SetText(row int, text string) {
	if row < 0 || row >= len(v.text) {
		return
	}
	if len(text) > game.TextCols {
		text = text[:game.TextCols]
	}
	v.text[row] = text
}

// Text returns the overlay row as last written.
func (v *VDP) Text(row int) string {
	if row < 0 || row >= len(v.text) {
		return ""
	}
	return v.text[row]
}

// SetOverlay turns the text overlay on or off.
func (v *VDP) SetOverlay(on bool) {
	v.showOverlay = on
}

// RenderFrame scans out every line and then the overlay.
func (v *VDP) RenderFrame() {
	for line := 0; line < MaxScreenHeight; line++ {
		v.RenderScanline(line)
	}
	if v.showOverlay {
		v.renderText()
	}
}

// RenderScanline renders one line: backdrop, far layer, near layer and
// then sprites, honouring priority.
func (v *VDP) RenderScanline(line int) {
	if line < 0 || line >= MaxScreenHeight {
		return
	}

	for x := 0; x < ScreenWidth; x++ {
		v.framebuffer.SetRGBA(x, line, backdropColor)
		v.bgPriority[x] = backdropPriority
	}

	// far layer first so the near one paints over it
	v.renderBackground(game.LayerBackground, line)
	v.renderBackground(game.LayerForeground, line)
	v.renderSprites(line)
}

// renderBackground draws one tile layer for a line. Tile fetch goes
// through the same lookup the game uses for collision, so what is drawn
// is exactly what the player stands on.
func (v *VDP) renderBackground(layer, line int) {
	m := v.layers[layer]
	if m == nil {
		return
	}

	hs := int(v.hScroll[layer])
	vs := int(v.vScroll[layer])
	py := (line + vs) & 7
	prio := layerPriority[layer]

	for x := 0; x < ScreenWidth; x++ {
		tile := game.LookupTile(x, line, hs, vs, m)
		c, ok := tileColor(tile, (x+hs)&7, py)
		if !ok {
			continue
		}
		v.framebuffer.SetRGBA(x, line, c)
		if prio < v.bgPriority[x] {
			v.bgPriority[x] = prio
		}
	}
}

// renderSprites decodes the latched attribute words and draws every
// sprite crossing the line. Lower-numbered sprites are drawn last so
// they end up in front.
func (v *VDP) renderSprites(line int) {
	for i := game.NumSprites - 1; i >= 0; i-- {
		a0 := v.oam[i*4]
		a1 := v.oam[i*4+1]
		a2 := v.oam[i*4+2]

		shape := a0 >> 14
		if shape > 2 {
			continue
		}
		dim := objDimensions[shape][a1>>14]
		w, h := dim[0], dim[1]

		// 8-bit y and 9-bit x wrap around the top and left edges
		y := int(a0 & 0xff)
		if y+h > 256 {
			y -= 256
		}
		x := int(a1 & 0x1ff)
		if x >= 256 {
			x -= 512
		}

		row := line - y
		if row < 0 || row >= h {
			continue
		}
		if a1&(1<<13) != 0 {
			row = h - 1 - row
		}

		hflip := a1&(1<<12) != 0
		tile := int(a2 & 0x3ff)
		prio := uint8(a2>>10) & 0x3

		for col := 0; col < w; col++ {
			sx := x + col
			if sx < 0 || sx >= ScreenWidth {
				continue
			}
			if prio > v.bgPriority[sx] {
				continue
			}
			px := col
			if hflip {
				px = w - 1 - col
			}
			c, ok := spriteColor(tile, px, row)
			if !ok {
				continue
			}
			v.framebuffer.SetRGBA(sx, line, c)
		}
	}
}

// renderText draws the overlay grid with a one pixel drop shadow.
func (v *VDP) renderText() {
	ascent := basicfont.Face7x13.Ascent

	for row, text := range v.text {
		if text == "" {
			continue
		}
		top := row * basicfont.Face7x13.Height

		v.drawer.Src = shadowColor
		v.drawer.Dot = fixed.P(2, top+ascent+1)
		v.drawer.DrawString(text)

		v.drawer.Src = textColor
		v.drawer.Dot = fixed.P(1, top+ascent)
		v.drawer.DrawString(text)
	}
}

// Clear fills the framebuffer with the backdrop.
func (v *VDP) Clear() {
	draw.Draw(v.framebuffer, v.framebuffer.Bounds(), image.NewUniform(backdropColor), image.Point{}, draw.Src)
}

// Framebuffer returns the current framebuffer.
func (v *VDP) Framebuffer() *image.RGBA {
	return v.framebuffer
}
