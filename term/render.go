package term

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Renderer draws a framebuffer onto a terminal screen, stretched to fill
// it. Each cell's foreground is the upper pixel and its background the
// lower one.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer returns a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw samples fb onto the screen. It does not call Show.
func (r *Renderer) Draw(fb *image.RGBA) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := fb.Bounds()
	w, h := b.Dx(), b.Dy()

	for row := 0; row < rows; row++ {
		top := b.Min.Y + (2*row)*h/(2*rows)
		bottom := b.Min.Y + (2*row+1)*h/(2*rows)
		for col := 0; col < cols; col++ {
			x := b.Min.X + col*w/cols
			style := tcell.StyleDefault.
				Foreground(pixelColor(fb, x, top)).
				Background(pixelColor(fb, x, bottom))
			r.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func pixelColor(fb *image.RGBA, x, y int) tcell.Color {
	i := fb.PixOffset(x, y)
	return tcell.NewRGBColor(int32(fb.Pix[i]), int32(fb.Pix[i+1]), int32(fb.Pix[i+2]))
}
