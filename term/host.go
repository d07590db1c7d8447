package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
)

// Host runs a session on a terminal screen. The driver's blocking loop
// owns the goroutine; the console's vblank hook draws the frame, takes
// input and paces to the display rate.
type Host struct {
	screen   tcell.Screen
	console  *emu.Console
	driver   *game.Driver
	renderer *Renderer
	keys     *Keys

	// Interval is the frame period. Zero runs unpaced.
	Interval time.Duration

	events chan tcell.Event
	ticker *time.Ticker
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHost sets up a session for lvl drawn on screen. The screen must
// already be initialised.
func NewHost(screen tcell.Screen, lvl *game.Level, cfg game.Config) (*Host, error) {
	console := emu.NewConsole(lvl)
	driver, err := game.NewDriver(console, lvl, cfg)
	if err != nil {
		return nil, err
	}

	h := &Host{
		screen:   screen,
		console:  console,
		driver:   driver,
		renderer: NewRenderer(screen),
		keys:     NewKeys(),
		Interval: time.Second / time.Duration(emu.LCDTiming.FPS),
		events:   make(chan tcell.Event, 64),
	}
	console.OnVBlank(h.vblank)
	return h, nil
}

// Driver returns the session driver.
func (h *Host) Driver() *game.Driver {
	return h.driver
}

// Run plays until the end screen is dismissed, Escape is pressed or ctx
// is cancelled. Quitting reports context.Canceled.
func (h *Host) Run(ctx context.Context) (game.Outcome, error) {
	h.ctx, h.cancel = context.WithCancel(ctx)
	defer h.cancel()

	go h.poll()

	if h.Interval > 0 {
		h.ticker = time.NewTicker(h.Interval)
		defer h.ticker.Stop()
	}

	return h.driver.Run(h.ctx)
}

// poll forwards screen events until the screen is finalised or the run
// ends.
func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Host) vblank() {
	h.drain()
	h.keys.Apply(h.console.Input())

	h.renderer.Draw(h.console.Framebuffer())
	h.screen.Show()

	if h.ticker != nil {
		select {
		case <-h.ticker.C:
		case <-h.ctx.Done():
		}
	}
}

func (h *Host) drain() {
	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			return
		}
	}
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			if h.cancel != nil {
				h.cancel()
			}
			return
		}
		h.keys.Press(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
}
