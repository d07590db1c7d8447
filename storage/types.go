package storage

import "github.com/Chairfield97/CPSC-305-GBA-Game/game"

// Config represents the application configuration stored in config.json
type Config struct {
	Version int          `json:"version"`
	Game    GameConfig   `json:"game"`
	Window  WindowConfig `json:"window"`
}

// GameConfig contains session tunables
type GameConfig struct {
	Delay      int `json:"delay"` // busy-wait units after each vblank
	Lives      int `json:"lives"`
	EnemyQuota int `json:"enemyQuota"`
}

// WindowConfig contains window position and size
type WindowConfig struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	X      *int `json:"x,omitempty"` // nil = OS decides position
	Y      *int `json:"y,omitempty"`
}

const (
	defaultScale  = 3
	defaultWidth  = game.ScreenWidth * defaultScale
	defaultHeight = game.ScreenHeight * defaultScale
)

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	gc := game.DefaultConfig()
	return &Config{
		Version: 1,
		Game: GameConfig{
			Delay:      gc.Delay,
			Lives:      gc.Lives,
			EnemyQuota: gc.EnemyQuota,
		},
		Window: WindowConfig{
			Width:  defaultWidth,
			Height: defaultHeight,
		},
	}
}

// SetScale sizes the window to an integer multiple of the display.
// Non-positive factors are ignored.
func (c *Config) SetScale(scale int) {
	if scale <= 0 {
		return
	}
	c.Window.Width = game.ScreenWidth * scale
	c.Window.Height = game.ScreenHeight * scale
}

// RecordWindow stores the window geometry a host had on exit.
func (c *Config) RecordWindow(x, y, width, height int) {
	c.Window.X = &x
	c.Window.Y = &y
	if width > 0 && height > 0 {
		c.Window.Width = width
		c.Window.Height = height
	}
}

// Settings converts the stored game section into driver settings.
func (c *Config) Settings() game.Config {
	return game.Config{
		Delay:      c.Game.Delay,
		Lives:      c.Game.Lives,
		EnemyQuota: c.Game.EnemyQuota,
	}
}
