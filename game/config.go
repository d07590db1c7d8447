package game

import (
	"errors"
	"fmt"
)

// ErrBadConfig is returned by NewDriver for unusable settings.
var ErrBadConfig = errors.New("invalid game configuration")

// Config holds the tunables of a session.
type Config struct {
	// Delay is the busy-wait pacing applied after every vblank, in the
	// legacy delay units (ten loop iterations each). Zero disables it.
	Delay int

	// Lives is the number of lives at the start of the session.
	Lives int

	// EnemyQuota is the number of kills needed to win.
	EnemyQuota int
}

// DefaultConfig returns the settings of the original cartridge.
func DefaultConfig() Config {
	return Config{
		Delay:      300,
		Lives:      3,
		EnemyQuota: 10,
	}
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("%w: negative delay %d", ErrBadConfig, c.Delay)
	}
	if c.Lives <= 0 {
		return fmt.Errorf("%w: lives must be positive, got %d", ErrBadConfig, c.Lives)
	}
	if c.EnemyQuota <= 0 {
		return fmt.Errorf("%w: enemy quota must be positive, got %d", ErrBadConfig, c.EnemyQuota)
	}
	return nil
}
