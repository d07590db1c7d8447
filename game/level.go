package game

import (
	"errors"
	"fmt"
)

// ErrBadLevel is returned for a level that cannot be played.
var ErrBadLevel = errors.New("invalid level")

// Level is the static content of a play session.
type Level struct {
	// Background is the decorative far layer (BG0).
	Background *Tilemap

	// Foreground is the collision layer (BG1) the actors stand on.
	Foreground *Tilemap

	Spawns [NumEnemies]EnemySpawn
}

// Validate checks that both layers are present.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: no level", ErrBadLevel)
	}
	if l.Background == nil || l.Foreground == nil {
		return fmt.Errorf("%w: missing tilemap layer", ErrBadLevel)
	}
	return nil
}
