package game

// NumEnemies is the fixed size of the enemy pool.
const NumEnemies = 6

// Enemy sprite tile offsets.
const (
	EnemyFrame      = 64
	EnemyDeathFrame = 80
)

const (
	// frames the death animation stays on screen
	enemyDeathDelay = 20

	enemySize = 16

	// walk cycle: alternate with the tile image 8 further on
	enemyAnimationDelay = 16
	enemyAltFrame       = 8

	// enemies live on the collision layer, whose world is 512 pixels
	// wide; x is kept in [enemyMinX, enemyMinX+enemyWorldWidth) so the
	// logical position always matches the 9-bit sprite field
	enemyWorldWidth = 512
	enemyMinX       = -enemySize
)

// EnemySpawn is the level-defined starting state of one enemy.
type EnemySpawn struct {
	X, Y  int
	Frame int
}

// Enemy has no physics. It moves only with the world scroll.
type Enemy struct {
	X, Y  int
	Frame int
	Alive bool

	// Countdown is the number of frames left in the death animation.
	Countdown int

	Spawn  EnemySpawn
	Sprite SpriteSlot
}

// NewEnemy claims a sprite and places the enemy at its spawn point.
func NewEnemy(st *SpriteTable, spawn EnemySpawn) Enemy {
	e := Enemy{
		X:         wrapEnemyX(spawn.X),
		Y:         spawn.Y,
		Frame:     spawn.Frame,
		Alive:     true,
		Countdown: enemyDeathDelay,
		Spawn:     spawn,
	}
	e.Sprite = st.Allocate(e.X, e.Y, Size16x16, false, false, e.Frame, 0)
	return e
}

// Shift moves the enemy horizontally by dx in lockstep with the scroll
// of the layer it stands on.
func (e *Enemy) Shift(st *SpriteTable, dx int) {
	e.X = wrapEnemyX(e.X + dx)
	st.SetPosition(e.Sprite, e.X, e.Y)
}

// Animate flips between the two walk images every enemyAnimationDelay
// frames. Dead enemies keep their death image.
func (e *Enemy) Animate(st *SpriteTable, tick int) {
	if !e.Alive || tick%enemyAnimationDelay != 0 {
		return
	}
	if e.Frame == e.Spawn.Frame {
		e.Frame = e.Spawn.Frame + enemyAltFrame
	} else {
		e.Frame = e.Spawn.Frame
	}
	st.SetTileOffset(e.Sprite, e.Frame)
}

// kill switches the enemy to its death animation.
func (e *Enemy) kill(st *SpriteTable) {
	e.Alive = false
	e.Frame = EnemyDeathFrame
	st.SetTileOffset(e.Sprite, e.Frame)
}

// recycle parks the enemy just past the right screen edge, alive again,
// so it scrolls back into view like a fresh spawn.
func (e *Enemy) recycle(st *SpriteTable) {
	st.Hide(e.Sprite)

	e.X = ScreenWidth
	e.Y = e.Spawn.Y
	e.Frame = e.Spawn.Frame
	e.Alive = true
	e.Countdown = enemyDeathDelay

	st.SetTileOffset(e.Sprite, e.Frame)
	st.SetPosition(e.Sprite, e.X, e.Y)
}

func wrapEnemyX(x int) int {
	for x < enemyMinX {
		x += enemyWorldWidth
	}
	for x >= enemyMinX+enemyWorldWidth {
		x -= enemyWorldWidth
	}
	return x
}
