package game

// Background layer numbers as wired to the scroll registers.
const (
	LayerBackground = 0
	LayerForeground = 1
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// GameState is everything that changes during play. The driver owns it
// and lends it to each component for the length of a frame.
type GameState struct {
	Sprites    *SpriteTable
	Player     Player
	Enemies    [NumEnemies]Enemy
	Projectile Projectile
	Session    Session
	Level      *Level

	// BGScroll and FGScroll are the horizontal scroll of the background
	// and collision layers. The collision layer moves twice as fast.
	BGScroll int
	FGScroll int

	Phase Phase
	Frame int
}

// NewGameState clears the sprite table and spawns every actor of lvl.
func NewGameState(lvl *Level, cfg Config) *GameState {
	st := NewSpriteTable()
	s := &GameState{
		Sprites: st,
		Level:   lvl,
		Session: Session{
			EnemiesRemaining: cfg.EnemyQuota,
			Lives:            cfg.Lives,
		},
	}

	s.Player = NewPlayer(st)
	for i, spawn := range lvl.Spawns {
		s.Enemies[i] = NewEnemy(st, spawn)
	}
	return s
}

// Scroll moves the world by dir steps: one pixel on the background,
// two on the collision layer, with enemies carried along.
func (s *GameState) Scroll(dir int) {
	s.BGScroll += dir
	s.FGScroll += 2 * dir
	for i := range s.Enemies {
		s.Enemies[i].Shift(s.Sprites, -2*dir)
	}
}
