package game

// HitBox is the edge length of the square used for projectile hits.
const HitBox = 16

// Session holds the counters that decide when a round ends.
type Session struct {
	EnemiesRemaining int
	Lives            int
	Won              bool
	Over             bool
}

// Evaluate checks the end conditions. Running out of lives is a loss
// whatever the enemy count; otherwise clearing the quota is a win.
func (s *Session) Evaluate() bool {
	switch {
	case s.Lives <= 0:
		s.Won = false
		s.Over = true
	case s.EnemiesRemaining <= 0:
		s.Won = true
		s.Over = true
	}
	return s.Over
}

// LoseLife takes one life away.
func (s *Session) LoseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// CheckHit tests the projectile against one enemy. Boxes that touch at
// an edge count as a hit. On a hit the projectile is despawned and the
// enemy starts its death animation.
func CheckHit(st *SpriteTable, pr *Projectile, e *Enemy) bool {
	if !pr.Alive || !e.Alive {
		return false
	}
	if abs(pr.X-e.X) > HitBox || abs(pr.Y-e.Y) > HitBox {
		return false
	}

	pr.Despawn(st)
	e.kill(st)
	return true
}

// ResolveRound runs the projectile's frame: enemies are tested in order
// and the first hit wins. Without a hit the projectile despawns at the
// screen edge or moves on. It returns the index of the enemy hit, or -1.
func ResolveRound(st *SpriteTable, pr *Projectile, enemies []Enemy) int {
	if !pr.Alive {
		return -1
	}

	for i := range enemies {
		if CheckHit(st, pr, &enemies[i]) {
			return i
		}
	}

	if pr.AtEdge() {
		pr.Despawn(st)
	} else {
		pr.Advance(st)
	}
	return -1
}

// TickDeaths counts down dying enemies. When a countdown expires the
// kill is scored once and the enemy is recycled into the pool.
func TickDeaths(st *SpriteTable, enemies []Enemy, s *Session) {
	for i := range enemies {
		e := &enemies[i]
		if e.Alive {
			continue
		}

		e.Countdown--
		if e.Countdown > 0 {
			continue
		}

		if s.EnemiesRemaining > 0 {
			s.EnemiesRemaining--
		}
		e.recycle(st)
	}
}

// CheckContact tests the player against every live enemy. On contact
// outside the recovery window a life is lost and the player respawns.
func CheckContact(st *SpriteTable, p *Player, enemies []Enemy, s *Session) bool {
	if p.Invulnerable > 0 {
		return false
	}

	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		if p.X < e.X+enemySize && e.X < p.X+playerWidth &&
			p.Y < e.Y+enemySize && e.Y < p.Y+playerHeight {
			s.LoseLife()
			p.Respawn(st)
			return true
		}
	}
	return false
}

// CheckFall costs a life when the player drops below the screen.
func CheckFall(st *SpriteTable, p *Player, s *Session) bool {
	if p.Y < ScreenHeight {
		return false
	}
	s.LoseLife()
	p.Respawn(st)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
