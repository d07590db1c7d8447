package game

import "testing"

// armed returns a sprite table, a player at spawn and a projectile already
// fired from it.
func armed(t *testing.T) (*SpriteTable, Player, Projectile) {
	t.Helper()
	st := NewSpriteTable()
	p := NewPlayer(st)
	var pr Projectile
	if !pr.Fire(st, &p) {
		t.Fatal("Fire: expected a shot")
	}
	return st, p, pr
}

// TestCheckHit_InclusiveEdge tests that touching boxes hit and one pixel more misses
func TestCheckHit_InclusiveEdge(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		hit    bool
	}{
		{"overlap", 0, 0, true},
		{"right edge", HitBox, 0, true},
		{"left edge", -HitBox, 0, true},
		{"bottom edge", 0, HitBox, true},
		{"corner", HitBox, -HitBox, true},
		{"one past right", HitBox + 1, 0, false},
		{"one past top", 0, -HitBox - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _, pr := armed(t)
			e := NewEnemy(st, EnemySpawn{X: 100, Y: 120, Frame: EnemyFrame})
			pr.X = e.X + tt.dx
			pr.Y = e.Y + tt.dy

			if got := CheckHit(st, &pr, &e); got != tt.hit {
				t.Fatalf("expected hit=%v, got %v", tt.hit, got)
			}
			if !tt.hit {
				if !pr.Alive || !e.Alive {
					t.Error("miss: expected projectile and enemy untouched")
				}
				return
			}
			if pr.Alive || pr.InFlight || pr.XVel != 0 {
				t.Errorf("projectile: expected despawned, got alive=%v inflight=%v xvel=%d", pr.Alive, pr.InFlight, pr.XVel)
			}
			if s := st.Get(pr.Sprite); s.X != ScreenWidth || s.Y != ScreenHeight {
				t.Errorf("projectile sprite: expected sentinel, got (%d,%d)", s.X, s.Y)
			}
			if e.Alive || e.Frame != EnemyDeathFrame {
				t.Errorf("enemy: expected dead with frame %d, got alive=%v frame=%d", EnemyDeathFrame, e.Alive, e.Frame)
			}
			if st.Get(e.Sprite).Tile != EnemyDeathFrame {
				t.Errorf("enemy sprite tile: expected %d, got %d", EnemyDeathFrame, st.Get(e.Sprite).Tile)
			}
		})
	}
}

// TestCheckHit_DeadEnemy tests that a dying enemy absorbs nothing
func TestCheckHit_DeadEnemy(t *testing.T) {
	st, _, pr := armed(t)
	e := NewEnemy(st, EnemySpawn{X: pr.X, Y: pr.Y, Frame: EnemyFrame})
	e.Alive = false

	if CheckHit(st, &pr, &e) {
		t.Error("expected no hit on a dead enemy")
	}
}

// TestResolveRound_FirstEnemyWins tests that only the first overlapping enemy dies
func TestResolveRound_FirstEnemyWins(t *testing.T) {
	st, _, pr := armed(t)
	enemies := []Enemy{
		NewEnemy(st, EnemySpawn{X: 300, Y: 0, Frame: EnemyFrame}),
		NewEnemy(st, EnemySpawn{X: pr.X + 4, Y: pr.Y, Frame: EnemyFrame}),
		NewEnemy(st, EnemySpawn{X: pr.X, Y: pr.Y, Frame: EnemyFrame}),
	}

	if got := ResolveRound(st, &pr, enemies); got != 1 {
		t.Fatalf("expected enemy 1 hit, got %d", got)
	}
	if enemies[1].Alive {
		t.Error("enemy 1: expected dead")
	}
	if !enemies[0].Alive || !enemies[2].Alive {
		t.Error("expected other enemies alive")
	}
}

// TestResolveRound_AdvanceAndEdge tests flight and despawn at the screen edge
func TestResolveRound_AdvanceAndEdge(t *testing.T) {
	st, _, pr := armed(t)
	start := pr.X

	if got := ResolveRound(st, &pr, nil); got != -1 {
		t.Fatalf("expected no hit, got %d", got)
	}
	if pr.X != start+projectileSpeed {
		t.Errorf("advance: expected x=%d, got %d", start+projectileSpeed, pr.X)
	}
	if st.Get(pr.Sprite).X != pr.X {
		t.Errorf("sprite: expected x=%d, got %d", pr.X, st.Get(pr.Sprite).X)
	}

	pr.X = ScreenWidth - projectileSize
	ResolveRound(st, &pr, nil)
	if pr.Alive || pr.InFlight {
		t.Error("edge: expected despawned")
	}
}

// TestProjectile_FireWhileInFlight tests that only one shot exists at a time
func TestProjectile_FireWhileInFlight(t *testing.T) {
	st, p, pr := armed(t)
	live := st.Live()

	pr.X = 150
	if pr.Fire(st, &p) {
		t.Error("expected second Fire to be ignored")
	}
	if pr.X != 150 {
		t.Errorf("x: expected 150, got %d", pr.X)
	}

	pr.Despawn(st)
	p.FacingLeft = true
	if !pr.Fire(st, &p) {
		t.Fatal("expected Fire after despawn")
	}
	if pr.XVel != -projectileSpeed {
		t.Errorf("xvel: expected %d, got %d", -projectileSpeed, pr.XVel)
	}
	if st.Live() != live {
		t.Errorf("live sprites: expected %d, got %d", live, st.Live())
	}
}

// TestTickDeaths_ScoresOnce tests the countdown and the single decrement
func TestTickDeaths_ScoresOnce(t *testing.T) {
	st, _, pr := armed(t)
	spawn := EnemySpawn{X: pr.X, Y: pr.Y, Frame: EnemyFrame}
	enemies := []Enemy{NewEnemy(st, spawn)}
	s := Session{EnemiesRemaining: 5, Lives: 3}

	ResolveRound(st, &pr, enemies)
	for i := 0; i < enemyDeathDelay-1; i++ {
		TickDeaths(st, enemies, &s)
	}
	if s.EnemiesRemaining != 5 || enemies[0].Alive {
		t.Fatalf("during death: expected 5 remaining and dead, got %d alive=%v", s.EnemiesRemaining, enemies[0].Alive)
	}

	TickDeaths(st, enemies, &s)
	if s.EnemiesRemaining != 4 {
		t.Errorf("remaining: expected 4, got %d", s.EnemiesRemaining)
	}
	e := enemies[0]
	if !e.Alive || e.X != ScreenWidth || e.Y != spawn.Y || e.Frame != spawn.Frame || e.Countdown != enemyDeathDelay {
		t.Errorf("recycled: got alive=%v x=%d y=%d frame=%d countdown=%d", e.Alive, e.X, e.Y, e.Frame, e.Countdown)
	}

	for i := 0; i < 3*enemyDeathDelay; i++ {
		TickDeaths(st, enemies, &s)
	}
	if s.EnemiesRemaining != 4 {
		t.Errorf("after more ticks: expected 4, got %d", s.EnemiesRemaining)
	}
}

// TestSession_Evaluate tests end condition precedence
func TestSession_Evaluate(t *testing.T) {
	tests := []struct {
		name             string
		lives, remaining int
		over, won        bool
	}{
		{"playing", 3, 5, false, false},
		{"quota cleared", 1, 0, true, true},
		{"no lives", 0, 5, true, false},
		{"no lives beats quota", 0, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Lives: tt.lives, EnemiesRemaining: tt.remaining}
			if got := s.Evaluate(); got != tt.over {
				t.Errorf("over: expected %v, got %v", tt.over, got)
			}
			if s.Won != tt.won {
				t.Errorf("won: expected %v, got %v", tt.won, s.Won)
			}
		})
	}
}

// TestCheckContact_CostsLife tests enemy contact and the recovery window
func TestCheckContact_CostsLife(t *testing.T) {
	st := NewSpriteTable()
	p := NewPlayer(st)
	enemies := []Enemy{NewEnemy(st, EnemySpawn{X: p.X + 10, Y: p.Y + 8, Frame: EnemyFrame})}
	s := Session{Lives: 3, EnemiesRemaining: 5}

	if !CheckContact(st, &p, enemies, &s) {
		t.Fatal("expected contact")
	}
	if s.Lives != 2 {
		t.Errorf("lives: expected 2, got %d", s.Lives)
	}
	if p.Invulnerable != playerRecovery {
		t.Errorf("invulnerable: expected %d, got %d", playerRecovery, p.Invulnerable)
	}

	p.X, p.Y = enemies[0].X, enemies[0].Y
	if CheckContact(st, &p, enemies, &s) {
		t.Error("expected no contact while recovering")
	}
}

// TestCheckContact_Adjacent tests that boxes sharing an edge do not touch
func TestCheckContact_Adjacent(t *testing.T) {
	st := NewSpriteTable()
	p := NewPlayer(st)
	enemies := []Enemy{NewEnemy(st, EnemySpawn{X: p.X + playerWidth, Y: p.Y, Frame: EnemyFrame})}
	s := Session{Lives: 3}

	if CheckContact(st, &p, enemies, &s) {
		t.Error("expected no contact")
	}
}

// TestEnemy_ShiftWraps tests that enemy x stays in the sprite field domain
func TestEnemy_ShiftWraps(t *testing.T) {
	st := NewSpriteTable()
	e := NewEnemy(st, EnemySpawn{X: 0, Y: 100, Frame: EnemyFrame})

	e.Shift(st, -20)
	if e.X != 492 {
		t.Errorf("expected x=492, got %d", e.X)
	}
	if st.Get(e.Sprite).X != 492 {
		t.Errorf("sprite: expected x=492, got %d", st.Get(e.Sprite).X)
	}

	e.Shift(st, 10)
	if e.X != -10 {
		t.Errorf("expected x=-10, got %d", e.X)
	}
	if st.Get(e.Sprite).X != 502 {
		t.Errorf("sprite: expected x=502, got %d", st.Get(e.Sprite).X)
	}
}

// TestEnemy_Animate tests the two-image walk cycle
func TestEnemy_Animate(t *testing.T) {
	st := NewSpriteTable()
	e := NewEnemy(st, EnemySpawn{X: 10, Y: 10, Frame: EnemyFrame})

	e.Animate(st, 1)
	if e.Frame != EnemyFrame {
		t.Errorf("off tick: expected %d, got %d", EnemyFrame, e.Frame)
	}
	e.Animate(st, enemyAnimationDelay)
	if e.Frame != EnemyFrame+enemyAltFrame {
		t.Errorf("first flip: expected %d, got %d", EnemyFrame+enemyAltFrame, e.Frame)
	}
	e.Animate(st, 2*enemyAnimationDelay)
	if e.Frame != EnemyFrame {
		t.Errorf("second flip: expected %d, got %d", EnemyFrame, e.Frame)
	}
}
