package game

// ProjectileFrame is the projectile sprite tile offset.
const ProjectileFrame = 96

const (
	projectileSpeed = 2
	projectileSize  = 8

	// muzzle position relative to the player sprite origin
	muzzleX = 4
	muzzleY = 12
)

// Projectile is the single reusable shot. Its sprite is claimed the
// first time it is fired.
type Projectile struct {
	X, Y int
	XVel int

	Alive bool

	// InFlight blocks firing until the current shot is gone.
	InFlight bool

	Sprite    SpriteSlot
	allocated bool
}

// Fire launches the shot from the player's muzzle. It does nothing while
// a shot is already in flight and reports whether a shot was fired.
func (pr *Projectile) Fire(st *SpriteTable, p *Player) bool {
	if pr.InFlight {
		return false
	}

	pr.X = p.X + muzzleX
	pr.Y = p.Y + muzzleY
	pr.XVel = projectileSpeed
	if p.FacingLeft {
		pr.XVel = -projectileSpeed
	}
	pr.Alive = true
	pr.InFlight = true

	if !pr.allocated {
		pr.Sprite = st.Allocate(pr.X, pr.Y, Size8x8, p.FacingLeft, false, ProjectileFrame, 0)
		pr.allocated = true
	} else {
		st.SetHFlip(pr.Sprite, p.FacingLeft)
		st.SetPosition(pr.Sprite, pr.X, pr.Y)
	}
	return true
}

// AtEdge reports whether the shot has reached either side of the screen.
func (pr *Projectile) AtEdge() bool {
	return pr.X <= 0 || pr.X >= ScreenWidth-projectileSize
}

// Advance moves the shot one frame along its velocity.
func (pr *Projectile) Advance(st *SpriteTable) {
	pr.X += pr.XVel
	st.SetPosition(pr.Sprite, pr.X, pr.Y)
}

// Despawn removes the shot from play and hides its sprite.
func (pr *Projectile) Despawn(st *SpriteTable) {
	pr.Alive = false
	pr.InFlight = false
	pr.XVel = 0
	if pr.allocated {
		pr.X, pr.Y = ScreenWidth, ScreenHeight
		st.Hide(pr.Sprite)
	}
}
