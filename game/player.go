package game

// Player tuning, in pixels and 1/256 pixel units.
const (
	PlayerSpawnX = 50
	PlayerSpawnY = 113

	playerGravity        = 30
	playerBorder         = 40
	playerAnimationDelay = 8
	playerJumpVelocity   = -1000
	playerWidth          = 16
	playerHeight         = 32

	// feet probe, relative to the sprite origin
	playerFootX = 8
	playerFootY = 32

	// frames of invulnerability after losing a life
	playerRecovery = 60
)

// Player sprite tile offsets.
const (
	FrameStand    = 0
	FrameWalkA    = 16
	FrameWalkB    = 32
	FrameAirborne = 48
)

// Tile index ranges on the collision layer the player can stand on.
var groundRanges = [...][2]uint16{
	{540, 551},
	{556, 569},
}

// IsGround reports whether tile is solid ground.
func IsGround(tile uint16) bool {
	for _, r := range groundRanges {
		if tile >= r[0] && tile <= r[1] {
			return true
		}
	}
	return false
}

// Player is the singleton character. Position is in whole screen pixels;
// vertical velocity is in 1/256 pixel per frame.
type Player struct {
	X, Y    int
	YVel    int
	Gravity int

	Frame          int
	AnimationDelay int
	Counter        int

	Moving  bool
	Falling bool
	Border  int

	// FacingLeft mirrors the sprite's horizontal flip.
	FacingLeft bool

	// Invulnerable counts down the frames left before the player can be
	// hurt again.
	Invulnerable int

	Sprite SpriteSlot
}

// NewPlayer places the player at the spawn point and claims its sprite.
func NewPlayer(st *SpriteTable) Player {
	p := Player{
		X:              PlayerSpawnX,
		Y:              PlayerSpawnY,
		Gravity:        playerGravity,
		Border:         playerBorder,
		Frame:          FrameStand,
		AnimationDelay: playerAnimationDelay,
	}
	p.Sprite = st.Allocate(p.X, p.Y, Size16x32, false, false, p.Frame, 0)
	return p
}

// Respawn returns the player to the spawn point with a short recovery
// window. Sprite slot and facing are kept.
func (p *Player) Respawn(st *SpriteTable) {
	p.X = PlayerSpawnX
	p.Y = PlayerSpawnY
	p.YVel = 0
	p.Falling = false
	p.Moving = false
	p.Counter = 0
	p.Frame = FrameStand
	p.Invulnerable = playerRecovery
	st.SetTileOffset(p.Sprite, p.Frame)
	st.SetPosition(p.Sprite, p.X, p.Y)
}

// Update advances physics and animation by one frame. xScroll is the
// collision layer's horizontal scroll and ground its tilemap.
func (p *Player) Update(st *SpriteTable, xScroll int, ground *Tilemap) {
	if p.Falling {
		p.Y += p.YVel >> 8
		p.YVel += p.Gravity
	}

	tile := LookupTile(p.X+playerFootX, p.Y+playerFootY, xScroll, 0, ground)
	if IsGround(tile) {
		p.Falling = false
		p.YVel = 0

		// line up with the top of the block, then drop one pixel for
		// the blank row at the bottom of the sprite image
		p.Y &^= 0x3
		p.Y++
	} else {
		p.Falling = true
	}

	if p.Moving {
		p.Counter++
		if p.Falling {
			p.Frame = FrameAirborne
		} else if p.Counter >= p.AnimationDelay {
			p.Frame += 16
			if p.Frame > FrameWalkB {
				p.Frame = FrameWalkA
			}
			st.SetTileOffset(p.Sprite, p.Frame)
			p.Counter = 0
		}
	}

	if p.Invulnerable > 0 {
		p.Invulnerable--
		// blink while recovering
		if p.Invulnerable&0x4 != 0 {
			st.Hide(p.Sprite)
			return
		}
	}
	st.SetPosition(p.Sprite, p.X, p.Y)
}

// Left faces and walks the player left. It returns true when the player
// is inside the screen border, in which case the caller scrolls the
// world instead.
func (p *Player) Left(st *SpriteTable) bool {
	p.FacingLeft = true
	st.SetHFlip(p.Sprite, true)
	p.Moving = true

	if p.X < p.Border {
		return true
	}
	p.X--
	return false
}

// Right faces and walks the player right; see Left.
func (p *Player) Right(st *SpriteTable) bool {
	p.FacingLeft = false
	st.SetHFlip(p.Sprite, false)
	p.Moving = true

	if p.X > ScreenWidth-playerWidth-p.Border {
		return true
	}
	p.X++
	return false
}

// Stop ends walking and shows the standing or airborne frame.
func (p *Player) Stop(st *SpriteTable) {
	p.Moving = false
	if p.Falling {
		p.Frame = FrameAirborne
	} else {
		p.Frame = FrameStand
	}
	p.Counter = 7
	st.SetTileOffset(p.Sprite, p.Frame)
}

// Jump launches the player. It does nothing while already airborne.
func (p *Player) Jump(st *SpriteTable) {
	if p.Falling {
		return
	}
	p.YVel = playerJumpVelocity
	p.Falling = true
	p.Frame = FrameAirborne
	st.SetTileOffset(p.Sprite, p.Frame)
}

// ShowFalling forces the airborne frame while falling.
func (p *Player) ShowFalling(st *SpriteTable) {
	if p.Falling {
		p.Frame = FrameAirborne
		st.SetTileOffset(p.Sprite, p.Frame)
	}
}
