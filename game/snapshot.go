package game

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrBadSnapshot is returned when snapshot data does not fit the session.
var ErrBadSnapshot = errors.New("invalid session snapshot")

// The snapshot records every mutable field of a session in fixed-width
// form. Level content and tuning constants are not recorded; they come
// from the cartridge the session was started with.
type snapshot struct {
	Frame    int32
	Phase    uint8
	BGScroll int32
	FGScroll int32

	EnemiesRemaining int32
	Lives            int32
	Won, Over        bool

	Player     playerRecord
	Enemies    [NumEnemies]enemyRecord
	Projectile projectileRecord

	SpritesNext uint16
	Sprites     [NumSprites]spriteRecord
}

type playerRecord struct {
	X, Y, YVel   int32
	Frame        int32
	Counter      int32
	Invulnerable int32
	Moving       bool
	Falling      bool
	FacingLeft   bool
	Sprite       int16
}

type enemyRecord struct {
	X, Y      int32
	Frame     int32
	Countdown int32
	Alive     bool
	Sprite    int16
}

type projectileRecord struct {
	X, Y, XVel int32
	Alive      bool
	InFlight   bool
	Allocated  bool
	Sprite     int16
}

type spriteRecord struct {
	X, Y       uint16
	Size       uint8
	HFlip      bool
	VFlip      bool
	Tile       uint16
	Priority   uint8
	Palette256 bool
}

// SnapshotSize is the exact length of MarshalBinary's output.
var SnapshotSize = binary.Size(snapshot{})

// MarshalBinary records the session.
func (s *GameState) MarshalBinary() ([]byte, error) {
	snap := snapshot{
		Frame:            int32(s.Frame),
		Phase:            uint8(s.Phase),
		BGScroll:         int32(s.BGScroll),
		FGScroll:         int32(s.FGScroll),
		EnemiesRemaining: int32(s.Session.EnemiesRemaining),
		Lives:            int32(s.Session.Lives),
		Won:              s.Session.Won,
		Over:             s.Session.Over,
		SpritesNext:      uint16(s.Sprites.next),
	}

	p := &s.Player
	snap.Player = playerRecord{
		X: int32(p.X), Y: int32(p.Y), YVel: int32(p.YVel),
		Frame:        int32(p.Frame),
		Counter:      int32(p.Counter),
		Invulnerable: int32(p.Invulnerable),
		Moving:       p.Moving,
		Falling:      p.Falling,
		FacingLeft:   p.FacingLeft,
		Sprite:       int16(p.Sprite),
	}

	for i, e := range s.Enemies {
		snap.Enemies[i] = enemyRecord{
			X: int32(e.X), Y: int32(e.Y),
			Frame:     int32(e.Frame),
			Countdown: int32(e.Countdown),
			Alive:     e.Alive,
			Sprite:    int16(e.Sprite),
		}
	}

	pr := &s.Projectile
	snap.Projectile = projectileRecord{
		X: int32(pr.X), Y: int32(pr.Y), XVel: int32(pr.XVel),
		Alive:     pr.Alive,
		InFlight:  pr.InFlight,
		Allocated: pr.allocated,
		Sprite:    int16(pr.Sprite),
	}

	for i, sp := range s.Sprites.sprites {
		snap.Sprites[i] = spriteRecord{
			X: uint16(sp.X), Y: uint16(sp.Y),
			Size:       uint8(sp.Size),
			HFlip:      sp.HFlip,
			VFlip:      sp.VFlip,
			Tile:       uint16(sp.Tile),
			Priority:   uint8(sp.Priority),
			Palette256: sp.Palette256,
		}
	}

	var buf bytes.Buffer
	buf.Grow(SnapshotSize)
	if err := binary.Write(&buf, binary.LittleEndian, &snap); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a session recorded by MarshalBinary. The
// state must already hold the level the snapshot was taken on. Nothing
// is changed if data is rejected.
func (s *GameState) UnmarshalBinary(data []byte) error {
	if len(data) != SnapshotSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrBadSnapshot, SnapshotSize, len(data))
	}

	var snap snapshot
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := snap.check(); err != nil {
		return err
	}

	s.Frame = int(snap.Frame)
	s.Phase = Phase(snap.Phase)
	s.BGScroll = int(snap.BGScroll)
	s.FGScroll = int(snap.FGScroll)
	s.Session = Session{
		EnemiesRemaining: int(snap.EnemiesRemaining),
		Lives:            int(snap.Lives),
		Won:              snap.Won,
		Over:             snap.Over,
	}

	pr := snap.Player
	s.Player = Player{
		X: int(pr.X), Y: int(pr.Y), YVel: int(pr.YVel),
		Gravity:        playerGravity,
		Frame:          int(pr.Frame),
		AnimationDelay: playerAnimationDelay,
		Counter:        int(pr.Counter),
		Moving:         pr.Moving,
		Falling:        pr.Falling,
		Border:         playerBorder,
		FacingLeft:     pr.FacingLeft,
		Invulnerable:   int(pr.Invulnerable),
		Sprite:         SpriteSlot(pr.Sprite),
	}

	for i, er := range snap.Enemies {
		s.Enemies[i] = Enemy{
			X: int(er.X), Y: int(er.Y),
			Frame:     int(er.Frame),
			Alive:     er.Alive,
			Countdown: int(er.Countdown),
			Spawn:     s.Level.Spawns[i],
			Sprite:    SpriteSlot(er.Sprite),
		}
	}

	jr := snap.Projectile
	s.Projectile = Projectile{
		X: int(jr.X), Y: int(jr.Y), XVel: int(jr.XVel),
		Alive:     jr.Alive,
		InFlight:  jr.InFlight,
		Sprite:    SpriteSlot(jr.Sprite),
		allocated: jr.Allocated,
	}

	s.Sprites.next = int(snap.SpritesNext)
	for i, sr := range snap.Sprites {
		s.Sprites.sprites[i] = Sprite{
			X: int(sr.X), Y: int(sr.Y),
			Size:       SpriteSize(sr.Size),
			HFlip:      sr.HFlip,
			VFlip:      sr.VFlip,
			Tile:       int(sr.Tile),
			Priority:   int(sr.Priority),
			Palette256: sr.Palette256,
		}
	}
	return nil
}

// check rejects values that would index out of range once restored.
func (snap *snapshot) check() error {
	if snap.Phase > uint8(PhaseDone) {
		return fmt.Errorf("%w: phase %d", ErrBadSnapshot, snap.Phase)
	}
	if int(snap.SpritesNext) > NumSprites {
		return fmt.Errorf("%w: %d sprites allocated", ErrBadSnapshot, snap.SpritesNext)
	}

	slots := []int16{snap.Player.Sprite, snap.Projectile.Sprite}
	for _, e := range snap.Enemies {
		slots = append(slots, e.Sprite)
	}
	for _, slot := range slots {
		if slot < 0 || int(slot) >= NumSprites {
			return fmt.Errorf("%w: sprite slot %d", ErrBadSnapshot, slot)
		}
	}

	for i, sp := range snap.Sprites {
		if int(sp.Size) >= len(spriteGeometry) {
			return fmt.Errorf("%w: sprite %d size %d", ErrBadSnapshot, i, sp.Size)
		}
	}
	return nil
}
