package level

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
)

// Level cartridge layout, all values little endian:
//
//	magic    [4]byte "GBLV"
//	version  uint16
//	flags    uint16 (reserved, zero)
//	layers   2 x { width uint16, height uint16, tiles [width*height]uint16 }
//	spawns   uint16 count, count x { x int16, y int16, frame uint16 }
//	crc32    uint32 IEEE over everything before it
const (
	Magic   = "GBLV"
	Version = 1

	// Extension is the file suffix of a raw level cartridge.
	Extension = ".gbl"

	headerSize  = 8
	trailerSize = 4
)

var (
	ErrBadMagic           = errors.New("not a level cartridge")
	ErrUnsupportedVersion = errors.New("unsupported level version")
	ErrTruncated          = errors.New("level data truncated")
	ErrChecksum           = errors.New("level checksum mismatch")
)

// IsCartridge reports whether data starts with the cartridge magic.
func IsCartridge(data []byte) bool {
	return len(data) >= len(Magic) && string(data[:len(Magic)]) == Magic
}

// Encode serialises lvl into cartridge form.
func Encode(lvl *game.Level) ([]byte, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(Magic)
	le := binary.LittleEndian
	buf.Write(le.AppendUint16(nil, Version))
	buf.Write(le.AppendUint16(nil, 0))

	for _, m := range []*game.Tilemap{lvl.Background, lvl.Foreground} {
		buf.Write(le.AppendUint16(nil, uint16(m.Width)))
		buf.Write(le.AppendUint16(nil, uint16(m.Height)))
		if err := binary.Write(&buf, le, m.Tiles); err != nil {
			return nil, fmt.Errorf("failed to write tiles: %w", err)
		}
	}

	buf.Write(le.AppendUint16(nil, uint16(len(lvl.Spawns))))
	for _, s := range lvl.Spawns {
		buf.Write(le.AppendUint16(nil, uint16(int16(s.X))))
		buf.Write(le.AppendUint16(nil, uint16(int16(s.Y))))
		buf.Write(le.AppendUint16(nil, uint16(s.Frame)))
	}

	sum := crc32.ChecksumIEEE(buf.Bytes())
	buf.Write(le.AppendUint32(nil, sum))
	return buf.Bytes(), nil
}

// Decode parses a level cartridge. The checksum is verified before any
// field is trusted.
func Decode(data []byte) (*game.Level, error) {
	if !IsCartridge(data) {
		return nil, ErrBadMagic
	}
	if len(data) < headerSize+trailerSize {
		return nil, ErrTruncated
	}

	body := data[:len(data)-trailerSize]
	want := binary.LittleEndian.Uint32(data[len(data)-trailerSize:])
	if got := crc32.ChecksumIEEE(body); got != want {
		return nil, fmt.Errorf("%w: expected %08x, got %08x", ErrChecksum, want, got)
	}

	r := &reader{buf: body, off: len(Magic)}
	if v := r.u16(); v != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	r.u16() // flags

	var layers [2]*game.Tilemap
	for i := range layers {
		w, h := int(r.u16()), int(r.u16())
		if r.err != nil {
			return nil, r.err
		}
		m, err := game.NewBlankTilemap(w, h)
		if err != nil {
			return nil, fmt.Errorf("failed to decode layer %d: %w", i, err)
		}
		for j := range m.Tiles {
			m.Tiles[j] = r.u16()
		}
		if r.err != nil {
			return nil, r.err
		}
		layers[i] = m
	}

	lvl := &game.Level{Background: layers[0], Foreground: layers[1]}

	if n := int(r.u16()); r.err == nil && n != game.NumEnemies {
		return nil, fmt.Errorf("%w: expected %d spawns, got %d", game.ErrBadLevel, game.NumEnemies, n)
	}
	for i := range lvl.Spawns {
		lvl.Spawns[i] = game.EnemySpawn{
			X:     int(int16(r.u16())),
			Y:     int(int16(r.u16())),
			Frame: int(r.u16()),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.off != len(body) {
		return nil, fmt.Errorf("%w: %d trailing bytes", game.ErrBadLevel, len(body)-r.off)
	}
	return lvl, nil
}

// reader walks a byte slice, latching the first short read.
type reader struct {
	buf []byte
	off int
	err error
}

func (r *reader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	if r.off+2 > len(r.buf) {
		r.err = ErrTruncated
		return 0
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}
