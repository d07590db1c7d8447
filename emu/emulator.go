package emu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
	"github.com/Chairfield97/CPSC-305-GBA-Game/level"
	emucore "github.com/user-none/eblitui/api"
)

// Compile-time interface checks.
var _ emucore.Emulator = (*Emulator)(nil)
var _ emucore.SaveStater = (*Emulator)(nil)

// Core identity reported to frontends.
const (
	Name    = "gbarun"
	Version = "0.3.0"
)

const sampleRate = 48000

// Save state format constants
const (
	stateVersion    = 1
	stateMagic      = "GBRunState01"
	stateHeaderSize = 22 // magic(12) + version(2) + romCRC(4) + dataCRC(4)
)

// Core option keys.
const (
	OptionOverlay = "show_overlay"
)

// Emulator runs the game on a Console under a frontend that owns the
// frame clock: the frontend calls RunFrame once per tick and presents
// the framebuffer afterwards.
type Emulator struct {
	console *Console
	driver  *game.Driver
	level   *game.Level
	cfg     game.Config

	romCRC uint32
	region Region
	timing RegionTiming

	// one frame of silence, reused every frame
	audioBuffer []int16
}

// LoadLevel turns cartridge data into a level. An empty cartridge runs
// the built-in level.
func LoadLevel(rom []byte) (*game.Level, error) {
	if len(rom) == 0 {
		return level.Default(), nil
	}
	lvl, err := level.Decode(rom)
	if err != nil {
		return nil, fmt.Errorf("failed to load cartridge: %w", err)
	}
	return lvl, nil
}

// FrontendConfig returns the default settings without the busy delay.
// Frontends that call RunFrame pace frames themselves.
func FrontendConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Delay = 0
	return cfg
}

// NewEmulator creates an emulator for the cartridge with default
// settings. Pacing is left to the frontend.
func NewEmulator(rom []byte, region Region) (*Emulator, error) {
	return NewEmulatorWithConfig(rom, region, FrontendConfig())
}

// NewEmulatorWithConfig creates an emulator with explicit game settings.
func NewEmulatorWithConfig(rom []byte, region Region, cfg game.Config) (*Emulator, error) {
	lvl, err := LoadLevel(rom)
	if err != nil {
		return nil, err
	}

	console := NewConsole(lvl)
	driver, err := game.NewDriver(console, lvl, cfg)
	if err != nil {
		return nil, err
	}

	timing := GetTimingForRegion(region)
	samplesPerFrame := sampleRate / timing.FPS

	return &Emulator{
		console:     console,
		driver:      driver,
		level:       lvl,
		cfg:         cfg,
		romCRC:      crc32.ChecksumIEEE(rom),
		region:      region,
		timing:      timing,
		audioBuffer: make([]int16, samplesPerFrame*2),
	}, nil
}

// RunFrame runs one frame of game logic, scans it out and applies the
// configured busy delay. Once the end screen has been dismissed a new
// session starts on the same level.
func (e *Emulator) RunFrame() {
	if e.driver.Phase() == game.PhaseDone {
		e.restart()
	}
	e.driver.Frame()
	e.console.WaitVBlank()
	game.BusyDelay(e.cfg.Delay)
}

func (e *Emulator) restart() {
	driver, err := game.NewDriver(e.console, e.level, e.cfg)
	if err != nil {
		// level and config were accepted once already
		panic(err)
	}
	for row := 0; row < game.TextRows; row++ {
		e.console.SetText(row, "")
	}
	e.driver = driver
}

// Driver returns the running session.
func (e *Emulator) Driver() *game.Driver {
	return e.driver
}

// Console returns the console the game runs on.
func (e *Emulator) Console() *Console {
	return e.console
}

// SetInput loads player one's buttons into the key register. Other
// players are ignored.
func (e *Emulator) SetInput(player int, buttons uint32) {
	if player != 0 {
		return
	}
	e.console.Input().SetMask(buttons)
}

// GetFramebuffer returns raw RGBA pixel data for the current frame.
func (e *Emulator) GetFramebuffer() []byte {
	return e.console.Framebuffer().Pix
}

// GetFramebufferStride returns the stride (bytes per row) of the framebuffer.
func (e *Emulator) GetFramebufferStride() int {
	return e.console.Framebuffer().Stride
}

// GetActiveHeight returns the display height.
func (e *Emulator) GetActiveHeight() int {
	return MaxScreenHeight
}

// GetAudioSamples returns one frame of 16-bit stereo silence. The game
// has no sound; frontends still pace audio by it.
func (e *Emulator) GetAudioSamples() []int16 {
	return e.audioBuffer
}

// GetRegion returns the emulator's region setting
func (e *Emulator) GetRegion() Region {
	return e.region
}

// SetRegion records the region. Timing does not change with it.
func (e *Emulator) SetRegion(region Region) {
	e.region = region
	e.timing = GetTimingForRegion(region)
}

// GetTiming returns FPS and scanline count.
func (e *Emulator) GetTiming() emucore.Timing {
	return emucore.Timing{
		FPS:       e.timing.FPS,
		Scanlines: e.timing.Scanlines,
	}
}

// SetOption applies a core option change identified by key.
func (e *Emulator) SetOption(key string, value string) {
	switch key {
	case OptionOverlay:
		e.console.VDP().SetOverlay(value == "true")
	}
}

// Close releases any resources held by the emulator.
func (e *Emulator) Close() {}

// =============================================================================
// Save State Serialization
// =============================================================================

// SerializeSize returns the total size in bytes needed for a save state.
func SerializeSize() int {
	return stateHeaderSize + game.SnapshotSize
}

// Serialize creates a save state and returns it as a byte slice.
func (e *Emulator) Serialize() ([]byte, error) {
	snap, err := e.driver.Snapshot()
	if err != nil {
		return nil, err
	}

	data := make([]byte, stateHeaderSize, SerializeSize())
	copy(data[0:12], stateMagic)
	binary.LittleEndian.PutUint16(data[12:14], stateVersion)
	binary.LittleEndian.PutUint32(data[14:18], e.romCRC)
	data = append(data, snap...)

	// data CRC covers everything after the header
	binary.LittleEndian.PutUint32(data[18:22], crc32.ChecksumIEEE(data[stateHeaderSize:]))
	return data, nil
}

// Deserialize restores the session from a save state.
func (e *Emulator) Deserialize(data []byte) error {
	if err := e.VerifyState(data); err != nil {
		return err
	}
	return e.driver.Restore(data[stateHeaderSize:])
}

// VerifyState checks if a save state is valid without loading it.
func (e *Emulator) VerifyState(data []byte) error {
	if len(data) != SerializeSize() {
		return errors.New("save state has the wrong size")
	}

	if string(data[0:12]) != stateMagic {
		return errors.New("invalid save state magic")
	}

	version := binary.LittleEndian.Uint16(data[12:14])
	if version > stateVersion {
		return errors.New("unsupported save state version")
	}

	romCRC := binary.LittleEndian.Uint32(data[14:18])
	if romCRC != e.romCRC {
		return errors.New("save state is for a different cartridge")
	}

	expectedCRC := binary.LittleEndian.Uint32(data[18:22])
	if expectedCRC != crc32.ChecksumIEEE(data[stateHeaderSize:]) {
		return errors.New("save state data is corrupted")
	}

	return nil
}
