// Package emuios provides a gomobile-compatible interface to the game.
package emuios

import (
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/level"
	"github.com/Chairfield97/CPSC-305-GBA-Game/romloader"
)

// ExtractResult contains the result of level extraction
type ExtractResult struct {
	Crc32    string // Hex string, e.g., "AABBCCDD"
	Filename string // Original filename from archive, e.g., "castle.gbl"
}

// currentEmu holds the emulator state (unexported)
var currentEmu *emulatorState

type emulatorState struct {
	emulator  *emu.Emulator
	frameData []byte
	stateData []byte
}

// InitFromPath creates an emulator from a level file path.
// Automatically extracts from ZIP/7z/gzip/RAR if needed.
// Returns true on success, false on error.
func InitFromPath(path string) bool {
	rom, _, err := romloader.LoadROM(path)
	if err != nil {
		return false
	}
	return start(rom)
}

// InitDefault creates an emulator running the built-in level.
func InitDefault() bool {
	return start(nil)
}

func start(rom []byte) bool {
	e, err := emu.NewEmulator(rom, emu.DefaultRegion())
	if err != nil {
		return false
	}
	currentEmu = &emulatorState{emulator: e}
	return true
}

// Close releases the emulator.
func Close() {
	currentEmu = nil
}

// RunFrame executes one frame.
func RunFrame() {
	if currentEmu == nil {
		return
	}
	currentEmu.emulator.RunFrame()

	fb := currentEmu.emulator.GetFramebuffer()
	active := currentEmu.emulator.GetFramebufferStride() * currentEmu.emulator.GetActiveHeight()
	currentEmu.frameData = fb[:active]
}

// FrameWidth returns the display width (always 240).
func FrameWidth() int {
	return emu.ScreenWidth
}

// FrameHeight returns the display height (always 160).
func FrameHeight() int {
	return emu.MaxScreenHeight
}

// GetFrameData returns the RGBA frame buffer of the last frame.
func GetFrameData() []byte {
	if currentEmu == nil {
		return nil
	}
	return currentEmu.frameData
}

// SetInput sets the controller state from a frontend button bitmask.
func SetInput(buttons int) {
	if currentEmu != nil {
		currentEmu.emulator.SetInput(0, uint32(buttons))
	}
}

// Outcome returns the session result: 0 playing, 1 won, 2 lost.
func Outcome() int {
	if currentEmu == nil {
		return 0
	}
	return int(currentEmu.emulator.Driver().Outcome())
}

// SaveState creates a save state. Returns true on success.
func SaveState() bool {
	if currentEmu == nil {
		return false
	}
	data, err := currentEmu.emulator.Serialize()
	if err != nil {
		currentEmu.stateData = nil
		return false
	}
	currentEmu.stateData = data
	return true
}

// StateLen returns the length of the last saved state.
func StateLen() int {
	if currentEmu == nil {
		return 0
	}
	return len(currentEmu.stateData)
}

// StateByte returns a single byte from the saved state at index i.
func StateByte(i int) int {
	if currentEmu == nil || i < 0 || i >= len(currentEmu.stateData) {
		return 0
	}
	return int(currentEmu.stateData[i])
}

// LoadState loads a save state. Returns true on success.
func LoadState(data []byte) bool {
	if currentEmu == nil {
		return false
	}
	return currentEmu.emulator.Deserialize(data) == nil
}

// GetFPS returns the target frame rate.
func GetFPS() int {
	return emu.LCDTiming.FPS
}

// GetCRC32FromPath calculates the CRC32 checksum of a level file.
// Automatically extracts from ZIP/7z/gzip/RAR if needed.
// Returns -1 on error.
func GetCRC32FromPath(path string) int64 {
	rom, _, err := romloader.LoadROM(path)
	if err != nil {
		return -1
	}
	return int64(crc32.ChecksumIEEE(rom))
}

// ExtractAndStoreLevel extracts a level from an archive (or copies a raw
// cartridge), checks that it decodes, and stores it as
// {destDir}/{CRC32}.gbl. An existing file with the same CRC32 is kept.
func ExtractAndStoreLevel(srcPath, destDir string) (*ExtractResult, error) {
	rom, filename, err := romloader.LoadROM(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	if _, err := level.Decode(rom); err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}

	crcHex := fmt.Sprintf("%08X", crc32.ChecksumIEEE(rom))
	destPath := filepath.Join(destDir, crcHex+level.Extension)

	if _, err := os.Stat(destPath); err == nil {
		return &ExtractResult{Crc32: crcHex, Filename: filename}, nil
	}

	if err := os.WriteFile(destPath, rom, 0644); err != nil {
		return nil, fmt.Errorf("failed to write level: %w", err)
	}

	return &ExtractResult{Crc32: crcHex, Filename: filename}, nil
}
