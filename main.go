//go:build !libretro

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Chairfield97/CPSC-305-GBA-Game/cli"
	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/romloader"
	"github.com/Chairfield97/CPSC-305-GBA-Game/storage"
)

func main() {
	levelPath := flag.String("level", "", "path to level cartridge (built-in level if empty)")
	delay := flag.Int("delay", -1, "busy delay after each frame (-1 uses the saved setting)")
	scale := flag.Int("scale", 0, "window scale factor (0 keeps the saved window size)")
	flag.Parse()

	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Printf("Failed to create config: %v", err)
	}
	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		config = storage.DefaultConfig()
	}
	if *delay >= 0 {
		config.Game.Delay = *delay
	}
	config.SetScale(*scale)

	var rom []byte
	title := "gbarun"
	if *levelPath != "" {
		var name string
		rom, name, err = romloader.LoadROM(*levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		title += " - " + name
	}

	e, err := emu.NewEmulatorWithConfig(rom, emu.DefaultRegion(), config.Settings())
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	runner := cli.NewRunner(e)
	defer runner.Close()

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if config.Window.X != nil && config.Window.Y != nil {
		ebiten.SetWindowPosition(*config.Window.X, *config.Window.Y)
	}
	ebiten.SetTPS(e.GetTiming().FPS)

	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}

	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	config.RecordWindow(x, y, w, h)
	if err := storage.SaveConfig(config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	log.Printf("Session ended: %s", runner.Outcome())
}
