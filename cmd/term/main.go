// Command term plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/romloader"
	"github.com/Chairfield97/CPSC-305-GBA-Game/storage"
	"github.com/Chairfield97/CPSC-305-GBA-Game/term"
)

func main() {
	levelPath := flag.String("level", "", "path to level cartridge (built-in level if empty)")
	delay := flag.Int("delay", -1, "busy delay after each frame (-1 uses the saved setting)")
	flag.Parse()

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		config = storage.DefaultConfig()
	}
	if *delay >= 0 {
		config.Game.Delay = *delay
	}

	var rom []byte
	if *levelPath != "" {
		rom, _, err = romloader.LoadROM(*levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}
	lvl, err := emu.LoadLevel(rom)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	host, err := term.NewHost(screen, lvl, config.Settings())
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to start game: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	outcome, err := host.Run(ctx)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	fmt.Printf("Session ended: %s\n", outcome)
}
