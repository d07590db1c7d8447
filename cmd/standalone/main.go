//go:build !libretro && !ios

package main

import (
	"flag"
	"log"

	"github.com/user-none/eblitui/standalone"

	"github.com/Chairfield97/CPSC-305-GBA-Game/adapter"
	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/storage"
)

func main() {
	levelPath := flag.String("level", "", "path to level cartridge (opens UI if not provided)")
	noOverlay := flag.Bool("no-overlay", false, "hide the status overlay")
	flag.Parse()

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		config = storage.DefaultConfig()
	}
	settings := config.Settings()
	// the frontend paces frames
	settings.Delay = 0
	factory := &adapter.Factory{Cfg: &settings}

	if *levelPath != "" {
		options := map[string]string{}
		if *noOverlay {
			options[emu.OptionOverlay] = "false"
		}
		if err := standalone.RunDirect(factory, *levelPath, "auto", options); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := standalone.Run(factory); err != nil {
		log.Fatal(err)
	}
}
