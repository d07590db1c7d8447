package main

import (
	"log"

	libretro "github.com/user-none/eblitui/libretro"

	"github.com/Chairfield97/CPSC-305-GBA-Game/adapter"
	"github.com/Chairfield97/CPSC-305-GBA-Game/emu"
	"github.com/Chairfield97/CPSC-305-GBA-Game/storage"
)

func init() {
	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		config = storage.DefaultConfig()
	}
	settings := config.Settings()
	// the libretro frontend paces frames
	settings.Delay = 0

	libretro.RegisterFactory(&adapter.Factory{Cfg: &settings}, []libretro.RetropadMapping{
		{RetroID: libretro.JoypadA, BitID: emu.InputBitA},         // jump
		{RetroID: libretro.JoypadB, BitID: emu.InputBitB},         // shoot
		{RetroID: libretro.JoypadStart, BitID: emu.InputBitStart}, // dismiss end screen
	})
}

func main() {}
