// Package level builds the stock level and reads and writes level
// cartridges.
package level

import "github.com/Chairfield97/CPSC-305-GBA-Game/game"

// Tile numbers used by the stock level. The renderer colours tiles by
// range, so any tile in a range looks like its neighbours.
const (
	TileSky = 0

	// TileGrass is the first surface tile; the surface cycles through
	// twelve variants.
	TileGrass = 540

	// TileSoil is the first fill tile; fill cycles through fourteen.
	TileSoil = 556

	// TileFlower sits on top of the ground and is not solid.
	TileFlower = 552

	TileCloud = 600
	TileHill  = 610
)

const (
	groundRow   = 18
	platformRow = 13
	skylineRow  = 14
)

// pit and platform spans, in collision layer columns
var (
	pits      = [][2]int{{20, 22}, {44, 46}}
	platforms = [][2]int{{30, 35}, {54, 57}}
)

// Default returns the stock level: a 512 pixel wide strip of ground with
// two pits and two floating platforms, a slower background of hills and
// clouds, and six enemies spread along the way.
func Default() *game.Level {
	fg, _ := game.NewBlankTilemap(64, 32)
	for col := 0; col < fg.Width; col++ {
		if inSpan(col, pits) {
			continue
		}
		fg.Set(col, groundRow, uint16(TileGrass+col%12))
		for row := groundRow + 1; row < fg.Height; row++ {
			fg.Set(col, row, uint16(TileSoil+(col+row)%14))
		}
		if col%7 == 3 {
			fg.Set(col, groundRow-1, TileFlower)
		}
	}
	for _, span := range platforms {
		for col := span[0]; col <= span[1]; col++ {
			fg.Set(col, platformRow, uint16(TileSoil+col%14))
		}
	}

	bg, _ := game.NewBlankTilemap(32, 32)
	for col := 0; col < bg.Width; col++ {
		// rolling hills
		top := skylineRow + hillHeight(col)
		for row := top; row < bg.Height; row++ {
			bg.Set(col, row, uint16(TileHill+(row-top)%4))
		}
	}
	for _, c := range [][2]int{{3, 3}, {4, 3}, {12, 5}, {13, 5}, {14, 5}, {24, 2}, {25, 2}} {
		bg.Set(c[0], c[1], TileCloud)
	}

	lvl := &game.Level{Background: bg, Foreground: fg}
	spawns := [game.NumEnemies][2]int{
		{90, 128}, {150, 128}, {210, 128},
		{256, 88}, {330, 128}, {420, 128},
	}
	for i, s := range spawns {
		lvl.Spawns[i] = game.EnemySpawn{X: s[0], Y: s[1], Frame: game.EnemyFrame}
	}
	return lvl
}

func hillHeight(col int) int {
	switch col % 8 {
	case 0, 7:
		return 3
	case 1, 6:
		return 2
	default:
		return 1
	}
}

func inSpan(col int, spans [][2]int) bool {
	for _, s := range spans {
		if col >= s[0] && col <= s[1] {
			return true
		}
	}
	return false
}
