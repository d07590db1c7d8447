package emu

import (
	"image/color"

	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
)

// The cartridge carries no pixel data. Tiles and sprite images are drawn
// procedurally from their index, one range per kind of graphic.

var (
	grassLight = color.RGBA{R: 96, G: 200, B: 72, A: 255}
	grassDark  = color.RGBA{R: 56, G: 152, B: 48, A: 255}
	soil       = color.RGBA{R: 136, G: 88, B: 48, A: 255}
	soilDark   = color.RGBA{R: 104, G: 64, B: 32, A: 255}
	petal      = color.RGBA{R: 240, G: 120, B: 176, A: 255}
	cloud      = color.RGBA{R: 248, G: 248, B: 248, A: 255}
	hill       = color.RGBA{R: 72, G: 136, B: 96, A: 255}
	hillTop    = color.RGBA{R: 96, G: 160, B: 112, A: 255}
	stone      = color.RGBA{R: 128, G: 128, B: 136, A: 255}
	stoneDark  = color.RGBA{R: 96, G: 96, B: 104, A: 255}

	skin      = color.RGBA{R: 248, G: 200, B: 152, A: 255}
	suit      = color.RGBA{R: 216, G: 64, B: 48, A: 255}
	trousers  = color.RGBA{R: 48, G: 72, B: 168, A: 255}
	boots     = color.RGBA{R: 80, G: 48, B: 24, A: 255}
	ink       = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	slime     = color.RGBA{R: 144, G: 72, B: 200, A: 255}
	slimeDark = color.RGBA{R: 96, G: 40, B: 144, A: 255}
	blood     = color.RGBA{R: 200, G: 32, B: 32, A: 255}
	spark     = color.RGBA{R: 255, G: 224, B: 64, A: 255}
)

// tileColor returns the colour of pixel (px, py) of an 8x8 background
// tile. The second result is false where the tile is transparent.
func tileColor(tile uint16, px, py int) (color.RGBA, bool) {
	switch {
	case tile == 0:
		return color.RGBA{}, false

	case tile >= 540 && tile <= 551:
		if py < 3 {
			if (px+int(tile))%3 == 0 {
				return grassDark, true
			}
			return grassLight, true
		}
		return soilPixel(tile, px, py), true

	case tile >= 552 && tile <= 555:
		// a single flower on a stem
		dx, dy := px-3, py-2
		if dx*dx+dy*dy <= 2 {
			if dx == 0 && dy == 0 {
				return spark, true
			}
			return petal, true
		}
		if px == 3 && py > 3 {
			return grassDark, true
		}
		return color.RGBA{}, false

	case tile >= 556 && tile <= 569:
		return soilPixel(tile, px, py), true

	case tile >= 600 && tile <= 609:
		dx, dy := px*2-7, py*2-8
		if dx*dx+dy*dy <= 52 {
			return cloud, true
		}
		return color.RGBA{}, false

	case tile >= 610 && tile <= 619:
		if tile == 610 && py < 2 {
			return hillTop, true
		}
		return hill, true
	}

	if (px/4+py/4)%2 == 0 {
		return stone, true
	}
	return stoneDark, true
}

func soilPixel(tile uint16, px, py int) color.RGBA {
	if (px*7+py*3+int(tile))%11 == 0 {
		return soilDark
	}
	return soil
}

// spriteColor returns the colour of pixel (px, py) of the sprite image
// starting at tile offset tile.
func spriteColor(tile, px, py int) (color.RGBA, bool) {
	switch {
	case tile < game.EnemyFrame:
		return playerPixel(tile/16, px, py)
	case tile < game.EnemyDeathFrame:
		return enemyPixel(tile >= game.EnemyFrame+8, px, py)
	case tile < game.ProjectileFrame:
		return deathPixel(px, py)
	default:
		return projectilePixel(px, py)
	}
}

// playerPixel draws the 16x32 character. pose is 0 standing, 1 and 2
// for the walk cycle and 3 airborne. The image faces right.
func playerPixel(pose, px, py int) (color.RGBA, bool) {
	switch {
	case py < 2:
		return color.RGBA{}, false

	case py < 10:
		dx, dy := px*2-15, py*2-11
		if dx*dx+dy*dy > 49 {
			return color.RGBA{}, false
		}
		if px == 10 && py == 5 {
			return ink, true
		}
		return skin, true

	case py < 22:
		if px >= 4 && px <= 11 {
			return suit, true
		}
		if (px == 3 || px == 12) && py >= 12 && py <= 19 {
			return skin, true
		}
		return color.RGBA{}, false
	}

	// legs
	if pose == 3 && py >= 28 {
		return color.RGBA{}, false
	}
	stride := 0
	switch pose {
	case 1:
		stride = 1
	case 2:
		stride = -1
	}
	left := 5 - stride
	right := 9 + stride
	if (px >= left && px <= left+1) || (px >= right && px <= right+1) {
		if py >= 29 || (pose == 3 && py >= 26) {
			return boots, true
		}
		return trousers, true
	}
	return color.RGBA{}, false
}

// enemyPixel draws the 16x16 walker. alt selects the second foot pose.
func enemyPixel(alt bool, px, py int) (color.RGBA, bool) {
	if py >= 14 {
		feet := px == 3 || px == 4 || px == 11 || px == 12
		if alt {
			feet = px == 2 || px == 3 || px == 12 || px == 13
		}
		if feet {
			return slimeDark, true
		}
		return color.RGBA{}, false
	}

	dx, dy := px*2-15, py*2-15
	if dy < 0 && dx*dx+dy*dy > 225 {
		return color.RGBA{}, false
	}
	if px == 0 || px == 15 {
		return color.RGBA{}, false
	}

	if py >= 5 && py <= 7 && (px == 5 || px == 10) {
		if py == 6 {
			return ink, true
		}
		return white, true
	}
	return slime, true
}

// deathPixel draws the splat shown while an enemy is dying.
func deathPixel(px, py int) (color.RGBA, bool) {
	d1 := px - py
	d2 := px + py - 15
	if (d1 >= -1 && d1 <= 1) || (d2 >= -1 && d2 <= 1) {
		return blood, true
	}
	return color.RGBA{}, false
}

// projectilePixel draws the 8x8 shot.
func projectilePixel(px, py int) (color.RGBA, bool) {
	dx, dy := px*2-7, py*2-7
	r := dx*dx + dy*dy
	switch {
	case r <= 8:
		return white, true
	case r <= 36:
		return spark, true
	}
	return color.RGBA{}, false
}
