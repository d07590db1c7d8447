// Package game is the real-time core of a side-scrolling platformer for a
// 240x160 tile-and-sprite console: a vblank-locked frame loop, a tile
// collision probe over wrapping tilemaps, a mirror of the hardware sprite
// attribute table, and the rules that move the player, enemies and the
// projectile.
//
// The package never touches hardware directly. Everything it needs from
// the console is described by the Hardware interface, and all mutable
// state lives in a GameState owned by a Driver.
package game
