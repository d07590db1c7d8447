// Package term runs the game in a terminal. Each character cell shows
// two framebuffer pixels with an upper half block, and key presses are
// held for a few frames because terminals report no key releases.
package term
