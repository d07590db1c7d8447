//go:build gamedebug

package game

const debugInvariants = true
