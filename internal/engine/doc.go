// Package engine implements the board simulation: the per-turn dice state
// machine and the game loop that accumulates tile visit counts.
//
// A Simulator is immutable once constructed and may be shared by any number
// of concurrently running games, as long as every game has its own
// dice.Roller.
package engine
