// Package dice provides the randomness abstraction used by the turn engine.
// A Roller produces independent uniform die values; the engine never touches a
// random source directly, so tests can substitute a scripted sequence.
package dice
