package dice

import (
	"fmt"
	"math/rand/v2"
)

// Roller rolls count dice with the given number of faces.
//
// Precondition: count >= 1, faces >= 1.
type Roller interface {
	Roll(count, faces int) []int
}

// Random is a Roller backed by its own PCG stream. It is not safe for
// concurrent use; give each game its own instance.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random roller seeded with the two PCG seed words.
func NewRandom(seed1, seed2 uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Roll implements Roller.
func (r *Random) Roll(count, faces int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = r.rng.IntN(faces) + 1
	}
	return out
}

// Scripted replays a fixed list of rolls, in order.
type Scripted struct {
	rolls [][]int
	next  int
}

// NewScripted returns a Roller that yields the given rolls one per call.
func NewScripted(rolls ...[]int) *Scripted {
	return &Scripted{rolls: rolls}
}

// Roll returns the next scripted roll. It panics if the script is exhausted
// or the scripted roll does not have count dice.
func (s *Scripted) Roll(count, faces int) []int {
	if s.next >= len(s.rolls) {
		panic(fmt.Sprintf("dice: scripted roller exhausted after %d rolls", len(s.rolls)))
	}
	roll := s.rolls[s.next]
	if len(roll) != count {
		panic(fmt.Sprintf("dice: scripted roll %d has %d dice, want %d", s.next, len(roll), count))
	}
	s.next++
	out := make([]int, len(roll))
	copy(out, roll)
	return out
}

// Remaining reports how many scripted rolls have not been consumed.
func (s *Scripted) Remaining() int {
	return len(s.rolls) - s.next
}

// Sum returns the total of all die values.
func Sum(rolls []int) int {
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total
}

// IsDoubles reports whether at least two dice were rolled and all show the
// same face.
func IsDoubles(rolls []int) bool {
	if len(rolls) < 2 {
		return false
	}
	for _, v := range rolls[1:] {
		if v != rolls[0] {
			return false
		}
	}
	return true
}
