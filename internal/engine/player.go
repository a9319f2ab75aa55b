package engine

// Player is one token on the board. It lives for a single game.
type Player struct {
	Number   int  `json:"number"`
	Position int  `json:"position"`
	InJail   bool `json:"in_jail"`
}

func NewPlayer(number int) *Player {
	return &Player{Number: number}
}

// TileCounts holds, per tile index, how many turns ended on that tile.
type TileCounts []int

// Sum returns the total number of recorded visits.
func (t TileCounts) Sum() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}
