package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig holds the shape of a simulation run. It is read-only once a
// Simulator has been built from it.
type GameConfig struct {
	Games          int `json:"games" cty:"games"`                       // games per batch
	Players        int `json:"players" cty:"players"`                   // players per game
	Tiles          int `json:"tiles" cty:"tiles"`                       // tiles on the board
	Rounds         int `json:"rounds" cty:"rounds"`                     // rounds per game
	Dice           int `json:"dice" cty:"dice"`                         // dice per roll
	DiceSides      int `json:"dice_sides" cty:"dice_sides"`             // faces per die
	DoublesForJail int `json:"doubles_for_jail" cty:"doubles_for_jail"` // consecutive doubles that send a player to jail
	JailTile       int `json:"jail_tile" cty:"jail_tile"`               // zero-based index of the jail tile
}

func DefaultConfig() GameConfig {
	return GameConfig{
		Games:          1,
		Players:        4,
		Tiles:          40,
		Rounds:         45,
		Dice:           2,
		DiceSides:      6,
		DoublesForJail: 3,
		JailTile:       10,
	}
}

// Validate reports every rule the config breaks. The returned error wraps
// ErrInvalidConfig.
func (c GameConfig) Validate() error {
	var errs []error
	positive := []struct {
		name  string
		value int
	}{
		{"games", c.Games},
		{"players", c.Players},
		{"tiles", c.Tiles},
		{"rounds", c.Rounds},
		{"dice", c.Dice},
		{"dice_sides", c.DiceSides},
		{"doubles_for_jail", c.DoublesForJail},
	}
	for _, f := range positive {
		if f.value < 1 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", f.name, f.value))
		}
	}
	if c.JailTile < 0 || (c.Tiles > 0 && c.JailTile >= c.Tiles) {
		errs = append(errs, fmt.Errorf("jail_tile must be in [0, %d), got %d", c.Tiles, c.JailTile))
	}
	// One-sided dice make every roll doubles; a player who escapes jail on
	// streak 1 could then never reach a threshold of 1 again.
	if c.Dice > 1 && c.DiceSides == 1 && c.DoublesForJail == 1 {
		errs = append(errs, errors.New("doubles_for_jail must be at least 2 when every roll is doubles (dice > 1, dice_sides = 1)"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
