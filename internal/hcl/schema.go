package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/boardsim/internal/engine"
)

// fileRoot is the top-level structure of a simulation file.
type fileRoot struct {
	Simulation *simulationBlock `hcl:"simulation,block"`
}

// simulationBlock keeps the raw body so attributes can be evaluated against
// the defaults.
type simulationBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// attributes maps each supported attribute to the GameConfig field it sets.
var attributes = map[string]func(*engine.GameConfig) *int{
	"games":            func(c *engine.GameConfig) *int { return &c.Games },
	"players":          func(c *engine.GameConfig) *int { return &c.Players },
	"tiles":            func(c *engine.GameConfig) *int { return &c.Tiles },
	"rounds":           func(c *engine.GameConfig) *int { return &c.Rounds },
	"dice":             func(c *engine.GameConfig) *int { return &c.Dice },
	"dice_sides":       func(c *engine.GameConfig) *int { return &c.DiceSides },
	"doubles_for_jail": func(c *engine.GameConfig) *int { return &c.DoublesForJail },
	"jail_tile":        func(c *engine.GameConfig) *int { return &c.JailTile },
}
