package engine

import (
	"context"

	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/dice"
)

// TurnOutcome is the terminal state a turn finished in.
type TurnOutcome int

const (
	// TurnResolved means the last roll was not doubles and movement applied.
	TurnResolved TurnOutcome = iota
	// TurnJailed means the doubles streak reached the jail threshold.
	TurnJailed
)

func (o TurnOutcome) String() string {
	switch o {
	case TurnResolved:
		return "resolved"
	case TurnJailed:
		return "jailed"
	default:
		return "unknown"
	}
}

type turnState int

const (
	stateRolling turnState = iota
	stateJailed
	stateResolved
)

// Turn records what happened during one player's turn.
type Turn struct {
	Rolls   [][]int
	Outcome TurnOutcome
	Escaped bool // left jail by rolling doubles during this turn
}

// TakeTurn resolves one full turn for p, mutating its position and jail
// status. Doubles grant another roll; the streak counter is local to the
// turn and is not reset when the player escapes jail.
func (s *Simulator) TakeTurn(ctx context.Context, p *Player, roller dice.Roller) Turn {
	logger := ctxlog.FromContext(ctx).With("player", p.Number)
	logger.Debug("Starting turn.", "position", p.Position, "in_jail", p.InJail)

	var turn Turn
	streak := 0
	state := stateRolling
	for state == stateRolling {
		rolls := roller.Roll(s.cfg.Dice, s.cfg.DiceSides)
		turn.Rolls = append(turn.Rolls, rolls)
		logger.Debug("Rolled dice.", "rolls", rolls)

		state = stateResolved
		if s.cfg.Dice > 1 && dice.IsDoubles(rolls) {
			streak++
			state = stateRolling
			logger.Debug("Rolled doubles.", "streak", streak)

			switch {
			case p.InJail:
				p.InJail = false
				turn.Escaped = true
				logger.Debug("Escaped jail.")
			case streak == s.cfg.DoublesForJail:
				p.Position = s.cfg.JailTile
				p.InJail = true
				state = stateJailed
				logger.Debug("Sent to jail.", "tile", p.Position)
				continue
			}
		}

		if p.InJail {
			continue
		}
		p.Position = s.advance(p.Position, dice.Sum(rolls))
		logger.Debug("Landed on tile.", "tile", p.Position)
	}

	turn.Outcome = TurnResolved
	if state == stateJailed {
		turn.Outcome = TurnJailed
	}
	return turn
}

// advance moves from pos by steps, wrapping around the board as many times
// as needed.
func (s *Simulator) advance(pos, steps int) int {
	return (pos + steps) % s.cfg.Tiles
}
