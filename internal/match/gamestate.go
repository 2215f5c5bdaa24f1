// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package match

import (
	"github.com/mdhender/mississippiqueen/internal/actions"
	"github.com/mdhender/mississippiqueen/internal/board"
	"github.com/mdhender/mississippiqueen/internal/config"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/field"
	"github.com/mdhender/mississippiqueen/internal/problems"
	"github.com/mdhender/mississippiqueen/internal/ship"
)

// GameState is the board, the two ships, the turn counter, and the
// move history. Turn is 0-based; an even turn belongs to team One.
type GameState struct {
	Board    *board.Board
	Turn     int
	TeamOne  ship.Ship
	TeamTwo  ship.Ship
	LastMove *actions.Move
	History  []actions.Move

	TurnCap             int
	PassengerCapacity   int
	CoalPointValue      int
	PassengerPointValue int
	FinishBonus         int
}

// NewGameState builds a GameState from a board and two ships, applying
// cfg's tunables or DefaultMatchConfig's when cfg is nil.
func NewGameState(b *board.Board, teamOne, teamTwo ship.Ship, cfg *config.MatchConfig) *GameState {
	if cfg == nil {
		cfg = config.DefaultMatchConfig()
	}
	return &GameState{
		Board:               b,
		Turn:                0,
		TeamOne:             teamOne.Normalize(),
		TeamTwo:             teamTwo.Normalize(),
		TurnCap:             cfg.TurnCap,
		PassengerCapacity:   cfg.PassengerCapacity,
		CoalPointValue:      cfg.CoalPointValue,
		PassengerPointValue: cfg.PassengerPointValue,
		FinishBonus:         cfg.FinishBonus,
	}
}

// Clone deep-copies the board and move history so that mutation of
// the result never reaches back into the receiver.
func (gs *GameState) Clone() *GameState {
	clone := *gs
	clone.Board = gs.Board.Clone()
	clone.History = append([]actions.Move(nil), gs.History...)
	return &clone
}

// CurrentShip and OtherShip select by turn parity: even turns belong
// to team One.
func (gs *GameState) CurrentShip() *ship.Ship {
	if gs.Turn%2 == 0 {
		return &gs.TeamOne
	}
	return &gs.TeamTwo
}

func (gs *GameState) OtherShip() *ship.Ship {
	if gs.Turn%2 == 0 {
		return &gs.TeamTwo
	}
	return &gs.TeamOne
}

// CurrentTeam reports which team owns the current turn.
func (gs *GameState) CurrentTeam() ship.Team {
	if gs.Turn%2 == 0 {
		return ship.One
	}
	return ship.Two
}

// PerformMove clones the state, applies move's actions in order, and
// either returns the resulting state or the first Problem
// encountered. No partial state is observable on rejection.
func (gs *GameState) PerformMove(move actions.Move) (*GameState, error) {
	next := gs.Clone()
	self, other := next.CurrentShip(), next.OtherShip()
	ctx := &actions.Context{Board: next.Board, Self: self, Other: other}

	for i, act := range move.Actions {
		if ctx.PushPending {
			if _, isPush := act.(actions.Push); !isPush {
				if ctx.PushPendingOnTarget {
					return nil, problems.ShipAlreadyInTarget
				}
				return nil, problems.InsufficientPush
			}
		}
		if err := act.Apply(ctx); err != nil {
			return nil, err
		}
		// The first action, if it is an Accelerate, sets the movement
		// budget for the rest of the Move; a later Accelerate (an
		// irregular Move the generator never produces) just mutates
		// speed without resetting the budget.
		if i == 0 {
			if _, isAccel := act.(actions.Accelerate); isAccel {
				self.Movement = self.Speed
			}
		}
	}

	if ctx.PushPending {
		if ctx.PushPendingOnTarget {
			return nil, problems.ShipAlreadyInTarget
		}
		return nil, problems.InsufficientPush
	}
	if self.Movement != 0 {
		return nil, problems.MovementPointsMissing
	}

	next.pickUpPassenger(self)

	next.LastMove = &move
	next.History = append(next.History, move)
	next.advanceTurn()

	return next, nil
}

// pickUpPassenger grants self a passenger token when a neighboring
// field carries one facing back toward self and self is below
// capacity.
func (gs *GameState) pickUpPassenger(self *ship.Ship) {
	if self.Passengers >= gs.PassengerCapacity {
		return
	}
	for _, d := range direction.Directions {
		n := self.Position.Neighbor(d)
		f, ok := gs.Board.Get(n)
		if !ok || f.Variant != field.Passenger || f.Passenger == nil || f.Passenger.Count <= 0 {
			continue
		}
		if f.Passenger.Direction != d.RotatedBy(3) {
			continue
		}
		updated := f
		remaining := *f.Passenger
		remaining.Count--
		updated.Passenger = &remaining
		gs.Board.Set(n, updated)
		self.Passengers++
		return
	}
}

// advanceTurn increments Turn, resets the now-current ship's per-turn
// bookkeeping, and applies board current displacement.
func (gs *GameState) advanceTurn() {
	gs.Turn++
	self := gs.CurrentShip()
	self.FreeAcc = 1
	self.FreeTurns = 1
	self.Movement = self.Speed

	if dir, isCurrent := gs.Board.FieldCurrentDirection(self.Position); isCurrent {
		displaced := self.Position.Neighbor(dir)
		if f, ok := gs.Board.Get(displaced); ok && f.Variant != field.Island {
			self.Position = displaced
		}
	}
}

// DetermineAheadTeam reports the team further along the river: greater
// segment index wins; ties break on greater projection along the
// segment's local axis.
func (gs *GameState) DetermineAheadTeam() ship.Team {
	oneIdx, oneOK := gs.Board.SegmentIndex(gs.TeamOne.Position)
	twoIdx, twoOK := gs.Board.SegmentIndex(gs.TeamTwo.Position)
	if !oneOK {
		return ship.Two
	}
	if !twoOK {
		return ship.One
	}
	if oneIdx != twoIdx {
		if oneIdx > twoIdx {
			return ship.One
		}
		return ship.Two
	}

	oneProjection := segmentProjection(gs.Board, gs.TeamOne.Position)
	twoProjection := segmentProjection(gs.Board, gs.TeamTwo.Position)
	if oneProjection >= twoProjection {
		return ship.One
	}
	return ship.Two
}

// IsOver reports whether the match has ended: a ship reached Goal at
// speed 1 with at least two passengers; the turn cap was reached; or
// the current ship has no legal action available.
func (gs *GameState) IsOver() bool {
	if gs.Turn >= gs.TurnCap {
		return true
	}
	for _, s := range []*ship.Ship{&gs.TeamOne, &gs.TeamTwo} {
		if gs.hasFinished(s) {
			return true
		}
	}
	return !gs.hasAnyLegalAction()
}

func (gs *GameState) hasFinished(s *ship.Ship) bool {
	f, ok := gs.Board.Get(s.Position)
	return ok && f.Variant == field.Goal && s.Speed == 1 && s.Passengers >= 2
}

// IsWinner compares calculated points for self against other, with
// tie-breaks on passengers then coal.
func (gs *GameState) IsWinner(self, other *ship.Ship) bool {
	selfPoints := gs.CalculatePoints(self).Total()
	otherPoints := gs.CalculatePoints(other).Total()
	if selfPoints != otherPoints {
		return selfPoints > otherPoints
	}
	if self.Passengers != other.Passengers {
		return self.Passengers > other.Passengers
	}
	return self.Coal > other.Coal
}

// hasAnyLegalAction reports whether the current ship can legally take
// at least one action from the current state, trying each action kind
// against a scratch copy of the state.
func (gs *GameState) hasAnyLegalAction() bool {
	self, other := gs.CurrentShip(), gs.OtherShip()

	try := func(act actions.Action) bool {
		selfCopy, otherCopy := *self, *other
		ctx := &actions.Context{Board: gs.Board, Self: &selfCopy, Other: &otherCopy}
		return act.Apply(ctx) == nil
	}

	maxAcc := self.MaxAcc()
	for acc := -maxAcc; acc <= maxAcc; acc++ {
		if acc != 0 && try(actions.Accelerate{Acc: acc}) {
			return true
		}
	}
	for _, d := range direction.Directions {
		// A Turn to the ship's own heading is a zero-cost no-op; it
		// does not count as an escape from being stranded.
		if d != self.Direction && try(actions.Turn{Direction: d}) {
			return true
		}
	}
	for dist := -2; dist <= 6; dist++ {
		if dist != 0 && try(actions.Advance{Distance: dist}) {
			return true
		}
	}
	for _, d := range direction.Directions {
		if try(actions.Push{Direction: d}) {
			return true
		}
	}
	return false
}
