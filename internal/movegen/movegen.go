// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package movegen

import (
	"fmt"
	"strings"

	"github.com/mdhender/mississippiqueen/internal/actions"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/match"
)

// GetSimpleMoves is GetActions with rank fixed at 4 — at most four
// actions in all: an optional Accelerate, an optional Turn, and
// Advance/Push actions filling the remaining slots.
func GetSimpleMoves(gs *match.GameState, maxCoal int) []actions.Move {
	return GetActions(gs, 4, maxCoal)
}

// GetActions enumerates Moves of at most rank actions, consuming at
// most maxCoal coal beyond the ship's free budget, reachable from the
// current ship's turn. Every returned Move is confirmed to succeed
// when replayed via gs.PerformMove; the output contains no
// duplicates.
func GetActions(gs *match.GameState, rank int, maxCoal int) []actions.Move {
	self := gs.CurrentShip()
	var out []actions.Move
	seen := make(map[string]bool)

	maxAcc := self.MaxAcc()
	for acc := -maxAcc; acc <= maxAcc; acc++ {
		accCost := rotationCost(absInt(acc), self.FreeAcc)
		if acc == 0 {
			accCost = 0
		}
		if accCost > maxCoal {
			continue
		}

		for td := -3; td <= 3; td++ {
			turnCost := rotationCost(absInt(td), self.FreeTurns)
			if td == 0 {
				turnCost = 0
			}
			if accCost+turnCost > maxCoal {
				continue
			}

			var prefix []actions.Action
			if acc != 0 {
				prefix = append(prefix, actions.Accelerate{Acc: acc})
			}
			if td != 0 {
				prefix = append(prefix, actions.Turn{Direction: self.Direction.RotatedBy(td)})
			}
			if len(prefix) >= rank {
				continue
			}

			hypotheticalSpeed := self.Speed + acc
			for _, seq := range advanceSequences(prefix, rank-len(prefix), hypotheticalSpeed) {
				mv := actions.NewMove(seq...)
				key := signature(seq)
				if seen[key] {
					continue
				}
				if _, err := gs.PerformMove(mv); err != nil {
					continue
				}
				seen[key] = true
				out = append(out, mv)
			}
		}
	}

	return out
}

// rotationCost is the coal-cost model shared by Accelerate and Turn:
// the portion of magnitude beyond the free budget.
func rotationCost(magnitude, free int) int {
	if magnitude <= free {
		return 0
	}
	return magnitude - free
}

// advanceSequences extends prefix with every combination of
// Advance/Push actions up to budget additional actions, bounding
// Advance distances by the ship's hypothetical speed (the movement
// budget for the turn) since no legal Advance can exceed it.
func advanceSequences(prefix []actions.Action, budget int, speed int) [][]actions.Action {
	var out [][]actions.Action
	if budget <= 0 {
		return out
	}

	maxDistance := speed
	if maxDistance < 1 {
		maxDistance = 1
	}

	for d := -2; d <= maxDistance; d++ {
		if d == 0 {
			continue
		}
		withAdvance := appendAction(prefix, actions.Advance{Distance: d})
		out = append(out, withAdvance)

		if budget < 2 {
			continue
		}
		for _, dir := range direction.Directions {
			withPush := appendAction(withAdvance, actions.Push{Direction: dir})
			out = append(out, withPush)

			if budget < 3 {
				continue
			}
			for d2 := -2; d2 <= maxDistance; d2++ {
				if d2 == 0 {
					continue
				}
				withSecondAdvance := appendAction(withPush, actions.Advance{Distance: d2})
				out = append(out, withSecondAdvance)

				if budget < 4 {
					continue
				}
				for _, dir2 := range direction.Directions {
					out = append(out, appendAction(withSecondAdvance, actions.Push{Direction: dir2}))
				}
			}
		}
	}

	return out
}

func appendAction(prefix []actions.Action, act actions.Action) []actions.Action {
	seq := make([]actions.Action, len(prefix), len(prefix)+1)
	copy(seq, prefix)
	return append(seq, act)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// signature is a deduplication key: the ordered, textual description
// of an action sequence, independent of the Move's stamped ID.
func signature(seq []actions.Action) string {
	var parts []string
	for _, act := range seq {
		parts = append(parts, fmt.Sprintf("%T:%+v", act, act))
	}
	return strings.Join(parts, "|")
}
