// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/mdhender/mississippiqueen/internal/board"
	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/field"
	"github.com/mdhender/mississippiqueen/internal/ship"
)

// Context is the working copy an in-flight Move applies its actions
// against: the board and the acting ship and its opponent, plus the
// bookkeeping that threads state between one action and the next
// within the same Move.
type Context struct {
	Board *board.Board
	Self  *ship.Ship
	Other *ship.Ship

	// PushPending is set by Advance when it halts on a field shared
	// with the opponent; the next action in the Move must be Push, or
	// the Move is rejected with problems.InsufficientPush.
	PushPending bool

	// PushPendingOnTarget distinguishes why PushPending is set: true
	// when Advance halted there because its final requested step
	// landed exactly on the opponent, false when an earlier,
	// non-final step did. A Push that follows rescues either case; an
	// unfulfilled obligation is reported as problems.ShipAlreadyInTarget
	// in the former case and problems.InsufficientPush in the latter.
	PushPendingOnTarget bool

	// AdvanceEndedOnSandbank is set once an Advance forfeits its
	// remaining movement on a Sandbank; any further Advance in the same
	// Move is rejected with problems.MoveEndOnSandbank.
	AdvanceEndedOnSandbank bool
}

// Action is implemented by each of Accelerate, Turn, Advance and Push.
type Action interface {
	Apply(ctx *Context) error
}

func isSandbank(b *board.Board, c coords.CubeCoord) bool {
	f, ok := b.Get(c)
	return ok && f.Variant == field.Sandbank
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
