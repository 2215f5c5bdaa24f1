// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/field"
	"github.com/mdhender/mississippiqueen/internal/problems"
)

// Push displaces the opponent's ship one field in Direction. It is
// legal only while the acting ship shares a field with the opponent,
// typically because a preceding Advance halted there.
type Push struct {
	Direction direction.CubeDirection
}

// Apply implements the Action interface.
func (p Push) Apply(ctx *Context) error {
	if ctx.Self.Position != ctx.Other.Position {
		return problems.SameFieldPush
	}
	if ctx.Self.Movement < 1 {
		return problems.PushMovementPointsMissing
	}
	if p.Direction == ctx.Self.Direction.RotatedBy(3) {
		return problems.BackwardPushingRestricted
	}
	if isSandbank(ctx.Board, ctx.Self.Position) {
		return problems.SandbankPush
	}

	target := ctx.Other.Position.Neighbor(p.Direction)
	f, ok := ctx.Board.Get(target)
	if !ok {
		return problems.InvalidFieldPush
	}
	if f.Variant == field.Island {
		return problems.BlockedFieldPush
	}

	ctx.Other.Position = target
	ctx.Self.Movement -= 1
	if f.Variant == field.Sandbank {
		ctx.Other.Speed = 1
		ctx.Other.FreeTurns = 1
	}
	ctx.PushPending = false
	ctx.PushPendingOnTarget = false

	return nil
}
