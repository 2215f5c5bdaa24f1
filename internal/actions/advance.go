// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/field"
	"github.com/mdhender/mississippiqueen/internal/problems"
)

// Advance moves the acting ship Distance fields along its current
// heading. A negative Distance reverses off a Sandbank; it is the only
// context in which backing up is legal.
type Advance struct {
	Distance int
}

// Apply implements the Action interface.
func (a Advance) Apply(ctx *Context) error {
	if ctx.AdvanceEndedOnSandbank {
		return problems.MoveEndOnSandbank
	}
	if a.Distance == 0 {
		return problems.InvalidDistance
	}

	onSandbank := isSandbank(ctx.Board, ctx.Self.Position)
	if onSandbank {
		if a.Distance != -1 && a.Distance != 1 && a.Distance != 2 {
			return problems.InvalidDistance
		}
	} else if a.Distance < 0 {
		return problems.InvalidDistance
	}

	dir := ctx.Self.Direction
	if a.Distance < 0 {
		dir = dir.RotatedBy(3)
	}
	opposite := dir.RotatedBy(3)
	steps := absInt(a.Distance)

	cur := ctx.Self.Position
	totalCost := 0
	pushPending := false
	pushPendingOnTarget := false
	endedOnSandbank := false

	for i := 0; i < steps; i++ {
		isLast := i == steps-1
		next := cur.Neighbor(dir)

		f, ok := ctx.Board.Get(next)
		if !ok || f.Variant == field.Island {
			return problems.FieldIsBlocked
		}

		if next == ctx.Other.Position {
			cost := stepCost(ctx, next, opposite)
			if ctx.Self.Movement < totalCost+cost {
				return problems.MovementPointsMissing
			}
			totalCost += cost
			cur = next
			pushPending = true
			pushPendingOnTarget = isLast
			break
		}

		cost := stepCost(ctx, next, opposite)
		if ctx.Self.Movement < totalCost+cost {
			return problems.MovementPointsMissing
		}
		totalCost += cost
		cur = next

		if f.Variant == field.Sandbank {
			endedOnSandbank = true
			break
		}
	}

	ctx.Self.Position = cur
	ctx.Self.Movement -= totalCost

	if pushPending {
		ctx.PushPending = true
		ctx.PushPendingOnTarget = pushPendingOnTarget
	}
	if endedOnSandbank {
		ctx.Self.Movement = 0
		ctx.Self.Speed = 1
		ctx.AdvanceEndedOnSandbank = true
	}

	return nil
}

// stepCost is the movement point cost of entering next while travelling
// in the direction whose reverse is opposite: 1 normally, 2 when the
// field's current runs opposite to motion, 1 (no discount) when the
// current aids motion.
func stepCost(ctx *Context, next coords.CubeCoord, opposite direction.CubeDirection) int {
	cost := 1
	if currentDir, isCurrent := ctx.Board.FieldCurrentDirection(next); isCurrent && currentDir == opposite {
		cost++
	}
	return cost
}
