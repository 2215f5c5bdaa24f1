// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/problems"
)

// Turn rotates the acting ship's heading to Direction.
type Turn struct {
	Direction direction.CubeDirection
}

// Apply implements the Action interface.
func (t Turn) Apply(ctx *Context) error {
	if isSandbank(ctx.Board, ctx.Self.Position) {
		return problems.RotationOnSandbankNotAllowed
	}
	if _, ok := ctx.Board.Get(ctx.Self.Position); !ok {
		return problems.RotationOnNonExistingField
	}

	turns := ctx.Self.Direction.TurnCountTo(t.Direction)
	cost := maxInt(0, absInt(turns)-ctx.Self.FreeTurns)
	if ctx.Self.Coal < cost {
		return problems.NotEnoughCoalForRotation
	}

	usedFree := minInt(ctx.Self.FreeTurns, absInt(turns))
	ctx.Self.FreeTurns -= usedFree
	ctx.Self.Coal -= absInt(turns) - usedFree
	ctx.Self.Direction = t.Direction

	return nil
}
