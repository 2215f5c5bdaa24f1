// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package actions

import "github.com/mdhender/mississippiqueen/internal/problems"

// Accelerate changes the acting ship's speed by Acc, positive to speed
// up, negative to slow down.
type Accelerate struct {
	Acc int
}

// Apply implements the Action interface.
func (a Accelerate) Apply(ctx *Context) error {
	if a.Acc == 0 {
		return problems.ZeroAcc
	}
	newSpeed := ctx.Self.Speed + a.Acc
	if newSpeed > 6 {
		return problems.AboveMaxSpeed
	}
	if newSpeed < 1 {
		return problems.BelowMinSpeed
	}
	if isSandbank(ctx.Board, ctx.Self.Position) {
		return problems.AccelerateOnSandbank
	}
	cost := maxInt(0, absInt(a.Acc)-ctx.Self.FreeAcc)
	if ctx.Self.Coal < cost {
		return problems.InsufficientAccelerationCoal
	}

	usedFree := minInt(ctx.Self.FreeAcc, absInt(a.Acc))
	ctx.Self.FreeAcc -= usedFree
	ctx.Self.Coal -= absInt(a.Acc) - usedFree
	ctx.Self.Speed = newSpeed

	return nil
}
