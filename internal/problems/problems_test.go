// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package problems_test

import (
	"testing"

	"github.com/mdhender/mississippiqueen/internal/problems"
)

func TestAccelerationProblemIsError(t *testing.T) {
	var err error = problems.ZeroAcc
	if err.Error() == "" {
		t.Errorf("expected a non-empty message for ZeroAcc")
	}
}

func TestEveryProblemHasAMessageAndName(t *testing.T) {
	accel := []problems.AccelerationProblem{
		problems.ZeroAcc, problems.AboveMaxSpeed, problems.BelowMinSpeed,
		problems.InsufficientAccelerationCoal, problems.AccelerateOnSandbank,
	}
	for _, p := range accel {
		if p.Error() == "" {
			t.Errorf("%s: empty Error() message", p)
		}
		if p.String() == "" {
			t.Errorf("%s: empty String()", p)
		}
	}

	advance := []problems.AdvanceProblem{
		problems.MovementPointsMissing, problems.InsufficientPush, problems.InvalidDistance,
		problems.ShipAlreadyInTarget, problems.FieldIsBlocked, problems.MoveEndOnSandbank,
	}
	for _, p := range advance {
		if p.Error() == "" {
			t.Errorf("%s: empty Error() message", p)
		}
	}

	push := []problems.PushProblem{
		problems.PushMovementPointsMissing, problems.SameFieldPush, problems.InvalidFieldPush,
		problems.BlockedFieldPush, problems.SandbankPush, problems.BackwardPushingRestricted,
	}
	for _, p := range push {
		if p.Error() == "" {
			t.Errorf("%s: empty Error() message", p)
		}
	}

	turn := []problems.TurnProblem{
		problems.RotationOnSandbankNotAllowed, problems.NotEnoughCoalForRotation, problems.RotationOnNonExistingField,
	}
	for _, p := range turn {
		if p.Error() == "" {
			t.Errorf("%s: empty Error() message", p)
		}
	}
}
