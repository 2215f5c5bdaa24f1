// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"testing"

	"github.com/mdhender/mississippiqueen/internal/actions"
	"github.com/mdhender/mississippiqueen/internal/direction"
)

func TestBuildActionAccelerate(t *testing.T) {
	argsApply.action = "accelerate"
	argsApply.acc = 2
	act, err := buildAction()
	if err != nil {
		t.Fatalf("buildAction: %v", err)
	}
	got, ok := act.(actions.Accelerate)
	if !ok {
		t.Fatalf("buildAction returned %T, want actions.Accelerate", act)
	}
	if got.Acc != 2 {
		t.Errorf("Acc = %d, want 2", got.Acc)
	}
}

func TestBuildActionTurn(t *testing.T) {
	argsApply.action = "turn"
	argsApply.direction = "DownRight"
	act, err := buildAction()
	if err != nil {
		t.Fatalf("buildAction: %v", err)
	}
	got, ok := act.(actions.Turn)
	if !ok {
		t.Fatalf("buildAction returned %T, want actions.Turn", act)
	}
	if got.Direction != direction.DownRight {
		t.Errorf("Direction = %v, want DownRight", got.Direction)
	}
}

func TestBuildActionRejectsUnknownDirection(t *testing.T) {
	argsApply.action = "push"
	argsApply.direction = "Sideways"
	if _, err := buildAction(); err == nil {
		t.Fatal("expected an error for an unknown direction")
	}
}

func TestBuildActionRejectsUnknownAction(t *testing.T) {
	argsApply.action = "teleport"
	if _, err := buildAction(); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}
