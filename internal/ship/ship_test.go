// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ship_test

import (
	"testing"

	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/ship"
)

func TestMaxAcc(t *testing.T) {
	// Concrete scenario: speed 1, coal 6, free_acc 1 -> min(5, 7) = 5.
	s := ship.Ship{Speed: 1, Coal: 6, FreeAcc: 1}
	if got := s.MaxAcc(); got != 5 {
		t.Errorf("MaxAcc() = %d, want 5", got)
	}
}

func TestCanTurn(t *testing.T) {
	s := ship.Ship{}
	if !s.CanTurn(false) {
		t.Errorf("expected CanTurn(false) = true")
	}
	if s.CanTurn(true) {
		t.Errorf("expected CanTurn(true) = false (standing on a Sandbank)")
	}
}

func TestNormalize(t *testing.T) {
	s := ship.Ship{
		Team:      ship.One,
		Position:  coords.NewCubeCoord(0, 0),
		Direction: direction.Right,
		Speed:     4,
		Movement:  1,
		FreeAcc:   7,
		FreeTurns: -3,
	}
	got := s.Normalize()
	if got.Movement != 4 {
		t.Errorf("Normalize(): Movement = %d, want 4", got.Movement)
	}
	if got.FreeAcc != 1 {
		t.Errorf("Normalize(): FreeAcc = %d, want clamped to 1", got.FreeAcc)
	}
	if got.FreeTurns != 0 {
		t.Errorf("Normalize(): FreeTurns = %d, want clamped to 0", got.FreeTurns)
	}
}

func TestOtherTeam(t *testing.T) {
	if ship.One.Other() != ship.Two {
		t.Errorf("One.Other() should be Two")
	}
	if ship.Two.Other() != ship.One {
		t.Errorf("Two.Other() should be One")
	}
}
