// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package movegen_test

import (
	"fmt"
	"testing"

	"github.com/mdhender/mississippiqueen/internal/actions"
	"github.com/mdhender/mississippiqueen/internal/board"
	"github.com/mdhender/mississippiqueen/internal/config"
	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/field"
	"github.com/mdhender/mississippiqueen/internal/match"
	"github.com/mdhender/mississippiqueen/internal/movegen"
	"github.com/mdhender/mississippiqueen/internal/ship"
)

func canonicalStart(t *testing.T) *match.GameState {
	t.Helper()
	var variants [coords.SegmentHeight][coords.SegmentWidth]field.Variant
	var fields [coords.SegmentHeight][coords.SegmentWidth]field.Field
	for y := range variants {
		for x := range variants[y] {
			fields[y][x] = field.NewField(field.Water)
		}
	}
	seg := board.NewSegment(direction.Right, coords.NewCubeCoord(0, 0), fields)
	b, err := board.NewBoard(direction.Right, seg)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	one := ship.Ship{
		Team:      ship.One,
		Position:  coords.CartesianCoord{X: 0, Y: 2}.ToCube(),
		Direction: direction.Right,
		Speed:     2,
		Coal:      6,
	}
	two := ship.Ship{
		Team:      ship.Two,
		Position:  coords.CartesianCoord{X: 3, Y: 4}.ToCube(),
		Direction: direction.Right,
		Speed:     1,
		Coal:      6,
	}
	return match.NewGameState(b, one, two, config.DefaultMatchConfig())
}

func TestGetSimpleMovesNonEmpty(t *testing.T) {
	gs := canonicalStart(t)
	moves := movegen.GetSimpleMoves(gs, 1)
	if len(moves) == 0 {
		t.Fatal("GetSimpleMoves returned no moves")
	}
}

func TestGetSimpleMovesAreReplayable(t *testing.T) {
	gs := canonicalStart(t)
	moves := movegen.GetSimpleMoves(gs, 1)
	for _, mv := range moves {
		if _, err := gs.PerformMove(mv); err != nil {
			t.Errorf("move %v failed to replay: %v", mv.Actions, err)
		}
	}
}

func TestGetSimpleMovesNoDuplicates(t *testing.T) {
	gs := canonicalStart(t)
	moves := movegen.GetSimpleMoves(gs, 1)

	seen := make(map[string]bool)
	for _, mv := range moves {
		key := fmt.Sprintf("%+v", mv.Actions)
		if seen[key] {
			t.Errorf("duplicate move generated: %s", key)
		}
		seen[key] = true
	}
}

// TestGetActionsIncludesAdvanceAndPushAtMaxReachableDistance places the
// opponent at distance speed-1: the farthest contact distance at which
// the mandatory following Push is still affordable (Advance consumes
// speed-1 movement, leaving exactly the 1 point Push requires). At that
// exact distance the Advance halts on its terminating step, which used
// to make Apply reject the whole sequence outright; the generator must
// not silently drop the Advance{Distance: speed-1}+Push encoding.
func TestGetActionsIncludesAdvanceAndPushAtMaxReachableDistance(t *testing.T) {
	var variants [coords.SegmentHeight][coords.SegmentWidth]field.Variant
	var fields [coords.SegmentHeight][coords.SegmentWidth]field.Field
	for y := range variants {
		for x := range variants[y] {
			fields[y][x] = field.NewField(field.Water)
		}
	}
	seg := board.NewSegment(direction.Right, coords.NewCubeCoord(0, 0), fields)
	b, err := board.NewBoard(direction.Right, seg)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	one := ship.Ship{
		Team:      ship.One,
		Position:  coords.CartesianCoord{X: 0, Y: 2}.ToCube(),
		Direction: direction.Right,
		Speed:     3,
		Coal:      6,
	}
	two := ship.Ship{
		Team:      ship.Two,
		Position:  coords.CartesianCoord{X: 2, Y: 2}.ToCube(),
		Direction: direction.Right,
		Speed:     1,
		Coal:      6,
	}
	maxPushableDistance := one.Speed - 1
	if dist := one.Position.Distance(two.Position); dist != maxPushableDistance {
		t.Fatalf("fixture error: opponent is %d fields away, want %d (speed-1)", dist, maxPushableDistance)
	}

	gs := match.NewGameState(b, one, two, config.DefaultMatchConfig())
	moves := movegen.GetActions(gs, 4, 2)

	found := false
	for _, mv := range moves {
		if len(mv.Actions) != 2 {
			continue
		}
		adv, isAdvance := mv.Actions[0].(actions.Advance)
		_, isPush := mv.Actions[1].(actions.Push)
		if isAdvance && isPush && adv.Distance == maxPushableDistance {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("GetActions did not include an Advance{Distance: %d} followed by a Push; got %v", maxPushableDistance, moves)
	}
}

func TestGetActionsRespectsCoalBudget(t *testing.T) {
	gs := canonicalStart(t)
	// With zero coal and no free turns/acceleration remaining, only
	// no-cost actions (a bare Advance at the ship's existing speed)
	// are reachable.
	gs.TeamOne.Coal = 0
	gs.TeamOne.FreeAcc = 0
	gs.TeamOne.FreeTurns = 0

	moves := movegen.GetActions(gs, 4, 0)
	if len(moves) == 0 {
		t.Fatal("GetActions returned no moves at zero coal budget")
	}
	// Every returned move must still be replayable at zero coal.
	for _, mv := range moves {
		if _, err := gs.PerformMove(mv); err != nil {
			t.Errorf("move %v failed to replay under zero coal budget: %v", mv.Actions, err)
		}
	}
}
