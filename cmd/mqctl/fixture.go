// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/mdhender/mississippiqueen/internal/board"
	"github.com/mdhender/mississippiqueen/internal/config"
	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/field"
	"github.com/mdhender/mississippiqueen/internal/match"
	"github.com/mdhender/mississippiqueen/internal/ship"
)

// fixture is the on-disk JSON shape mqctl reads and writes: a board
// and the two ships, everything match.NewGameState needs beyond the
// match configuration itself.
type fixture struct {
	Board   *board.Board
	TeamOne ship.Ship
	TeamTwo ship.Ship
}

// loadFixture reads and decodes a fixture file.
func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, err
	}
	return &fx, nil
}

// writeFixture encodes a fixture as indented JSON to path.
func writeFixture(path string, fx *fixture) error {
	data, err := json.MarshalIndent(fx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// gameState builds the GameState the fixture describes, under the
// given match configuration.
func (fx *fixture) gameState(cfg *config.MatchConfig) *match.GameState {
	return match.NewGameState(fx.Board, fx.TeamOne, fx.TeamTwo, cfg)
}

// newFixture builds the minimal valid fixture: a single all-water
// segment with a Goal field at its far end, heading Right, and the
// two ships placed a field apart so neither starts atop the other.
func newFixture() *fixture {
	var fields [coords.SegmentHeight][coords.SegmentWidth]field.Field
	for y := range fields {
		for x := range fields[y] {
			fields[y][x] = field.NewField(field.Water)
		}
	}
	fields[coords.SegmentHeight/2][coords.SegmentWidth-1] = field.NewField(field.Goal)

	seg := board.NewSegment(direction.Right, coords.NewCubeCoord(0, 0), fields)
	b, err := board.NewBoard(direction.Right, seg)
	if err != nil {
		// NewBoard only fails with zero segments, which this call never passes.
		panic(err)
	}

	one := ship.Ship{
		Team:      ship.One,
		Position:  coords.CartesianCoord{X: 0, Y: 2}.ToCube(),
		Direction: direction.Right,
		Speed:     1,
		Coal:      6,
	}.Normalize()
	two := ship.Ship{
		Team:      ship.Two,
		Position:  coords.CartesianCoord{X: 0, Y: 1}.ToCube(),
		Direction: direction.Right,
		Speed:     1,
		Coal:      6,
	}.Normalize()

	return &fixture{Board: b, TeamOne: one, TeamTwo: two}
}
