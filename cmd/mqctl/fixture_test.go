// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhender/mississippiqueen/internal/config"
)

func TestNewFixtureBuildsAValidGameState(t *testing.T) {
	fx := newFixture()
	gs := fx.gameState(config.DefaultMatchConfig())
	if gs == nil {
		t.Fatal("gameState returned nil")
	}
	if gs.TeamOne.Position == gs.TeamTwo.Position {
		t.Fatal("new fixture places both ships on the same field")
	}
}

func TestFixtureRoundTripsThroughJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")

	fx := newFixture()
	if err := writeFixture(path, fx); err != nil {
		t.Fatalf("writeFixture: %v", err)
	}

	got, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}
	if got.TeamOne.Position != fx.TeamOne.Position {
		t.Errorf("team one position = %v, want %v", got.TeamOne.Position, fx.TeamOne.Position)
	}
	if got.TeamTwo.Speed != fx.TeamTwo.Speed {
		t.Errorf("team two speed = %d, want %d", got.TeamTwo.Speed, fx.TeamTwo.Speed)
	}

	// team one's own field must round-trip as board-mapped.
	if _, ok := got.Board.Get(fx.TeamOne.Position); !ok {
		t.Error("round-tripped board lost team one's field")
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := loadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error loading a missing fixture")
	}
}

func TestLoadFixtureRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := loadFixture(path); err == nil {
		t.Fatal("expected an error loading malformed JSON")
	}
}
