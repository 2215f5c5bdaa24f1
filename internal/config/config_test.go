// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhender/mississippiqueen/internal/config"
)

func TestLoadNonExistentFile(t *testing.T) {
	cfg, err := config.Load("non-existent-file.json", false)
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	def := config.DefaultMatchConfig()
	if cfg.TurnCap != def.TurnCap || cfg.PassengerCapacity != def.PassengerCapacity {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadDirectoryIsError(t *testing.T) {
	tmpDir := t.TempDir()
	_, err := config.Load(tmpDir, false)
	if err != config.ErrIsDirectory {
		t.Errorf("expected ErrIsDirectory, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "match.json")
	if err := os.WriteFile(configFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg, err := config.Load(configFile, false)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	def := config.DefaultMatchConfig()
	if cfg.TurnCap != def.TurnCap {
		t.Errorf("expected default turn cap, got %d", cfg.TurnCap)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "match.json")

	data, err := json.Marshal(config.MatchConfig{TurnCap: 40})
	if err != nil {
		t.Fatalf("failed to marshal test config: %v", err)
	}
	if err = os.WriteFile(configFile, data, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg, err := config.Load(configFile, false)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if cfg.TurnCap != 40 {
		t.Errorf("expected turn cap 40, got %d", cfg.TurnCap)
	}
	// unset fields fall back to defaults
	def := config.DefaultMatchConfig()
	if cfg.PassengerCapacity != def.PassengerCapacity {
		t.Errorf("expected default passenger capacity, got %d", cfg.PassengerCapacity)
	}
}

func TestLoadSegmentDimensionsAreFixed(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "match.json")

	data, err := json.Marshal(config.MatchConfig{SegmentWidth: 999, SegmentHeight: 999})
	if err != nil {
		t.Fatalf("failed to marshal test config: %v", err)
	}
	if err = os.WriteFile(configFile, data, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg, err := config.Load(configFile, false)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	def := config.DefaultMatchConfig()
	if cfg.SegmentWidth != def.SegmentWidth || cfg.SegmentHeight != def.SegmentHeight {
		t.Errorf("expected segment dimensions to stay fixed, got %d x %d", cfg.SegmentWidth, cfg.SegmentHeight)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "match.json")
	if err := os.WriteFile(configFile, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg, err := config.Load(configFile, true)
	if err != nil {
		t.Errorf("expected no error for invalid JSON, got %v", err)
	}
	def := config.DefaultMatchConfig()
	if cfg.TurnCap != def.TurnCap {
		t.Errorf("expected default config for invalid JSON, got %+v", cfg)
	}
}
