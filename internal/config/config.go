// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/mdhender/mississippiqueen/internal/coords"
)

// Error defines a constant error.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

const (
	ErrIsDirectory = Error("is directory")
	ErrIsNotAFile  = Error("is not a file")
)

// MatchConfig holds the tunable rules of a match that the engine
// leaves out of the move data itself.
type MatchConfig struct {
	// TurnCap is the turn number at which a match is declared over if
	// no ship has already reached the goal.
	TurnCap int `json:"TurnCap,omitempty"`

	// PassengerCapacity is the number of passengers a ship may carry.
	// A ship already at capacity does not pick up further passengers.
	PassengerCapacity int `json:"PassengerCapacity,omitempty"`

	// SegmentWidth and SegmentHeight mirror the board package's local
	// grid dimensions. They are not independently configurable; they
	// exist so that a dumped configuration file documents the values
	// the engine is actually built against.
	SegmentWidth  int `json:"SegmentWidth,omitempty"`
	SegmentHeight int `json:"SegmentHeight,omitempty"`

	// CoalPointValue, PassengerPointValue, and FinishBonus are the
	// scoring weights applied by the match package when tallying a
	// team's points.
	CoalPointValue      int `json:"CoalPointValue,omitempty"`
	PassengerPointValue int `json:"PassengerPointValue,omitempty"`
	FinishBonus         int `json:"FinishBonus,omitempty"`
}

// DefaultMatchConfig returns the configuration a match uses when no
// configuration file is found.
func DefaultMatchConfig() *MatchConfig {
	return &MatchConfig{
		TurnCap:             30,
		PassengerCapacity:   2,
		SegmentWidth:        coords.SegmentWidth,
		SegmentHeight:       coords.SegmentHeight,
		CoalPointValue:      1,
		PassengerPointValue: 2,
		FinishBonus:         10,
	}
}

// Load reads a MatchConfig from name. A missing, unreadable, or
// malformed file is not an error: Load logs the condition when debug
// is true and falls back to DefaultMatchConfig. Only a file that
// exists but names a directory, or exists but is not a regular file,
// is reported as an error.
func Load(name string, debug bool) (*MatchConfig, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := DefaultMatchConfig()

	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if sb.IsDir() {
		return cfg, ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, ErrIsNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	}

	var tmp MatchConfig
	if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	}
	if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	if tmp.TurnCap != 0 {
		cfg.TurnCap = tmp.TurnCap
	}
	if tmp.PassengerCapacity != 0 {
		cfg.PassengerCapacity = tmp.PassengerCapacity
	}
	if tmp.CoalPointValue != 0 {
		cfg.CoalPointValue = tmp.CoalPointValue
	}
	if tmp.PassengerPointValue != 0 {
		cfg.PassengerPointValue = tmp.PassengerPointValue
	}
	if tmp.FinishBonus != 0 {
		cfg.FinishBonus = tmp.FinishBonus
	}
	// SegmentWidth and SegmentHeight are fixed by the board package;
	// a configuration file cannot change them.
	cfg.SegmentWidth = coords.SegmentWidth
	cfg.SegmentHeight = coords.SegmentHeight

	return cfg, nil
}
