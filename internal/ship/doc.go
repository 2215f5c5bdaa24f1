// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package ship defines Ship, the value-semantic actor state copied into
// each new game state as actions are applied: position, heading, speed,
// coal, passengers, and the per-turn bookkeeping (free acceleration,
// free turns, remaining movement) the action package consumes.
package ship
