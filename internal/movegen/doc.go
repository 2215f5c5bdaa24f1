// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package movegen enumerates the legal Moves reachable from a
// match.GameState: every combination of an optional Accelerate, an
// optional Turn, and a chain of Advance/Push actions bounded by a
// rank (action-count) and coal budget. Candidates are generated
// structurally and then confirmed by replaying each one through
// GameState.PerformMove, so the output invariant — every returned
// Move succeeds when replayed — holds regardless of any gap between
// this package's cost bookkeeping and the actions package's.
package movegen
