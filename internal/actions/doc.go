// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package actions implements the four action variants a Move sequences
// over a game turn: Accelerate, Turn, Advance and Push. Each is a
// tagged variant of the Action interface, generalizing the dynamic
// dispatch the teacher pack expresses as a heterogeneous list of
// objects with a perform method into a closed Go interface. Apply
// mutates the Context's ship/board values in place, since Context
// already represents an isolated, clone-scoped working copy owned by
// the caller for the duration of one Move; no Context is ever shared
// across two in-flight Moves.
package actions
