// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package match owns turn ordering, the Move execution pipeline, point
// calculation, and termination for a Mississippi Queen game. GameState
// is a value: PerformMove clones the receiver, applies a Move's
// actions to the clone via the actions package, and returns the new
// state or the first Problem encountered. No partial state escapes a
// rejected Move.
package match
