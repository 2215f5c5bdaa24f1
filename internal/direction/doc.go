// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package direction defines CubeDirection, the six-value enum of hex
// facings used throughout the board and ship packages (Right,
// DownRight, DownLeft, Left, UpLeft, UpRight). It provides the unit
// cube vector for each direction, rotation by an arbitrary number of
// 60-degree turns, and the signed minimal turn count between two
// directions that the Turn action consumes coal against.
package direction
