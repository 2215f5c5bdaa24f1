// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package coords implements the hex algebra used by the board and
// movement packages: CubeCoord, an integer cube coordinate satisfying
// q+r+s=0, with addition, negation, scalar multiplication, rotation,
// and Manhattan-hex distance; and CartesianCoord, the offset (x, y)
// form used to index a segment's local 4x5 field grid.
package coords
