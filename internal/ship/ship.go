// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ship

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/direction"
)

// Ship is the value-semantic actor state. It is copied into every new
// game state produced by an action; mutation is never visible to a
// caller holding an earlier value.
type Ship struct {
	Team       Team
	Position   coords.CubeCoord
	Direction  direction.CubeDirection
	Speed      int // 1..6 at every turn boundary
	Coal       int
	Passengers int
	FreeTurns  int // 0, 1 or 2
	Points     int
	FreeAcc    int // 0 or 1, one free acceleration per turn
	Movement   int // remaining movement points this turn
}

// MaxAcc returns the maximum additional acceleration (or, symmetrically,
// deceleration with floor 1) the ship can afford this turn.
func (s Ship) MaxAcc() int {
	return min(6-s.Speed, s.Speed-1+s.Coal+s.FreeAcc)
}

// CanTurn reports whether the ship may rotate, given whether it
// currently stands on a Sandbank.
func (s Ship) CanTurn(onSandbank bool) bool {
	return !onSandbank
}

// Normalize is the post-deserialization invariant check: it recomputes
// Movement from Speed and clamps FreeAcc/FreeTurns to their valid
// ranges, without altering any other field.
func (s Ship) Normalize() Ship {
	out := s
	out.Movement = out.Speed
	switch {
	case out.FreeAcc < 0:
		out.FreeAcc = 0
	case out.FreeAcc > 1:
		out.FreeAcc = 1
	}
	switch {
	case out.FreeTurns < 0:
		out.FreeTurns = 0
	case out.FreeTurns > 2:
		out.FreeTurns = 2
	}
	return out
}

// String implements the fmt.Stringer interface.
func (s Ship) String() string {
	return fmt.Sprintf("%s ship at %s heading %s, speed %d, %s coal, %s, %s points",
		s.Team, s.Position, s.Direction, s.Speed,
		humanize.Comma(int64(s.Coal)),
		english.Plural(s.Passengers, "passenger", "passengers"),
		humanize.Comma(int64(s.Points)))
}
