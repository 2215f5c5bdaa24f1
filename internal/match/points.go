// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package match

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/mdhender/mississippiqueen/internal/board"
	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/ship"
)

// TeamPoints is the split readout of a team's score: advance points
// earned on the board, unused-coal bonus, and a finish bonus.
type TeamPoints struct {
	ShipPoints   int
	CoalPoints   int
	FinishPoints int
}

// Total sums the three components into the scalar used for ranking.
func (p TeamPoints) Total() int { return p.ShipPoints + p.CoalPoints + p.FinishPoints }

// String renders a human-readable breakdown.
func (p TeamPoints) String() string {
	return fmt.Sprintf("%s ship, %s coal, %s finish (%s total)",
		humanize.Comma(int64(p.ShipPoints)),
		humanize.Comma(int64(p.CoalPoints)),
		humanize.Comma(int64(p.FinishPoints)),
		humanize.Comma(int64(p.Total())))
}

// ShipAdvancePoints is segment_index*5 plus the ship's projection
// index (0..3) along its current segment. A ship not resolvable to
// any segment scores zero.
func ShipAdvancePoints(b *board.Board, pos coords.CubeCoord) int {
	idx, ok := b.SegmentIndex(pos)
	if !ok {
		return 0
	}
	return idx*5 + segmentProjection(b, pos)
}

// segmentProjection is the local x coordinate of pos within its
// segment, used both for scoring and for the ahead-team tie-break.
func segmentProjection(b *board.Board, pos coords.CubeCoord) int {
	seg, ok := b.FindSegment(pos)
	if !ok {
		return 0
	}
	local := coords.FromCube(seg.GlobalToLocal(pos))
	return local.X
}

// CalculatePoints tallies s's score: advance points (with a passenger
// bonus folded in), an unused-coal bonus, and a finish bonus when s
// sits on a Goal field at speed 1 with at least two passengers.
func (gs *GameState) CalculatePoints(s *ship.Ship) TeamPoints {
	points := TeamPoints{
		ShipPoints: ShipAdvancePoints(gs.Board, s.Position) + s.Passengers*gs.PassengerPointValue,
		CoalPoints: s.Coal * gs.CoalPointValue,
	}
	if gs.hasFinished(s) {
		points.FinishPoints = gs.FinishBonus
	}
	return points
}
