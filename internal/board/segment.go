// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board

import (
	"encoding/json"

	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/field"
)

// Segment is an oriented 4x5 patch of the river: Direction is the
// segment's forward axis, Center is the global cube coordinate of the
// grid's local origin (the field at CartesianCoord{0, 0}, a corner of
// the grid, not its middle), and Fields is the local grid, row-major
// with row index matching CartesianCoord.Y and column index matching
// CartesianCoord.X.
//
// The local-to-global rotation is computed once at construction, since
// a segment's orientation never changes after it is placed.
type Segment struct {
	Direction direction.CubeDirection
	Center    coords.CubeCoord
	Fields    [coords.SegmentHeight][coords.SegmentWidth]field.Field

	rotationSteps int
}

// NewSegment builds a Segment, precomputing its local<->global rotation.
func NewSegment(d direction.CubeDirection, center coords.CubeCoord, fields [coords.SegmentHeight][coords.SegmentWidth]field.Field) *Segment {
	return &Segment{
		Direction:     d,
		Center:        center,
		Fields:        fields,
		rotationSteps: direction.Right.TurnCountTo(d),
	}
}

// segmentWire is Segment's JSON shape; rotationSteps is derived,
// never serialized.
type segmentWire struct {
	Direction direction.CubeDirection
	Center    coords.CubeCoord
	Fields    [coords.SegmentHeight][coords.SegmentWidth]field.Field
}

// MarshalJSON implements json.Marshaler.
func (s *Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentWire{Direction: s.Direction, Center: s.Center, Fields: s.Fields})
}

// UnmarshalJSON implements json.Unmarshaler, recomputing the
// local<->global rotation that a wire fixture never carries.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var wire segmentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Direction = wire.Direction
	s.Center = wire.Center
	s.Fields = wire.Fields
	s.rotationSteps = direction.Right.TurnCountTo(s.Direction)
	return nil
}

// Clone returns a deep copy of the segment.
func (s *Segment) Clone() *Segment {
	if s == nil {
		return nil
	}
	clone := *s
	for y := range clone.Fields {
		for x := range clone.Fields[y] {
			if p := clone.Fields[y][x].Passenger; p != nil {
				cp := *p
				clone.Fields[y][x].Passenger = &cp
			}
		}
	}
	return &clone
}

// Tip returns Center moved two fields along Direction. Since Center is
// the grid's local origin rather than its middle, Tip is not the
// midpoint of the segment's far edge.
func (s *Segment) Tip() coords.CubeCoord {
	q, r, sc := s.Direction.Vector()
	step := coords.CubeCoord{Q: q, R: r, S: sc}
	return s.Center.Add(step.Scale(2))
}

// LocalToGlobal maps a local cube coordinate (origin at the grid's
// CartesianCoord{0, 0} field, aligned with canonical Right) to a global coordinate by
// rotating from Right to Direction and translating by Center.
func (s *Segment) LocalToGlobal(local coords.CubeCoord) coords.CubeCoord {
	return local.RotatedBy(s.rotationSteps).Add(s.Center)
}

// GlobalToLocal inverts LocalToGlobal.
func (s *Segment) GlobalToLocal(global coords.CubeCoord) coords.CubeCoord {
	return global.Sub(s.Center).RotatedBy(-s.rotationSteps)
}

// Contains reports whether the global coordinate falls within this
// segment's 4x5 grid.
func (s *Segment) Contains(global coords.CubeCoord) bool {
	local := coords.FromCube(s.GlobalToLocal(global))
	_, ok := local.ToIndex()
	return ok
}

// Get returns the field at the global coordinate, or false if the
// coordinate is outside this segment.
func (s *Segment) Get(global coords.CubeCoord) (field.Field, bool) {
	local := coords.FromCube(s.GlobalToLocal(global))
	idx, ok := local.ToIndex()
	if !ok {
		return field.Field{}, false
	}
	return s.Fields[idx/coords.SegmentWidth][idx%coords.SegmentWidth], true
}

// Set replaces the field at the global coordinate, returning false if
// the coordinate is outside this segment.
func (s *Segment) Set(global coords.CubeCoord, f field.Field) bool {
	local := coords.FromCube(s.GlobalToLocal(global))
	idx, ok := local.ToIndex()
	if !ok {
		return false
	}
	s.Fields[idx/coords.SegmentWidth][idx%coords.SegmentWidth] = f
	return true
}

// IsCurrent reports whether the global coordinate lies on this
// segment's central axis, excluding the segment's two ends. The
// central axis is the middle row of the 4x5 grid (local y == 2); the
// ends are the first and last columns (local x == 0 or x == 3).
func (s *Segment) IsCurrent(global coords.CubeCoord) bool {
	local := coords.FromCube(s.GlobalToLocal(global))
	return local.Y == coords.SegmentHeight/2 && local.X > 0 && local.X < coords.SegmentWidth-1
}
