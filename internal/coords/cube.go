// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package coords

import (
	"fmt"

	"github.com/mdhender/mississippiqueen/internal/direction"
)

// Error implements constant errors
type Error string

// Error implements the Errors interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidCartesianCoordinate = Error("invalid cartesian coordinate")
)

// SegmentWidth and SegmentHeight are the fixed dimensions of a segment's
// local field grid: four fields along the river's length, five across it.
const (
	SegmentWidth  = 4
	SegmentHeight = 5
)

// CubeCoord is an integer cube hex coordinate satisfying Q+R+S=0.
type CubeCoord struct {
	Q, R, S int
}

// NewCubeCoord derives S from Q and R.
func NewCubeCoord(q, r int) CubeCoord {
	return CubeCoord{Q: q, R: r, S: -q - r}
}

// Add returns the sum of two cube coordinates.
func (a CubeCoord) Add(b CubeCoord) CubeCoord {
	return CubeCoord{Q: a.Q + b.Q, R: a.R + b.R, S: a.S + b.S}
}

// Sub returns the difference of two cube coordinates.
func (a CubeCoord) Sub(b CubeCoord) CubeCoord {
	return CubeCoord{Q: a.Q - b.Q, R: a.R - b.R, S: a.S - b.S}
}

// Negate returns the coordinate's additive inverse.
func (a CubeCoord) Negate() CubeCoord {
	return CubeCoord{Q: -a.Q, R: -a.R, S: -a.S}
}

// Scale multiplies every component by n.
func (a CubeCoord) Scale(n int) CubeCoord {
	return CubeCoord{Q: a.Q * n, R: a.R * n, S: a.S * n}
}

// RotatedBy applies n steps of the 60-degree clockwise rotation
// (q, r, s) -> (-r, -s, -q) around the origin.
func (a CubeCoord) RotatedBy(n int) CubeCoord {
	steps := ((n % 6) + 6) % 6
	q, r, s := a.Q, a.R, a.S
	for i := 0; i < steps; i++ {
		q, r, s = -r, -s, -q
	}
	return CubeCoord{Q: q, R: r, S: s}
}

// Distance returns the Manhattan-hex distance between two coordinates.
func (a CubeCoord) Distance(b CubeCoord) int {
	d := a.Sub(b)
	return (iabs(d.Q) + iabs(d.R) + iabs(d.S)) / 2
}

// Neighbor returns the coordinate one step away in direction d.
func (a CubeCoord) Neighbor(d direction.CubeDirection) CubeCoord {
	dq, dr, ds := d.Vector()
	return a.Add(CubeCoord{Q: dq, R: dr, S: ds})
}

// String implements the fmt.Stringer interface.
func (a CubeCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", a.Q, a.R, a.S)
}

func iabs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// CartesianCoord is a segment-local offset coordinate: x runs along the
// segment's length in [0, SegmentWidth), y runs across it in
// [0, SegmentHeight).
type CartesianCoord struct {
	X, Y int
}

// ToCube converts the offset coordinate to a cube coordinate using
// q = x - (y - (y & 1)) / 2, r = y.
func (c CartesianCoord) ToCube() CubeCoord {
	q := c.X - (c.Y-(c.Y&1))/2
	r := c.Y
	return NewCubeCoord(q, r)
}

// FromCube converts a cube coordinate to its offset form, the inverse of
// ToCube.
func FromCube(h CubeCoord) CartesianCoord {
	y := h.R
	x := h.Q + (y-(y&1))/2
	return CartesianCoord{X: x, Y: y}
}

// ToIndex packs the coordinate into a row-major index within a
// SegmentWidth x SegmentHeight grid. The second return is false when
// either component is out of range.
func (c CartesianCoord) ToIndex() (int, bool) {
	if c.X < 0 || c.X >= SegmentWidth || c.Y < 0 || c.Y >= SegmentHeight {
		return 0, false
	}
	return c.Y*SegmentWidth + c.X, true
}

// FromIndex unpacks a row-major index within a SegmentWidth x
// SegmentHeight grid back into a CartesianCoord. The second return is
// false when the index is out of range.
func FromIndex(i int) (CartesianCoord, bool) {
	if i < 0 || i >= SegmentWidth*SegmentHeight {
		return CartesianCoord{}, false
	}
	return CartesianCoord{X: i % SegmentWidth, Y: i / SegmentWidth}, true
}

// String implements the fmt.Stringer interface.
func (c CartesianCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
