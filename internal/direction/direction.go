// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package direction

import (
	"encoding/json"
	"fmt"
)

// CubeDirection is an enum for the six facings of a hex field.
type CubeDirection int

const (
	Right CubeDirection = iota
	DownRight
	DownLeft
	Left
	UpLeft
	UpRight
)

const (
	NumDirections = int(UpRight) + 1
)

// Directions is a helper for iterating over the directions in ordinal order.
var Directions = []CubeDirection{
	Right,
	DownRight,
	DownLeft,
	Left,
	UpLeft,
	UpRight,
}

// vectors holds the unit cube vector for each direction, derived from
// repeatedly applying the (q, r, s) -> (-r, -s, -q) rotation to Right.
var vectors = map[CubeDirection][3]int{
	Right:     {1, 0, -1},
	DownRight: {0, 1, -1},
	DownLeft:  {-1, 1, 0},
	Left:      {-1, 0, 1},
	UpLeft:    {0, -1, 1},
	UpRight:   {1, -1, 0},
}

// Vector returns the unit cube displacement (dq, dr, ds) for the direction.
func (d CubeDirection) Vector() (int, int, int) {
	v, ok := vectors[d]
	if !ok {
		panic(fmt.Sprintf("invalid CubeDirection %d", int(d)))
	}
	return v[0], v[1], v[2]
}

// RotatedBy returns the direction reached by rotating n steps clockwise
// (negative n rotates counterclockwise) in this enum's ordering.
func (d CubeDirection) RotatedBy(n int) CubeDirection {
	steps := ((int(d)+n)%NumDirections + NumDirections) % NumDirections
	return CubeDirection(steps)
}

// TurnCountTo returns the signed minimal turn count d in [-3, 3] such that
// self.RotatedBy(d) == target, preferring negative on ties (|d| = 3).
func (d CubeDirection) TurnCountTo(target CubeDirection) int {
	diff := ((int(target)-int(d))%NumDirections + NumDirections) % NumDirections
	switch diff {
	case 0, 1, 2:
		return diff
	case 3:
		return -3
	case 4:
		return -2
	default: // 5
		return -1
	}
}

// WithNeighbors returns [RotatedBy(-1), self, RotatedBy(+1)].
func (d CubeDirection) WithNeighbors() [3]CubeDirection {
	return [3]CubeDirection{d.RotatedBy(-1), d, d.RotatedBy(1)}
}

// MarshalJSON implements the json.Marshaler interface.
func (d CubeDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[d])
}

// MarshalText implements the encoding.TextMarshaler interface.
// This is needed for marshalling the enum as map keys.
//
// Note that this is called by the json package, unlike the UnmarshalText function.
func (d CubeDirection) MarshalText() (text []byte, err error) {
	return []byte(EnumToString[d]), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *CubeDirection) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *d, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid CubeDirection %q", s)
	}
	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// This is needed for unmarshalling the enum as map keys.
//
// Note that this is never called; it just changes the code path in UnmarshalJSON.
func (d CubeDirection) UnmarshalText(text []byte) error {
	panic("!")
}

// String implements the fmt.Stringer interface.
func (d CubeDirection) String() string {
	if str, ok := EnumToString[d]; ok {
		return str
	}
	return fmt.Sprintf("CubeDirection(%d)", int(d))
}

var (
	// EnumToString is a helper map for marshalling the enum
	EnumToString = map[CubeDirection]string{
		Right:     "Right",
		DownRight: "DownRight",
		DownLeft:  "DownLeft",
		Left:      "Left",
		UpLeft:    "UpLeft",
		UpRight:   "UpRight",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	StringToEnum = map[string]CubeDirection{
		"Right":     Right,
		"DownRight": DownRight,
		"DownLeft":  DownLeft,
		"Left":      Left,
		"UpLeft":    UpLeft,
		"UpRight":   UpRight,
	}
)
