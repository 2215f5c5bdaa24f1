// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package field

import (
	"encoding/json"
	"fmt"

	"github.com/mdhender/mississippiqueen/internal/direction"
)

// Variant is an enum for the kind of terrain a field holds.
type Variant int

const (
	Water Variant = iota
	Island
	Passenger
	Goal
	Sandbank
)

// MarshalJSON implements the json.Marshaler interface.
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[v])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (v *Variant) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *v, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid Variant %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (v Variant) String() string {
	if str, ok := EnumToString[v]; ok {
		return str
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

var (
	// EnumToString is a helper map for marshalling the enum
	EnumToString = map[Variant]string{
		Water:     "Water",
		Island:    "Island",
		Passenger: "Passenger",
		Goal:      "Goal",
		Sandbank:  "Sandbank",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	StringToEnum = map[string]Variant{
		"Water":     Water,
		"Island":    Island,
		"Passenger": Passenger,
		"Goal":      Goal,
		"Sandbank":  Sandbank,
	}
)

// PassengerInfo describes the shore token carried by a Passenger-variant
// field: a ship adjacent to the field in Direction may pick one up,
// decrementing Count, so long as the ship's own passenger capacity
// isn't already exhausted.
type PassengerInfo struct {
	Direction direction.CubeDirection
	Count     int
}

// Field is an immutable river cell.
type Field struct {
	Variant   Variant
	Passenger *PassengerInfo
}

// NewField returns a non-passenger field of the given variant.
func NewField(v Variant) Field {
	return Field{Variant: v}
}

// NewPassengerField returns a Passenger-variant field carrying count
// tokens available in the given direction.
func NewPassengerField(d direction.CubeDirection, count int) Field {
	return Field{Variant: Passenger, Passenger: &PassengerInfo{Direction: d, Count: count}}
}

// IsEmpty reports whether the field can be freely entered and carries
// no passenger still waiting to be collected: true for Water, Sandbank
// and Goal; for Passenger it is true only once the count has reached
// zero. Island is never empty.
func (f Field) IsEmpty() bool {
	switch f.Variant {
	case Water, Sandbank, Goal:
		return true
	case Passenger:
		return f.Passenger == nil || f.Passenger.Count <= 0
	default:
		return false
	}
}

// String implements the fmt.Stringer interface.
func (f Field) String() string {
	if f.Variant == Passenger && f.Passenger != nil {
		return fmt.Sprintf("Passenger(%s x%d)", f.Passenger.Direction, f.Passenger.Count)
	}
	return f.Variant.String()
}
