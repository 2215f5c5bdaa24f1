// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ship

import (
	"encoding/json"
	"fmt"
)

// Team is an enum for which side a ship belongs to.
type Team int

const (
	One Team = iota
	Two
)

// MarshalJSON implements the json.Marshaler interface.
func (t Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[t])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Team) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *t, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid Team %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (t Team) String() string {
	if str, ok := EnumToString[t]; ok {
		return str
	}
	return fmt.Sprintf("Team(%d)", int(t))
}

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == One {
		return Two
	}
	return One
}

var (
	// EnumToString is a helper map for marshalling the enum
	EnumToString = map[Team]string{
		One: "One",
		Two: "Two",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	StringToEnum = map[string]Team{
		"One": One,
		"Two": Two,
	}
)
