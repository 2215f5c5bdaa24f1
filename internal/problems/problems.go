// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package problems

import (
	"encoding/json"
	"fmt"
)

// AccelerationProblem enumerates why an Accelerate action was rejected.
type AccelerationProblem int

const (
	NoAccelerationProblem AccelerationProblem = iota
	ZeroAcc
	AboveMaxSpeed
	BelowMinSpeed
	InsufficientAccelerationCoal
	AccelerateOnSandbank
)

var accelerationMessages = map[AccelerationProblem]string{
	NoAccelerationProblem:        "",
	ZeroAcc:                      "acceleration must not be zero",
	AboveMaxSpeed:                "acceleration would raise speed above 6",
	BelowMinSpeed:                "acceleration would lower speed below 1",
	InsufficientAccelerationCoal: "not enough coal to pay for the requested acceleration",
	AccelerateOnSandbank:         "a ship on a sandbank may not accelerate",
}

var accelerationNames = map[AccelerationProblem]string{
	NoAccelerationProblem:        "None",
	ZeroAcc:                      "ZeroAcc",
	AboveMaxSpeed:                "AboveMaxSpeed",
	BelowMinSpeed:                "BelowMinSpeed",
	InsufficientAccelerationCoal: "InsufficientCoal",
	AccelerateOnSandbank:         "OnSandbank",
}

// String implements the fmt.Stringer interface.
func (p AccelerationProblem) String() string {
	if s, ok := accelerationNames[p]; ok {
		return s
	}
	return fmt.Sprintf("AccelerationProblem(%d)", int(p))
}

// Error implements the error interface.
func (p AccelerationProblem) Error() string {
	if s, ok := accelerationMessages[p]; ok {
		return s
	}
	return p.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (p AccelerationProblem) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// AdvanceProblem enumerates why an Advance action was rejected.
type AdvanceProblem int

const (
	NoAdvanceProblem AdvanceProblem = iota
	MovementPointsMissing
	InsufficientPush
	InvalidDistance
	ShipAlreadyInTarget
	FieldIsBlocked
	MoveEndOnSandbank
)

var advanceMessages = map[AdvanceProblem]string{
	NoAdvanceProblem:      "",
	MovementPointsMissing: "not enough movement points remain for this advance",
	InsufficientPush:      "an advance ended on an opponent with no following push",
	InvalidDistance:       "advance distance must not return the ship to its start",
	ShipAlreadyInTarget:   "the target field is occupied by the opponent's ship",
	FieldIsBlocked:        "the path is blocked by an island or leaves the board",
	MoveEndOnSandbank:     "no further advance is allowed after running aground on a sandbank",
}

var advanceNames = map[AdvanceProblem]string{
	NoAdvanceProblem:      "None",
	MovementPointsMissing: "MovementPointsMissing",
	InsufficientPush:      "InsufficientPush",
	InvalidDistance:       "InvalidDistance",
	ShipAlreadyInTarget:   "ShipAlreadyInTarget",
	FieldIsBlocked:        "FieldIsBlocked",
	MoveEndOnSandbank:     "MoveEndOnSandbank",
}

// String implements the fmt.Stringer interface.
func (p AdvanceProblem) String() string {
	if s, ok := advanceNames[p]; ok {
		return s
	}
	return fmt.Sprintf("AdvanceProblem(%d)", int(p))
}

// Error implements the error interface.
func (p AdvanceProblem) Error() string {
	if s, ok := advanceMessages[p]; ok {
		return s
	}
	return p.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (p AdvanceProblem) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// PushProblem enumerates why a Push action was rejected.
type PushProblem int

const (
	NoPushProblem PushProblem = iota
	PushMovementPointsMissing
	SameFieldPush
	InvalidFieldPush
	BlockedFieldPush
	SandbankPush
	BackwardPushingRestricted
)

var pushMessages = map[PushProblem]string{
	NoPushProblem:             "",
	PushMovementPointsMissing: "not enough movement points remain to push",
	SameFieldPush:             "there is no opponent ship sharing the current field to push",
	InvalidFieldPush:          "the push target field does not exist on the board",
	BlockedFieldPush:          "the push target field is an island",
	SandbankPush:              "a ship on a sandbank may not push",
	BackwardPushingRestricted: "a ship may not push directly backward along its own heading",
}

var pushNames = map[PushProblem]string{
	NoPushProblem:             "None",
	PushMovementPointsMissing: "MovementPointsMissing",
	SameFieldPush:             "SameFieldPush",
	InvalidFieldPush:          "InvalidFieldPush",
	BlockedFieldPush:          "BlockedFieldPush",
	SandbankPush:              "SandbankPush",
	BackwardPushingRestricted: "BackwardPushingRestricted",
}

// String implements the fmt.Stringer interface.
func (p PushProblem) String() string {
	if s, ok := pushNames[p]; ok {
		return s
	}
	return fmt.Sprintf("PushProblem(%d)", int(p))
}

// Error implements the error interface.
func (p PushProblem) Error() string {
	if s, ok := pushMessages[p]; ok {
		return s
	}
	return p.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (p PushProblem) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// TurnProblem enumerates why a Turn action was rejected.
type TurnProblem int

const (
	NoTurnProblem TurnProblem = iota
	RotationOnSandbankNotAllowed
	NotEnoughCoalForRotation
	RotationOnNonExistingField
)

var turnMessages = map[TurnProblem]string{
	NoTurnProblem:                "",
	RotationOnSandbankNotAllowed: "a ship on a sandbank may not rotate",
	NotEnoughCoalForRotation:     "not enough coal to pay for this rotation",
	RotationOnNonExistingField:   "the ship's current field does not exist on the board",
}

var turnNames = map[TurnProblem]string{
	NoTurnProblem:                "None",
	RotationOnSandbankNotAllowed: "RotationOnSandbankNotAllowed",
	NotEnoughCoalForRotation:     "NotEnoughCoalForRotation",
	RotationOnNonExistingField:   "RotationOnNonExistingField",
}

// String implements the fmt.Stringer interface.
func (p TurnProblem) String() string {
	if s, ok := turnNames[p]; ok {
		return s
	}
	return fmt.Sprintf("TurnProblem(%d)", int(p))
}

// Error implements the error interface.
func (p TurnProblem) Error() string {
	if s, ok := turnMessages[p]; ok {
		return s
	}
	return p.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (p TurnProblem) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
