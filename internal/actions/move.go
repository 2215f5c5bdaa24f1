// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package actions

import "github.com/google/uuid"

// Move is an ordered sequence of actions constituting one player's
// turn, atomic on success: either every action applies or the Move is
// rejected as a whole and no partial state is observable.
type Move struct {
	ID      uuid.UUID
	Actions []Action
}

// NewMove stamps a fresh ID on a new Move.
func NewMove(acts ...Action) Move {
	return Move{ID: uuid.New(), Actions: acts}
}
