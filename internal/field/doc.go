// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package field defines Field, the immutable river-cell type placed in
// a board segment's grid, its closed Variant enum (Water, Island,
// Passenger, Goal, Sandbank), and the PassengerInfo descriptor a
// Passenger-variant field optionally carries.
package field
