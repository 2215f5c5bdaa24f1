// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package problems defines the four closed rejection taxonomies the
// action package returns in place of panicking or wrapping a generic
// error: AccelerationProblem, AdvanceProblem, PushProblem and
// TurnProblem. Each is a small int enum, like internal/results.Result_e,
// but additionally implements the error interface with a deterministic
// human-readable message, since these values are the normal, expected
// outcome of a rejected action rather than an exceptional condition.
package problems
