// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package board implements the segmented river: Segment, a 4x5 local
// field grid anchored at a global coordinate with a forward facing
// direction, and Board, the append-only ordered chain of segments with
// neighborhood lookup, current-flow detection, and nearest-field BFS
// search.
package board
