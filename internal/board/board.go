// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board

import (
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mdhender/mississippiqueen/internal/coords"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/mdhender/mississippiqueen/internal/field"
)

// nearestFieldCacheSize bounds the memoized FindNearestFieldTypes
// results kept per Board value. A handful of distinct (start, variant)
// queries are issued per turn by the move generator, so a small cache
// absorbs repeat lookups without growing unbounded over a long game.
const nearestFieldCacheSize = 256

// Error implements constant errors.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNoSegments is raised by NewBoard when constructed with no segments.
	ErrNoSegments = Error("board must have at least one segment")
)

type nearestFieldKey struct {
	start   coords.CubeCoord
	variant field.Variant
}

// Board is the ordered chain of segments making up the river: head is
// the starting segment, tail grows as the game progresses.
// NextDirection names the facing the next not-yet-revealed segment
// will attach with.
type Board struct {
	Segments      []*Segment
	NextDirection direction.CubeDirection

	cache *lru.Cache[nearestFieldKey, []coords.CubeCoord]
}

// NewBoard builds a Board from its initial chain of segments.
func NewBoard(next direction.CubeDirection, segments ...*Segment) (*Board, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	b := &Board{
		Segments:      segments,
		NextDirection: next,
	}
	b.ensureCache()
	return b, nil
}

func (b *Board) ensureCache() {
	c, err := lru.New[nearestFieldKey, []coords.CubeCoord](nearestFieldCacheSize)
	if err != nil {
		// only non-nil when size <= 0, which nearestFieldCacheSize never is.
		panic(err)
	}
	b.cache = c
}

// Clone returns a deep copy of the board with a fresh, empty memoization
// cache, so a cloned board never shares cached BFS results with its
// source.
func (b *Board) Clone() *Board {
	segments := make([]*Segment, len(b.Segments))
	for i, s := range b.Segments {
		segments[i] = s.Clone()
	}
	clone := &Board{
		Segments:      segments,
		NextDirection: b.NextDirection,
	}
	clone.ensureCache()
	return clone
}

// boardWire is Board's JSON shape; the memoization cache is derived,
// never serialized.
type boardWire struct {
	Segments      []*Segment
	NextDirection direction.CubeDirection
}

// MarshalJSON implements json.Marshaler.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardWire{Segments: b.Segments, NextDirection: b.NextDirection})
}

// UnmarshalJSON implements json.Unmarshaler, rebuilding the
// memoization cache that a wire fixture never carries.
func (b *Board) UnmarshalJSON(data []byte) error {
	var wire boardWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	b.Segments = wire.Segments
	b.NextDirection = wire.NextDirection
	b.ensureCache()
	return nil
}

// AppendSegment grows the board's tail with a newly revealed segment.
func (b *Board) AppendSegment(s *Segment) {
	b.Segments = append(b.Segments, s)
	b.ensureCache()
}

// Get scans segments in order, returning the first hit.
func (b *Board) Get(c coords.CubeCoord) (field.Field, bool) {
	for _, s := range b.Segments {
		if f, ok := s.Get(c); ok {
			return f, true
		}
	}
	return field.Field{}, false
}

// Set updates the field at c in whichever segment contains it, and
// drops the memoized FindNearestFieldTypes results. It reports false if
// no segment contains c.
func (b *Board) Set(c coords.CubeCoord, f field.Field) bool {
	for _, s := range b.Segments {
		if s.Set(c, f) {
			b.ensureCache()
			return true
		}
	}
	return false
}

// FindSegment locates the segment owning c.
func (b *Board) FindSegment(c coords.CubeCoord) (*Segment, bool) {
	for _, s := range b.Segments {
		if s.Contains(c) {
			return s, true
		}
	}
	return nil, false
}

// SegmentIndex locates the position within Segments of the segment
// owning c.
func (b *Board) SegmentIndex(c coords.CubeCoord) (int, bool) {
	for i, s := range b.Segments {
		if s.Contains(c) {
			return i, true
		}
	}
	return 0, false
}

// SegmentDistance returns the absolute difference between the segment
// indices owning a and b.
func (b *Board) SegmentDistance(a, c coords.CubeCoord) (int, bool) {
	ia, ok := b.SegmentIndex(a)
	if !ok {
		return 0, false
	}
	ic, ok := b.SegmentIndex(c)
	if !ok {
		return 0, false
	}
	if ia > ic {
		return ia - ic, true
	}
	return ic - ia, true
}

// Neighbors returns the six cube coordinates adjacent to c, in the
// fixed order of CubeDirection ordinals 0..5, regardless of whether
// they are board-mapped.
func (b *Board) Neighbors(c coords.CubeCoord) [direction.NumDirections]coords.CubeCoord {
	var out [direction.NumDirections]coords.CubeCoord
	for _, d := range direction.Directions {
		out[d] = c.Neighbor(d)
	}
	return out
}

// FieldCurrentDirection returns the direction of the current flowing
// through the field at c, and true if c lies on a current-bearing
// field of its owning segment.
func (b *Board) FieldCurrentDirection(c coords.CubeCoord) (direction.CubeDirection, bool) {
	s, ok := b.FindSegment(c)
	if !ok || !s.IsCurrent(c) {
		return direction.Right, false
	}
	return s.Direction, true
}

// FindNearestFieldTypes performs a breadth-first expansion over hex
// neighbors constrained to board-mapped fields, returning every
// tied-minimum-distance coordinate of the given variant in BFS
// discovery order. It fails soft, returning an empty slice when no such
// field exists within the board. Results are memoized per board value.
func (b *Board) FindNearestFieldTypes(start coords.CubeCoord, variant field.Variant) []coords.CubeCoord {
	key := nearestFieldKey{start: start, variant: variant}
	if cached, ok := b.cache.Get(key); ok {
		return cached
	}

	visited := map[coords.CubeCoord]bool{start: true}
	queue := []coords.CubeCoord{start}

	var found []coords.CubeCoord
	foundDistance := -1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if foundDistance >= 0 && start.Distance(cur) > foundDistance {
			break
		}

		if f, ok := b.Get(cur); ok && f.Variant == variant && cur != start {
			if foundDistance < 0 {
				foundDistance = start.Distance(cur)
			}
			if start.Distance(cur) == foundDistance {
				found = append(found, cur)
			}
		}

		for _, d := range direction.Directions {
			n := cur.Neighbor(d)
			if visited[n] {
				continue
			}
			visited[n] = true
			if _, ok := b.Get(n); !ok {
				continue
			}
			queue = append(queue, n)
		}
	}

	result := found
	if result == nil {
		result = []coords.CubeCoord{}
	}
	b.cache.Add(key, result)
	return result
}
