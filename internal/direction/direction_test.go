// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package direction_test

import (
	"testing"

	"github.com/mdhender/mississippiqueen/internal/direction"
)

func TestVector(t *testing.T) {
	tests := []struct {
		name    string
		dir     direction.CubeDirection
		q, r, s int
	}{
		{"Right", direction.Right, 1, 0, -1},
		{"DownRight", direction.DownRight, 0, 1, -1},
		{"DownLeft", direction.DownLeft, -1, 1, 0},
		{"Left", direction.Left, -1, 0, 1},
		{"UpLeft", direction.UpLeft, 0, -1, 1},
		{"UpRight", direction.UpRight, 1, -1, 0},
	}
	for _, tc := range tests {
		q, r, s := tc.dir.Vector()
		if q != tc.q || r != tc.r || s != tc.s {
			t.Errorf("%s: got (%d,%d,%d), want (%d,%d,%d)", tc.name, q, r, s, tc.q, tc.r, tc.s)
		}
		if q+r+s != 0 {
			t.Errorf("%s: vector does not satisfy q+r+s=0", tc.name)
		}
	}
}

func TestRotatedBy(t *testing.T) {
	tests := []struct {
		name string
		dir  direction.CubeDirection
		n    int
		want direction.CubeDirection
	}{
		{"Right by 0", direction.Right, 0, direction.Right},
		{"Right by 1", direction.Right, 1, direction.DownRight},
		{"Right by 6", direction.Right, 6, direction.Right},
		{"Right by -1", direction.Right, -1, direction.UpRight},
		{"Right by -6", direction.Right, -6, direction.Right},
		{"UpRight by 2", direction.UpRight, 2, direction.DownRight},
		{"Left by 3", direction.Left, 3, direction.Right},
	}
	for _, tc := range tests {
		got := tc.dir.RotatedBy(tc.n)
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestRotationIsCyclic(t *testing.T) {
	for _, d := range direction.Directions {
		for n := -6; n <= 6; n++ {
			if got := d.RotatedBy(n).RotatedBy(-n); got != d {
				t.Errorf("%s.RotatedBy(%d).RotatedBy(%d) = %s, want %s", d, n, -n, got, d)
			}
		}
	}
}

func TestTurnCountTo(t *testing.T) {
	tests := []struct {
		from, to direction.CubeDirection
		want     int
	}{
		{direction.Right, direction.Right, 0},
		{direction.Right, direction.DownRight, 1},
		{direction.Right, direction.DownLeft, 2},
		{direction.Right, direction.Left, -3},
		{direction.Right, direction.UpLeft, -2},
		{direction.Right, direction.UpRight, -1},
	}
	for _, tc := range tests {
		got := tc.from.TurnCountTo(tc.to)
		if got != tc.want {
			t.Errorf("%s.TurnCountTo(%s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
		if tc.from.RotatedBy(got) != tc.to {
			t.Errorf("%s.RotatedBy(%d) = %s, want %s", tc.from, got, tc.from.RotatedBy(got), tc.to)
		}
		if got < -3 || got > 3 {
			t.Errorf("%s.TurnCountTo(%s) = %d out of range [-3,3]", tc.from, tc.to, got)
		}
	}
}

func TestWithNeighbors(t *testing.T) {
	got := direction.Right.WithNeighbors()
	want := [3]direction.CubeDirection{direction.UpRight, direction.Right, direction.DownRight}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, d := range direction.Directions {
		data, err := d.MarshalJSON()
		if err != nil {
			t.Fatalf("%s: MarshalJSON: %v", d, err)
		}
		var got direction.CubeDirection
		if err := got.UnmarshalJSON(data); err != nil {
			t.Fatalf("%s: UnmarshalJSON: %v", d, err)
		}
		if got != d {
			t.Errorf("round-trip: got %s, want %s", got, d)
		}
	}
}
