package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborCoordEvenColumn(t *testing.T) {
	origin := NewOffsetCoord(2, 4)
	tests := []struct {
		dir  HexDirection
		want OffsetCoord
	}{
		{North, OffsetCoord{2, 3}},
		{NorthEast, OffsetCoord{3, 3}},
		{SouthEast, OffsetCoord{3, 4}},
		{South, OffsetCoord{2, 5}},
		{SouthWest, OffsetCoord{1, 4}},
		{NorthWest, OffsetCoord{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, NeighborCoord(origin, tt.dir))
		})
	}
}

func TestNeighborCoordOddColumn(t *testing.T) {
	origin := NewOffsetCoord(3, 4)
	tests := []struct {
		dir  HexDirection
		want OffsetCoord
	}{
		{North, OffsetCoord{3, 3}},
		{NorthEast, OffsetCoord{4, 4}},
		{SouthEast, OffsetCoord{4, 5}},
		{South, OffsetCoord{3, 5}},
		{SouthWest, OffsetCoord{2, 5}},
		{NorthWest, OffsetCoord{2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, NeighborCoord(origin, tt.dir))
		})
	}
}

func TestNeighborCoordOutsideGridIsStillValid(t *testing.T) {
	assert.Equal(t, OffsetCoord{0, -1}, NeighborCoord(NewOffsetCoord(0, 0), North))
	assert.Equal(t, OffsetCoord{-1, -1}, NeighborCoord(NewOffsetCoord(0, 0), NorthWest))
}

func TestNeighborsAreAtDistanceOne(t *testing.T) {
	for col := -3; col <= 3; col++ {
		for row := -3; row <= 3; row++ {
			c := NewOffsetCoord(col, row)
			for _, n := range c.Neighbors() {
				assert.Equal(t, 1, OffsetDistance(c, n), "%v -> %v", c, n)
			}
		}
	}
}

func TestOppositeDirectionReturnsToOrigin(t *testing.T) {
	for _, c := range []OffsetCoord{{0, 0}, {1, 0}, {4, 7}, {5, 2}} {
		for _, dir := range AllDirections {
			back := NeighborCoord(NeighborCoord(c, dir), dir.Opposite())
			assert.Equal(t, c, back, "%v %v", c, dir)
		}
	}
}

func TestCubeRoundTrip(t *testing.T) {
	for col := -4; col <= 4; col++ {
		for row := -4; row <= 4; row++ {
			c := NewOffsetCoord(col, row)
			cube := OffsetToCube(c)
			assert.Equal(t, 0, cube.X+cube.Y+cube.Z)
			assert.Equal(t, c, CubeToOffset(cube))
		}
	}
}

func TestOffsetDistance(t *testing.T) {
	assert.Equal(t, 0, OffsetDistance(OffsetCoord{3, 3}, OffsetCoord{3, 3}))
	assert.Equal(t, 3, OffsetDistance(OffsetCoord{0, 0}, OffsetCoord{0, 3}))
	assert.Equal(t, 3, OffsetDistance(OffsetCoord{0, 0}, OffsetCoord{3, 0}))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "SouthWest", SouthWest.String())
	assert.Equal(t, "HexDirection(9)", HexDirection(9).String())
}
