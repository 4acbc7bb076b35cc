package hexmap

import (
	"testing"

	"HexVision/shared/util"

	"github.com/stretchr/testify/assert"
)

func TestMatchingPoints(t *testing.T) {
	tests := []struct {
		x, y int
		dir  util.HexDirection
		want []HexPoint
	}{
		{0, 0, util.SouthEast, []HexPoint{TopLeft, Left}},
		{0, 0, util.South, []HexPoint{TopLeft, TopRight}},

		{0, 1, util.North, []HexPoint{BottomLeft, BottomRight}},
		{0, 1, util.South, []HexPoint{TopLeft, TopRight}},
		{0, 1, util.NorthEast, []HexPoint{Left, BottomLeft}},
		{0, 1, util.SouthEast, []HexPoint{TopLeft, Left}},

		{1, 0, util.NorthWest, []HexPoint{Right, BottomRight}},
		{1, 0, util.SouthWest, []HexPoint{TopRight, Right}},
		{1, 0, util.South, []HexPoint{TopLeft, TopRight}},
		{1, 0, util.SouthEast, []HexPoint{TopLeft, Left}},
		{1, 0, util.NorthEast, []HexPoint{Left, BottomLeft}},
	}
	for _, tt := range tests {
		t.Run(util.NewOffsetCoord(tt.x, tt.y).String()+" "+tt.dir.String(), func(t *testing.T) {
			c := util.NewOffsetCoord(tt.x, tt.y)
			hex := newTile(c, 0, 1)
			neighbor := newTile(util.NeighborCoord(c, tt.dir), 1, 1)

			got := hex.MatchingPoints(neighbor)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestMatchingPointsAllDirections(t *testing.T) {
	for _, c := range []util.OffsetCoord{{Col: 4, Row: 4}, {Col: 5, Row: 4}} {
		hex := newTile(c, 0, 0.5)
		for _, dir := range util.AllDirections {
			neighbor := newTile(util.NeighborCoord(c, dir), 1, 0.5)
			got := hex.MatchingPoints(neighbor)
			if !assert.Len(t, got, 2, "%v %v", c, dir) {
				continue
			}
			// Os pontos do vizinho coincidem com cantos deste tile.
			for _, p := range got {
				_, ok := hex.PointAt(neighbor.Geometry.Points[p])
				assert.True(t, ok, "%v %v %v", c, dir, p)
			}
		}
	}
}

func TestMatchingPointsNotNeighbor(t *testing.T) {
	a := newTile(util.NewOffsetCoord(0, 0), 0, 1)
	b := newTile(util.NewOffsetCoord(0, 2), 1, 1)
	assert.Empty(t, a.MatchingPoints(b))
}

func TestTileRaiseLower(t *testing.T) {
	tile := newTile(util.NewOffsetCoord(3, 2), 0, 0.5)
	assert.Equal(t, NoTile, tile.PatchID)
	for _, n := range tile.Neighbors {
		assert.Equal(t, NoTile, n)
	}

	tile.Raise(Center)
	assert.Equal(t, 1, tile.Height)
	assert.InDelta(t, 0.25, tile.Position().Y, 1e-6)

	tile.Raise(Left)
	assert.Equal(t, 1, tile.Height, "cantos não mudam a altura do tile")
	assert.Equal(t, [PointCount]int{1, 0, 0, 0, 0, 0, 1}, tile.Heights())

	tile.Lower(Center)
	tile.Lower(Center)
	assert.Equal(t, -1, tile.Height)
	assert.False(t, tile.CanRaisePoint(Center, -1))
	assert.True(t, tile.CanRaisePoint(Center, 1))

	tile.SetHeights([PointCount]int{3, 3, 3, 3, 3, 3, 3})
	assert.Equal(t, 3, tile.Height)
}
