package hexmap

import (
	"testing"

	"HexVision/shared/meshing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackHeights(t *testing.T) {
	tests := []struct {
		heights [PointCount]int
		packed  uint64
	}{
		{[PointCount]int{0, 0, 0, 0, 0, 0, 0}, 35887507618889599},
		{[PointCount]int{-1, 0, 0, 0, 0, 0, 0}, 35887507618889598},
		{[PointCount]int{1, 0, 0, 0, 0, 0, 0}, 35887507618889600},
	}
	for _, tt := range tests {
		got, err := PackHeights(tt.heights)
		require.NoError(t, err)
		assert.Equal(t, tt.packed, got)

		back, err := UnpackHeights(tt.packed)
		require.NoError(t, err)
		assert.Equal(t, tt.heights, back)
	}
}

func TestPackHeightsRange(t *testing.T) {
	extremes := [PointCount]int{MinPackedHeight, MaxPackedHeight, -10, 10, 0, 1, -1}
	v, err := PackHeights(extremes)
	require.NoError(t, err)
	back, err := UnpackHeights(v)
	require.NoError(t, err)
	assert.Equal(t, extremes, back)

	_, err = PackHeights([PointCount]int{0, 0, MaxPackedHeight + 1})
	assert.ErrorIs(t, err, ErrHeightRange)
	_, err = PackHeights([PointCount]int{MinPackedHeight - 1})
	assert.ErrorIs(t, err, ErrHeightRange)

	_, err = UnpackHeights(1 << 60)
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestPackPosition(t *testing.T) {
	assert.Equal(t, uint16(0x0302), PackPosition(2, 3))
	x, y := HexRecord{Pos: PackPosition(255, 17)}.Position()
	assert.Equal(t, 255, x)
	assert.Equal(t, 17, y)
}

func TestTileRoundTrip(t *testing.T) {
	m := newTestMap(t, 3, 3, meshing.StyleFlat)
	tile := m.GetTile(2, 1)
	tile.SetHeights([PointCount]int{5, -3, 128, -127, 0, 4, 6})
	tile.IsForest = true

	rec, err := EncodeTile(tile)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), rec.Forest)

	other := m.GetTile(0, 0)
	require.NoError(t, DecodeTile(rec, other))
	assert.Equal(t, tile.Heights(), other.Heights())
	assert.Equal(t, 5, other.Height)
	assert.True(t, other.IsForest)

	tile.SetHeights([PointCount]int{200})
	_, err = EncodeTile(tile)
	assert.ErrorIs(t, err, ErrHeightRange)
}

func TestMapRecordRoundTrip(t *testing.T) {
	m := newTestMap(t, 6, 5, meshing.StyleSmooth)
	require.True(t, m.RaiseTile(m.GetTile(3, 3)))
	require.True(t, m.RaiseVertex(m.GetTile(1, 1).Geometry.Points[Left]))
	m.SetForest(m.GetTile(4, 0), true)

	rec, err := m.Record("vale")
	require.NoError(t, err)
	assert.Equal(t, "vale", rec.Name)
	assert.Equal(t, "grass", rec.BaseTexture)
	assert.Len(t, rec.Hexes, 30)
	require.NoError(t, rec.Validate())

	loaded, err := NewFromRecord(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, m.Width, loaded.Width)
	assert.Equal(t, m.Height, loaded.Height)
	assert.Equal(t, m.BaseTexture, loaded.BaseTexture)

	m.Tiles(func(tile *Tile) bool {
		got := loaded.TileAt(tile.Coord)
		assert.Equal(t, tile.Heights(), got.Heights(), "%v", tile.Coord)
		assert.Equal(t, tile.IsForest, got.IsForest)
		assert.Equal(t, tile.Height, got.Height)
		assert.Equal(t, tile.Neighbors, got.Neighbors)
		return true
	})
	for _, p := range loaded.Patches() {
		for _, idx := range p.Tiles {
			assert.Equal(t, p.ID, loaded.TileByIndex(idx).PatchID)
		}
	}
}

func TestValidate(t *testing.T) {
	base := func() *MapRecord {
		m, err := New(2, 2, "grass", DefaultOptions())
		require.NoError(t, err)
		rec, err := m.Record("x")
		require.NoError(t, err)
		return rec
	}

	tests := []struct {
		name   string
		mutate func(r *MapRecord)
	}{
		{"largura zero", func(r *MapRecord) { r.Width = 0 }},
		{"largura grande", func(r *MapRecord) { r.Width = 300 }},
		{"contagem", func(r *MapRecord) { r.Hexes = r.Hexes[:3] }},
		{"fora do mapa", func(r *MapRecord) { r.Hexes[0].Pos = PackPosition(2, 0) }},
		{"duplicado", func(r *MapRecord) { r.Hexes[1].Pos = r.Hexes[0].Pos }},
		{"byte alto", func(r *MapRecord) { r.Hexes[2].Heights |= 1 << 58 }},
		{"floresta", func(r *MapRecord) { r.Hexes[3].Forest = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base()
			tt.mutate(rec)
			assert.ErrorIs(t, rec.Validate(), ErrCorruptRecord)

			_, err := NewFromRecord(rec, DefaultOptions())
			assert.ErrorIs(t, err, ErrCorruptRecord)
		})
	}
	assert.NoError(t, base().Validate())
}
