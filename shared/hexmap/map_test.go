package hexmap

import (
	"testing"

	"HexVision/shared/meshing"
	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T, w, h int, style meshing.Style) *HexMap {
	t.Helper()
	opts := DefaultOptions()
	opts.PatchSize = 4
	opts.Style = style
	m, err := New(w, h, "grass", opts)
	require.NoError(t, err)
	return m
}

func TestNewMapValidation(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		patch int
		err   error
	}{
		{"largura zero", 0, 5, 10, ErrInvalidSize},
		{"altura grande demais", 5, MaxMapSize + 1, 10, ErrInvalidSize},
		{"patch zero", 5, 5, 0, ErrInvalidPatchSize},
		{"patch grande demais", 5, 5, MaxPatchSize + 1, ErrInvalidPatchSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.PatchSize = tt.patch
			_, err := New(tt.w, tt.h, "", opts)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGetTile(t *testing.T) {
	m := newTestMap(t, 5, 3, meshing.StyleFlat)
	assert.Equal(t, 15, m.TileCount())

	tile := m.GetTile(4, 2)
	require.NotNil(t, tile)
	assert.Equal(t, util.NewOffsetCoord(4, 2), tile.Coord)
	assert.Same(t, tile, m.TileByIndex(tile.Index))

	assert.Nil(t, m.GetTile(-1, 0))
	assert.Nil(t, m.GetTile(5, 0))
	assert.Nil(t, m.GetTile(0, 3))
	assert.Nil(t, m.TileByIndex(NoTile))
}

func TestNeighborWiring(t *testing.T) {
	m := newTestMap(t, 6, 6, meshing.StyleFlat)
	m.Tiles(func(tile *Tile) bool {
		for _, dir := range util.AllDirections {
			want := m.TileAt(util.NeighborCoord(tile.Coord, dir))
			got := m.Neighbor(tile, dir)
			if want == nil {
				assert.Nil(t, got, "%v %v", tile.Coord, dir)
				assert.Equal(t, NoTile, tile.Neighbors[dir])
				continue
			}
			require.NotNil(t, got)
			assert.Equal(t, want.Coord, got.Coord)
			// A relação é simétrica.
			assert.Equal(t, tile.Index, got.Neighbors[dir.Opposite()])
			assert.Len(t, tile.MatchingPoints(got), 2)
		}
		return true
	})

	corner := m.GetTile(0, 0)
	assert.Nil(t, m.Neighbor(corner, util.North))
	assert.Nil(t, m.Neighbor(corner, util.NorthWest))
	assert.NotNil(t, m.Neighbor(corner, util.SouthEast))
}

func TestPatchPartition(t *testing.T) {
	m := newTestMap(t, 10, 6, meshing.StyleFlat)
	// 10x6 com patches 4x4: 3 colunas x 2 linhas de patches.
	require.Len(t, m.Patches(), 6)

	seen := make(map[int]int)
	for _, p := range m.Patches() {
		assert.Same(t, p, m.PatchByID(p.ID))
		assert.Equal(t, len(p.Tiles)*18, p.VertexCount())
		assert.Equal(t, len(p.Tiles)*6, p.TriangleCount())
		assert.Equal(t, p.Cols*p.Rows, len(p.Tiles))
		for _, idx := range p.Tiles {
			seen[idx]++
			assert.Equal(t, p.ID, m.TileByIndex(idx).PatchID)
		}
	}
	assert.Len(t, seen, m.TileCount())
	for idx, n := range seen {
		assert.Equal(t, 1, n, "tile %d em mais de um patch", idx)
	}

	last := m.Patches()[len(m.Patches())-1]
	assert.Equal(t, util.NewOffsetCoord(8, 4), last.Origin)
	assert.Equal(t, 2, last.Cols)
	assert.Equal(t, 2, last.Rows)
}

func TestSmoothStyleSharesVertices(t *testing.T) {
	m := newTestMap(t, 1, 2, meshing.StyleSmooth)
	p := m.Patches()[0]
	assert.Equal(t, 12, p.VertexCount(), "dois hexágonos empilhados compartilham 2 cantos")
	assert.Equal(t, 12, p.TriangleCount())
	assert.Equal(t, meshing.StyleSmooth, m.Style())
}

func TestRebuildForceIsIdempotent(t *testing.T) {
	for _, style := range []meshing.Style{meshing.StyleFlat, meshing.StyleSmooth} {
		t.Run(style.String(), func(t *testing.T) {
			m := newTestMap(t, 7, 5, style)
			require.True(t, m.RaiseVertex(m.GetTile(2, 2).Geometry.Points[TopRight]))

			assert.Equal(t, len(m.Patches()), m.Rebuild(true))
			first := make([]meshing.GeometryData, 0)
			ids := make([]int, 0)
			for _, p := range m.Patches() {
				first = append(first, p.Geometry)
				ids = append(ids, p.ID)
			}

			m.Rebuild(true)
			for i, p := range m.Patches() {
				assert.Equal(t, first[i], p.Geometry)
				assert.Greater(t, p.ID, ids[i], "rebuild gera novo ID")
				assert.Equal(t, uint64(2), p.Generation)
			}
			assert.Zero(t, m.DirtyCount())
		})
	}
}

func TestRebuildOnlyDirty(t *testing.T) {
	m := newTestMap(t, 8, 8, meshing.StyleFlat)
	before := make([]int, 0)
	for _, p := range m.Patches() {
		before = append(before, p.ID)
	}

	tile := m.GetTile(1, 1)
	oldPatch := tile.PatchID
	require.True(t, m.RaiseVertex(tile.Position()))
	assert.Equal(t, 1, m.DirtyCount())

	assert.Equal(t, 1, m.Rebuild(false))
	assert.Zero(t, m.DirtyCount())
	assert.NotEqual(t, oldPatch, tile.PatchID)
	assert.Nil(t, m.PatchByID(oldPatch))

	p := m.PatchByID(tile.PatchID)
	require.NotNil(t, p)
	assert.Equal(t, uint64(1), p.Generation)
	assert.InDelta(t, m.HeightStep(), p.Bounds.Max.Y, 1e-6)

	for i, p := range m.Patches() {
		if i == 0 {
			continue
		}
		assert.Equal(t, before[i], p.ID, "patch %d não deveria ser refeito", i)
	}

	assert.Zero(t, m.Rebuild(false))
}

func TestSharedAllocator(t *testing.T) {
	ids := NewPatchIDAllocator()
	opts := DefaultOptions()
	opts.IDs = ids
	a, err := New(3, 3, "", opts)
	require.NoError(t, err)
	b, err := New(3, 3, "", opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Patches()[0].ID, b.Patches()[0].ID)

	// Mapas independentes começam do zero.
	c, err := New(3, 3, "", DefaultOptions())
	require.NoError(t, err)
	d, err := New(3, 3, "", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, c.Patches()[0].ID, d.Patches()[0].ID)
}

func TestBoundsAndVisiblePatches(t *testing.T) {
	m := newTestMap(t, 12, 12, meshing.StyleFlat)
	box := m.Bounds()
	assert.InDelta(t, -m.HexSize, box.Min.X, 1e-5)
	assert.Greater(t, box.Max.X, float32(8))

	all := util.NewFrustumFromCamera(rl.NewVector3(4.5, 40, 30), rl.NewVector3(4.5, 0, 5), rl.NewVector3(0, 1, 0), 60, 1, 0.1, 500)
	assert.Len(t, m.VisiblePatches(all), len(m.Patches()))

	// Câmera baixa olhando para o canto de origem, longe dos patches distantes.
	some := util.NewFrustumFromCamera(rl.NewVector3(-1, 1, -1), rl.NewVector3(0, 0, 0), rl.NewVector3(0, 1, 0), 30, 1, 0.1, 3)
	visible := m.VisiblePatches(some)
	assert.NotEmpty(t, visible)
	assert.Less(t, len(visible), len(m.Patches()))
}
