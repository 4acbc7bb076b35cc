package meshing

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dois triângulos que compartilham a aresta (0,0,0)-(1,0,0).
func quadFaces() []Face {
	return []Face{
		{Points: [3]rl.Vector3{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: 0}}},
		{Points: [3]rl.Vector3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 0}}},
	}
}

func TestFlatBuilderDuplicatesVertices(t *testing.T) {
	g := Build(FlatBuilder{}, quadFaces())
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 2, g.TriangleCount())
	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5}, g.Indices)
	assert.Len(t, g.UVs, 12)
	assert.Len(t, g.Colors, 24)

	for i := 0; i < g.VertexCount(); i++ {
		n := g.Normal(i)
		assert.InDelta(t, 1, n.Y, 1e-6, "vértice %d", i)
	}
}

func TestSmoothBuilderSharesVertices(t *testing.T) {
	faces := quadFaces()
	// Deslocamento abaixo da tolerância ainda deve fundir.
	faces[1].Points[2].X += 0.00001
	g := Build(&SmoothBuilder{}, faces)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 2, g.TriangleCount())
	assert.Equal(t, g.Indices[0], g.Indices[5])
	assert.Equal(t, g.Indices[2], g.Indices[3])
}

func TestSmoothNormalsAreNormalized(t *testing.T) {
	faces := []Face{
		{Points: [3]rl.Vector3{{X: 0, Y: 1, Z: 0}, {X: -1, Y: 0, Z: -1}, {X: 1, Y: 0, Z: -1}}},
		{Points: [3]rl.Vector3{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: -1}, {X: 1, Y: 0, Z: 1}}},
	}
	g := Build(&SmoothBuilder{}, faces)
	require.Equal(t, 4, g.VertexCount())
	for i := 0; i < g.VertexCount(); i++ {
		assert.InDelta(t, 1, rl.Vector3Length(g.Normal(i)), 1e-5)
		assert.Greater(t, g.Normal(i).Y, float32(0))
	}
}

func TestBuildIsRepeatable(t *testing.T) {
	for _, style := range []Style{StyleFlat, StyleSmooth} {
		a := Build(NewBuilder(style), quadFaces())
		b := Build(NewBuilder(style), quadFaces())
		assert.Equal(t, a, b, style.String())
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"flat", StyleFlat, false},
		{"Smooth", StyleSmooth, false},
		{"", StyleFlat, false},
		{"gouraud", StyleFlat, true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestHeightColor(t *testing.T) {
	assert.Equal(t, [4]uint8{0, 159, 0, 255}, HeightColor(0))
	assert.Equal(t, [4]uint8{0, 255, 0, 255}, HeightColor(100))
	assert.Equal(t, [4]uint8{0, 64, 0, 255}, HeightColor(-100))
}

func TestBuildGrid(t *testing.T) {
	border := [6]rl.Vector3{
		{X: -0.5, Z: -1}, {X: 0.5, Z: -1}, {X: 1}, {X: 0.5, Z: 1}, {X: -0.5, Z: 1}, {X: -1},
	}
	g := BuildGrid([][6]rl.Vector3{border, border})
	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 12, g.LineCount())

	a, b := g.Line(5)
	assert.InDelta(t, GridLift, a.Y, 1e-7)
	assert.Equal(t, float32(-1), a.X)
	assert.Equal(t, float32(-0.5), b.X)

	a, _ = g.Line(6)
	assert.Equal(t, float32(-0.5), a.X)
}

func TestBounds(t *testing.T) {
	g := Build(FlatBuilder{}, quadFaces())
	box := g.Bounds()
	assert.Equal(t, rl.NewVector3(0, 0, -1), box.Min)
	assert.Equal(t, rl.NewVector3(1, 0, 1), box.Max)
}
