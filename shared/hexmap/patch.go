package hexmap

import (
	"sync/atomic"

	"HexVision/shared/meshing"
	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxPatchSize é o maior lado de patch cuja malha plana (18 vértices por tile) cabe em índices uint16.
const MaxPatchSize = 60

// PatchIDAllocator distribui IDs de patch monotonicamente crescentes.
// Seguro para uso concorrente; cada mapa pode ter o seu ou compartilhar um injetado.
type PatchIDAllocator struct {
	next atomic.Int64
}

// NewPatchIDAllocator cria um alocador que começa em 1.
func NewPatchIDAllocator() *PatchIDAllocator {
	return &PatchIDAllocator{}
}

// Next retorna um novo ID.
func (a *PatchIDAllocator) Next() int {
	return int(a.next.Add(1))
}

// Patch agrupa um bloco retangular de tiles em um único buffer de malha.
// Um rebuild cria um Patch novo (novo ID) no mesmo Slot; Generation conta os rebuilds do slot.
type Patch struct {
	ID         int
	Slot       int
	Generation uint64

	Origin     util.OffsetCoord
	Cols, Rows int
	Tiles      []int

	Geometry meshing.GeometryData
	Grid     meshing.GeometryData
	Bounds   rl.BoundingBox
}

// VertexCount retorna o número de vértices da malha do patch.
func (p *Patch) VertexCount() int {
	return p.Geometry.VertexCount()
}

// TriangleCount retorna o número de triângulos da malha do patch.
func (p *Patch) TriangleCount() int {
	return p.Geometry.TriangleCount()
}

// buildPatch monta um patch novo para o slot e transfere a posse dos tiles para ele.
func (m *HexMap) buildPatch(slot int, generation uint64) *Patch {
	pc := slot / m.patchRows
	pr := slot % m.patchRows
	origin := util.NewOffsetCoord(pc*m.patchSize, pr*m.patchSize)

	p := &Patch{
		ID:         m.ids.Next(),
		Slot:       slot,
		Generation: generation,
		Origin:     origin,
		Cols:       util.Min(m.patchSize, m.Width-origin.Col),
		Rows:       util.Min(m.patchSize, m.Height-origin.Row),
	}

	faces := make([]meshing.Face, 0, p.Cols*p.Rows*TriangleCount)
	borders := make([][6]rl.Vector3, 0, p.Cols*p.Rows)
	for col := origin.Col; col < origin.Col+p.Cols; col++ {
		for row := origin.Row; row < origin.Row+p.Rows; row++ {
			t := m.GetTile(col, row)
			t.PatchID = p.ID
			p.Tiles = append(p.Tiles, t.Index)
			f := t.Geometry.Faces()
			faces = append(faces, f[:]...)
			borders = append(borders, t.Geometry.Border())
		}
	}

	p.Geometry = meshing.Build(m.builder, faces)
	p.Grid = meshing.BuildGrid(borders)
	p.Bounds = p.Geometry.Bounds()
	return p
}
