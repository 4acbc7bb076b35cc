package meshing

import (
	"sync"

	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxIndexedVertices é o limite de vértices endereçáveis por índices uint16.
const MaxIndexedVertices = 1 << 16

// GeometryData contém os buffers de vértices para uma malha.
// Vertices e Normals têm 3 floats por vértice, UVs 2 e Colors 4 bytes (RGBA).
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
	Indices  []uint16
}

// Clone cria uma cópia profunda dos dados para que o buffer de origem possa voltar ao pool.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Normals) > 0 {
		clone.Normals = make([]float32, len(g.Normals))
		copy(clone.Normals, g.Normals)
	}
	if len(g.Colors) > 0 {
		clone.Colors = make([]uint8, len(g.Colors))
		copy(clone.Colors, g.Colors)
	}
	if len(g.UVs) > 0 {
		clone.UVs = make([]float32, len(g.UVs))
		copy(clone.UVs, g.UVs)
	}
	if len(g.Indices) > 0 {
		clone.Indices = make([]uint16, len(g.Indices))
		copy(clone.Indices, g.Indices)
	}
	return clone
}

// VertexCount retorna o número de vértices.
func (g *GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos indexados.
func (g *GeometryData) TriangleCount() int {
	return len(g.Indices) / 3
}

// Vertex retorna a posição do i-ésimo vértice.
func (g *GeometryData) Vertex(i int) rl.Vector3 {
	return rl.NewVector3(g.Vertices[i*3], g.Vertices[i*3+1], g.Vertices[i*3+2])
}

// Normal retorna a normal do i-ésimo vértice.
func (g *GeometryData) Normal(i int) rl.Vector3 {
	return rl.NewVector3(g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2])
}

func (g *GeometryData) setNormal(i int, n rl.Vector3) {
	g.Normals[i*3] = n.X
	g.Normals[i*3+1] = n.Y
	g.Normals[i*3+2] = n.Z
}

// Bounds calcula a caixa envolvente de todos os vértices.
func (g *GeometryData) Bounds() rl.BoundingBox {
	if g.VertexCount() == 0 {
		return rl.BoundingBox{}
	}
	box := rl.NewBoundingBox(g.Vertex(0), g.Vertex(0))
	for i := 1; i < g.VertexCount(); i++ {
		v := g.Vertex(i)
		box = ExtendBox(box, v)
	}
	return box
}

// Pool global para reciclar MeshBuffers e evitar alocação excessiva (GC Pressure)
var meshBufferPool = sync.Pool{
	New: func() interface{} {
		return &MeshBuffer{
			Geometry: GeometryData{
				Vertices: make([]float32, 0, 4096),
				Normals:  make([]float32, 0, 4096),
				Colors:   make([]uint8, 0, 4096),
				UVs:      make([]float32, 0, 2048),
				Indices:  make([]uint16, 0, 2048),
			},
		}
	},
}

// GetMeshBuffer aloca ou recicla um buffer vazio para meshing.
func GetMeshBuffer() *MeshBuffer {
	return meshBufferPool.Get().(*MeshBuffer)
}

// PutMeshBuffer zera os slices e devolve a memória para o Pool.
func PutMeshBuffer(b *MeshBuffer) {
	if b == nil {
		return
	}
	b.Geometry.Vertices = b.Geometry.Vertices[:0]
	b.Geometry.Normals = b.Geometry.Normals[:0]
	b.Geometry.Colors = b.Geometry.Colors[:0]
	b.Geometry.UVs = b.Geometry.UVs[:0]
	b.Geometry.Indices = b.Geometry.Indices[:0]
	meshBufferPool.Put(b)
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

// AddVertex adiciona um vértice completo e retorna seu índice.
func (b *MeshBuffer) AddVertex(v rl.Vector3, uv rl.Vector2, n rl.Vector3, c [4]uint8) uint16 {
	idx := uint16(b.Geometry.VertexCount())
	b.Geometry.Vertices = append(b.Geometry.Vertices, v.X, v.Y, v.Z)
	b.Geometry.Normals = append(b.Geometry.Normals, n.X, n.Y, n.Z)
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
	b.Geometry.UVs = append(b.Geometry.UVs, uv.X, uv.Y)
	return idx
}

// AddIndex adiciona um índice ao buffer.
func (b *MeshBuffer) AddIndex(i uint16) {
	b.Geometry.Indices = append(b.Geometry.Indices, i)
}

// AddLine adiciona um segmento (line list) entre dois vértices já existentes.
func (b *MeshBuffer) AddLine(i0, i1 uint16) {
	b.Geometry.Indices = append(b.Geometry.Indices, i0, i1)
}

// ExtendBox expande a caixa para conter o ponto p.
func ExtendBox(box rl.BoundingBox, p rl.Vector3) rl.BoundingBox {
	box.Min = rl.NewVector3(util.Min(box.Min.X, p.X), util.Min(box.Min.Y, p.Y), util.Min(box.Min.Z, p.Z))
	box.Max = rl.NewVector3(util.Max(box.Max.X, p.X), util.Max(box.Max.Y, p.Y), util.Max(box.Max.Z, p.Z))
	return box
}

// MergeBoxes retorna a menor caixa que contém a e b.
func MergeBoxes(a, b rl.BoundingBox) rl.BoundingBox {
	return ExtendBox(ExtendBox(a, b.Min), b.Max)
}
