package meshing

import (
	"math"

	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type bucketKey [3]int64

// SmoothBuilder funde vértices cujas posições coincidem dentro de Tolerance.
// As posições são agrupadas em células do tamanho da tolerância e a busca
// olha as 27 células vizinhas, então a deduplicação é O(n).
type SmoothBuilder struct {
	// Tolerance padrão é util.Tolerance quando zero.
	Tolerance float32
}

func (s *SmoothBuilder) tolerance() float32 {
	if s.Tolerance > 0 {
		return s.Tolerance
	}
	return util.Tolerance
}

func (s *SmoothBuilder) BuildGeometry(faces []Face, buf *MeshBuffer) {
	tol := s.tolerance()
	buckets := make(map[bucketKey][]uint16, len(faces))

	keyOf := func(p rl.Vector3) bucketKey {
		return bucketKey{
			int64(math.Floor(float64(p.X / tol))),
			int64(math.Floor(float64(p.Y / tol))),
			int64(math.Floor(float64(p.Z / tol))),
		}
	}

	lookup := func(p rl.Vector3, k bucketKey) (uint16, bool) {
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, i := range buckets[bucketKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
						if util.NearlyEqual(buf.Geometry.Vertex(int(i)), p, tol) {
							return i, true
						}
					}
				}
			}
		}
		return 0, false
	}

	for _, f := range faces {
		for k := 0; k < 3; k++ {
			p := f.Points[k]
			key := keyOf(p)
			i, ok := lookup(p, key)
			if !ok {
				i = buf.AddVertex(p, f.UVs[k], up, HeightColor(p.Y))
				buckets[key] = append(buckets[key], i)
			}
			buf.AddIndex(i)
		}
	}
}

// GenerateNormals acumula as normais das faces em cada vértice compartilhado e normaliza.
func (s *SmoothBuilder) GenerateNormals(g *GeometryData) {
	acc := make([]rl.Vector3, g.VertexCount())
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := int(g.Indices[i]), int(g.Indices[i+1]), int(g.Indices[i+2])
		n := FaceNormal(g.Vertex(a), g.Vertex(b), g.Vertex(c))
		acc[a] = rl.Vector3Add(acc[a], n)
		acc[b] = rl.Vector3Add(acc[b], n)
		acc[c] = rl.Vector3Add(acc[c], n)
	}
	for i, n := range acc {
		if rl.Vector3Length(n) == 0 {
			n = up
		}
		g.setNormal(i, rl.Vector3Normalize(n))
	}
}
