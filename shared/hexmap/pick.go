package hexmap

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PickTile retorna o tile mais próximo atingido pelo raio, ou nil.
// A direção do raio é normalizada para que as distâncias sejam comparáveis.
func (m *HexMap) PickTile(ray rl.Ray) *Tile {
	ray, ok := NormalizeRay(ray)
	if !ok {
		return nil
	}

	var best *Tile
	bestDist := float32(0)
	for _, p := range m.patches {
		if p == nil || !rl.GetRayCollisionBox(ray, p.Bounds).Hit {
			continue
		}
		for _, idx := range p.Tiles {
			t := &m.tiles[idx]
			d, hit := t.Geometry.IntersectedBy(ray)
			if !hit {
				continue
			}
			if best == nil || d < bestDist {
				best = t
				bestDist = d
			}
		}
	}
	return best
}

// VertexPickRadius é o raio da esfera de seleção em volta de cada vértice.
func (m *HexMap) VertexPickRadius() float32 {
	return m.HexSize / 3
}

// PickVertex retorna a posição do vértice de malha mais próximo atingido pelo raio.
// Cada vértice é envolvido numa esfera de raio HexSize/3.
func (m *HexMap) PickVertex(ray rl.Ray) (rl.Vector3, bool) {
	ray, ok := NormalizeRay(ray)
	if !ok {
		return rl.Vector3{}, false
	}

	radius := m.VertexPickRadius()
	pad := rl.NewVector3(radius, radius, radius)

	var best rl.Vector3
	bestDist := float32(0)
	found := false
	for _, p := range m.patches {
		if p == nil {
			continue
		}
		box := rl.NewBoundingBox(rl.Vector3Subtract(p.Bounds.Min, pad), rl.Vector3Add(p.Bounds.Max, pad))
		if !rl.GetRayCollisionBox(ray, box).Hit {
			continue
		}
		for i := 0; i < p.Geometry.VertexCount(); i++ {
			v := p.Geometry.Vertex(i)
			c := rl.GetRayCollisionSphere(ray, v, radius)
			if !c.Hit || c.Distance < 0 {
				continue
			}
			if !found || c.Distance < bestDist {
				best = v
				bestDist = c.Distance
				found = true
			}
		}
	}
	return best, found
}
