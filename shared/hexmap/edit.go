package hexmap

import (
	"math"

	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// vertexRef é um ponto de um tile afetado por uma edição.
type vertexRef struct {
	tile  *Tile
	point HexPoint
}

// RaiseVertex sobe em um passo o vértice compartilhado em pos.
// Retorna false (sem alterar nada) se algum tile rejeitar a edição.
func (m *HexMap) RaiseVertex(pos rl.Vector3) bool {
	return m.shiftVertex(pos, 1)
}

// LowerVertex desce em um passo o vértice compartilhado em pos.
func (m *HexMap) LowerVertex(pos rl.Vector3) bool {
	return m.shiftVertex(pos, -1)
}

func (m *HexMap) shiftVertex(pos rl.Vector3, delta int) bool {
	refs := m.tilesWithVertex(pos)
	if len(refs) == 0 {
		return false
	}
	for _, r := range refs {
		if !r.tile.CanRaisePoint(r.point, delta) {
			return false
		}
	}
	for _, r := range refs {
		if delta > 0 {
			r.tile.Raise(r.point)
		} else {
			r.tile.Lower(r.point)
		}
		m.markDirty(r.tile)
	}
	return true
}

// tilesWithVertex procura, na vizinhança de pos, todos os tiles com um ponto em pos.
func (m *HexMap) tilesWithVertex(pos rl.Vector3) []vertexRef {
	w := m.HexSize
	colLo := int(math.Floor(float64((pos.X-w)/(1.5*w)))) - 1
	colHi := int(math.Ceil(float64((pos.X+w)/(1.5*w)))) + 1
	rowC := int(math.Floor(float64(pos.Z / Height(w))))

	var refs []vertexRef
	for col := util.Max(colLo, 0); col <= util.Min(colHi, m.Width-1); col++ {
		for row := util.Max(rowC-2, 0); row <= util.Min(rowC+2, m.Height-1); row++ {
			t := m.GetTile(col, row)
			if p, ok := t.PointAt(pos); ok {
				refs = append(refs, vertexRef{tile: t, point: p})
			}
		}
	}
	return refs
}

// RaiseTile sobe o tile inteiro (7 pontos) e os cantos compartilhados dos vizinhos.
func (m *HexMap) RaiseTile(t *Tile) bool {
	return m.shiftTile(t, 1)
}

// LowerTile desce o tile inteiro e os cantos compartilhados dos vizinhos.
func (m *HexMap) LowerTile(t *Tile) bool {
	return m.shiftTile(t, -1)
}

func (m *HexMap) shiftTile(t *Tile, delta int) bool {
	if t == nil {
		return false
	}
	type shift struct {
		tile   *Tile
		deltas [PointCount]int
	}

	var all [PointCount]int
	for i := range all {
		all[i] = delta
	}
	shifts := []shift{{tile: t, deltas: all}}
	for _, dir := range util.AllDirections {
		n := m.Neighbor(t, dir)
		if n == nil {
			continue
		}
		s := shift{tile: n}
		for _, p := range t.MatchingPoints(n) {
			s.deltas[p] = delta
		}
		shifts = append(shifts, s)
	}

	for _, s := range shifts {
		if !s.tile.Geometry.CanShift(s.deltas) {
			return false
		}
	}
	for _, s := range shifts {
		h := s.tile.Heights()
		for i := range h {
			h[i] += s.deltas[i]
		}
		s.tile.SetHeights(h)
		m.markDirty(s.tile)
	}
	return true
}

// SetForest define a marcação de floresta do tile.
func (m *HexMap) SetForest(t *Tile, forest bool) {
	if t == nil || t.IsForest == forest {
		return
	}
	t.IsForest = forest
	m.markDirty(t)
}

// ToggleForest inverte a marcação de floresta do tile.
func (m *HexMap) ToggleForest(t *Tile) {
	if t == nil {
		return
	}
	m.SetForest(t, !t.IsForest)
}
