package hexmap

import (
	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NoTile marca a ausência de vizinho ou de patch.
const NoTile = -1

// Tile é uma célula do mapa. Pertence exclusivamente ao HexMap; vizinhos são índices na arena.
type Tile struct {
	Coord    util.OffsetCoord
	Index    int
	Height   int
	IsForest bool

	// PatchID é o patch que contém o tile atualmente, ou NoTile.
	PatchID int

	// Neighbors guarda o índice do vizinho em cada HexDirection (NoTile fora da grade).
	Neighbors [util.DirectionCount]int

	Geometry *HexGeometry
}

func newTile(c util.OffsetCoord, index int, hexWidth float32) *Tile {
	t := &Tile{
		Coord:    c,
		Index:    index,
		PatchID:  NoTile,
		Geometry: NewHexGeometry(c, hexWidth),
	}
	for i := range t.Neighbors {
		t.Neighbors[i] = NoTile
	}
	return t
}

// Position é o centro do tile no mundo.
func (t *Tile) Position() rl.Vector3 {
	return t.Geometry.Position
}

// Raise sobe um ponto em um passo.
func (t *Tile) Raise(p HexPoint) {
	t.Geometry.Raise(1, p)
	if p == Center {
		t.Height++
	}
}

// Lower desce um ponto em um passo.
func (t *Tile) Lower(p HexPoint) {
	t.Geometry.Raise(-1, p)
	if p == Center {
		t.Height--
	}
}

// CanRaisePoint verifica a regra anti-pico para amount passos (negativo para baixar).
func (t *Tile) CanRaisePoint(p HexPoint, amount int) bool {
	return t.Geometry.CanRaisePoint(p, amount)
}

// Heights retorna as alturas inteiras dos 7 pontos, em ordem de HexPoint.
func (t *Tile) Heights() [PointCount]int {
	return t.Geometry.Steps
}

// SetHeights substitui todas as alturas (carregamento de registro).
func (t *Tile) SetHeights(h [PointCount]int) {
	t.Geometry.AdjustHeights(h)
	t.Height = h[Center]
}

// PointAt retorna o ponto do tile que coincide com pos (tolerância util.Tolerance).
func (t *Tile) PointAt(pos rl.Vector3) (HexPoint, bool) {
	for _, p := range PointOrder {
		if util.SamePoint(t.Geometry.Points[p], pos) {
			return p, true
		}
	}
	return Center, false
}

// MatchingPoints retorna os cantos do vizinho que coincidem com algum canto deste tile.
// Para vizinhos de verdade o resultado tem sempre 2 pontos (a aresta compartilhada).
func (t *Tile) MatchingPoints(neighbor *Tile) []HexPoint {
	var out []HexPoint
	mine := t.Geometry.Border()
	for _, np := range BorderOrder {
		pos := neighbor.Geometry.Points[np]
		for _, p := range mine {
			if samePlan(p, pos) {
				out = append(out, np)
				break
			}
		}
	}
	return out
}

// samePlan compara apenas X e Z.
func samePlan(a, b rl.Vector3) bool {
	return util.Abs(a.X-b.X) < util.Tolerance && util.Abs(a.Z-b.Z) < util.Tolerance
}
