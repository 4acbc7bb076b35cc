package meshing

import rl "github.com/gen2brain/raylib-go/raylib"

// GridLift é o deslocamento vertical das linhas da grade para evitar z-fighting.
const GridLift float32 = 0.01

// GridColor é a cor padrão das linhas da grade.
var GridColor = [4]uint8{255, 0, 0, 255}

// BuildGrid gera uma line list com o contorno de cada hexágono.
// Cada borda deve ter seus 6 cantos em ordem de contorno.
func BuildGrid(borders [][6]rl.Vector3) GeometryData {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	lift := rl.NewVector3(0, GridLift, 0)
	for _, border := range borders {
		var first uint16
		for k, p := range border {
			i := buf.AddVertex(rl.Vector3Add(p, lift), rl.Vector2{}, up, GridColor)
			if k == 0 {
				first = i
			}
		}
		for k := uint16(0); k < 6; k++ {
			buf.AddLine(first+k, first+(k+1)%6)
		}
	}
	return buf.Geometry.Clone()
}

// Line retorna o i-ésimo segmento de uma line list.
func (g *GeometryData) Line(i int) (rl.Vector3, rl.Vector3) {
	return g.Vertex(int(g.Indices[i*2])), g.Vertex(int(g.Indices[i*2+1]))
}

// LineCount retorna o número de segmentos de uma line list.
func (g *GeometryData) LineCount() int {
	return len(g.Indices) / 2
}
