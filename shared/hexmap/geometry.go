package hexmap

import (
	"HexVision/shared/meshing"
	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HexGeometry é a geometria procedural de um tile: 7 pontos, 6 triângulos e a caixa envolvente.
// As alturas são guardadas em passos inteiros; o Y de cada ponto é sempre passos * HeightStep,
// e todo o estado derivado é reconstruído na mesma chamada que altera uma altura.
type HexGeometry struct {
	HexWidth   float32
	HeightStep float32
	Position   rl.Vector3

	Points    [PointCount]rl.Vector3
	Steps     [PointCount]int
	Bounds    rl.BoundingBox
	Triangles [TriangleCount]Triangle
}

// NewHexGeometry cria a geometria plana (altura zero) do hexágono na coordenada dada.
func NewHexGeometry(c util.OffsetCoord, hexWidth float32) *HexGeometry {
	g := &HexGeometry{
		HexWidth:   hexWidth,
		HeightStep: HeightStep(hexWidth),
		Position:   HexCenter(c, hexWidth),
	}
	for _, p := range PointOrder {
		g.Points[p] = PointPosition(p, g.Position, hexWidth)
	}
	g.rebuild()
	return g
}

// AdjustHeights define as 7 alturas de uma vez (índice = HexPoint). Usado no carregamento.
func (g *HexGeometry) AdjustHeights(heights [PointCount]int) {
	g.Steps = heights
	for _, p := range PointOrder {
		g.Points[p].Y = float32(heights[p]) * g.HeightStep
	}
	g.Position = g.Points[Center]
	g.rebuild()
}

// Raise soma delta passos de altura a um ponto.
func (g *HexGeometry) Raise(delta int, p HexPoint) {
	g.Steps[p] += delta
	g.Points[p].Y = float32(g.Steps[p]) * g.HeightStep
	if p == Center {
		g.Position = g.Points[Center]
	}
	g.rebuild()
}

// CanRaisePoint aplica a regra anti-pico: depois de mover p em delta passos, nenhum outro
// ponto de um triângulo que contém p pode ficar a mais de |delta| passos de distância.
func (g *HexGeometry) CanRaisePoint(p HexPoint, delta int) bool {
	newHeight := g.Steps[p] + delta
	limit := util.Abs(delta)
	for t := 0; t < TriangleCount; t++ {
		tri := IndexOrder[t*3 : t*3+3]
		if tri[0] != p && tri[1] != p && tri[2] != p {
			continue
		}
		for _, other := range tri {
			if other == p {
				continue
			}
			if util.Abs(newHeight-g.Steps[other]) > limit {
				return false
			}
		}
	}
	return true
}

// CanShift generaliza CanRaisePoint para vários pontos movidos juntos: para cada ponto
// movido, os demais pontos dos seus triângulos (já deslocados) ficam a no máximo |delta| passos.
func (g *HexGeometry) CanShift(deltas [PointCount]int) bool {
	var next [PointCount]int
	for i := range next {
		next[i] = g.Steps[i] + deltas[i]
	}
	for t := 0; t < TriangleCount; t++ {
		tri := IndexOrder[t*3 : t*3+3]
		for _, p := range tri {
			if deltas[p] == 0 {
				continue
			}
			limit := util.Abs(deltas[p])
			for _, other := range tri {
				if other != p && util.Abs(next[p]-next[other]) > limit {
					return false
				}
			}
		}
	}
	return true
}

// IntersectedBy testa o raio contra a caixa e depois contra os 6 triângulos.
// Retorna a menor distância não negativa.
func (g *HexGeometry) IntersectedBy(ray rl.Ray) (float32, bool) {
	if !rl.GetRayCollisionBox(ray, g.Bounds).Hit {
		return 0, false
	}
	best := float32(0)
	hit := false
	for _, tri := range g.Triangles {
		d, ok := RayTriangle(ray, tri)
		if !ok || d < 0 {
			continue
		}
		if !hit || d < best {
			best = d
			hit = true
		}
	}
	return best, hit
}

// Border retorna os 6 cantos em ordem de contorno.
func (g *HexGeometry) Border() [6]rl.Vector3 {
	var out [6]rl.Vector3
	for i, p := range BorderOrder {
		out[i] = g.Points[p]
	}
	return out
}

// MidPoints retorna o ponto médio entre cada canto e o centro, mais o próprio centro.
func (g *HexGeometry) MidPoints() [PointCount]rl.Vector3 {
	var out [PointCount]rl.Vector3
	for i, p := range BorderOrder {
		out[i] = rl.Vector3Lerp(g.Points[p], g.Position, 0.5)
	}
	out[6] = g.Position
	return out
}

// Faces converte os triângulos em faces de entrada para os construtores de malha.
func (g *HexGeometry) Faces() [TriangleCount]meshing.Face {
	var out [TriangleCount]meshing.Face
	for i, tri := range g.Triangles {
		out[i] = meshing.Face{Points: tri.Points, UVs: tri.UVs}
	}
	return out
}

func (g *HexGeometry) rebuild() {
	g.Bounds = rl.NewBoundingBox(g.Points[0], g.Points[0])
	for _, p := range g.Points[1:] {
		g.Bounds = meshing.ExtendBox(g.Bounds, p)
	}
	for t := 0; t < TriangleCount; t++ {
		for k := 0; k < 3; k++ {
			p := IndexOrder[t*3+k]
			g.Triangles[t].Points[k] = g.Points[p]
			g.Triangles[t].UVs[k] = UVs[p]
		}
	}
}
