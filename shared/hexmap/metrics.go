package hexmap

import (
	"math"

	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var sin60 = float32(math.Sin(60 * math.Pi / 180))

// HalfWidth é metade do raio do hexágono (deslocamento X dos cantos diagonais).
func HalfWidth(hexWidth float32) float32 {
	return hexWidth / 2
}

// HalfHeight é a distância do centro até a aresta de cima/baixo.
func HalfHeight(hexWidth float32) float32 {
	return hexWidth * sin60
}

// Height é a distância entre as arestas de cima e de baixo.
func Height(hexWidth float32) float32 {
	return 2 * HalfHeight(hexWidth)
}

// HeightStep é a unidade vertical de edição para um hexágono de largura hexWidth.
func HeightStep(hexWidth float32) float32 {
	return hexWidth / 2
}

// PointPosition retorna a posição de um ponto nomeado relativo ao centro.
func PointPosition(p HexPoint, center rl.Vector3, hexWidth float32) rl.Vector3 {
	x := HalfWidth(hexWidth)
	z := HalfHeight(hexWidth)
	var off rl.Vector3
	switch p {
	case TopLeft:
		off = rl.NewVector3(-x, 0, -z)
	case TopRight:
		off = rl.NewVector3(x, 0, -z)
	case Right:
		off = rl.NewVector3(hexWidth, 0, 0)
	case BottomRight:
		off = rl.NewVector3(x, 0, z)
	case BottomLeft:
		off = rl.NewVector3(-x, 0, z)
	case Left:
		off = rl.NewVector3(-hexWidth, 0, 0)
	}
	return rl.Vector3Add(center, off)
}

// HexCenter retorna o centro do hexágono na altura zero.
// Colunas ímpares descem meio hexágono em Z.
func HexCenter(c util.OffsetCoord, hexWidth float32) rl.Vector3 {
	h := Height(hexWidth)
	pos := rl.NewVector3(1.5*hexWidth*float32(c.Col), 0, h*float32(c.Row))
	if c.IsOddColumn() {
		pos.Z += h / 2
	}
	return pos
}
