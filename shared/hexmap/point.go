package hexmap

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HexPoint identifica um dos 7 pontos nomeados de um hexágono.
// O valor inteiro é o índice usado nos arrays de alturas e no empacotamento do MapRecord.
type HexPoint int

const (
	Center HexPoint = iota
	TopLeft
	TopRight
	Right
	BottomRight
	BottomLeft
	Left
)

// PointCount é o número de pontos por hexágono (centro + 6 cantos).
const PointCount = 7

// TriangleCount é o número de triângulos do leque de cada hexágono.
const TriangleCount = 6

// PointOrder é a ordem fixa de iteração dos pontos.
var PointOrder = [PointCount]HexPoint{Center, TopLeft, TopRight, Right, BottomRight, BottomLeft, Left}

// BorderOrder são os 6 cantos em ordem de contorno (sem o centro).
var BorderOrder = [6]HexPoint{TopLeft, TopRight, Right, BottomRight, BottomLeft, Left}

// IndexOrder é o leque de 6 triângulos (Center, A, B) compartilhado por todos os tiles.
var IndexOrder = [TriangleCount * 3]HexPoint{
	Center, TopLeft, TopRight,
	Center, TopRight, Right,
	Center, Right, BottomRight,
	Center, BottomRight, BottomLeft,
	Center, BottomLeft, Left,
	Center, Left, TopLeft,
}

// UVs é o layout fixo de textura por ponto.
var UVs = [PointCount]rl.Vector2{
	Center:      {X: 0.5, Y: 0.5},
	TopLeft:     {X: 0.25, Y: 0},
	TopRight:    {X: 0.75, Y: 0},
	Right:       {X: 1, Y: 0.5},
	BottomRight: {X: 0.75, Y: 1},
	BottomLeft:  {X: 0.25, Y: 1},
	Left:        {X: 0, Y: 0.5},
}

var pointNames = [PointCount]string{"Center", "TopLeft", "TopRight", "Right", "BottomRight", "BottomLeft", "Left"}

func (p HexPoint) String() string {
	if p < 0 || int(p) >= PointCount {
		return fmt.Sprintf("HexPoint(%d)", int(p))
	}
	return pointNames[p]
}
