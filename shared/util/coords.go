package util

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray é um alias para rl.Ray (Position + Direction).
type Ray = rl.Ray

// Vector3 é um alias para rl.Vector3 para conveniência
type Vector3 = rl.Vector3

// OffsetCoord representa a posição de um hexágono na grade (coluna, linha).
// Layout "odd-q": colunas ímpares são deslocadas meio hexágono para +Z (sul).
type OffsetCoord struct {
	Col, Row int
}

// NewOffsetCoord cria uma nova coordenada de grade.
func NewOffsetCoord(col, row int) OffsetCoord {
	return OffsetCoord{Col: col, Row: row}
}

// Add soma duas coordenadas.
func (c OffsetCoord) Add(other OffsetCoord) OffsetCoord {
	return OffsetCoord{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// IsOddColumn indica se a coluna é ímpar (deslocada para o sul).
func (c OffsetCoord) IsOddColumn() bool {
	return c.Col&1 == 1
}

// String retorna a representação em string da coordenada.
func (c OffsetCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Col, c.Row)
}

// CubeCoord representa a mesma posição em coordenadas cúbicas (x+y+z = 0).
type CubeCoord struct {
	X, Y, Z int
}

// Add soma duas coordenadas cúbicas.
func (c CubeCoord) Add(other CubeCoord) CubeCoord {
	return CubeCoord{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Sub subtrai duas coordenadas cúbicas.
func (c CubeCoord) Sub(other CubeCoord) CubeCoord {
	return CubeCoord{X: c.X - other.X, Y: c.Y - other.Y, Z: c.Z - other.Z}
}

func (c CubeCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// HexDirection representa as 6 direções de vizinhança de um hexágono de topo plano.
type HexDirection int

const (
	North HexDirection = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// DirectionCount é o número de vizinhos de um hexágono.
const DirectionCount = 6

// AllDirections lista as direções na ordem canônica.
var AllDirections = [DirectionCount]HexDirection{North, NorthEast, SouthEast, South, SouthWest, NorthWest}

var directionNames = [DirectionCount]string{"North", "NorthEast", "SouthEast", "South", "SouthWest", "NorthWest"}

func (d HexDirection) String() string {
	if d < 0 || int(d) >= DirectionCount {
		return fmt.Sprintf("HexDirection(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite retorna a direção oposta.
func (d HexDirection) Opposite() HexDirection {
	return (d + 3) % DirectionCount
}

// Tabelas de offset por paridade da coluna.
// A assimetria entre colunas pares e ímpares é intrínseca ao layout odd-q.
var evenColumnOffsets = [DirectionCount]OffsetCoord{
	North:     {Col: 0, Row: -1},
	NorthEast: {Col: 1, Row: -1},
	SouthEast: {Col: 1, Row: 0},
	South:     {Col: 0, Row: 1},
	SouthWest: {Col: -1, Row: 0},
	NorthWest: {Col: -1, Row: -1},
}

var oddColumnOffsets = [DirectionCount]OffsetCoord{
	North:     {Col: 0, Row: -1},
	NorthEast: {Col: 1, Row: 0},
	SouthEast: {Col: 1, Row: 1},
	South:     {Col: 0, Row: 1},
	SouthWest: {Col: -1, Row: 1},
	NorthWest: {Col: -1, Row: 0},
}

// DirectionOffset retorna o delta (coluna, linha) da direção para a paridade de c.
func DirectionOffset(c OffsetCoord, dir HexDirection) OffsetCoord {
	if c.Col&1 == 0 {
		return evenColumnOffsets[dir]
	}
	return oddColumnOffsets[dir]
}

// NeighborCoord retorna a coordenada vizinha na direção especificada.
// Não verifica limites: isso é responsabilidade do mapa.
func NeighborCoord(c OffsetCoord, dir HexDirection) OffsetCoord {
	return c.Add(DirectionOffset(c, dir))
}

// Neighbors retorna as 6 coordenadas vizinhas na ordem de AllDirections.
func (c OffsetCoord) Neighbors() [DirectionCount]OffsetCoord {
	var out [DirectionCount]OffsetCoord
	for _, dir := range AllDirections {
		out[dir] = NeighborCoord(c, dir)
	}
	return out
}

// OffsetToCube converte odd-q offset para coordenadas cúbicas.
func OffsetToCube(c OffsetCoord) CubeCoord {
	x := c.Col
	z := c.Row - (c.Col-(c.Col&1))/2
	return CubeCoord{X: x, Y: -x - z, Z: z}
}

// CubeToOffset converte coordenadas cúbicas para odd-q offset.
func CubeToOffset(c CubeCoord) OffsetCoord {
	col := c.X
	row := c.Z + (c.X-(c.X&1))/2
	return OffsetCoord{Col: col, Row: row}
}

// CubeDistance retorna a distância em hexágonos entre duas coordenadas cúbicas.
func CubeDistance(a, b CubeCoord) int {
	d := a.Sub(b)
	return Max(Abs(d.X), Max(Abs(d.Y), Abs(d.Z)))
}

// OffsetDistance retorna a distância em hexágonos entre duas coordenadas de grade.
func OffsetDistance(a, b OffsetCoord) int {
	return CubeDistance(OffsetToCube(a), OffsetToCube(b))
}
