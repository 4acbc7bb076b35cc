package meshing

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Face é um triângulo de entrada para os construtores de geometria.
type Face struct {
	Points [3]rl.Vector3
	UVs    [3]rl.Vector2
}

// GeometryBuilder transforma uma lista de faces em buffers indexados.
// BuildGeometry preenche posições, UVs, cores e índices; GenerateNormals
// calcula as normais a partir dos índices já emitidos.
type GeometryBuilder interface {
	BuildGeometry(faces []Face, buf *MeshBuffer)
	GenerateNormals(g *GeometryData)
}

// Style seleciona a estratégia de construção de malha.
type Style int

const (
	// StyleFlat gera 3 vértices por triângulo (sombreamento facetado).
	StyleFlat Style = iota
	// StyleSmooth compartilha vértices coincidentes (sombreamento suave).
	StyleSmooth
)

func (s Style) String() string {
	switch s {
	case StyleFlat:
		return "flat"
	case StyleSmooth:
		return "smooth"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle converte o nome usado na configuração em Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "flat":
		return StyleFlat, nil
	case "smooth":
		return StyleSmooth, nil
	}
	return StyleFlat, fmt.Errorf("estilo de malha desconhecido: %q", name)
}

// NewBuilder retorna o construtor correspondente ao estilo.
func NewBuilder(s Style) GeometryBuilder {
	if s == StyleSmooth {
		return &SmoothBuilder{}
	}
	return FlatBuilder{}
}

// Build executa o construtor sobre as faces e devolve uma cópia própria da geometria.
func Build(b GeometryBuilder, faces []Face) GeometryData {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	b.BuildGeometry(faces, buf)
	b.GenerateNormals(&buf.Geometry)
	return buf.Geometry.Clone()
}

// FaceNormal calcula a normal unitária de um triângulo: (P0-P1) x (P2-P1).
func FaceNormal(p0, p1, p2 rl.Vector3) rl.Vector3 {
	v1 := rl.Vector3Subtract(p0, p1)
	v2 := rl.Vector3Subtract(p2, p1)
	return rl.Vector3Normalize(rl.Vector3CrossProduct(v1, v2))
}

var up = rl.NewVector3(0, 1, 0)
