package hexmap

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangle é uma face do leque de um hexágono, com posições e UVs.
type Triangle struct {
	Points [3]rl.Vector3
	UVs    [3]rl.Vector2
}

// Normal retorna a normal unitária (P0-P1) x (P2-P1); +Y para um tile plano.
func (t Triangle) Normal() rl.Vector3 {
	v1 := rl.Vector3Subtract(t.Points[0], t.Points[1])
	v2 := rl.Vector3Subtract(t.Points[2], t.Points[1])
	return rl.Vector3Normalize(rl.Vector3CrossProduct(v1, v2))
}

// parallelEpsilon é o menor float32 positivo; só determinantes praticamente nulos são rejeitados.
const parallelEpsilon = math.SmallestNonzeroFloat32

// RayTriangle testa o raio contra o triângulo (Möller–Trumbore, arestas relativas a P1).
// Retorna a distância com sinal ao longo do raio; negativa quando o triângulo está atrás da origem.
func RayTriangle(ray rl.Ray, tri Triangle) (float32, bool) {
	edge1 := rl.Vector3Subtract(tri.Points[2], tri.Points[1])
	edge2 := rl.Vector3Subtract(tri.Points[0], tri.Points[1])

	pvec := rl.Vector3CrossProduct(ray.Direction, edge2)
	det := rl.Vector3DotProduct(edge1, pvec)
	if det > -parallelEpsilon && det < parallelEpsilon {
		return 0, false
	}
	invDet := 1 / det

	tvec := rl.Vector3Subtract(ray.Position, tri.Points[1])
	u := rl.Vector3DotProduct(tvec, pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := rl.Vector3CrossProduct(tvec, edge1)
	v := rl.Vector3DotProduct(ray.Direction, qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	return rl.Vector3DotProduct(edge2, qvec) * invDet, true
}

// NormalizeRay devolve o raio com direção unitária. Raios de direção nula são inválidos.
func NormalizeRay(ray rl.Ray) (rl.Ray, bool) {
	if rl.Vector3Length(ray.Direction) == 0 {
		return ray, false
	}
	ray.Direction = rl.Vector3Normalize(ray.Direction)
	return ray, true
}
