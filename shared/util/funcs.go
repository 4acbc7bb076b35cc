package util

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/constraints"
)

// Number cobre inteiros com sinal e floats.
type Number interface {
	constraints.Signed | constraints.Float
}

// Tolerance é a tolerância usada para decidir se dois cantos de hexágonos coincidem.
const Tolerance float32 = 1e-4

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// DistSq retorna a distância quadrada entre dois vetores 3D.
func DistSq(v1, v2 rl.Vector3) float32 {
	dx := v1.X - v2.X
	dy := v1.Y - v2.Y
	dz := v1.Z - v2.Z
	return dx*dx + dy*dy + dz*dz
}

// Abs retorna o valor absoluto.
func Abs[T Number](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Max retorna o maior de dois valores.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min retorna o menor de dois valores.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp limita v ao intervalo [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearlyEqual compara dois vetores componente a componente com a tolerância dada.
func NearlyEqual(a, b rl.Vector3, tolerance float32) bool {
	return Abs(a.X-b.X) < tolerance && Abs(a.Y-b.Y) < tolerance && Abs(a.Z-b.Z) < tolerance
}

// SamePoint compara dois vetores com a Tolerance padrão.
func SamePoint(a, b rl.Vector3) bool {
	return NearlyEqual(a, b, Tolerance)
}
