package util

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum é o volume de visão da câmera, descrito por 6 planos voltados para dentro.
// Cada plano é (a, b, c, d) com a*x + b*y + c*z + d >= 0 para pontos internos.
type Frustum struct {
	Planes [6]mgl32.Vec4
}

// NewFrustum extrai os planos de uma matriz view-projection (método Gribb/Hartmann).
func NewFrustum(viewProj mgl32.Mat4) Frustum {
	r0 := viewProj.Row(0)
	r1 := viewProj.Row(1)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)

	f := Frustum{
		Planes: [6]mgl32.Vec4{
			r3.Add(r0), // esquerda
			r3.Sub(r0), // direita
			r3.Add(r1), // baixo
			r3.Sub(r1), // cima
			r3.Add(r2), // perto
			r3.Sub(r2), // longe
		},
	}
	for i, p := range f.Planes {
		n := p.Vec3().Len()
		if n > 0 {
			f.Planes[i] = p.Mul(1 / n)
		}
	}
	return f
}

// NewFrustumFromCamera monta o frustum a partir de posição, alvo e parâmetros de projeção.
func NewFrustumFromCamera(pos, target, up rl.Vector3, fovy, aspect, near, far float32) Frustum {
	view := mgl32.LookAtV(
		mgl32.Vec3{pos.X, pos.Y, pos.Z},
		mgl32.Vec3{target.X, target.Y, target.Z},
		mgl32.Vec3{up.X, up.Y, up.Z},
	)
	proj := mgl32.Perspective(mgl32.DegToRad(fovy), aspect, near, far)
	return NewFrustum(proj.Mul4(view))
}

// ContainsPoint verifica se o ponto está dentro do frustum.
func (f Frustum) ContainsPoint(p rl.Vector3) bool {
	for _, pl := range f.Planes {
		if pl[0]*p.X+pl[1]*p.Y+pl[2]*p.Z+pl[3] < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox retorna true se a caixa estiver total ou parcialmente dentro do frustum.
// Usa o teste do "vértice positivo": basta o canto mais favorável a cada plano.
func (f Frustum) IntersectsBox(box rl.BoundingBox) bool {
	for _, pl := range f.Planes {
		px := box.Min.X
		if pl[0] >= 0 {
			px = box.Max.X
		}
		py := box.Min.Y
		if pl[1] >= 0 {
			py = box.Max.Y
		}
		pz := box.Min.Z
		if pl[2] >= 0 {
			pz = box.Max.Z
		}
		if pl[0]*px+pl[1]*py+pl[2]*pz+pl[3] < 0 {
			return false
		}
	}
	return true
}
