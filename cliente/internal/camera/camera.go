package camera

import (
	"math"

	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode define o tipo de projeção estritamente.
type Mode int

const (
	ModePerspective Mode = iota
	ModeOrthographic
)

// Planos de recorte usados na extração do frustum (valores padrão do rlgl).
const (
	NearPlane float32 = 0.01
	FarPlane  float32 = 1000.0
)

// Limites de elevação: entre quase topo e quase horizonte.
var (
	minPitch = float32(-89.0 * rl.Deg2rad)
	maxPitch = float32(-5.0 * rl.Deg2rad)
)

// CameraController gerencia a lógica de movimentação e projeção da câmera orbital.
// O botão esquerdo fica livre para as ferramentas do editor: a órbita usa o botão do meio ou Q/E/R/F.
type CameraController struct {
	// Estado interno do Raylib
	RLCamera rl.Camera3D

	// Configurações
	Mode         Mode
	Fovy         float32
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado Alvo (para interpolação suave)
	TargetLookAt rl.Vector3 // Para onde a câmera quer olhar (ponto central)
	TargetZoom   float32    // Zoom desejado
	TargetAngleY float32    // Rotação horizontal atual (radianos)
	TargetAngleX float32    // Rotação vertical atual (radianos)

	// Estado Atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria um novo controlador de câmera.
func New() *CameraController {
	c := &CameraController{
		Mode:         ModePerspective,
		Fovy:         45.0,
		MinZoom:      1.0,
		MaxZoom:      200.0,
		MoveSpeed:    10.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    2.0,
		SmoothFactor: 0.1,

		TargetLookAt: rl.Vector3{X: 0, Y: 0, Z: 0},
		TargetZoom:   20.0,
		TargetAngleY: 45.0 * rl.Deg2rad,  // 45 graus (padrão isométrico)
		TargetAngleX: -45.0 * rl.Deg2rad, // -45 graus (olhando de cima)
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}

	c.UpdateWait(1.0) // Força atualização imediata da posição
	return c
}

// SetTarget define o ponto observado imediatamente (sem suavização).
func (c *CameraController) SetTarget(pos rl.Vector3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
	c.UpdateWait(1.0)
}

// Frame enquadra a caixa inteira: centraliza o alvo e ajusta o zoom ao maior lado.
func (c *CameraController) Frame(box rl.BoundingBox) {
	center := rl.Vector3Scale(rl.Vector3Add(box.Min, box.Max), 0.5)
	size := rl.Vector3Subtract(box.Max, box.Min)
	extent := util.Max(size.X, size.Z)

	c.MaxZoom = util.Max(200.0, extent*3)
	c.TargetZoom = util.Clamp(extent*1.2, c.MinZoom, c.MaxZoom)
	c.CurrentZoom = c.TargetZoom
	c.SetTarget(center)
}

// Update calcula a nova posição da câmera com base no tempo (dt).
// Deve ser chamado a cada frame.
func (c *CameraController) Update(dt float32) {
	factor := util.Min(c.SmoothFactor*60.0*dt, 1.0) // Normaliza para 60 FPS

	// Conversão rl.Vector3 -> mgl32.Vec3 para interpolação
	curVec := toVec3(c.CurrentLookAt)
	tgtVec := toVec3(c.TargetLookAt)
	lerpedVec := curVec.Add(tgtVec.Sub(curVec).Mul(factor))

	c.CurrentLookAt = fromVec3(lerpedVec)
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.UpdateWait(dt)
}

// UpdateWait recalcula a posição da câmera baseada nos ângulos e zoom atuais.
func (c *CameraController) UpdateWait(dt float32) {
	dist := c.CurrentZoom

	// No ortográfico o "zoom" é a escala (Fovy); a câmera fica longe para não cortar a geometria.
	if c.Mode == ModeOrthographic {
		c.RLCamera.Fovy = c.CurrentZoom * 0.5
		c.RLCamera.Projection = rl.CameraOrthographic
		dist = util.Max(200.0, c.MaxZoom)
	} else {
		c.RLCamera.Fovy = c.Fovy
		c.RLCamera.Projection = rl.CameraPerspective
	}

	c.RLCamera.Position = rl.Vector3Add(c.CurrentLookAt, orbitOffset(c.TargetAngleX, c.TargetAngleY, dist))
	c.RLCamera.Target = c.CurrentLookAt
}

// orbitOffset converte coordenadas esféricas (elevação, azimute, raio) em deslocamento cartesiano.
func orbitOffset(pitch, yaw, dist float32) rl.Vector3 {
	cosX := float32(math.Cos(float64(pitch)))
	sinX := float32(math.Sin(float64(pitch)))
	cosY := float32(math.Cos(float64(yaw)))
	sinY := float32(math.Sin(float64(yaw)))

	return rl.Vector3{
		X: dist * cosX * sinY,
		Y: dist * -sinX, // Y é UP no Raylib, pitch negativo pois olhamos de cima para baixo
		Z: dist * cosX * cosY,
	}
}

// SetMode alterna entre Perspectiva e Ortográfica.
func (c *CameraController) SetMode(mode Mode) {
	c.Mode = mode
	c.UpdateWait(0)
}

// Zoom aplica um passo de zoom (positivo aproxima).
func (c *CameraController) Zoom(steps float32) {
	// Passo proporcional à distância atual para manter a sensação constante
	c.TargetZoom -= steps * c.ZoomSpeed * util.Max(c.TargetZoom/20.0, 0.25)
	c.TargetZoom = util.Clamp(c.TargetZoom, c.MinZoom, c.MaxZoom)
}

// Orbit gira a câmera em torno do alvo (radianos).
func (c *CameraController) Orbit(dYaw, dPitch float32) {
	c.TargetAngleY += dYaw
	c.TargetAngleX = util.Clamp(c.TargetAngleX+dPitch, minPitch, maxPitch)
}

// Pan desloca o alvo no plano XZ relativo à direção da câmera.
func (c *CameraController) Pan(forwardAmount, rightAmount float32) {
	forward, right := c.groundAxes()
	move := forward.Mul(forwardAmount).Add(right.Mul(rightAmount))
	c.TargetLookAt = fromVec3(toVec3(c.TargetLookAt).Add(move))
}

// groundAxes retorna os vetores Forward e Right projetados no plano XZ (chão).
func (c *CameraController) groundAxes() (mgl32.Vec3, mgl32.Vec3) {
	forward := toVec3(c.TargetLookAt).Sub(toVec3(c.RLCamera.Position))
	forward[1] = 0
	if forward.Len() == 0 {
		forward = mgl32.Vec3{0, 0, -1}
	}
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	return forward, right
}

// HandleInput processa entrada do usuário. Retorna true se houve input de movimento.
func (c *CameraController) HandleInput(dt float32) bool {
	moved := false

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
		moved = true
	}

	// Órbita com botão do meio
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			c.Orbit(-delta.X*c.RotateSpeed*0.005, -delta.Y*c.RotateSpeed*0.005)
			moved = true
		}
	}

	// Órbita pelo teclado
	turn := c.RotateSpeed * dt
	if rl.IsKeyDown(rl.KeyQ) {
		c.Orbit(turn, 0)
		moved = true
	}
	if rl.IsKeyDown(rl.KeyE) {
		c.Orbit(-turn, 0)
		moved = true
	}
	if rl.IsKeyDown(rl.KeyR) {
		c.Orbit(0, -turn)
		moved = true
	}
	if rl.IsKeyDown(rl.KeyF) {
		c.Orbit(0, turn)
		moved = true
	}

	// Velocidade baseada no zoom: quanto mais alto, mais rápido.
	speed := c.MoveSpeed * (c.CurrentZoom / 20.0) * dt

	var fwd, side float32
	if rl.IsKeyDown(rl.KeyW) {
		fwd++
	}
	if rl.IsKeyDown(rl.KeyS) {
		fwd--
	}
	if rl.IsKeyDown(rl.KeyD) {
		side++
	}
	if rl.IsKeyDown(rl.KeyA) {
		side--
	}
	if fwd != 0 || side != 0 {
		n := float32(math.Hypot(float64(fwd), float64(side)))
		c.Pan(fwd/n*speed, side/n*speed)
		moved = true
	}

	return moved
}

// MouseRay retorna o raio de picking que sai do cursor.
func (c *CameraController) MouseRay() rl.Ray {
	return rl.GetMouseRay(rl.GetMousePosition(), c.RLCamera)
}

// Frustum extrai o volume de visão atual para o culling de patches.
func (c *CameraController) Frustum(aspect float32) util.Frustum {
	cam := c.RLCamera
	if c.Mode == ModeOrthographic {
		half := cam.Fovy * 0.5
		view := mgl32.LookAtV(toVec3(cam.Position), toVec3(cam.Target), toVec3(cam.Up))
		proj := mgl32.Ortho(-half*aspect, half*aspect, -half, half, NearPlane, FarPlane)
		return util.NewFrustum(proj.Mul4(view))
	}
	return util.NewFrustumFromCamera(cam.Position, cam.Target, cam.Up, cam.Fovy, aspect, NearPlane, FarPlane)
}

func toVec3(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
