package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestOrbitOffsetKeepsDistance(t *testing.T) {
	for _, pitch := range []float32{minPitch, -0.5, maxPitch} {
		for _, yaw := range []float32{0, 1, 3} {
			off := orbitOffset(pitch, yaw, 15)
			assert.InDelta(t, 15, rl.Vector3Length(off), 1e-3)
			assert.Greater(t, off.Y, float32(0), "câmera fica acima do alvo")
		}
	}
}

func TestZoomIsClamped(t *testing.T) {
	c := New()
	for i := 0; i < 500; i++ {
		c.Zoom(1)
	}
	assert.Equal(t, c.MinZoom, c.TargetZoom)

	for i := 0; i < 500; i++ {
		c.Zoom(-1)
	}
	assert.Equal(t, c.MaxZoom, c.TargetZoom)
}

func TestOrbitClampsPitch(t *testing.T) {
	c := New()
	c.Orbit(0, 10)
	assert.Equal(t, maxPitch, c.TargetAngleX)
	c.Orbit(0, -10)
	assert.Equal(t, minPitch, c.TargetAngleX)

	yaw := c.TargetAngleY
	c.Orbit(0.5, 0)
	assert.InDelta(t, yaw+0.5, c.TargetAngleY, 1e-6)
}

func TestPanStaysOnGround(t *testing.T) {
	c := New()
	start := c.TargetLookAt
	c.Pan(3, 0)
	moved := rl.Vector3Subtract(c.TargetLookAt, start)
	assert.InDelta(t, 0, moved.Y, 1e-6)
	assert.InDelta(t, 3, rl.Vector3Length(moved), 1e-4)

	// Avançar empurra o alvo para longe da câmera.
	before := rl.Vector3Distance(start, c.RLCamera.Position)
	after := rl.Vector3Distance(c.TargetLookAt, c.RLCamera.Position)
	assert.Greater(t, after, before)

	// Lateral é perpendicular ao avanço.
	c = New()
	c.Pan(0, 2)
	side := rl.Vector3Subtract(c.TargetLookAt, start)
	forward := rl.Vector3Subtract(start, c.RLCamera.Position)
	forward.Y = 0
	assert.InDelta(t, 0, rl.Vector3DotProduct(side, forward), 1e-4)
}

func TestUpdateConvergesToTarget(t *testing.T) {
	c := New()
	c.TargetLookAt = rl.NewVector3(10, 0, -4)
	c.TargetZoom = 8
	for i := 0; i < 600; i++ {
		c.Update(1.0 / 60.0)
	}
	assert.InDelta(t, 10, c.CurrentLookAt.X, 1e-2)
	assert.InDelta(t, -4, c.CurrentLookAt.Z, 1e-2)
	assert.InDelta(t, 8, c.CurrentZoom, 1e-2)
	assert.Equal(t, c.CurrentLookAt, c.RLCamera.Target)
}

func TestFrameAndFrustum(t *testing.T) {
	c := New()
	box := rl.NewBoundingBox(rl.NewVector3(0, 0, 0), rl.NewVector3(30, 2, 20))
	c.Frame(box)

	assert.Equal(t, rl.NewVector3(15, 1, 10), c.CurrentLookAt)
	f := c.Frustum(16.0 / 9.0)
	assert.True(t, f.ContainsPoint(c.CurrentLookAt))
	assert.True(t, f.IntersectsBox(box))

	behind := rl.Vector3Add(c.RLCamera.Position, rl.Vector3Subtract(c.RLCamera.Position, c.CurrentLookAt))
	assert.False(t, f.ContainsPoint(behind))

	c.SetMode(ModeOrthographic)
	f = c.Frustum(16.0 / 9.0)
	assert.True(t, f.ContainsPoint(c.CurrentLookAt))
}
