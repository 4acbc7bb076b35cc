package render

import (
	"fmt"

	"HexVision/shared/hexmap"
	"HexVision/shared/meshing"
	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxLabels limita o texto por frame quando a câmera está longe.
const maxLabels = 2000

var (
	gridColor      = rl.NewColor(meshing.GridColor[0], meshing.GridColor[1], meshing.GridColor[2], meshing.GridColor[3])
	selectionColor = rl.Yellow
	vertexColor    = rl.Orange
)

// drawGrid desenha a line list de contorno dos patches visíveis.
func drawGrid(visible []*hexmap.Patch) {
	for _, p := range visible {
		for i := 0; i < p.Grid.LineCount(); i++ {
			a, b := p.Grid.Line(i)
			rl.DrawLine3D(a, b, gridColor)
		}
	}
}

// drawLabels projeta coordenadas e alturas dos tiles visíveis na tela.
func drawLabels(m *hexmap.HexMap, cam rl.Camera3D, frustum util.Frustum) {
	count := 0
	for _, p := range m.VisiblePatches(frustum) {
		for _, idx := range p.Tiles {
			if count >= maxLabels {
				return
			}
			t := m.TileByIndex(idx)
			center := t.Geometry.Points[hexmap.Center]
			if !frustum.ContainsPoint(center) {
				continue
			}
			count++

			if m.ShowCoords {
				drawLabel(t.Coord.String(), center, cam, 10, rl.White)
			}
			if m.ShowHeights {
				mids := t.Geometry.MidPoints()
				for i, pt := range hexmap.BorderOrder {
					drawLabel(fmt.Sprint(t.Geometry.Steps[pt]), mids[i], cam, 8, rl.SkyBlue)
				}
				if !m.ShowCoords {
					drawLabel(fmt.Sprint(t.Geometry.Steps[hexmap.Center]), center, cam, 8, rl.SkyBlue)
				}
			}
		}
	}
}

func drawLabel(text string, world rl.Vector3, cam rl.Camera3D, size int32, color rl.Color) {
	screen := rl.GetWorldToScreen(world, cam)
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(screen.X)-w/2, int32(screen.Y)-size/2, size, color)
}

// DrawSelection contorna o tile selecionado.
func (r *Renderer) DrawSelection(t *hexmap.Tile) {
	if t == nil {
		return
	}
	lift := rl.NewVector3(0, meshing.GridLift*2, 0)
	border := t.Geometry.Border()
	for i := range border {
		a := rl.Vector3Add(border[i], lift)
		b := rl.Vector3Add(border[(i+1)%len(border)], lift)
		rl.DrawLine3D(a, b, selectionColor)
	}
}

// DrawVertexMarker desenha a esfera de picking sobre o vértice sob o cursor.
func (r *Renderer) DrawVertexMarker(pos rl.Vector3, radius float32) {
	rl.DrawSphereWires(pos, radius, 6, 8, vertexColor)
}
