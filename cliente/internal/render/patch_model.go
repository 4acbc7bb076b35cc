package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PatchModel representa a geometria de um patch já enviada para a GPU.
type PatchModel struct {
	ID         int
	Slot       int
	Generation uint64
	Model      rl.Model
	Bounds     rl.BoundingBox
	Triangles  int
	Active     bool
}
