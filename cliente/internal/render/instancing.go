package render

import (
	"log"
	"unsafe"

	"HexVision/shared/hexmap"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	trunkColor   = rl.NewColor(110, 75, 40, 255)
	foliageColor = rl.NewColor(30, 110, 45, 255)
)

// ForestBatch agrupa os marcadores de floresta de um patch.
type ForestBatch struct {
	PatchID    int
	Positions  []rl.Vector3
	Transforms []rl.Matrix // Escala + translação, usado quando há um modelo de árvore
	Scale      float32
}

// ForestLayer mantém um lote por patch e desenha árvores sobre os tiles com floresta.
// Sem modelo carregado, cada árvore é um tronco + cone.
type ForestLayer struct {
	Batches map[int]*ForestBatch

	model    rl.Model
	mesh     rl.Mesh
	material rl.Material
	hasModel bool
}

// NewForestLayer cria a camada. model pode ter MeshCount == 0 (sem modelo).
func NewForestLayer(model rl.Model) *ForestLayer {
	f := &ForestLayer{Batches: make(map[int]*ForestBatch)}
	if model.MeshCount > 0 && model.MaterialCount > 0 {
		f.model = model
		f.mesh = unsafe.Slice(model.Meshes, model.MeshCount)[0]
		f.material = unsafe.Slice(model.Materials, model.MaterialCount)[0]
		f.hasModel = true
	}
	return f
}

// Sync acompanha o plano de upload do renderizador: lotes descartados saem, patches novos são lidos.
func (f *ForestLayer) Sync(m *hexmap.HexMap, plan syncPlan) {
	for _, id := range plan.Stale {
		delete(f.Batches, id)
	}
	for _, p := range plan.Upload {
		f.Batches[p.ID] = buildForestBatch(m, p)
	}
}

// buildForestBatch posiciona uma árvore no centro de cada tile com floresta do patch.
func buildForestBatch(m *hexmap.HexMap, p *hexmap.Patch) *ForestBatch {
	b := &ForestBatch{PatchID: p.ID, Scale: m.HexSize}
	for _, idx := range p.Tiles {
		t := m.TileByIndex(idx)
		if t == nil || !t.IsForest {
			continue
		}
		pos := t.Geometry.Points[hexmap.Center]
		b.Positions = append(b.Positions, pos)

		// Mesma ordem do DrawModelEx: escala local -> translada para o mundo
		scaleMat := rl.MatrixScale(b.Scale, b.Scale, b.Scale)
		transMat := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
		b.Transforms = append(b.Transforms, rl.MatrixMultiply(scaleMat, transMat))
	}
	return b
}

// Count retorna o total de árvores em todos os lotes.
func (f *ForestLayer) Count() int {
	n := 0
	for _, b := range f.Batches {
		n += len(b.Positions)
	}
	return n
}

// Draw desenha as árvores dos patches visíveis.
func (f *ForestLayer) Draw(visible []*hexmap.Patch) {
	for _, p := range visible {
		b, ok := f.Batches[p.ID]
		if !ok || len(b.Positions) == 0 {
			continue
		}
		if f.hasModel {
			for _, m := range b.Transforms {
				rl.DrawMesh(f.mesh, f.material, m)
			}
			continue
		}
		for _, pos := range b.Positions {
			drawTreeMarker(pos, b.Scale)
		}
	}
}

func drawTreeMarker(pos rl.Vector3, size float32) {
	trunkHeight := size * 0.4
	rl.DrawCylinder(pos, size*0.06, size*0.06, trunkHeight, 6, trunkColor)
	top := rl.NewVector3(pos.X, pos.Y+trunkHeight, pos.Z)
	rl.DrawCylinder(top, 0, size*0.35, size*0.9, 8, foliageColor)
}

// Clear remove todos os lotes (troca de mapa).
func (f *ForestLayer) Clear() {
	f.Batches = make(map[int]*ForestBatch)
}

// Close libera o modelo de árvore.
func (f *ForestLayer) Close() {
	f.Clear()
	if f.hasModel {
		rl.UnloadModel(f.model)
		f.hasModel = false
	}
}

// loadTreeModel carrega o modelo nomeado "tree" se o manifesto o declarar.
func (r *Renderer) loadTreeModel() rl.Model {
	if r.AssetMgr == nil || !rl.IsWindowReady() {
		return rl.Model{}
	}
	path, ok := r.AssetMgr.ModelPath("tree")
	if !ok {
		return rl.Model{}
	}
	model := rl.LoadModel(path)
	if model.MeshCount > 0 {
		log.Printf("[Renderer] Modelo carregado: %s (Key: tree)", path)
	} else {
		log.Printf("[Renderer] FALHA ao carregar modelo: %s", path)
	}
	return model
}
