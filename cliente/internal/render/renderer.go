package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"log"
	"unsafe"

	"HexVision/cliente/internal/assets"
	"HexVision/shared/hexmap"
	"HexVision/shared/meshing"
	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cor do terreno quando o mapa não tem textura base.
var untexturedTint = rl.NewColor(120, 180, 95, 255)

// Light é a luz direcional + ambiente aplicada ao terreno.
type Light struct {
	Direction rl.Vector3
	Color     rl.Vector3
	Ambient   rl.Vector3
}

// DefaultLight retorna um "sol" inclinado com ambiente suave.
func DefaultLight() Light {
	return Light{
		Direction: rl.Vector3Normalize(rl.NewVector3(-0.5, -1.0, -0.3)),
		Color:     rl.NewVector3(0.7, 0.7, 0.65),
		Ambient:   rl.NewVector3(0.35, 0.35, 0.4),
	}
}

// Renderer mantém um modelo de GPU por patch do mapa e desenha as sobreposições de debug.
type Renderer struct {
	Models map[int]*PatchModel
	Light  Light

	TerrainShader rl.Shader
	lightDirLoc   int32
	lightColorLoc int32
	ambientLoc    int32

	texture    rl.Texture2D
	hasTexture bool
	textureID  string

	AssetMgr *assets.Manager
	forest   *ForestLayer

	// Estatísticas do último frame
	DrawnPatches int
	DrawnTris    int
}

// NewRenderer cria um novo renderizador. Precisa de uma janela aberta.
func NewRenderer(assetRoot string) (*Renderer, error) {
	mgr, err := assets.NewManager(assetRoot)
	if err != nil {
		return nil, fmt.Errorf("asset manager: %w", err)
	}

	r := &Renderer{
		Models:   make(map[int]*PatchModel),
		Light:    DefaultLight(),
		AssetMgr: mgr,
	}

	if rl.IsWindowReady() {
		// texture0, colDiffuse e mvp são localizados automaticamente pelo Raylib
		r.TerrainShader = rl.LoadShaderFromMemory(terrainVertexShader, terrainFragmentShader)
		r.lightDirLoc = rl.GetShaderLocation(r.TerrainShader, "lightDir")
		r.lightColorLoc = rl.GetShaderLocation(r.TerrainShader, "lightColor")
		r.ambientLoc = rl.GetShaderLocation(r.TerrainShader, "ambient")
	}

	r.forest = NewForestLayer(r.loadTreeModel())

	log.Printf("[Renderer] Inicializado (assets: %s)", assetRoot)
	return r, nil
}

// SetBaseTexture carrega a textura base do mapa. Vazio remove a textura.
// Um identificador configurado mas ausente é erro fatal para quem chama.
func (r *Renderer) SetBaseTexture(id string) error {
	if id == r.textureID && (id == "" || r.hasTexture) {
		return nil
	}
	if r.hasTexture {
		rl.UnloadTexture(r.texture)
		r.hasTexture = false
	}
	r.textureID = ""
	if id == "" {
		return nil
	}

	tex, err := r.loadTexture(id)
	if err != nil {
		return err
	}
	r.texture = tex
	r.hasTexture = true
	r.textureID = id

	// Modelos já carregados passam a usar a textura nova
	for _, pm := range r.Models {
		r.applyMaterial(&pm.Model)
	}
	return nil
}

// Sync sobe os patches novos do mapa e descarrega os que foram substituídos.
// Retorna quantos patches subiram.
func (r *Renderer) Sync(m *hexmap.HexMap) int {
	if m == nil {
		r.Unload()
		return 0
	}

	plan := planSync(r.Models, m.Patches())
	for _, id := range plan.Stale {
		r.unloadModel(id)
	}
	for _, p := range plan.Upload {
		r.upload(p)
	}
	r.forest.Sync(m, plan)

	if len(plan.Upload) > 0 {
		log.Printf("[Renderer] Upload de %d patches (%d descartados)", len(plan.Upload), len(plan.Stale))
	}
	return len(plan.Upload)
}

// upload converte a geometria de um patch em um modelo Raylib GPU.
func (r *Renderer) upload(p *hexmap.Patch) {
	pm := &PatchModel{
		ID:         p.ID,
		Slot:       p.Slot,
		Generation: p.Generation,
		Bounds:     p.Bounds,
		Triangles:  p.TriangleCount(),
	}

	if rl.IsWindowReady() && p.Geometry.VertexCount() > 0 {
		mesh := r.geometryToMesh(p.Geometry)
		rl.UploadMesh(&mesh, false)
		r.freeMeshRAM(&mesh) // Picking acontece na CPU, sobre o HexMap
		pm.Model = rl.LoadModelFromMesh(mesh)
		r.applyMaterial(&pm.Model)
		pm.Active = true
	}

	r.Models[p.ID] = pm
}

func (r *Renderer) applyMaterial(model *rl.Model) {
	if model.MaterialCount == 0 {
		return
	}
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	if r.TerrainShader.ID != 0 {
		materials[0].Shader = r.TerrainShader
	}
	if r.hasTexture {
		rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, r.texture)
	}
}

func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(r.copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(r.copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	if len(data.Indices) > 0 {
		indices := ccwIndices(data.Indices)
		mesh.Indices = (*uint16)(r.copyToC(unsafe.Pointer(&indices[0]), len(indices)*2))
	}
	return mesh
}

func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a memória principal (C) associada a uma malha após o upload para a GPU.
func (r *Renderer) freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
	if mesh.Colors != nil {
		C.free(unsafe.Pointer(mesh.Colors))
		mesh.Colors = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
	if mesh.Indices != nil {
		C.free(unsafe.Pointer(mesh.Indices))
		mesh.Indices = nil
	}
}

// Draw renderiza os patches visíveis (culling por frustum) e as sobreposições ativas.
func (r *Renderer) Draw(m *hexmap.HexMap, frustum util.Frustum) {
	r.DrawnPatches = 0
	r.DrawnTris = 0
	if m == nil {
		return
	}

	if r.TerrainShader.ID != 0 {
		l := r.Light
		rl.SetShaderValue(r.TerrainShader, r.lightDirLoc, []float32{l.Direction.X, l.Direction.Y, l.Direction.Z}, rl.ShaderUniformVec3)
		rl.SetShaderValue(r.TerrainShader, r.lightColorLoc, []float32{l.Color.X, l.Color.Y, l.Color.Z}, rl.ShaderUniformVec3)
		rl.SetShaderValue(r.TerrainShader, r.ambientLoc, []float32{l.Ambient.X, l.Ambient.Y, l.Ambient.Z}, rl.ShaderUniformVec3)
	}

	tint := rl.White
	if !r.hasTexture {
		tint = untexturedTint
	}

	visible := m.VisiblePatches(frustum)

	// PASS 1: TERRENO
	for _, p := range visible {
		pm, ok := r.Models[p.ID]
		if !ok || !pm.Active {
			continue
		}
		if m.Wireframe {
			rl.DrawModelWires(pm.Model, rl.Vector3{}, 1.0, tint)
		} else {
			rl.DrawModel(pm.Model, rl.Vector3{}, 1.0, tint)
		}
		r.DrawnPatches++
		r.DrawnTris += pm.Triangles
	}

	// PASS 2: GRADE
	if m.ShowGrid {
		drawGrid(visible)
	}

	// PASS 3: FLORESTAS
	r.forest.Draw(visible)
}

// DrawLabels escreve coordenadas e/ou alturas sobre os tiles. Chamar fora do BeginMode3D.
func (r *Renderer) DrawLabels(m *hexmap.HexMap, cam rl.Camera3D, frustum util.Frustum) {
	if m == nil || (!m.ShowCoords && !m.ShowHeights) {
		return
	}
	drawLabels(m, cam, frustum)
}

func (r *Renderer) unloadModel(id int) {
	pm, ok := r.Models[id]
	if !ok {
		return
	}
	if pm.Active {
		rl.UnloadModel(pm.Model)
	}
	delete(r.Models, id)
}

// Unload descarrega todos os modelos de patch.
func (r *Renderer) Unload() {
	for id := range r.Models {
		r.unloadModel(id)
	}
	r.forest.Clear()
}

// Close libera modelos, textura e shader.
func (r *Renderer) Close() {
	r.Unload()
	r.forest.Close()
	if r.hasTexture {
		rl.UnloadTexture(r.texture)
		r.hasTexture = false
	}
	if r.TerrainShader.ID != 0 {
		rl.UnloadShader(r.TerrainShader)
	}
}
