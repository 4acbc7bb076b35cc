package app

import (
	"log"

	"HexVision/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	// Processa input (WASD, Q/E/R/F, botão do meio, Zoom)
	a.Cam.HandleInput(dt)

	// Atualiza física/interpolação da câmera
	a.Cam.Update(dt)

	// Alternar projeção com P
	if rl.IsKeyPressed(rl.KeyP) {
		if a.Cam.Mode == camera.ModePerspective {
			a.Cam.SetMode(camera.ModeOrthographic)
			log.Println("[Camera] Modo Ortográfico")
		} else {
			a.Cam.SetMode(camera.ModePerspective)
			log.Println("[Camera] Modo Perspectiva")
		}
	}

	// Reenquadrar o mapa com Home
	if rl.IsKeyPressed(rl.KeyHome) && a.Map != nil {
		a.Cam.Frame(a.Map.Bounds())
	}
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// ESC: Alternar Pausa/Menu
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.togglePause()
	}
	if a.State != StateEditing {
		return
	}

	// Ferramentas
	if rl.IsKeyPressed(rl.KeyF1) {
		a.Tool = ToolElevation
		log.Printf("[App] Ferramenta: %s", a.Tool)
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		a.Tool = ToolTrees
		log.Printf("[App] Ferramenta: %s", a.Tool)
	}

	// Sobreposições de debug
	if rl.IsKeyPressed(rl.KeyC) {
		a.Config.ShowCoords = !a.Config.ShowCoords
		a.applyOverlayFlags()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
		a.applyOverlayFlags()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.Config.ShowHeights = !a.Config.ShowHeights
		a.applyOverlayFlags()
	}
	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.WireframeMode = !a.Config.WireframeMode
		a.applyOverlayFlags()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Persistência
	if rl.IsKeyPressed(rl.KeyF5) {
		a.doSave()
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		a.doLoad()
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
}

func (a *App) togglePause() {
	switch a.State {
	case StateEditing:
		a.State = StatePaused
		log.Println("[App] Editor Pausado")
	case StatePaused:
		a.State = StateEditing
		log.Println("[App] Retomando Edição")
	}
}

func (a *App) doSave() {
	if err := a.saveMap(); err != nil {
		a.setStatus("Erro ao salvar: %v", err)
		return
	}
	a.setStatus("Mapa %q salvo", a.MapName)
}

func (a *App) doLoad() {
	if err := a.loadMap(a.MapName); err != nil {
		a.setStatus("Erro ao carregar: %v", err)
		return
	}
	a.setStatus("Mapa %q carregado", a.MapName)
}
