package app

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	frustum := a.Cam.Frustum(a.aspect())

	rl.BeginMode3D(a.Cam.RLCamera)
	if a.renderer != nil {
		a.renderer.Draw(a.Map, frustum)

		if a.State == StateEditing {
			a.renderer.DrawSelection(a.hoverTile)
			if a.Tool == ToolElevation && a.hasVertex {
				a.renderer.DrawVertexMarker(a.hoverVertex, a.Map.VertexPickRadius())
			}
		}
	}
	rl.EndMode3D()

	if a.renderer != nil {
		a.renderer.DrawLabels(a.Map, a.Cam.RLCamera, frustum)
	}
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseMenu()
	}

	rl.EndDrawing()
}

func (a *App) aspect() float32 {
	h := rl.GetScreenHeight()
	if h == 0 {
		return 1
	}
	return float32(rl.GetScreenWidth()) / float32(h)
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	a.drawStatus()

	if !a.Config.ShowDebugInfo || a.Map == nil {
		return
	}

	width := int32(340)
	height := int32(250)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(a.Tool.String(), x+200, y+10, 20, rl.Gold)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Mapa
	rl.DrawText("MAPA", x+10, y+45, 12, rl.Gray)
	m := a.Map
	rl.DrawText(fmt.Sprintf("%s: %dx%d (%s)", a.MapName, m.Width, m.Height, m.Style()), x+10, y+60, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Patches: %d/%d | Tris: %d | Sujos: %d",
		a.renderer.DrawnPatches, len(m.Patches()), a.renderer.DrawnTris, m.DirtyCount()), x+10, y+80, 14, rl.LightGray)

	rl.DrawLine(x+10, y+100, x+width-10, y+100, rl.NewColor(100, 100, 100, 100))

	// Inspeção do tile sob o cursor
	rl.DrawText("CURSOR", x+10, y+110, 12, rl.Gray)
	if t := a.hoverTile; t != nil {
		forest := ""
		if t.IsForest {
			forest = " [FLORESTA]"
		}
		rl.DrawText(fmt.Sprintf("Tile %s%s", t.Coord, forest), x+10, y+125, 16, rl.White)
		rl.DrawText(fmt.Sprintf("Alturas: %v", t.Heights()), x+10, y+145, 14, rl.LightGray)
	} else {
		rl.DrawText("-", x+10, y+125, 16, rl.DarkGray)
	}

	rl.DrawLine(x+10, y+165, x+width-10, y+165, rl.NewColor(100, 100, 100, 100))

	// Atalhos Rápidos
	rl.DrawText("CONTROLES", x+10, y+175, 12, rl.Gray)
	rl.DrawText("F1/F2: Ferramenta | Shift: Tile inteiro", x+10, y+190, 14, rl.LightGray)
	rl.DrawText("WASD: Mover | Q/E/R/F: Girar | Scroll: Zoom", x+10, y+207, 14, rl.LightGray)

	wireframeExtra := ""
	if m.Wireframe {
		wireframeExtra = " [WIREFRAME]"
	}
	rl.DrawText(fmt.Sprintf("C/G/H/F4: Debug | F5/F9: Salvar/Carregar%s", wireframeExtra), x+10, y+226, 13, rl.SkyBlue)

	title := "HexVision v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

// drawStatus mostra a última mensagem de status por alguns segundos.
func (a *App) drawStatus() {
	if a.statusMsg == "" || rl.GetTime()-a.statusTime > statusDuration {
		return
	}
	rl.DrawText(a.statusMsg, 10, int32(rl.GetScreenHeight())-30, 18, rl.RayWhite)
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(300)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	menuTitle := "MENU DE PAUSA"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StateEditing
	}
	if a.drawButton(buttonX, panelY+145, buttonWidth, buttonHeight, "SALVAR MAPA (F5)", rl.SkyBlue) {
		a.doSave()
	}
	if a.drawButton(buttonX, panelY+200, buttonWidth, buttonHeight, "SAIR", rl.Red) {
		log.Println("[App] Encerrando aplicação pelo menu.")
		a.quit = true
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor.R = uint8(min(int(drawColor.R)+30, 255))
		drawColor.G = uint8(min(int(drawColor.G)+30, 255))
		drawColor.B = uint8(min(int(drawColor.B)+30, 255))
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}
