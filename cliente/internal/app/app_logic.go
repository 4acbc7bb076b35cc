package app

import (
	"errors"
	"fmt"
	"log"

	"HexVision/shared/hexmap"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// statusDuration é quanto tempo (s) a mensagem de status fica no HUD.
const statusDuration = 4.0

// openInitialMap carrega o mapa configurado ou cria um novo plano se ele não existir.
func (a *App) openInitialMap() error {
	err := a.loadMap(a.MapName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, hexmap.ErrMapNotFound) {
		log.Printf("[App] Mapa %q inválido, criando um novo: %v", a.MapName, err)
	}
	return a.newMap()
}

// newMap cria um mapa plano com as dimensões configuradas.
func (a *App) newMap() error {
	opts, err := a.mapOptions()
	if err != nil {
		return err
	}
	m, err := hexmap.New(a.Config.MapWidth, a.Config.MapHeight, a.Config.BaseTexture, opts)
	if err != nil {
		return err
	}
	if err := a.setMap(m); err != nil {
		return err
	}
	log.Printf("[App] Novo mapa %q (%dx%d)", a.MapName, m.Width, m.Height)
	return nil
}

func (a *App) mapOptions() (hexmap.Options, error) {
	opts, err := a.Config.MapOptions()
	if err != nil {
		return opts, err
	}
	opts.IDs = a.ids // IDs de patch nunca se repetem entre mapas
	return opts, nil
}

// setMap troca o mapa atual. A textura base precisa existir antes da troca.
func (a *App) setMap(m *hexmap.HexMap) error {
	if a.renderer != nil {
		if err := a.renderer.SetBaseTexture(m.BaseTexture); err != nil {
			// Mantém o mapa atual com a sua textura
			if a.Map != nil {
				_ = a.renderer.SetBaseTexture(a.Map.BaseTexture)
			}
			return err
		}
	}

	a.Map = m
	a.applyOverlayFlags()
	a.hoverTile = nil
	a.hasVertex = false
	a.Cam.Frame(m.Bounds())
	return nil
}

// applyOverlayFlags copia as sobreposições de debug da configuração para o mapa.
func (a *App) applyOverlayFlags() {
	if a.Map == nil {
		return
	}
	a.Map.ShowGrid = a.Config.ShowGrid
	a.Map.ShowCoords = a.Config.ShowCoords
	a.Map.ShowHeights = a.Config.ShowHeights
	a.Map.Wireframe = a.Config.WireframeMode
}

// saveMap grava o mapa atual no backend configurado.
func (a *App) saveMap() error {
	if a.Map == nil || a.store == nil {
		return errors.New("nada para salvar")
	}
	rec, err := a.Map.Record(a.MapName)
	if err != nil {
		return err
	}
	if err := a.store.SaveMap(rec); err != nil {
		return fmt.Errorf("falha ao salvar %q: %w", a.MapName, err)
	}
	log.Printf("[App] Mapa %q salvo (%d tiles)", a.MapName, len(rec.Hexes))
	return nil
}

// loadMap lê o mapa pelo nome. Em caso de erro o mapa atual continua intacto.
func (a *App) loadMap(name string) error {
	if a.store == nil {
		return errors.New("persistência não inicializada")
	}
	rec, err := a.store.LoadMap(name)
	if err != nil {
		return err
	}
	opts, err := a.mapOptions()
	if err != nil {
		return err
	}
	m, err := hexmap.NewFromRecord(rec, opts)
	if err != nil {
		return fmt.Errorf("mapa %q: %w", name, err)
	}
	if err := a.setMap(m); err != nil {
		return err
	}
	a.MapName = name
	log.Printf("[App] Mapa %q carregado (%dx%d)", name, m.Width, m.Height)
	return nil
}

// updateHover atualiza o tile e o vértice sob o cursor.
func (a *App) updateHover(ray rl.Ray) {
	a.hoverTile = nil
	a.hasVertex = false
	if a.Map == nil {
		return
	}
	a.hoverTile = a.Map.PickTile(ray)
	if a.Tool == ToolElevation {
		a.hoverVertex, a.hasVertex = a.Map.PickVertex(ray)
	}
}

// applyTool aplica a ferramenta ativa no ponto apontado pelo raio.
// primary = botão esquerdo (subir / plantar), senão botão direito (descer / remover).
// wholeTile move o tile inteiro na ferramenta de elevação.
func (a *App) applyTool(ray rl.Ray, primary, wholeTile bool) bool {
	if a.Map == nil {
		return false
	}

	switch a.Tool {
	case ToolElevation:
		if wholeTile {
			t := a.Map.PickTile(ray)
			if primary {
				return a.Map.RaiseTile(t)
			}
			return a.Map.LowerTile(t)
		}
		pos, ok := a.Map.PickVertex(ray)
		if !ok {
			return false
		}
		if primary {
			return a.Map.RaiseVertex(pos)
		}
		return a.Map.LowerVertex(pos)

	case ToolTrees:
		t := a.Map.PickTile(ray)
		if t == nil || t.IsForest == primary {
			return false
		}
		a.Map.SetForest(t, primary)
		return true
	}
	return false
}

// shouldRepeat decide se um botão segurado dispara outra edição.
func shouldRepeat(pressed, down bool, now, last, delay float64) bool {
	return pressed || (down && now-last > delay)
}

// updateEditing lê os botões do mouse e aplica a ferramenta com repetição.
func (a *App) updateEditing() {
	now := rl.GetTime()
	wholeTile := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	primary := shouldRepeat(rl.IsMouseButtonPressed(rl.MouseLeftButton), rl.IsMouseButtonDown(rl.MouseLeftButton),
		now, a.lastEditTime, a.Config.EditRepeatDelay)
	secondary := shouldRepeat(rl.IsMouseButtonPressed(rl.MouseRightButton), rl.IsMouseButtonDown(rl.MouseRightButton),
		now, a.lastEditTime, a.Config.EditRepeatDelay)

	if !primary && !secondary {
		return
	}
	a.lastEditTime = now
	a.applyTool(a.Cam.MouseRay(), primary, wholeTile)
}

// setStatus mostra uma mensagem temporária no HUD.
func (a *App) setStatus(format string, args ...any) {
	a.statusMsg = fmt.Sprintf(format, args...)
	a.statusTime = rl.GetTime()
	log.Printf("[App] %s", a.statusMsg)
}
