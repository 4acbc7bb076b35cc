package app

import (
	"log"

	"HexVision/cliente/internal/camera"
	"HexVision/cliente/internal/render"
	"HexVision/shared/config"
	"HexVision/shared/hexmap"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateEditing AppState = iota // Editando o mapa
	StatePaused                  // Menu de pausa
)

// Tool é a ferramenta ativa do editor.
type Tool int

const (
	ToolElevation Tool = iota // Sobe/desce vértices (ou o tile inteiro com Shift)
	ToolTrees                 // Marca/desmarca floresta
)

func (t Tool) String() string {
	switch t {
	case ToolElevation:
		return "Elevação"
	case ToolTrees:
		return "Árvores"
	}
	return "?"
}

// AssetRoot é o diretório de texturas e modelos relativo ao diretório de trabalho.
const AssetRoot = "assets"

// App é a aplicação principal do HexVision.
type App struct {
	Config *config.Config
	State  AppState
	Tool   Tool

	// Controlador de Câmera
	Cam *camera.CameraController

	// Mapa atual e persistência
	Map     *hexmap.HexMap
	MapName string
	store   hexmap.MapStore
	ids     *hexmap.PatchIDAllocator

	renderer *render.Renderer

	// Hover (atualizado a cada frame a partir do raio do mouse)
	hoverTile   *hexmap.Tile
	hoverVertex rl.Vector3
	hasVertex   bool

	lastEditTime float64 // Timestamp da última edição (repetição ao segurar o botão)

	statusMsg  string
	statusTime float64

	frameCount int
	quit       bool
}

// New cria uma nova instância da aplicação. Não abre janela.
func New(cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		State:   StateEditing,
		Tool:    ToolElevation,
		Cam:     camera.New(),
		MapName: cfg.MapName,
		ids:     hexmap.NewPatchIDAllocator(),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	if err := a.Config.Validate(); err != nil {
		return err
	}

	store, err := a.Config.OpenStore()
	if err != nil {
		return err
	}
	a.store = store

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal
	defer rl.CloseWindow()

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC abre o menu de pausa

	log.Println("[HexVision] Janela inicializada com sucesso")
	log.Printf("[HexVision] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.Cam.MoveSpeed = a.Config.CameraSpeed
	a.Cam.RotateSpeed = a.Config.CameraSensitivity * 6
	a.Cam.ZoomSpeed = a.Config.ZoomSpeed
	a.Cam.Fovy = a.Config.FOV

	a.renderer, err = render.NewRenderer(AssetRoot)
	if err != nil {
		a.shutdown()
		return err
	}

	if err := a.openInitialMap(); err != nil {
		a.shutdown()
		return err
	}

	// Loop principal
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	a.shutdown()
	return nil
}

// update atualiza a lógica do editor a cada frame.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateEditing:
		a.updateCamera()
		a.updateInput()
		a.updateHover(a.Cam.MouseRay())
		a.updateEditing()
	case StatePaused:
		a.updateInput() // Permite detectar ESC para despausar
	}

	// Só os patches sujos são refeitos; o renderer troca os modelos pelo ID novo
	if a.Map != nil && a.Map.DirtyCount() > 0 {
		a.Map.Rebuild(false)
	}
	if a.renderer != nil {
		a.renderer.Sync(a.Map)
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("[App] Erro ao fechar persistência: %v", err)
		}
		a.store = nil
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[HexVision] Erro ao salvar configurações: %v", err)
	}
}
