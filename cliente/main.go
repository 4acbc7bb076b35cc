package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"HexVision/cliente/internal/app"
	"HexVision/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	mapName := flag.String("map", "", "Nome do mapa a abrir (criado se não existir)")
	mapW := flag.Int("map-width", 0, "Colunas de um mapa novo")
	mapH := flag.Int("map-height", 0, "Linhas de um mapa novo")
	style := flag.String("style", "", "Estilo de malha: flat ou smooth")
	backend := flag.String("backend", "", "Persistência: file ou sqlite")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_hv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO HEXVISION ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║           HexVision v0.1.0           ║")
	log.Println("║    Editor de terreno hexagonal 3D    ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *mapName != "" {
		cfg.MapName = *mapName
	}
	if *mapW > 0 {
		cfg.MapWidth = *mapW
	}
	if *mapH > 0 {
		cfg.MapHeight = *mapH
	}
	if *style != "" {
		cfg.MeshStyle = *style
	}
	if *backend != "" {
		cfg.StoreBackend = *backend
	}

	// Criar e rodar a aplicação
	if err := app.New(cfg).Run(); err != nil {
		log.Fatalf("[HexVision] Erro fatal: %v", err)
	}
}
