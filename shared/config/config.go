package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"HexVision/shared/hexmap"
	"HexVision/shared/meshing"
)

// Backends de persistência aceitos em StoreBackend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config armazena as configurações do HexVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Mapa
	HexSize     float32 `json:"hex_size"`
	MapWidth    int     `json:"map_width"`
	MapHeight   int     `json:"map_height"`
	PatchSize   int     `json:"patch_size"`
	MeshStyle   string  `json:"mesh_style"`   // "flat" ou "smooth"
	BaseTexture string  `json:"base_texture"` // Vazio = sem textura
	MapName     string  `json:"map_name"`

	// Persistência
	SaveDir      string `json:"save_dir"`
	StoreBackend string `json:"store_backend"` // "file" ou "sqlite"
	LibraryPath  string `json:"library_path"`
	Compress     bool   `json:"compress"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`
	FOV               float32 `json:"fov"`

	// Edição
	EditRepeatDelay float64 `json:"edit_repeat_delay"` // Segundos entre edições com o botão segurado

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
	ShowCoords    bool `json:"show_coords"`
	ShowHeights   bool `json:"show_heights"`
	WireframeMode bool `json:"wireframe_mode"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "HexVision",
		Fullscreen:   false,
		TargetFPS:    60,

		HexSize:     0.5,
		MapWidth:    40,
		MapHeight:   40,
		PatchSize:   10,
		MeshStyle:   meshing.StyleFlat.String(),
		BaseTexture: "",
		MapName:     "mapa",

		SaveDir:      "maps",
		StoreBackend: BackendFile,
		LibraryPath:  "hexvision.db",
		Compress:     true,

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         2.0,
		FOV:               45.0,

		EditRepeatDelay: 0.08,

		ShowDebugInfo: true,
		ShowGrid:      false,
		ShowCoords:    false,
		ShowHeights:   false,
		WireframeMode: false,
	}
}

// Validate verifica se os valores do mapa e da persistência são utilizáveis.
func (c *Config) Validate() error {
	if c.HexSize <= 0 {
		return fmt.Errorf("hex_size deve ser positivo: %v", c.HexSize)
	}
	if c.MapWidth < 1 || c.MapWidth > hexmap.MaxMapSize || c.MapHeight < 1 || c.MapHeight > hexmap.MaxMapSize {
		return fmt.Errorf("tamanho de mapa inválido: %dx%d (máximo %d)", c.MapWidth, c.MapHeight, hexmap.MaxMapSize)
	}
	if c.PatchSize < 1 || c.PatchSize > hexmap.MaxPatchSize {
		return fmt.Errorf("patch_size inválido: %d (máximo %d)", c.PatchSize, hexmap.MaxPatchSize)
	}
	if _, err := meshing.ParseStyle(c.MeshStyle); err != nil {
		return err
	}
	switch c.StoreBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("store_backend desconhecido: %q", c.StoreBackend)
	}
	return nil
}

// MapOptions converte a configuração nas opções de construção do mapa.
func (c *Config) MapOptions() (hexmap.Options, error) {
	style, err := meshing.ParseStyle(c.MeshStyle)
	if err != nil {
		return hexmap.Options{}, err
	}
	return hexmap.Options{
		HexSize:   c.HexSize,
		PatchSize: c.PatchSize,
		Style:     style,
	}, nil
}

// OpenStore abre o backend de persistência configurado.
func (c *Config) OpenStore() (hexmap.MapStore, error) {
	switch c.StoreBackend {
	case BackendSQLite:
		lib, err := hexmap.OpenLibrary(c.LibraryPath, c.Compress)
		if err != nil {
			return nil, err
		}
		return lib, nil
	case BackendFile, "":
		fs, err := hexmap.NewFileStore(c.SaveDir, c.Compress)
		if err != nil {
			return nil, err
		}
		return fs, nil
	default:
		return nil, fmt.Errorf("store_backend desconhecido: %q", c.StoreBackend)
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do arquivo ao lado do executável.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	return LoadFrom(configPath())
}

// LoadFrom carrega as configurações de um arquivo JSON.
// Arquivo ausente ou inválido resulta na configuração padrão.
func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações ao lado do executável.
func (c *Config) Save() error {
	return c.SaveTo(configPath())
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
