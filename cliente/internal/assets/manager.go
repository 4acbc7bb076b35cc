package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingResource indica que um recurso configurado não existe no disco.
var ErrMissingResource = errors.New("recurso não encontrado")

// --- Estruturas JSON ---

// TextureEntry conecta identificadores de textura do mapa a um arquivo de imagem.
type TextureEntry struct {
	File    string   `json:"file"`
	Tokens  []string `json:"tokens"`
	Comment string   `json:"comment,omitempty"`
}

// TextureConfig é o root do textures.json
type TextureConfig struct {
	Textures []TextureEntry `json:"textures"`
}

// NamedModelsConfig é o root do models.json
type NamedModelsConfig struct {
	NamedModels map[string]string `json:"named_models"`
}

// --- Manager ---

// Manager resolve identificadores (base texture do mapa, modelos do editor) para arquivos em disco.
//
// Layout esperado:
//
//	<root>/config/textures.json
//	<root>/config/models.json
//	<root>/textures/...
//	<root>/models/...
//
// Os dois JSONs são opcionais; sem manifesto, "grass" resolve para <root>/textures/grass.png.
type Manager struct {
	root        string
	textures    []TextureEntry
	namedModels map[string]string
}

// NewManager cria e carrega o gerenciador de assets a partir dos JSONs configurados
func NewManager(root string) (*Manager, error) {
	m := &Manager{root: root, namedModels: make(map[string]string)}

	var texConf TextureConfig
	if err := readOptionalJSON(filepath.Join(root, "config", "textures.json"), &texConf); err != nil {
		return nil, err
	}
	m.textures = texConf.Textures

	var namedConf NamedModelsConfig
	if err := readOptionalJSON(filepath.Join(root, "config", "models.json"), &namedConf); err != nil {
		return nil, err
	}
	if namedConf.NamedModels != nil {
		m.namedModels = namedConf.NamedModels
	}

	return m, nil
}

// readOptionalJSON decodifica path em v; arquivo ausente não é erro.
func readOptionalJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("falha ao ler %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("falha ao parsear %s: %w", filepath.Base(path), err)
	}
	return nil
}

// --- Wildcard Matching ---

// matchToken compara um token de consulta contra um padrão com suporte a wildcards (*)
// Formato do token: segmentos separados por ':' (ex.: "TERRAIN:GRASS:LIGHT").
// O wildcard '*' em qualquer segmento aceita qualquer valor
func matchToken(pattern, query string) bool {
	// Se o padrão for apenas "*", aceita tudo
	if pattern == "*" {
		return true
	}

	patParts := strings.Split(pattern, ":")
	queryParts := strings.Split(query, ":")

	// Se os tamanhos divergem, não pode casar
	if len(patParts) != len(queryParts) {
		return false
	}

	for i := range patParts {
		if patParts[i] == "*" {
			continue
		}
		if !strings.EqualFold(patParts[i], queryParts[i]) {
			return false
		}
	}
	return true
}

// specificityScore calcula a "especificidade" de um padrão
// Quanto mais segmentos NÃO são wildcard, mais específico é
func specificityScore(pattern string) int {
	if pattern == "*" {
		return 0
	}
	score := 0
	for _, p := range strings.Split(pattern, ":") {
		if p != "*" {
			score++
		}
	}
	return score
}

// --- Consultas Públicas ---

// GetTexture retorna a entrada mais específica para um identificador de textura.
// Retorna nil se nenhum padrão casar
func (m *Manager) GetTexture(id string) *TextureEntry {
	var bestMatch *TextureEntry
	bestScore := -1

	for i := range m.textures {
		entry := &m.textures[i]
		for _, pat := range entry.Tokens {
			if matchToken(pat, id) {
				if score := specificityScore(pat); score > bestScore {
					bestScore = score
					bestMatch = entry
				}
			}
		}
	}
	return bestMatch
}

// TexturePath resolve o identificador para um arquivo existente.
// Um identificador configurado mas ausente no disco é erro (ErrMissingResource).
func (m *Manager) TexturePath(id string) (string, error) {
	file := id + ".png"
	if filepath.Ext(id) != "" {
		file = id
	}
	if entry := m.GetTexture(id); entry != nil {
		file = entry.File
	}

	path := filepath.Join(m.root, "textures", file)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: textura %q (%s)", ErrMissingResource, id, path)
	}
	return path, nil
}

// ModelPath retorna o arquivo de um modelo nomeado, se houver e existir.
func (m *Manager) ModelPath(name string) (string, bool) {
	file, ok := m.namedModels[name]
	if !ok || file == "" {
		return "", false
	}
	path := filepath.Join(m.root, "models", file)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// GetNamedModels retorna o mapa de modelos nomeados
func (m *Manager) GetNamedModels() map[string]string {
	return m.namedModels
}
