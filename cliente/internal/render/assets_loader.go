package render

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadTexture resolve o identificador pelo manifesto e carrega a imagem.
func (r *Renderer) loadTexture(id string) (rl.Texture2D, error) {
	path, err := r.AssetMgr.TexturePath(id)
	if err != nil {
		return rl.Texture2D{}, err
	}
	if !rl.IsWindowReady() {
		return rl.Texture2D{}, fmt.Errorf("janela não inicializada ao carregar %s", path)
	}

	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		log.Printf("[Renderer] FALHA ao carregar textura: %s", path)
		return rl.Texture2D{}, fmt.Errorf("falha ao carregar textura %q (%s)", id, path)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	log.Printf("[Renderer] Textura carregada: %s", path)
	return tex, nil
}
