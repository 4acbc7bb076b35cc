package maptool

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"HexVision/shared/hexmap"
)

// Deleter é implementado pelos armazenamentos que sabem remover mapas.
type Deleter interface {
	DeleteMap(name string) error
}

// IsLibraryPath diz se o destino aponta para uma biblioteca SQLite.
func IsLibraryPath(target string) bool {
	switch strings.ToLower(filepath.Ext(target)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// OpenStore abre um diretório de arquivos .hexmap ou uma biblioteca SQLite,
// conforme a extensão do destino.
func OpenStore(target string, compress bool) (hexmap.MapStore, error) {
	if target == "" {
		return nil, errors.New("destino de armazenamento vazio")
	}
	if IsLibraryPath(target) {
		lib, err := hexmap.OpenLibrary(target, compress)
		if err != nil {
			return nil, err
		}
		return lib, nil
	}
	fs, err := hexmap.NewFileStore(target, compress)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// Create gera um mapa plano e o grava no armazenamento.
func Create(store hexmap.MapStore, name string, width, height int, baseTexture string, opts hexmap.Options) (*hexmap.MapRecord, error) {
	m, err := hexmap.New(width, height, baseTexture, opts)
	if err != nil {
		return nil, err
	}
	rec, err := m.Record(name)
	if err != nil {
		return nil, err
	}
	if err := store.SaveMap(rec); err != nil {
		return nil, err
	}
	log.Printf("[mapctl] Mapa %q criado (%dx%d)", name, width, height)
	return rec, nil
}

// Copy copia mapas entre armazenamentos. Sem nomes, copia todos os mapas da origem.
// Retorna os nomes copiados até o primeiro erro.
func Copy(dst, src hexmap.MapStore, names []string) ([]string, error) {
	if len(names) == 0 {
		all, err := src.ListMaps()
		if err != nil {
			return nil, err
		}
		names = all
	}

	copied := make([]string, 0, len(names))
	for _, name := range names {
		rec, err := src.LoadMap(name)
		if err != nil {
			return copied, err
		}
		if err := dst.SaveMap(rec); err != nil {
			return copied, fmt.Errorf("falha ao copiar %q: %w", name, err)
		}
		copied = append(copied, name)
	}
	return copied, nil
}

// Export grava um mapa do armazenamento num arquivo avulso (.hexmap ou .json).
func Export(store hexmap.MapStore, name, path string, compress bool) error {
	rec, err := store.LoadMap(name)
	if err != nil {
		return err
	}
	return hexmap.WriteRecordFile(path, rec, compress)
}

// Import lê um arquivo avulso e o grava no armazenamento. Um nome vazio
// usa o nome guardado no arquivo.
func Import(store hexmap.MapStore, path, name string) (*hexmap.MapRecord, error) {
	rec, err := hexmap.ReadRecordFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}
	if name != "" {
		rec.Name = name
	}
	if rec.Name == "" {
		rec.Name = hexmap.MapNameFromPath(path)
	}
	if err := store.SaveMap(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete remove um mapa se o armazenamento suportar remoção.
func Delete(store hexmap.MapStore, name string) error {
	d, ok := store.(Deleter)
	if !ok {
		return fmt.Errorf("armazenamento %T não remove mapas", store)
	}
	return d.DeleteMap(name)
}
