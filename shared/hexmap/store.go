package hexmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// FileExt é a extensão dos mapas no formato binário.
const FileExt = ".hexmap"

// MapStore guarda e recupera MapRecords por nome.
type MapStore interface {
	SaveMap(rec *MapRecord) error
	LoadMap(name string) (*MapRecord, error)
	ListMaps() ([]string, error)
	Close() error
}

// FileStore guarda um arquivo .hexmap por mapa num diretório.
type FileStore struct {
	Dir      string
	Compress bool
}

// NewFileStore cria o diretório se necessário.
func NewFileStore(dir string, compress bool) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de mapas: %w", err)
	}
	return &FileStore{Dir: dir, Compress: compress}, nil
}

func (s *FileStore) path(name string) (string, error) {
	if err := checkMapName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, name+FileExt), nil
}

func (s *FileStore) SaveMap(rec *MapRecord) error {
	p, err := s.path(rec.Name)
	if err != nil {
		return err
	}
	return WriteRecordFile(p, rec, s.Compress)
}

func (s *FileStore) LoadMap(name string) (*MapRecord, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	rec, err := ReadRecordFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	return rec, err
}

func (s *FileStore) ListMaps() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != FileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), FileExt))
	}
	sort.Strings(names)
	return names, nil
}

// DeleteMap remove o arquivo do mapa.
func (s *FileStore) DeleteMap(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMapNotFound, name)
		}
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func checkMapName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("nome de mapa inválido: %q", name)
	}
	return nil
}

// WriteRecordFile grava o registro em path. Extensão .json grava o formato JSON;
// qualquer outra grava o formato binário. A escrita passa por um arquivo temporário.
func WriteRecordFile(path string, rec *MapRecord, compress bool) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.Marshal(rec)
	} else {
		data, err = EncodeFile(rec, compress)
	}
	if err != nil {
		return fmt.Errorf("falha ao codificar mapa %q: %w", rec.Name, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	log.Printf("[Persistence] Mapa %q salvo em %s (%s)", rec.Name, path, humanize.Bytes(uint64(len(data))))
	return nil
}

// ReadRecordFile lê e valida um registro gravado por WriteRecordFile.
func ReadRecordFile(path string) (*MapRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		rec := &MapRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		return rec, nil
	}
	return DecodeFile(data)
}

// MapNameFromPath deriva o nome do mapa a partir do nome do arquivo.
func MapNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Save grava o mapa em path, usando o nome do arquivo como nome do mapa.
func Save(path string, m *HexMap, compress bool) error {
	rec, err := m.Record(MapNameFromPath(path))
	if err != nil {
		return err
	}
	return WriteRecordFile(path, rec, compress)
}

// Load lê path e constrói um mapa novo. Em caso de erro nenhum mapa existente é tocado.
func Load(path string, opts Options) (*HexMap, *MapRecord, error) {
	rec, err := ReadRecordFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao carregar %s: %w", path, err)
	}
	m, err := NewFromRecord(rec, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao carregar %s: %w", path, err)
	}
	return m, rec, nil
}
