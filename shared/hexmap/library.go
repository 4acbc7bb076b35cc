package hexmap

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MapModel é o esquema de um mapa na biblioteca SQLite.
type MapModel struct {
	Name          string `gorm:"primaryKey"`
	Width         int
	Height        int
	BaseTexture   string
	FormatVersion int
	Compressed    bool
	Data          []byte // Arquivo .hexmap completo (cabeçalho + payload + checksum)
	UpdatedAt     time.Time
}

// LibraryMetadata guarda informações globais da biblioteca.
type LibraryMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

var (
	_ MapStore = (*FileStore)(nil)
	_ MapStore = (*LibraryStore)(nil)
)

// LibraryStore guarda vários mapas num único banco SQLite.
type LibraryStore struct {
	DB       *gorm.DB
	Compress bool
}

// OpenLibrary abre (ou cria) o banco da biblioteca e roda as migrações.
func OpenLibrary(path string, compress bool) (*LibraryStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// Logger silencioso: erros voltam como valores.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&MapModel{}, &LibraryMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	if err := db.Save(&LibraryMetadata{Key: "FormatVersion", Value: fmt.Sprint(FormatVersion)}).Error; err != nil {
		return nil, fmt.Errorf("falha ao gravar metadados: %w", err)
	}

	log.Printf("[Persistence] Biblioteca SQLite aberta: %s", path)
	return &LibraryStore{DB: db, Compress: compress}, nil
}

func (s *LibraryStore) SaveMap(rec *MapRecord) error {
	if err := checkMapName(rec.Name); err != nil {
		return err
	}
	data, err := EncodeFile(rec, s.Compress)
	if err != nil {
		return err
	}
	model := MapModel{
		Name:          rec.Name,
		Width:         rec.Width,
		Height:        rec.Height,
		BaseTexture:   rec.BaseTexture,
		FormatVersion: FormatVersion,
		Compressed:    s.Compress,
		Data:          data,
	}
	// Upsert (Cria ou Atualiza)
	if err := s.DB.Save(&model).Error; err != nil {
		log.Printf("[Persistence] ERRO ao salvar mapa %s: %v", rec.Name, err)
		return err
	}
	return nil
}

func (s *LibraryStore) LoadMap(name string) (*MapRecord, error) {
	var model MapModel
	if err := s.DB.First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
		}
		return nil, err
	}
	rec, err := DecodeFile(model.Data)
	if err != nil {
		return nil, fmt.Errorf("mapa %s: %w", name, err)
	}
	return rec, nil
}

func (s *LibraryStore) ListMaps() ([]string, error) {
	var names []string
	if err := s.DB.Model(&MapModel{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// DeleteMap remove um mapa da biblioteca.
func (s *LibraryStore) DeleteMap(name string) error {
	res := s.DB.Delete(&MapModel{}, "name = ?", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	return nil
}

func (s *LibraryStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
