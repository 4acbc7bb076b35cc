package hexmap

import (
	"os"
	"path/filepath"
	"testing"

	"HexVision/shared/meshing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	for _, compress := range []bool{false, true} {
		dir := filepath.Join(t.TempDir(), "maps")
		store, err := NewFileStore(dir, compress)
		require.NoError(t, err)

		rec := sampleRecord(t)
		require.NoError(t, store.SaveMap(rec))
		other := *rec
		other.Name = "atol"
		require.NoError(t, store.SaveMap(&other))

		names, err := store.ListMaps()
		require.NoError(t, err)
		assert.Equal(t, []string{"atol", "ilha"}, names)

		back, err := store.LoadMap("ilha")
		require.NoError(t, err)
		assert.Equal(t, rec, back)

		_, err = store.LoadMap("nada")
		assert.ErrorIs(t, err, ErrMapNotFound)

		bad := *rec
		bad.Name = "../fora"
		assert.Error(t, store.SaveMap(&bad))

		require.NoError(t, store.DeleteMap("atol"))
		assert.ErrorIs(t, store.DeleteMap("atol"), ErrMapNotFound)
		names, err = store.ListMaps()
		require.NoError(t, err)
		assert.Equal(t, []string{"ilha"}, names)
		assert.NoError(t, store.Close())
	}
}

func TestLibraryStore(t *testing.T) {
	lib, err := OpenLibrary(filepath.Join(t.TempDir(), "library.db"), true)
	require.NoError(t, err)
	defer lib.Close()

	rec := sampleRecord(t)
	require.NoError(t, lib.SaveMap(rec))

	// Upsert substitui o mapa existente.
	rec.BaseTexture = "sand"
	require.NoError(t, lib.SaveMap(rec))

	second := *rec
	second.Name = "baia"
	require.NoError(t, lib.SaveMap(&second))

	names, err := lib.ListMaps()
	require.NoError(t, err)
	assert.Equal(t, []string{"baia", "ilha"}, names)

	back, err := lib.LoadMap("ilha")
	require.NoError(t, err)
	assert.Equal(t, rec, back)

	var meta LibraryMetadata
	require.NoError(t, lib.DB.Where(&LibraryMetadata{Key: "FormatVersion"}).First(&meta).Error)
	assert.Equal(t, "1", meta.Value)

	require.NoError(t, lib.DeleteMap("baia"))
	assert.ErrorIs(t, lib.DeleteMap("baia"), ErrMapNotFound)
	_, err = lib.LoadMap("baia")
	assert.ErrorIs(t, err, ErrMapNotFound)
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	m := newTestMap(t, 5, 5, meshing.StyleFlat)
	require.True(t, m.RaiseTile(m.GetTile(2, 2)))
	m.ToggleForest(m.GetTile(0, 4))

	for _, name := range []string{"mapa.hexmap", "mapa.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, m, true))

		loaded, rec, err := Load(path, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "mapa", rec.Name)
		m.Tiles(func(tile *Tile) bool {
			got := loaded.TileAt(tile.Coord)
			assert.Equal(t, tile.Heights(), got.Heights())
			assert.Equal(t, tile.IsForest, got.IsForest)
			return true
		})
	}
}

func TestLoadCorruptLeavesMapUntouched(t *testing.T) {
	dir := t.TempDir()
	m := newTestMap(t, 4, 4, meshing.StyleFlat)
	require.True(t, m.RaiseTile(m.GetTile(1, 1)))
	before, err := m.Record("antes")
	require.NoError(t, err)

	path := filepath.Join(dir, "ruim.hexmap")
	require.NoError(t, os.WriteFile(path, []byte("HEXM\x01\x00lixo-lixo-lixo"), 0644))

	loaded, _, err := Load(path, DefaultOptions())
	assert.ErrorIs(t, err, ErrCorruptRecord)
	assert.Nil(t, loaded)

	after, err := m.Record("antes")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, _, err = Load(filepath.Join(dir, "nao-existe.hexmap"), DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
