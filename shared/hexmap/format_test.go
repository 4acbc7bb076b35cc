package hexmap

import (
	"bytes"
	"encoding/binary"
	"testing"

	"HexVision/shared/meshing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func sampleRecord(t *testing.T) *MapRecord {
	t.Helper()
	m := newTestMap(t, 8, 7, meshing.StyleFlat)
	require.True(t, m.RaiseTile(m.GetTile(4, 4)))
	m.SetForest(m.GetTile(1, 6), true)
	rec, err := m.Record("ilha")
	require.NoError(t, err)
	return rec
}

func TestEncodeFileLayout(t *testing.T) {
	rec := &MapRecord{
		Name:        "a",
		Width:       1,
		Height:      1,
		BaseTexture: "t",
		Hexes:       []HexRecord{{Pos: PackPosition(0, 0), Heights: 35887507618889599, Forest: 1}},
	}
	data, err := EncodeFile(rec, false)
	require.NoError(t, err)

	want := []byte{'H', 'E', 'X', 'M', FormatVersion, 0}
	want = append(want,
		0x0a, 1, 'a', // 1: nome
		0x10, 1, // 2: largura
		0x18, 1, // 3: altura
		0x22, 1, 't', // 4: textura
		0x2a, HexRecordSize, // 5: tiles
		0, 0, // posição
		0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0, // alturas
		1, // floresta
	)
	require.Equal(t, want, data[:len(data)-8])

	msg := MarshalRecord(rec)
	assert.Equal(t, want[6:], msg)

	back, err := DecodeFile(data)
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestEncodeFileRoundTrip(t *testing.T) {
	rec := sampleRecord(t)
	for _, compress := range []bool{false, true} {
		data, err := EncodeFile(rec, compress)
		require.NoError(t, err)
		if compress {
			assert.Equal(t, byte(FlagZstd), data[5])
		}

		back, err := DecodeFile(data)
		require.NoError(t, err)
		assert.Equal(t, rec, back)

		var buf bytes.Buffer
		_, err = WriteRecord(&buf, rec, compress)
		require.NoError(t, err)
		back, err = ReadRecord(&buf)
		require.NoError(t, err)
		assert.Equal(t, rec, back)
	}
}

func TestEncodeFileIsStable(t *testing.T) {
	rec := sampleRecord(t)
	a, err := EncodeFile(rec, false)
	require.NoError(t, err)
	b, err := EncodeFile(rec, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeFileCorrupt(t *testing.T) {
	good, err := EncodeFile(sampleRecord(t), false)
	require.NoError(t, err)
	zipped, err := EncodeFile(sampleRecord(t), true)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		src    []byte
	}{
		{"vazio", func(b []byte) []byte { return nil }, good},
		{"truncado", func(b []byte) []byte { return b[:10] }, good},
		{"assinatura", func(b []byte) []byte { b[0] = 'X'; return b }, good},
		{"versão", func(b []byte) []byte { b[4] = 9; return b }, good},
		{"flags", func(b []byte) []byte { b[5] = 0x80; return b }, good},
		{"payload", func(b []byte) []byte { b[40] ^= 0xff; return b }, good},
		{"checksum", func(b []byte) []byte { b[len(b)-1] ^= 1; return b }, good},
		{"zstd", func(b []byte) []byte { b[len(b)-9] ^= 0xff; return b }, zipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(append([]byte(nil), tt.src...))
			_, err := DecodeFile(data)
			assert.ErrorIs(t, err, ErrCorruptRecord)
		})
	}
}

func TestUnmarshalRecordErrors(t *testing.T) {
	// Tamanho do bloco de tiles não múltiplo de 11.
	var msg []byte
	msg = protowire.AppendTag(msg, fieldTiles, protowire.BytesType)
	msg = protowire.AppendBytes(msg, make([]byte, 12))
	_, err := UnmarshalRecord(msg)
	assert.ErrorIs(t, err, ErrCorruptRecord)

	// Varint truncado.
	_, err = UnmarshalRecord([]byte{0x10, 0x80})
	assert.ErrorIs(t, err, ErrCorruptRecord)

	// Dimensão acima do limite.
	msg = protowire.AppendTag(nil, fieldWidth, protowire.VarintType)
	msg = protowire.AppendVarint(msg, 1000)
	_, err = UnmarshalRecord(msg)
	assert.ErrorIs(t, err, ErrCorruptRecord)

	// Campos desconhecidos são ignorados.
	msg = protowire.AppendTag(nil, 9, protowire.Fixed32Type)
	msg = binary.LittleEndian.AppendUint32(msg, 7)
	msg = protowire.AppendTag(msg, fieldName, protowire.BytesType)
	msg = protowire.AppendString(msg, "ok")
	rec, err := UnmarshalRecord(msg)
	require.NoError(t, err)
	assert.Equal(t, "ok", rec.Name)
}
