package hexmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"google.golang.org/protobuf/encoding/protowire"
)

// Formato binário .hexmap:
//
//	"HEXM" | u8 versão | u8 flags | payload | u64 LE xxhash64(mensagem)
//
// A mensagem usa o wire format do protobuf (campos 1 nome, 2 largura, 3 altura,
// 4 textura base, 5 tiles). Os tiles são registros de 11 bytes little endian
// (u16 posição, u64 alturas, u8 floresta) concatenados. Com a flag FlagZstd o
// payload é a mensagem comprimida; o checksum é sempre da mensagem descomprimida.
const (
	FormatVersion = 1

	FlagZstd = 1 << 0

	headerSize   = 6
	checksumSize = 8

	// maxMessageSize limita a descompressão: o maior mapa possível mais folga para nomes.
	maxMessageSize = MaxMapSize*MaxMapSize*HexRecordSize + 1<<20
)

var magic = [4]byte{'H', 'E', 'X', 'M'}

const (
	fieldName        protowire.Number = 1
	fieldWidth       protowire.Number = 2
	fieldHeight      protowire.Number = 3
	fieldBaseTexture protowire.Number = 4
	fieldTiles       protowire.Number = 5
)

// MarshalRecord codifica o registro como mensagem protobuf.
func MarshalRecord(rec *MapRecord) []byte {
	tiles := make([]byte, len(rec.Hexes)*HexRecordSize)
	for i, h := range rec.Hexes {
		b := tiles[i*HexRecordSize:]
		binary.LittleEndian.PutUint16(b[0:2], h.Pos)
		binary.LittleEndian.PutUint64(b[2:10], h.Heights)
		b[10] = h.Forest
	}

	var msg []byte
	msg = protowire.AppendTag(msg, fieldName, protowire.BytesType)
	msg = protowire.AppendString(msg, rec.Name)
	msg = protowire.AppendTag(msg, fieldWidth, protowire.VarintType)
	msg = protowire.AppendVarint(msg, uint64(rec.Width))
	msg = protowire.AppendTag(msg, fieldHeight, protowire.VarintType)
	msg = protowire.AppendVarint(msg, uint64(rec.Height))
	msg = protowire.AppendTag(msg, fieldBaseTexture, protowire.BytesType)
	msg = protowire.AppendString(msg, rec.BaseTexture)
	msg = protowire.AppendTag(msg, fieldTiles, protowire.BytesType)
	msg = protowire.AppendBytes(msg, tiles)
	return msg
}

// UnmarshalRecord decodifica a mensagem protobuf. Campos desconhecidos são ignorados.
// O resultado ainda precisa de Validate.
func UnmarshalRecord(msg []byte) (*MapRecord, error) {
	rec := &MapRecord{}
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, protowire.ParseError(n))
		}
		msg = msg[n:]

		switch {
		case num == fieldName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(msg)
			if n < 0 {
				return nil, fmt.Errorf("%w: nome: %v", ErrCorruptRecord, protowire.ParseError(n))
			}
			rec.Name = v
			msg = msg[n:]
		case num == fieldBaseTexture && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(msg)
			if n < 0 {
				return nil, fmt.Errorf("%w: textura: %v", ErrCorruptRecord, protowire.ParseError(n))
			}
			rec.BaseTexture = v
			msg = msg[n:]
		case (num == fieldWidth || num == fieldHeight) && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return nil, fmt.Errorf("%w: dimensão: %v", ErrCorruptRecord, protowire.ParseError(n))
			}
			if v > MaxMapSize {
				return nil, fmt.Errorf("%w: dimensão %d", ErrCorruptRecord, v)
			}
			if num == fieldWidth {
				rec.Width = int(v)
			} else {
				rec.Height = int(v)
			}
			msg = msg[n:]
		case num == fieldTiles && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(msg)
			if n < 0 {
				return nil, fmt.Errorf("%w: tiles: %v", ErrCorruptRecord, protowire.ParseError(n))
			}
			if len(v)%HexRecordSize != 0 {
				return nil, fmt.Errorf("%w: bloco de tiles com %d bytes", ErrCorruptRecord, len(v))
			}
			rec.Hexes = make([]HexRecord, len(v)/HexRecordSize)
			for i := range rec.Hexes {
				b := v[i*HexRecordSize:]
				rec.Hexes[i] = HexRecord{
					Pos:     binary.LittleEndian.Uint16(b[0:2]),
					Heights: binary.LittleEndian.Uint64(b[2:10]),
					Forest:  b[10],
				}
			}
			msg = msg[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return nil, fmt.Errorf("%w: campo %d: %v", ErrCorruptRecord, num, protowire.ParseError(n))
			}
			msg = msg[n:]
		}
	}
	return rec, nil
}

// EncodeFile gera o conteúdo completo de um arquivo .hexmap.
func EncodeFile(rec *MapRecord, compress bool) ([]byte, error) {
	msg := MarshalRecord(rec)

	var flags byte
	payload := msg
	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("falha ao criar compressor: %w", err)
		}
		payload = enc.EncodeAll(msg, nil)
		enc.Close()
		flags |= FlagZstd
	}

	out := make([]byte, 0, headerSize+len(payload)+checksumSize)
	out = append(out, magic[:]...)
	out = append(out, FormatVersion, flags)
	out = append(out, payload...)
	out = binary.LittleEndian.AppendUint64(out, xxhash.Sum64(msg))
	return out, nil
}

// DecodeFile valida cabeçalho, descomprime, confere o checksum e decodifica o registro.
func DecodeFile(data []byte) (*MapRecord, error) {
	if len(data) < headerSize+checksumSize {
		return nil, fmt.Errorf("%w: arquivo truncado (%d bytes)", ErrCorruptRecord, len(data))
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return nil, fmt.Errorf("%w: assinatura inválida", ErrCorruptRecord)
	}
	if data[4] != FormatVersion {
		return nil, fmt.Errorf("%w: versão %d não suportada", ErrCorruptRecord, data[4])
	}
	flags := data[5]
	if flags&^FlagZstd != 0 {
		return nil, fmt.Errorf("%w: flags desconhecidas %#x", ErrCorruptRecord, flags)
	}

	payload := data[headerSize : len(data)-checksumSize]
	sum := binary.LittleEndian.Uint64(data[len(data)-checksumSize:])

	msg := payload
	if flags&FlagZstd != 0 {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxMessageSize))
		if err != nil {
			return nil, fmt.Errorf("falha ao criar descompressor: %w", err)
		}
		msg, err = dec.DecodeAll(payload, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
	}

	if xxhash.Sum64(msg) != sum {
		return nil, fmt.Errorf("%w: checksum não confere", ErrCorruptRecord)
	}

	rec, err := UnmarshalRecord(msg)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// WriteRecord escreve o registro em w no formato .hexmap.
func WriteRecord(w io.Writer, rec *MapRecord, compress bool) (int, error) {
	data, err := EncodeFile(rec, compress)
	if err != nil {
		return 0, err
	}
	return w.Write(data)
}

// ReadRecord lê um registro .hexmap de r.
func ReadRecord(r io.Reader) (*MapRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeFile(data)
}
