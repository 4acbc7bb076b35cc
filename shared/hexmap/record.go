package hexmap

import (
	"fmt"
)

const (
	heightBias = 127
	// MinPackedHeight e MaxPackedHeight limitam as alturas que cabem num byte com bias 127.
	MinPackedHeight = -127
	MaxPackedHeight = 128

	// HexRecordSize é o tamanho de um HexRecord no formato binário (2 + 8 + 1 bytes).
	HexRecordSize = 11
)

// MapRecord é a forma persistida de um mapa.
type MapRecord struct {
	Name        string      `json:"name"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	BaseTexture string      `json:"base_texture"`
	Hexes       []HexRecord `json:"hexes"`
}

// HexRecord é um tile empacotado: posição em 16 bits, 7 alturas em 64 bits e floresta em 1 byte.
type HexRecord struct {
	Pos     uint16 `json:"pos"`
	Heights uint64 `json:"heights"`
	Forest  uint8  `json:"forest"`
}

// PackPosition empacota (x, y) como x | y<<8. Cada eixo precisa caber em 8 bits.
func PackPosition(x, y int) uint16 {
	return uint16(x&0xFF) | uint16(y&0xFF)<<8
}

// Position desempacota a coordenada do tile.
func (h HexRecord) Position() (int, int) {
	return int(h.Pos & 0xFF), int(h.Pos >> 8)
}

// PackHeights empacota 7 alturas, um byte por ponto em ordem de HexPoint (byte 0 = Center).
func PackHeights(heights [PointCount]int) (uint64, error) {
	var v uint64
	for i, h := range heights {
		if h < MinPackedHeight || h > MaxPackedHeight {
			return 0, fmt.Errorf("%w: %s = %d", ErrHeightRange, HexPoint(i), h)
		}
		v |= uint64(h+heightBias) << (8 * i)
	}
	return v, nil
}

// UnpackHeights é o inverso de PackHeights. O byte mais alto precisa ser zero.
func UnpackHeights(v uint64) ([PointCount]int, error) {
	var out [PointCount]int
	if v>>(8*PointCount) != 0 {
		return out, fmt.Errorf("%w: byte alto das alturas não é zero (%#x)", ErrCorruptRecord, v)
	}
	for i := range out {
		out[i] = int((v>>(8*i))&0xFF) - heightBias
	}
	return out, nil
}

// EncodeTile converte o estado do tile em registro.
func EncodeTile(t *Tile) (HexRecord, error) {
	heights, err := PackHeights(t.Heights())
	if err != nil {
		return HexRecord{}, fmt.Errorf("tile %v: %w", t.Coord, err)
	}
	rec := HexRecord{
		Pos:     PackPosition(t.Coord.Col, t.Coord.Row),
		Heights: heights,
	}
	if t.IsForest {
		rec.Forest = 1
	}
	return rec, nil
}

// DecodeTile aplica o registro ao tile (alturas e floresta).
func DecodeTile(rec HexRecord, t *Tile) error {
	heights, err := UnpackHeights(rec.Heights)
	if err != nil {
		return err
	}
	if rec.Forest > 1 {
		return fmt.Errorf("%w: floresta = %d", ErrCorruptRecord, rec.Forest)
	}
	t.SetHeights(heights)
	t.IsForest = rec.Forest == 1
	return nil
}

// Validate verifica dimensões, contagem, limites e unicidade dos tiles.
func (r *MapRecord) Validate() error {
	if r.Width < 1 || r.Height < 1 || r.Width > MaxMapSize || r.Height > MaxMapSize {
		return fmt.Errorf("%w: tamanho %dx%d", ErrCorruptRecord, r.Width, r.Height)
	}
	if len(r.Hexes) != r.Width*r.Height {
		return fmt.Errorf("%w: %d tiles para um mapa %dx%d", ErrCorruptRecord, len(r.Hexes), r.Width, r.Height)
	}
	seen := make([]bool, r.Width*r.Height)
	for i, h := range r.Hexes {
		x, y := h.Position()
		if x >= r.Width || y >= r.Height {
			return fmt.Errorf("%w: tile %d fora do mapa (%d, %d)", ErrCorruptRecord, i, x, y)
		}
		idx := x*r.Height + y
		if seen[idx] {
			return fmt.Errorf("%w: tile (%d, %d) duplicado", ErrCorruptRecord, x, y)
		}
		seen[idx] = true
		if _, err := UnpackHeights(h.Heights); err != nil {
			return err
		}
		if h.Forest > 1 {
			return fmt.Errorf("%w: tile (%d, %d) com floresta = %d", ErrCorruptRecord, x, y, h.Forest)
		}
	}
	return nil
}

// Record gera o registro persistível do mapa, com os tiles na ordem da arena.
func (m *HexMap) Record(name string) (*MapRecord, error) {
	rec := &MapRecord{
		Name:        name,
		Width:       m.Width,
		Height:      m.Height,
		BaseTexture: m.BaseTexture,
		Hexes:       make([]HexRecord, 0, len(m.tiles)),
	}
	for i := range m.tiles {
		h, err := EncodeTile(&m.tiles[i])
		if err != nil {
			return nil, err
		}
		rec.Hexes = append(rec.Hexes, h)
	}
	return rec, nil
}
