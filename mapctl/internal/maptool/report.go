package maptool

import (
	"fmt"
	"io"

	"HexVision/shared/hexmap"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Report resume um mapa para o comando info.
type Report struct {
	Name        string     `yaml:"name"`
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	BaseTexture string     `yaml:"base_texture,omitempty"`
	Tiles       int        `yaml:"tiles"`
	Forest      int        `yaml:"forest"`
	Patches     int        `yaml:"patches"`
	Steps       StepRange  `yaml:"steps"`
	Checksum    string     `yaml:"checksum"`
	Size        SizeReport `yaml:"size"`
}

// StepRange é a menor e a maior altura (em degraus) entre todos os pontos.
type StepRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SizeReport traz o tamanho do arquivo .hexmap com e sem compressão.
type SizeReport struct {
	Raw        string `yaml:"raw"`
	Compressed string `yaml:"compressed"`
	RawBytes   int    `yaml:"raw_bytes"`
	ZstdBytes  int    `yaml:"zstd_bytes"`
}

// Inspect calcula o relatório do registro. patchSize define a contagem de patches.
func Inspect(rec *hexmap.MapRecord, patchSize int) (*Report, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if patchSize < 1 || patchSize > hexmap.MaxPatchSize {
		return nil, fmt.Errorf("%w: %d", hexmap.ErrInvalidPatchSize, patchSize)
	}

	r := &Report{
		Name:        rec.Name,
		Width:       rec.Width,
		Height:      rec.Height,
		BaseTexture: rec.BaseTexture,
		Tiles:       len(rec.Hexes),
		Patches:     ceilDiv(rec.Width, patchSize) * ceilDiv(rec.Height, patchSize),
		Checksum:    fmt.Sprintf("%016x", xxhash.Sum64(hexmap.MarshalRecord(rec))),
	}

	first := true
	for _, h := range rec.Hexes {
		if h.Forest != 0 {
			r.Forest++
		}
		heights, err := hexmap.UnpackHeights(h.Heights)
		if err != nil {
			return nil, err
		}
		for _, s := range heights {
			if first {
				r.Steps = StepRange{Min: s, Max: s}
				first = false
				continue
			}
			r.Steps.Min = min(r.Steps.Min, s)
			r.Steps.Max = max(r.Steps.Max, s)
		}
	}

	raw, err := hexmap.EncodeFile(rec, false)
	if err != nil {
		return nil, err
	}
	packed, err := hexmap.EncodeFile(rec, true)
	if err != nil {
		return nil, err
	}
	r.Size = SizeReport{
		Raw:        humanize.Bytes(uint64(len(raw))),
		Compressed: humanize.Bytes(uint64(len(packed))),
		RawBytes:   len(raw),
		ZstdBytes:  len(packed),
	}
	return r, nil
}

// WriteReport escreve o relatório em YAML.
func WriteReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
