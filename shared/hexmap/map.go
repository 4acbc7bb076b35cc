package hexmap

import (
	"fmt"
	"log"

	"HexVision/shared/meshing"
	"HexVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxMapSize é o limite por eixo imposto pelo empacotamento de posição em 8 bits.
const MaxMapSize = 256

// Options controla a construção de um HexMap.
type Options struct {
	HexSize   float32
	PatchSize int
	Style     meshing.Style
	// IDs é opcional; quando nil o mapa cria o seu próprio alocador.
	IDs *PatchIDAllocator
}

// DefaultOptions retorna as opções padrão do editor.
func DefaultOptions() Options {
	return Options{
		HexSize:   0.5,
		PatchSize: 10,
		Style:     meshing.StyleFlat,
	}
}

// HexMap é a grade completa. Os tiles vivem numa arena indexada por col*Height + row.
type HexMap struct {
	Width       int
	Height      int
	BaseTexture string
	HexSize     float32

	tiles []Tile

	patchSize  int
	patchCols  int
	patchRows  int
	patches    []*Patch
	patchSlots map[int]int
	dirty      *util.UniqueQueue[int, int]

	builder meshing.GeometryBuilder
	style   meshing.Style
	ids     *PatchIDAllocator

	// Sobreposições de debug consumidas pelo renderizador.
	ShowGrid    bool
	ShowCoords  bool
	ShowHeights bool
	Wireframe   bool
}

// New cria um mapa plano width x height e constrói todos os patches.
func New(width, height int, baseTexture string, opts Options) (*HexMap, error) {
	m, err := newMap(width, height, baseTexture, opts)
	if err != nil {
		return nil, err
	}
	m.Rebuild(true)
	return m, nil
}

// NewFromRecord reconstrói um mapa a partir de um registro persistido.
func NewFromRecord(rec *MapRecord, opts Options) (*HexMap, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	m, err := newMap(rec.Width, rec.Height, rec.BaseTexture, opts)
	if err != nil {
		return nil, err
	}
	for _, hr := range rec.Hexes {
		x, y := hr.Position()
		t := m.GetTile(x, y)
		if err := DecodeTile(hr, t); err != nil {
			return nil, err
		}
	}
	m.Rebuild(true)
	return m, nil
}

func newMap(width, height int, baseTexture string, opts Options) (*HexMap, error) {
	if width < 1 || height < 1 || width > MaxMapSize || height > MaxMapSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if opts.PatchSize < 1 || opts.PatchSize > MaxPatchSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPatchSize, opts.PatchSize)
	}
	if opts.HexSize <= 0 {
		return nil, fmt.Errorf("tamanho de hexágono inválido: %v", opts.HexSize)
	}
	ids := opts.IDs
	if ids == nil {
		ids = NewPatchIDAllocator()
	}

	m := &HexMap{
		Width:       width,
		Height:      height,
		BaseTexture: baseTexture,
		HexSize:     opts.HexSize,
		tiles:       make([]Tile, 0, width*height),
		patchSize:   opts.PatchSize,
		patchCols:   (width + opts.PatchSize - 1) / opts.PatchSize,
		patchRows:   (height + opts.PatchSize - 1) / opts.PatchSize,
		patchSlots:  make(map[int]int),
		dirty:       util.NewUniqueQueue[int, int](),
		builder:     meshing.NewBuilder(opts.Style),
		style:       opts.Style,
		ids:         ids,
	}

	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			c := util.NewOffsetCoord(col, row)
			m.tiles = append(m.tiles, *newTile(c, len(m.tiles), opts.HexSize))
		}
	}

	for i := range m.tiles {
		t := &m.tiles[i]
		for _, dir := range util.AllDirections {
			if n := m.TileAt(util.NeighborCoord(t.Coord, dir)); n != nil {
				t.Neighbors[dir] = n.Index
			}
		}
	}

	m.patches = make([]*Patch, m.patchCols*m.patchRows)
	return m, nil
}

// Style retorna a estratégia de malha escolhida na criação.
func (m *HexMap) Style() meshing.Style {
	return m.style
}

// PatchSize retorna o lado dos patches em tiles.
func (m *HexMap) PatchSize() int {
	return m.patchSize
}

// HeightStep retorna a unidade vertical de edição.
func (m *HexMap) HeightStep() float32 {
	return HeightStep(m.HexSize)
}

// GetTile retorna o tile em (x, y) ou nil fora da grade.
func (m *HexMap) GetTile(x, y int) *Tile {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return nil
	}
	return &m.tiles[x*m.Height+y]
}

// TileAt retorna o tile na coordenada ou nil fora da grade.
func (m *HexMap) TileAt(c util.OffsetCoord) *Tile {
	return m.GetTile(c.Col, c.Row)
}

// TileByIndex retorna o tile pelo índice da arena ou nil.
func (m *HexMap) TileByIndex(i int) *Tile {
	if i < 0 || i >= len(m.tiles) {
		return nil
	}
	return &m.tiles[i]
}

// Neighbor retorna o vizinho na direção dada ou nil.
func (m *HexMap) Neighbor(t *Tile, dir util.HexDirection) *Tile {
	return m.TileByIndex(t.Neighbors[dir])
}

// TileCount retorna o número de tiles.
func (m *HexMap) TileCount() int {
	return len(m.tiles)
}

// Tiles percorre todos os tiles na ordem da arena. Retornar false interrompe.
func (m *HexMap) Tiles(fn func(t *Tile) bool) {
	for i := range m.tiles {
		if !fn(&m.tiles[i]) {
			return
		}
	}
}

// Patches retorna os patches atuais, indexados por slot.
func (m *HexMap) Patches() []*Patch {
	return m.patches
}

// PatchByID retorna o patch com o ID dado, se ainda existir.
func (m *HexMap) PatchByID(id int) *Patch {
	slot, ok := m.patchSlots[id]
	if !ok {
		return nil
	}
	return m.patches[slot]
}

// DirtyCount retorna quantos patches aguardam rebuild.
func (m *HexMap) DirtyCount() int {
	return m.dirty.Len()
}

// markDirty enfileira o patch dono do tile para rebuild.
func (m *HexMap) markDirty(t *Tile) {
	slot, ok := m.patchSlots[t.PatchID]
	if !ok {
		return
	}
	m.dirty.Enqueue(t.PatchID, slot)
}

// Rebuild reconstrói todos os patches (force) ou apenas os sujos. Retorna quantos foram refeitos.
func (m *HexMap) Rebuild(force bool) int {
	var slots []int
	if force {
		m.dirty.Clear()
		slots = make([]int, len(m.patches))
		for i := range slots {
			slots[i] = i
		}
	} else {
		slots = m.dirty.Drain()
	}

	for _, slot := range slots {
		var gen uint64
		if old := m.patches[slot]; old != nil {
			delete(m.patchSlots, old.ID)
			gen = old.Generation + 1
		}
		p := m.buildPatch(slot, gen)
		m.patches[slot] = p
		m.patchSlots[p.ID] = slot
	}

	if force {
		log.Printf("[HexMap] %dx%d: %d patches construídos (%s)", m.Width, m.Height, len(slots), m.style)
	}
	return len(slots)
}

// Bounds retorna a caixa envolvente do mapa inteiro.
func (m *HexMap) Bounds() rl.BoundingBox {
	var box rl.BoundingBox
	for i, p := range m.patches {
		if p == nil {
			continue
		}
		if i == 0 {
			box = p.Bounds
			continue
		}
		box = meshing.MergeBoxes(box, p.Bounds)
	}
	return box
}

// VisiblePatches retorna os patches cuja caixa intersecta o frustum.
func (m *HexMap) VisiblePatches(f util.Frustum) []*Patch {
	out := make([]*Patch, 0, len(m.patches))
	for _, p := range m.patches {
		if p != nil && f.IntersectsBox(p.Bounds) {
			out = append(out, p)
		}
	}
	return out
}
