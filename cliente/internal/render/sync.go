package render

import (
	"sort"

	"HexVision/shared/hexmap"
)

// syncPlan descreve o que precisa subir e o que precisa ser descarregado da GPU.
type syncPlan struct {
	Upload []*hexmap.Patch
	Stale  []int // IDs de modelos que não pertencem mais ao mapa
}

// planSync compara os modelos carregados (por ID de patch) com os patches atuais do mapa.
// Um rebuild sempre gera um ID novo, então basta comparar IDs.
func planSync(loaded map[int]*PatchModel, patches []*hexmap.Patch) syncPlan {
	var plan syncPlan
	current := make(map[int]struct{}, len(patches))
	for _, p := range patches {
		if p == nil {
			continue
		}
		current[p.ID] = struct{}{}
		if _, ok := loaded[p.ID]; !ok {
			plan.Upload = append(plan.Upload, p)
		}
	}
	for id := range loaded {
		if _, ok := current[id]; !ok {
			plan.Stale = append(plan.Stale, id)
		}
	}
	sort.Ints(plan.Stale)
	return plan
}

// ccwIndices inverte a ordem de cada triângulo: o núcleo usa frente horária, o raylib anti-horária.
func ccwIndices(indices []uint16) []uint16 {
	out := make([]uint16, len(indices))
	for i := 0; i+2 < len(indices); i += 3 {
		out[i] = indices[i]
		out[i+1] = indices[i+2]
		out[i+2] = indices[i+1]
	}
	return out
}
