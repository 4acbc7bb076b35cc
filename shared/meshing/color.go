package meshing

import "HexVision/shared/util"

// Faixa de tonalidade do terreno por altura.
const (
	colorFloor   float32 = 0.25
	colorCeiling float32 = 1.0
	colorMedian          = (colorFloor + colorCeiling) / 2

	// MaxTintHeight é a altura (em unidades de mundo) que leva a cor ao teto.
	MaxTintHeight float32 = 5
)

// HeightColor retorna o verde proporcional à altura do vértice.
func HeightColor(y float32) [4]uint8 {
	colorStep := colorCeiling - colorFloor/(MaxTintHeight*2)
	value := util.Clamp(colorMedian+y/MaxTintHeight*colorStep, colorFloor, colorCeiling)
	return [4]uint8{0, uint8(value*255 + 0.5), 0, 255}
}
