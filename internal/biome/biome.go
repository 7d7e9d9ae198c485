// Package biome supplies the ground-cover tint consumed by the mesh
// builder. The builder only ever reads a color by 2D world coordinate; how
// biomes are actually assigned stays behind the Source interface.
package biome

import (
	"github.com/ojrac/opensimplex-go"
)

// Source looks up the ground-cover tint for a world column.
type Source interface {
	GroundTint(x, z int) [4]uint8
}

// Uniform returns the same tint everywhere. Useful for tests and tools.
type Uniform [4]uint8

// GroundTint implements Source.
func (u Uniform) GroundTint(x, z int) [4]uint8 { return [4]uint8(u) }

// Field interpolates between a tint palette over a smooth 2D noise field,
// deterministic by seed.
type Field struct {
	noise opensimplex.Noise
	tints [][4]uint8
	scale float64
}

// NewField creates a tint field. The palette must be non-empty; scale sets
// the noise feature size in cells.
func NewField(seed int64, tints [][4]uint8, scale float64) *Field {
	if len(tints) == 0 {
		tints = [][4]uint8{{96, 176, 80, 255}}
	}
	if scale <= 0 {
		scale = 96
	}
	return &Field{
		noise: opensimplex.NewNormalized(seed),
		tints: tints,
		scale: scale,
	}
}

// GroundTint implements Source. Neighboring columns map to the same palette
// entry unless they cross a noise band boundary, keeping tint patches
// contiguous.
func (f *Field) GroundTint(x, z int) [4]uint8 {
	v := f.noise.Eval2(float64(x)/f.scale, float64(z)/f.scale)
	idx := int(v * float64(len(f.tints)))
	if idx >= len(f.tints) {
		idx = len(f.tints) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return f.tints[idx]
}
