package mesher

import (
	"github.com/deepholm/voxelmesh/internal/grid"
)

// sliceScratch memoizes per-corner computations for one (chunk, level) build.
// Corners of a slice's cells span dims.X+1 by dims.Z+1 columns and the two
// Y planes level and level+1. The arrays are never shared between builds.
type sliceScratch struct {
	origin grid.Coord
	level  int
	spanX  int
	spanZ  int

	light    []VertexColorInfo
	lightSet []bool

	explored    []bool
	exploredSet []bool
}

func newSliceScratch(c *grid.Chunk, level int) *sliceScratch {
	d := c.Dims()
	sx, sz := d.X+1, d.Z+1
	return &sliceScratch{
		origin:      c.Origin(),
		level:       level,
		spanX:       sx,
		spanZ:       sz,
		light:       make([]VertexColorInfo, 2*sx*sz),
		lightSet:    make([]bool, 2*sx*sz),
		explored:    make([]bool, sx*sz),
		exploredSet: make([]bool, sx*sz),
	}
}

// lightKey packs a global corner coordinate into the light arrays. A corner
// outside the slice's corner lattice is a bug in the caller, not a data
// condition, so it panics.
func (s *sliceScratch) lightKey(pos grid.Coord) int {
	lx := pos.X - s.origin.X
	ly := pos.Y - s.level
	lz := pos.Z - s.origin.Z
	if lx < 0 || lx >= s.spanX || lz < 0 || lz >= s.spanZ || ly < 0 || ly > 1 {
		panic("mesher: corner outside slice scratch bounds")
	}
	return (ly*s.spanX+lx)*s.spanZ + lz
}

// exploredKey packs a global corner column (X/Z only; explored state is
// evaluated on the slice's own level).
func (s *sliceScratch) exploredKey(x, z int) int {
	lx := x - s.origin.X
	lz := z - s.origin.Z
	if lx < 0 || lx >= s.spanX || lz < 0 || lz >= s.spanZ {
		panic("mesher: corner column outside slice scratch bounds")
	}
	return lx*s.spanZ + lz
}
