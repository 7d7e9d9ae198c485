package mesher

import (
	"math"

	"github.com/deepholm/voxelmesh/internal/grid"
)

// VertexColorInfo is one corner light sample: averaged sun, ambient occlusion
// and whether a light-emitting material touches the corner.
type VertexColorInfo struct {
	Sun     uint8
	Ambient uint8
	Dynamic uint8
}

// pack lays the sample out as an RGBA vertex color: R sun, G ambient,
// B dynamic, A opaque.
func (v VertexColorInfo) pack() [4]uint8 {
	return [4]uint8{v.Sun, v.Ambient, v.Dynamic, 255}
}

// cornerLight returns the memoized light sample for one corner of the cell.
// Corners shared between cells in the slice hit the cache, which is what
// makes adjacent quads agree exactly.
func (b *Builder) cornerLight(s *sliceScratch, h grid.Handle, corner grid.Corner) VertexColorInfo {
	d := grid.CornerDelta[corner]
	pos := h.Position().Offset(d.X, d.Y, d.Z)
	key := s.lightKey(pos)
	if s.lightSet[key] {
		return s.light[key]
	}
	info := b.computeCornerLight(pos)
	s.light[key] = info
	s.lightSet[key] = true
	return info
}

// computeCornerLight samples the 2x2x2 cell block meeting at a corner
// coordinate. Ambient is the fraction of open cells; unexplored cells count
// as occluders so fogged terrain darkens at its boundary. Sun averages over
// the cells that exist; a corner with no loaded neighbors is fully ambient
// and fully dark.
func (b *Builder) computeCornerLight(pos grid.Coord) VertexColorInfo {
	valid, solid, sunSum := 0, 0, 0
	dynamic := false

	for dy := -1; dy <= 0; dy++ {
		for dz := -1; dz <= 0; dz++ {
			for dx := -1; dx <= 0; dx++ {
				n := b.world.At(pos.Offset(dx, dy, dz))
				if !n.Valid() {
					continue
				}
				valid++
				sunSum += int(n.Sun())
				if !n.Empty() || !n.Explored() {
					solid++
				}
				if !n.Empty() {
					if def, ok := b.lib.Get(n.Material()); ok && def.EmitsLight {
						dynamic = true
					}
				}
			}
		}
	}

	if valid == 0 {
		return VertexColorInfo{Sun: 0, Ambient: 255}
	}

	info := VertexColorInfo{
		Sun:     uint8(math.Round(float64(sunSum) / float64(valid))),
		Ambient: uint8(math.Round(255 * (1 - float64(solid)/float64(valid)))),
	}
	if dynamic {
		info.Dynamic = 255
	}
	return info
}

// cornerExplored reports whether any of the up-to-four cells sharing a top
// corner on this level is explored, memoized per corner column.
func (b *Builder) cornerExplored(s *sliceScratch, h grid.Handle, corner grid.Corner) bool {
	d := grid.CornerDelta[corner]
	cx := h.Position().X + d.X
	cz := h.Position().Z + d.Z
	key := s.exploredKey(cx, cz)
	if s.exploredSet[key] {
		return s.explored[key]
	}

	found := false
	for dz := -1; dz <= 0 && !found; dz++ {
		for dx := -1; dx <= 0; dx++ {
			n := b.world.At(grid.Coord{X: cx + dx, Y: h.Position().Y, Z: cz + dz})
			if n.Valid() && n.Explored() {
				found = true
				break
			}
		}
	}

	s.explored[key] = found
	s.exploredSet[key] = true
	return found
}

// flipQuad reports whether the quad should triangulate on the alternate
// diagonal: when the summed ambient across one diagonal exceeds the other,
// splitting along the brighter pair avoids a lighting seam.
func flipQuad(c [4]VertexColorInfo) bool {
	return int(c[1].Ambient)+int(c[3].Ambient) > int(c[0].Ambient)+int(c[2].Ambient)
}
