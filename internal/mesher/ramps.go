package mesher

import (
	"github.com/deepholm/voxelmesh/internal/grid"
)

// topCorners is the classification order; it matches the Corner constants so
// cornerOpenings can be indexed directly.
var topCorners = [4]grid.Corner{
	grid.CornerTopFrontLeft,
	grid.CornerTopFrontRight,
	grid.CornerTopBackLeft,
	grid.CornerTopBackRight,
}

// cornerOpenings lists, per top corner, the three same-level neighbors that
// share it. A corner lowers when any of them is open.
var cornerOpenings = [4][3]grid.Coord{
	{{X: -1}, {Z: 1}, {X: -1, Z: 1}},   // front-left
	{{X: 1}, {Z: 1}, {X: 1, Z: 1}},     // front-right
	{{X: -1}, {Z: -1}, {X: -1, Z: -1}}, // back-left
	{{X: 1}, {Z: -1}, {X: 1, Z: -1}},   // back-right
}

// UpdateVoxelRamps reclassifies slopes for one Y level of a chunk, plus the
// one-cell border strip of every horizontally adjacent chunk: an edit at this
// chunk's edge changes which of the neighbor's corners are open.
func (b *Builder) UpdateVoxelRamps(c *grid.Chunk, level int) {
	d := c.Dims()
	b.updateRampRegion(c, level, 0, d.X-1, 0, d.Z-1)

	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dz == 0 {
				continue
			}
			cc := c.Coord()
			nc, ok := b.world.Chunk(grid.ChunkCoord{X: cc.X + dx, Z: cc.Z + dz})
			if !ok {
				continue
			}
			nd := nc.Dims()
			x0, x1 := 0, nd.X-1
			z0, z1 := 0, nd.Z-1
			switch dx {
			case 1:
				x1 = 0
			case -1:
				x0 = nd.X - 1
			}
			switch dz {
			case 1:
				z1 = 0
			case -1:
				z0 = nd.Z - 1
			}
			b.updateRampRegion(nc, level, x0, x1, z0, z1)
		}
	}
}

// updateRampRegion classifies a rectangle of cells under the owning chunk's
// ramp lock. Border cells of a chunk are written by its own builder and by up
// to three neighboring builders; the lock keeps those writes serialized.
func (b *Builder) updateRampRegion(c *grid.Chunk, level, x0, x1, z0, z1 int) {
	c.LockRamps()
	defer c.UnlockRamps()

	o := c.Origin()
	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			h := b.world.At(grid.Coord{X: o.X + x, Y: level, Z: o.Z + z})
			h.SetRamp(b.classifyRamp(h))
		}
	}
}

// classifyRamp derives the slope bitset for one cell. Classification is a
// pure function of the neighborhood, so repeated runs are idempotent.
func (b *Builder) classifyRamp(h grid.Handle) grid.RampType {
	if !h.Valid() || h.Empty() || !h.Visible() {
		return grid.RampNone
	}
	def, ok := b.lib.Get(h.Material())
	if !ok || !def.Rampable {
		return grid.RampNone
	}
	// A covered cell never slopes, whatever its sides look like.
	if above := h.Offset(0, 1, 0); above.Valid() && !above.Empty() {
		return grid.RampNone
	}

	var r grid.RampType
	for i, corner := range topCorners {
		for _, d := range cornerOpenings[i] {
			n := h.Offset(d.X, 0, d.Z)
			if !n.Valid() || n.Empty() {
				r |= grid.CornerBit(corner)
				break
			}
		}
	}
	return r
}
