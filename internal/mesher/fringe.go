package mesher

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/material"
	"github.com/deepholm/voxelmesh/internal/mesh"
)

// fringeDir is one of the eight directions a ground-cover cell can skirt
// into. remap selects which of the top face's corner slots (0 front-left,
// 1 front-right, 2 back-right, 3 back-left) seed the skirt's four vertices:
// orthogonal skirts keep the two shared-edge corners in place and push the
// remapped far pair over the neighbor, diagonal fillers fan out from the one
// shared corner.
type fringeDir struct {
	offset   grid.Coord
	remap    [4]int
	diagonal bool
}

// fringeDirs is ordered front, back, left, right, then the four diagonals;
// FringeTiles in the material library index by the same order.
var fringeDirs = [8]fringeDir{
	{grid.Coord{X: 0, Z: 1}, [4]int{0, 1, 1, 0}, false},
	{grid.Coord{X: 0, Z: -1}, [4]int{2, 3, 3, 2}, false},
	{grid.Coord{X: -1, Z: 0}, [4]int{3, 0, 0, 3}, false},
	{grid.Coord{X: 1, Z: 0}, [4]int{1, 2, 2, 1}, false},
	{grid.Coord{X: -1, Z: 1}, [4]int{0, 0, 0, 0}, true},
	{grid.Coord{X: 1, Z: 1}, [4]int{1, 1, 1, 1}, true},
	{grid.Coord{X: -1, Z: -1}, [4]int{3, 3, 3, 3}, true},
	{grid.Coord{X: 1, Z: -1}, [4]int{2, 2, 2, 2}, true},
}

// wallInset keeps the raised-wall variant slightly off the neighbor's face
// to avoid z-fighting with it.
const wallInset = 0.1

// emitFringe grows the decorative skirt around a ground-cover top face.
// corners and lights are the top face's already-displaced corner data, so the
// skirt inherits ramps and lighting along the shared edge.
func (b *Builder) emitFringe(prim *mesh.RawPrimitive, h grid.Handle, def *material.Definition, corners [4]mgl32.Vec3, lights [4]VertexColorInfo, tint [4]uint8) {
	for di := range fringeDirs {
		fd := &fringeDirs[di]

		n := h.OffsetBy(fd.offset)
		if !n.Valid() || b.isGroundCover(n) {
			continue
		}
		if fd.diagonal {
			// The flanking orthogonal skirts already cover this corner
			// unless both flanks are ground cover themselves.
			if !b.isGroundCover(h.Offset(fd.offset.X, 0, 0)) ||
				!b.isGroundCover(h.Offset(0, 0, fd.offset.Z)) {
				continue
			}
		}

		// Apron drapes down over a ledge; against a raised block the skirt
		// climbs the wall instead.
		above := n.Offset(0, 1, 0)
		dir := mgl32.Vec3{float32(fd.offset.X), 0, float32(fd.offset.Z)}
		var offset mgl32.Vec3
		if !above.Valid() || above.Empty() {
			offset = dir.Sub(mgl32.Vec3{0, 1, 0})
		} else {
			offset = dir.Mul(wallInset).Add(mgl32.Vec3{0, 1, 0})
		}

		uv := def.FringeTiles[di]
		prim.EnsureSpace(4, 6)
		var slots [4]uint32
		for vi, src := range fd.remap {
			p := corners[src]
			if fd.diagonal {
				// Corner filler: one vertex stays on the shared corner, the
				// other three spread along X, the full diagonal, and Z.
				switch vi {
				case 1:
					p = p.Add(mgl32.Vec3{offset.X(), offset.Y(), 0})
				case 2:
					p = p.Add(offset)
				case 3:
					p = p.Add(mgl32.Vec3{0, offset.Y(), offset.Z()})
				}
			} else if vi >= 2 {
				p = p.Add(offset)
			}
			slots[vi] = prim.AddVertex(mesh.ExtendedVertex{
				Position: b.perturb(p),
				Color:    lights[src].pack(),
				Tint:     tint,
				UV:       uv.Corner(vi),
				ClampMin: uv.Min,
				ClampMax: uv.Max,
			})
		}
		for _, idx := range material.Face(grid.FaceTop).Indices {
			prim.AddIndex(slots[idx])
		}
	}
}

func (b *Builder) isGroundCover(n grid.Handle) bool {
	if !n.Valid() || n.Empty() {
		return false
	}
	def, ok := b.lib.Get(n.Material())
	return ok && def.GroundCover
}
