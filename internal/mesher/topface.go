package mesher

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/material"
	"github.com/deepholm/voxelmesh/internal/mesh"
)

// fogTint is the vertex tint of fully obscured geometry.
var fogTint = [4]uint8{0, 0, 0, 255}

// emitTopFace emits the cell's top quad. Top faces carry the fog boundary:
// corners whose surrounding cells are all unexplored tint to black, and a
// cell with no explored corner at all collapses to a flat placeholder quad.
// Ground-cover materials additionally grow fringe skirts toward non-cover
// neighbors.
func (b *Builder) emitTopFace(prim *mesh.RawPrimitive, s *sliceScratch, h grid.Handle, def *material.Definition) {
	tmpl := material.Face(grid.FaceTop)
	pos := h.Position()
	base := mgl32.Vec3{float32(pos.X), float32(pos.Y), float32(pos.Z)}
	ramp := h.Ramp()

	var positions [4]mgl32.Vec3
	var lights [4]VertexColorInfo
	var exploredCorner [4]bool
	exploredCount := 0
	for i, tv := range tmpl.Vertices {
		p := base.Add(tv.Offset)
		if ShouldRamp(tv.Corner, ramp) {
			p[1] -= def.RampDepth
		}
		positions[i] = p
		lights[i] = b.cornerLight(s, h, tv.Corner)
		exploredCorner[i] = b.cornerExplored(s, h, tv.Corner)
		if exploredCorner[i] {
			exploredCount++
		}
	}

	if exploredCount == 0 {
		b.emitPlaceholder(prim, base, tmpl)
		return
	}

	uv := b.faceUV(h, def, grid.FaceTop)
	tint := def.Tint
	if def.GroundCover {
		tint = b.biomes.GroundTint(pos.X, pos.Z)
	}

	var verts [4]mesh.ExtendedVertex
	for i, tv := range tmpl.Vertices {
		vTint := tint
		if !exploredCorner[i] {
			vTint = fogTint
		}
		verts[i] = mesh.ExtendedVertex{
			Position: b.perturb(positions[i]),
			Color:    lights[i].pack(),
			Tint:     vTint,
			UV:       uv.Corner(tv.UVIdx),
			ClampMin: uv.Min,
			ClampMax: uv.Max,
		}
	}
	b.emitQuad(prim, verts, lights, tmpl)

	if def.GroundCover && b.settings.BuildGroundCover {
		b.emitFringe(prim, h, def, positions, lights, tint)
	}
}

// emitPlaceholder draws the undisplaced unexplored-terrain quad: no ramp
// offsets, no perturbation, flat black, atlas fog tile.
func (b *Builder) emitPlaceholder(prim *mesh.RawPrimitive, base mgl32.Vec3, tmpl *material.FaceTemplate) {
	uv := b.lib.UnexploredTile()
	prim.EnsureSpace(4, 6)
	var slots [4]uint32
	for i, tv := range tmpl.Vertices {
		slots[i] = prim.AddVertex(mesh.ExtendedVertex{
			Position: base.Add(tv.Offset),
			Color:    fogTint,
			Tint:     fogTint,
			UV:       uv.Corner(tv.UVIdx),
			ClampMin: uv.Min,
			ClampMax: uv.Max,
		})
	}
	for _, idx := range tmpl.Indices {
		prim.AddIndex(slots[idx])
	}
}
