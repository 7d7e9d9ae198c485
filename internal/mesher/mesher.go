// Package mesher converts chunks of typed voxel cells into renderable
// triangle meshes: visibility culling, procedural ramp slopes, per-vertex
// ambient lighting, neighbor-driven autotiling and ground-cover fringe
// geometry, with incremental per-slice caching.
package mesher

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
	"go.uber.org/zap"

	"github.com/deepholm/voxelmesh/internal/biome"
	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/material"
	"github.com/deepholm/voxelmesh/internal/mesh"
)

// Settings are the global build switches.
type Settings struct {
	// MaxViewLevel is the externally supplied render-depth limit; cells
	// above it are not meshed. Negative means the full chunk height.
	MaxViewLevel int
	// CalculateRamps recomputes slope classification while building.
	CalculateRamps bool
	// BuildGroundCover enables the decorative fringe along ground-cover
	// edges.
	BuildGroundCover bool
	// PerturbVertices displaces emitted positions by a deterministic
	// position-seeded noise offset.
	PerturbVertices  bool
	PerturbAmplitude float32
}

// Builder meshes chunks. Builders of different chunks may run concurrently;
// all slice-scoped caches are created per build call.
type Builder struct {
	world    *grid.World
	lib      *material.Library
	biomes   biome.Source
	log      *zap.Logger
	settings Settings
	noise    opensimplex.Noise
}

// New creates a builder. A nil logger or biome source falls back to no-op
// defaults.
func New(world *grid.World, lib *material.Library, biomes biome.Source, log *zap.Logger, settings Settings, seed int64) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	if biomes == nil {
		biomes = biome.Uniform{255, 255, 255, 255}
	}
	return &Builder{
		world:    world,
		lib:      lib,
		biomes:   biomes,
		log:      log,
		settings: settings,
		noise:    opensimplex.New(seed),
	}
}

// BuildChunk produces one mesh for the whole chunk and publishes it. Levels
// with no occupied cells are skipped (clearing stale cache entries); cached
// slices are reused unmodified. Note that reused slices skip ramp
// recomputation for their level even when CalculateRamps is set; a ramp
// change invisible to the occupancy key stays stale until the slice is
// invalidated.
func (b *Builder) BuildChunk(c *grid.Chunk) *mesh.Mesh {
	start := time.Now()

	maxY := b.settings.MaxViewLevel
	if maxY < 0 || maxY >= c.Dims().Y {
		maxY = c.Dims().Y - 1
	}

	slices := make([]*mesh.RawPrimitive, maxY+1)
	built, reused := 0, 0

	for y := 0; y <= maxY; y++ {
		// The cache lock covers only the reuse/allocate/clear decision,
		// never geometry generation.
		c.LockCache()
		if c.OccupiedAt(y) == 0 {
			c.ClearSliceLocked(y)
			c.UnlockCache()
			continue
		}
		if cached, ok := c.CachedSlice(y); ok {
			slices[y] = cached
			reused++
			c.UnlockCache()
			continue
		}
		c.UnlockCache()

		prim := b.buildSlice(c, y)
		c.StoreSlice(y, prim)
		slices[y] = prim
		built++
	}

	m := mesh.Concat(slices)
	c.Publish(m)

	b.log.Debug("chunk meshed",
		zap.Int("chunk_x", c.Coord().X),
		zap.Int("chunk_z", c.Coord().Z),
		zap.Int("slices_built", built),
		zap.Int("slices_reused", reused),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
		zap.Duration("took", time.Since(start)),
	)
	return m
}

// buildSlice meshes one Y level. The lighting and explored-corner caches
// live and die with this call.
func (b *Builder) buildSlice(c *grid.Chunk, level int) *mesh.RawPrimitive {
	prim := mesh.NewRawPrimitive()
	scratch := newSliceScratch(c, level)

	if b.settings.CalculateRamps {
		b.UpdateVoxelRamps(c, level)
	}

	origin := c.Origin()
	dims := c.Dims()
	for z := 0; z < dims.Z; z++ {
		for x := 0; x < dims.X; x++ {
			h := b.world.At(grid.Coord{X: origin.X + x, Y: level, Z: origin.Z + z})
			if h.Empty() {
				continue
			}
			b.buildCell(prim, scratch, h)
		}
	}
	return prim
}

func (b *Builder) buildCell(prim *mesh.RawPrimitive, s *sliceScratch, h grid.Handle) {
	def := b.lib.Resolve(h.Material(), h.Explored())

	for face := grid.Face(0); face < grid.FaceCount; face++ {
		n := h.OffsetBy(grid.FaceDelta[face])
		if !b.IsFaceVisible(h, n, face) {
			continue
		}
		if face == grid.FaceTop {
			b.emitTopFace(prim, s, h, def)
		} else {
			b.emitFace(prim, s, h, def, face)
		}
	}
}

// emitFace emits one non-top cube face: template offsets, ramp displacement
// on top corners, memoized corner light, autotiled UV and the quad-flip
// index order.
func (b *Builder) emitFace(prim *mesh.RawPrimitive, s *sliceScratch, h grid.Handle, def *material.Definition, face grid.Face) {
	tmpl := material.Face(face)
	uv := b.faceUV(h, def, face)
	pos := h.Position()
	base := mgl32.Vec3{float32(pos.X), float32(pos.Y), float32(pos.Z)}
	ramp := h.Ramp()

	var lights [4]VertexColorInfo
	var verts [4]mesh.ExtendedVertex
	for i, tv := range tmpl.Vertices {
		p := base.Add(tv.Offset)
		if ShouldRamp(tv.Corner, ramp) {
			p[1] -= def.RampDepth
		}
		lights[i] = b.cornerLight(s, h, tv.Corner)
		verts[i] = mesh.ExtendedVertex{
			Position: b.perturb(p),
			Color:    lights[i].pack(),
			Tint:     def.Tint,
			UV:       uv.Corner(tv.UVIdx),
			ClampMin: uv.Min,
			ClampMax: uv.Max,
		}
	}
	b.emitQuad(prim, verts, lights, tmpl)
}

// emitQuad appends four vertices and six indices, flipping the diagonal
// when the opposite-corner ambient sums say the alternate split interpolates
// more smoothly.
func (b *Builder) emitQuad(prim *mesh.RawPrimitive, verts [4]mesh.ExtendedVertex, lights [4]VertexColorInfo, tmpl *material.FaceTemplate) {
	prim.EnsureSpace(4, 6)
	var slots [4]uint32
	for i := range verts {
		slots[i] = prim.AddVertex(verts[i])
	}
	order := tmpl.Indices
	if flipQuad(lights) {
		order = tmpl.FlippedIndices
	}
	for _, idx := range order {
		prim.AddIndex(slots[idx])
	}
}

// perturb applies the deterministic position-seeded noise offset. Pure in
// position, so cached and fresh slices agree.
func (b *Builder) perturb(p mgl32.Vec3) mgl32.Vec3 {
	if !b.settings.PerturbVertices {
		return p
	}
	const freq = 7.31
	a := b.settings.PerturbAmplitude
	x, y, z := float64(p.X())*freq, float64(p.Y())*freq, float64(p.Z())*freq
	return mgl32.Vec3{
		p.X() + float32(b.noise.Eval3(x, y, z))*a,
		p.Y() + float32(b.noise.Eval3(y, z, x))*a,
		p.Z() + float32(b.noise.Eval3(z, x, y))*a,
	}
}
