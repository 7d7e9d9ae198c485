// Package mesh defines the geometry value types produced by the chunk mesh
// builder: vertices, growable per-slice primitives and the concatenated
// per-chunk mesh handed to the renderer.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ExtendedVertex is the wire contract with the renderer. Color packs the
// light sample as R=sun, G=ambient occlusion, B=dynamic, A=255; Tint is a
// separate material/biome multiply. ClampMin/ClampMax bound UV sampling to
// one atlas tile to prevent bleeding.
type ExtendedVertex struct {
	Position mgl32.Vec3
	Color    [4]uint8
	Tint     [4]uint8
	UV       mgl32.Vec2
	ClampMin mgl32.Vec2
	ClampMax mgl32.Vec2
}

// Initial slice buffer capacities. Buffers double on overflow.
const (
	initialVertexCapacity = 64
	initialIndexCapacity  = 96
)

// RawPrimitive holds the geometry of exactly one horizontal slice of one
// chunk. Counts are tracked separately from the backing array length so a
// primitive can be grown in place without reslicing churn.
type RawPrimitive struct {
	Vertices    []ExtendedVertex
	Indices     []uint32
	VertexCount int
	IndexCount  int
}

// NewRawPrimitive returns an empty primitive with a small initial capacity.
func NewRawPrimitive() *RawPrimitive {
	return &RawPrimitive{
		Vertices: make([]ExtendedVertex, initialVertexCapacity),
		Indices:  make([]uint32, initialIndexCapacity),
	}
}

// EnsureSpace grows the backing arrays by doubling until they can hold the
// requested number of additional vertices and indices. Prefix contents are
// preserved.
func (p *RawPrimitive) EnsureSpace(verts, indices int) {
	need := p.VertexCount + verts
	if need > len(p.Vertices) {
		capacity := len(p.Vertices)
		if capacity == 0 {
			capacity = initialVertexCapacity
		}
		for capacity < need {
			capacity *= 2
		}
		grown := make([]ExtendedVertex, capacity)
		copy(grown, p.Vertices[:p.VertexCount])
		p.Vertices = grown
	}

	need = p.IndexCount + indices
	if need > len(p.Indices) {
		capacity := len(p.Indices)
		if capacity == 0 {
			capacity = initialIndexCapacity
		}
		for capacity < need {
			capacity *= 2
		}
		grown := make([]uint32, capacity)
		copy(grown, p.Indices[:p.IndexCount])
		p.Indices = grown
	}
}

// AddVertex appends a vertex and returns its slot. The caller must have
// reserved space via EnsureSpace.
func (p *RawPrimitive) AddVertex(v ExtendedVertex) uint32 {
	slot := uint32(p.VertexCount)
	p.Vertices[p.VertexCount] = v
	p.VertexCount++
	return slot
}

// AddIndex appends one triangle index. The caller must have reserved space
// via EnsureSpace.
func (p *RawPrimitive) AddIndex(i uint32) {
	p.Indices[p.IndexCount] = i
	p.IndexCount++
}

// Mesh is the flat per-chunk result: one vertex array, one triangle index
// array. How it reaches the graphics device is the consumer's concern.
type Mesh struct {
	Vertices []ExtendedVertex
	Indices  []uint32
}

// Concat joins per-slice primitives in order into one mesh, remapping each
// slice's indices by its vertex offset. Nil slices are skipped.
func Concat(slices []*RawPrimitive) *Mesh {
	totalV, totalI := 0, 0
	for _, s := range slices {
		if s == nil {
			continue
		}
		totalV += s.VertexCount
		totalI += s.IndexCount
	}

	m := &Mesh{
		Vertices: make([]ExtendedVertex, 0, totalV),
		Indices:  make([]uint32, 0, totalI),
	}
	for _, s := range slices {
		if s == nil {
			continue
		}
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, s.Vertices[:s.VertexCount]...)
		for _, idx := range s.Indices[:s.IndexCount] {
			m.Indices = append(m.Indices, base+idx)
		}
	}
	return m
}
