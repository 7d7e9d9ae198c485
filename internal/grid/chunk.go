package grid

import (
	"sync"

	"github.com/deepholm/voxelmesh/internal/mesh"
)

// Chunk owns a dense cell arena plus the two per-chunk synchronization
// points of the mesh pipeline: the per-Y slice cache and the published-mesh
// handoff. The two locks are deliberately independent and neither is held
// during geometry generation.
type Chunk struct {
	coord  ChunkCoord
	origin Coord
	dims   Dimensions
	cells  []Cell

	// occupied counts non-empty cells per Y level so empty slices can be
	// skipped without scanning.
	occupied []int

	// rampMu serializes ramp writes; builders of neighboring chunks contend
	// on border cells.
	rampMu sync.Mutex

	cacheMu sync.Mutex
	slices  map[int]*mesh.RawPrimitive

	publishMu sync.Mutex
	current   *mesh.Mesh
	hasNew    bool
}

func newChunk(coord ChunkCoord, dims Dimensions) *Chunk {
	return &Chunk{
		coord:    coord,
		origin:   Coord{coord.X * dims.X, 0, coord.Z * dims.Z},
		dims:     dims,
		cells:    make([]Cell, dims.X*dims.Y*dims.Z),
		occupied: make([]int, dims.Y),
		slices:   make(map[int]*mesh.RawPrimitive),
	}
}

// Coord returns the chunk's lattice coordinate.
func (c *Chunk) Coord() ChunkCoord { return c.coord }

// Origin returns the global coordinate of the chunk's local (0,0,0) cell.
func (c *Chunk) Origin() Coord { return c.origin }

// Dims returns the chunk's cell extents.
func (c *Chunk) Dims() Dimensions { return c.dims }

func (c *Chunk) index(lx, ly, lz int) int {
	return (ly*c.dims.Z+lz)*c.dims.X + lx
}

// SetCell replaces the cell at local coordinates, keeping the per-level
// occupancy counts current.
func (c *Chunk) SetCell(lx, ly, lz int, cell Cell) {
	idx := c.index(lx, ly, lz)
	prev := c.cells[idx]
	if prev.Empty() && !cell.Empty() {
		c.occupied[ly]++
	} else if !prev.Empty() && cell.Empty() {
		c.occupied[ly]--
	}
	c.cells[idx] = cell
}

// CellAt returns a copy of the cell at local coordinates.
func (c *Chunk) CellAt(lx, ly, lz int) Cell {
	return c.cells[c.index(lx, ly, lz)]
}

// OccupiedAt returns the number of non-empty cells on the given Y level.
func (c *Chunk) OccupiedAt(ly int) int {
	return c.occupied[ly]
}

// CachedSlice returns the cached slice mesh for a Y level, if present.
// Callers must hold the cache lock via LockCache.
func (c *Chunk) CachedSlice(ly int) (*mesh.RawPrimitive, bool) {
	p, ok := c.slices[ly]
	return p, ok
}

// StoreSlice records a completed slice mesh under the cache lock.
func (c *Chunk) StoreSlice(ly int, p *mesh.RawPrimitive) {
	c.cacheMu.Lock()
	c.slices[ly] = p
	c.cacheMu.Unlock()
}

// clearSlice removes a cache entry. Callers must hold the cache lock.
func (c *Chunk) clearSlice(ly int) {
	delete(c.slices, ly)
}

// InvalidateSlice drops the cached mesh for a Y level. The grid layer calls
// this when cell edits change the level's content; the next build rebuilds
// that slice from scratch.
func (c *Chunk) InvalidateSlice(ly int) {
	c.cacheMu.Lock()
	delete(c.slices, ly)
	c.cacheMu.Unlock()
}

// LockCache acquires the slice-cache lock. It is held only while deciding
// to reuse, allocate or clear a slice, never across geometry generation.
func (c *Chunk) LockCache() { c.cacheMu.Lock() }

// UnlockCache releases the slice-cache lock.
func (c *Chunk) UnlockCache() { c.cacheMu.Unlock() }

// ClearSliceLocked removes a cache entry while the cache lock is held.
func (c *Chunk) ClearSliceLocked(ly int) { c.clearSlice(ly) }

// LockRamps serializes ramp writes into this chunk's cells.
func (c *Chunk) LockRamps() { c.rampMu.Lock() }

// UnlockRamps releases the ramp write lock.
func (c *Chunk) UnlockRamps() { c.rampMu.Unlock() }

// Publish atomically swaps in a freshly built mesh and flags it for the
// consumer. This is the single synchronization point with the render side.
func (c *Chunk) Publish(m *mesh.Mesh) {
	c.publishMu.Lock()
	c.current = m
	c.hasNew = true
	c.publishMu.Unlock()
}

// TakeMesh returns the latest published mesh and whether it is new since the
// last call, clearing the new-mesh flag.
func (c *Chunk) TakeMesh() (*mesh.Mesh, bool) {
	c.publishMu.Lock()
	m, fresh := c.current, c.hasNew
	c.hasNew = false
	c.publishMu.Unlock()
	return m, fresh
}
