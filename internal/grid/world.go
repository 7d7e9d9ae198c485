package grid

import (
	"sort"
	"sync"
)

// World is the loaded set of chunks. Cell access goes through handles
// resolved by coordinate; coordinates outside any loaded chunk yield
// invalid handles, never errors.
type World struct {
	dims Dimensions

	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
}

// NewWorld creates an empty world with the given per-chunk dimensions.
func NewWorld(dims Dimensions) *World {
	return &World{
		dims:   dims,
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// Dims returns the per-chunk cell extents.
func (w *World) Dims() Dimensions { return w.dims }

// CreateChunk allocates (or returns the existing) chunk at the given
// lattice coordinate.
func (w *World) CreateChunk(cc ChunkCoord) *Chunk {
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.chunks[cc]; ok {
		return c
	}
	c := newChunk(cc, w.dims)
	w.chunks[cc] = c
	return c
}

// Chunk looks up a loaded chunk.
func (w *World) Chunk(cc ChunkCoord) (*Chunk, bool) {
	w.mu.RLock()
	c, ok := w.chunks[cc]
	w.mu.RUnlock()
	return c, ok
}

// Chunks returns all loaded chunks in deterministic lattice order.
func (w *World) Chunks() []*Chunk {
	w.mu.RLock()
	out := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].coord, out[j].coord
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return out
}

// At resolves a global coordinate to a handle. The handle is invalid if the
// coordinate is outside any loaded chunk or outside the vertical range.
func (w *World) At(pos Coord) Handle {
	if pos.Y < 0 || pos.Y >= w.dims.Y {
		return Handle{world: w, pos: pos}
	}
	cc := ChunkCoord{floorDiv(pos.X, w.dims.X), floorDiv(pos.Z, w.dims.Z)}
	w.mu.RLock()
	c := w.chunks[cc]
	w.mu.RUnlock()
	if c == nil {
		return Handle{world: w, pos: pos}
	}
	lx := pos.X - c.origin.X
	lz := pos.Z - c.origin.Z
	return Handle{
		world: w,
		chunk: c,
		pos:   pos,
		idx:   c.index(lx, pos.Y, lz),
	}
}

// SetCell writes a cell by global coordinate. Writes outside loaded chunks
// are dropped.
func (w *World) SetCell(pos Coord, cell Cell) {
	h := w.At(pos)
	if !h.Valid() {
		return
	}
	h.chunk.SetCell(pos.X-h.chunk.origin.X, pos.Y, pos.Z-h.chunk.origin.Z, cell)
}
