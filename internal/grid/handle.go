package grid

// Handle is a lightweight, revalidatable reference to one grid cell: a
// (chunk, local offset) pair resolved from a global coordinate. An invalid
// handle answers queries like unknown air; it never dereferences stale
// storage.
type Handle struct {
	world *World
	chunk *Chunk
	pos   Coord
	idx   int
}

// Valid reports whether the coordinate lies inside a loaded chunk.
func (h Handle) Valid() bool { return h.chunk != nil }

// Position returns the handle's global coordinate.
func (h Handle) Position() Coord { return h.pos }

// Material returns the cell's material, or MaterialNone if invalid.
func (h Handle) Material() MaterialID {
	if h.chunk == nil {
		return MaterialNone
	}
	return h.chunk.cells[h.idx].Material
}

// Empty reports whether the cell holds no material. Invalid handles read as
// empty.
func (h Handle) Empty() bool {
	if h.chunk == nil {
		return true
	}
	return h.chunk.cells[h.idx].Empty()
}

// Explored reports whether the cell has been revealed to the player.
// Invalid handles read as unexplored.
func (h Handle) Explored() bool {
	if h.chunk == nil {
		return false
	}
	return h.chunk.cells[h.idx].Flags&FlagExplored != 0
}

// Visible reports whether the cell is not flagged hidden.
func (h Handle) Visible() bool {
	if h.chunk == nil {
		return false
	}
	return h.chunk.cells[h.idx].Flags&FlagHidden == 0
}

// Ramp returns the cell's slope classification.
func (h Handle) Ramp() RampType {
	if h.chunk == nil {
		return RampNone
	}
	return h.chunk.cells[h.idx].Ramp
}

// SetRamp writes the derived slope classification. This is the only grid
// mutation the mesh builder performs; callers serialize border writes via
// the owning chunk's ramp lock.
func (h Handle) SetRamp(r RampType) {
	if h.chunk == nil {
		return
	}
	h.chunk.cells[h.idx].Ramp = r
}

// Sun returns the cell's accumulated sun-light value.
func (h Handle) Sun() uint8 {
	if h.chunk == nil {
		return 0
	}
	return h.chunk.cells[h.idx].Sun
}

// OffsetBy resolves the handle displaced by a coordinate delta, re-looking
// up through the world since the result may land in another chunk.
func (h Handle) OffsetBy(d Coord) Handle {
	return h.world.At(h.pos.Offset(d.X, d.Y, d.Z))
}

// Offset resolves the handle displaced by the given deltas.
func (h Handle) Offset(dx, dy, dz int) Handle {
	return h.world.At(h.pos.Offset(dx, dy, dz))
}
