package grid

import (
	"testing"

	"github.com/deepholm/voxelmesh/internal/mesh"
)

func testDims() Dimensions { return Dimensions{X: 4, Y: 8, Z: 4} }

func TestHandleResolution(t *testing.T) {
	w := NewWorld(testDims())
	c := w.CreateChunk(ChunkCoord{})
	c.SetCell(1, 2, 3, Cell{Material: 7, Flags: FlagExplored, Sun: 42})

	h := w.At(Coord{X: 1, Y: 2, Z: 3})
	if !h.Valid() {
		t.Fatal("handle inside loaded chunk should be valid")
	}
	if h.Material() != 7 || !h.Explored() || h.Sun() != 42 {
		t.Fatalf("cell read back wrong: mat=%d explored=%v sun=%d",
			h.Material(), h.Explored(), h.Sun())
	}
	if h.Empty() {
		t.Fatal("cell with material should not read empty")
	}
}

func TestInvalidHandleReadsAsUnknownAir(t *testing.T) {
	w := NewWorld(testDims())
	w.CreateChunk(ChunkCoord{})

	cases := []Coord{
		{X: 0, Y: -1, Z: 0},  // below the world
		{X: 0, Y: 8, Z: 0},   // above the world
		{X: -1, Y: 0, Z: 0},  // chunk not loaded
		{X: 99, Y: 0, Z: 99}, // far away
	}
	for _, pos := range cases {
		h := w.At(pos)
		if h.Valid() {
			t.Fatalf("handle at %v should be invalid", pos)
		}
		if !h.Empty() || h.Explored() || h.Visible() || h.Material() != MaterialNone {
			t.Fatalf("invalid handle at %v should read as unknown air", pos)
		}
		if h.Sun() != 0 || h.Ramp() != RampNone {
			t.Fatalf("invalid handle at %v leaked cell state", pos)
		}
	}
}

func TestCrossChunkOffset(t *testing.T) {
	w := NewWorld(testDims())
	w.CreateChunk(ChunkCoord{})
	w.CreateChunk(ChunkCoord{X: -1})
	w.SetCell(Coord{X: -1, Y: 0, Z: 0}, Cell{Material: 3})

	h := w.At(Coord{X: 0, Y: 0, Z: 0})
	n := h.Offset(-1, 0, 0)
	if !n.Valid() || n.Material() != 3 {
		t.Fatalf("offset into negative chunk failed: valid=%v mat=%d", n.Valid(), n.Material())
	}
	if n.Position() != (Coord{X: -1, Y: 0, Z: 0}) {
		t.Fatalf("position = %v", n.Position())
	}
	// And back again through OffsetBy.
	back := n.OffsetBy(Coord{X: 1})
	if back.Position() != h.Position() {
		t.Fatalf("round trip landed at %v", back.Position())
	}
}

func TestOccupancyCounts(t *testing.T) {
	w := NewWorld(testDims())
	c := w.CreateChunk(ChunkCoord{})

	if c.OccupiedAt(0) != 0 {
		t.Fatal("fresh chunk should have no occupied cells")
	}
	c.SetCell(0, 0, 0, Cell{Material: 1})
	c.SetCell(1, 0, 0, Cell{Material: 1})
	if c.OccupiedAt(0) != 2 {
		t.Fatalf("OccupiedAt(0) = %d, want 2", c.OccupiedAt(0))
	}
	// Overwriting solid with solid must not double count.
	c.SetCell(0, 0, 0, Cell{Material: 2})
	if c.OccupiedAt(0) != 2 {
		t.Fatalf("OccupiedAt(0) = %d after overwrite, want 2", c.OccupiedAt(0))
	}
	c.SetCell(0, 0, 0, Cell{})
	if c.OccupiedAt(0) != 1 {
		t.Fatalf("OccupiedAt(0) = %d after clear, want 1", c.OccupiedAt(0))
	}
}

func TestSliceCache(t *testing.T) {
	w := NewWorld(testDims())
	c := w.CreateChunk(ChunkCoord{})

	p := mesh.NewRawPrimitive()
	c.StoreSlice(2, p)

	c.LockCache()
	got, ok := c.CachedSlice(2)
	c.UnlockCache()
	if !ok || got != p {
		t.Fatal("stored slice not returned")
	}

	c.InvalidateSlice(2)
	c.LockCache()
	_, ok = c.CachedSlice(2)
	c.UnlockCache()
	if ok {
		t.Fatal("invalidated slice still cached")
	}
}

func TestPublishTakeMesh(t *testing.T) {
	w := NewWorld(testDims())
	c := w.CreateChunk(ChunkCoord{})

	if m, fresh := c.TakeMesh(); m != nil || fresh {
		t.Fatal("fresh chunk should have no published mesh")
	}

	m1 := &mesh.Mesh{}
	c.Publish(m1)
	got, fresh := c.TakeMesh()
	if got != m1 || !fresh {
		t.Fatal("published mesh not taken as new")
	}
	// Same mesh again, no longer new.
	got, fresh = c.TakeMesh()
	if got != m1 || fresh {
		t.Fatal("second take should return the same mesh, not new")
	}

	m2 := &mesh.Mesh{}
	c.Publish(m2)
	if got, fresh = c.TakeMesh(); got != m2 || !fresh {
		t.Fatal("republish not observed")
	}
}

func TestChunksDeterministicOrder(t *testing.T) {
	w := NewWorld(testDims())
	w.CreateChunk(ChunkCoord{X: 1, Z: 1})
	w.CreateChunk(ChunkCoord{X: 0, Z: 0})
	w.CreateChunk(ChunkCoord{X: 1, Z: 0})
	w.CreateChunk(ChunkCoord{X: 0, Z: 1})

	want := []ChunkCoord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	got := w.Chunks()
	if len(got) != len(want) {
		t.Fatalf("got %d chunks", len(got))
	}
	for i, c := range got {
		if c.Coord() != want[i] {
			t.Fatalf("chunk %d = %v, want %v", i, c.Coord(), want[i])
		}
	}
}

func TestCreateChunkIdempotent(t *testing.T) {
	w := NewWorld(testDims())
	a := w.CreateChunk(ChunkCoord{X: 2, Z: 3})
	b := w.CreateChunk(ChunkCoord{X: 2, Z: 3})
	if a != b {
		t.Fatal("CreateChunk allocated twice for the same coordinate")
	}
	if a.Origin() != (Coord{X: 8, Y: 0, Z: 12}) {
		t.Fatalf("origin = %v", a.Origin())
	}
}

func TestRampBits(t *testing.T) {
	r := RampFrontLeft | RampBackRight
	if !r.Has(CornerTopFrontLeft) || !r.Has(CornerTopBackRight) {
		t.Fatal("set corners not reported")
	}
	if r.Has(CornerTopFrontRight) || r.Has(CornerTopBackLeft) {
		t.Fatal("unset corners reported")
	}
	if r.Has(CornerBottomFrontLeft) {
		t.Fatal("bottom corners never carry ramp bits")
	}
	if CornerBit(CornerBottomBackRight) != RampNone {
		t.Fatal("CornerBit for bottom corner should be RampNone")
	}
}
