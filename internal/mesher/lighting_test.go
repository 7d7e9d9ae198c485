package mesher

import (
	"testing"

	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/material"
)

func TestComputeCornerLightAmbient(t *testing.T) {
	w := testWorld(grid.Dimensions{X: 4, Y: 4, Z: 4}, 1, 1)
	exploreAll(w)
	setSolid(w, grid.Coord{X: 1, Y: 1, Z: 1}, material.Rock, true)

	b := newTestBuilder(w, defaultSettings())

	// The top-back-left corner of the solid cell touches 8 loaded cells, one
	// of them solid.
	got := b.computeCornerLight(grid.Coord{X: 1, Y: 2, Z: 1})
	if got.Ambient != 223 { // round(255 * 7/8)
		t.Fatalf("ambient = %d, want 223", got.Ambient)
	}
	if got.Sun != 0 || got.Dynamic != 0 {
		t.Fatalf("unexpected sun/dynamic: %+v", got)
	}

	// An unexplored cell in the block counts as an occluder.
	w.SetCell(grid.Coord{X: 0, Y: 1, Z: 1}, grid.Cell{})
	got = b.computeCornerLight(grid.Coord{X: 1, Y: 2, Z: 1})
	if got.Ambient != 191 { // round(255 * 6/8)
		t.Fatalf("ambient with unexplored neighbor = %d, want 191", got.Ambient)
	}
}

func TestComputeCornerLightSunAverage(t *testing.T) {
	w := testWorld(grid.Dimensions{X: 4, Y: 4, Z: 4}, 1, 1)
	// The 2x2x2 block around corner (1,2,1): four cells at 100, four at 200.
	for dy := -1; dy <= 0; dy++ {
		for dz := -1; dz <= 0; dz++ {
			for dx := -1; dx <= 0; dx++ {
				sun := uint8(100)
				if dy == 0 {
					sun = 200
				}
				w.SetCell(grid.Coord{X: 1 + dx, Y: 2 + dy, Z: 1 + dz},
					grid.Cell{Flags: grid.FlagExplored, Sun: sun})
			}
		}
	}

	b := newTestBuilder(w, defaultSettings())
	got := b.computeCornerLight(grid.Coord{X: 1, Y: 2, Z: 1})
	if got.Sun != 150 {
		t.Fatalf("sun = %d, want 150", got.Sun)
	}
	if got.Ambient != 255 {
		t.Fatalf("ambient = %d, want 255 for all-open corner", got.Ambient)
	}
}

func TestComputeCornerLightWorldEdge(t *testing.T) {
	w := testWorld(grid.Dimensions{X: 4, Y: 4, Z: 4}, 1, 1)
	exploreAll(w)
	b := newTestBuilder(w, defaultSettings())

	// Corner at the world's corner: only 2 of the 8 cells are loaded, both
	// open, so the corner is fully lit ambient-wise.
	got := b.computeCornerLight(grid.Coord{X: 0, Y: 1, Z: 0})
	if got.Ambient != 255 {
		t.Fatalf("edge ambient = %d, want 255", got.Ambient)
	}
}

func TestComputeCornerLightNoNeighbors(t *testing.T) {
	w := grid.NewWorld(grid.Dimensions{X: 4, Y: 4, Z: 4})
	b := newTestBuilder(w, defaultSettings())

	got := b.computeCornerLight(grid.Coord{X: 9, Y: 1, Z: 9})
	if got.Sun != 0 || got.Ambient != 255 {
		t.Fatalf("corner with no loaded cells = %+v, want sun 0 ambient 255", got)
	}
}

func TestComputeCornerLightDynamic(t *testing.T) {
	w := testWorld(grid.Dimensions{X: 4, Y: 4, Z: 4}, 1, 1)
	exploreAll(w)
	setSolid(w, grid.Coord{X: 1, Y: 1, Z: 1}, material.Glow, true)

	b := newTestBuilder(w, defaultSettings())
	if got := b.computeCornerLight(grid.Coord{X: 1, Y: 2, Z: 1}); got.Dynamic != 255 {
		t.Fatalf("dynamic = %d next to glowstone", got.Dynamic)
	}
	if got := b.computeCornerLight(grid.Coord{X: 3, Y: 2, Z: 3}); got.Dynamic != 0 {
		t.Fatalf("dynamic = %d far from glowstone", got.Dynamic)
	}
}

func TestCornerLightMemoization(t *testing.T) {
	w := testWorld(grid.Dimensions{X: 4, Y: 4, Z: 4}, 1, 1)
	exploreAll(w)
	setSolid(w, grid.Coord{X: 1, Y: 1, Z: 1}, material.Rock, true)

	b := newTestBuilder(w, defaultSettings())
	c, _ := w.Chunk(grid.ChunkCoord{})
	s := newSliceScratch(c, 1)

	h := w.At(grid.Coord{X: 1, Y: 1, Z: 1})
	first := b.cornerLight(s, h, grid.CornerTopBackLeft)

	// The same world corner through the neighboring cell's handle must hit
	// the cache: top-back-left of (1,1,1) is top-back-right of (0,1,1).
	n := w.At(grid.Coord{X: 0, Y: 1, Z: 1})
	if got := b.cornerLight(s, n, grid.CornerTopBackRight); got != first {
		t.Fatalf("shared corner disagreed: %+v != %+v", got, first)
	}

	// Mutating the world after the first sample must not change the cached
	// answer within the same slice build.
	setSolid(w, grid.Coord{X: 0, Y: 1, Z: 0}, material.Rock, true)
	if got := b.cornerLight(s, h, grid.CornerTopBackLeft); got != first {
		t.Fatal("memoized corner recomputed after world mutation")
	}
}

func TestCornerLightOutsideSlicePanics(t *testing.T) {
	w := testWorld(grid.Dimensions{X: 4, Y: 4, Z: 4}, 1, 1)
	b := newTestBuilder(w, defaultSettings())
	c, _ := w.Chunk(grid.ChunkCoord{})
	s := newSliceScratch(c, 1)

	defer func() {
		if recover() == nil {
			t.Fatal("corner outside the slice should panic")
		}
	}()
	// A cell on level 2 has corners outside level 1's scratch planes.
	b.cornerLight(s, w.At(grid.Coord{X: 1, Y: 2, Z: 1}), grid.CornerTopFrontLeft)
}

func TestCornerExplored(t *testing.T) {
	w := testWorld(grid.Dimensions{X: 4, Y: 4, Z: 4}, 1, 1)
	b := newTestBuilder(w, defaultSettings())
	c, _ := w.Chunk(grid.ChunkCoord{})

	// Entirely unexplored: every corner reads unexplored.
	setSolid(w, grid.Coord{X: 2, Y: 1, Z: 2}, material.Rock, false)
	s := newSliceScratch(c, 1)
	h := w.At(grid.Coord{X: 2, Y: 1, Z: 2})
	for _, corner := range topCorners {
		if b.cornerExplored(s, h, corner) {
			t.Fatalf("corner %d explored in unexplored world", corner)
		}
	}

	// An explored cell west of ours reveals the two shared corners.
	w.SetCell(grid.Coord{X: 1, Y: 1, Z: 2}, grid.Cell{Flags: grid.FlagExplored})
	s = newSliceScratch(c, 1)
	if !b.cornerExplored(s, h, grid.CornerTopFrontLeft) {
		t.Fatal("front-left corner should see the explored west neighbor")
	}
	if !b.cornerExplored(s, h, grid.CornerTopBackLeft) {
		t.Fatal("back-left corner should see the explored west neighbor")
	}
	if b.cornerExplored(s, h, grid.CornerTopFrontRight) {
		t.Fatal("front-right corner does not touch the west neighbor")
	}

	// An explored cell is its own corner witness.
	setSolid(w, grid.Coord{X: 2, Y: 1, Z: 2}, material.Rock, true)
	s = newSliceScratch(c, 1)
	for _, corner := range topCorners {
		if !b.cornerExplored(s, h, corner) {
			t.Fatalf("corner %d of an explored cell should read explored", corner)
		}
	}
}

func TestFlipQuad(t *testing.T) {
	mk := func(a0, a1, a2, a3 uint8) [4]VertexColorInfo {
		return [4]VertexColorInfo{{Ambient: a0}, {Ambient: a1}, {Ambient: a2}, {Ambient: a3}}
	}

	if flipQuad(mk(100, 100, 100, 100)) {
		t.Fatal("uniform ambient must keep the standard diagonal")
	}
	if !flipQuad(mk(0, 200, 0, 200)) {
		t.Fatal("brighter 1/3 diagonal should flip")
	}
	if flipQuad(mk(200, 0, 200, 0)) {
		t.Fatal("brighter 0/2 diagonal should not flip")
	}
}

func TestVertexColorPack(t *testing.T) {
	v := VertexColorInfo{Sun: 10, Ambient: 20, Dynamic: 30}
	if v.pack() != [4]uint8{10, 20, 30, 255} {
		t.Fatalf("pack() = %v", v.pack())
	}
}
