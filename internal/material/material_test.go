package material

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deepholm/voxelmesh/internal/grid"
)

func TestTileRect(t *testing.T) {
	a := Atlas{TilesPerRow: 4}

	r := a.TileRect(0)
	if r.Min != [2]float32{0, 0} || r.Max != [2]float32{0.25, 0.25} {
		t.Fatalf("tile 0 = %v", r)
	}
	r = a.TileRect(5) // row 1, col 1
	if r.Min != [2]float32{0.25, 0.25} || r.Max != [2]float32{0.5, 0.5} {
		t.Fatalf("tile 5 = %v", r)
	}
}

func TestTileRectInset(t *testing.T) {
	a := Atlas{TilesPerRow: 4, Inset: 0.1}
	r := a.TileRect(0)
	// 10% of a 0.25-wide tile on each edge.
	want := float32(0.025)
	if abs32(r.Min[0]-want) > 1e-6 || abs32(r.Max[0]-(0.25-want)) > 1e-6 {
		t.Fatalf("inset rect = %v", r)
	}
}

func TestUVRectCorners(t *testing.T) {
	r := UVRect{Min: [2]float32{0, 0}, Max: [2]float32{1, 2}}
	want := [4][2]float32{{0, 0}, {1, 0}, {1, 2}, {0, 2}}
	for i, w := range want {
		if got := r.Corner(i); got != w {
			t.Fatalf("corner %d = %v, want %v", i, got, w)
		}
	}
}

func TestLibraryValidation(t *testing.T) {
	atlas := Atlas{TilesPerRow: 16}
	bedrock := &Definition{ID: 1, Name: "bedrock"}

	cases := []struct {
		name    string
		defs    []*Definition
		bedrock string
		wantErr string
	}{
		{"reserved id", []*Definition{{ID: 0, Name: "air"}}, "air", "reserved id"},
		{"duplicate id", []*Definition{bedrock, {ID: 1, Name: "rock"}}, "bedrock", "duplicate material id"},
		{"duplicate name", []*Definition{bedrock, {ID: 2, Name: "bedrock"}}, "bedrock", "duplicate material name"},
		{"missing bedrock", []*Definition{bedrock}, "granite", "not defined"},
	}
	for _, tc := range cases {
		_, err := NewLibrary(atlas, tc.defs, tc.bedrock, 255)
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: err = %v, want %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestResolve(t *testing.T) {
	lib := BuiltinLibrary()

	if d := lib.Resolve(Rock, true); d.Name != "rock" {
		t.Fatalf("Resolve(rock) = %q", d.Name)
	}
	// Unknown material on unexplored terrain obscures as bedrock.
	if d := lib.Resolve(999, false); d != lib.Bedrock() {
		t.Fatal("unexplored unknown material should resolve to bedrock")
	}
	// Unknown material on explored terrain is corrupt data.
	defer func() {
		if recover() == nil {
			t.Fatal("Resolve of unknown explored material should panic")
		}
	}()
	lib.Resolve(999, true)
}

func TestLoadLibraryYAML(t *testing.T) {
	src := `
atlas:
  tiles_per_row: 8
  inset: 0.05
bedrock: stone
unexplored_tile: 63
materials:
  - id: 1
    name: stone
    tiles: { top: 0, bottom: 0, side: 1 }
  - id: 2
    name: moss
    ground_cover: true
    rampable: true
    ramp_depth: 0.5
    tint: [10, 20, 30, 255]
    tiles: { top: 2, bottom: 0, side: 3 }
    transition: horizontal
    transition_tiles: [8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23]
    fringe_tiles: [24, 25, 26, 27, 28, 29, 30, 31]
`
	path := filepath.Join(t.TempDir(), "materials.yaml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	moss, ok := lib.ByName("moss")
	if !ok {
		t.Fatal("moss not loaded")
	}
	if !moss.GroundCover || !moss.Rampable || moss.RampDepth != 0.5 {
		t.Fatalf("moss flags wrong: %+v", moss)
	}
	if moss.Tint != [4]uint8{10, 20, 30, 255} {
		t.Fatalf("moss tint = %v", moss.Tint)
	}
	if moss.Transition != TransitionHorizontal {
		t.Fatal("moss should be horizontal transition")
	}
	if moss.TransitionTiles[0] != lib.Atlas().TileRect(8) {
		t.Fatal("transition tiles not mapped in order")
	}
	if moss.FringeTiles[7] != lib.Atlas().TileRect(31) {
		t.Fatal("fringe tiles not mapped in order")
	}
	if lib.Bedrock().Name != "stone" {
		t.Fatalf("bedrock = %q", lib.Bedrock().Name)
	}
	if lib.UnexploredTile() != lib.Atlas().TileRect(63) {
		t.Fatal("unexplored tile rect wrong")
	}

	// Stone has no tint in the file; it must default to opaque white.
	stone, _ := lib.ByName("stone")
	if stone.Tint != [4]uint8{255, 255, 255, 255} {
		t.Fatalf("default tint = %v", stone.Tint)
	}
	if stone.FaceUVs[grid.FaceFront] != lib.Atlas().TileRect(1) {
		t.Fatal("side tile not applied to front face")
	}
}

func TestParseLibraryErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"no atlas",
			"materials: []",
			"tiles_per_row",
		},
		{
			"short transition tiles",
			`
atlas: { tiles_per_row: 8 }
bedrock: a
materials:
  - { id: 1, name: a, tiles: { top: 0, bottom: 0, side: 0 }, transition: horizontal, transition_tiles: [1, 2, 3] }
`,
			"16 entries",
		},
		{
			"ground cover without fringe",
			`
atlas: { tiles_per_row: 8 }
bedrock: a
materials:
  - { id: 1, name: a, ground_cover: true, tiles: { top: 0, bottom: 0, side: 0 } }
`,
			"fringe_tiles",
		},
		{
			"unknown transition",
			`
atlas: { tiles_per_row: 8 }
bedrock: a
materials:
  - { id: 1, name: a, tiles: { top: 0, bottom: 0, side: 0 }, transition: diagonal }
`,
			"unknown transition",
		},
	}
	for _, tc := range cases {
		if _, err := ParseLibrary([]byte(tc.src)); err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: err = %v, want %q", tc.name, err, tc.want)
		}
	}
}

func TestBuiltinLibrary(t *testing.T) {
	lib := BuiltinLibrary()

	grass, ok := lib.Get(Grass)
	if !ok || !grass.GroundCover || grass.Transition != TransitionHorizontal {
		t.Fatalf("builtin grass wrong: %+v", grass)
	}
	sand, _ := lib.Get(Sand)
	if sand.Transition != TransitionDirectional {
		t.Fatal("builtin sand should transition directionally")
	}
	glow, _ := lib.Get(Glow)
	if !glow.EmitsLight {
		t.Fatal("builtin glowstone should emit light")
	}
	ice, _ := lib.Get(Ice)
	if !ice.Transparent {
		t.Fatal("builtin ice should be transparent")
	}
}

func abs32(v float32) float64 { return math.Abs(float64(v)) }
