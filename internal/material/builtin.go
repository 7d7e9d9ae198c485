package material

import (
	"github.com/deepholm/voxelmesh/internal/grid"
)

// Builtin material IDs used by the demo worldgen and the default library.
const (
	Bedrock grid.MaterialID = 1
	Rock    grid.MaterialID = 2
	Dirt    grid.MaterialID = 3
	Grass   grid.MaterialID = 4
	Sand    grid.MaterialID = 5
	Glow    grid.MaterialID = 6
	Ice     grid.MaterialID = 7
)

// BuiltinLibrary returns the default library so tools and tests run without
// a material file on disk. Tile indices follow the stock 16x16 atlas layout.
func BuiltinLibrary() *Library {
	atlas := Atlas{TilesPerRow: 16, Inset: 0.02}

	seq16 := func(start int) []int {
		tiles := make([]int, 16)
		for i := range tiles {
			tiles[i] = start + i
		}
		return tiles
	}
	seq8 := func(start int) []int {
		tiles := make([]int, 8)
		for i := range tiles {
			tiles[i] = start + i
		}
		return tiles
	}

	mats := []materialFile{
		{ID: uint16(Bedrock), Name: "bedrock", Tiles: tileSet(0, 0, 0)},
		{ID: uint16(Rock), Name: "rock", Rampable: true, RampDepth: 1, Tiles: tileSet(1, 1, 2)},
		{ID: uint16(Dirt), Name: "dirt", Rampable: true, RampDepth: 1, Tiles: tileSet(3, 3, 4)},
		{
			ID: uint16(Grass), Name: "grass",
			GroundCover: true, Rampable: true, RampDepth: 1,
			Tint:            [4]uint8{96, 176, 80, 255},
			Tiles:           tileSet(16, 3, 17),
			Transition:      "horizontal",
			TransitionTiles: seq16(32),
			FringeTiles:     seq8(48),
		},
		{
			ID: uint16(Sand), Name: "sand",
			Rampable: true, RampDepth: 1,
			Tiles:          tileSet(5, 5, 5),
			Transition:     "directional",
			FrontBackTiles: seq16(64),
			LeftRightTiles: seq16(80),
		},
		{ID: uint16(Glow), Name: "glowstone", EmitsLight: true, Tiles: tileSet(6, 6, 6)},
		{ID: uint16(Ice), Name: "ice", Transparent: true, Tiles: tileSet(7, 7, 7)},
	}

	defs := make([]*Definition, 0, len(mats))
	for i := range mats {
		d, err := mats[i].build(atlas)
		if err != nil {
			panic(err) // static data, cannot fail
		}
		defs = append(defs, d)
	}

	lib, err := NewLibrary(atlas, defs, "bedrock", 255)
	if err != nil {
		panic(err)
	}
	return lib
}

func tileSet(top, bottom, side int) tileTriple {
	return tileTriple{Top: top, Bottom: bottom, Side: side}
}
