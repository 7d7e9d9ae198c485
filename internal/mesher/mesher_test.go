package mesher

import (
	"math"

	"go.uber.org/zap"

	"github.com/deepholm/voxelmesh/internal/biome"
	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/material"
	"github.com/deepholm/voxelmesh/internal/mesh"
)

// testTint is the uniform ground-cover tint used across builder tests.
var testTint = [4]uint8{96, 176, 80, 255}

func testWorld(dims grid.Dimensions, chunksX, chunksZ int) *grid.World {
	w := grid.NewWorld(dims)
	for cz := 0; cz < chunksZ; cz++ {
		for cx := 0; cx < chunksX; cx++ {
			w.CreateChunk(grid.ChunkCoord{X: cx, Z: cz})
		}
	}
	return w
}

// exploreAll marks every cell of every loaded chunk explored, leaving
// material and sun untouched.
func exploreAll(w *grid.World) {
	for _, c := range w.Chunks() {
		d := c.Dims()
		for y := 0; y < d.Y; y++ {
			for z := 0; z < d.Z; z++ {
				for x := 0; x < d.X; x++ {
					cell := c.CellAt(x, y, z)
					cell.Flags |= grid.FlagExplored
					c.SetCell(x, y, z, cell)
				}
			}
		}
	}
}

func setSolid(w *grid.World, pos grid.Coord, mat grid.MaterialID, explored bool) {
	cell := grid.Cell{Material: mat}
	if explored {
		cell.Flags = grid.FlagExplored
	}
	w.SetCell(pos, cell)
}

func newTestBuilder(w *grid.World, s Settings) *Builder {
	return New(w, material.BuiltinLibrary(), biome.Uniform(testTint), zap.NewNop(), s, 1)
}

func defaultSettings() Settings {
	return Settings{MaxViewLevel: -1, CalculateRamps: true, BuildGroundCover: true}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func hasVertexAt(m *mesh.Mesh, x, y, z float32) bool {
	for i := range m.Vertices {
		p := m.Vertices[i].Position
		if near(p.X(), x) && near(p.Y(), y) && near(p.Z(), z) {
			return true
		}
	}
	return false
}

func maxVertexY(m *mesh.Mesh) float32 {
	maxY := float32(math.Inf(-1))
	for i := range m.Vertices {
		if y := m.Vertices[i].Position.Y(); y > maxY {
			maxY = y
		}
	}
	return maxY
}
