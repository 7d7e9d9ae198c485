// Package worldgen builds the deterministic demo terrain meshed by the CLI:
// a layered opensimplex heightfield with bedrock, rock, dirt and a grass or
// sand surface, revealed inside a disc around the world center.
package worldgen

import (
	"math"
	"time"

	"github.com/ojrac/opensimplex-go"
	"go.uber.org/zap"

	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/material"
)

// Options controls terrain generation. The same seed always yields the same
// world.
type Options struct {
	Seed    int64
	ChunksX int
	ChunksZ int
	// ExploredRadius is the revealed disc around the world center, in cells.
	// Zero derives a radius from the world extent so the fog boundary always
	// lands inside the generated area.
	ExploredRadius float64
}

type generator struct {
	height opensimplex.Noise
	pocket opensimplex.Noise
	radius float64
	cx, cz float64
}

// Generate fills the world with terrain chunk by chunk.
func Generate(w *grid.World, opts Options, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	dims := w.Dims()
	worldX := opts.ChunksX * dims.X
	worldZ := opts.ChunksZ * dims.Z

	radius := opts.ExploredRadius
	if radius <= 0 {
		radius = 0.35 * float64(min(worldX, worldZ))
	}

	g := &generator{
		height: opensimplex.NewNormalized(opts.Seed),
		pocket: opensimplex.New(opts.Seed + 1),
		radius: radius,
		cx:     float64(worldX) / 2,
		cz:     float64(worldZ) / 2,
	}

	for cz := 0; cz < opts.ChunksZ; cz++ {
		for cx := 0; cx < opts.ChunksX; cx++ {
			g.fillChunk(w.CreateChunk(grid.ChunkCoord{X: cx, Z: cz}))
		}
	}

	log.Info("world generated",
		zap.Int("chunks_x", opts.ChunksX),
		zap.Int("chunks_z", opts.ChunksZ),
		zap.Int64("seed", opts.Seed),
		zap.Float64("explored_radius", radius),
		zap.Duration("took", time.Since(start)),
	)
}

func (g *generator) fillChunk(c *grid.Chunk) {
	o := c.Origin()
	d := c.Dims()
	sandLine := d.Y/4 + 1

	for lz := 0; lz < d.Z; lz++ {
		for lx := 0; lx < d.X; lx++ {
			gx, gz := o.X+lx, o.Z+lz
			h := g.columnHeight(gx, gz, d.Y)

			dx, dz := float64(gx)-g.cx, float64(gz)-g.cz
			explored := math.Sqrt(dx*dx+dz*dz) <= g.radius

			var flags grid.CellFlags
			if explored {
				flags = grid.FlagExplored
			}

			for ly := 0; ly < d.Y; ly++ {
				cell := grid.Cell{Flags: flags}
				if ly <= h {
					cell.Material = g.columnMaterial(gx, ly, gz, h, sandLine)
					cell.Sun = sunAtDepth(h - ly)
				} else {
					cell.Sun = 255
				}
				c.SetCell(lx, ly, lz, cell)
			}
		}
	}
}

// columnHeight stacks two noise octaves: broad hills plus fine relief.
func (g *generator) columnHeight(x, z, maxY int) int {
	fx, fz := float64(x), float64(z)
	v := 0.65*g.height.Eval2(fx/48, fz/48) + 0.35*g.height.Eval2(fx/12, fz/12)
	h := 3 + int(v*float64(maxY-8))
	if h < 1 {
		h = 1
	}
	if h > maxY-2 {
		h = maxY - 2
	}
	return h
}

func (g *generator) columnMaterial(x, y, z, surface, sandLine int) grid.MaterialID {
	switch {
	case y == 0:
		return material.Bedrock
	case y == surface && surface <= sandLine:
		return material.Sand
	case y == surface:
		return material.Grass
	case y >= surface-2:
		return material.Dirt
	}
	// Rare glowstone pockets deep in the rock give the dynamic-light channel
	// something to pick up.
	if g.pocket.Eval3(float64(x)/7, float64(y)/7, float64(z)/7) > 0.82 {
		return material.Glow
	}
	return material.Rock
}

// sunAtDepth attenuates sunlight through solid ground.
func sunAtDepth(depth int) uint8 {
	s := 200 - 45*depth
	if s < 0 {
		return 0
	}
	return uint8(s)
}
