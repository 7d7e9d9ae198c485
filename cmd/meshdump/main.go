// Package main is the entry point for the meshdump tool: it generates a demo
// world, meshes every chunk concurrently and writes the result as a
// zstd-compressed binary dump.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/deepholm/voxelmesh/internal/biome"
	"github.com/deepholm/voxelmesh/internal/config"
	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/logger"
	"github.com/deepholm/voxelmesh/internal/material"
	"github.com/deepholm/voxelmesh/internal/mesh"
	"github.com/deepholm/voxelmesh/internal/mesher"
	"github.com/deepholm/voxelmesh/internal/worldgen"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== voxelmesh dump ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("meshdump failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	world := grid.NewWorld(grid.Dimensions{
		X: cfg.World.ChunkSizeX,
		Y: cfg.World.ChunkSizeY,
		Z: cfg.World.ChunkSizeZ,
	})
	worldgen.Generate(world, worldgen.Options{
		Seed:    cfg.World.Seed,
		ChunksX: cfg.World.ChunksX,
		ChunksZ: cfg.World.ChunksZ,
	}, logger.Log)

	tints := biome.NewField(cfg.World.Seed, nil, 0)
	builder := mesher.New(world, lib, tints, logger.Log, mesher.Settings{
		MaxViewLevel:     cfg.Mesher.MaxViewLevel,
		CalculateRamps:   cfg.Mesher.CalculateRamps,
		BuildGroundCover: cfg.Mesher.BuildGroundCover,
		PerturbVertices:  cfg.Mesher.PerturbVertices,
		PerturbAmplitude: cfg.Mesher.PerturbAmplitude,
	}, cfg.World.Seed)

	meshes := buildAll(world, builder, cfg.Mesher.Workers)

	if err := writeDump(cfg.Output, world, meshes); err != nil {
		return err
	}

	var verts, idxs int
	for _, m := range meshes {
		verts += len(m.Vertices)
		idxs += len(m.Indices)
	}
	logger.Info("dump written",
		zap.String("path", cfg.Output.DumpPath),
		zap.Bool("compressed", cfg.Output.Compress),
		zap.Int("chunks", len(meshes)),
		zap.Int("vertices", verts),
		zap.Int("triangles", idxs/3),
	)
	return nil
}

func loadLibrary(cfg *config.Config) (*material.Library, error) {
	path := cfg.Data.MaterialFile
	if path == "" {
		logger.Info("using builtin material library")
		return material.BuiltinLibrary(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn("material file missing, using builtin library", zap.String("path", path))
		return material.BuiltinLibrary(), nil
	}
	lib, err := material.LoadLibrary(path)
	if err != nil {
		return nil, err
	}
	logger.Info("material library loaded", zap.String("path", path))
	return lib, nil
}

// buildAll meshes every chunk with a bounded worker pool and returns the
// meshes in the world's deterministic chunk order.
func buildAll(world *grid.World, builder *mesher.Builder, workers int) []*mesh.Mesh {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := world.Chunks()
	meshes := make([]*mesh.Mesh, len(chunks))

	start := time.Now()
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				meshes[i] = builder.BuildChunk(chunks[i])
			}
		}()
	}
	for i := range chunks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	logger.Info("chunks meshed",
		zap.Int("chunks", len(chunks)),
		zap.Int("workers", workers),
		zap.Duration("took", time.Since(start)),
	)
	return meshes
}

// writeDump streams every chunk mesh to the output file, preceded by its
// lattice coordinate, optionally through a zstd frame.
func writeDump(out config.OutputConfig, world *grid.World, meshes []*mesh.Mesh) error {
	f, err := os.Create(out.DumpPath)
	if err != nil {
		return fmt.Errorf("creating dump file: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var enc *zstd.Encoder
	if out.Compress {
		enc, err = zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		w = enc
	}

	chunks := world.Chunks()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(chunks))); err != nil {
		return fmt.Errorf("writing dump header: %w", err)
	}
	for i, c := range chunks {
		coord := [2]int32{int32(c.Coord().X), int32(c.Coord().Z)}
		if err := binary.Write(w, binary.LittleEndian, coord); err != nil {
			return fmt.Errorf("writing chunk coord: %w", err)
		}
		if _, err := meshes[i].WriteTo(w); err != nil {
			return fmt.Errorf("writing chunk %v: %w", c.Coord(), err)
		}
	}

	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flushing zstd stream: %w", err)
		}
	}
	return f.Close()
}
