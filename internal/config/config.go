// Package config handles mesher configuration loading and management.
package config

// Config holds all mesher settings.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Mesher  MesherConfig  `yaml:"mesher"`
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// WorldConfig holds grid dimensions and generation settings.
type WorldConfig struct {
	ChunkSizeX int   `yaml:"chunk_size_x"`
	ChunkSizeY int   `yaml:"chunk_size_y"`
	ChunkSizeZ int   `yaml:"chunk_size_z"`
	ChunksX    int   `yaml:"chunks_x"` // demo world extent, in chunks
	ChunksZ    int   `yaml:"chunks_z"`
	Seed       int64 `yaml:"seed"`
}

// MesherConfig holds geometry build settings.
type MesherConfig struct {
	MaxViewLevel     int     `yaml:"max_view_level"` // -1 = full chunk height
	CalculateRamps   bool    `yaml:"calculate_ramps"`
	BuildGroundCover bool    `yaml:"build_ground_cover"`
	PerturbVertices  bool    `yaml:"perturb_vertices"`
	PerturbAmplitude float32 `yaml:"perturb_amplitude"`
	Workers          int     `yaml:"workers"` // 0 = GOMAXPROCS
}

// DataConfig holds data file paths.
type DataConfig struct {
	MaterialFile string `yaml:"material_file"` // YAML material library
}

// OutputConfig holds mesh dump settings.
type OutputConfig struct {
	DumpPath string `yaml:"dump_path"`
	Compress bool   `yaml:"compress"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			ChunkSizeX: 16,
			ChunkSizeY: 32,
			ChunkSizeZ: 16,
			ChunksX:    4,
			ChunksZ:    4,
			Seed:       1337,
		},
		Mesher: MesherConfig{
			MaxViewLevel:     -1,
			CalculateRamps:   true,
			BuildGroundCover: true,
			PerturbVertices:  false,
			PerturbAmplitude: 0.05,
			Workers:          0,
		},
		Data: DataConfig{
			MaterialFile: "materials.yaml",
		},
		Output: OutputConfig{
			DumpPath: "mesh.dump",
			Compress: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
