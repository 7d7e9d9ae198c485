package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagMaterials = flag.String("materials", "", "Path to material library file")
	flagOut       = flag.String("out", "", "Mesh dump output path")
	flagSeed      = flag.Int64("seed", 0, "World generation seed")
	flagWorkers   = flag.Int("workers", 0, "Concurrent chunk builders")
	flagNoRamps   = flag.Bool("no-ramps", false, "Disable ramp recomputation")
	flagNoFringe  = flag.Bool("no-fringe", false, "Disable ground-cover fringe geometry")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMaterials != "" {
		cfg.Data.MaterialFile = *flagMaterials
	}
	if *flagOut != "" {
		cfg.Output.DumpPath = *flagOut
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
	if *flagWorkers > 0 {
		cfg.Mesher.Workers = *flagWorkers
	}
	if *flagNoRamps {
		cfg.Mesher.CalculateRamps = false
	}
	if *flagNoFringe {
		cfg.Mesher.BuildGroundCover = false
	}
}
