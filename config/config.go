// Package config loads the optional TOML run configuration consumed by the
// artevo binaries. Missing fields fall back to the parameter defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/artevo/genetic"
	"github.com/lixenwraith/artevo/parameter"
)

// Run describes one evolution run
type Run struct {
	// Image is the path to the reference image (PNG, JPEG or BMP)
	Image string `toml:"image"`

	PopulationSize    int     `toml:"population_size"`
	NbShapes          int     `toml:"nb_shapes"`
	EliteCount        int     `toml:"elite_count"`
	MutationRate      float64 `toml:"mutation_rate"`
	CrossoverRate     float64 `toml:"crossover_rate"`
	MaxIterations     int     `toml:"max_iterations"`
	IslandCount       int     `toml:"island_count"`
	MigrationInterval int     `toml:"migration_interval"`

	// SavePath is where best solutions are written on exit
	SavePath string `toml:"save_path"`
}

// Default returns the shipped tuning
func Default() Run {
	return Run{
		PopulationSize:    parameter.GAPopulationSize,
		NbShapes:          parameter.GANbShapes,
		EliteCount:        parameter.GAEliteCount,
		MutationRate:      parameter.GAMutationRate,
		CrossoverRate:     parameter.GACrossoverRate,
		MaxIterations:     parameter.GAMaxIterations,
		IslandCount:       parameter.GAIslandCount,
		MigrationInterval: parameter.GAMigrationInterval,
		SavePath:          parameter.GAPersistencePath,
	}
}

// Load reads a TOML run configuration, overlaying the defaults
func Load(path string) (Run, error) {
	run := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return run, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &run); err != nil {
		return run, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return run, nil
}

// Params builds engine parameters from the run configuration.
// Width and height come from the loaded reference image.
func (r Run) Params(width, height int) genetic.Params {
	return genetic.Params{
		PopulationSize:    r.PopulationSize,
		NbShapes:          r.NbShapes,
		EliteCount:        r.EliteCount,
		MutationRate:      r.MutationRate,
		CrossoverRate:     r.CrossoverRate,
		MaxIterations:     r.MaxIterations,
		IslandCount:       r.IslandCount,
		MigrationInterval: r.MigrationInterval,
		Width:             width,
		Height:            height,
	}
}
