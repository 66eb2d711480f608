// Package config loads the solver's tunable limits from the environment,
// in the style of ThoDHa-sudoku's pkg/config: plain os.Getenv reads with
// fallback defaults, no config-file parser.
package config

import (
	"os"
	"strconv"
)

// SolverConfig holds the two limits spec.md §9 names explicitly.
type SolverConfig struct {
	// AllPossibleAssignmentsLimit caps the domain product the default
	// enumeration pruner (spec.md §4.3) will expand. Above this the
	// pruner is skipped for that constraint check; only QuickUpdate runs.
	AllPossibleAssignmentsLimit int

	// MaxBifurcationLevel caps how many nested trial assignments
	// (spec.md §4.7) the bifurcation controller will chain.
	MaxBifurcationLevel int
}

// Default returns the documented defaults: 1e5 for the enumeration limit,
// 1 for the bifurcation depth.
func Default() SolverConfig {
	return SolverConfig{
		AllPossibleAssignmentsLimit: 100_000,
		MaxBifurcationLevel:         1,
	}
}

// Load reads SUDOKU_ASSIGNMENTS_LIMIT and SUDOKU_MAX_BIFURCATION_LEVEL
// from the environment, falling back to Default() for anything unset or
// unparsable.
func Load() SolverConfig {
	cfg := Default()
	if v := getEnvInt("SUDOKU_ASSIGNMENTS_LIMIT"); v > 0 {
		cfg.AllPossibleAssignmentsLimit = v
	}
	if v := getEnvInt("SUDOKU_MAX_BIFURCATION_LEVEL"); v >= 0 {
		cfg.MaxBifurcationLevel = v
	}
	return cfg
}

func getEnvInt(key string) int {
	raw := os.Getenv(key)
	if raw == "" {
		return -1
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
