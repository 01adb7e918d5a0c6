package kdtree

import (
	"fmt"
	"log/slog"
)

// DefaultMaxDepth bounds recursion when no explicit MaxDepth is configured.
// Sequential insertion of adversarially ordered points can otherwise grow
// the tree (and the native call stack) linearly.
const DefaultMaxDepth = 64

// DefaultTolerance is the absolute per-coordinate tolerance used for point
// equality when Config.Tolerance is zero.
const DefaultTolerance = 1e-10

// Config controls tree behavior. Start with [DefaultConfig] and override
// the fields you need.
type Config struct {
	// Dimensions is the dimensionality k of every stored point.
	// Must be >= 1. Required.
	Dimensions int

	// MaxDepth bounds the depth of the tree. Insertions that would create a
	// node at depth >= MaxDepth fail with a ValidationError; Rebuild
	// restores logarithmic height when sequential insertion approaches the
	// bound. Default: DefaultMaxDepth.
	MaxDepth int

	// AllowDuplicates permits storing points that compare equal under
	// Tolerance. When false, inserting an equal point fails with a
	// DuplicateError and no mutation. Default: false.
	AllowDuplicates bool

	// Tolerance is the absolute per-coordinate tolerance for point
	// equality. Must be >= 0. Default: DefaultTolerance.
	Tolerance float64

	// EnableStats turns on operation counters and latency averages.
	// DefaultConfig enables it; shape metrics (height, node count, ...)
	// are available either way. Default (zero Config): false.
	EnableStats bool

	// InitialPoints are inserted via batch insertion at construction time.
	// Items that fail validation are logged and skipped; the rest remain.
	InitialPoints []Point

	// Observers receive exactly one Event per completed mutating or query
	// operation. See Observer for the concurrency contract.
	Observers []Observer

	// Logger receives structured debug/warn logging. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults for dims-dimensional
// points.
func DefaultConfig(dims int) Config {
	return Config{
		Dimensions:  dims,
		MaxDepth:    DefaultMaxDepth,
		Tolerance:   DefaultTolerance,
		EnableStats: true,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultTolerance
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.Dimensions < 1 {
		return fmt.Errorf("kdtree: Dimensions must be >= 1, got %d", cfg.Dimensions)
	}
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("kdtree: MaxDepth must be >= 1, got %d", cfg.MaxDepth)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("kdtree: Tolerance must be >= 0, got %f", cfg.Tolerance)
	}
	return nil
}
