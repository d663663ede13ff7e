// Package config provides board configuration management for the slide puzzle.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Configuration validation via the engine's fail-fast validator
//   - Default configuration selection
//   - Configuration discovery, listing, and saving
//
// Configuration Format:
//
// Board configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Grid dimensions and per-axis wrap flags
//   - Home positions of 2x2 tiles, 1x1 gaps, and 2x2 gaps
//   - Every remaining cell becomes a 1x1 tile implicitly
//
// Available Configurations:
//
// The shipped set covers the main board topologies:
//   - classic: 8x8 non-wrapping board with mixed tile and gap sizes
//   - twin_chambers: two aligned large gaps enabling cascading large moves
//   - wrap_ring: horizontally wrapping board with a seam-straddling tile
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	boardConfig, err := manager.LoadConfig("wrap_ring")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Defaults:
//
// The default configuration is classic.json when present, otherwise the first
// valid file in the directory, otherwise a built-in minimal board. SetDefault
// switches the default at runtime and RefreshCache drops the cache so edited
// files are picked up.
//
// Validation:
//
// All configurations are validated for:
//   - Dimensions within the supported range
//   - Home coordinates in bounds
//   - Footprints crossing an edge only on a wrapping axis
//   - No overlapping footprints
//   - At least two gaps
package config
