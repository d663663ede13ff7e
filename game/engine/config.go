package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BoardConfig describes a puzzle layout loaded from JSON. It is immutable
// after construction: width and height of the board, wrap flags per axis,
// and the home top-left coordinates of every 2x2 piece, 1x1 gap and 2x2
// gap. Every remaining cell becomes a 1x1 piece.
type BoardConfig struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	WrapX       bool    `json:"wrap_x"`
	WrapY       bool    `json:"wrap_y"`
	LargePieces []Coord `json:"large_pieces"`
	SmallGaps   []Coord `json:"small_gaps"`
	LargeGaps   []Coord `json:"large_gaps"`
}

// ValidateBoardConfig validates a board configuration for correctness. A
// malformed configuration is a construction-time contract violation; the
// move engine never tolerates one at runtime.
func ValidateBoardConfig(cfg *BoardConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if cfg.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if cfg.Width < MinBoardSize || cfg.Width > MaxBoardSize {
		return fmt.Errorf("config validation: width must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, cfg.Width)
	}
	if cfg.Height < MinBoardSize || cfg.Height > MaxBoardSize {
		return fmt.Errorf("config validation: height must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, cfg.Height)
	}
	if len(cfg.SmallGaps)+len(cfg.LargeGaps) < 2 {
		return fmt.Errorf("config validation: at least two gaps are required, got %d", len(cfg.SmallGaps)+len(cfg.LargeGaps))
	}

	// Coverage check: every declared footprint must stay in bounds
	// (crossing an edge is only allowed on a wrapping axis) and no two
	// footprints may share a cell.
	covered := make([]bool, cfg.Width*cfg.Height)
	mark := func(kind string, c Coord, size int) error {
		if c.X < 0 || c.X >= cfg.Width || c.Y < 0 || c.Y >= cfg.Height {
			return fmt.Errorf("config validation: %s home (%d,%d) is out of bounds", kind, c.X, c.Y)
		}
		for oy := 0; oy < size; oy++ {
			for ox := 0; ox < size; ox++ {
				x, y := c.X+ox, c.Y+oy
				if x >= cfg.Width {
					if !cfg.WrapX {
						return fmt.Errorf("config validation: %s at (%d,%d) crosses the right edge without wrap_x", kind, c.X, c.Y)
					}
					x -= cfg.Width
				}
				if y >= cfg.Height {
					if !cfg.WrapY {
						return fmt.Errorf("config validation: %s at (%d,%d) crosses the bottom edge without wrap_y", kind, c.X, c.Y)
					}
					y -= cfg.Height
				}
				idx := y*cfg.Width + x
				if covered[idx] {
					return fmt.Errorf("config validation: %s at (%d,%d) overlaps another footprint at (%d,%d)", kind, c.X, c.Y, x, y)
				}
				covered[idx] = true
			}
		}
		return nil
	}

	for _, c := range cfg.LargePieces {
		if err := mark("large piece", c, 2); err != nil {
			return err
		}
	}
	for _, c := range cfg.LargeGaps {
		if err := mark("large gap", c, 2); err != nil {
			return err
		}
	}
	for _, c := range cfg.SmallGaps {
		if err := mark("small gap", c, 1); err != nil {
			return err
		}
	}

	return nil
}

// LoadBoardConfig loads a board configuration from a JSON file.
func LoadBoardConfig(filename string) (*BoardConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg BoardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := ValidateBoardConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigByName loads a board configuration by name from the configs
// directory.
func LoadConfigByName(configName string) (*BoardConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var cfg BoardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	if err := ValidateBoardConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &cfg, nil
}

// DefaultBoardConfig returns the built-in fallback layout: an 8x8 board with
// two large pieces, one large gap and two small gaps, no wrapping.
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		Name:        "default",
		Description: "Built-in 8x8 layout with two large pieces and three gaps",
		Width:       8,
		Height:      8,
		LargePieces: []Coord{{X: 0, Y: 0}, {X: 4, Y: 2}},
		SmallGaps:   []Coord{{X: 7, Y: 6}, {X: 7, Y: 7}},
		LargeGaps:   []Coord{{X: 0, Y: 6}},
	}
}
