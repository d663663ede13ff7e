// Command validate provides a small CLI that validates board configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board dimensions within the supported range
//   - At least two gaps (the minimum for any large piece to travel)
//   - Footprints in bounds; edge crossing only on a wrapping axis
//   - No two declared footprints sharing a cell
//
// Unlike the engine's fail-fast loader it accumulates every problem it finds,
// so a broken file can be fixed in one pass.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	minBoardSize = 2
	maxBoardSize = 64
)

// Coord is a board coordinate as it appears in config JSON.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Config mirrors the JSON schema for a board configuration.
type Config struct {
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

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	if config.Width < minBoardSize || config.Width > maxBoardSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("width must be between %d and %d, got %d", minBoardSize, maxBoardSize, config.Width))
	}
	if config.Height < minBoardSize || config.Height > maxBoardSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("height must be between %d and %d, got %d", minBoardSize, maxBoardSize, config.Height))
	}

	gapCount := len(config.SmallGaps) + len(config.LargeGaps)
	if gapCount < 2 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("At least 2 gaps are required, got %d", gapCount))
	}

	// Stop before the coverage pass if the dimensions are unusable.
	if config.Width < minBoardSize || config.Height < minBoardSize {
		return result
	}

	// Footprint coverage: in bounds, edge crossings only on wrapping axes,
	// and no shared cells.
	covered := make([]bool, config.Width*config.Height)
	mark := func(kind string, c Coord, size int) {
		if c.X < 0 || c.X >= config.Width || c.Y < 0 || c.Y >= config.Height {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s home (%d,%d) is out of bounds", kind, c.X, c.Y))
			return
		}
		for oy := 0; oy < size; oy++ {
			for ox := 0; ox < size; ox++ {
				x, y := c.X+ox, c.Y+oy
				if x >= config.Width {
					if !config.WrapX {
						result.Valid = false
						result.Errors = append(result.Errors, fmt.Sprintf("%s at (%d,%d) crosses the right edge without wrap_x", kind, c.X, c.Y))
						return
					}
					x -= config.Width
				}
				if y >= config.Height {
					if !config.WrapY {
						result.Valid = false
						result.Errors = append(result.Errors, fmt.Sprintf("%s at (%d,%d) crosses the bottom edge without wrap_y", kind, c.X, c.Y))
						return
					}
					y -= config.Height
				}
				idx := y*config.Width + x
				if covered[idx] {
					result.Valid = false
					result.Errors = append(result.Errors, fmt.Sprintf("%s at (%d,%d) overlaps another footprint at (%d,%d)", kind, c.X, c.Y, x, y))
					return
				}
				covered[idx] = true
			}
		}
	}

	for _, c := range config.LargePieces {
		mark("large piece", c, 2)
	}
	for _, c := range config.LargeGaps {
		mark("large gap", c, 2)
	}
	for _, c := range config.SmallGaps {
		mark("small gap", c, 1)
	}

	// Add informational data
	if result.Valid {
		declaredCells := 4*len(config.LargePieces) + 4*len(config.LargeGaps) + len(config.SmallGaps)
		smallPieces := config.Width*config.Height - declaredCells
		wrap := "none"
		switch {
		case config.WrapX && config.WrapY:
			wrap = "both"
		case config.WrapX:
			wrap = "x"
		case config.WrapY:
			wrap = "y"
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d (wrap: %s)", config.Width, config.Height, wrap))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Large pieces: %d", len(config.LargePieces)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Gaps: %d small, %d large", len(config.SmallGaps), len(config.LargeGaps)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Small pieces (derived): %d", smallPieces))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
