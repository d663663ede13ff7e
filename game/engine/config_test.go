package engine

import (
	"testing"
)

func createTestConfig() *BoardConfig {
	return &BoardConfig{
		Name:        "Engine Test Config",
		Description: "Layout for engine tests",
		Width:       8,
		Height:      8,
		LargePieces: []Coord{{X: 0, Y: 0}, {X: 4, Y: 2}},
		SmallGaps:   []Coord{{X: 7, Y: 6}, {X: 7, Y: 7}},
		LargeGaps:   []Coord{{X: 0, Y: 6}},
	}
}

func TestValidateBoardConfig_Valid(t *testing.T) {
	if err := ValidateBoardConfig(createTestConfig()); err != nil {
		t.Fatalf("Expected valid config, got error: %v", err)
	}
	if err := ValidateBoardConfig(DefaultBoardConfig()); err != nil {
		t.Fatalf("Expected default config to validate, got error: %v", err)
	}
}

func TestValidateBoardConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoardConfig)
	}{
		{"missing name", func(c *BoardConfig) { c.Name = "" }},
		{"missing description", func(c *BoardConfig) { c.Description = "" }},
		{"width too small", func(c *BoardConfig) { c.Width = 1 }},
		{"height too large", func(c *BoardConfig) { c.Height = MaxBoardSize + 1 }},
		{"too few gaps", func(c *BoardConfig) {
			c.SmallGaps = []Coord{{X: 7, Y: 7}}
			c.LargeGaps = nil
		}},
		{"large piece out of bounds", func(c *BoardConfig) {
			c.LargePieces = append(c.LargePieces, Coord{X: 9, Y: 0})
		}},
		{"large piece crosses edge without wrap", func(c *BoardConfig) {
			c.LargePieces = append(c.LargePieces, Coord{X: 7, Y: 0})
		}},
		{"overlapping footprints", func(c *BoardConfig) {
			c.LargePieces = append(c.LargePieces, Coord{X: 1, Y: 1})
		}},
		{"small gap inside large gap", func(c *BoardConfig) {
			c.SmallGaps = append(c.SmallGaps, Coord{X: 1, Y: 7})
		}},
	}

	for _, tt := range tests {
		cfg := createTestConfig()
		tt.mutate(cfg)
		if err := ValidateBoardConfig(cfg); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}

func TestValidateBoardConfig_WrapAllowsEdgeCrossing(t *testing.T) {
	cfg := &BoardConfig{
		Name:        "Wrap Crossing",
		Description: "Large piece straddling the seam",
		Width:       8,
		Height:      8,
		WrapX:       true,
		LargePieces: []Coord{{X: 7, Y: 0}},
		SmallGaps:   []Coord{{X: 3, Y: 3}, {X: 4, Y: 3}},
	}
	if err := ValidateBoardConfig(cfg); err != nil {
		t.Fatalf("Expected seam-crossing piece to validate with wrap_x, got: %v", err)
	}

	cfg.WrapX = false
	if err := ValidateBoardConfig(cfg); err == nil {
		t.Fatal("Expected seam-crossing piece to fail without wrap_x")
	}
}
