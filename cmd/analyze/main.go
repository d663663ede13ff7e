// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes dimensions, entity
// counts, mobility from the solved position, and how far each large piece's
// home sits from the nearest large gap.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/Catobat/overworld-slide-puzzle/game/engine"
)

func main() {
	configs := []string{
		"classic.json",
		"twin_chambers.json",
		"wrap_ring.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	config, err := engine.LoadBoardConfig(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Grid: %d x %d\n", config.Width, config.Height)
	fmt.Printf("Wrap: x=%t y=%t\n", config.WrapX, config.WrapY)

	board, err := engine.NewBoardFromConfig(config)
	if err != nil {
		fmt.Printf("Error building board: %v\n", err)
		return
	}

	largePieces := 0
	smallPieces := 0
	for _, p := range board.Pieces {
		if p.IsGap {
			continue
		}
		if p.IsLarge {
			largePieces++
		} else {
			smallPieces++
		}
	}
	gaps := board.Gaps()
	smallGaps := 0
	largeGaps := 0
	for _, g := range gaps {
		if g.IsLarge {
			largeGaps++
		} else {
			smallGaps++
		}
	}

	fmt.Printf("Large Pieces: %d\n", largePieces)
	fmt.Printf("Small Pieces: %d\n", smallPieces)
	fmt.Printf("Gaps: %d small, %d large\n", smallGaps, largeGaps)

	gapCells := smallGaps + 4*largeGaps
	totalCells := config.Width * config.Height
	fmt.Printf("Gap density: %d/%d cells (%.1f%%)\n",
		gapCells, totalCells, 100*float64(gapCells)/float64(totalCells))

	// Mobility from the solved position
	moves := board.EnumerateValidMoves()
	smallMoves := 0
	largeMoves := 0
	swapMoves := 0
	for _, m := range moves {
		switch {
		case m.IsGapSwap:
			swapMoves++
		case m.IsLarge:
			largeMoves++
		default:
			smallMoves++
		}
	}
	fmt.Printf("Moves from solved: %d (%d small, %d large, %d gap swaps)\n",
		len(moves), smallMoves, largeMoves, swapMoves)

	if largeMoves == 0 && largePieces > 0 {
		fmt.Printf("⚠️  No large piece can move from the solved position; large tiles need gap routing first\n")
	}

	// Distance from each large piece home to the nearest large gap home.
	// Large tiles travel only through large gap space or paired small gaps,
	// so a big distance here usually means a harder board.
	for _, p := range board.Pieces {
		if p.IsGap || !p.IsLarge {
			continue
		}
		best := -1
		for _, g := range gaps {
			if !g.IsLarge {
				continue
			}
			d := wrapDistance(p.HomeX, g.HomeX, config.Width, config.WrapX) +
				wrapDistance(p.HomeY, g.HomeY, config.Height, config.WrapY)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 {
			fmt.Printf("Large piece home (%d,%d): nearest large gap home at distance %d\n",
				p.HomeX, p.HomeY, best)
		} else {
			fmt.Printf("Large piece home (%d,%d): no large gaps; it can only move through small gap pairs\n",
				p.HomeX, p.HomeY)
		}
	}
}

// wrapDistance returns the axis distance between two coordinates, taking the
// shorter way around on a wrapping axis.
func wrapDistance(a, b, n int, wrap bool) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrap && n-d < d {
		d = n - d
	}
	return d
}
