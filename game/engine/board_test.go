package engine

import (
	"math/rand"
	"reflect"
	"testing"
)

// gapAt finds the gap currently anchored at (x, y).
func gapAt(t *testing.T, b *Board, x, y int) *Piece {
	t.Helper()
	for _, g := range b.Gaps() {
		if g.X == x && g.Y == y {
			return g
		}
	}
	t.Fatalf("No gap anchored at (%d,%d)", x, y)
	return nil
}

// checkGridConsistency verifies every entity's normalized footprint cells
// reference its ID, and every cell is covered exactly once.
func checkGridConsistency(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[[2]int]int)
	for _, p := range b.Pieces {
		for _, c := range b.footprintCells(p.X, p.Y, p.Size()) {
			cell := b.Grid[c[1]][c[0]]
			if cell.ID != p.ID {
				t.Fatalf("Grid cell (%d,%d) references %d, expected %d", c[0], c[1], cell.ID, p.ID)
			}
			if prev, dup := seen[c]; dup {
				t.Fatalf("Cell (%d,%d) covered by both %d and %d", c[0], c[1], prev, p.ID)
			}
			seen[c] = p.ID
		}
	}
	if len(seen) != b.Width*b.Height {
		t.Fatalf("Expected %d covered cells, got %d", b.Width*b.Height, len(seen))
	}
}

func TestNewBoardFromConfig(t *testing.T) {
	b, err := NewBoardFromConfig(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	// Creation order is large pieces, large gaps, small gaps, then the
	// small-piece fill, so IDs are stable for a layout.
	if !b.Pieces[0].IsLarge || b.Pieces[0].IsGap {
		t.Error("Expected entity 0 to be a large piece")
	}
	if !b.Pieces[2].IsLarge || !b.Pieces[2].IsGap {
		t.Error("Expected entity 2 to be the large gap")
	}
	if b.Pieces[3].IsLarge || !b.Pieces[3].IsGap {
		t.Error("Expected entity 3 to be a small gap")
	}
	if b.Pieces[5].IsLarge || b.Pieces[5].IsGap {
		t.Error("Expected entity 5 to be a small piece")
	}

	// 64 cells: 3 large entities cover 12, 2 small gaps cover 2, leaving
	// 50 small pieces.
	if len(b.Pieces) != 55 {
		t.Errorf("Expected 55 entities, got %d", len(b.Pieces))
	}
	if !b.IsSolved() {
		t.Error("Expected a freshly built board to be solved")
	}
	checkGridConsistency(t, b)
}

func TestNewBoardFromConfig_Invalid(t *testing.T) {
	cfg := createTestConfig()
	cfg.SmallGaps = nil
	cfg.LargeGaps = nil
	if _, err := NewBoardFromConfig(cfg); err == nil {
		t.Fatal("Expected error for config without gaps")
	}
}

func TestBoard_SnapshotRestore(t *testing.T) {
	b, err := NewBoardFromConfig(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if err := b.Shuffle(50, 7, false); err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}
	snap := b.Snapshot()

	b2, err := NewBoardFromConfig(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create second board: %v", err)
	}
	if err := b2.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !reflect.DeepEqual(snap.Pieces, b2.Snapshot().Pieces) {
		t.Error("Restored board does not match the snapshot")
	}
	checkGridConsistency(t, b2)
}

func TestBoard_RestoreMismatch(t *testing.T) {
	b, _ := NewBoardFromConfig(createTestConfig())
	snap := b.Snapshot()
	snap.Pieces = snap.Pieces[:len(snap.Pieces)-1]
	if err := b.Restore(snap); err == nil {
		t.Fatal("Expected error restoring a truncated snapshot")
	}
	if err := b.Restore(nil); err == nil {
		t.Fatal("Expected error restoring nil state")
	}
}

func TestBoard_ReassignGapIdentities(t *testing.T) {
	b, err := NewBoardFromConfig(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	homes := make(map[int]Coord)
	positions := make(map[int]Coord)
	for _, p := range b.Pieces {
		homes[p.ID] = Coord{X: p.HomeX, Y: p.HomeY}
		positions[p.ID] = Coord{X: p.X, Y: p.Y}
	}

	b.ReassignGapIdentities(rand.New(rand.NewSource(99)))

	smallGaps, largeGaps := 0, 0
	for _, g := range b.Gaps() {
		if g.IsLarge {
			largeGaps++
		} else {
			smallGaps++
		}
	}
	if smallGaps != 2 || largeGaps != 1 {
		t.Errorf("Gap counts changed: %d small, %d large", smallGaps, largeGaps)
	}
	for _, p := range b.Pieces {
		if homes[p.ID] != (Coord{X: p.HomeX, Y: p.HomeY}) {
			t.Errorf("Entity %d home changed by reassignment", p.ID)
		}
		if positions[p.ID] != (Coord{X: p.X, Y: p.Y}) {
			t.Errorf("Entity %d moved during reassignment", p.ID)
		}
	}
	checkGridConsistency(t, b)
}

func TestNormalize(t *testing.T) {
	cfg := createTestConfig()
	cfg.WrapX = true
	b, _ := NewBoardFromConfig(cfg)

	if x, y := b.Normalize(-1, 3); x != 7 || y != 3 {
		t.Errorf("Normalize(-1,3) = (%d,%d), expected (7,3)", x, y)
	}
	if x, y := b.Normalize(9, -1); x != 1 || y != -1 {
		t.Errorf("Normalize(9,-1) = (%d,%d), expected (1,-1); y axis does not wrap", x, y)
	}

	if !b.IsValidCoord(-5, 0) {
		t.Error("Any x should be valid with wrap_x")
	}
	if b.IsValidCoord(0, 8) {
		t.Error("y=8 should be invalid without wrap_y")
	}
}

func TestAxisDistance(t *testing.T) {
	if d := axisDistance(0, 7, 8, true); d != 1 {
		t.Errorf("Wrapped distance 0..7 on size 8 = %d, expected 1", d)
	}
	if d := axisDistance(0, 7, 8, false); d != 7 {
		t.Errorf("Unwrapped distance 0..7 = %d, expected 7", d)
	}
}
