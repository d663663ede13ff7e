package service_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Catobat/overworld-slide-puzzle/game/config"
	"github.com/Catobat/overworld-slide-puzzle/game/engine"
	"github.com/Catobat/overworld-slide-puzzle/game/service"
	"github.com/Catobat/overworld-slide-puzzle/game/session"
)

// newTestService wires a real config manager and session manager over a temp
// config directory holding one classic layout.
func newTestService(t *testing.T) service.GameService {
	t.Helper()

	dir, err := os.MkdirTemp("", "service-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	cfg := engine.DefaultBoardConfig()
	cfg.Name = "Classic"
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "classic.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	configManager, err := config.NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	return service.NewGameService(session.NewManager(), configManager)
}

func TestGameService_CreateSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("default config", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if info.ID == "" {
			t.Error("Expected a session ID")
		}
		if info.ConfigName != "classic" {
			t.Errorf("Expected config ID 'classic', got '%s'", info.ConfigName)
		}
		if info.BoardState == nil || !info.BoardState.Solved {
			t.Error("New session should start solved")
		}
	})

	t.Run("explicit config", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "classic")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if info.ConfigName != "classic" {
			t.Errorf("Expected config ID 'classic', got '%s'", info.ConfigName)
		}
	})

	t.Run("unknown config lists alternatives", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "nope")
		if err == nil {
			t.Fatal("Expected error for unknown config")
		}
		if !strings.Contains(err.Error(), "classic") {
			t.Errorf("Expected error to list available configs, got: %v", err)
		}
	})
}

func TestGameService_MoveAndState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Entity 3 is the small gap at (7,6); a small tile sits to its left.
	result, err := svc.Move(ctx, info.ID, 3, "right", false)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !result.Success {
		t.Fatal("Expected move to succeed")
	}
	if result.Move == nil || result.Move.GapTo != (engine.Coord{X: 6, Y: 6}) {
		t.Errorf("Expected gap to land at (6,6), got %+v", result.Move)
	}
	if len(result.Events) == 0 || result.Events[0].Type != "move" {
		t.Errorf("Expected a move event, got %+v", result.Events)
	}

	state, err := svc.GetBoardState(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetBoardState failed: %v", err)
	}
	if state.Solved {
		t.Error("Board should not be solved after the move")
	}

	// Direction is case-insensitive
	result, err = svc.Move(ctx, info.ID, 3, "LEFT", false)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !result.Success {
		t.Error("Inverse move should succeed")
	}

	// Nonsense direction is a request error, not a failed move
	if _, err := svc.Move(ctx, info.ID, 3, "sideways", false); err == nil {
		t.Error("Expected error for invalid direction")
	}

	if _, err := svc.Move(ctx, "missing", 3, "right", false); err == nil {
		t.Error("Expected error for unknown session")
	}
}

func TestGameService_DryRunLeavesNoTrace(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "classic")

	result, err := svc.Move(ctx, info.ID, 3, "right", true)
	if err != nil {
		t.Fatalf("Dry run failed: %v", err)
	}
	if !result.Success || !result.DryRun {
		t.Errorf("Expected successful dry run, got %+v", result)
	}
	if !result.BoardState.Solved {
		t.Error("Dry run must not change the board")
	}

	history, err := svc.GetMoveHistory(ctx, info.ID, service.HistoryOptions{})
	if err != nil {
		t.Fatalf("GetMoveHistory failed: %v", err)
	}
	if history.TotalMoves != 0 {
		t.Errorf("Dry run must not be recorded, got %d history entries", history.TotalMoves)
	}
}

func TestGameService_ShuffleAndReset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "classic")

	result, err := svc.Shuffle(ctx, info.ID, 300, 42, false)
	if err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}
	if result.Steps != 300 || result.Seed != 42 {
		t.Errorf("Shuffle result should echo parameters, got %+v", result)
	}
	if result.BoardState.Solved {
		t.Error("A 300-step shuffle should leave the board unsolved")
	}

	state, err := svc.Reset(ctx, info.ID)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !state.Solved {
		t.Error("Reset should return the board to the solved layout")
	}
}

func TestGameService_ShuffleDeterministic(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateSession(ctx, "classic")
	b, _ := svc.CreateSession(ctx, "classic")

	ra, err := svc.Shuffle(ctx, a.ID, 200, 7, false)
	if err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}
	rb, err := svc.Shuffle(ctx, b.ID, 200, 7, false)
	if err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}

	for i := range ra.BoardState.Pieces {
		if ra.BoardState.Pieces[i] != rb.BoardState.Pieces[i] {
			t.Fatalf("Same seed and steps should produce the same board, differ at piece %d", i)
		}
	}
}

func TestGameService_ValidMoves(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "classic")

	result, err := svc.ValidMoves(ctx, info.ID)
	if err != nil {
		t.Fatalf("ValidMoves failed: %v", err)
	}
	if result.Count == 0 || result.Count != len(result.Moves) {
		t.Errorf("Expected a consistent non-empty move list, got %+v", result)
	}

	// Every listed move must pass a dry run
	for _, m := range result.Moves {
		r, err := svc.Move(ctx, info.ID, m.GapID, string(m.Direction), true)
		if err != nil {
			t.Fatalf("Dry run failed for %+v: %v", m, err)
		}
		if !r.Success {
			t.Errorf("Enumerated move %+v failed its dry run", m)
		}
	}
}

func TestGameService_DescribeCell(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "classic")

	t.Run("large piece cell", func(t *testing.T) {
		cell, err := svc.DescribeCell(ctx, info.ID, 1, 1)
		if err != nil {
			t.Fatalf("DescribeCell failed: %v", err)
		}
		if !cell.Valid || cell.EntityID != 0 || !cell.IsLarge || cell.IsGap {
			t.Errorf("Expected cell (1,1) to be covered by large piece 0, got %+v", cell)
		}
		if cell.OffX != 1 || cell.OffY != 1 {
			t.Errorf("Expected footprint offset (1,1), got (%d,%d)", cell.OffX, cell.OffY)
		}
		if !cell.AtHome {
			t.Error("Piece should be at home in the solved layout")
		}
	})

	t.Run("gap cell", func(t *testing.T) {
		cell, err := svc.DescribeCell(ctx, info.ID, 7, 6)
		if err != nil {
			t.Fatalf("DescribeCell failed: %v", err)
		}
		if !cell.IsGap || cell.IsLarge {
			t.Errorf("Expected a small gap at (7,6), got %+v", cell)
		}
	})

	t.Run("out of bounds without wrap", func(t *testing.T) {
		cell, err := svc.DescribeCell(ctx, info.ID, -1, 0)
		if err != nil {
			t.Fatalf("DescribeCell failed: %v", err)
		}
		if cell.Valid {
			t.Error("Expected (-1,0) to be invalid on a non-wrapping board")
		}
	})
}

func TestGameService_MoveHistoryPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "classic")

	// Two successes and one recorded failure. After the first two moves the
	// gap is back at (7,6); pulling left again would source from x=8, which
	// is off the board.
	svc.Move(ctx, info.ID, 3, "right", false)
	svc.Move(ctx, info.ID, 3, "left", false)
	svc.Move(ctx, info.ID, 3, "left", false)

	history, err := svc.GetMoveHistory(ctx, info.ID, service.HistoryOptions{})
	if err != nil {
		t.Fatalf("GetMoveHistory failed: %v", err)
	}
	if history.TotalMoves != 3 {
		t.Fatalf("Expected 3 history entries, got %d", history.TotalMoves)
	}
	// Default order is most recent first
	if history.Moves[0].MoveNumber != 3 || history.Moves[0].Success {
		t.Errorf("Expected the failed move first, got %+v", history.Moves[0])
	}

	page, err := svc.GetMoveHistory(ctx, info.ID, service.HistoryOptions{Page: 2, Limit: 2, Order: "asc"})
	if err != nil {
		t.Fatalf("GetMoveHistory failed: %v", err)
	}
	if len(page.Moves) != 1 || page.Moves[0].MoveNumber != 3 {
		t.Errorf("Expected page 2 to hold the third move, got %+v", page.Moves)
	}
	if !page.HasPrevious || page.HasNext {
		t.Errorf("Expected last page flags, got %+v", page)
	}
}

func TestGameService_SessionLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "classic")

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session, got %d", len(sessions))
	}

	got, err := svc.GetSession(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != info.ID {
		t.Errorf("Expected session %s, got %s", info.ID, got.ID)
	}

	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); err == nil {
		t.Error("Expected error getting a deleted session")
	}
}
