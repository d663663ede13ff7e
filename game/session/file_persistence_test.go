package session

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/Catobat/overworld-slide-puzzle/game/engine"
	"github.com/Catobat/overworld-slide-puzzle/game/service"
)

// stubConfigManager serves one fixed config under the ID "classic".
type stubConfigManager struct {
	cfg *engine.BoardConfig
}

func (s *stubConfigManager) LoadConfig(name string) (*engine.BoardConfig, error) {
	return s.cfg, nil
}

func (s *stubConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	return []*service.ConfigInfo{{
		Filename: "classic.json",
		ConfigID: "classic",
		Name:     s.cfg.Name,
	}}, nil
}

func (s *stubConfigManager) GetDefault() *engine.BoardConfig {
	return s.cfg
}

func (s *stubConfigManager) SaveConfig(name string, config *engine.BoardConfig) error {
	return nil
}

func createTestPersistence(t *testing.T) (*FilePersistence, *engine.BoardConfig) {
	t.Helper()

	dir, err := os.MkdirTemp("", "sessions-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	cfg := engine.DefaultBoardConfig()
	fp, err := NewFilePersistence(dir, &stubConfigManager{cfg: cfg})
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	return fp, cfg
}

func createTestSession(t *testing.T, cfg *engine.BoardConfig, id string) *service.Session {
	t.Helper()

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         cfg,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
}

func TestFilePersistence_SaveLoadRoundTrip(t *testing.T) {
	fp, cfg := createTestPersistence(t)

	session := createTestSession(t, cfg, "round-trip")

	// Entity 3 is the small gap at (7,6). Pulling left would source from
	// x=8, off the board, so it is recorded as a failure; pulling right is
	// legal.
	session.Engine.Move(engine.Left, 3)
	if !session.Engine.Move(engine.Right, 3) {
		t.Fatal("Setup move should succeed")
	}

	if err := fp.Save(session); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	loaded, err := fp.Load("round-trip")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	if loaded.ID != session.ID {
		t.Errorf("Expected ID %s, got %s", session.ID, loaded.ID)
	}

	wantState := session.Engine.Snapshot()
	gotState := loaded.Engine.Snapshot()
	if !reflect.DeepEqual(wantState.Pieces, gotState.Pieces) {
		t.Error("Board state did not survive the round trip")
	}
	if gotState.Solved {
		t.Error("Restored board should not be solved after the setup move")
	}

	wantHistory := session.Engine.MoveHistory()
	gotHistory := loaded.Engine.MoveHistory()
	if !reflect.DeepEqual(wantHistory, gotHistory) {
		t.Errorf("Move history did not survive the round trip: want %d entries, got %d",
			len(wantHistory), len(gotHistory))
	}
}

func TestFilePersistence_SaveNil(t *testing.T) {
	fp, _ := createTestPersistence(t)

	if err := fp.Save(nil); err == nil {
		t.Error("Expected error saving nil session")
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp, _ := createTestPersistence(t)

	if _, err := fp.Load("missing"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_DeleteAndExists(t *testing.T) {
	fp, cfg := createTestPersistence(t)

	session := createTestSession(t, cfg, "to-delete")
	if err := fp.Save(session); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	if !fp.Exists("to-delete") {
		t.Error("Expected session file to exist after save")
	}

	if err := fp.Delete("to-delete"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if fp.Exists("to-delete") {
		t.Error("Expected session file to be gone after delete")
	}

	if err := fp.Delete("to-delete"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	fp, cfg := createTestPersistence(t)

	for _, id := range []string{"one", "two", "three"} {
		if err := fp.Save(createTestSession(t, cfg, id)); err != nil {
			t.Fatalf("Failed to save session %s: %v", id, err)
		}
	}

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 persisted sessions, got %d", len(ids))
	}
}

func TestManagerWithPersistence(t *testing.T) {
	fp, cfg := createTestPersistence(t)
	manager := NewManagerWithPersistence(fp)

	session, err := manager.Create("persisted", cfg)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Create auto-saves
	if !fp.Exists(session.ID) {
		t.Error("Expected session to be persisted on create")
	}

	// Mutate, save, drop from memory, then Get should rehydrate from disk
	if !session.Engine.Move(engine.Right, 3) {
		t.Fatal("Setup move should succeed")
	}
	if err := manager.Save(session.ID); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}
	if err := manager.DeleteFromMemory(session.ID); err != nil {
		t.Fatalf("Failed to drop session from memory: %v", err)
	}

	restored, err := manager.Get(session.ID)
	if err != nil {
		t.Fatalf("Failed to rehydrate session: %v", err)
	}
	if restored.Engine.IsSolved() {
		t.Error("Rehydrated session should carry the moved board, not the home layout")
	}
	if restored.Engine.TotalMoves() != 1 {
		t.Errorf("Expected 1 recorded move after rehydration, got %d", restored.Engine.TotalMoves())
	}
}

func TestManager_SaveAllSessions(t *testing.T) {
	fp, cfg := createTestPersistence(t)
	manager := NewManagerWithPersistence(fp)

	a, err := manager.Create("a", cfg)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	b, err := manager.Create("b", cfg)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if !a.Engine.Move(engine.Right, 3) {
		t.Fatal("Setup move should succeed")
	}

	if err := manager.SaveAllSessions(); err != nil {
		t.Fatalf("Failed to save all sessions: %v", err)
	}

	loaded, err := fp.Load(a.ID)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if loaded.Engine.IsSolved() {
		t.Error("Persisted session should carry the moved board")
	}
	if !fp.Exists(b.ID) {
		t.Error("Expected the untouched session to be persisted too")
	}
}

func TestManager_LoadPersistedSessions(t *testing.T) {
	fp, cfg := createTestPersistence(t)

	// Persist two sessions with a throwaway manager
	seed := NewManagerWithPersistence(fp)
	if _, err := seed.Create("alpha", cfg); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := seed.Create("beta", cfg); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// A fresh manager over the same directory picks them up
	manager := NewManagerWithPersistence(fp)
	if err := manager.LoadPersistedSessions(); err != nil {
		t.Fatalf("Failed to load persisted sessions: %v", err)
	}
	if manager.Count() != 2 {
		t.Errorf("Expected 2 loaded sessions, got %d", manager.Count())
	}
}
