package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Catobat/overworld-slide-puzzle/game/config"
	"github.com/Catobat/overworld-slide-puzzle/game/engine"
	"github.com/Catobat/overworld-slide-puzzle/game/service"
	"github.com/Catobat/overworld-slide-puzzle/game/session"
	"github.com/Catobat/overworld-slide-puzzle/transport/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir, err := os.MkdirTemp("", "api-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	cfg := engine.DefaultBoardConfig()
	cfg.Name = "Classic"
	data, _ := json.MarshalIndent(cfg, "", "  ")
	if err := os.WriteFile(filepath.Join(dir, "classic.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	configManager, err := config.NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	svc := service.NewGameService(session.NewManager(), configManager)

	hub := websocket.NewHub()
	go hub.Run()

	ts := httptest.NewServer(NewServer(svc, hub))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}, out interface{}) int {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response from %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response from %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func createSession(t *testing.T, ts *httptest.Server) service.SessionInfo {
	t.Helper()

	var info service.SessionInfo
	status := postJSON(t, ts.URL+"/api/sessions", map[string]string{"config_id": "classic"}, &info)
	if status != http.StatusCreated {
		t.Fatalf("Expected 201 creating session, got %d", status)
	}
	return info
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	status := getJSON(t, ts.URL+"/api/health", &body)
	if status != http.StatusOK || body["status"] != "healthy" {
		t.Errorf("Expected healthy response, got %d %v", status, body)
	}
}

func TestServer_SessionEndpoints(t *testing.T) {
	ts := newTestServer(t)

	info := createSession(t, ts)
	if info.ID == "" || info.ConfigName != "classic" {
		t.Errorf("Unexpected session info: %+v", info)
	}

	var list struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}
	if status := getJSON(t, ts.URL+"/api/sessions", &list); status != http.StatusOK {
		t.Fatalf("Expected 200 listing sessions, got %d", status)
	}
	if list.Count != 1 || len(list.Sessions) != 1 {
		t.Errorf("Expected 1 session, got %+v", list)
	}

	var got service.SessionInfo
	if status := getJSON(t, ts.URL+"/api/sessions/"+info.ID, &got); status != http.StatusOK {
		t.Fatalf("Expected 200 getting session, got %d", status)
	}
	if got.ID != info.ID {
		t.Errorf("Expected session %s, got %s", info.ID, got.ID)
	}

	if status := getJSON(t, ts.URL+"/api/sessions/missing", nil); status != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown session, got %d", status)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/sessions/"+info.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 deleting session, got %d", resp.StatusCode)
	}
}

func TestServer_MoveEndpoint(t *testing.T) {
	ts := newTestServer(t)
	info := createSession(t, ts)

	var result service.MoveResult
	status := postJSON(t, ts.URL+"/api/sessions/"+info.ID+"/move",
		map[string]interface{}{"gap_id": 3, "direction": "right"}, &result)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !result.Success {
		t.Fatalf("Expected move to succeed: %+v", result)
	}
	if result.BoardState.Solved {
		t.Error("Board should be unsolved after the move")
	}

	// Naming a non-gap entity is rejected but still returns 200 with
	// success=false
	status = postJSON(t, ts.URL+"/api/sessions/"+info.ID+"/move",
		map[string]interface{}{"gap_id": 0, "direction": "right"}, &result)
	if status != http.StatusOK || result.Success {
		t.Errorf("Expected recorded failure, got %d %+v", status, result)
	}
}

func TestServer_ValidMovesAndState(t *testing.T) {
	ts := newTestServer(t)
	info := createSession(t, ts)

	var state engine.BoardState
	if status := getJSON(t, ts.URL+"/api/sessions/"+info.ID+"/state", &state); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !state.Solved || state.Width != 8 {
		t.Errorf("Unexpected board state: %+v", state)
	}

	var moves service.ValidMovesResult
	if status := getJSON(t, ts.URL+"/api/sessions/"+info.ID+"/valid-moves", &moves); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if moves.Count == 0 {
		t.Error("Expected legal moves from the home layout")
	}
}

func TestServer_ShuffleResetHistory(t *testing.T) {
	ts := newTestServer(t)
	info := createSession(t, ts)

	var shuffled service.ShuffleResult
	status := postJSON(t, ts.URL+"/api/sessions/"+info.ID+"/shuffle",
		map[string]interface{}{"steps": 200, "seed": 11}, &shuffled)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if shuffled.BoardState.Solved {
		t.Error("Expected an unsolved board after shuffling")
	}

	var reset struct {
		Message string             `json:"message"`
		State   *engine.BoardState `json:"state"`
	}
	if status := postJSON(t, ts.URL+"/api/sessions/"+info.ID+"/reset", map[string]string{}, &reset); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if reset.State == nil || !reset.State.Solved {
		t.Errorf("Expected solved board after reset, got %+v", reset.State)
	}

	postJSON(t, ts.URL+"/api/sessions/"+info.ID+"/move",
		map[string]interface{}{"gap_id": 3, "direction": "right"}, nil)

	var history service.HistoryResponse
	if status := getJSON(t, ts.URL+"/api/sessions/"+info.ID+"/history?limit=10", &history); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if history.TotalMoves != 1 {
		t.Errorf("Expected 1 history entry, got %d", history.TotalMoves)
	}
}

func TestServer_CellAndConfigs(t *testing.T) {
	ts := newTestServer(t)
	info := createSession(t, ts)

	var cell service.CellInfo
	if status := getJSON(t, ts.URL+"/api/sessions/"+info.ID+"/cell?x=0&y=0", &cell); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !cell.Valid || cell.EntityID != 0 || !cell.IsLarge {
		t.Errorf("Expected large piece 0 at (0,0), got %+v", cell)
	}

	if status := getJSON(t, ts.URL+"/api/sessions/"+info.ID+"/cell?x=0", nil); status != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing y, got %d", status)
	}

	var configs []service.ConfigInfo
	if status := getJSON(t, ts.URL+"/api/configs", &configs); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(configs) != 1 || configs[0].ConfigID != "classic" {
		t.Errorf("Expected the classic config, got %+v", configs)
	}

	var created map[string]interface{}
	newCfg := engine.DefaultBoardConfig()
	newCfg.Name = "custom"
	if status := postJSON(t, ts.URL+"/api/configs", newCfg, &created); status != http.StatusCreated {
		t.Errorf("Expected 201 creating config, got %d", status)
	}

	var loaded engine.BoardConfig
	if status := getJSON(t, ts.URL+"/api/configs/custom", &loaded); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if loaded.Name != "custom" {
		t.Errorf("Expected config 'custom', got '%s'", loaded.Name)
	}
}
