package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Catobat/overworld-slide-puzzle/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given display name, used for
// consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new puzzle session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.BoardConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate the ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		BoardState:     session.Engine.Snapshot(),
		BoardConfig:    session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		BoardState:     session.Engine.Snapshot(),
		BoardConfig:    session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			BoardState:     sess.Engine.Snapshot(),
			BoardConfig:    sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session. With dryRun set only legality
// is checked; the board, history and persistence are untouched.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, gapID int, direction string, dryRun bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	dir := engine.Direction(strings.ToLower(direction))
	if !dir.Valid() {
		return nil, fmt.Errorf("invalid direction '%s': must be up, down, left or right", direction)
	}

	if dryRun {
		ok := sess.Engine.DryRun(dir, gapID)
		return &MoveResult{
			Success:    ok,
			DryRun:     true,
			BoardState: sess.Engine.Snapshot(),
			Message:    dryRunMessage(ok, gapID, dir),
		}, nil
	}

	success := sess.Engine.Move(dir, gapID)
	state := sess.Engine.Snapshot()

	result := &MoveResult{
		Success:    success,
		BoardState: state,
		Move:       sess.Engine.LastMove(),
	}

	if success {
		result.Message = fmt.Sprintf("Moved gap %d %s", gapID, dir)
		result.Events = s.extractMoveEvents(sess, gapID, dir)
	} else {
		result.Message = fmt.Sprintf("Move rejected: gap %d cannot pull %s", gapID, dir)
	}

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after move: %v", sessionID, err)
	}

	return result, nil
}

// Shuffle randomizes a session's board
func (s *gameServiceImpl) Shuffle(ctx context.Context, sessionID string, steps int, seed int64, reassignGaps bool) (*ShuffleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if err := sess.Engine.Shuffle(steps, seed, reassignGaps); err != nil {
		return nil, fmt.Errorf("shuffle failed: %w", err)
	}

	result := &ShuffleResult{
		Steps:      steps,
		Seed:       seed,
		Reassigned: reassignGaps,
		BoardState: sess.Engine.Snapshot(),
		Events: []GameEvent{{
			Type:      "shuffle",
			Message:   fmt.Sprintf("Board shuffled with %d steps (seed %d)", steps, seed),
			Timestamp: time.Now(),
		}},
	}

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after shuffle: %v", sessionID, err)
	}

	return result, nil
}

// Reset returns a session's board to its home layout
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.BoardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	if err := sess.Engine.Reset(); err != nil {
		return nil, fmt.Errorf("reset failed: %w", err)
	}

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after reset: %v", sessionID, err)
	}

	return sess.Engine.Snapshot(), nil
}

// GetBoardState retrieves the current board state
func (s *gameServiceImpl) GetBoardState(ctx context.Context, sessionID string) (*engine.BoardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.Snapshot(), nil
}

// ValidMoves lists every legal move for a session
func (s *gameServiceImpl) ValidMoves(ctx context.Context, sessionID string) (*ValidMovesResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	moves := sess.Engine.ValidMoves()
	if moves == nil {
		moves = []engine.MoveDescriptor{}
	}
	return &ValidMovesResult{Moves: moves, Count: len(moves)}, nil
}

// DescribeCell resolves one board coordinate to its occupant
func (s *gameServiceImpl) DescribeCell(ctx context.Context, sessionID string, x, y int) (*CellInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	board := sess.Engine.Board()
	info := &CellInfo{X: x, Y: y, EntityID: engine.EmptyCell}
	nx, ny := board.Normalize(x, y)
	info.Normalized = engine.Coord{X: nx, Y: ny}
	info.Valid = board.IsValidCoord(x, y)
	if !info.Valid {
		return info, nil
	}

	piece, ok := board.PieceAt(x, y)
	if !ok {
		return info, nil
	}
	info.EntityID = piece.ID
	info.IsGap = piece.IsGap
	info.IsLarge = piece.IsLarge
	info.OffX = nx - piece.X
	info.OffY = ny - piece.Y
	info.AtHome = piece.AtHome()
	return info, nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.MoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}

	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available board configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific board configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.BoardConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a board configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.BoardConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// extractMoveEvents generates events from a successful move
func (s *gameServiceImpl) extractMoveEvents(sess *Session, gapID int, dir engine.Direction) []GameEvent {
	events := []GameEvent{}
	last := sess.Engine.LastMove()

	events = append(events, GameEvent{
		Type:      "move",
		Message:   fmt.Sprintf("Gap %d pulled %s", gapID, dir),
		Timestamp: time.Now(),
		GapID:     gapID,
		Direction: string(dir),
	})

	if last != nil {
		if last.Chain {
			events = append(events, GameEvent{
				Type:      "chain",
				Message:   "Large piece travelled through stacked gaps",
				Timestamp: time.Now(),
				GapID:     gapID,
				Direction: string(dir),
			})
		}
		if last.GapSwap {
			events = append(events, GameEvent{
				Type:      "gap_swap",
				Message:   "Two gaps exchanged positions",
				Timestamp: time.Now(),
				GapID:     gapID,
				Direction: string(dir),
			})
		}
	}

	if sess.Engine.IsSolved() {
		events = append(events, GameEvent{
			Type:      "solved",
			Message:   fmt.Sprintf("Puzzle solved in %d moves!", sess.Engine.TotalMoves()),
			Timestamp: time.Now(),
		})
	}

	return events
}

func dryRunMessage(ok bool, gapID int, dir engine.Direction) string {
	if ok {
		return fmt.Sprintf("Gap %d can pull %s", gapID, dir)
	}
	return fmt.Sprintf("Gap %d cannot pull %s", gapID, dir)
}
