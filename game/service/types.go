package service

import (
	"time"

	"github.com/Catobat/overworld-slide-puzzle/game/engine"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string              `json:"id"`
	ConfigName     string              `json:"config_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	BoardState     *engine.BoardState  `json:"board_state"`
	BoardConfig    *engine.BoardConfig `json:"board_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success    bool                     `json:"success"`
	DryRun     bool                     `json:"dry_run"`
	BoardState *engine.BoardState       `json:"board_state"`
	Message    string                   `json:"message"`
	Move       *engine.MoveHistoryEntry `json:"move,omitempty"`
	Events     []GameEvent              `json:"events,omitempty"`
}

// ShuffleResult contains the result of a shuffle operation
type ShuffleResult struct {
	Steps      int                `json:"steps"`
	Seed       int64              `json:"seed"`
	Reassigned bool               `json:"reassigned"`
	BoardState *engine.BoardState `json:"board_state"`
	Events     []GameEvent        `json:"events,omitempty"`
}

// ValidMovesResult lists every legal move in the current state
type ValidMovesResult struct {
	Moves []engine.MoveDescriptor `json:"moves"`
	Count int                     `json:"count"`
}

// CellInfo describes one board cell and its occupant
type CellInfo struct {
	X          int          `json:"x"`
	Y          int          `json:"y"`
	Normalized engine.Coord `json:"normalized"`
	Valid      bool         `json:"valid"`
	EntityID   int          `json:"entity_id"`
	IsGap      bool         `json:"is_gap"`
	IsLarge    bool         `json:"is_large"`
	OffX       int          `json:"off_x"`
	OffY       int          `json:"off_y"`
	AtHome     bool         `json:"at_home"`
}

// GameEvent represents an event that occurred during play
type GameEvent struct {
	Type      string    `json:"type"` // "move", "chain", "gap_swap", "shuffle", "solved", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	GapID     int       `json:"gap_id,omitempty"`
	Direction string    `json:"direction,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a board configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	WrapX       bool   `json:"wrap_x"`
	WrapY       bool   `json:"wrap_y"`
	LargePieces int    `json:"large_pieces"`
	SmallGaps   int    `json:"small_gaps"`
	LargeGaps   int    `json:"large_gaps"`
}
