package engine

import "time"

// Engine is the main contract for puzzle operations, implemented by
// PuzzleEngine.
type Engine interface {
	// Move executes one move for real; DryRun only checks legality.
	Move(dir Direction, gapID int) bool
	DryRun(dir Direction, gapID int) bool
	ValidMoves() []MoveDescriptor
	Shuffle(steps int, seed int64, reassignGaps bool) error
	Reset() error

	Board() *Board
	IsSolved() bool
	Snapshot() *BoardState
	Restore(state *BoardState) error
	SetHooks(hooks Hooks)

	MoveHistory() []MoveHistoryEntry
	LastMove() *MoveHistoryEntry
	TotalMoves() int
}

// PuzzleEngine wraps a Board with move history and caller hooks. It is not
// safe for concurrent use; callers serialize access (sessions hold one
// engine each behind their manager's lock).
type PuzzleEngine struct {
	config    *BoardConfig
	board     *Board
	history   []MoveHistoryEntry
	hooks     Hooks
	shuffling bool
}

// NewEngine creates an engine for the given layout.
func NewEngine(cfg *BoardConfig) (*PuzzleEngine, error) {
	e := &PuzzleEngine{config: cfg}
	board, err := NewBoardFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	e.board = board
	e.installHooks()
	return e, nil
}

// NewEngineWithDefaults creates an engine on the built-in fallback layout.
func NewEngineWithDefaults() *PuzzleEngine {
	e, err := NewEngine(DefaultBoardConfig())
	if err != nil {
		// The built-in layout always validates.
		panic(err)
	}
	return e
}

func (e *PuzzleEngine) installHooks() {
	e.board.SetHooks(Hooks{
		OnMove: func(rec MoveRecord) {
			if e.shuffling {
				return
			}
			e.history = append(e.history, MoveHistoryEntry{
				Direction:  rec.Direction,
				GapID:      rec.GapID,
				GapFrom:    rec.GapFrom,
				GapTo:      rec.GapTo,
				MovedLarge: rec.MovedLarge,
				GapSwap:    rec.GapSwap,
				Chain:      rec.Chain,
				Success:    true,
				Timestamp:  time.Now().Unix(),
				MoveNumber: len(e.history) + 1,
			})
			if e.hooks.OnMove != nil {
				e.hooks.OnMove(rec)
			}
		},
		OnRender: func(b *Board) {
			if e.shuffling {
				return
			}
			if e.hooks.OnRender != nil {
				e.hooks.OnRender(b)
			}
		},
		OnSolved: func(b *Board) {
			if e.shuffling {
				return
			}
			if e.hooks.OnSolved != nil {
				e.hooks.OnSolved(b)
			}
		},
	})
}

// SetHooks installs the caller's callbacks. The engine keeps recording
// history regardless.
func (e *PuzzleEngine) SetHooks(hooks Hooks) {
	e.hooks = hooks
}

// Move executes one move. Failures are recorded in the history too.
func (e *PuzzleEngine) Move(dir Direction, gapID int) bool {
	gap, ok := e.board.Lookup(gapID)
	if !ok || !gap.IsGap || !e.board.AttemptMove(dir, gap, false) {
		e.history = append(e.history, MoveHistoryEntry{
			Direction:  dir,
			GapID:      gapID,
			Success:    false,
			Timestamp:  time.Now().Unix(),
			MoveNumber: len(e.history) + 1,
		})
		return false
	}
	return true
}

// DryRun checks a move without touching the board or the history.
func (e *PuzzleEngine) DryRun(dir Direction, gapID int) bool {
	gap, ok := e.board.Lookup(gapID)
	if !ok || !gap.IsGap {
		return false
	}
	return e.board.AttemptMove(dir, gap, true)
}

// ValidMoves lists every legal move in the current state.
func (e *PuzzleEngine) ValidMoves() []MoveDescriptor {
	return e.board.EnumerateValidMoves()
}

// Shuffle randomizes the board. Individual shuffle steps are not recorded in
// the move history and fire no hooks; one render hook fires at the end.
func (e *PuzzleEngine) Shuffle(steps int, seed int64, reassignGaps bool) error {
	e.shuffling = true
	err := e.board.Shuffle(steps, seed, reassignGaps)
	e.shuffling = false
	if err != nil {
		return err
	}
	if e.hooks.OnRender != nil {
		e.hooks.OnRender(e.board)
	}
	return nil
}

// Reset rebuilds the board at its home layout. The cumulative move history
// is kept; callers that want a clean slate create a new engine.
func (e *PuzzleEngine) Reset() error {
	board, err := NewBoardFromConfig(e.config)
	if err != nil {
		return err
	}
	e.board = board
	e.installHooks()
	if e.hooks.OnRender != nil {
		e.hooks.OnRender(e.board)
	}
	return nil
}

// Board exposes the underlying board.
func (e *PuzzleEngine) Board() *Board {
	return e.board
}

// IsSolved reports whether every entity sits on its home cell.
func (e *PuzzleEngine) IsSolved() bool {
	return e.board.IsSolved()
}

// Snapshot captures the current board state.
func (e *PuzzleEngine) Snapshot() *BoardState {
	return e.board.Snapshot()
}

// Restore applies a snapshot taken from the same layout.
func (e *PuzzleEngine) Restore(state *BoardState) error {
	return e.board.Restore(state)
}

// SetMoveHistory replaces the recorded history, used when rehydrating a
// persisted session.
func (e *PuzzleEngine) SetMoveHistory(entries []MoveHistoryEntry) {
	e.history = make([]MoveHistoryEntry, len(entries))
	copy(e.history, entries)
}

// MoveHistory returns a copy of the recorded moves, oldest first.
func (e *PuzzleEngine) MoveHistory() []MoveHistoryEntry {
	out := make([]MoveHistoryEntry, len(e.history))
	copy(out, e.history)
	return out
}

// LastMove returns the most recent history entry, or nil.
func (e *PuzzleEngine) LastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	entry := e.history[len(e.history)-1]
	return &entry
}

// TotalMoves counts the successful moves recorded so far.
func (e *PuzzleEngine) TotalMoves() int {
	n := 0
	for _, entry := range e.history {
		if entry.Success {
			n++
		}
	}
	return n
}
