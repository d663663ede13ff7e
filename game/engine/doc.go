// Package engine provides the core state machine for the overworld slide
// puzzle.
//
// The board is a fully tiled grid of movable entities: 1x1 and 2x2 pieces
// plus 1x1 and 2x2 gaps (empty slots that keep a persistent home identity).
// Either axis may wrap toroidally. The engine implements:
//   - Wrap-aware coordinate normalization
//   - A dense grid index kept consistent with the entity registry
//   - Move validation and execution, including compound moves where a 2x2
//     piece passes through stacked 2x2 gaps and small pieces hop through
//   - Enumeration of every legal (gap, direction) pair
//   - A deterministic, weighted shuffle that favours large-piece movement
//
// Core Types:
//
// The Engine interface defines the main contract for puzzle operations,
// implemented by PuzzleEngine. Board holds the live registry and grid, while
// BoardConfig defines the layout loaded from JSON files.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	puzzle, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the piece left of gap 3 into it
//	ok := puzzle.Move(engine.Right, 3)
//	state := puzzle.Snapshot()
//
// Rules:
//
// A move request names a gap and the direction the pulled occupant travels.
// The occupant on the opposite side of the gap slides in; depending on the
// sizes involved this is a plain exchange, a two-small-pieces pass-through,
// a full 2x2 swap, or an atomic chain across several stacked gaps. The
// puzzle is solved when every entity, gaps included, sits on its home cell.
package engine
