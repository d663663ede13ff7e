package engine

// EnumerateValidMoves lists every legal (gap, direction) pair in the current
// state by dry-running the executor. Gaps are visited in ID order and
// directions in the fixed Directions order, so the result is deterministic
// for a given state. There is one source of truth for legality: a move shows
// up here exactly when AttemptMove would accept it.
func (b *Board) EnumerateValidMoves() []MoveDescriptor {
	var moves []MoveDescriptor
	for _, gap := range b.Gaps() {
		for _, dir := range Directions {
			res := b.attemptMove(dir, gap, true)
			if !res.ok {
				continue
			}
			moves = append(moves, MoveDescriptor{
				GapID:     gap.ID,
				Direction: dir,
				IsLarge:   res.movedLarge,
				IsGapSwap: res.gapSwap,
			})
		}
	}
	return moves
}
