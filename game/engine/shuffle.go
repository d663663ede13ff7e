package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// Shuffle weighting. Large-piece moves dominate, and their pull grows the
// longer the walk has gone without moving one; gap swaps only fire when
// nothing else can.
const (
	largeMoveBaseWeight  = 12
	largeUrgencyStep     = 4
	largeUrgencySaturate = 10
	smallMoveBaseWeight  = 4
	fallbackWeight       = 1
)

// Shuffle applies steps weighted-random legal moves. The generator is folded
// from the seed together with the step count, board identity and flags, so
// changing any one input yields an unrelated walk while identical inputs
// reproduce the exact same final state. With reassignGaps set, which
// entities act as gaps is re-rolled first (counts per size class preserved,
// homes untouched).
func (b *Board) Shuffle(steps int, seed int64, reassignGaps bool) error {
	if steps < 0 || steps > MaxShuffleSteps {
		return fmt.Errorf("shuffle: steps must be between 0 and %d, got %d", MaxShuffleSteps, steps)
	}

	rng := rand.New(rand.NewSource(b.foldSeed(seed, steps, reassignGaps)))
	if reassignGaps {
		b.ReassignGapIdentities(rng)
	}

	var last *MoveDescriptor
	sinceLarge := 0
	for i := 0; i < steps; i++ {
		moves := b.EnumerateValidMoves()
		if len(moves) == 0 {
			break
		}
		moves = excludeReverse(moves, last)

		urgency := sinceLarge * largeUrgencyStep
		if max := largeUrgencySaturate * largeUrgencyStep; urgency > max {
			urgency = max
		}
		pick := b.pickWeighted(rng, moves, urgency)

		gap, _ := b.Lookup(pick.GapID)
		if !b.AttemptMove(pick.Direction, gap, false) {
			// The enumerator and the executor share one legality check, so
			// this cannot happen; bail rather than loop on a broken state.
			return fmt.Errorf("shuffle: enumerated move rejected by executor: gap %d %s", pick.GapID, pick.Direction)
		}

		if pick.IsLarge {
			sinceLarge = 0
		} else {
			sinceLarge++
		}
		last = &pick
	}

	b.RebuildGrid()
	return nil
}

// foldSeed mixes every shuffle input into one generator seed.
func (b *Board) foldSeed(seed int64, steps int, reassignGaps bool) int64 {
	name := ""
	if b.Config != nil {
		name = b.Config.Name
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%s|%dx%d|%t|%t|%t", seed, steps, name, b.Width, b.Height, b.WrapX, b.WrapY, reassignGaps)
	return int64(h.Sum64())
}

// excludeReverse drops the exact undo of the previous move, unless it is the
// only candidate.
func excludeReverse(moves []MoveDescriptor, last *MoveDescriptor) []MoveDescriptor {
	if last == nil || len(moves) <= 1 {
		return moves
	}
	kept := moves[:0]
	for _, m := range moves {
		if m.GapID == last.GapID && m.Direction == last.Direction.Opposite() {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		return moves
	}
	return kept
}

// pickWeighted draws one candidate. Large moves carry the base weight plus
// the current urgency, small moves get a mild nudge toward bringing the
// moving gap closer to its nearest peer as urgency rises, and gap swaps
// weigh nothing unless the total collapses to zero.
func (b *Board) pickWeighted(rng *rand.Rand, moves []MoveDescriptor, urgency int) MoveDescriptor {
	weights := make([]int, len(moves))
	total := 0
	for i, m := range moves {
		w := 0
		switch {
		case m.IsGapSwap:
			w = 0
		case m.IsLarge:
			w = largeMoveBaseWeight + urgency
		default:
			w = smallMoveBaseWeight + b.gapConvergenceBonus(m, urgency)
			if w < fallbackWeight {
				w = fallbackWeight
			}
		}
		weights[i] = w
		total += w
	}
	if total == 0 {
		return moves[rng.Intn(len(moves))]
	}
	n := rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return moves[i]
		}
		n -= w
	}
	return moves[len(moves)-1]
}

// gapConvergenceBonus nudges small-piece moves that bring the moving gap
// closer to its nearest fellow gap, and penalizes moves that spread them,
// scaling with urgency. Adjacent gaps are what large pieces need to travel.
func (b *Board) gapConvergenceBonus(m MoveDescriptor, urgency int) int {
	gap, ok := b.Lookup(m.GapID)
	if !ok || urgency == 0 {
		return 0
	}
	dx, dy := m.Direction.Delta()
	nx, ny := b.Normalize(gap.X-dx, gap.Y-dy)

	before, after := -1, -1
	probe := Piece{X: nx, Y: ny}
	for _, other := range b.Gaps() {
		if other.ID == gap.ID {
			continue
		}
		if d := b.entityDistance(gap, other); before == -1 || d < before {
			before = d
		}
		if d := b.entityDistance(&probe, other); after == -1 || d < after {
			after = d
		}
	}
	if before == -1 {
		return 0
	}

	bonus := urgency / 2
	if after < before {
		return bonus
	}
	if after > before {
		return -bonus
	}
	return 0
}
