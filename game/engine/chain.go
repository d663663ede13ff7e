package engine

import "sort"

// chainStep is one entity relocation inside a chain plan. The plan is built
// and verified in full before anything mutates; a chain is all or nothing.
type chainStep struct {
	p        *Piece
	toX, toY int
}

// attemptChain handles a large piece whose destination footprint touches two
// or more distinct large gaps. The gaps must line up perpendicular to the
// move axis, each pair of neighbours exactly two cells apart. The piece
// advances two cells, every chained gap retreats two, and each cell a gap
// frees outside the piece's new footprint must be filled by a small piece
// hopping forward from directly behind it.
func (b *Board) attemptChain(gap, piece *Piece, dir Direction, gapIDs map[int]bool, dryRun bool) attemptResult {
	dx, dy := dir.Delta()

	gaps := make([]*Piece, 0, len(gapIDs))
	for _, p := range b.Pieces {
		if gapIDs[p.ID] {
			gaps = append(gaps, p)
		}
	}
	if !b.chainGapsCollinear(gaps, dir) {
		return attemptResult{}
	}

	dest := b.footprintSet(piece.X+2*dx, piece.Y+2*dy, 2)

	px, py := b.Normalize(piece.X+2*dx, piece.Y+2*dy)
	plan := make([]chainStep, 0, len(gaps)+5)
	plan = append(plan, chainStep{p: piece, toX: px, toY: py})

	var gapTo Coord
	for _, g := range gaps {
		if !b.footprintValid(g.X-2*dx, g.Y-2*dy, 2) {
			return attemptResult{}
		}
		tx, ty := b.Normalize(g.X-2*dx, g.Y-2*dy)
		plan = append(plan, chainStep{p: g, toX: tx, toY: ty})
		if g.ID == gap.ID {
			gapTo = Coord{X: tx, Y: ty}
		}
	}

	// Every cell a gap frees that the piece does not claim needs a small
	// mover two cells behind it, each mover used once.
	seen := make(map[int]bool)
	for _, g := range gaps {
		for _, c := range b.footprintCells(g.X, g.Y, 2) {
			if dest[[2]int{c[0], c[1]}] {
				continue
			}
			mover := b.smallPieceAt(c[0]-2*dx, c[1]-2*dy)
			if mover == nil || seen[mover.ID] {
				return attemptResult{}
			}
			seen[mover.ID] = true
			plan = append(plan, chainStep{p: mover, toX: c[0], toY: c[1]})
		}
	}

	res := attemptResult{ok: true, movedLarge: true, chain: true, gapTo: gapTo}
	if dryRun {
		return res
	}

	for _, s := range plan {
		b.clearPiece(s.p)
	}
	for _, s := range plan {
		s.p.X, s.p.Y = s.toX, s.toY
	}
	for _, s := range plan {
		b.writePiece(s.p)
	}
	return res
}

// chainGapsCollinear verifies the chained gaps share an anchor on the move
// axis and their anchors on the perpendicular axis step by exactly two. When
// the perpendicular axis wraps the line may straddle the seam, so one break
// in the sorted spacing is tolerated as long as it closes the cycle.
func (b *Board) chainGapsCollinear(gaps []*Piece, dir Direction) bool {
	if len(gaps) < 2 {
		return false
	}

	var perp []int
	var size int
	var wrap bool
	if dir.Horizontal() {
		for _, g := range gaps {
			if g.X != gaps[0].X {
				return false
			}
			perp = append(perp, g.Y)
		}
		size, wrap = b.Height, b.WrapY
	} else {
		for _, g := range gaps {
			if g.Y != gaps[0].Y {
				return false
			}
			perp = append(perp, g.X)
		}
		size, wrap = b.Width, b.WrapX
	}

	sort.Ints(perp)
	if !wrap {
		for i := 1; i < len(perp); i++ {
			if perp[i]-perp[i-1] != 2 {
				return false
			}
		}
		return true
	}

	// Cyclic spacing: of the N gaps' consecutive distances around the ring,
	// at least N-1 must be exactly two.
	good := 0
	for i := range perp {
		next := perp[(i+1)%len(perp)]
		d := next - perp[i]
		if d < 0 {
			d += size
		}
		if d == 2 {
			good++
		}
	}
	return good >= len(perp)-1
}
