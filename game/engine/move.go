package engine

// attemptResult carries what a move attempt found out. The enumerator and
// the shuffler need more than the boolean the public surface exposes.
type attemptResult struct {
	ok         bool
	movedLarge bool
	gapSwap    bool
	chain      bool
	gapTo      Coord
}

// AttemptMove tries to pull the occupant on the far side of the gap into it,
// in the named direction. With dryRun set the board is left untouched and
// only legality is reported. Every failure mode is a plain false.
func (b *Board) AttemptMove(dir Direction, gap *Piece, dryRun bool) bool {
	return b.attemptMove(dir, gap, dryRun).ok
}

func (b *Board) attemptMove(dir Direction, gap *Piece, dryRun bool) attemptResult {
	if gap == nil || !gap.IsGap || !dir.Valid() {
		return attemptResult{}
	}

	sx, sy := b.sourceCoord(gap, dir)
	if !b.IsValidCoord(sx, sy) {
		return attemptResult{}
	}
	cell, ok := b.cellAt(sx, sy)
	if !ok || !cell.Occupied() || cell.ID == gap.ID {
		return attemptResult{}
	}
	src := b.Pieces[cell.ID]

	gapFrom := Coord{X: gap.X, Y: gap.Y}

	var res attemptResult
	switch {
	case src.IsGap:
		res = b.moveGapSwap(gap, src, dryRun)
	case gap.IsLarge && !src.IsLarge:
		res = b.moveSmallPairIntoLargeGap(gap, src, dir, dryRun)
	case !gap.IsLarge && !src.IsLarge:
		res = b.moveSmallPiece(gap, src, dryRun)
	case !gap.IsLarge && src.IsLarge:
		res = b.moveLargePieceIntoSmallGaps(gap, src, dir, dryRun)
	default:
		res = b.moveLargePieceIntoLargeGaps(gap, src, dir, dryRun)
	}

	if res.ok && !dryRun {
		b.afterMove(MoveRecord{
			GapID:      gap.ID,
			Direction:  dir,
			GapFrom:    gapFrom,
			GapTo:      res.gapTo,
			MovedLarge: res.movedLarge,
			GapSwap:    res.gapSwap,
			Chain:      res.chain,
		})
	}
	return res
}

// sourceCoord returns the cell the pulled occupant is probed at: one step
// beyond the gap footprint on the side opposite the travel direction.
func (b *Board) sourceCoord(gap *Piece, dir Direction) (int, int) {
	dx, dy := dir.Delta()
	size := gap.Size()
	sx, sy := gap.X, gap.Y
	switch {
	case dx > 0:
		sx = gap.X - 1
	case dx < 0:
		sx = gap.X + size
	}
	switch {
	case dy > 0:
		sy = gap.Y - 1
	case dy < 0:
		sy = gap.Y + size
	}
	return sx, sy
}

// moveGapSwap exchanges two adjacent gaps of equal size. Gaps of different
// sizes never swap. The exchange is positional only; both keep their homes.
func (b *Board) moveGapSwap(gap, other *Piece, dryRun bool) attemptResult {
	if gap.Size() != other.Size() {
		return attemptResult{}
	}
	res := attemptResult{ok: true, gapSwap: true, gapTo: Coord{X: other.X, Y: other.Y}}
	if dryRun {
		return res
	}
	b.clearPiece(gap)
	b.clearPiece(other)
	gap.X, gap.Y, other.X, other.Y = other.X, other.Y, gap.X, gap.Y
	b.writePiece(gap)
	b.writePiece(other)
	return res
}

// moveSmallPiece slides a 1x1 piece into a 1x1 gap, a plain exchange.
func (b *Board) moveSmallPiece(gap, src *Piece, dryRun bool) attemptResult {
	res := attemptResult{ok: true, gapTo: Coord{X: src.X, Y: src.Y}}
	if dryRun {
		return res
	}
	b.clearPiece(gap)
	b.clearPiece(src)
	gap.X, gap.Y, src.X, src.Y = src.X, src.Y, gap.X, gap.Y
	b.writePiece(gap)
	b.writePiece(src)
	return res
}

// moveSmallPairIntoLargeGap pulls two 1x1 pieces through a 2x2 gap. The gap
// retreats one cell against the travel direction and both movers hop two
// cells forward onto the gap's trailing edge. The preferred pairing is the
// aligned edge next to the gap; when that edge is not two plain small pieces
// a partner is probed perpendicular to the source cell and the landing is
// verified cell by cell.
func (b *Board) moveSmallPairIntoLargeGap(gap, src *Piece, dir Direction, dryRun bool) attemptResult {
	dx, dy := dir.Delta()

	newAX, newAY := gap.X-dx, gap.Y-dy
	if !b.footprintValid(newAX, newAY, 2) {
		return attemptResult{}
	}

	var candidates [2]*Piece
	if dir.Horizontal() {
		candidates[0] = b.smallPieceAt(src.X, src.Y+1)
		candidates[1] = b.smallPieceAt(src.X, src.Y-1)
	} else {
		candidates[0] = b.smallPieceAt(src.X+1, src.Y)
		candidates[1] = b.smallPieceAt(src.X-1, src.Y)
	}
	var partner *Piece
	for _, cand := range candidates {
		if cand == nil || cand.ID == src.ID {
			continue
		}
		if b.pairLandsInGap(gap, src, cand, dx, dy, newAX, newAY) {
			partner = cand
			break
		}
	}
	if partner == nil {
		return attemptResult{}
	}

	nx, ny := b.Normalize(newAX, newAY)
	res := attemptResult{ok: true, gapTo: Coord{X: nx, Y: ny}}
	if dryRun {
		return res
	}

	b.clearPiece(gap)
	b.clearPiece(src)
	b.clearPiece(partner)
	gap.X, gap.Y = nx, ny
	src.X, src.Y = b.Normalize(src.X+2*dx, src.Y+2*dy)
	partner.X, partner.Y = b.Normalize(partner.X+2*dx, partner.Y+2*dy)
	b.writePiece(gap)
	b.writePiece(src)
	b.writePiece(partner)
	return res
}

// pairLandsInGap verifies the pass-through tiling: both movers must land two
// cells ahead on cells the gap currently covers, and the gap's retreated
// footprint must be exactly its unclaimed cells plus the cells the movers
// vacate.
func (b *Board) pairLandsInGap(gap, m1, m2 *Piece, dx, dy, newAX, newAY int) bool {
	dests := make(map[[2]int]bool, 2)
	for _, m := range []*Piece{m1, m2} {
		if !b.IsValidCoord(m.X+2*dx, m.Y+2*dy) {
			return false
		}
		d := [2]int{}
		d[0], d[1] = b.Normalize(m.X+2*dx, m.Y+2*dy)
		c := b.Grid[d[1]][d[0]]
		if !c.Occupied() || c.ID != gap.ID {
			return false
		}
		if dests[d] {
			return false
		}
		dests[d] = true
	}

	remainder := make(map[[2]int]bool, 4)
	for c := range b.footprintSet(gap.X, gap.Y, 2) {
		if !dests[c] {
			remainder[c] = true
		}
	}
	v1x, v1y := b.Normalize(m1.X, m1.Y)
	v2x, v2y := b.Normalize(m2.X, m2.Y)
	remainder[[2]int{v1x, v1y}] = true
	remainder[[2]int{v2x, v2y}] = true

	target := b.footprintSet(newAX, newAY, 2)
	if len(remainder) != len(target) {
		return false
	}
	for c := range target {
		if !remainder[c] {
			return false
		}
	}
	return true
}

// moveLargePieceIntoSmallGaps slides a 2x2 piece one cell into a pair of 1x1
// gaps lining its leading edge. One of the two must be the moving gap. Each
// gap lands on the vacated trailing cell of its own row or column, so the
// pair keeps its perpendicular order.
func (b *Board) moveLargePieceIntoSmallGaps(gap, piece *Piece, dir Direction, dryRun bool) attemptResult {
	dx, dy := dir.Delta()

	var lead [2][2]int
	if dir.Horizontal() {
		lx := piece.X + 2
		if dx < 0 {
			lx = piece.X - 1
		}
		lead = [2][2]int{{lx, piece.Y}, {lx, piece.Y + 1}}
	} else {
		ly := piece.Y + 2
		if dy < 0 {
			ly = piece.Y - 1
		}
		lead = [2][2]int{{piece.X, ly}, {piece.X + 1, ly}}
	}

	var gaps [2]*Piece
	for i, c := range lead {
		g := b.smallGapAt(c[0], c[1])
		if g == nil {
			return attemptResult{}
		}
		gaps[i] = g
	}
	if gaps[0].ID == gaps[1].ID {
		return attemptResult{}
	}
	if gaps[0].ID != gap.ID && gaps[1].ID != gap.ID {
		return attemptResult{}
	}
	if !b.footprintValid(piece.X+dx, piece.Y+dy, 2) {
		return attemptResult{}
	}

	gx, gy := b.Normalize(gap.X-2*dx, gap.Y-2*dy)
	res := attemptResult{ok: true, movedLarge: true, gapTo: Coord{X: gx, Y: gy}}
	if dryRun {
		return res
	}

	b.clearPiece(piece)
	b.clearPiece(gaps[0])
	b.clearPiece(gaps[1])
	piece.X, piece.Y = b.Normalize(piece.X+dx, piece.Y+dy)
	for _, g := range gaps {
		g.X, g.Y = b.Normalize(g.X-2*dx, g.Y-2*dy)
	}
	b.writePiece(piece)
	b.writePiece(gaps[0])
	b.writePiece(gaps[1])
	return res
}

// moveLargePieceIntoLargeGaps translates a 2x2 piece two cells forward into
// 2x2 gap territory. If a single gap covers the whole destination the pair
// swap outright; two or more gaps there mean a chain.
func (b *Board) moveLargePieceIntoLargeGaps(gap, piece *Piece, dir Direction, dryRun bool) attemptResult {
	dx, dy := dir.Delta()

	destAX, destAY := piece.X+2*dx, piece.Y+2*dy
	if !b.footprintValid(destAX, destAY, 2) {
		return attemptResult{}
	}

	gapIDs := make(map[int]bool, 2)
	for _, c := range b.footprintCells(destAX, destAY, 2) {
		cell := b.Grid[c[1]][c[0]]
		if !cell.Occupied() || !cell.IsGap || !cell.IsLarge {
			return attemptResult{}
		}
		gapIDs[cell.ID] = true
	}
	if !gapIDs[gap.ID] {
		return attemptResult{}
	}

	if len(gapIDs) >= 2 {
		return b.attemptChain(gap, piece, dir, gapIDs, dryRun)
	}

	// Single gap: its footprint must be exactly the destination, then the
	// piece and the gap exchange places.
	dest := b.footprintSet(destAX, destAY, 2)
	for c := range b.footprintSet(gap.X, gap.Y, 2) {
		if !dest[c] {
			return attemptResult{}
		}
	}

	res := attemptResult{ok: true, movedLarge: true, gapTo: Coord{X: piece.X, Y: piece.Y}}
	if dryRun {
		return res
	}

	b.clearPiece(piece)
	b.clearPiece(gap)
	gap.X, gap.Y, piece.X, piece.Y = piece.X, piece.Y, gap.X, gap.Y
	b.writePiece(piece)
	b.writePiece(gap)
	return res
}
