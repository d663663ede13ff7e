package engine

import (
	"fmt"
	"math/rand"
)

// Board is the live puzzle state: the entity registry (an arena indexed by
// ID, entities are never reallocated) and a dense grid of occupancy tags
// kept consistent with it after every successful move.
type Board struct {
	Config *BoardConfig `json:"-"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	WrapX  bool         `json:"wrap_x"`
	WrapY  bool         `json:"wrap_y"`
	Pieces []*Piece     `json:"pieces"`
	Grid   [][]Cell     `json:"-"`

	hooks Hooks
}

// NewBoardFromConfig builds the registry and grid from a validated
// configuration. Entity creation order is fixed (large pieces, large gaps,
// small gaps, then small pieces row-major) so IDs are stable across
// restarts of the same layout.
func NewBoardFromConfig(cfg *BoardConfig) (*Board, error) {
	if cfg == nil {
		cfg = DefaultBoardConfig()
	}
	if err := ValidateBoardConfig(cfg); err != nil {
		return nil, err
	}

	b := &Board{
		Config: cfg,
		Width:  cfg.Width,
		Height: cfg.Height,
		WrapX:  cfg.WrapX,
		WrapY:  cfg.WrapY,
	}
	b.Grid = make([][]Cell, b.Height)
	for y := range b.Grid {
		b.Grid[y] = make([]Cell, b.Width)
	}

	add := func(x, y int, gap, large bool) *Piece {
		p := &Piece{
			ID:      len(b.Pieces),
			IsGap:   gap,
			IsLarge: large,
			X:       x,
			Y:       y,
			HomeX:   x,
			HomeY:   y,
		}
		b.Pieces = append(b.Pieces, p)
		return p
	}

	covered := make([]bool, b.Width*b.Height)
	cover := func(p *Piece) {
		size := p.Size()
		for oy := 0; oy < size; oy++ {
			for ox := 0; ox < size; ox++ {
				x, y := b.Normalize(p.X+ox, p.Y+oy)
				covered[y*b.Width+x] = true
			}
		}
	}

	for _, c := range cfg.LargePieces {
		cover(add(c.X, c.Y, false, true))
	}
	for _, c := range cfg.LargeGaps {
		cover(add(c.X, c.Y, true, true))
	}
	for _, c := range cfg.SmallGaps {
		cover(add(c.X, c.Y, true, false))
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !covered[y*b.Width+x] {
				add(x, y, false, false)
			}
		}
	}

	b.RebuildGrid()
	return b, nil
}

// RebuildGrid rewrites the whole grid from the registry. O(W*H); used at
// construction, after a full shuffle and after gap-identity reassignment.
// Per-move updates never rebuild, they touch only the affected cells.
func (b *Board) RebuildGrid() {
	for y := range b.Grid {
		for x := range b.Grid[y] {
			b.Grid[y][x] = Cell{ID: EmptyCell}
		}
	}
	for _, p := range b.Pieces {
		b.writePiece(p)
	}
}

// SetHooks installs the caller's post-move callbacks.
func (b *Board) SetHooks(h Hooks) {
	b.hooks = h
}

// Lookup returns the entity with the given ID.
func (b *Board) Lookup(id int) (*Piece, bool) {
	if id < 0 || id >= len(b.Pieces) {
		return nil, false
	}
	return b.Pieces[id], true
}

// Gaps returns the current gap entities in ID order.
func (b *Board) Gaps() []*Piece {
	var gaps []*Piece
	for _, p := range b.Pieces {
		if p.IsGap {
			gaps = append(gaps, p)
		}
	}
	return gaps
}

// PieceAt returns the entity covering the cell, normalizing first.
func (b *Board) PieceAt(x, y int) (*Piece, bool) {
	c, ok := b.cellAt(x, y)
	if !ok || !c.Occupied() {
		return nil, false
	}
	return b.Pieces[c.ID], true
}

// IsSolved reports whether every entity, gaps included, sits on its home.
func (b *Board) IsSolved() bool {
	for _, p := range b.Pieces {
		if !p.AtHome() {
			return false
		}
	}
	return true
}

// ReassignGapIdentities re-rolls which entities act as gaps, preserving the
// gap count within each size class. No entity moves and no home position
// changes; the grid is rebuilt wholesale because every cell's gap tag may
// have flipped. There is no inverse for this operation.
func (b *Board) ReassignGapIdentities(rng *rand.Rand) {
	b.reassignClass(rng, true)
	b.reassignClass(rng, false)
	b.RebuildGrid()
}

func (b *Board) reassignClass(rng *rand.Rand, large bool) {
	var ids []int
	gapCount := 0
	for _, p := range b.Pieces {
		if p.IsLarge != large {
			continue
		}
		ids = append(ids, p.ID)
		if p.IsGap {
			gapCount++
		}
	}
	if gapCount == 0 || gapCount == len(ids) {
		return
	}
	perm := rng.Perm(len(ids))
	chosen := make(map[int]bool, gapCount)
	for _, idx := range perm[:gapCount] {
		chosen[ids[idx]] = true
	}
	for _, id := range ids {
		b.Pieces[id].IsGap = chosen[id]
	}
}

// Snapshot captures the full board state for transport and persistence.
func (b *Board) Snapshot() *BoardState {
	st := &BoardState{
		Width:  b.Width,
		Height: b.Height,
		WrapX:  b.WrapX,
		WrapY:  b.WrapY,
		Pieces: make([]PieceState, len(b.Pieces)),
		Solved: b.IsSolved(),
	}
	if b.Config != nil {
		st.ConfigName = b.Config.Name
	}
	for i, p := range b.Pieces {
		st.Pieces[i] = PieceState{
			ID:      p.ID,
			X:       p.X,
			Y:       p.Y,
			HomeX:   p.HomeX,
			HomeY:   p.HomeY,
			IsGap:   p.IsGap,
			IsLarge: p.IsLarge,
		}
	}
	return st
}

// Restore applies a previously captured snapshot onto a board built from the
// same configuration. Sizes and homes must match entity for entity; only
// positions and gap flags are taken from the snapshot.
func (b *Board) Restore(st *BoardState) error {
	if st == nil {
		return fmt.Errorf("restore: state cannot be nil")
	}
	if len(st.Pieces) != len(b.Pieces) {
		return fmt.Errorf("restore: entity count mismatch: snapshot has %d, board has %d", len(st.Pieces), len(b.Pieces))
	}
	for _, ps := range st.Pieces {
		p, ok := b.Lookup(ps.ID)
		if !ok {
			return fmt.Errorf("restore: unknown entity id %d", ps.ID)
		}
		if p.IsLarge != ps.IsLarge || p.HomeX != ps.HomeX || p.HomeY != ps.HomeY {
			return fmt.Errorf("restore: entity %d does not match the board layout", ps.ID)
		}
	}
	for _, ps := range st.Pieces {
		p := b.Pieces[ps.ID]
		p.X, p.Y = ps.X, ps.Y
		p.IsGap = ps.IsGap
	}
	b.RebuildGrid()
	return nil
}

// cellAt normalizes and resolves a coordinate to its occupancy tag. The
// second return is false when the normalized coordinate still falls outside
// the grid (non-wrapping axis).
func (b *Board) cellAt(x, y int) (Cell, bool) {
	x, y = b.Normalize(x, y)
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Cell{ID: EmptyCell}, false
	}
	return b.Grid[y][x], true
}

// writePiece stamps the entity's normalized footprint onto the grid.
func (b *Board) writePiece(p *Piece) {
	size := p.Size()
	for oy := 0; oy < size; oy++ {
		for ox := 0; ox < size; ox++ {
			x, y := b.Normalize(p.X+ox, p.Y+oy)
			if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
				continue
			}
			b.Grid[y][x] = Cell{ID: p.ID, IsGap: p.IsGap, IsLarge: p.IsLarge, OffX: ox, OffY: oy}
		}
	}
}

// clearPiece erases the entity's normalized footprint from the grid.
func (b *Board) clearPiece(p *Piece) {
	size := p.Size()
	for oy := 0; oy < size; oy++ {
		for ox := 0; ox < size; ox++ {
			x, y := b.Normalize(p.X+ox, p.Y+oy)
			if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
				continue
			}
			b.Grid[y][x] = Cell{ID: EmptyCell}
		}
	}
}

// footprintValid reports whether every raw cell of a size x size footprint
// anchored at (x, y) is reachable.
func (b *Board) footprintValid(x, y, size int) bool {
	for oy := 0; oy < size; oy++ {
		for ox := 0; ox < size; ox++ {
			if !b.IsValidCoord(x+ox, y+oy) {
				return false
			}
		}
	}
	return true
}

// footprintCells returns the normalized cells of a footprint.
func (b *Board) footprintCells(x, y, size int) [][2]int {
	cells := make([][2]int, 0, size*size)
	for oy := 0; oy < size; oy++ {
		for ox := 0; ox < size; ox++ {
			nx, ny := b.Normalize(x+ox, y+oy)
			cells = append(cells, [2]int{nx, ny})
		}
	}
	return cells
}

// footprintSet returns the normalized cells of a footprint as a set.
func (b *Board) footprintSet(x, y, size int) map[[2]int]bool {
	set := make(map[[2]int]bool, size*size)
	for _, c := range b.footprintCells(x, y, size) {
		set[c] = true
	}
	return set
}

// smallPieceAt returns the occupant of (x, y) if it is a 1x1 non-gap piece.
func (b *Board) smallPieceAt(x, y int) *Piece {
	if !b.IsValidCoord(x, y) {
		return nil
	}
	c, ok := b.cellAt(x, y)
	if !ok || !c.Occupied() || c.IsLarge || c.IsGap {
		return nil
	}
	return b.Pieces[c.ID]
}

// smallGapAt returns the occupant of (x, y) if it is a 1x1 gap.
func (b *Board) smallGapAt(x, y int) *Piece {
	if !b.IsValidCoord(x, y) {
		return nil
	}
	c, ok := b.cellAt(x, y)
	if !ok || !c.Occupied() || c.IsLarge || !c.IsGap {
		return nil
	}
	return b.Pieces[c.ID]
}

// afterMove fires the caller hooks for a successful real move.
func (b *Board) afterMove(rec MoveRecord) {
	if b.hooks.OnMove != nil {
		b.hooks.OnMove(rec)
	}
	if b.hooks.OnRender != nil {
		b.hooks.OnRender(b)
	}
	if b.hooks.OnSolved != nil && b.IsSolved() {
		b.hooks.OnSolved(b)
	}
}
