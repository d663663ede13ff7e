package engine

// Normalize wraps a coordinate onto the board along axes with wrapping
// enabled. Non-wrapping axes pass through unchanged.
func (b *Board) Normalize(x, y int) (int, int) {
	if b.WrapX {
		x = ((x % b.Width) + b.Width) % b.Width
	}
	if b.WrapY {
		y = ((y % b.Height) + b.Height) % b.Height
	}
	return x, y
}

// IsValidCoord reports whether (x, y) names a reachable cell. On a wrapping
// axis every value is acceptable; otherwise the coordinate must fall in
// [0, size).
func (b *Board) IsValidCoord(x, y int) bool {
	if !b.WrapX && (x < 0 || x >= b.Width) {
		return false
	}
	if !b.WrapY && (y < 0 || y >= b.Height) {
		return false
	}
	return true
}

// axisDistance returns the shortest separation between two coordinates along
// one axis, taking the wrap shortcut when the axis wraps.
func axisDistance(a, b, size int, wrap bool) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrap && size-d < d {
		d = size - d
	}
	return d
}

// entityDistance is the wrap-aware Manhattan distance between the anchors of
// two entities.
func (b *Board) entityDistance(p, q *Piece) int {
	return axisDistance(p.X, q.X, b.Width, b.WrapX) +
		axisDistance(p.Y, q.Y, b.Height, b.WrapY)
}
