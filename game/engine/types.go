package engine

// Direction names where the pulled occupant travels. A move always targets a
// gap; the occupant on the opposite side of the gap slides in.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"

	// Validation constants
	MinBoardSize    = 2
	MaxBoardSize    = 64
	MaxShuffleSteps = 100000

	// EmptyCell marks a grid cell with no occupant. A fully tiled board
	// never exposes one after a rebuild.
	EmptyCell = -1
)

// Directions lists all move directions in a fixed enumeration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Horizontal reports whether the direction runs along the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Coord is a board cell coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Piece is a single movable entity, either a tile or a gap. Home coordinates
// are fixed at construction; ordinary moves change only X and Y. For a gap
// the home cell is its identity: it decides which tile image the gap stands
// in for and when it counts as solved, no matter where it currently sits.
type Piece struct {
	ID      int  `json:"id"`
	IsGap   bool `json:"is_gap"`
	IsLarge bool `json:"is_large"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	HomeX   int  `json:"home_x"`
	HomeY   int  `json:"home_y"`
}

// Size returns the footprint edge length (1 or 2).
func (p *Piece) Size() int {
	if p.IsLarge {
		return 2
	}
	return 1
}

// AtHome reports whether the piece currently sits on its home cell.
func (p *Piece) AtHome() bool {
	return p.X == p.HomeX && p.Y == p.HomeY
}

// Cell is the grid's occupancy tag for one board cell: which entity covers
// it, the entity's class, and the cell's offset inside a 2x2 footprint.
type Cell struct {
	ID      int  `json:"id"`
	IsGap   bool `json:"is_gap"`
	IsLarge bool `json:"is_large"`
	OffX    int  `json:"off_x"`
	OffY    int  `json:"off_y"`
}

// Occupied reports whether the cell has an occupant.
func (c Cell) Occupied() bool {
	return c.ID != EmptyCell
}

// MoveDescriptor identifies one legal move found by the enumerator.
type MoveDescriptor struct {
	GapID     int       `json:"gap_id"`
	Direction Direction `json:"direction"`
	// IsLarge is set when the move displaces a 2x2 piece, whether by a
	// plain two-gap entry, a full swap with a large gap, or a chain.
	IsLarge   bool `json:"is_large"`
	IsGapSwap bool `json:"is_gap_swap"`
}

// MoveRecord describes one successfully executed move, as handed to hooks.
type MoveRecord struct {
	GapID      int       `json:"gap_id"`
	Direction  Direction `json:"direction"`
	GapFrom    Coord     `json:"gap_from"`
	GapTo      Coord     `json:"gap_to"`
	MovedLarge bool      `json:"moved_large"`
	GapSwap    bool      `json:"gap_swap"`
	Chain      bool      `json:"chain"`
}

// Hooks are optional callbacks fired after every successful real move. The
// core owns none of these concerns; rendering, win reporting and history
// recording belong to the host.
type Hooks struct {
	OnMove   func(MoveRecord)
	OnRender func(*Board)
	OnSolved func(*Board)
}

// PieceState is the serializable position/identity snapshot of one entity.
type PieceState struct {
	ID      int  `json:"id"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	HomeX   int  `json:"home_x"`
	HomeY   int  `json:"home_y"`
	IsGap   bool `json:"is_gap"`
	IsLarge bool `json:"is_large"`
}

// BoardState is the wire and persistence representation of a board.
type BoardState struct {
	ConfigName string       `json:"config_name"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	WrapX      bool         `json:"wrap_x"`
	WrapY      bool         `json:"wrap_y"`
	Pieces     []PieceState `json:"pieces"`
	Solved     bool         `json:"solved"`
}

// MoveHistoryEntry represents a single move in the engine's history.
type MoveHistoryEntry struct {
	Direction  Direction `json:"direction"`
	GapID      int       `json:"gap_id"`
	GapFrom    Coord     `json:"gap_from"`
	GapTo      Coord     `json:"gap_to"`
	MovedLarge bool      `json:"moved_large"`
	GapSwap    bool      `json:"gap_swap"`
	Chain      bool      `json:"chain"`
	Success    bool      `json:"success"`
	Timestamp  int64     `json:"timestamp"`
	MoveNumber int       `json:"move_number"`
}
