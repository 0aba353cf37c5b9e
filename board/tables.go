package board

import "errors"

// Square is an index into the 10x12 mailbox. Playable squares run from A1 (21)
// to H8 (98); everything else is an off-board sentinel cell.
type Square int

// NoSquare doubles as "no en passant square". Index 0 is always off-board.
const NoSquare Square = 0

const squareCount = 120

// Playable squares in mailbox coordinates.
const (
	A1 Square = iota + 21
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = iota + 31
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = iota + 41
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = iota + 51
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = iota + 61
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = iota + 71
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = iota + 81
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = iota + 91
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// offBoard marks file/rank entries for sentinel cells.
const offBoard = -1

// Direction offsets in mailbox coordinates. Adding any of them to a playable
// square lands either on another playable square or on a sentinel, never wraps.
var (
	knightOffsets = []int{-21, -19, -12, -8, 8, 12, 19, 21}
	kingOffsets   = []int{-11, -10, -9, -1, 1, 9, 10, 11}
	rookOffsets   = []int{-10, -1, 1, 10}
	bishopOffsets = []int{-11, -9, 9, 11}
	queenOffsets  = []int{-11, -10, -9, -1, 1, 9, 10, 11}
)

var (
	sq64To120 [64]Square
	sq120To64 [squareCount]int
	files     [squareCount]int
	ranks     [squareCount]int

	// castleMask[sq] is ANDed into the castle rights whenever a move touches sq.
	castleMask [squareCount]CastleRights
)

// ErrInvalidSquare is returned when algebraic notation does not name a square.
var ErrInvalidSquare = errors.New("invalid square")

func init() {
	initSquareTables()
	initCastleMask()
}

func initSquareTables() {
	for i := range sq120To64 {
		sq120To64[i] = 65
		files[i] = offBoard
		ranks[i] = offBoard
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := FileRankToSquare(file, rank)
			idx := rank*8 + file
			sq64To120[idx] = sq
			sq120To64[sq] = idx
			files[sq] = file
			ranks[sq] = rank
		}
	}
}

func initCastleMask() {
	all := WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	for i := range castleMask {
		castleMask[i] = all
	}
	castleMask[A1] &^= WhiteQueenSide
	castleMask[E1] &^= WhiteKingSide | WhiteQueenSide
	castleMask[H1] &^= WhiteKingSide
	castleMask[A8] &^= BlackQueenSide
	castleMask[E8] &^= BlackKingSide | BlackQueenSide
	castleMask[H8] &^= BlackKingSide
}

// FileRankToSquare converts 0-based file and rank to a mailbox square.
func FileRankToSquare(file, rank int) Square { return Square(21 + file + rank*10) }

// Sq64 converts a dense 0..63 index (a1=0, h8=63) to a mailbox square.
func Sq64(idx int) Square { return sq64To120[idx] }

// Index64 returns the dense 0..63 index of a mailbox square, or 65 for sentinels.
func (s Square) Index64() int {
	if s < 0 || s >= squareCount {
		return 65
	}
	return sq120To64[s]
}

// File returns the 0-based file, or -1 for off-board cells.
func (s Square) File() int {
	if s < 0 || s >= squareCount {
		return offBoard
	}
	return files[s]
}

// Rank returns the 0-based rank, or -1 for off-board cells.
func (s Square) Rank() int {
	if s < 0 || s >= squareCount {
		return offBoard
	}
	return ranks[s]
}

// OnBoard reports whether s is one of the 64 playable squares.
func (s Square) OnBoard() bool { return s.File() != offBoard }

// String returns algebraic notation ("e4"), or "-" for off-board cells.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts algebraic notation to a mailbox square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, ErrInvalidSquare
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, ErrInvalidSquare
	}
	return FileRankToSquare(int(file-'a'), int(rank-'1')), nil
}
