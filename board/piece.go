package board

import "unicode"

// Kind is the colorless type of whatever occupies a mailbox cell.
type Kind uint8

const (
	Empty Kind = iota
	OffBoard
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const kindCount = int(King) + 1

// Color identifies a side. NoColor belongs to empty and off-board cells.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Opponent returns the other side. NoColor has no opponent and maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Material values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 325
	BishopValue = 325
	RookValue   = 550
	QueenValue  = 1000
	KingValue   = 50000
)

type kindInfo struct {
	value   int
	sliding bool
	symbol  byte
	offsets []int
}

var kindTable = [kindCount]kindInfo{
	Empty:    {symbol: '.'},
	OffBoard: {symbol: 'x'},
	Pawn:     {value: PawnValue, symbol: 'p'},
	Knight:   {value: KnightValue, symbol: 'n', offsets: knightOffsets},
	Bishop:   {value: BishopValue, symbol: 'b', sliding: true, offsets: bishopOffsets},
	Rook:     {value: RookValue, symbol: 'r', sliding: true, offsets: rookOffsets},
	Queen:    {value: QueenValue, symbol: 'q', sliding: true, offsets: queenOffsets},
	King:     {value: KingValue, symbol: 'k', offsets: kingOffsets},
}

// Value returns the static material value of the kind.
func (k Kind) Value() int { return kindTable[k].value }

// Sliding reports whether the kind moves along rays.
func (k Kind) Sliding() bool { return kindTable[k].sliding }

// IsPiece reports whether k is one of the six playable kinds.
func (k Kind) IsPiece() bool { return k >= Pawn && k <= King }

func (k Kind) String() string { return string(kindTable[k].symbol) }

// Piece is a value describing what sits on one mailbox cell. Pieces are copied,
// never shared, so a Piece read from the board is a snapshot.
type Piece struct {
	Kind   Kind
	Color  Color
	Square Square
}

// Value returns the material value of the piece.
func (p Piece) Value() int { return p.Kind.Value() }

// Sliding reports whether the piece moves along rays.
func (p Piece) Sliding() bool { return p.Kind.Sliding() }

// IsEmpty reports whether the cell is vacant and playable.
func (p Piece) IsEmpty() bool { return p.Kind == Empty }

// IsOffBoard reports whether the cell is a sentinel.
func (p Piece) IsOffBoard() bool { return p.Kind == OffBoard }

// Symbol returns the FEN letter: uppercase for white, lowercase for black and
// '.' for empty cells.
func (p Piece) Symbol() rune {
	r := rune(kindTable[p.Kind].symbol)
	if p.Color == White {
		return unicode.ToUpper(r)
	}
	return r
}

// withSquare returns a copy of p relocated to sq.
func (p Piece) withSquare(sq Square) Piece {
	p.Square = sq
	return p
}

func emptyAt(sq Square) Piece { return Piece{Kind: Empty, Color: NoColor, Square: sq} }

func offBoardAt(sq Square) Piece { return Piece{Kind: OffBoard, Color: NoColor, Square: sq} }

func pieceFromSymbol(ch rune) (Kind, Color, bool) {
	color := Black
	if unicode.IsUpper(ch) {
		color = White
	}
	switch unicode.ToLower(ch) {
	case 'p':
		return Pawn, color, true
	case 'n':
		return Knight, color, true
	case 'b':
		return Bishop, color, true
	case 'r':
		return Rook, color, true
	case 'q':
		return Queen, color, true
	case 'k':
		return King, color, true
	}
	return Empty, NoColor, false
}
