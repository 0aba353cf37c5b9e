package board

// CastleRights is a bitmask of the four castling permissions.
type CastleRights uint8

const (
	WhiteKingSide CastleRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const NoCastling CastleRights = 0

// String renders the rights in FEN order ("KQkq"), or "-" when none remain.
func (cr CastleRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var buf []byte
	if cr&WhiteKingSide != 0 {
		buf = append(buf, 'K')
	}
	if cr&WhiteQueenSide != 0 {
		buf = append(buf, 'Q')
	}
	if cr&BlackKingSide != 0 {
		buf = append(buf, 'k')
	}
	if cr&BlackQueenSide != 0 {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// Move is a self-contained value. It never refers back into the board, so it
// stays valid after the position it was generated from has changed.
type Move struct {
	Kind  Kind
	Color Color
	From  Square
	To    Square

	// Captured is Empty unless a piece stands on To. En passant captures keep
	// it Empty and set EnPassant instead.
	Captured  Kind
	Promoted  Kind
	EnPassant bool
	PawnStart bool
	// Castle holds the single right being exercised, or NoCastling.
	Castle CastleRights
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool { return m.Captured != Empty || m.EnPassant }

// IsPromotion reports whether a pawn is replaced on arrival.
func (m Move) IsPromotion() bool { return m.Promoted != Empty }

// IsCastle reports whether the move is a castling king move.
func (m Move) IsCastle() bool { return m.Castle != NoCastling }

// String produces coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += m.Promoted.String()
	}
	return s
}

// castleRookMoves is indexed by a castling king's destination and holds the
// rook's origin and target.
var castleRookMoves = [squareCount][2]Square{
	G1: {H1, F1},
	C1: {A1, D1},
	G8: {H8, F8},
	C8: {A8, D8},
}

var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}
