package board

// IsSquareAttacked reports whether any piece of color by attacks sq. It does
// not look at whose turn it is and never mutates the board.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally forward, so look one rank behind sq.
	if by == White {
		if b.isPiece(sq-9, Pawn, White) || b.isPiece(sq-11, Pawn, White) {
			return true
		}
	} else {
		if b.isPiece(sq+9, Pawn, Black) || b.isPiece(sq+11, Pawn, Black) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if b.isPiece(sq+Square(off), Knight, by) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if b.isPiece(sq+Square(off), King, by) {
			return true
		}
	}

	if b.rayAttacked(sq, by, rookOffsets, Rook) {
		return true
	}
	return b.rayAttacked(sq, by, bishopOffsets, Bishop)
}

// rayAttacked walks each direction from sq to the first non-empty cell and
// reports whether it holds a slider of kind (or a queen) belonging to by.
func (b *Board) rayAttacked(sq Square, by Color, offsets []int, kind Kind) bool {
	for _, off := range offsets {
		t := sq + Square(off)
		p := b.squares[t]
		for p.IsEmpty() {
			t += Square(off)
			p = b.squares[t]
		}
		if p.Color == by && (p.Kind == kind || p.Kind == Queen) {
			return true
		}
	}
	return false
}

func (b *Board) isPiece(sq Square, kind Kind, c Color) bool {
	p := b.squares[sq]
	return p.Kind == kind && p.Color == c
}

// InCheck reports whether c's king is attacked. A side without a king is
// never in check.
func (b *Board) InCheck(c Color) bool {
	ks := b.kingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, c.Opponent())
}
