package board

// MakeMove applies a pseudo-legal move generated for the current position.
// It returns false, with the board already restored, if the move leaves the
// mover's king in check.
func (b *Board) MakeMove(m Move) bool {
	b.history = append(b.history, historyEntry{
		positionKey:  b.positionKey,
		move:         m,
		enPassant:    b.enPassant,
		castleRights: b.castleRights,
		fiftyMove:    b.fiftyMove,
		fullMove:     b.fullMove,
	})

	// Special cases move a piece other than the one named by the move, so
	// they are resolved before the mover is relocated.
	if m.EnPassant {
		b.ClearPiece(b.squares[m.To-pawnDirection(m.Color)])
	}
	if m.IsCastle() {
		rook := castleRookMoves[m.To]
		b.CastlePiece(b.squares[rook[0]], rook[1])
	}

	if b.enPassant != NoSquare {
		b.HashEnPassant()
	}

	b.HashCastle()
	b.castleRights &= castleMask[m.From] & castleMask[m.To]
	b.HashCastle()

	b.enPassant = NoSquare

	b.fiftyMove++
	if m.Captured != Empty {
		b.ClearPiece(b.squares[m.To])
		b.fiftyMove = 0
	}

	b.ply++
	b.historyPly++

	if m.Kind == Pawn {
		b.fiftyMove = 0
		if m.PawnStart {
			b.enPassant = m.From + pawnDirection(m.Color)
			b.HashEnPassant()
		}
	}

	b.MovePiece(b.squares[m.From], m.To)

	if m.IsPromotion() {
		b.ClearPiece(b.squares[m.To])
		b.AddPiece(Piece{Kind: m.Promoted, Color: m.Color, Square: m.To})
	}

	if b.side == Black {
		b.fullMove++
	}
	b.side = b.side.Opponent()
	b.HashSide()

	if b.InCheck(m.Color) {
		b.TakeMove()
		return false
	}
	return true
}

// TakeMove reverses the most recent MakeMove. It panics if there is nothing
// to undo.
func (b *Board) TakeMove() {
	n := len(b.history)
	if n == 0 {
		panic("board: TakeMove with empty history")
	}
	h := b.history[n-1]
	b.history = b.history[:n-1]
	m := h.move

	b.ply--
	b.historyPly--

	b.HashCastle()
	b.castleRights = h.castleRights
	b.HashCastle()

	b.fiftyMove = h.fiftyMove
	b.fullMove = h.fullMove

	if b.enPassant != NoSquare {
		b.HashEnPassant()
	}
	b.enPassant = h.enPassant
	if b.enPassant != NoSquare {
		b.HashEnPassant()
	}

	b.side = b.side.Opponent()
	b.HashSide()

	if m.EnPassant {
		b.AddPiece(Piece{Kind: Pawn, Color: b.side.Opponent(), Square: m.To - pawnDirection(b.side)})
	}
	if m.IsCastle() {
		rook := castleRookMoves[m.To]
		b.CastlePiece(b.squares[rook[1]], rook[0])
	}

	// The occupant of To may be a promoted piece rather than the original mover.
	b.MovePiece(b.squares[m.To], m.From)

	if m.Captured != Empty {
		b.AddPiece(Piece{Kind: m.Captured, Color: b.side.Opponent(), Square: m.To})
	}
	if m.IsPromotion() {
		b.ClearPiece(b.squares[m.From])
		b.AddPiece(Piece{Kind: Pawn, Color: b.side, Square: m.From})
	}
}
