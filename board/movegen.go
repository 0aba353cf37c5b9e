package board

import "fmt"

// GenerateMoves refills the current ply's buffer with every pseudo-legal move
// for the side to move and returns it. Moves that leave the mover's king in
// check are rejected later by MakeMove.
func (b *Board) GenerateMoves() []Move {
	for len(b.moves) <= b.ply {
		b.moves = append(b.moves, nil)
	}
	moves := b.moves[b.ply][:0]

	side := b.side
	moves = b.generatePawnMoves(moves, side)
	moves = b.generateJumpMoves(moves, side, Knight)
	moves = b.generateSlidingMoves(moves, side, Bishop)
	moves = b.generateSlidingMoves(moves, side, Rook)
	moves = b.generateSlidingMoves(moves, side, Queen)
	moves = b.generateJumpMoves(moves, side, King)
	moves = b.generateCastleMoves(moves, side)

	b.moves[b.ply] = moves
	return moves
}

// pawnDirection returns the mailbox step a pawn of c advances by.
func pawnDirection(c Color) Square {
	if c == White {
		return 10
	}
	return -10
}

func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

func promotionRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func (b *Board) generatePawnMoves(moves []Move, side Color) []Move {
	fwd := pawnDirection(side)
	them := side.Opponent()
	for _, from := range b.pieceLists[Pawn] {
		if b.squares[from].Color != side {
			continue
		}
		base := Move{Kind: Pawn, Color: side, From: from}

		to := from + fwd
		if b.squares[to].IsEmpty() {
			moves = addPawnMove(moves, base, to, Empty)
			two := to + fwd
			if from.Rank() == pawnStartRank(side) && b.squares[two].IsEmpty() {
				m := base
				m.To = two
				m.PawnStart = true
				moves = append(moves, m)
			}
		}

		for _, diag := range [2]Square{fwd - 1, fwd + 1} {
			to := from + diag
			target := b.squares[to]
			if target.Color == them {
				moves = addPawnMove(moves, base, to, target.Kind)
				continue
			}
			if b.enPassant != NoSquare && to == b.enPassant {
				m := base
				m.To = to
				m.EnPassant = true
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// addPawnMove appends a push or capture, fanning out into the four promotion
// choices when the pawn lands on the last rank.
func addPawnMove(moves []Move, base Move, to Square, captured Kind) []Move {
	base.To = to
	base.Captured = captured
	if to.Rank() != promotionRank(base.Color) {
		return append(moves, base)
	}
	for _, k := range promotionKinds {
		m := base
		m.Promoted = k
		moves = append(moves, m)
	}
	return moves
}

// generateJumpMoves handles knights and kings: one step along each offset.
func (b *Board) generateJumpMoves(moves []Move, side Color, kind Kind) []Move {
	offsets := kindTable[kind].offsets
	for _, from := range b.pieceLists[kind] {
		if b.squares[from].Color != side {
			continue
		}
		for _, off := range offsets {
			to := from + Square(off)
			target := b.squares[to]
			switch {
			case target.IsEmpty():
				moves = append(moves, Move{Kind: kind, Color: side, From: from, To: to})
			case target.Color == side.Opponent():
				moves = append(moves, Move{Kind: kind, Color: side, From: from, To: to, Captured: target.Kind})
			}
		}
	}
	return moves
}

// generateSlidingMoves walks every ray of a bishop, rook or queen until it
// leaves the board or hits a piece. It panics for non-sliding kinds.
func (b *Board) generateSlidingMoves(moves []Move, side Color, kind Kind) []Move {
	if !kind.Sliding() {
		panic(fmt.Sprintf("board: sliding move generation for non-slider %v", kind))
	}
	offsets := kindTable[kind].offsets
	for _, from := range b.pieceLists[kind] {
		if b.squares[from].Color != side {
			continue
		}
		for _, off := range offsets {
			for to := from + Square(off); ; to += Square(off) {
				target := b.squares[to]
				if target.IsEmpty() {
					moves = append(moves, Move{Kind: kind, Color: side, From: from, To: to})
					continue
				}
				if target.Color == side.Opponent() {
					moves = append(moves, Move{Kind: kind, Color: side, From: from, To: to, Captured: target.Kind})
				}
				break
			}
		}
	}
	return moves
}

type castleRule struct {
	right   CastleRights
	king    Square
	rook    Square
	to      Square
	between []Square
	safe    []Square
}

var castleRules = [2][2]castleRule{
	White: {
		{right: WhiteKingSide, king: E1, rook: H1, to: G1, between: []Square{F1, G1}, safe: []Square{E1, F1, G1}},
		{right: WhiteQueenSide, king: E1, rook: A1, to: C1, between: []Square{D1, C1, B1}, safe: []Square{E1, D1, C1}},
	},
	Black: {
		{right: BlackKingSide, king: E8, rook: H8, to: G8, between: []Square{F8, G8}, safe: []Square{E8, F8, G8}},
		{right: BlackQueenSide, king: E8, rook: A8, to: C8, between: []Square{D8, C8, B8}, safe: []Square{E8, D8, C8}},
	},
}

func (b *Board) generateCastleMoves(moves []Move, side Color) []Move {
	if side != White && side != Black {
		return moves
	}
	them := side.Opponent()
	for _, rule := range castleRules[side] {
		if b.castleRights&rule.right == 0 || !b.isPiece(rule.king, King, side) || !b.isPiece(rule.rook, Rook, side) {
			continue
		}
		if !b.allEmpty(rule.between) || b.anyAttacked(rule.safe, them) {
			continue
		}
		moves = append(moves, Move{Kind: King, Color: side, From: rule.king, To: rule.to, Castle: rule.right})
	}
	return moves
}

func (b *Board) allEmpty(squares []Square) bool {
	for _, sq := range squares {
		if !b.squares[sq].IsEmpty() {
			return false
		}
	}
	return true
}

func (b *Board) anyAttacked(squares []Square, by Color) bool {
	for _, sq := range squares {
		if b.IsSquareAttacked(sq, by) {
			return true
		}
	}
	return false
}
