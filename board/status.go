package board

import (
	"fmt"
	"strings"
)

// LegalMoves returns the generated moves that survive MakeMove. The board is
// left exactly as it was found, but the current ply's move buffer is refilled.
func (b *Board) LegalMoves() []Move {
	var legal []Move
	for _, m := range b.GenerateMoves() {
		if b.MakeMove(m) {
			b.TakeMove()
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move can make any move.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.GenerateMoves() {
		if b.MakeMove(m) {
			b.TakeMove()
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is checkmated.
func (b *Board) IsCheckmate() bool { return b.InCheck(b.side) && !b.HasLegalMoves() }

// IsStalemate reports whether the side to move has no moves but is not in check.
func (b *Board) IsStalemate() bool { return !b.InCheck(b.side) && !b.HasLegalMoves() }

// IsDrawBy50 reports a fifty-move rule draw.
func (b *Board) IsDrawBy50() bool { return b.fiftyMove >= 100 }

// IsRepetition reports whether the current position occurred before since
// the last capture or pawn move.
func (b *Board) IsRepetition() bool {
	start := len(b.history) - b.fiftyMove
	if start < 0 {
		start = 0
	}
	for i := start; i < len(b.history); i++ {
		if b.history[i].positionKey == b.positionKey {
			return true
		}
	}
	return false
}

// FindMove resolves coordinate notation ("e2e4", "e7e8q") to a legal move.
func (b *Board) FindMove(uci string) (Move, error) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	for _, m := range b.LegalMoves() {
		if m.String() == uci {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, uci)
}
