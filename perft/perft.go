// Package perft walks the move tree of a board to a fixed depth and counts
// leaf nodes. It is the reference consumer of the board's make/take contract.
package perft

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/kevinrjones/chessengine-sub000/board"
)

// Perft counts the leaf nodes reachable from b in exactly depth plies.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateMoves() {
		if !b.MakeMove(m) {
			continue
		}
		nodes += Perft(b, depth-1)
		b.TakeMove()
	}
	return nodes
}

// Entry is the subtree size below one root move.
type Entry struct {
	Move  string
	Nodes uint64
}

// Divide returns the leaf count below every legal root move, sorted by move
// notation.
func Divide(b *board.Board, depth int) []Entry {
	if depth <= 0 {
		return nil
	}
	counts := make(map[string]uint64)
	for _, m := range b.GenerateMoves() {
		if !b.MakeMove(m) {
			continue
		}
		counts[m.String()] = Perft(b, depth-1)
		b.TakeMove()
	}
	moves := maps.Keys(counts)
	slices.Sort(moves)
	entries := make([]Entry, 0, len(moves))
	for _, mv := range moves {
		entries = append(entries, Entry{Move: mv, Nodes: counts[mv]})
	}
	return entries
}

// Total sums the node counts of a divide.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}

// Stats tallies properties of the moves leading into the leaf nodes.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassant += o.EnPassant
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
}

// Count walks the tree like Perft and classifies the last move of every leaf.
func Count(b *board.Board, depth int) Stats {
	var s Stats
	if depth <= 0 {
		s.Nodes = 1
		return s
	}
	for _, m := range b.GenerateMoves() {
		if !b.MakeMove(m) {
			continue
		}
		if depth == 1 {
			s.Nodes++
			if m.IsCapture() {
				s.Captures++
			}
			if m.EnPassant {
				s.EnPassant++
			}
			if m.IsCastle() {
				s.Castles++
			}
			if m.IsPromotion() {
				s.Promotions++
			}
			if b.InCheck(b.SideToMove()) {
				s.Checks++
			}
		} else {
			s.Add(Count(b, depth-1))
		}
		b.TakeMove()
	}
	return s
}
