package board_test

import (
	"testing"

	"github.com/kevinrjones/chessengine-sub000/board"
)

func movesOf(moves []board.Move, kind board.Kind) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func castles(moves []board.Move) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.IsCastle() {
			out = append(out, m)
		}
	}
	return out
}

func TestIsolatedPieceMoveCounts(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int
	}{
		{"rook d4", "8/8/8/8/3R4/8/8/8 w - - 0 1", 14},
		{"rook e5 black", "8/8/8/4r3/8/8/8/8 b - - 0 1", 14},
		{"bishop d4", "8/8/8/8/3B4/8/8/8 w - - 0 1", 13},
		{"bishop e5", "8/8/8/4B3/8/8/8/8 w - - 0 1", 13},
		{"queen d4", "8/8/8/8/3Q4/8/8/8 w - - 0 1", 27},
		{"knight d4", "8/8/8/8/3N4/8/8/8 w - - 0 1", 8},
		{"king d4", "8/8/8/8/3K4/8/8/8 w - - 0 1", 8},
		{"knight a1", "8/8/8/8/8/8/8/N7 w - - 0 1", 2},
		{"king h8", "7K/8/8/8/8/8/8/8 w - - 0 1", 3},
		{"rook a1", "8/8/8/8/8/8/8/R7 w - - 0 1", 14},
		{"bishop a1", "8/8/8/8/8/8/8/B7 w - - 0 1", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			if got := len(b.GenerateMoves()); got != tc.want {
				t.Fatalf("got %d moves want %d", got, tc.want)
			}
		})
	}
}

func TestSlidingRaysStopAtPieces(t *testing.T) {
	// Own pawn on d6 blocks the north ray, enemy pawn on f4 is captured and
	// stops the east ray.
	b := mustFEN(t, "8/8/3P4/8/3R1p2/8/8/8 w - - 0 1")
	rook := movesOf(b.GenerateMoves(), board.Rook)
	if len(rook) != 9 {
		t.Fatalf("rook moves: got %d want 9", len(rook))
	}
	var captures int
	for _, m := range rook {
		if m.To == board.D6 || m.To == board.G4 {
			t.Fatalf("ray passed a blocker: %v", m)
		}
		if m.IsCapture() {
			captures++
			if m.To != board.F4 || m.Captured != board.Pawn {
				t.Fatalf("unexpected capture %v (%v)", m, m.Captured)
			}
		}
	}
	if captures != 1 {
		t.Fatalf("captures: got %d want 1", captures)
	}
}

func TestStartPositionMoves(t *testing.T) {
	b := mustFEN(t, board.StartFEN)
	moves := b.GenerateMoves()
	if len(moves) != 20 {
		t.Fatalf("got %d moves want 20", len(moves))
	}
	if len(movesOf(moves, board.Pawn)) != 16 || len(movesOf(moves, board.Knight)) != 4 {
		t.Fatalf("unexpected split: %v", moves)
	}
	var doubles int
	for _, m := range moves {
		if m.PawnStart {
			doubles++
			if m.To-m.From != 20 {
				t.Fatalf("double step %v has wrong distance", m)
			}
		}
	}
	if doubles != 8 {
		t.Fatalf("double steps: got %d want 8", doubles)
	}
	if got := len(b.LegalMoves()); got != 20 {
		t.Fatalf("legal moves: got %d want 20", got)
	}
}

func TestGenerationFamilyOrder(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/P7/QRBNK3 w - - 0 1")
	order := []board.Kind{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King}
	rank := make(map[board.Kind]int)
	for i, k := range order {
		rank[k] = i
	}
	last := -1
	for _, m := range b.GenerateMoves() {
		if rank[m.Kind] < last {
			t.Fatalf("%v generated after a later family", m)
		}
		last = rank[m.Kind]
	}
}

func TestCastlingGeneration(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want []string
	}{
		{"both sides", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}},
		{"black both sides", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}},
		{"queen side occupied", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", []string{"e1g1"}},
		{"king side occupied", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", []string{"e1c1"}},
		{"transit attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1"}},
		{"destination attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1"}},
		{"b1 attacked is fine", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1g1", "e1c1"}},
		{"in check", "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", nil},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", nil},
		{"king side right only", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", []string{"e1g1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			got := castles(b.GenerateMoves())
			if len(got) != len(tc.want) {
				t.Fatalf("castle moves: got %v want %v", got, tc.want)
			}
			for i, m := range got {
				if m.String() != tc.want[i] || m.Kind != board.King {
					t.Fatalf("castle move %d: got %v want %s", i, m, tc.want[i])
				}
			}
		})
	}
}

func TestPromotionGeneration(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int
	}{
		{"push only", "8/P7/8/8/8/8/8/8 w - - 0 1", 4},
		{"push and one capture", "1n6/P7/8/8/8/8/8/8 w - - 0 1", 8},
		{"push and two captures", "r1r5/1P6/8/8/8/8/8/8 w - - 0 1", 12},
		{"blocked with one capture", "nr6/P7/8/8/8/8/8/8 w - - 0 1", 4},
		{"black push", "8/8/8/8/8/8/p7/8 b - - 0 1", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			pawn := movesOf(b.GenerateMoves(), board.Pawn)
			if len(pawn) != tc.want {
				t.Fatalf("pawn moves: got %d want %d", len(pawn), tc.want)
			}
			for _, m := range pawn {
				if !m.IsPromotion() {
					t.Fatalf("non-promotion %v", m)
				}
			}
		})
	}

	b := mustFEN(t, "8/P7/8/8/8/8/8/8 w - - 0 1")
	want := []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"}
	for i, m := range b.GenerateMoves() {
		if m.String() != want[i] {
			t.Fatalf("promotion %d: got %s want %s", i, m, want[i])
		}
	}
}

func TestEnPassant(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/1p6/8/P7/4K3 w - - 0 1")
	push, err := b.FindMove("a2a4")
	if err != nil {
		t.Fatal(err)
	}
	if !push.PawnStart {
		t.Fatalf("a2a4 not flagged as a double step")
	}
	if !b.MakeMove(push) {
		t.Fatalf("a2a4 rejected")
	}
	if b.EnPassant() != board.A3 {
		t.Fatalf("en passant square: got %v want a3", b.EnPassant())
	}

	var ep board.Move
	found := false
	for _, m := range b.GenerateMoves() {
		if m.EnPassant {
			ep, found = m, true
		}
	}
	if !found || ep.From != board.B4 || ep.To != board.A3 {
		t.Fatalf("en passant capture not generated: %+v", ep)
	}
	before := b.ToFEN()
	key := b.PositionKey()
	if !b.MakeMove(ep) {
		t.Fatalf("en passant rejected")
	}
	if !b.PieceAt(board.A4).IsEmpty() {
		t.Fatalf("passed pawn still on a4")
	}
	if got := b.PieceAt(board.A3); got.Kind != board.Pawn || got.Color != board.Black {
		t.Fatalf("capturing pawn not on a3: %+v", got)
	}
	if got := b.Material(board.White); got != board.KingValue {
		t.Fatalf("white material: got %d want %d", got, board.KingValue)
	}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}

	b.TakeMove()
	if b.ToFEN() != before || b.PositionKey() != key {
		t.Fatalf("undo of en passant: got %q want %q", b.ToFEN(), before)
	}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestEnPassantOnlyImmediately(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/1p6/8/P7/4K3 w - - 0 1")
	for _, mv := range []string{"a2a4", "e8d8", "e1d1"} {
		m, err := b.FindMove(mv)
		if err != nil {
			t.Fatal(err)
		}
		b.MakeMove(m)
	}
	for _, m := range b.GenerateMoves() {
		if m.EnPassant {
			t.Fatalf("stale en passant capture generated: %v", m)
		}
	}
}

func TestCastlingNeedsRookOnHomeSquare(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	b.ClearPiece(b.PieceAt(board.H1))
	got := castles(b.GenerateMoves())
	if len(got) != 1 || got[0].String() != "e1c1" {
		t.Fatalf("castle moves: got %v want [e1c1]", got)
	}
	for _, m := range b.GenerateMoves() {
		if b.MakeMove(m) {
			b.TakeMove()
		}
	}
}
