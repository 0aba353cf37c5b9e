package board

import "testing"

func TestZobristKeysUnique(t *testing.T) {
	seen := make(map[uint64]string)
	add := func(key uint64, name string) {
		t.Helper()
		if key == 0 {
			t.Fatalf("zero key for %s", name)
		}
		if prev, ok := seen[key]; ok {
			t.Fatalf("key collision between %s and %s", prev, name)
		}
		seen[key] = name
	}
	for k := Pawn; k <= King; k++ {
		for _, c := range []Color{White, Black} {
			for i := 0; i < 64; i++ {
				sq := Sq64(i)
				add(keys.Piece(k, c, sq), k.String()+c.String()+sq.String())
			}
		}
	}
	for cr := CastleRights(0); cr < 16; cr++ {
		add(keys.Castle(cr), "castle "+cr.String())
	}
	for f := 0; f < 8; f++ {
		add(keys.EnPassant(FileRankToSquare(f, 2)), "ep file "+string(rune('a'+f)))
	}
	add(keys.Side(), "side")

	if want := 12*64 + 16 + 8 + 1; len(seen) != want {
		t.Fatalf("key count: got %d want %d", len(seen), want)
	}
}

func TestZobristSeedIsReproducible(t *testing.T) {
	if *NewHasher(ZobristSeed) != *keys {
		t.Fatalf("hasher built from the same seed differs")
	}
	if *NewHasher(ZobristSeed+1) == *keys {
		t.Fatalf("hasher built from a different seed is identical")
	}
}

func TestEnPassantKeyIsPerFile(t *testing.T) {
	for f := 0; f < 8; f++ {
		low, high := FileRankToSquare(f, 2), FileRankToSquare(f, 5)
		if keys.EnPassant(low) != keys.EnPassant(high) {
			t.Fatalf("file %d: rank 3 and rank 6 keys differ", f)
		}
	}
}

func TestHashTogglesAreInvolutions(t *testing.T) {
	b, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	start := b.PositionKey()

	for i := 0; i < 64; i++ {
		p := Piece{Kind: Queen, Color: Black, Square: Sq64(i)}
		b.HashPiece(p)
		if b.PositionKey() == start {
			t.Fatalf("hashing %v did not change the key", p)
		}
		b.HashPiece(p)
		if b.PositionKey() != start {
			t.Fatalf("hashing %v twice did not restore the key", p)
		}
	}

	b.HashSide()
	b.HashSide()
	b.HashCastle()
	b.HashCastle()
	b.enPassant = D6
	b.HashEnPassant()
	b.HashEnPassant()
	b.enPassant = NoSquare
	if b.PositionKey() != start {
		t.Fatalf("side/castle/en passant toggles are not self-inverse")
	}
	if start != b.GeneratePositionKey() {
		t.Fatalf("incremental key %016x, recomputed %016x", start, b.GeneratePositionKey())
	}
}

func TestSideKeyOnlyWhileWhiteToMove(t *testing.T) {
	w, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	bl, err := FromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if w.PositionKey()^bl.PositionKey() != keys.Side() {
		t.Fatalf("white and black to move should differ by exactly the side key")
	}
}
