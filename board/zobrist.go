package board

import "golang.org/x/exp/rand"

// ZobristSeed fixes the key tables so hashes are reproducible between runs.
const ZobristSeed = 0xC0DE

// Hasher holds the Zobrist key tables. Keys are XORed in and out of a running
// position key; every toggle is its own inverse.
type Hasher struct {
	pieces    [2 * 6][squareCount]uint64
	castle    [16]uint64
	enPassant [8]uint64
	side      uint64
}

var keys = NewHasher(ZobristSeed)

// NewHasher builds key tables from a deterministic PCG stream.
func NewHasher(seed uint64) *Hasher {
	rnd := rand.New(rand.NewSource(seed))
	h := &Hasher{}
	for p := range h.pieces {
		// Sq64 tables are not built yet when the package-level hasher is created.
		for i := 0; i < 64; i++ {
			h.pieces[p][FileRankToSquare(i%8, i/8)] = rnd.Uint64()
		}
	}
	for cr := range h.castle {
		h.castle[cr] = rnd.Uint64()
	}
	for f := range h.enPassant {
		h.enPassant[f] = rnd.Uint64()
	}
	h.side = rnd.Uint64()
	return h
}

func pieceKeyIndex(kind Kind, color Color) int {
	return int(kind-Pawn)*2 + int(color)
}

// Piece returns the key for a playable kind of the given color on sq.
func (h *Hasher) Piece(kind Kind, color Color, sq Square) uint64 {
	return h.pieces[pieceKeyIndex(kind, color)][sq]
}

// Castle returns the key for one of the 16 castle-rights combinations.
func (h *Hasher) Castle(cr CastleRights) uint64 { return h.castle[cr&0xF] }

// Side returns the side-to-move key. It is hashed in while white is to move.
func (h *Hasher) Side() uint64 { return h.side }

// EnPassant returns the key for the file of the en passant square.
func (h *Hasher) EnPassant(sq Square) uint64 { return h.enPassant[sq.File()] }

// HashPiece toggles p in or out of the position key.
func (b *Board) HashPiece(p Piece) { b.positionKey ^= keys.Piece(p.Kind, p.Color, p.Square) }

// HashSide toggles the side-to-move key.
func (b *Board) HashSide() { b.positionKey ^= keys.Side() }

// HashCastle toggles the key of the current castle rights.
func (b *Board) HashCastle() { b.positionKey ^= keys.Castle(b.castleRights) }

// HashEnPassant toggles the key of the current en passant square.
func (b *Board) HashEnPassant() { b.positionKey ^= keys.EnPassant(b.enPassant) }

// GeneratePositionKey recomputes the position key from scratch.
func (b *Board) GeneratePositionKey() uint64 {
	var key uint64
	for i := 0; i < 64; i++ {
		p := b.squares[Sq64(i)]
		if p.Kind.IsPiece() {
			key ^= keys.Piece(p.Kind, p.Color, p.Square)
		}
	}
	if b.side == White {
		key ^= keys.Side()
	}
	if b.enPassant != NoSquare {
		key ^= keys.EnPassant(b.enPassant)
	}
	key ^= keys.Castle(b.castleRights)
	return key
}

// PositionKey returns the incrementally maintained hash.
func (b *Board) PositionKey() uint64 { return b.positionKey }
