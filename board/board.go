package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// MaxDepth is the number of per-ply move buffers allocated up front. Deeper
// walks grow the buffer table on demand.
const MaxDepth = 64

// listCapacity pre-sizes each piece-location set by the most pieces of that
// kind the two sides start with, allowing for promotions to grow past it.
var listCapacity = [kindCount]int{Pawn: 16, Knight: 4, Bishop: 4, Rook: 4, Queen: 4, King: 2}

// historyEntry is the undo record pushed by MakeMove.
type historyEntry struct {
	positionKey  uint64
	move         Move
	enPassant    Square
	castleRights CastleRights
	fiftyMove    int
	fullMove     int
}

// Board is a mailbox chess position with piece-location sets, an incremental
// Zobrist key and an undo history. It is owned by a single goroutine.
type Board struct {
	squares [squareCount]Piece

	// pieceLists[kind] holds the occupied squares of that kind for both
	// colors, kept sorted so that it behaves as a set.
	pieceLists [kindCount][]Square
	material   [2]int

	side         Color
	castleRights CastleRights
	enPassant    Square
	fiftyMove    int
	fullMove     int
	ply          int
	historyPly   int

	positionKey uint64
	history     []historyEntry

	// moves[ply] is regenerated by GenerateMoves at each ply.
	moves [][]Move
}

// NewBoard returns an empty board with white to move.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears the board to an empty position with white to move.
func (b *Board) Reset() {
	for i := range b.squares {
		sq := Square(i)
		if sq.OnBoard() {
			b.squares[i] = emptyAt(sq)
		} else {
			b.squares[i] = offBoardAt(sq)
		}
	}
	for k := range b.pieceLists {
		if listCapacity[k] == 0 {
			b.pieceLists[k] = nil
			continue
		}
		b.pieceLists[k] = make([]Square, 0, listCapacity[k])
	}
	b.material = [2]int{}
	b.side = White
	b.castleRights = NoCastling
	b.enPassant = NoSquare
	b.fiftyMove = 0
	b.fullMove = 1
	b.ply = 0
	b.historyPly = 0
	b.history = make([]historyEntry, 0, 256)
	if b.moves == nil {
		b.moves = make([][]Move, MaxDepth)
	}
	for i := range b.moves {
		b.moves[i] = b.moves[i][:0]
	}
	b.positionKey = b.GeneratePositionKey()
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.side }

// CastleRights returns the remaining castling permissions.
func (b *Board) CastleRights() CastleRights { return b.castleRights }

// EnPassant returns the en passant target square or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// FiftyMove returns the half-move counter since the last capture or pawn move.
func (b *Board) FiftyMove() int { return b.fiftyMove }

// FullMove returns the full move number, incremented after each black move.
func (b *Board) FullMove() int { return b.fullMove }

// Ply returns the search ply, i.e. moves made since the position was loaded.
func (b *Board) Ply() int { return b.ply }

// HistoryPly returns the depth of the undo history.
func (b *Board) HistoryPly() int { return b.historyPly }

// Material returns the running material sum for a side.
func (b *Board) Material(c Color) int { return b.material[c] }

// PieceAt returns a copy of whatever occupies sq.
func (b *Board) PieceAt(sq Square) Piece {
	if sq < 0 || sq >= squareCount {
		return offBoardAt(sq)
	}
	return b.squares[sq]
}

// PieceList returns a copy of the occupied squares for a kind, both colors.
func (b *Board) PieceList(kind Kind) []Square { return slices.Clone(b.pieceLists[kind]) }

// Moves returns the move buffer of the current ply as filled by GenerateMoves.
func (b *Board) Moves() []Move { return b.moves[b.ply] }

func (b *Board) listAdd(kind Kind, sq Square) {
	list := b.pieceLists[kind]
	i, found := slices.BinarySearch(list, sq)
	if found {
		panic(fmt.Sprintf("board: %v already listed on %v", kind, sq))
	}
	b.pieceLists[kind] = slices.Insert(list, i, sq)
}

func (b *Board) listRemove(kind Kind, sq Square) {
	list := b.pieceLists[kind]
	i, found := slices.BinarySearch(list, sq)
	if !found {
		panic(fmt.Sprintf("board: %v not listed on %v", kind, sq))
	}
	b.pieceLists[kind] = slices.Delete(list, i, i+1)
}

// ClearPiece removes the piece standing on p.Square.
func (b *Board) ClearPiece(p Piece) {
	sq := p.Square
	cur := b.squares[sq]
	if !cur.Kind.IsPiece() {
		panic(fmt.Sprintf("board: clear of vacant square %v", sq))
	}
	b.HashPiece(cur)
	b.squares[sq] = emptyAt(sq)
	b.material[cur.Color] -= cur.Value()
	b.listRemove(cur.Kind, sq)
}

// AddPiece places p on the vacant square p.Square.
func (b *Board) AddPiece(p Piece) {
	sq := p.Square
	if !b.squares[sq].IsEmpty() {
		panic(fmt.Sprintf("board: add %v onto occupied square %v", p.Kind, sq))
	}
	b.HashPiece(p)
	b.squares[sq] = p
	b.material[p.Color] += p.Value()
	b.listAdd(p.Kind, sq)
}

// MovePiece relocates p to the vacant square to. Material is unchanged.
func (b *Board) MovePiece(p Piece, to Square) {
	from := p.Square
	cur := b.squares[from]
	if !cur.Kind.IsPiece() {
		panic(fmt.Sprintf("board: move from vacant square %v", from))
	}
	if !b.squares[to].IsEmpty() {
		panic(fmt.Sprintf("board: move %v onto occupied square %v", cur.Kind, to))
	}
	b.HashPiece(cur)
	b.listRemove(cur.Kind, from)
	b.squares[from] = emptyAt(from)

	moved := cur.withSquare(to)
	b.squares[to] = moved
	b.HashPiece(moved)
	b.listAdd(moved.Kind, to)
}

// CastlePiece relocates the castling rook.
func (b *Board) CastlePiece(rook Piece, to Square) {
	if b.squares[rook.Square].Kind != Rook {
		panic(fmt.Sprintf("board: castle relocation of non-rook on %v", rook.Square))
	}
	b.MovePiece(rook, to)
}

// kingSquare returns the square of c's king, or NoSquare if it has none.
func (b *Board) kingSquare(c Color) Square {
	for _, sq := range b.pieceLists[King] {
		if b.squares[sq].Color == c {
			return sq
		}
	}
	return NoSquare
}

// rebuild recomputes the derived state (lists, material, key) from squares.
func (b *Board) rebuild() {
	for k := range b.pieceLists {
		b.pieceLists[k] = b.pieceLists[k][:0]
	}
	b.material = [2]int{}
	for i := 0; i < 64; i++ {
		sq := Sq64(i)
		p := b.squares[sq]
		if !p.Kind.IsPiece() {
			continue
		}
		b.material[p.Color] += p.Value()
		b.pieceLists[p.Kind] = append(b.pieceLists[p.Kind], sq)
	}
	b.positionKey = b.GeneratePositionKey()
}

// Validate cross-checks squares, piece lists, material, history and the
// position key, and reports the first inconsistency found.
func (b *Board) Validate() error {
	var lists [kindCount][]Square
	var material [2]int
	for i := range b.squares {
		sq := Square(i)
		p := b.squares[i]
		if p.Square != sq {
			return fmt.Errorf("square %d holds piece claiming square %d", i, p.Square)
		}
		if !sq.OnBoard() {
			if p.Kind != OffBoard {
				return fmt.Errorf("sentinel cell %d holds %v", i, p.Kind)
			}
			continue
		}
		switch {
		case p.Kind == OffBoard:
			return fmt.Errorf("playable square %v marked off-board", sq)
		case p.Kind == Empty:
			if p.Color != NoColor {
				return fmt.Errorf("empty square %v has color %v", sq, p.Color)
			}
		default:
			if p.Color != White && p.Color != Black {
				return fmt.Errorf("piece on %v has no color", sq)
			}
			material[p.Color] += p.Value()
			lists[p.Kind] = append(lists[p.Kind], sq)
		}
	}
	for k := Pawn; k <= King; k++ {
		want := lists[k]
		slices.Sort(want)
		if !slices.Equal(want, b.pieceLists[k]) {
			return fmt.Errorf("%v list %v, board has %v", k, b.pieceLists[k], want)
		}
	}
	if material != b.material {
		return fmt.Errorf("material %v, board has %v", b.material, material)
	}
	if len(b.history) != b.historyPly {
		return fmt.Errorf("history length %d, history ply %d", len(b.history), b.historyPly)
	}
	if key := b.GeneratePositionKey(); key != b.positionKey {
		return fmt.Errorf("position key %016x, recomputed %016x", b.positionKey, key)
	}
	return nil
}
