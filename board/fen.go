package board

import (
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPosition is the raw output of the FEN reader. The board derives its
// lists, material and key from it rather than trusting incremental state.
type fenPosition struct {
	squares      [squareCount]Piece
	side         Color
	castleRights CastleRights
	enPassant    Square
	fiftyMove    int
	fullMove     int
}

// parseFEN splits fen into its fields and decodes each of them. The two
// clock fields are optional and default to "0 1".
func parseFEN(fen string) (*fenPosition, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError("field count", strconv.Itoa(len(fields)))
	}
	pos := &fenPosition{enPassant: NoSquare, fullMove: 1}
	for i := range pos.squares {
		sq := Square(i)
		if sq.OnBoard() {
			pos.squares[i] = emptyAt(sq)
		} else {
			pos.squares[i] = offBoardAt(sq)
		}
	}

	if err := pos.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.side = White
	case "b":
		pos.side = Black
	default:
		return nil, fenError("side", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.castleRights |= WhiteKingSide
			case 'Q':
				pos.castleRights |= WhiteQueenSide
			case 'k':
				pos.castleRights |= BlackKingSide
			case 'q':
				pos.castleRights |= BlackQueenSide
			default:
				return nil, fenError("castling", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, &FENError{Field: "en passant", Value: fields[3], Err: err}
		}
		if !pos.validEnPassant(sq) {
			return nil, fenError("en passant", fields[3])
		}
		pos.enPassant = sq
	}
	pos.dropStaleCastleRights()

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenError("halfmove clock", fields[4])
		}
		pos.fiftyMove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenError("fullmove number", fields[5])
		}
		pos.fullMove = n
	}
	return pos, nil
}

func (pos *fenPosition) parsePlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fenError("placement", placement)
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color, ok := pieceFromSymbol(ch)
			if !ok || file >= 8 {
				return fenError("placement", row)
			}
			sq := FileRankToSquare(file, rank)
			pos.squares[sq] = Piece{Kind: kind, Color: color, Square: sq}
			file++
		}
		if file != 8 {
			return fenError("placement", row)
		}
	}
	return nil
}

// validEnPassant reports whether sq can be the target of an en passant
// capture by the side to move: on its sixth rank, vacant, with the enemy
// pawn that just double-stepped standing behind it.
func (pos *fenPosition) validEnPassant(sq Square) bool {
	them := pos.side.Opponent()
	wantRank := 5
	if pos.side == Black {
		wantRank = 2
	}
	if sq.Rank() != wantRank || !pos.squares[sq].IsEmpty() {
		return false
	}
	behind := pos.squares[sq-pawnDirection(pos.side)]
	return behind.Kind == Pawn && behind.Color == them
}

// dropStaleCastleRights clears any right whose king or rook is not on its
// home square.
func (pos *fenPosition) dropStaleCastleRights() {
	for c, rules := range castleRules {
		for _, rule := range rules {
			king, rook := pos.squares[rule.king], pos.squares[rule.rook]
			if king.Kind != King || king.Color != Color(c) || rook.Kind != Rook || rook.Color != Color(c) {
				pos.castleRights &^= rule.right
			}
		}
	}
}

// ParseFen loads a position, discarding history. On error the board is left
// unchanged.
func (b *Board) ParseFen(fen string) error {
	pos, err := parseFEN(fen)
	if err != nil {
		return err
	}
	b.Reset()
	b.squares = pos.squares
	b.side = pos.side
	b.castleRights = pos.castleRights
	b.enPassant = pos.enPassant
	b.fiftyMove = pos.fiftyMove
	b.fullMove = pos.fullMove
	b.rebuild()
	return nil
}

// FromFEN returns a new board set up from fen.
func FromFEN(fen string) (*Board, error) {
	b := NewBoard()
	if err := b.ParseFen(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// ToFEN serializes the current position.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[FileRankToSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.castleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fiftyMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMove))
	return sb.String()
}
