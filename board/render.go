package board

import (
	"fmt"
	"strings"
)

// String renders the playable board from rank 8 down to rank 1, followed by
// the side to move, castle rights, en passant square and position key.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sb.WriteRune(b.squares[FileRankToSquare(file, rank)].Symbol())
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	side := "w"
	if b.side == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, "side: %s\ncastle: %s\nenpassant: %s\nkey: %016x\n",
		side, b.castleRights, b.enPassant, b.positionKey)
	return sb.String()
}
